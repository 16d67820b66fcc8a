package buffer

import (
	"bytes"
	"regexp"

	"github.com/strataedit/strata/internal/engine/scan"
)

// Search window sizing. Literal windows stay small with just enough overlap
// to catch a pattern straddling a boundary exactly once. Regex windows are
// larger so multi-line patterns have room to match; matches longer than the
// regex overlap are not guaranteed across a boundary.
const (
	literalWindowSize = 4096
	regexWindowSize   = 64 * 1024
	regexOverlap      = 4096
)

// FindNext returns the byte offset of the next occurrence of pattern at or
// after start, wrapping around to the buffer start when the tail holds no
// match. The second return is false when the pattern occurs nowhere. Empty
// patterns match nothing.
func (b *Buffer) FindNext(pattern string, start int) (int, bool) {
	if len(pattern) == 0 {
		return 0, false
	}

	needle := []byte(pattern)
	n := b.Len()

	if start < n {
		if pos, ok := b.findLiteral(start, n, needle); ok {
			return pos, true
		}
	}
	if start > 0 {
		if pos, ok := b.findLiteral(0, start, needle); ok {
			return pos, true
		}
	}
	return 0, false
}

// FindNextRegex returns the byte offset of the next match of re at or after
// start, wrapping around like FindNext. A nil regex matches nothing.
func (b *Buffer) FindNextRegex(re *regexp.Regexp, start int) (int, bool) {
	if re == nil {
		return 0, false
	}

	n := b.Len()
	if start < n {
		if pos, ok := b.findRegex(start, n, re); ok {
			return pos, true
		}
	}
	if start > 0 {
		if pos, ok := b.findRegex(0, start, re); ok {
			return pos, true
		}
	}
	return 0, false
}

// findLiteral streams [start, end) through overlapping windows and reports
// the first occurrence of needle. An overlap of len(needle)-1 makes every
// occurrence, straddling ones included, visible in exactly one valid zone.
func (b *Buffer) findLiteral(start, end int, needle []byte) (int, bool) {
	if start >= end {
		return 0, false
	}

	w := scan.NewWindows(b.CursorAt(start), start, end, literalWindowSize, len(needle)-1)
	for w.Next() {
		win := w.Window()
		off := bytes.Index(win.Data, needle)
		if off < 0 {
			continue
		}
		// Accept only matches ending past the overlap zone; earlier ones
		// belonged to the previous window.
		if off+len(needle) <= win.ValidStart {
			continue
		}
		if pos := win.AbsolutePos + off; pos+len(needle) <= end {
			return pos, true
		}
	}
	return 0, false
}

// findRegex streams [start, end) through large overlapping windows and
// reports the first match under the same valid-zone rule as findLiteral.
func (b *Buffer) findRegex(start, end int, re *regexp.Regexp) (int, bool) {
	if start >= end {
		return 0, false
	}

	w := scan.NewWindows(b.CursorAt(start), start, end, regexWindowSize, regexOverlap)
	for w.Next() {
		win := w.Window()
		for _, m := range re.FindAllIndex(win.Data, -1) {
			if m[1] <= win.ValidStart {
				continue
			}
			if win.AbsolutePos+m[1] <= end {
				return win.AbsolutePos + m[0], true
			}
		}
	}
	return 0, false
}
