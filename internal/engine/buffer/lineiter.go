package buffer

import "github.com/strataedit/strata/internal/engine/chunktree"

// LineIterator walks lines in both directions over one pinned content
// version. Line text always includes the trailing newline when present.
//
// Next reads the line at the cursor and leaves the cursor after it. Prev
// reads the line ending before the cursor and leaves the cursor at that
// line's start. Unlike a double-ended iterator the two directions share
// one position, so Next followed by Prev returns the same line twice.
type LineIterator struct {
	it *chunktree.Cursor
}

// Lines returns a line iterator positioned at the start of the line
// containing pos.
func (b *Buffer) Lines(pos int) *LineIterator {
	it := b.CursorAt(pos)
	// Walk back to just past the previous newline, or to the start.
	for it.Position() > 0 {
		it.Prev()
		if c, ok := it.Peek(); ok && c == '\n' {
			it.Next()
			break
		}
	}
	return &LineIterator{it: it}
}

// Next returns the line at the cursor as (start offset, text, true) and
// advances past it. It reports false at the end of content.
func (li *LineIterator) Next() (int, string, bool) {
	start := li.it.Position()
	if start >= li.it.BufferLen() {
		return 0, "", false
	}
	return start, li.readLine(), true
}

// Prev returns the line ending at or before the cursor and leaves the
// cursor at its start, so a following Next re-reads the same line. It
// reports false at the start of content.
func (li *LineIterator) Prev() (int, string, bool) {
	pos := li.it.Position()
	if pos == 0 {
		return 0, "", false
	}

	// Step onto the previous line's last byte, then walk back to its start.
	li.it.Seek(pos - 1)
	for li.it.Position() > 0 {
		li.it.Prev()
		if c, ok := li.it.Peek(); ok && c == '\n' {
			li.it.Next()
			break
		}
	}

	start := li.it.Position()
	text := li.readLine()
	li.it.Seek(start)
	return start, text, true
}

// Position returns the cursor's current byte offset.
func (li *LineIterator) Position() int {
	return li.it.Position()
}

// readLine consumes bytes through the next newline or the end of content.
func (li *LineIterator) readLine() string {
	var content []byte
	for {
		c, ok := li.it.Next()
		if !ok {
			break
		}
		content = append(content, c)
		if c == '\n' {
			break
		}
	}
	return string(content)
}
