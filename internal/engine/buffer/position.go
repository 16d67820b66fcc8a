package buffer

// Position conversions scan lines from the buffer start rather than
// consulting the line cache, so they are always exact and never plant
// estimated entries. Cost is linear in the number of lines before the
// position; use LineNumber for arbitrary offsets in very large content.

// PositionToLineCol converts a byte position to a 0-indexed (line, column)
// pair with the column measured in bytes. A position on a line's trailing
// newline (or at the end of content) belongs to that line. Positions past
// the end map to the last line.
func (b *Buffer) PositionToLineCol(pos int) (int, int) {
	if pos < 0 {
		pos = 0
	}

	it := b.Lines(0)
	line := 0
	for {
		start, text, ok := it.Next()
		if !ok {
			break
		}
		if pos >= start && pos <= start+len(text) {
			return line, pos - start
		}
		line++
	}
	if line > 0 {
		line--
	}
	return line, 0
}

// PositionToLSP converts a byte position to a 0-indexed LSP (line,
// character) pair, the character measured in UTF-16 code units.
func (b *Buffer) PositionToLSP(pos int) (int, int) {
	if pos < 0 {
		pos = 0
	}

	it := b.Lines(0)
	line := 0
	for {
		start, text, ok := it.Next()
		if !ok {
			break
		}
		if pos >= start && pos <= start+len(text) {
			return line, utf16Units(text[:pos-start])
		}
		line++
	}
	if line > 0 {
		line--
	}
	return line, 0
}

// LineColToPosition converts a 0-indexed (line, column in bytes) pair to a
// byte position. Out-of-range lines clamp to the end of content and
// columns to the end of the line.
func (b *Buffer) LineColToPosition(line, col int) int {
	it := b.Lines(0)
	for i := 0; i < line; i++ {
		if _, _, ok := it.Next(); !ok {
			return b.Len()
		}
	}

	start, text, ok := it.Next()
	if !ok {
		return b.Len()
	}
	if col < 0 {
		col = 0
	}
	return start + min(col, len(text))
}

// LSPToPosition converts a 0-indexed LSP (line, character in UTF-16 code
// units) pair to a byte position, clamping like LineColToPosition.
func (b *Buffer) LSPToPosition(line, chr int) int {
	it := b.Lines(0)
	for i := 0; i < line; i++ {
		if _, _, ok := it.Next(); !ok {
			return b.Len()
		}
	}

	start, text, ok := it.Next()
	if !ok {
		return b.Len()
	}
	return start + byteColumnForUTF16(text, chr)
}

// UTF-16 code unit helpers, shared with the LSP position adapter.

// utf16Units counts UTF-16 code units in s. Characters outside the basic
// multilingual plane take two units.
func utf16Units(s string) int {
	n := 0
	for _, r := range s {
		if r >= 0x10000 {
			n += 2
		} else {
			n++
		}
	}
	return n
}

// byteColumnForUTF16 converts a UTF-16 code unit count to a byte offset
// within line, clamping to the line length.
func byteColumnForUTF16(line string, units int) int {
	u := 0
	for i, r := range line {
		if u >= units {
			return i
		}
		if r >= 0x10000 {
			u += 2
		} else {
			u++
		}
	}
	return len(line)
}
