package buffer

// isUTF8Start reports whether b is a UTF-8 leading byte rather than a
// continuation byte.
func isUTF8Start(b byte) bool {
	return b&0xC0 != 0x80
}

// isWordByte classifies ASCII alphanumerics and underscore as word bytes.
// Bytes of multi-byte characters never qualify.
func isWordByte(b byte) bool {
	switch {
	case b >= 'a' && b <= 'z':
		return true
	case b >= 'A' && b <= 'Z':
		return true
	case b >= '0' && b <= '9':
		return true
	case b == '_':
		return true
	}
	return false
}

// PrevCharBoundary returns the position of the UTF-8 character boundary
// closest before pos. Position 0 is always a boundary.
func (b *Buffer) PrevCharBoundary(pos int) int {
	if pos <= 0 {
		return 0
	}
	if pos > b.Len() {
		pos = b.Len()
	}

	it := b.CursorAt(pos - 1)
	// A leading byte is at most 3 continuation bytes away.
	for i := 0; i < 4; i++ {
		if it.Position() == 0 {
			return 0
		}
		if c, ok := it.Peek(); ok && isUTF8Start(c) {
			return it.Position()
		}
		it.Prev()
	}
	return pos - 1
}

// NextCharBoundary returns the position of the UTF-8 character boundary
// closest after pos. The buffer length is always a boundary.
func (b *Buffer) NextCharBoundary(pos int) int {
	n := b.Len()
	if pos >= n {
		return n
	}

	it := b.CursorAt(pos + 1)
	for i := 0; i < 4; i++ {
		if it.Position() >= n {
			return n
		}
		if c, ok := it.Peek(); ok && isUTF8Start(c) {
			return it.Position()
		}
		if _, ok := it.Next(); !ok {
			return n
		}
	}
	return min(pos+1, n)
}

// PrevWordBoundary scans backward from pos for a word-to-separator
// transition and returns the position of the word's first byte, or 0.
func (b *Buffer) PrevWordBoundary(pos int) int {
	if pos <= 0 {
		return 0
	}

	it := b.CursorAt(pos - 1)
	inWord := false
	for it.Position() > 0 {
		if c, ok := it.Peek(); ok {
			if inWord && !isWordByte(c) {
				return it.Position() + 1
			}
			if isWordByte(c) {
				inWord = true
			}
		}
		it.Prev()
	}
	return 0
}

// NextWordBoundary scans forward from pos and returns the position just
// past the first separator byte that follows a word byte, or the buffer
// length.
func (b *Buffer) NextWordBoundary(pos int) int {
	n := b.Len()
	if pos >= n {
		return n
	}

	it := b.CursorAt(pos)
	inWord := false
	for it.Position() < n {
		c, ok := it.Next()
		if !ok {
			break
		}
		if inWord && !isWordByte(c) {
			return it.Position()
		}
		if isWordByte(c) {
			inWord = true
		}
	}
	return n
}
