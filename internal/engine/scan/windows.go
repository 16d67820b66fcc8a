// Package scan streams overlapping byte windows over a range of buffer
// content, so searches can run over arbitrarily large ranges without
// materializing them.
//
// Each window after the first keeps the previous window's trailing overlap
// bytes as a prefix. A match candidate found inside a window is genuine
// only under the consumer contract:
//
//	w := scan.NewWindows(cur, start, end, chunkSize, overlap)
//	for w.Next() {
//		win := w.Window()
//		// accept a match at [ms, me) within win.Data only if
//		//   me > win.ValidStart  &&  win.AbsolutePos+me <= end
//	}
//
// The first clause skips matches that lie entirely inside the overlap and
// were already reported from the previous window; the second keeps matches
// from leaking past the requested range. With overlap >= patternLen-1,
// every position of [start, end) falls in exactly one window's valid zone
// and a match straddling a window boundary is reported exactly once, from
// the later window. A smaller overlap can silently miss straddling matches;
// that is the caller's tradeoff to make.
package scan

// ByteSource is the cursor contract Windows reads from. A
// chunktree.Cursor satisfies it.
type ByteSource interface {
	Seek(pos int)
	Next() (byte, bool)
	BufferLen() int
}

// Window is one overlapping chunk of the scanned range. Data begins at
// AbsolutePos in the source; bytes before ValidStart belong to the
// previous window's tail.
type Window struct {
	Data        []byte
	AbsolutePos int
	ValidStart  int
}

// Windows streams overlapping windows over [start, end) of a byte source.
type Windows struct {
	src       ByteSource
	buf       []byte
	bufStart  int // absolute offset of buf[0]
	readPos   int // absolute offset of the next unread byte
	end       int
	chunkSize int
	overlap   int
	retained  int // leading bytes of buf already presented by the previous window
	win       Window
}

// NewWindows returns a stream of windows over [start, end), clamped to the
// source bounds. Each window holds up to chunkSize new bytes after the
// retained overlap.
func NewWindows(src ByteSource, start, end, chunkSize, overlap int) *Windows {
	if end > src.BufferLen() {
		end = src.BufferLen()
	}
	if start < 0 {
		start = 0
	}
	if start > end {
		start = end
	}
	src.Seek(start)
	return &Windows{
		src:       src,
		bufStart:  start,
		readPos:   start,
		end:       end,
		chunkSize: chunkSize,
		overlap:   overlap,
	}
}

// Next advances to the next window, reporting false once the range is
// exhausted.
func (w *Windows) Next() bool {
	// Before anything has been read the buffer start and the read position
	// coincide; afterwards the buffer always holds [bufStart, readPos).
	first := w.bufStart == w.readPos
	if !w.fill(first) {
		return false
	}
	data := make([]byte, len(w.buf))
	copy(data, w.buf)
	validStart := w.retained
	if validStart > len(data) {
		validStart = len(data)
	}
	w.win = Window{Data: data, AbsolutePos: w.bufStart, ValidStart: validStart}
	return true
}

// Window returns the current window. Valid after Next reports true.
func (w *Windows) Window() Window {
	return w.win
}

// fill loads the next window into the internal buffer. The first fill reads
// up to chunkSize bytes; later fills drain everything except the trailing
// overlap, then read up to chunkSize more.
func (w *Windows) fill(first bool) bool {
	if first {
		for len(w.buf) < w.chunkSize && w.readPos < w.end {
			b, ok := w.src.Next()
			if !ok {
				break
			}
			w.buf = append(w.buf, b)
			w.readPos++
		}
		return len(w.buf) > 0
	}

	if w.readPos >= w.end {
		return false
	}
	if len(w.buf) > w.overlap {
		drain := len(w.buf) - w.overlap
		w.buf = append(w.buf[:0], w.buf[drain:]...)
		w.bufStart += drain
	}
	// A window shorter than the overlap is carried over whole, so the valid
	// zone must begin at the retained length, not the nominal overlap.
	w.retained = len(w.buf)
	target := w.overlap + w.chunkSize
	for len(w.buf) < target && w.readPos < w.end {
		b, ok := w.src.Next()
		if !ok {
			break
		}
		w.buf = append(w.buf, b)
		w.readPos++
	}
	return len(w.buf) > w.retained
}
