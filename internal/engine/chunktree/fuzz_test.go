package chunktree

import (
	"bytes"
	"testing"
)

// FuzzInsertDelete drives the tree with an insert-then-delete pair against
// a plain byte-slice reference.
func FuzzInsertDelete(f *testing.F) {
	f.Add([]byte("hello world"), 5, []byte(", cruel"), 0, 5)
	f.Add([]byte(""), 0, []byte("x"), 0, 1)
	f.Add([]byte("0123456789"), 10, []byte("abc"), 3, 9)
	f.Add(bytes.Repeat([]byte("chunk"), 100), 250, bytes.Repeat([]byte("y"), 64), 100, 400)

	f.Fuzz(func(t *testing.T, initial []byte, off int, data []byte, start, end int) {
		cfg := Config{ChunkSize: 16, MaxChildren: 4}

		off = clampFuzz(off, len(initial))
		tr := New(initial, cfg).Insert(off, data)

		want := make([]byte, 0, len(initial)+len(data))
		want = append(want, initial[:off]...)
		want = append(want, data...)
		want = append(want, initial[off:]...)

		start = clampFuzz(start, len(want))
		end = clampFuzz(end, len(want))
		if start > end {
			start, end = end, start
		}
		tr = tr.Delete(start, end)
		want = append(want[:start:start], want[end:]...)

		if got := tr.Read(0, tr.Len()); !bytes.Equal(got, want) {
			t.Errorf("content mismatch: got %d bytes, want %d bytes", len(got), len(want))
		}
		if tr.Len() != len(want) {
			t.Errorf("length %d, want %d", tr.Len(), len(want))
		}
	})
}

// FuzzCursorReads checks that cursor scans agree with direct reads at
// arbitrary positions.
func FuzzCursorReads(f *testing.F) {
	f.Add([]byte("hello\nworld"), 6)
	f.Add([]byte(""), 0)
	f.Add(bytes.Repeat([]byte("z"), 300), 128)

	f.Fuzz(func(t *testing.T, content []byte, pos int) {
		tr := New(content, Config{ChunkSize: 8, MaxChildren: 4})
		pos = clampFuzz(pos, len(content))

		cur := tr.CursorAt(pos)
		for i := pos; i < len(content); i++ {
			b, ok := cur.Next()
			if !ok || b != content[i] {
				t.Fatalf("forward read diverged at %d", i)
			}
		}
		for i := len(content) - 1; i >= 0; i-- {
			b, ok := cur.Prev()
			if !ok || b != content[i] {
				t.Fatalf("backward read diverged at %d", i)
			}
		}
	})
}

func clampFuzz(v, n int) int {
	if v < 0 {
		v = -v
	}
	if v < 0 || n == 0 {
		return 0
	}
	return v % (n + 1)
}
