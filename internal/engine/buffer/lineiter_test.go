package buffer

import (
	"testing"

	"github.com/strataedit/strata/internal/engine/linecache"
)

var _ linecache.LineScanner = (*LineIterator)(nil)

func TestLinesForward(t *testing.T) {
	b := NewFromString("line1\nline2\nline3")
	it := b.Lines(0)

	want := []struct {
		start int
		text  string
	}{
		{0, "line1\n"},
		{6, "line2\n"},
		{12, "line3"},
	}
	for _, w := range want {
		start, text, ok := it.Next()
		if !ok || start != w.start || text != w.text {
			t.Fatalf("Next() = (%d, %q, %v), want (%d, %q, true)", start, text, ok, w.start, w.text)
		}
	}
	if _, _, ok := it.Next(); ok {
		t.Error("expected iteration to end")
	}
}

func TestLinesSnapsToLineStart(t *testing.T) {
	b := NewFromString("line1\nline2\nline3")

	// Position 8 is inside line2; the iterator rewinds to its start.
	it := b.Lines(8)
	if got := it.Position(); got != 6 {
		t.Errorf("Position() = %d, want 6", got)
	}
	start, text, ok := it.Next()
	if !ok || start != 6 || text != "line2\n" {
		t.Errorf("Next() = (%d, %q, %v), want (6, \"line2\\n\", true)", start, text, ok)
	}
}

func TestLinesAtLineStart(t *testing.T) {
	b := NewFromString("line1\nline2\nline3")

	it := b.Lines(6)
	start, text, ok := it.Next()
	if !ok || start != 6 || text != "line2\n" {
		t.Errorf("Next() = (%d, %q, %v), want (6, \"line2\\n\", true)", start, text, ok)
	}
}

func TestLinesNextThenPrev(t *testing.T) {
	b := NewFromString("Line 1\nLine 2\nLine 3")
	it := b.Lines(10)

	start, text, ok := it.Next()
	if !ok || start != 7 || text != "Line 2\n" {
		t.Fatalf("Next() = (%d, %q, %v), want (7, \"Line 2\\n\", true)", start, text, ok)
	}

	// Prev from just past a line returns that same line.
	start, text, ok = it.Prev()
	if !ok || start != 7 || text != "Line 2\n" {
		t.Errorf("Prev() = (%d, %q, %v), want (7, \"Line 2\\n\", true)", start, text, ok)
	}
}

func TestLinesBackward(t *testing.T) {
	b := NewFromString("one\ntwo\nthree")
	it := b.Lines(b.Len())

	want := []struct {
		start int
		text  string
	}{
		{4, "two\n"},
		{0, "one\n"},
	}
	for _, w := range want {
		start, text, ok := it.Prev()
		if !ok || start != w.start || text != w.text {
			t.Fatalf("Prev() = (%d, %q, %v), want (%d, %q, true)", start, text, ok, w.start, w.text)
		}
	}
	if _, _, ok := it.Prev(); ok {
		t.Error("expected Prev at start to fail")
	}
}

func TestLinesPrevAtStart(t *testing.T) {
	b := NewFromString("content")

	if _, _, ok := b.Lines(0).Prev(); ok {
		t.Error("Prev at position 0 should fail")
	}
}

func TestLinesEmpty(t *testing.T) {
	b := New()
	it := b.Lines(0)

	if _, _, ok := it.Next(); ok {
		t.Error("Next on an empty buffer should fail")
	}
	if _, _, ok := it.Prev(); ok {
		t.Error("Prev on an empty buffer should fail")
	}
}

func TestLinesTrailingNewline(t *testing.T) {
	b := NewFromString("a\nb\n")
	it := b.Lines(0)

	start, text, ok := it.Next()
	if !ok || start != 0 || text != "a\n" {
		t.Fatalf("Next() = (%d, %q, %v)", start, text, ok)
	}
	start, text, ok = it.Next()
	if !ok || start != 2 || text != "b\n" {
		t.Fatalf("Next() = (%d, %q, %v)", start, text, ok)
	}
	if _, _, ok := it.Next(); ok {
		t.Error("no line starts after the trailing newline")
	}
}

func TestLinesPositionTracksIteration(t *testing.T) {
	b := NewFromString("aa\nbb\ncc")
	it := b.Lines(0)

	it.Next()
	if got := it.Position(); got != 3 {
		t.Errorf("Position() after first Next = %d, want 3", got)
	}
	it.Next()
	if got := it.Position(); got != 6 {
		t.Errorf("Position() after second Next = %d, want 6", got)
	}
}
