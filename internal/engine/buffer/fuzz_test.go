package buffer

import (
	"strings"
	"testing"

	"github.com/strataedit/strata/internal/engine/chunktree"
)

// FuzzFindNext checks streamed search against a plain strings.Index reference.
func FuzzFindNext(f *testing.F) {
	f.Add("hello world hello", "hello", 1)
	f.Add("", "x", 0)
	f.Add(strings.Repeat("ab", 3000), "aba", 4000)
	f.Add("aaa\nbbb\naaa", "a\nb", 0)

	f.Fuzz(func(t *testing.T, content, pattern string, start int) {
		if len(pattern) > 32 {
			pattern = pattern[:32]
		}
		if start < 0 {
			start = -start
		}
		if start < 0 || len(content) == 0 {
			start = 0
		} else {
			start %= len(content) + 1
		}

		b := NewFromString(content, WithConfig(chunktree.Config{ChunkSize: 32, MaxChildren: 4}))
		got, ok := b.FindNext(pattern, start)
		want, wantOK := naiveFindNext(content, pattern, start)
		if got != want || ok != wantOK {
			t.Errorf("FindNext(%q, %d) = (%d, %v), want (%d, %v)",
				pattern, start, got, ok, want, wantOK)
		}
	})
}

// FuzzLineNumbers checks the cache-backed line resolver against a newline count.
func FuzzLineNumbers(f *testing.F) {
	f.Add("line1\nline2\nline3\n", 7)
	f.Add("", 0)
	f.Add("no newline at all", 5)
	f.Add(strings.Repeat("row\n", 500), 1200)

	f.Fuzz(func(t *testing.T, content string, pos int) {
		if pos < 0 {
			pos = -pos
		}
		if pos < 0 || len(content) == 0 {
			pos = 0
		} else {
			pos %= len(content)
		}

		b := NewFromString(content)
		ln := b.LineNumber(pos)
		if ln.Estimated() {
			return
		}
		if want := strings.Count(content[:pos], "\n"); ln.Value() != want {
			t.Errorf("LineNumber(%d) = %d, want %d", pos, ln.Value(), want)
		}
	})
}
