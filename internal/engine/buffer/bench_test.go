package buffer

import (
	"math/rand"
	"regexp"
	"strings"
	"testing"
)

var benchText = strings.Repeat("the quick brown fox jumps over the lazy dog\n", 4096)

func BenchmarkFindNext(b *testing.B) {
	buf := NewFromString(benchText + "needle")
	b.SetBytes(int64(buf.Len()))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, ok := buf.FindNext("needle", 0); !ok {
			b.Fatal("pattern not found")
		}
	}
}

func BenchmarkFindNextRegex(b *testing.B) {
	buf := NewFromString(benchText + "end: 42")
	re := regexp.MustCompile(`end: \d+`)
	b.SetBytes(int64(buf.Len()))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, ok := buf.FindNextRegex(re, 0); !ok {
			b.Fatal("pattern not found")
		}
	}
}

func BenchmarkLineNumberCold(b *testing.B) {
	buf := NewFromString(benchText)
	rng := rand.New(rand.NewSource(1))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		buf.ClearLineCache()
		buf.LineNumber(rng.Intn(buf.Len()))
	}
}

func BenchmarkLineNumberWarm(b *testing.B) {
	buf := NewFromString(benchText)
	rng := rand.New(rand.NewSource(1))
	buf.PopulateLineCache(0, 4096)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		buf.LineNumber(rng.Intn(buf.Len()))
	}
}

func BenchmarkPositionToLSP(b *testing.B) {
	buf := NewFromString(benchText)
	rng := rand.New(rand.NewSource(1))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		buf.PositionToLSP(rng.Intn(buf.Len()))
	}
}
