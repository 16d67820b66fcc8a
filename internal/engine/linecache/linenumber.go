package linecache

import "strconv"

// LineNumber is a line query result: a 0-indexed line value tagged with
// whether the estimation fallback produced it.
type LineNumber struct {
	value     int
	estimated bool
}

// Exact wraps a line number produced by scanning real line starts.
func Exact(line int) LineNumber {
	return LineNumber{value: line}
}

// Estimated wraps a line number produced by extrapolation.
func Estimated(line int) LineNumber {
	return LineNumber{value: line, estimated: true}
}

// Value returns the 0-indexed line number.
func (n LineNumber) Value() int {
	return n.value
}

// Estimated reports whether the value came from the estimation fallback
// rather than an exact scan.
func (n LineNumber) Estimated() bool {
	return n.estimated
}

// Format renders the line 1-indexed for display, prefixed with "~" when the
// value is an estimate.
func (n LineNumber) Format() string {
	if n.estimated {
		return "~" + strconv.Itoa(n.value+1)
	}
	return strconv.Itoa(n.value + 1)
}
