package linecache

import "sort"

// Estimation fallback tuning. Scanning more than EstimateThreshold bytes to
// answer one query would make "jump to end of file" a full-file scan, so
// past that distance the cache extrapolates at EstimateBytesPerLine.
const (
	EstimateThreshold    = 100_000
	EstimateBytesPerLine = 80
)

// LineScanner yields successive (start, text) line pairs. Implementations
// snap an arbitrary starting offset back to the beginning of its line, and
// text includes the trailing newline when present.
type LineScanner interface {
	Next() (start int, text string, ok bool)
}

// ScanFrom builds a LineScanner starting at a byte offset. The buffer
// supplies this; the cache itself never touches content.
type ScanFrom func(offset int) LineScanner

// entry maps one byte offset to a line number. Offsets and lines are both
// monotonically increasing across the cache.
type entry struct {
	offset    int
	line      int
	estimated bool
}

// Cache is a sparse byte-offset to line-number index. The zero value is
// ready to use. Not safe for concurrent use.
type Cache struct {
	entries []entry // sorted by offset
}

// New returns an empty cache.
func New() *Cache {
	return &Cache{}
}

// Len returns the number of cached entries.
func (c *Cache) Len() int {
	return len(c.entries)
}

// LineFor resolves the line number containing offset.
//
// An exact cache hit returns the stored value. Otherwise the nearest entry
// before offset anchors the query (defaulting to line 0 at offset 0): past
// EstimateThreshold bytes of distance the result is extrapolated, tagged
// estimated, and cached; within it, lines are scanned forward from the
// anchor, caching every line start on the way. Scans anchored on an
// estimated entry stay tagged estimated.
func (c *Cache) LineFor(offset int, scan ScanFrom) LineNumber {
	if e, ok := c.lookup(offset); ok {
		return lineNumberOf(e)
	}

	base := entry{offset: 0, line: 0}
	if i := c.nearestBefore(offset); i >= 0 {
		base = c.entries[i]
	}

	distance := offset - base.offset
	if distance > EstimateThreshold {
		est := base.line + distance/EstimateBytesPerLine
		c.put(entry{offset: offset, line: est, estimated: true})
		return Estimated(est)
	}

	c.putIfAbsent(base)
	line := base.line
	it := scan(base.offset)
	for {
		start, _, ok := it.Next()
		if !ok {
			break
		}
		if start > offset {
			break
		}
		c.put(entry{offset: start, line: line, estimated: base.estimated})
		if start == offset {
			return lineNumberOf(entry{line: line, estimated: base.estimated})
		}
		line++
	}
	// Scanned past the target: the previous line contains it.
	if line > 0 {
		line--
	}
	return lineNumberOf(entry{line: line, estimated: base.estimated})
}

// Populate resolves the line at offset, then warms the cache with up to
// count line starts beginning at the line containing offset. It returns the
// resolved line. Used to pre-fill the index for a viewport about to render.
func (c *Cache) Populate(offset, count int, scan ScanFrom) LineNumber {
	start := c.LineFor(offset, scan)

	line := start.Value()
	it := scan(offset)
	for added := 0; added < count; added++ {
		s, _, ok := it.Next()
		if !ok {
			break
		}
		c.putIfAbsent(entry{offset: s, line: line, estimated: start.Estimated()})
		line++
	}
	return start
}

// OffsetForLine returns the byte offset of the first entry recorded for
// line. The cache keeps no secondary index, so this is a linear scan.
func (c *Cache) OffsetForLine(line int) (int, bool) {
	for _, e := range c.entries {
		if e.line == line {
			return e.offset, true
		}
	}
	return 0, false
}

// InvalidateFrom drops every entry at or after offset.
func (c *Cache) InvalidateFrom(offset int) {
	c.entries = c.entries[:c.firstAtOrAfter(offset)]
}

// HandleInsertion shifts every entry at or after the insertion point by the
// inserted byte and newline counts. Entries strictly before it are
// untouched. Call immediately after the matching buffer insert.
func (c *Cache) HandleInsertion(at, bytes, newlines int) {
	for i := c.firstAtOrAfter(at); i < len(c.entries); i++ {
		c.entries[i].offset += bytes
		c.entries[i].line += newlines
	}
}

// HandleDeletion drops entries inside the deleted range and shifts every
// entry past it down by the deleted byte and newline counts. Call
// immediately after the matching buffer delete.
func (c *Cache) HandleDeletion(at, bytes, newlines int) {
	lo := c.firstAtOrAfter(at)
	hi := c.firstAtOrAfter(at + bytes)
	c.entries = append(c.entries[:lo], c.entries[hi:]...)
	for i := lo; i < len(c.entries); i++ {
		c.entries[i].offset -= bytes
		c.entries[i].line -= newlines
	}
}

// Clear drops all entries, e.g. on file reload.
func (c *Cache) Clear() {
	c.entries = c.entries[:0]
}

func lineNumberOf(e entry) LineNumber {
	if e.estimated {
		return Estimated(e.line)
	}
	return Exact(e.line)
}

// lookup returns the entry exactly at offset.
func (c *Cache) lookup(offset int) (entry, bool) {
	i := c.firstAtOrAfter(offset)
	if i < len(c.entries) && c.entries[i].offset == offset {
		return c.entries[i], true
	}
	return entry{}, false
}

// nearestBefore returns the index of the last entry with a smaller offset,
// or -1.
func (c *Cache) nearestBefore(offset int) int {
	return c.firstAtOrAfter(offset) - 1
}

func (c *Cache) firstAtOrAfter(offset int) int {
	return sort.Search(len(c.entries), func(i int) bool { return c.entries[i].offset >= offset })
}

// put inserts or overwrites the entry at e.offset.
func (c *Cache) put(e entry) {
	i := c.firstAtOrAfter(e.offset)
	if i < len(c.entries) && c.entries[i].offset == e.offset {
		c.entries[i] = e
		return
	}
	c.entries = append(c.entries, entry{})
	copy(c.entries[i+1:], c.entries[i:])
	c.entries[i] = e
}

// putIfAbsent inserts e unless an entry at its offset already exists.
func (c *Cache) putIfAbsent(e entry) {
	i := c.firstAtOrAfter(e.offset)
	if i < len(c.entries) && c.entries[i].offset == e.offset {
		return
	}
	c.entries = append(c.entries, entry{})
	copy(c.entries[i+1:], c.entries[i:])
	c.entries[i] = e
}
