// Package linecache maintains a sparse byte-offset to line-number index
// over buffer content.
//
// The cache is never complete: entries accumulate as line queries run and
// are dropped wholesale when edits invalidate them. Resolving an offset far
// from any cached entry would force a long forward scan, so past a fixed
// distance threshold the cache instead extrapolates from the nearest entry
// at an assumed average line length. Extrapolated results are tagged
// estimated, as is everything later derived from them; exact results come
// from scanning real line starts.
//
// The cache never observes edits on its own. Callers must follow every
// buffer insert or delete with HandleInsertion, HandleDeletion, or
// InvalidateFrom before the next line query, or queries will return
// well-typed but stale values.
package linecache
