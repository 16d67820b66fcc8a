// Package buffer is the text-manipulation surface of the storage engine.
// It combines a snapshot store over the chunked content tree, a sparse
// line-number cache, streaming search, and position conversion behind a
// single type.
//
// The buffer package provides:
//
//   - Byte-offset edits (Insert, Delete) with structural sharing underneath
//   - Clamped, never-failing reads (Slice, SliceBytes)
//   - Streaming literal and regex search with wrap-around
//   - UTF-8 character and ASCII word boundary scanning
//   - Byte offset to line/column and LSP (UTF-16) position conversion
//   - Cached line-number queries that estimate for distant offsets
//   - File load and save with modification tracking
//
// Basic usage:
//
//	buf := buffer.NewFromString("hello world\n")
//	buf.Insert(5, ",")
//	pos, ok := buf.FindNext("world", 0)
//
// Editing and the line cache are two separate phases: Insert and Delete
// change content only, and the caller reports the edit to the cache with
// HandleCacheInsertion or HandleCacheDeletion afterward. Skipping the
// report leaves cached line numbers stale until the next invalidation.
//
// Concurrency:
//
// A Buffer is not safe for concurrent use; the engine assumes one logical
// writer. Readers needing a stable view take a cursor (CursorAt) or a
// Snapshot, both pinned to the content version current at creation and
// unaffected by later edits.
package buffer
