// Package chunktree provides a persistent, height-balanced tree of byte
// chunks for storing and editing file content of arbitrary size.
//
// The tree is a B+ tree variant: leaves hold contiguous byte chunks (target
// size Config.ChunkSize), internal nodes hold up to Config.MaxChildren
// children together with a prefix table of the byte count before each child,
// so offset lookups descend in O(log n) by binary search.
//
// Key properties:
//   - O(log n) point lookup, range read, insertion, and deletion
//   - Edits return new trees; existing trees are never modified
//   - Unmodified subtrees are shared by reference between versions
//     (structural sharing), so holding an old snapshot stays cheap while
//     new versions evolve
//   - Cursors pin the snapshot they were created against and keep reading
//     it unaffected by later edits
//
// Basic usage:
//
//	t := chunktree.New([]byte("hello world"), chunktree.DefaultConfig())
//	t2 := t.Insert(5, []byte(","))
//	t.String()  // "hello world" — t is unchanged
//	t2.String() // "hello, world"
package chunktree
