// Package snapshot holds the current content-tree version for a buffer and
// swaps in new versions as edits arrive. The Store is the sole mutation
// point for buffer content: everything else reads immutable snapshots.
//
// The engine assumes a single logical writer, so the Store takes no locks.
// A cursor handed out by IterAt pins the tree version current at that
// moment and is unaffected by later edits; readers wanting fresh content
// create a fresh cursor.
package snapshot

import (
	"github.com/cespare/xxhash/v2"

	"github.com/strataedit/strata/internal/engine/chunktree"
)

// Store owns the current tree handle and a revision counter that increments
// on every content-changing edit.
type Store struct {
	tree chunktree.Tree
	rev  uint64
}

// Snapshot is one immutable tree version paired with the revision at which
// it became current. Holding a Snapshot is cheap: the tree shares all
// unmodified structure with its successors.
type Snapshot struct {
	Tree     chunktree.Tree
	Revision uint64
}

// New builds a store over initial content.
func New(data []byte, cfg chunktree.Config) *Store {
	return &Store{tree: chunktree.New(data, cfg)}
}

// FromTree wraps a pre-built tree.
func FromTree(tree chunktree.Tree) *Store {
	return &Store{tree: tree}
}

// Len returns the current content length.
func (s *Store) Len() int {
	return s.tree.Len()
}

// Read returns a copy of [off, off+n) of the current version, clamped to
// its bounds.
func (s *Store) Read(off, n int) []byte {
	return s.tree.Read(off, n)
}

// Insert splices data in at off, replacing the current handle with the new
// tree version. Empty data leaves the store untouched.
func (s *Store) Insert(off int, data []byte) {
	if len(data) == 0 {
		return
	}
	s.tree = s.tree.Insert(off, data)
	s.rev++
}

// Delete removes [start, end), replacing the current handle with the new
// tree version. An empty range leaves the store untouched.
func (s *Store) Delete(start, end int) {
	if start < 0 {
		start = 0
	}
	if end > s.tree.Len() {
		end = s.tree.Len()
	}
	if start >= end {
		return
	}
	s.tree = s.tree.Delete(start, end)
	s.rev++
}

// IterAt returns a cursor over the current version positioned at pos. The
// cursor keeps reading that version regardless of later edits.
func (s *Store) IterAt(pos int) *chunktree.Cursor {
	return s.tree.CursorAt(pos)
}

// Current returns the current version and its revision.
func (s *Store) Current() Snapshot {
	return Snapshot{Tree: s.tree, Revision: s.rev}
}

// Tree returns the current tree handle.
func (s *Store) Tree() chunktree.Tree {
	return s.tree
}

// Revision returns how many content-changing edits the store has applied.
func (s *Store) Revision() uint64 {
	return s.rev
}

// Config returns the tree geometry the store builds with.
func (s *Store) Config() chunktree.Config {
	return s.tree.Config()
}

// Fingerprint hashes the current content for cheap change detection.
// It streams the tree's chunks, so no full copy is materialized.
func (s *Store) Fingerprint() uint64 {
	d := xxhash.New()
	it := s.tree.Chunks()
	for it.Next() {
		_, _ = d.Write(it.Chunk())
	}
	return d.Sum64()
}
