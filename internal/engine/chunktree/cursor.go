package chunktree

// Cursor is a bidirectional byte iterator over one tree snapshot. It pins
// the snapshot it was created against: edits applied elsewhere produce new
// trees and are never observed by an existing cursor. Stepping is O(1)
// within a leaf; crossing a leaf boundary re-descends from the root in
// O(log n).
//
// A cursor's position lies in [0, BufferLen]. At BufferLen there is no
// current byte and Peek reports false.
type Cursor struct {
	root      *node
	size      int
	pos       int
	leaf      *node // cached leaf containing pos, nil until first descent
	leafStart int   // absolute offset of leaf.data[0]
}

// CursorAt returns a cursor over the tree positioned at pos, clamped to
// [0, Len].
func (t Tree) CursorAt(pos int) *Cursor {
	root := t.root
	if root == nil {
		root = newLeaf(nil)
	}
	c := &Cursor{root: root, size: root.size}
	c.Seek(pos)
	return c
}

// Seek moves the cursor to pos, clamped to [0, BufferLen].
func (c *Cursor) Seek(pos int) {
	if pos < 0 {
		pos = 0
	}
	if pos > c.size {
		pos = c.size
	}
	c.pos = pos
}

// descend walks root to the leaf containing c.pos and caches it.
// Requires c.pos < c.size.
func (c *Cursor) descend() {
	n, off, start := c.root, c.pos, 0
	for !n.isLeaf() {
		i, rel := n.childAt(off)
		start += n.starts[i]
		n, off = n.children[i], rel
	}
	c.leaf, c.leafStart = n, start
}

// inLeaf reports whether the cached leaf covers c.pos.
func (c *Cursor) inLeaf() bool {
	return c.leaf != nil && c.pos >= c.leafStart && c.pos < c.leafStart+len(c.leaf.data)
}

// Peek returns the byte at the current position without advancing, or
// false at the end of the snapshot.
func (c *Cursor) Peek() (byte, bool) {
	if c.pos >= c.size {
		return 0, false
	}
	if !c.inLeaf() {
		c.descend()
	}
	return c.leaf.data[c.pos-c.leafStart], true
}

// Next returns the byte at the current position and advances past it, or
// false at the end of the snapshot.
func (c *Cursor) Next() (byte, bool) {
	b, ok := c.Peek()
	if ok {
		c.pos++
	}
	return b, ok
}

// Prev steps back one byte and returns the byte at the new position. It
// reports false at position 0 without moving.
func (c *Cursor) Prev() (byte, bool) {
	if c.pos == 0 {
		return 0, false
	}
	c.pos--
	return c.Peek()
}

// Position returns the cursor's absolute byte offset.
func (c *Cursor) Position() int {
	return c.pos
}

// BufferLen returns the total length of the pinned snapshot.
func (c *Cursor) BufferLen() int {
	return c.size
}

// Clone returns an independent cursor at the same position over the same
// snapshot.
func (c *Cursor) Clone() *Cursor {
	cp := *c
	return &cp
}
