package chunktree

import "sort"

// node is one vertex of a content tree. Height 0 marks a leaf holding a
// contiguous byte chunk; greater heights mark internal nodes holding
// children plus a prefix table of the byte count before each child.
// Nodes are immutable once published: edits build replacement nodes along
// the root-to-leaf path and share everything else by reference.
type node struct {
	height   int
	size     int
	data     []byte  // leaf payload, nil for internal nodes
	children []*node // internal fan-out, nil for leaves
	starts   []int   // starts[i] = total bytes in children[:i]
}

func newLeaf(data []byte) *node {
	return &node{size: len(data), data: data}
}

// newInternal builds an internal node over children, which must be
// non-empty and share a common height.
func newInternal(children []*node) *node {
	n := &node{
		height:   children[0].height + 1,
		children: children,
		starts:   make([]int, len(children)),
	}
	for i, c := range children {
		n.starts[i] = n.size
		n.size += c.size
	}
	return n
}

func (n *node) isLeaf() bool {
	return n.height == 0
}

// childAt binary-searches the prefix table for the child covering off,
// returning its index and off rebased into that child. An off at or past
// the subtree end maps to the last child.
func (n *node) childAt(off int) (int, int) {
	idx := sort.Search(len(n.starts), func(i int) bool { return n.starts[i] > off }) - 1
	return idx, off - n.starts[idx]
}

// appendRange appends [start, end) of the subtree to dst. The caller must
// pre-clamp the bounds to 0 <= start < end <= n.size.
func (n *node) appendRange(dst *[]byte, start, end int) {
	if n.isLeaf() {
		*dst = append(*dst, n.data[start:end]...)
		return
	}
	i, _ := n.childAt(start)
	for ; i < len(n.children); i++ {
		cs := n.starts[i]
		if cs >= end {
			break
		}
		c := n.children[i]
		lo, hi := start-cs, end-cs
		if lo < 0 {
			lo = 0
		}
		if hi > c.size {
			hi = c.size
		}
		c.appendRange(dst, lo, hi)
	}
}
