package chunktree

import "io"

// Tree is an immutable, height-balanced tree of byte chunks. The zero value
// is an empty tree with default geometry. Insert and Delete return new
// trees; the receiver and every cursor created from it keep reading the old
// content.
type Tree struct {
	root *node
	cfg  Config
}

// New builds a tree over data. Leaves alias subranges of data rather than
// copying it, so the caller must not modify the slice afterwards; bytes
// introduced by later edits live in buffers the tree owns. An invalid or
// zero Config falls back to DefaultConfig values.
func New(data []byte, cfg Config) Tree {
	cfg = cfg.withDefaults()
	return Tree{root: buildTree(splitChunks(data, cfg.ChunkSize), cfg), cfg: cfg}
}

// splitChunks slices data into leaves of at most chunkSize bytes.
func splitChunks(data []byte, chunkSize int) []*node {
	if len(data) == 0 {
		return nil
	}
	leaves := make([]*node, 0, (len(data)+chunkSize-1)/chunkSize)
	for len(data) > chunkSize {
		leaves = append(leaves, newLeaf(data[:chunkSize:chunkSize]))
		data = data[chunkSize:]
	}
	return append(leaves, newLeaf(data))
}

// buildTree stacks parent levels until a single root remains.
func buildTree(nodes []*node, cfg Config) *node {
	if len(nodes) == 0 {
		return newLeaf(nil)
	}
	for len(nodes) > 1 {
		nodes = regroup(nodes, cfg)
	}
	return nodes[0]
}

// regroup wraps nodes into the minimum number of internal parents that
// respects the fan-out limit, sizing groups evenly so none of them
// underflows.
func regroup(nodes []*node, cfg Config) []*node {
	if len(nodes) <= cfg.MaxChildren {
		return []*node{newInternal(nodes)}
	}
	groups := (len(nodes) + cfg.MaxChildren - 1) / cfg.MaxChildren
	out := make([]*node, 0, groups)
	for g := 0; g < groups; g++ {
		lo := g * len(nodes) / groups
		hi := (g + 1) * len(nodes) / groups
		out = append(out, newInternal(nodes[lo:hi:hi]))
	}
	return out
}

// Len returns the total byte length.
func (t Tree) Len() int {
	if t.root == nil {
		return 0
	}
	return t.root.size
}

// Height returns the number of node levels. An empty or single-leaf tree
// has height 1.
func (t Tree) Height() int {
	if t.root == nil {
		return 1
	}
	return t.root.height + 1
}

// Config returns the geometry the tree carries.
func (t Tree) Config() Config {
	return t.cfg.withDefaults()
}

// Read returns a copy of [off, off+n). The request is clamped to the tree
// bounds; out-of-range reads return the available bytes, possibly none.
// Read never fails.
func (t Tree) Read(off, n int) []byte {
	if t.root == nil || n <= 0 {
		return nil
	}
	start, end := off, off+n
	if start < 0 {
		start = 0
	}
	if end > t.root.size {
		end = t.root.size
	}
	if start >= end {
		return nil
	}
	out := make([]byte, 0, end-start)
	t.root.appendRange(&out, start, end)
	return out
}

// String materializes the full content. Use sparingly for large trees.
func (t Tree) String() string {
	return string(t.Read(0, t.Len()))
}

// WriteTo streams the full content to w chunk by chunk without
// materializing it.
func (t Tree) WriteTo(w io.Writer) (int64, error) {
	var written int64
	it := t.Chunks()
	for it.Next() {
		n, err := w.Write(it.Chunk())
		written += int64(n)
		if err != nil {
			return written, err
		}
	}
	return written, nil
}

// Insert returns a tree with data spliced in at off, clamped to [0, Len].
// Inserting nothing returns the receiver unchanged. The target leaf is
// split at the insertion point and the payload becomes one or more new
// leaves; every ancestor on the path is replaced, everything else is
// shared with the receiver.
func (t Tree) Insert(off int, data []byte) Tree {
	if len(data) == 0 {
		return t
	}
	cfg := t.Config()
	root := t.root
	if root == nil {
		root = newLeaf(nil)
	}
	if off < 0 {
		off = 0
	}
	if off > root.size {
		off = root.size
	}
	return Tree{root: buildTree(insertRec(root, off, data, cfg), cfg), cfg: cfg}
}

// insertRec rebuilds the path from n down to the insertion leaf, returning
// the replacement node or nodes at n's height. More than one node comes
// back when the splice overflowed the fan-out (or, at height 0, the chunk
// size).
func insertRec(n *node, off int, data []byte, cfg Config) []*node {
	if n.isLeaf() {
		buf := make([]byte, 0, len(n.data)+len(data))
		buf = append(buf, n.data[:off]...)
		buf = append(buf, data...)
		buf = append(buf, n.data[off:]...)
		return splitChunks(buf, cfg.ChunkSize)
	}
	idx, rel := n.childAt(off)
	repl := insertRec(n.children[idx], rel, data, cfg)
	children := make([]*node, 0, len(n.children)-1+len(repl))
	children = append(children, n.children[:idx]...)
	children = append(children, repl...)
	children = append(children, n.children[idx+1:]...)
	return regroup(children, cfg)
}

// Delete returns a tree without [start, end), clamped to the tree bounds.
// An empty range returns the receiver unchanged. Fully covered leaves are
// dropped, edge leaves are trimmed, and internal nodes left under
// MaxChildren/2 children are merged with a sibling (right first, then
// left) or redistributed when merging would overflow.
func (t Tree) Delete(start, end int) Tree {
	cfg := t.Config()
	if t.root == nil {
		return Tree{root: newLeaf(nil), cfg: cfg}
	}
	if start < 0 {
		start = 0
	}
	if end > t.root.size {
		end = t.root.size
	}
	if start >= end {
		return Tree{root: t.root, cfg: cfg}
	}
	root := deleteRec(t.root, start, end, cfg)
	if root == nil {
		root = newLeaf(nil)
	}
	return Tree{root: normalizeRoot(root), cfg: cfg}
}

// deleteRec removes [start, end) from the subtree, returning the
// replacement node or nil when the subtree is fully covered. Bounds are
// pre-clamped to the subtree.
func deleteRec(n *node, start, end int, cfg Config) *node {
	if start <= 0 && end >= n.size {
		return nil
	}
	if n.isLeaf() {
		buf := make([]byte, 0, n.size-(end-start))
		buf = append(buf, n.data[:start]...)
		buf = append(buf, n.data[end:]...)
		return newLeaf(buf)
	}
	children := make([]*node, 0, len(n.children))
	for i, c := range n.children {
		cs := n.starts[i]
		ce := cs + c.size
		if ce <= start || cs >= end {
			children = append(children, c)
			continue
		}
		lo, hi := start-cs, end-cs
		if lo < 0 {
			lo = 0
		}
		if hi > c.size {
			hi = c.size
		}
		if repl := deleteRec(c, lo, hi, cfg); repl != nil {
			children = append(children, repl)
		}
	}
	if len(children) == 0 {
		return nil
	}
	return newInternal(rebalance(children, cfg))
}

// rebalance repairs internal children whose fan-out fell below
// MaxChildren/2 after a delete, merging each with its right sibling first,
// then the left, redistributing instead when the merged pair would
// overflow.
func rebalance(children []*node, cfg Config) []*node {
	if children[0].isLeaf() {
		return children // leaves get trimmed, never merged
	}
	minc := cfg.minChildren()
	out := children
	for i := 0; i < len(out) && len(out) > 1; {
		if len(out[i].children) >= minc {
			i++
			continue
		}
		li := i
		if li == len(out)-1 {
			li = i - 1
		}
		left, right := out[li], out[li+1]
		combined := make([]*node, 0, len(left.children)+len(right.children))
		combined = append(combined, left.children...)
		combined = append(combined, right.children...)
		// The seam child dragged in from the deleted side may itself be
		// deficient; repair one level down before wrapping.
		combined = rebalance(combined, cfg)
		if len(combined) <= cfg.MaxChildren {
			out[li] = newInternal(combined)
			out = append(out[:li+1], out[li+2:]...)
		} else {
			mid := len(combined) / 2
			out[li] = newInternal(combined[:mid])
			out[li+1] = newInternal(combined[mid:])
		}
		if li < i {
			i = li
		}
	}
	return out
}

// normalizeRoot collapses single-child chains left at the top after a
// delete.
func normalizeRoot(n *node) *node {
	for !n.isLeaf() && len(n.children) == 1 {
		n = n.children[0]
	}
	return n
}
