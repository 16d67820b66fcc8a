package chunktree

// chunkFrame records one level of the tree walk.
type chunkFrame struct {
	node     *node
	childIdx int
}

// ChunkIterator walks a tree's leaf chunks in order:
//
//	it := t.Chunks()
//	for it.Next() {
//		process(it.Chunk())
//	}
//
// The returned slices alias tree storage and must not be modified.
type ChunkIterator struct {
	stack []chunkFrame
	chunk []byte
	start int
	next  int
}

// Chunks returns an iterator over the tree's leaf chunks.
func (t Tree) Chunks() *ChunkIterator {
	it := &ChunkIterator{stack: make([]chunkFrame, 0, 8)}
	if t.root != nil && t.root.size > 0 {
		it.stack = append(it.stack, chunkFrame{node: t.root})
	}
	return it
}

// Next advances to the next chunk, reporting false when the walk is done.
func (it *ChunkIterator) Next() bool {
	for len(it.stack) > 0 {
		frame := &it.stack[len(it.stack)-1]
		n := frame.node
		if n.isLeaf() {
			it.stack = it.stack[:len(it.stack)-1]
			it.chunk = n.data
			it.start = it.next
			it.next += len(n.data)
			return true
		}
		if frame.childIdx < len(n.children) {
			child := n.children[frame.childIdx]
			frame.childIdx++
			it.stack = append(it.stack, chunkFrame{node: child})
			continue
		}
		it.stack = it.stack[:len(it.stack)-1]
	}
	return false
}

// Chunk returns the current chunk.
func (it *ChunkIterator) Chunk() []byte {
	return it.chunk
}

// Start returns the absolute offset of the current chunk's first byte.
func (it *ChunkIterator) Start() int {
	return it.start
}
