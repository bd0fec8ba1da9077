package deque

// BlockSize is the number of elements stored in one block.
const BlockSize = 128

// A block is one fixed-size segment of element storage. Each block is owned by
// exactly one directory slot.
type block [BlockSize]int

// A directory maps bucket numbers to blocks. Only the slot pointers move when
// the directory grows, the blocks themselves are never copied. An empty slot is
// nil.
type directory []*block

// alloc makes sure that slot b owns a block. It returns true if a new block
// was allocated.
func (dir directory) alloc(b int) bool {
	if dir[b] != nil {
		return false
	}
	dir[b] = new(block)
	return true
}

// free drops the block owned by slot b. It returns true if there was one.
func (dir directory) free(b int) bool {
	if dir[b] == nil {
		return false
	}
	dir[b] = nil
	return true
}

// clear drops every block but keeps the slots.
func (dir directory) clear() {
	for i := range dir {
		dir[i] = nil
	}
}

// allocated returns the number of slots that own a block.
func (dir directory) allocated() (n int) {
	for _, blk := range dir {
		if blk != nil {
			n++
		}
	}
	return n
}

// relocate returns a new directory with capacity slots. The n blocks starting
// at slot first (wrapping around the end of dir) are moved into slots 0..n-1.
// Ownership moves with the pointer, the slots in dir are emptied.
func (dir directory) relocate(first, n, capacity int) directory {
	next := make(directory, capacity)
	for j := 0; j < n; j++ {
		i := (first + j) % len(dir)
		next[j], dir[i] = dir[i], nil
	}
	return next
}
