// Package deque implements a double-ended queue of ints backed by a directory
// of fixed-size blocks.
//
// The elements live on a virtual ring of Capacity()*BlockSize positions. The
// live window starts at head and ends just before tail; position pos belongs to
// bucket pos/BlockSize at offset pos%BlockSize. A bucket's block is allocated
// when the first element is written into it and released as soon as the last
// element leaves it, so memory follows the live span and not the historical
// maximum. When one end is about to run into a bucket still used by the other
// end, the directory doubles and the live block pointers are moved to the front
// of the new directory. Elements are never copied by growth.
//
// A Deque must not be used from several goroutines at the same time.
package deque

import (
	log "github.com/sirupsen/logrus"
	"github.com/skyline93/deque/internal/errors"
)

var (
	// ErrEmpty is returned when removing or peeking at an element of an empty
	// deque.
	ErrEmpty = errors.New("deque is empty")

	// ErrOutOfRange is returned when an index is outside of [0, Size()).
	ErrOutOfRange = errors.New("index out of range")
)

// Deque is a double-ended queue of ints. The zero value is an empty deque
// ready to use.
type Deque struct {
	dir    directory
	blocks int // number of slots in dir owning a block
	size   int

	// head and tail are positions on the ring, tail is one past the last
	// element. Both are always taken modulo ring().
	head int
	tail int
}

// Stats describes the memory footprint of a deque.
type Stats struct {
	Size     int // number of elements
	Capacity int // number of directory slots
	Buckets  int // number of allocated blocks
}

// New returns an empty deque. No memory is allocated until the first push.
func New() *Deque {
	return &Deque{}
}

// NewSized returns a deque holding n zero elements.
func NewSized(n int) *Deque {
	d := New()
	for i := 0; i < n; i++ {
		d.PushBack(0)
	}
	return d
}

// Of returns a deque holding values, in order.
func Of(values ...int) *Deque {
	d := New()
	for _, v := range values {
		d.PushBack(v)
	}
	return d
}

// Clone returns a deque with the same elements as d and independent storage.
func (d *Deque) Clone() *Deque {
	c := New()
	for i := 0; i < d.size; i++ {
		c.PushBack(d.get(i))
	}
	return c
}

// Move returns a deque which takes over the storage of d. Afterwards d is
// empty.
func (d *Deque) Move() *Deque {
	m := New()
	m.Swap(d)
	return m
}

// Assign replaces the contents of d with a copy of src. The copy is built
// first and then swapped in, so d == src is fine.
func (d *Deque) Assign(src *Deque) {
	tmp := src.Clone()
	d.Swap(tmp)
}

// Swap exchanges the contents of d and other without copying any element.
func (d *Deque) Swap(other *Deque) {
	*d, *other = *other, *d
}

// Size returns the number of elements.
func (d *Deque) Size() int {
	return d.size
}

// Empty returns true iff the deque holds no elements.
func (d *Deque) Empty() bool {
	return d.size == 0
}

// Capacity returns the number of directory slots.
func (d *Deque) Capacity() int {
	return len(d.dir)
}

// Stats returns the current footprint of the deque.
func (d *Deque) Stats() Stats {
	return Stats{
		Size:     d.size,
		Capacity: len(d.dir),
		Buckets:  d.blocks,
	}
}

// PushBack appends v after the last element.
func (d *Deque) PushBack(v int) {
	d.reserveBack()

	b := bucket(d.tail)
	d.alloc(b)
	d.dir[b][offset(d.tail)] = v

	d.tail = d.fwd(d.tail)
	d.size++
}

// PushFront inserts v before the first element.
func (d *Deque) PushFront(v int) {
	d.reserveFront()

	pos := d.bwd(d.head)
	b := bucket(pos)
	d.alloc(b)
	d.dir[b][offset(pos)] = v

	d.head = pos
	d.size++
}

// PopBack removes and returns the last element.
func (d *Deque) PopBack() (int, error) {
	if d.size == 0 {
		return 0, errors.WithStack(ErrEmpty)
	}

	d.tail = d.bwd(d.tail)
	b := bucket(d.tail)
	v := d.dir[b][offset(d.tail)]
	d.size--

	d.vacate(b)
	return v, nil
}

// PopFront removes and returns the first element.
func (d *Deque) PopFront() (int, error) {
	if d.size == 0 {
		return 0, errors.WithStack(ErrEmpty)
	}

	b := bucket(d.head)
	v := d.dir[b][offset(d.head)]
	d.head = d.fwd(d.head)
	d.size--

	d.vacate(b)
	return v, nil
}

// Front returns the first element.
func (d *Deque) Front() (int, error) {
	if d.size == 0 {
		return 0, errors.WithStack(ErrEmpty)
	}
	return d.get(0), nil
}

// Back returns the last element.
func (d *Deque) Back() (int, error) {
	if d.size == 0 {
		return 0, errors.WithStack(ErrEmpty)
	}
	return d.get(d.size - 1), nil
}

// At returns the element at index i, counted from the front.
func (d *Deque) At(i int) (int, error) {
	if err := d.check(i); err != nil {
		return 0, err
	}
	return d.get(i), nil
}

// Set overwrites the element at index i, counted from the front.
func (d *Deque) Set(i, v int) error {
	if err := d.check(i); err != nil {
		return err
	}

	pos := d.position(i)
	d.dir[bucket(pos)][offset(pos)] = v
	return nil
}

// Values returns a copy of all elements in order.
func (d *Deque) Values() []int {
	out := make([]int, 0, d.size)

	pos := d.head
	for left := d.size; left > 0; {
		b, off := bucket(pos), offset(pos)
		n := min(BlockSize-off, left)
		out = append(out, d.dir[b][off:off+n]...)

		left -= n
		pos = (pos + n) % d.ring()
	}

	return out
}

// Clear removes all elements and releases every block. The directory keeps
// its capacity.
func (d *Deque) Clear() {
	d.size, d.head, d.tail = 0, 0, 0
	d.dir.clear()
	d.blocks = 0
}

// Release clears the deque and drops the directory as well.
func (d *Deque) Release() {
	d.Clear()
	d.dir = nil
}

// reserveBack grows the directory if the next PushBack would enter the bucket
// that holds the front of the deque.
func (d *Deque) reserveBack() {
	if len(d.dir) == 0 ||
		(d.size > 0 && offset(d.tail) == 0 && bucket(d.tail) == bucket(d.head)) {
		d.grow()
	}
}

// reserveFront grows the directory if the next PushFront would enter the
// bucket that holds the back of the deque.
func (d *Deque) reserveFront() {
	if len(d.dir) == 0 ||
		(d.size > 0 && offset(d.head) == 0 && bucket(d.bwd(d.head)) == bucket(d.bwd(d.tail))) {
		d.grow()
	}
}

// grow doubles the directory. The live blocks are moved, in order, to the
// first slots of the new directory; head keeps its offset within its block.
func (d *Deque) grow() {
	capacity := max(2, 2*len(d.dir))

	first, n := 0, 0
	if d.size > 0 {
		first = bucket(d.head)
		n = (offset(d.head) + d.size + BlockSize - 1) / BlockSize
	}

	log.Debugf("deque: growing directory from %d to %d slots, moving %d blocks", len(d.dir), capacity, n)

	d.dir = d.dir.relocate(first, n, capacity)
	d.head = offset(d.head)
	d.tail = (d.head + d.size) % d.ring()
}

func (d *Deque) alloc(b int) {
	if d.dir.alloc(b) {
		d.blocks++
	}
}

// vacate releases the block of bucket b if no element is left in it.
func (d *Deque) vacate(b int) {
	if d.size == 0 || (b != bucket(d.head) && b != bucket(d.bwd(d.tail))) {
		if d.dir.free(b) {
			d.blocks--
		}
	}
}

func (d *Deque) check(i int) error {
	if i < 0 || i >= d.size {
		return errors.Wrapf(ErrOutOfRange, "index %d, size %d", i, d.size)
	}
	return nil
}

// get returns the element at index i, which must be valid.
func (d *Deque) get(i int) int {
	pos := d.position(i)
	return d.dir[bucket(pos)][offset(pos)]
}

func (d *Deque) position(i int) int {
	return (d.head + i) % d.ring()
}

func (d *Deque) ring() int {
	return len(d.dir) * BlockSize
}

func (d *Deque) fwd(pos int) int {
	return (pos + 1) % d.ring()
}

func (d *Deque) bwd(pos int) int {
	return (pos + d.ring() - 1) % d.ring()
}

func bucket(pos int) int { return pos / BlockSize }
func offset(pos int) int { return pos % BlockSize }
