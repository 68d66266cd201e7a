package cowarray

import (
	"fmt"
	"sync"
	"sync/atomic"
)

// Container is an atomically published copy-on-write array.
//
// The zero Container is not ready for use; create instances with New.
//
// All methods that replace the snapshot (Publish, InsertAt, RemoveAt,
// RemoveRange) must be called with the writer lock held. Snapshot, Len and
// IsEmpty may be called at any time without synchronization.
type Container[E any] struct {
	mu  sync.Mutex
	arr atomic.Pointer[[]E]
}

// New creates an empty container.
func New[E any]() *Container[E] {
	c := &Container[E]{}
	empty := []E{}
	c.arr.Store(&empty)
	return c
}

// NewFromSlice creates a container publishing arr as its initial snapshot.
// The caller hands over ownership: arr must not be mutated afterwards.
func NewFromSlice[E any](arr []E) *Container[E] {
	if arr == nil {
		return New[E]()
	}
	c := &Container[E]{}
	c.arr.Store(&arr)
	return c
}

// Snapshot returns the currently published array.
//
// The returned slice is immutable; callers may hold on to it for as long as
// they like and will keep seeing the state from the moment of the call.
func (c *Container[E]) Snapshot() []E {
	return *c.arr.Load()
}

// Len returns the element count of the current snapshot.
func (c *Container[E]) Len() int {
	return len(c.Snapshot())
}

// IsEmpty reports whether the current snapshot has no elements.
func (c *Container[E]) IsEmpty() bool {
	return c.Len() == 0
}

// Lock acquires the writer lock shared by all mutators of this container.
func (c *Container[E]) Lock() {
	c.mu.Lock()
}

// Unlock releases the writer lock.
func (c *Container[E]) Unlock() {
	c.mu.Unlock()
}

// Publish installs arr as the new snapshot. The caller holds the writer lock
// and hands over ownership of arr.
func (c *Container[E]) Publish(arr []E) {
	assert(arr != nil, "Publish called with nil array")
	c.arr.Store(&arr)
}

// InsertAt publishes a copy of the current snapshot with e spliced in at
// index. Index may equal the current length (append position). The caller
// holds the writer lock.
func (c *Container[E]) InsertAt(index int, e E) error {
	base := c.Snapshot()
	if index < 0 || index > len(base) {
		return fmt.Errorf("%w: insert at %d, length %d", ErrIndexOutOfBounds, index, len(base))
	}
	next := make([]E, len(base)+1)
	copy(next, base[:index])
	next[index] = e
	copy(next[index+1:], base[index:])
	c.Publish(next)
	return nil
}

// RemoveAt publishes a copy of the current snapshot with the element at index
// spliced out and returns the removed element. The caller holds the writer
// lock.
func (c *Container[E]) RemoveAt(index int) (E, error) {
	base := c.Snapshot()
	if index < 0 || index >= len(base) {
		var zero E
		return zero, fmt.Errorf("%w: remove at %d, length %d", ErrIndexOutOfBounds, index, len(base))
	}
	next := make([]E, len(base)-1)
	copy(next, base[:index])
	copy(next[index:], base[index+1:])
	c.Publish(next)
	return base[index], nil
}

// RemoveRange publishes a copy of the current snapshot with indices
// [start,end) spliced out. An empty range is a no-op. The caller holds the
// writer lock.
func (c *Container[E]) RemoveRange(start, end int) error {
	base := c.Snapshot()
	if start < 0 || end < start || end > len(base) {
		return fmt.Errorf("%w: [%d,%d) of length %d", ErrInvalidRange, start, end, len(base))
	}
	if start == end {
		return nil
	}
	next := make([]E, len(base)-(end-start))
	copy(next, base[:start])
	copy(next[start:], base[end:])
	c.Publish(next)
	return nil
}
