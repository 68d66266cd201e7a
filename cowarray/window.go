package cowarray

import "fmt"

// Window is an index-range view over a container, used for bulk mutation
// restricted to a window of the snapshot. Elements outside [start,end) are
// carried over untouched.
//
// A window is only meaningful for the snapshot it was created against, so it
// must be created and consumed while holding the writer lock.
type Window[E any] struct {
	c     *Container[E]
	start int
	end   int
}

// Window creates a range view over indices [start,end) of the current
// snapshot. The caller holds the writer lock.
func (c *Container[E]) Window(start, end int) (Window[E], error) {
	if start < 0 || end < start || end > c.Len() {
		return Window[E]{}, fmt.Errorf("%w: [%d,%d) of length %d", ErrInvalidRange, start, end, c.Len())
	}
	return Window[E]{c: c, start: start, end: end}, nil
}

// Len returns the number of elements covered by the window.
func (w Window[E]) Len() int {
	return w.end - w.start
}

// Slice returns the windowed portion of the snapshot the window was created
// against. The result shares backing storage with the snapshot and must not
// be mutated.
func (w Window[E]) Slice() []E {
	assert(w.c != nil, "Slice called on zero window")
	return w.c.Snapshot()[w.start:w.end]
}

// RemoveIf publishes a snapshot with all window elements matching pred
// spliced out and reports whether anything was removed. The caller holds the
// writer lock.
func (w Window[E]) RemoveIf(pred func(E) bool) bool {
	assert(w.c != nil, "RemoveIf called on zero window")
	assert(pred != nil, "RemoveIf called with nil predicate")
	base := w.c.Snapshot()
	assert(w.end <= len(base), "window outlived its snapshot")
	next := make([]E, 0, len(base))
	next = append(next, base[:w.start]...)
	removed := false
	for _, e := range base[w.start:w.end] {
		if pred(e) {
			removed = true
			continue
		}
		next = append(next, e)
	}
	if !removed {
		return false
	}
	next = append(next, base[w.end:]...)
	w.c.Publish(next)
	return true
}

// Clear publishes a snapshot with the whole window spliced out. The caller
// holds the writer lock.
func (w Window[E]) Clear() bool {
	assert(w.c != nil, "Clear called on zero window")
	if w.Len() == 0 {
		return false
	}
	err := w.c.RemoveRange(w.start, w.end)
	assert(err == nil, "Clear window range became invalid")
	return true
}
