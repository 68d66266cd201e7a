package cowset

/*
BSD 3-Clause License

Copyright (c) Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import "iter"

// bound is an optional endpoint of a view.
type bound[E any] struct {
	value E
	incl  bool
	has   bool
}

// View is a bounded, optionally reversed projection of a Set.
//
// A view holds no elements of its own: every operation re-derives an index
// window from the snapshot current at call time, so a view always reflects
// the live contents of the shared backing array. Views are cheap to create
// and safe to discard at any time.
//
// Bounds are stored in the physical, root-ascending sense regardless of the
// view's direction. A view of a view is again a single View expressed against
// the root set, never a chain of wrappers.
type View[E any] struct {
	set  *Set[E]
	lo   bound[E]
	hi   bound[E]
	desc bool
}

var _ Navigable[int] = (*View[int])(nil)

// newView validates bounds and builds a view. Endpoint consistency is checked
// in both comparison directions: a comparator reporting contradictory signs
// is as much a usage error as lower > upper.
func (s *Set[E]) newView(lo, hi bound[E], desc bool) (*View[E], error) {
	if lo.has && hi.has {
		fwd := sgn(s.compare(lo.value, hi.value))
		bwd := sgn(s.compare(hi.value, lo.value))
		if fwd != -bwd {
			return nil, ErrComparatorContract
		}
		if fwd > 0 {
			return nil, ErrInvalidBounds
		}
	}
	return &View[E]{set: s, lo: lo, hi: hi, desc: desc}, nil
}

// SubSet returns a view of the elements from `from` to `to`, with inclusive
// endpoints as flagged. Fails with ErrInvalidBounds if from > to.
func (s *Set[E]) SubSet(from E, fromIncl bool, to E, toIncl bool) (*View[E], error) {
	return s.newView(bound[E]{from, fromIncl, true}, bound[E]{to, toIncl, true}, false)
}

// HeadSet returns a view of the elements up to `to`.
func (s *Set[E]) HeadSet(to E, incl bool) (*View[E], error) {
	return s.newView(bound[E]{}, bound[E]{to, incl, true}, false)
}

// TailSet returns a view of the elements from `from` on.
func (s *Set[E]) TailSet(from E, incl bool) (*View[E], error) {
	return s.newView(bound[E]{from, incl, true}, bound[E]{}, false)
}

// Between returns a view of the half-open range [from, to).
func (s *Set[E]) Between(from, to E) (*View[E], error) {
	return s.SubSet(from, true, to, false)
}

// Until returns a view of the elements strictly below `to`.
func (s *Set[E]) Until(to E) (*View[E], error) {
	return s.HeadSet(to, false)
}

// From returns a view of the elements at or above `from`.
func (s *Set[E]) From(from E) (*View[E], error) {
	return s.TailSet(from, true)
}

// DescendingSet returns an unbounded view iterating in descending order.
func (s *Set[E]) DescendingSet() *View[E] {
	return &View[E]{set: s, desc: true}
}

// --- Bound translation ------------------------------------------------------

// window computes the index range [start,end) that the view covers in arr.
// The range is recomputed for every call; a view caches nothing.
func (v *View[E]) window(arr []E) (start, end int) {
	start, end = 0, len(arr)
	if v.lo.has {
		pos, found := v.set.compare.search(arr, v.lo.value)
		if found && !v.lo.incl {
			pos++
		}
		start = pos
	}
	if v.hi.has {
		pos, found := v.set.compare.search(arr, v.hi.value)
		if found && v.hi.incl {
			pos++
		}
		end = pos
	}
	if end < start {
		end = start
	}
	return start, end
}

// inBounds reports whether e lies within the view's bounds.
func (v *View[E]) inBounds(e E) bool {
	if v.lo.has {
		c := v.set.compare(e, v.lo.value)
		if c < 0 || (c == 0 && !v.lo.incl) {
			return false
		}
	}
	if v.hi.has {
		c := v.set.compare(e, v.hi.value)
		if c > 0 || (c == 0 && !v.hi.incl) {
			return false
		}
	}
	return true
}

// Comparator returns the order of the view: the root comparator, reversed
// when the view is descending.
func (v *View[E]) Comparator() Comparator[E] {
	if v.desc {
		return Reversed(v.set.compare)
	}
	return v.set.compare
}

// Len returns the number of elements currently within bounds.
func (v *View[E]) Len() int {
	start, end := v.window(v.set.arr.Snapshot())
	return end - start
}

// IsEmpty reports whether no element currently lies within bounds.
func (v *View[E]) IsEmpty() bool {
	return v.Len() == 0
}

// --- Membership and mutation ------------------------------------------------

// Contains reports whether e lies within bounds and is an element of the set.
func (v *View[E]) Contains(e E) bool {
	return v.inBounds(e) && v.set.Contains(e)
}

// Add inserts e through the view. Inserting an element outside the view's
// bounds is a caller error and fails with ErrOutOfBounds; a view never
// silently clamps.
func (v *View[E]) Add(e E) (bool, error) {
	if !v.inBounds(e) {
		return false, ErrOutOfBounds
	}
	return v.set.Add(e)
}

// Remove deletes e if it lies within bounds and is present. Out-of-bounds
// elements report false: membership queries are not mutations.
func (v *View[E]) Remove(e E) bool {
	return v.inBounds(e) && v.set.Remove(e)
}

// AddAll inserts all given elements through the view. Every element is
// bounds-checked before any mutation is attempted, so a failing call leaves
// the set untouched.
func (v *View[E]) AddAll(elems ...E) (bool, error) {
	for _, e := range elems {
		if !v.inBounds(e) {
			return false, ErrOutOfBounds
		}
	}
	return v.set.AddAll(elems...)
}

// ContainsAll reports whether every given element lies within bounds and is
// present, checked against one snapshot.
func (v *View[E]) ContainsAll(elems ...E) bool {
	arr := v.set.arr.Snapshot()
	start, end := v.window(arr)
	win := arr[start:end]
	for _, e := range elems {
		if _, found := v.set.compare.search(win, e); !found {
			return false
		}
	}
	return true
}

// RemoveIf deletes all in-bounds elements matching pred and reports whether
// the set changed. Elements outside the window are never touched.
func (v *View[E]) RemoveIf(pred func(E) bool) bool {
	v.set.arr.Lock()
	defer v.set.arr.Unlock()
	start, end := v.window(v.set.arr.Snapshot())
	w, err := v.set.arr.Window(start, end)
	assertf(err == nil, "view window out of range for its own snapshot")
	if !w.RemoveIf(pred) {
		return false
	}
	v.set.bus.publish(Event[E]{Kind: EventBulk, Len: v.set.arr.Len()})
	return true
}

// RemoveAll deletes every in-bounds element comparing equal to one of elems.
func (v *View[E]) RemoveAll(elems ...E) bool {
	if len(elems) == 0 {
		return false
	}
	return v.RemoveIf(v.set.memberOf(elems))
}

// RetainAll deletes every in-bounds element comparing equal to none of elems.
// Elements outside the view's bounds are retained regardless.
func (v *View[E]) RetainAll(elems ...E) bool {
	member := v.set.memberOf(elems)
	return v.RemoveIf(func(e E) bool { return !member(e) })
}

// Clear removes all elements within bounds, leaving the rest of the root set
// untouched.
func (v *View[E]) Clear() {
	v.set.arr.Lock()
	defer v.set.arr.Unlock()
	start, end := v.window(v.set.arr.Snapshot())
	w, err := v.set.arr.Window(start, end)
	assertf(err == nil, "view window out of range for its own snapshot")
	if w.Clear() {
		v.set.bus.publish(Event[E]{Kind: EventBulk, Len: v.set.arr.Len()})
	}
}

// --- Navigation -------------------------------------------------------------

// Lower returns the greatest element of the view strictly below e in the
// view's order. When descending, that is the root's Higher; results outside
// the view's bounds are clamped to absent.
func (v *View[E]) Lower(e E) (E, bool) {
	return v.navigate(higher[E], lower[E], e)
}

// Floor returns the greatest element of the view at or below e in the view's
// order.
func (v *View[E]) Floor(e E) (E, bool) {
	return v.navigate(ceiling[E], floor[E], e)
}

// Ceiling returns the least element of the view at or above e in the view's
// order.
func (v *View[E]) Ceiling(e E) (E, bool) {
	return v.navigate(floor[E], ceiling[E], e)
}

// Higher returns the least element of the view strictly above e in the
// view's order.
func (v *View[E]) Higher(e E) (E, bool) {
	return v.navigate(lower[E], higher[E], e)
}

type navigator[E any] func(Comparator[E], []E, E) (E, bool)

func (v *View[E]) navigate(descPrimitive, ascPrimitive navigator[E], e E) (E, bool) {
	primitive := ascPrimitive
	if v.desc {
		primitive = descPrimitive
	}
	r, ok := primitive(v.set.compare, v.set.arr.Snapshot(), e)
	if !ok || !v.inBounds(r) {
		var zero E
		return zero, false
	}
	return r, true
}

// First returns the least element of the view in the view's order, or
// ErrEmptySet if no element lies within bounds.
func (v *View[E]) First() (E, error) {
	arr := v.set.arr.Snapshot()
	start, end := v.window(arr)
	if start == end {
		var zero E
		return zero, ErrEmptySet
	}
	if v.desc {
		return arr[end-1], nil
	}
	return arr[start], nil
}

// Last returns the greatest element of the view in the view's order, or
// ErrEmptySet if no element lies within bounds.
func (v *View[E]) Last() (E, error) {
	arr := v.set.arr.Snapshot()
	start, end := v.window(arr)
	if start == end {
		var zero E
		return zero, ErrEmptySet
	}
	if v.desc {
		return arr[start], nil
	}
	return arr[end-1], nil
}

// PollFirst removes and returns the view's least element in the view's
// order.
func (v *View[E]) PollFirst() (E, bool) {
	return v.poll(!v.desc)
}

// PollLast removes and returns the view's greatest element in the view's
// order.
func (v *View[E]) PollLast() (E, bool) {
	return v.poll(v.desc)
}

// poll removes the bound-respecting extreme: the physically lowest windowed
// element if atStart, else the physically highest.
func (v *View[E]) poll(atStart bool) (E, bool) {
	var zero E
	if v.set.arr.IsEmpty() {
		return zero, false
	}
	v.set.arr.Lock()
	defer v.set.arr.Unlock()
	start, end := v.window(v.set.arr.Snapshot())
	if start == end {
		return zero, false
	}
	at := end - 1
	if atStart {
		at = start
	}
	e, err := v.set.arr.RemoveAt(at)
	assertf(err == nil, "view window out of range for its own snapshot")
	v.set.bus.publish(Event[E]{Kind: EventRemove, Elem: e, Len: v.set.arr.Len()})
	return e, true
}

// --- Iteration --------------------------------------------------------------

// Snapshot returns the windowed elements in the view's order as a freshly
// allocated slice.
func (v *View[E]) Snapshot() []E {
	arr := v.set.arr.Snapshot()
	start, end := v.window(arr)
	out := make([]E, end-start)
	if v.desc {
		for i, e := range arr[start:end] {
			out[len(out)-1-i] = e
		}
		return out
	}
	copy(out, arr[start:end])
	return out
}

// Each calls fn for every windowed element in the view's order over one
// snapshot. Iteration stops early if fn returns false.
func (v *View[E]) Each(fn func(E) bool) {
	for e := range v.All() {
		if !fn(e) {
			return
		}
	}
}

// All returns a sequence over the windowed elements in the view's order,
// fixed to the snapshot current at the All call.
func (v *View[E]) All() iter.Seq[E] {
	arr := v.set.arr.Snapshot()
	start, end := v.window(arr)
	return rangeSeq(arr, start, end, v.desc)
}

// Backward returns a sequence over the windowed elements in the view's
// reverse order, with the same snapshot semantics as All.
func (v *View[E]) Backward() iter.Seq[E] {
	arr := v.set.arr.Snapshot()
	start, end := v.window(arr)
	return rangeSeq(arr, start, end, !v.desc)
}

func rangeSeq[E any](arr []E, start, end int, desc bool) iter.Seq[E] {
	return func(yield func(E) bool) {
		if desc {
			for i := end - 1; i >= start; i-- {
				if !yield(arr[i]) {
					return
				}
			}
			return
		}
		for i := start; i < end; i++ {
			if !yield(arr[i]) {
				return
			}
		}
	}
}

// Shards splits one snapshot of the view into up to n contiguous sub-slices
// in the view's order. Shards of a descending view are reversed copies;
// ascending shards share the snapshot's backing storage.
func (v *View[E]) Shards(n int) [][]E {
	if v.desc {
		return shards(v.Snapshot(), n)
	}
	arr := v.set.arr.Snapshot()
	start, end := v.window(arr)
	return shards(arr[start:end], n)
}

// --- View composition -------------------------------------------------------

// SubSet returns a sub-view from `from` to `to`, both expressed in the
// view's order. Endpoints must lie within the view's bounds.
func (v *View[E]) SubSet(from E, fromIncl bool, to E, toIncl bool) (*View[E], error) {
	if !v.inBounds(from) || !v.inBounds(to) {
		return nil, ErrOutOfBounds
	}
	lo, hi := bound[E]{from, fromIncl, true}, bound[E]{to, toIncl, true}
	if v.desc {
		lo, hi = hi, lo
	}
	return v.set.newView(lo, hi, v.desc)
}

// HeadSet returns a sub-view up to `to` in the view's order, keeping the
// view's opposite bound.
func (v *View[E]) HeadSet(to E, incl bool) (*View[E], error) {
	if !v.inBounds(to) {
		return nil, ErrOutOfBounds
	}
	if v.desc {
		return v.set.newView(bound[E]{to, incl, true}, v.hi, true)
	}
	return v.set.newView(v.lo, bound[E]{to, incl, true}, false)
}

// TailSet returns a sub-view from `from` on in the view's order, keeping the
// view's opposite bound.
func (v *View[E]) TailSet(from E, incl bool) (*View[E], error) {
	if !v.inBounds(from) {
		return nil, ErrOutOfBounds
	}
	if v.desc {
		return v.set.newView(v.lo, bound[E]{from, incl, true}, true)
	}
	return v.set.newView(bound[E]{from, incl, true}, v.hi, false)
}

// Between returns a sub-view of the half-open range [from, to) in the view's
// order.
func (v *View[E]) Between(from, to E) (*View[E], error) {
	return v.SubSet(from, true, to, false)
}

// Until returns a sub-view of the elements strictly below `to` in the view's
// order.
func (v *View[E]) Until(to E) (*View[E], error) {
	return v.HeadSet(to, false)
}

// From returns a sub-view of the elements at or above `from` in the view's
// order.
func (v *View[E]) From(from E) (*View[E], error) {
	return v.TailSet(from, true)
}

// DescendingSet returns the same view with its direction flipped.
func (v *View[E]) DescendingSet() *View[E] {
	return &View[E]{set: v.set, lo: v.lo, hi: v.hi, desc: !v.desc}
}

func sgn(c int) int {
	switch {
	case c < 0:
		return -1
	case c > 0:
		return 1
	}
	return 0
}
