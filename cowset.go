package cowset

/*
BSD 3-Clause License

Copyright (c) Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"cmp"
	"iter"

	"github.com/npillmayer/cowset/cowarray"
)

// Navigable is the operation set shared by a full Set and every bounded View
// derived from it.
//
// All read operations work on a single snapshot of the backing array and are
// safe for concurrent use without locking. All mutations serialize on the
// writer lock shared by the set and all of its views.
type Navigable[E any] interface {
	Contains(e E) bool
	Add(e E) (bool, error)
	Remove(e E) bool
	AddAll(elems ...E) (bool, error)
	ContainsAll(elems ...E) bool
	RemoveIf(pred func(E) bool) bool
	RetainAll(elems ...E) bool
	RemoveAll(elems ...E) bool
	Clear()
	Len() int
	IsEmpty() bool
	Snapshot() []E
	Each(fn func(E) bool)
	All() iter.Seq[E]
	Backward() iter.Seq[E]
	Shards(n int) [][]E
	Lower(e E) (E, bool)
	Floor(e E) (E, bool)
	Ceiling(e E) (E, bool)
	Higher(e E) (E, bool)
	First() (E, error)
	Last() (E, error)
	PollFirst() (E, bool)
	PollLast() (E, bool)
	Comparator() Comparator[E]
	SubSet(from E, fromIncl bool, to E, toIncl bool) (*View[E], error)
	HeadSet(to E, incl bool) (*View[E], error)
	TailSet(from E, incl bool) (*View[E], error)
	Between(from, to E) (*View[E], error)
	Until(to E) (*View[E], error)
	From(from E) (*View[E], error)
	DescendingSet() *View[E]
}

// Set is a navigable set backed by a copy-on-write array.
//
// A set created by
//
//	cowset.NewOrdered[int]()
//
// is empty and ready for concurrent use. The comparator is fixed for the
// lifetime of the set and all of its views.
type Set[E any] struct {
	compare Comparator[E]
	arr     *cowarray.Container[E]
	bus     eventBus[E]
}

var _ Navigable[int] = (*Set[int])(nil)

// New creates an empty set ordered by compare. A nil comparator is a usage
// error and panics.
func New[E any](compare Comparator[E]) *Set[E] {
	if compare == nil {
		panic("cowset: comparator is nil")
	}
	return &Set[E]{
		compare: compare,
		arr:     cowarray.New[E](),
	}
}

// NewOrdered creates an empty set with natural order for ordered base types.
func NewOrdered[E cmp.Ordered]() *Set[E] {
	return New(Order[E])
}

// Of creates a natural-order set containing the given elements.
func Of[E cmp.Ordered](elems ...E) *Set[E] {
	s := NewOrdered[E]()
	_, err := s.AddAll(elems...)
	assertf(err == nil, "natural-order comparator failed contract check")
	return s
}

// FromSet creates an independent set with the same comparator and the same
// contents as other. Snapshots are immutable, so the current snapshot of
// other is shared with the new set without copying any elements.
func FromSet[E any](other *Set[E]) *Set[E] {
	return &Set[E]{
		compare: other.compare,
		arr:     cowarray.NewFromSlice(other.arr.Snapshot()),
	}
}

// NewFromSeq creates a set ordered by compare and fills it from seq.
func NewFromSeq[E any](compare Comparator[E], seq iter.Seq[E]) (*Set[E], error) {
	s := New(compare)
	var elems []E
	for e := range seq {
		elems = append(elems, e)
	}
	if _, err := s.AddAll(elems...); err != nil {
		return nil, err
	}
	return s, nil
}

// Comparator returns the set's comparator.
func (s *Set[E]) Comparator() Comparator[E] {
	return s.compare
}

// Len returns the number of elements in the current snapshot.
func (s *Set[E]) Len() int {
	return s.arr.Len()
}

// IsEmpty reports whether the set currently holds no elements.
func (s *Set[E]) IsEmpty() bool {
	return s.arr.IsEmpty()
}

// Contains reports whether e is an element of the current snapshot.
func (s *Set[E]) Contains(e E) bool {
	_, found := s.compare.search(s.arr.Snapshot(), e)
	return found
}

// Add inserts e into the set. It reports whether the set changed, i.e. false
// if an equal element was already present.
//
// Add fails with ErrComparatorContract if the comparator turns out not to be
// a total order; the set is left unchanged in that case.
func (s *Set[E]) Add(e E) (bool, error) {
	s.arr.Lock()
	defer s.arr.Unlock()
	added, err := s.addLocked(e)
	if added {
		s.bus.publish(Event[E]{Kind: EventAdd, Elem: e, Len: s.arr.Len()})
	}
	return added, err
}

// addLocked inserts e into the current snapshot. The caller holds the writer
// lock. The snapshot is re-read here: it may have changed between the
// caller's last look and lock acquisition.
func (s *Set[E]) addLocked(e E) (bool, error) {
	base := s.arr.Snapshot()
	if len(base) == 0 && !s.compare.selfConsistent(e) {
		return false, ErrComparatorContract
	}
	pos, found := s.compare.search(base, e)
	if found {
		return false, nil
	}
	err := s.arr.InsertAt(pos, e)
	assertf(err == nil, "insertion position from search out of bounds")
	return true, nil
}

// Remove deletes e from the set and reports whether it was present.
func (s *Set[E]) Remove(e E) bool {
	s.arr.Lock()
	defer s.arr.Unlock()
	if !s.removeLocked(e) {
		return false
	}
	s.bus.publish(Event[E]{Kind: EventRemove, Elem: e, Len: s.arr.Len()})
	return true
}

func (s *Set[E]) removeLocked(e E) bool {
	pos, found := s.compare.search(s.arr.Snapshot(), e)
	if !found {
		return false
	}
	_, err := s.arr.RemoveAt(pos)
	assertf(err == nil, "search position vanished under writer lock")
	return true
}

// Clear removes all elements.
func (s *Set[E]) Clear() {
	s.arr.Lock()
	defer s.arr.Unlock()
	n := s.arr.Len()
	err := s.arr.RemoveRange(0, n)
	assertf(err == nil, "full range became invalid under writer lock")
	if n > 0 {
		s.bus.publish(Event[E]{Kind: EventBulk, Len: 0})
	}
}

func assertf(condition bool, msg string) {
	if !condition {
		panic("cowset: " + msg)
	}
}
