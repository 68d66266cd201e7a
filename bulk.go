package cowset

import "slices"

// AddAll inserts all given elements and reports whether the set changed.
//
// Unlike repeated Add calls, AddAll allocates the result array once: the new
// elements are deduplicated into a sorted candidate buffer and merged with
// the current snapshot in a single two-pointer pass. Total work is
// O(n + k log k + k log n) for k inserted elements instead of O(k·n).
//
// The observable result equals calling Add for each element in any order.
func (s *Set[E]) AddAll(elems ...E) (bool, error) {
	switch len(elems) {
	case 0:
		return false, nil
	case 1:
		return s.Add(elems[0])
	}
	s.arr.Lock()
	defer s.arr.Unlock()
	added, err := s.addAllLocked(elems)
	if added {
		s.bus.publish(Event[E]{Kind: EventBulk, Len: s.arr.Len()})
	}
	return added, err
}

// addAllLocked implements the sorted-merge bulk insert. The caller holds the
// writer lock.
func (s *Set[E]) addAllLocked(elems []E) (bool, error) {
	base := s.arr.Snapshot()
	// Accept candidates not present in base, insertion-sorting them into a
	// sorted buffer. Batches are typically small relative to the set, so the
	// insertion-shift stays cheap.
	cand := make([]E, 0, len(elems))
	for _, e := range elems {
		if _, found := s.compare.search(base, e); found {
			continue
		}
		if len(base) == 0 && len(cand) == 0 && !s.compare.selfConsistent(e) {
			return false, ErrComparatorContract
		}
		at, found := s.compare.search(cand, e)
		if found {
			continue
		}
		cand = slices.Insert(cand, at, e)
	}
	if len(cand) == 0 {
		return false, nil
	}
	// Merge base and candidates from the high end down. Both are sorted.
	merged := make([]E, len(base)+len(cand))
	i, j := len(base)-1, len(cand)-1
	for k := len(merged) - 1; k >= 0; k-- {
		if i >= 0 && (j < 0 || s.compare(base[i], cand[j]) > 0) {
			merged[k] = base[i]
			i--
		} else {
			merged[k] = cand[j]
			j--
		}
	}
	T().Debugf("cowset bulk add: %d of %d candidates merged into %d elements",
		len(cand), len(elems), len(merged))
	s.arr.Publish(merged)
	return true, nil
}

// ContainsAll reports whether every given element is in the current snapshot.
func (s *Set[E]) ContainsAll(elems ...E) bool {
	arr := s.arr.Snapshot()
	for _, e := range elems {
		if _, found := s.compare.search(arr, e); !found {
			return false
		}
	}
	return true
}

// RemoveIf deletes all elements matching pred and reports whether the set
// changed. The predicate runs under the writer lock and must not call back
// into mutating operations of the same set.
func (s *Set[E]) RemoveIf(pred func(E) bool) bool {
	s.arr.Lock()
	defer s.arr.Unlock()
	w, err := s.arr.Window(0, s.arr.Len())
	assertf(err == nil, "full range became invalid under writer lock")
	if !w.RemoveIf(pred) {
		return false
	}
	s.bus.publish(Event[E]{Kind: EventBulk, Len: s.arr.Len()})
	return true
}

// RemoveAll deletes every element that compares equal to one of elems and
// reports whether the set changed.
func (s *Set[E]) RemoveAll(elems ...E) bool {
	if len(elems) == 0 {
		return false
	}
	return s.RemoveIf(s.memberOf(elems))
}

// RetainAll deletes every element that compares equal to none of elems and
// reports whether the set changed.
func (s *Set[E]) RetainAll(elems ...E) bool {
	member := s.memberOf(elems)
	return s.RemoveIf(func(e E) bool { return !member(e) })
}

// memberOf builds a membership predicate over elems, probed by binary search.
func (s *Set[E]) memberOf(elems []E) func(E) bool {
	probe := make([]E, len(elems))
	copy(probe, elems)
	slices.SortFunc(probe, s.compare)
	return func(e E) bool {
		_, found := s.compare.search(probe, e)
		return found
	}
}
