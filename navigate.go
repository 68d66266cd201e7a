package cowset

// Navigation queries. Each of these takes a single unsynchronized snapshot of
// the backing array and answers from a binary search over it, so they are
// cheap and never block writers.
//
// With elements {2, 4, 6, 8} and natural order:
//
//	Lower(3)   = 2        Floor(3)   = 2
//	Lower(2)   = none     Floor(2)   = 2
//	Ceiling(3) = 4        Higher(3)  = 4
//	Ceiling(9) = none     Higher(8)  = none

// Lower returns the greatest element strictly less than e.
func (s *Set[E]) Lower(e E) (E, bool) {
	return lower(s.compare, s.arr.Snapshot(), e)
}

// Floor returns the greatest element less than or equal to e.
func (s *Set[E]) Floor(e E) (E, bool) {
	return floor(s.compare, s.arr.Snapshot(), e)
}

// Ceiling returns the least element greater than or equal to e.
func (s *Set[E]) Ceiling(e E) (E, bool) {
	return ceiling(s.compare, s.arr.Snapshot(), e)
}

// Higher returns the least element strictly greater than e.
func (s *Set[E]) Higher(e E) (E, bool) {
	return higher(s.compare, s.arr.Snapshot(), e)
}

// First returns the least element, or ErrEmptySet if the set is empty.
func (s *Set[E]) First() (E, error) {
	arr := s.arr.Snapshot()
	if len(arr) == 0 {
		var zero E
		return zero, ErrEmptySet
	}
	return arr[0], nil
}

// Last returns the greatest element, or ErrEmptySet if the set is empty.
func (s *Set[E]) Last() (E, error) {
	arr := s.arr.Snapshot()
	if len(arr) == 0 {
		var zero E
		return zero, ErrEmptySet
	}
	return arr[len(arr)-1], nil
}

// PollFirst removes and returns the least element. The unlocked emptiness
// check is a fast path only; emptiness is re-checked under the writer lock.
func (s *Set[E]) PollFirst() (E, bool) {
	var zero E
	if s.arr.IsEmpty() {
		return zero, false
	}
	s.arr.Lock()
	defer s.arr.Unlock()
	if s.arr.IsEmpty() {
		return zero, false
	}
	e, err := s.arr.RemoveAt(0)
	assertf(err == nil, "non-empty snapshot lost its first element under writer lock")
	s.bus.publish(Event[E]{Kind: EventRemove, Elem: e, Len: s.arr.Len()})
	return e, true
}

// PollLast removes and returns the greatest element.
func (s *Set[E]) PollLast() (E, bool) {
	var zero E
	if s.arr.IsEmpty() {
		return zero, false
	}
	s.arr.Lock()
	defer s.arr.Unlock()
	n := s.arr.Len()
	if n == 0 {
		return zero, false
	}
	e, err := s.arr.RemoveAt(n - 1)
	assertf(err == nil, "non-empty snapshot lost its last element under writer lock")
	s.bus.publish(Event[E]{Kind: EventRemove, Elem: e, Len: s.arr.Len()})
	return e, true
}

// --- Snapshot-level primitives ---------------------------------------------

func lower[E any](compare Comparator[E], arr []E, e E) (E, bool) {
	pos, _ := compare.search(arr, e)
	return pick(arr, pos-1)
}

func floor[E any](compare Comparator[E], arr []E, e E) (E, bool) {
	pos, found := compare.search(arr, e)
	if !found {
		pos--
	}
	return pick(arr, pos)
}

func ceiling[E any](compare Comparator[E], arr []E, e E) (E, bool) {
	pos, _ := compare.search(arr, e)
	return pick(arr, pos)
}

func higher[E any](compare Comparator[E], arr []E, e E) (E, bool) {
	pos, found := compare.search(arr, e)
	if found {
		pos++
	}
	return pick(arr, pos)
}

func pick[E any](arr []E, pos int) (E, bool) {
	if pos < 0 || pos >= len(arr) {
		var zero E
		return zero, false
	}
	return arr[pos], true
}
