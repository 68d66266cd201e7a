package cowset

import "iter"

// Snapshot returns the set's elements in ascending order as a freshly
// allocated slice, reflecting one consistent state of the set.
func (s *Set[E]) Snapshot() []E {
	arr := s.arr.Snapshot()
	out := make([]E, len(arr))
	copy(out, arr)
	return out
}

// Each calls fn for every element in ascending order over one snapshot.
// Iteration stops early if fn returns false.
func (s *Set[E]) Each(fn func(E) bool) {
	for _, e := range s.arr.Snapshot() {
		if !fn(e) {
			return
		}
	}
}

// All returns an ascending sequence over the elements.
//
// The sequence is fixed to the snapshot current at the All call: mutations
// performed afterwards are not reflected, and re-ranging the same sequence
// replays the same elements. Call All again for a fresh snapshot.
func (s *Set[E]) All() iter.Seq[E] {
	arr := s.arr.Snapshot()
	return func(yield func(E) bool) {
		for _, e := range arr {
			if !yield(e) {
				return
			}
		}
	}
}

// Backward returns a descending sequence over the elements, with the same
// snapshot semantics as All.
func (s *Set[E]) Backward() iter.Seq[E] {
	arr := s.arr.Snapshot()
	return func(yield func(E) bool) {
		for i := len(arr) - 1; i >= 0; i-- {
			if !yield(arr[i]) {
				return
			}
		}
	}
}

// Shards splits one snapshot into up to n contiguous, ascending sub-slices
// for parallel consumption. All shards belong to the same snapshot, cover the
// set exactly once and share its backing storage; they must not be mutated.
func (s *Set[E]) Shards(n int) [][]E {
	return shards(s.arr.Snapshot(), n)
}

func shards[E any](arr []E, n int) [][]E {
	if n <= 0 || len(arr) == 0 {
		return nil
	}
	if n > len(arr) {
		n = len(arr)
	}
	out := make([][]E, 0, n)
	size, rest := len(arr)/n, len(arr)%n
	for start := 0; start < len(arr); {
		end := start + size
		if rest > 0 {
			end++
			rest--
		}
		out = append(out, arr[start:end])
		start = end
	}
	return out
}
