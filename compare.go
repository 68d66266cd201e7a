package cowset

import (
	"cmp"
	"slices"
	"time"
)

// Comparator is a total-order function over elements.
// It returns a negative number if a orders before b, zero if both are equal
// under the order, and a positive number otherwise.
//
// A comparator is immutable for the lifetime of a set and all of its views.
// A comparator that is not a consistent total order is a usage error; it is
// detected opportunistically and surfaced as ErrComparatorContract.
type Comparator[E any] func(a, b E) int

// Order is the natural-order comparator for ordered base types.
func Order[E cmp.Ordered](a, b E) int {
	return cmp.Compare(a, b)
}

// TimeOrder compares time instants chronologically.
func TimeOrder(a, b time.Time) int {
	switch {
	case a.Before(b):
		return -1
	case a.After(b):
		return 1
	}
	return 0
}

// Reversed returns a comparator with the opposite order of compare.
func Reversed[E any](compare Comparator[E]) Comparator[E] {
	return func(a, b E) int {
		return compare(b, a)
	}
}

// search locates e in the sorted snapshot arr. It returns the index of e if
// found, otherwise the insertion position that keeps arr sorted.
func (compare Comparator[E]) search(arr []E, e E) (pos int, found bool) {
	return slices.BinarySearchFunc(arr, e, compare)
}

// selfConsistent probes compare with a single element. A total order must
// compare every element equal to itself; a non-zero result flags a broken
// comparator. The probe is cheap and is only applied where no second element
// exists to search against.
func (compare Comparator[E]) selfConsistent(e E) bool {
	return compare(e, e) == 0
}
