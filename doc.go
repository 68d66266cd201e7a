/*
Package cowset implements a thread-safe navigable set on top of a
copy-on-write array.

Sets

A Set keeps its elements in one immutable, strictly sorted, duplicate-free
array. Every read (membership, navigation, iteration) loads the current
array with a single atomic read and computes over that local snapshot. Readers
never block, never retry and never observe torn state. Every mutation
serializes on a writer lock, builds a replacement array and publishes it
atomically.

This trade-off mirrors the classic copy-on-write collections: it is best
suited for applications in which set sizes stay small and read operations
vastly outnumber mutations, e.g. listener registries ordered by priority.

	Operation    |  cost
	-------------+------------------------
	Contains     |  O(log n), lock-free
	Lower et al. |  O(log n), lock-free
	Iterate      |  O(n),     lock-free
	Add/Remove   |  O(n) copy, serialized
	AddAll(k)    |  O(n + k log k), serialized

Views

SubSet, HeadSet, TailSet and DescendingSet return bounded views. A view copies
no elements; it narrows every operation to an index window computed freshly
against the shared snapshot, optionally iterating in reverse. Views compose:
a view of a view is again a single view expressed against the root set.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) Norbert Pillmayer

Please refer to the License file in the repository root.
*/
package cowset

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to a global core-tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}

// SetError is an error type for the cowset module
type SetError string

func (e SetError) Error() string {
	return string(e)
}

// ErrComparatorContract signals a comparator that is not a consistent total
// order, e.g. one that compares an element to itself non-zero. Continuing
// would silently corrupt sort order, so the offending call fails instead.
const ErrComparatorContract = SetError("comparator violates its general contract")

// ErrOutOfBounds is flagged when an element is inserted into a bounded view
// outside the view's declared bounds.
const ErrOutOfBounds = SetError("element out of view bounds")

// ErrInvalidBounds is flagged when a view is constructed with a lower bound
// above its upper bound, or with a comparator that reports contradictory
// signs for the forward and backward comparison of the two bounds.
const ErrInvalidBounds = SetError("inconsistent view bounds")

// ErrEmptySet is flagged when First or Last is called and no qualifying
// element exists.
const ErrEmptySet = SetError("no such element: set is empty")
