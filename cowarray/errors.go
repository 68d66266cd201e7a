package cowarray

import "errors"

var (
	// ErrIndexOutOfBounds signals an invalid positional index.
	ErrIndexOutOfBounds = errors.New("cowarray: index out of bounds")
	// ErrInvalidRange signals an index window with end before start or
	// endpoints outside the current snapshot.
	ErrInvalidRange = errors.New("cowarray: invalid range")
)
