package lag

import "errors"

var (
	// ErrNegativeExtent indicates a lag extent below zero.
	ErrNegativeExtent = errors.New("lag: lag extents must be non-negative")

	// ErrAsymmetricLags indicates that equal non-zero extents produced an
	// even-length lag axis. Internal post-condition; indicates a logic error.
	ErrAsymmetricLags = errors.New("lag: symmetric extents produced an even-length lag grid")
)
