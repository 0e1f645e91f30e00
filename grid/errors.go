package grid

import "errors"

// Sentinel errors for grid construction and derived-grid operations.
// Algorithms return these values directly; callers match with errors.Is.
var (
	// ErrNegativeSpacing indicates a sampling interval below zero.
	ErrNegativeSpacing = errors.New("grid: sampling interval must be non-negative")

	// ErrNonPositiveSpacing indicates a step spacing of zero or below where
	// the constructor must walk from one endpoint toward the other.
	ErrNonPositiveSpacing = errors.New("grid: step spacing must be positive")

	// ErrBadCount indicates a requested sample count below one.
	ErrBadCount = errors.New("grid: sample count must be at least one")

	// ErrCountMismatch indicates a declared sample count that disagrees with
	// the supplied axis length.
	ErrCountMismatch = errors.New("grid: sample count does not match axis length")

	// ErrNegativeLayers indicates a boundary layer count below zero.
	ErrNegativeLayers = errors.New("grid: boundary layer count must be non-negative")

	// ErrEmptySpan indicates a spacing-driven span that admits no samples
	// (the end point lies before the start point).
	ErrEmptySpan = errors.New("grid: span admits no samples")

	// ErrBadPadMode indicates a pad/truncate mode other than Pad or Truncate.
	ErrBadPadMode = errors.New("grid: pad mode must be Pad or Truncate")

	// ErrBadAttrib indicates a boundary-trace attribute other than Inner or Outer.
	ErrBadAttrib = errors.New("grid: trace attribute must be Inner or Outer")

	// ErrBadLayerCount indicates a boundary-trace ring count below one.
	ErrBadLayerCount = errors.New("grid: ring layer count must be at least one")

	// ErrGridTooSmall indicates a grid whose axes cannot host the requested
	// number of concentric rings.
	ErrGridTooSmall = errors.New("grid: grid too small to trace requested rings")

	// ErrTraceMismatch indicates diverging coordinate lengths in a boundary
	// trace. Internal post-condition; indicates a logic error.
	ErrTraceMismatch = errors.New("grid: boundary trace coordinate lengths diverge")
)
