// Package grid defines the regular-sampling grid descriptors a
// finite-difference wave pipeline is meshed on, plus the derived-grid
// operations that reshape them.
//
// What:
//
//   - Grid1D / Grid2D: immutable records pairing sample positions with their
//     count and realized spacing; Grid2D additionally carries Npml, the
//     absorbing-boundary layer count used by pad/truncate and ring tracing.
//   - Count1D/Spacing1D (and the 2D twins): count-driven and spacing-driven
//     factories. Both recompute the stored spacing from the generated samples
//     so the record never disagrees with its own axis.
//   - Resample1D / Resample2D: rebuild a grid over the same endpoints at a
//     new spacing.
//   - PadTruncate: grow or shrink both axes by Npml layers per side.
//   - Trace / TraceCount: ordered (z,x) walks of up to three concentric
//     rectangular rings, for per-sample absorbing-boundary work.
//
// Why:
//
//   - Absorbing boundaries: enumerate PML sample positions ring by ring.
//   - Mesh refinement: resample a model grid to a stability-limited spacing.
//   - Extent bookkeeping: pad a model for simulation, truncate for output.
//
// Complexity:
//
//   - Constructors and Resample: O(nx) / O(nx + nz) time and memory.
//   - PadTruncate: O(nx + nz + 4·Npml).
//   - Trace: O(perimeter · rings); TraceCount: O(1).
//
// Errors:
//
//   - ErrNegativeSpacing, ErrNonPositiveSpacing, ErrBadCount,
//     ErrCountMismatch, ErrNegativeLayers, ErrEmptySpan — invalid
//     construction input.
//   - ErrBadPadMode, ErrBadAttrib, ErrBadLayerCount, ErrGridTooSmall —
//     invalid operation arguments.
//   - ErrTraceMismatch — internal post-condition failure; never expected
//     under correct use.
//
// All operations are pure: nothing mutates a grid after construction, so
// values may be shared across goroutines without synchronization.
package grid
