// Package simgrid prepares the regular sampling meshes a finite-difference
// wave simulator runs on — spatial grids with absorbing-boundary (PML)
// bookkeeping, correlation lag axes, and FFT-ordered frequency axes.
//
// 🚀 What is simgrid?
//
//	A small, deterministic library of immutable grid descriptors and the
//	derived-grid algorithms a modelling pipeline needs before any physics
//	happens:
//		• Grid1D / Grid2D: validated, immutable sampling records
//		• Count- and spacing-driven constructors (know your nx, or know your δx)
//		• Resampling over the same physical extent
//		• PML padding & truncation by the grid's own layer count
//		• Boundary traces: ordered (z,x) walks of up to three concentric rings
//		• Lag grids: zero-centered axes for correlation workflows
//		• Spectral grids: FFT- and RFFT-ordered frequency bins
//
// ✨ Why choose simgrid?
//
//   - Bit-exact index arithmetic — ring walks and FFT bin layouts follow the
//     standard conventions down to the Nyquist parity rules
//   - Immutable by construction — every operation returns a fresh grid;
//     share values across goroutines without locks
//   - Explicit failure — sentinel errors for invalid input, never a silent
//     truncation or a partially built grid
//
// Everything is organized under three subpackages:
//
//	grid/     — Grid1D, Grid2D, constructors, equality, resampling,
//	            PML pad/truncate, boundary-trace extraction
//	lag/      — zero-centered lag grids and dense cross-correlation axes
//	spectral/ — FFT and RFFT frequency-bin grids
//
// Quick ASCII example of a 5×4 grid's outermost boundary ring:
//
//	●──●──●──●──●
//	●           ●
//	●           ●
//	●──●──●──●──●
//
//	2·nx + 2·nz − 4 samples, corners emitted exactly once.
//
// Dive into the per-package docs for algorithms, complexity notes, and the
// full error taxonomy.
//
//	go get github.com/quaketools/simgrid
package simgrid
