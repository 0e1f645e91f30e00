// Package grid: validated constructors. Two families exist because callers
// sometimes know a target sample count and sometimes a required spacing;
// both recompute the stored interval from the generated axis so the record
// always agrees with its data.
package grid

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// stepTol is the relative tolerance used when counting spacing-driven
// samples, so spans that are exact multiples of the step do not lose their
// terminal sample to floating-point drift in the division.
const stepTol = 1e-12

// New1D constructs a Grid1D from an explicit axis. The axis is deep-copied.
// Returns ErrNegativeSpacing or ErrBadCount on invariant violation.
// Complexity: O(nx).
func New1D(x []float64, dx float64) (Grid1D, error) {
	return New1DN(x, len(x), dx)
}

// New1DN is New1D with an explicit declared count, which must match the
// axis length exactly; a mismatch returns ErrCountMismatch rather than
// silently truncating or padding.
func New1DN(x []float64, nx int, dx float64) (Grid1D, error) {
	if dx < 0 {
		return Grid1D{}, ErrNegativeSpacing
	}
	if nx < 1 {
		return Grid1D{}, ErrBadCount
	}
	if len(x) != nx {
		return Grid1D{}, ErrCountMismatch
	}
	xs := make([]float64, nx)
	copy(xs, x)

	return Grid1D{X: xs, Nx: nx, Dx: dx}, nil
}

// Count1D builds nx linearly spaced samples from xbeg to xend, both
// inclusive. The realized spacing is X[1]−X[0] (0 when nx == 1).
// Complexity: O(nx).
func Count1D(xbeg, xend float64, nx int) (Grid1D, error) {
	if nx < 1 {
		return Grid1D{}, ErrBadCount
	}
	if nx == 1 {
		return Grid1D{X: []float64{xbeg}, Nx: 1, Dx: 0}, nil
	}
	xs := floats.Span(make([]float64, nx), xbeg, xend)
	// Pin the terminal sample: accumulated step rounding must not move the
	// declared endpoint.
	xs[nx-1] = xend

	return Grid1D{X: xs, Nx: nx, Dx: xs[1] - xs[0]}, nil
}

// Spacing1D builds samples by stepping from xbeg toward xend by dx,
// inclusive of xbeg and stopping at or before xend. Nx is whatever count
// the walk realizes and Dx is recomputed from the first two samples
// (0 when only one sample fits), guarding against drift in the step.
// Requires dx > 0 (ErrNonPositiveSpacing) and xend ≥ xbeg (ErrEmptySpan).
// Complexity: O(nx).
func Spacing1D(xbeg, xend, dx float64) (Grid1D, error) {
	if dx <= 0 {
		return Grid1D{}, ErrNonPositiveSpacing
	}
	span := xend - xbeg
	if span < 0 {
		return Grid1D{}, ErrEmptySpan
	}
	nx := int(math.Floor(span/dx*(1+stepTol))) + 1
	xs := make([]float64, nx)
	for i := range xs {
		xs[i] = xbeg + float64(i)*dx
	}
	rdx := 0.0
	if nx > 1 {
		rdx = xs[1] - xs[0]
	}

	return Grid1D{X: xs, Nx: nx, Dx: rdx}, nil
}

// New2D constructs a Grid2D from explicit axes. Both axes are deep-copied.
// Complexity: O(nx + nz).
func New2D(x, z []float64, npml int, dx, dz float64) (Grid2D, error) {
	return New2DN(x, z, len(x), len(z), npml, dx, dz)
}

// New2DN is New2D with explicit declared counts; either mismatch returns
// ErrCountMismatch.
func New2DN(x, z []float64, nx, nz, npml int, dx, dz float64) (Grid2D, error) {
	if npml < 0 {
		return Grid2D{}, ErrNegativeLayers
	}
	gx, err := New1DN(x, nx, dx)
	if err != nil {
		return Grid2D{}, err
	}
	gz, err := New1DN(z, nz, dz)
	if err != nil {
		return Grid2D{}, err
	}

	return compose2D(gx, gz, npml), nil
}

// Count2D builds a Grid2D with count-driven axes: nx samples spanning
// xmin..xmax and nz samples spanning zmin..zmax. Complexity: O(nx + nz).
func Count2D(xmin, xmax, zmin, zmax float64, nx, nz, npml int) (Grid2D, error) {
	if npml < 0 {
		return Grid2D{}, ErrNegativeLayers
	}
	gx, err := Count1D(xmin, xmax, nx)
	if err != nil {
		return Grid2D{}, err
	}
	gz, err := Count1D(zmin, zmax, nz)
	if err != nil {
		return Grid2D{}, err
	}

	return compose2D(gx, gz, npml), nil
}

// Spacing2D builds a Grid2D with spacing-driven axes, stepping each axis
// from its minimum toward its maximum. Complexity: O(nx + nz).
func Spacing2D(xmin, xmax, zmin, zmax, dx, dz float64, npml int) (Grid2D, error) {
	if npml < 0 {
		return Grid2D{}, ErrNegativeLayers
	}
	gx, err := Spacing1D(xmin, xmax, dx)
	if err != nil {
		return Grid2D{}, err
	}
	gz, err := Spacing1D(zmin, zmax, dz)
	if err != nil {
		return Grid2D{}, err
	}

	return compose2D(gx, gz, npml), nil
}

// compose2D flattens two validated axes and a layer count into one record.
func compose2D(gx, gz Grid1D, npml int) Grid2D {
	return Grid2D{
		X:    gx.X,
		Z:    gz.X,
		Nx:   gx.Nx,
		Nz:   gz.Nx,
		Npml: npml,
		Dx:   gx.Dx,
		Dz:   gz.Dx,
	}
}
