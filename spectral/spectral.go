package spectral

import (
	"errors"

	"github.com/quaketools/simgrid/grid"
)

var (
	// ErrBadBinCount indicates a requested bin count below one.
	ErrBadBinCount = errors.New("spectral: bin count must be at least one")

	// ErrBadSampleGrid indicates a sampling grid whose spacing cannot yield
	// a bin width (Dx ≤ 0 or an empty axis).
	ErrBadSampleGrid = errors.New("spectral: sampling grid needs a positive spacing")
)

// RFFT builds the non-negative half-spectrum grid for an nx-sample signal
// at bin width d: nx/2 + 1 bins, bin i at i·d. Complexity: O(nx).
func RFFT(nx int, d float64) (grid.Grid1D, error) {
	if nx < 1 {
		return grid.Grid1D{}, ErrBadBinCount
	}
	if d < 0 {
		return grid.Grid1D{}, grid.ErrNegativeSpacing
	}
	xs := make([]float64, nx/2+1)
	for i := range xs {
		xs[i] = float64(i) * d
	}

	return grid.New1D(xs, d)
}

// FFT builds the full nx-bin frequency grid in standard FFT order: bin 0 is
// DC, bins 1..⌊nx/2⌋ hold i·d, and bin nx−k holds −k·d for
// k = 1..⌈nx/2⌉−1. For even nx the Nyquist bin appears once, positive; for
// odd nx the positive and negative halves are symmetric. Complexity: O(nx).
func FFT(nx int, d float64) (grid.Grid1D, error) {
	if nx < 1 {
		return grid.Grid1D{}, ErrBadBinCount
	}
	if d < 0 {
		return grid.Grid1D{}, grid.ErrNegativeSpacing
	}
	xs := make([]float64, nx)
	for i := 1; i <= nx/2; i++ {
		xs[i] = float64(i) * d
	}
	for k := 1; k <= (nx-1)/2; k++ {
		xs[nx-k] = -float64(k) * d
	}

	return grid.New1D(xs, d)
}

// FFTOf builds the FFT-ordered frequency grid matching sampling grid g,
// with bin width 1/(Nx·Dx).
func FFTOf(g grid.Grid1D) (grid.Grid1D, error) {
	d, err := binWidth(g)
	if err != nil {
		return grid.Grid1D{}, err
	}

	return FFT(g.Nx, d)
}

// RFFTOf builds the half-spectrum frequency grid matching sampling grid g.
func RFFTOf(g grid.Grid1D) (grid.Grid1D, error) {
	d, err := binWidth(g)
	if err != nil {
		return grid.Grid1D{}, err
	}

	return RFFT(g.Nx, d)
}

// binWidth derives the frequency bin spacing from a sampling grid.
func binWidth(g grid.Grid1D) (float64, error) {
	if g.Nx < 1 || g.Dx <= 0 {
		return 0, ErrBadSampleGrid
	}

	return 1 / (float64(g.Nx) * g.Dx), nil
}
