// Package spectral builds frequency-axis grids in discrete-Fourier-transform
// bin order.
//
// What:
//
//   - RFFT: the non-negative half-spectrum, nx/2 + 1 bins at i·δ.
//   - FFT: all nx bins in standard wrapped order — bin 0 holds DC, bins
//     1..⌊nx/2⌋ hold ascending positive frequencies, and the tail holds
//     negative frequencies counted backward from the end. Parity follows
//     the real-FFT convention: even nx keeps the Nyquist bin positive-only,
//     odd nx splits into symmetric halves.
//   - FFTOf / RFFTOf: derive the bin width δ = 1/(Nx·Dx) from an existing
//     1D sampling grid.
//
// Errors:
//
//   - ErrBadBinCount — nx < 1.
//   - grid.ErrNegativeSpacing — δ < 0.
//   - ErrBadSampleGrid — FFTOf/RFFTOf on a grid without a positive spacing.
//
// Complexity: O(nx) time and memory.
package spectral
