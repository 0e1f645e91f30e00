package spectral_test

import (
	"fmt"

	"github.com/quaketools/simgrid/grid"
	"github.com/quaketools/simgrid/spectral"
)

// ExampleFFT shows the standard wrapped bin ordering for an even-length
// transform: DC, ascending positive frequencies through Nyquist, then
// negative frequencies counted backward from the end.
func ExampleFFT() {
	g, _ := spectral.FFT(8, 1.0)
	fmt.Println(g.X)

	// Output:
	// [0 1 2 3 4 -3 -2 -1]
}

// ExampleRFFTOf derives the half-spectrum frequency axis for a record of
// eight samples at dx = 0.125, giving a unit bin width.
func ExampleRFFTOf() {
	s, _ := grid.Count1D(0, 0.875, 8)

	f, _ := spectral.RFFTOf(s)
	fmt.Println("bins:", f.X)
	fmt.Println("d:   ", f.Dx)

	// Output:
	// bins: [0 1 2 3 4]
	// d:    1
}
