package lag

import (
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/quaketools/simgrid/grid"
)

// Counts holds the realized per-side lag counts, zero lag excluded.
type Counts struct {
	Pos int
	Neg int
}

// New builds a zero-centered lag grid from a positive extent, a negative
// extent, and a spacing. Per-side counts are round(extent/dx), half away
// from zero; the positive offsets are {dx, 2·dx, …, (Pos−1)·dx} and the
// negative offsets mirror them, assembled as
// [−reverse(neg offsets), 0, pos offsets] — strictly increasing, zero
// included exactly once. When neither side generates an offset the grid
// collapses to the single sample {0} with spacing 0.
//
// Returns the grid and the realized Counts. dx ≤ 0 returns
// grid.ErrNonPositiveSpacing; a negative extent returns ErrNegativeExtent.
// Complexity: O(Pos + Neg).
func New(pos, neg, dx float64) (grid.Grid1D, Counts, error) {
	if dx <= 0 {
		return grid.Grid1D{}, Counts{}, grid.ErrNonPositiveSpacing
	}
	if pos < 0 || neg < 0 {
		return grid.Grid1D{}, Counts{}, ErrNegativeExtent
	}
	c := Counts{
		Pos: int(math.Round(pos / dx)),
		Neg: int(math.Round(neg / dx)),
	}
	posOff := offsets(c.Pos, dx)
	negOff := offsets(c.Neg, dx)

	// Degenerate: spacing larger than both extents.
	if len(posOff) == 0 && len(negOff) == 0 {
		g, err := grid.New1D([]float64{0}, 0)
		return g, c, err
	}

	head := make([]float64, len(negOff))
	copy(head, negOff)
	floats.Scale(-1, head)
	floats.Reverse(head)

	xs := make([]float64, 0, len(head)+1+len(posOff))
	xs = append(xs, head...)
	xs = append(xs, 0)
	xs = append(xs, posOff...)

	// Equal non-zero extents must land symmetrically around the zero lag.
	if pos == neg && pos > 0 && len(xs)%2 == 0 {
		return grid.Grid1D{}, Counts{}, ErrAsymmetricLags
	}
	g, err := grid.New1D(xs, dx)

	return g, c, err
}

// Symmetric builds a lag grid with the same extent on both sides.
func Symmetric(span, dx float64) (grid.Grid1D, Counts, error) {
	return New(span, span, dx)
}

// offsets returns {dx, 2·dx, …, (n−1)·dx}; nil when n ≤ 1.
func offsets(n int, dx float64) []float64 {
	if n <= 1 {
		return nil
	}
	out := make([]float64, n-1)
	for i := range out {
		out[i] = float64(i+1) * dx
	}

	return out
}
