package lag

import (
	"math"

	"github.com/quaketools/simgrid/grid"
)

// xcorrOptions carries the tunable lag extents for XCorr.
type xcorrOptions struct {
	pos, neg float64
}

// XCorrOption configures XCorr.
type XCorrOption func(*xcorrOptions)

// WithLags overrides the positive and negative lag extents; both default to
// the sampled grid's full span.
func WithLags(pos, neg float64) XCorrOption {
	return func(o *xcorrOptions) {
		o.pos, o.neg = pos, neg
	}
}

// XCorr builds the dense cross-correlation lag axis of g: every integer
// multiple of g.Dx in {−Neg·Dx, …, −Dx, 0, Dx, …, Pos·Dx}, where
// Pos = round(pos extent / Dx) and Neg likewise. Unlike New, the endpoints
// ±count·Dx are included and no interior multiple is skipped. The result
// keeps g's spacing.
//
// g must be a sampled grid: Dx ≤ 0 returns grid.ErrNonPositiveSpacing and
// an empty axis returns grid.ErrBadCount. Complexity: O(Pos + Neg).
func XCorr(g grid.Grid1D, opts ...XCorrOption) (grid.Grid1D, error) {
	if g.Nx < 1 || len(g.X) != g.Nx {
		return grid.Grid1D{}, grid.ErrBadCount
	}
	if g.Dx <= 0 {
		return grid.Grid1D{}, grid.ErrNonPositiveSpacing
	}
	span := g.Span()
	o := xcorrOptions{pos: span, neg: span}
	for _, opt := range opts {
		opt(&o)
	}
	if o.pos < 0 || o.neg < 0 {
		return grid.Grid1D{}, ErrNegativeExtent
	}
	p := int(math.Round(o.pos / g.Dx))
	n := int(math.Round(o.neg / g.Dx))

	xs := make([]float64, 0, n+p+1)
	for k := -n; k <= p; k++ {
		xs = append(xs, float64(k)*g.Dx)
	}

	return grid.New1D(xs, g.Dx)
}
