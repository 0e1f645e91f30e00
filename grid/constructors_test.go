package grid_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quaketools/simgrid/grid"
)

// TestNew1DN_Errors verifies that direct construction rejects every
// invariant violation instead of returning a partially built grid.
func TestNew1DN_Errors(t *testing.T) {
	cases := []struct {
		name string
		x    []float64
		nx   int
		dx   float64
		err  error
	}{
		{"NegativeSpacing", []float64{0, 1}, 2, -0.5, grid.ErrNegativeSpacing},
		{"ZeroCount", nil, 0, 1, grid.ErrBadCount},
		{"CountBelowLength", []float64{0, 1, 2, 3}, 3, 1, grid.ErrCountMismatch},
		{"CountAboveLength", []float64{0, 1}, 3, 1, grid.ErrCountMismatch},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := grid.New1DN(tc.x, tc.nx, tc.dx)
			if !errors.Is(err, tc.err) {
				t.Errorf("New1DN error = %v; want %v", err, tc.err)
			}
		})
	}
}

// TestNew1D_DeepCopies ensures the constructor does not alias caller memory.
func TestNew1D_DeepCopies(t *testing.T) {
	x := []float64{0, 1, 2}
	g, err := grid.New1D(x, 1)
	require.NoError(t, err)

	x[1] = 99
	assert.Equal(t, []float64{0, 1, 2}, g.X, "grid axis must not alias the input slice")
}

// TestCount1D_Endpoints checks the §-defining property of the count-driven
// form: both endpoints land exactly, and the count is honored.
func TestCount1D_Endpoints(t *testing.T) {
	g, err := grid.Count1D(0, 1, 5)
	require.NoError(t, err)

	assert.Equal(t, 5, g.Nx)
	assert.Equal(t, 0.0, g.X[0], "first sample must be xbeg")
	assert.Equal(t, 1.0, g.X[g.Nx-1], "last sample must be xend")
	assert.Equal(t, 0.25, g.Dx, "spacing recomputed from the generated axis")
	assert.Len(t, g.X, g.Nx)
}

// TestCount1D_SingleSample checks the nx==1 degenerate: one sample at xbeg,
// zero spacing.
func TestCount1D_SingleSample(t *testing.T) {
	g, err := grid.Count1D(3.5, 9, 1)
	require.NoError(t, err)

	assert.Equal(t, []float64{3.5}, g.X)
	assert.Equal(t, 0.0, g.Dx)
}

// TestSpacing1D_ExactDivision verifies a span that is an exact multiple of
// the step keeps its terminal sample.
func TestSpacing1D_ExactDivision(t *testing.T) {
	g, err := grid.Spacing1D(0, 1, 0.25)
	require.NoError(t, err)

	assert.Equal(t, 5, g.Nx)
	assert.Equal(t, 1.0, g.X[g.Nx-1])
	assert.Equal(t, 0.25, g.Dx)
}

// TestSpacing1D_StopsBeforeEnd verifies the walk stops at or before xend
// when the step does not divide the span.
func TestSpacing1D_StopsBeforeEnd(t *testing.T) {
	g, err := grid.Spacing1D(0, 1, 0.3)
	require.NoError(t, err)

	assert.Equal(t, 4, g.Nx, "samples at 0, 0.3, 0.6, 0.9")
	assert.LessOrEqual(t, g.X[g.Nx-1], 1.0)
	assert.InDelta(t, 0.9, g.X[g.Nx-1], 1e-12)
}

// TestSpacing1D_Errors covers the spacing-driven failure modes.
func TestSpacing1D_Errors(t *testing.T) {
	_, err := grid.Spacing1D(0, 1, 0)
	assert.ErrorIs(t, err, grid.ErrNonPositiveSpacing, "zero step cannot walk")

	_, err = grid.Spacing1D(0, 1, -0.1)
	assert.ErrorIs(t, err, grid.ErrNonPositiveSpacing)

	_, err = grid.Spacing1D(2, 1, 0.5)
	assert.ErrorIs(t, err, grid.ErrEmptySpan, "end before start admits no samples")
}

// TestSpacing1D_ZeroSpan collapses to a single sample with recomputed
// zero spacing.
func TestSpacing1D_ZeroSpan(t *testing.T) {
	g, err := grid.Spacing1D(2, 2, 0.5)
	require.NoError(t, err)

	assert.Equal(t, 1, g.Nx)
	assert.Equal(t, []float64{2}, g.X)
	assert.Equal(t, 0.0, g.Dx)
}

// TestCount2D_Composition checks per-axis composition and the carried Npml.
func TestCount2D_Composition(t *testing.T) {
	g, err := grid.Count2D(0, 4, -1, 1, 5, 3, 2)
	require.NoError(t, err)

	assert.Equal(t, []float64{0, 1, 2, 3, 4}, g.X)
	assert.Equal(t, []float64{-1, 0, 1}, g.Z)
	assert.Equal(t, 5, g.Nx)
	assert.Equal(t, 3, g.Nz)
	assert.Equal(t, 2, g.Npml)
	assert.Equal(t, 1.0, g.Dx)
	assert.Equal(t, 1.0, g.Dz)
}

// TestNew2DN_Errors checks 2D validation, including the layer-count guard.
func TestNew2DN_Errors(t *testing.T) {
	x, z := []float64{0, 1}, []float64{0, 1}

	_, err := grid.New2DN(x, z, 2, 2, -1, 1, 1)
	assert.ErrorIs(t, err, grid.ErrNegativeLayers)

	_, err = grid.New2DN(x, z, 3, 2, 0, 1, 1)
	assert.ErrorIs(t, err, grid.ErrCountMismatch, "x axis count mismatch must fail")

	_, err = grid.New2DN(x, z, 2, 3, 0, 1, 1)
	assert.ErrorIs(t, err, grid.ErrCountMismatch, "z axis count mismatch must fail")

	_, err = grid.New2DN(x, z, 2, 2, 0, 1, -1)
	assert.ErrorIs(t, err, grid.ErrNegativeSpacing)
}

// TestSpacing2D_MatchesCount2D builds the same grid through both factory
// families and requires structural equality.
func TestSpacing2D_MatchesCount2D(t *testing.T) {
	byCount, err := grid.Count2D(0, 1, 0, 2, 5, 9, 1)
	require.NoError(t, err)
	bySpacing, err := grid.Spacing2D(0, 1, 0, 2, 0.25, 0.25, 1)
	require.NoError(t, err)

	assert.True(t, byCount.Equal(bySpacing), "count- and spacing-driven forms must agree:\n%+v\n%+v", byCount, bySpacing)
}
