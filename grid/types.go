// Package grid: core value types, equality, and operation enums.
package grid

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// Grid1D is a regularly sampled 1D axis: positions X, their count Nx, and
// the realized sampling interval Dx. Constructors deep-copy the axis, so a
// Grid1D never aliases caller memory and is immutable by convention.
type Grid1D struct {
	X  []float64 // Sample positions, len(X) == Nx
	Nx int       // Sample count
	Dx float64   // Sampling interval, ≥ 0
}

// Grid2D is a pair of regularly sampled axes, X (length Nx) and Z (length
// Nz), plus Npml, the number of absorbing-boundary layers associated with
// the grid. Npml is carried metadata: it drives PadTruncate and multi-ring
// tracing but is never validated against the axis data.
type Grid2D struct {
	X    []float64 // Horizontal sample positions, len(X) == Nx
	Z    []float64 // Vertical sample positions, len(Z) == Nz
	Nx   int       // Horizontal sample count
	Nz   int       // Vertical sample count
	Npml int       // Absorbing-boundary layer count, ≥ 0
	Dx   float64   // Horizontal sampling interval, ≥ 0
	Dz   float64   // Vertical sampling interval, ≥ 0
}

// Equal reports field-wise structural equality: counts and spacing by value,
// the axis element-wise. Complexity: O(Nx).
func (g Grid1D) Equal(o Grid1D) bool {
	return g.Nx == o.Nx && g.Dx == o.Dx && floats.Equal(g.X, o.X)
}

// Equal reports field-wise structural equality over both axes and all
// scalar fields. Complexity: O(Nx + Nz).
func (g Grid2D) Equal(o Grid2D) bool {
	return g.Nx == o.Nx && g.Nz == o.Nz && g.Npml == o.Npml &&
		g.Dx == o.Dx && g.Dz == o.Dz &&
		floats.Equal(g.X, o.X) && floats.Equal(g.Z, o.Z)
}

// Span returns the physical extent |X[end] − X[0]| of the axis.
func (g Grid1D) Span() float64 {
	return math.Abs(g.X[g.Nx-1] - g.X[0])
}

// PadMode selects the direction of PadTruncate. The backing integer is the
// layer sign: +1 grows the grid, −1 shrinks it.
type PadMode int

const (
	// Pad extends both axes outward by Npml layers per side.
	Pad PadMode = 1
	// Truncate shrinks both axes inward by Npml layers per side.
	Truncate PadMode = -1
)

// Attrib selects the axes a boundary trace walks. The Outer path of the
// upstream solver extends the axes over an empty layer range, so Outer and
// Inner currently trace identical coordinates; Outer is kept so call sites
// keep declaring intent.
type Attrib int

const (
	// Inner traces rings on the grid's own axes.
	Inner Attrib = iota
	// Outer traces rings on the (currently unextended) outer axes.
	Outer
)
