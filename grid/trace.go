package grid

// maxRings caps the concentric rings a trace emits; requests beyond it are
// clamped, matching the upstream solver's three-ring limit.
const maxRings = 3

// Boundary holds the ordered boundary-trace coordinates as parallel slices:
// sample i sits at (Z[i], X[i]).
type Boundary struct {
	Z []float64
	X []float64
}

// Len returns the number of traced samples.
func (b Boundary) Len() int { return len(b.Z) }

// Trace walks up to nlayer concentric rectangular rings of g and returns
// the ordered (z, x) coordinates. Each ring is traversed clockwise: the
// full top row left→right, the right column top→bottom without the corner
// already emitted, the bottom row right→left without its corner, and the
// left column bottom→top without either corner, for 2·nx + 2·nz − 4
// samples on the outermost ring. Ring r is inset by r samples per side.
//
// nlayer < 1 returns ErrBadLayerCount; nlayer > 3 is clamped to 3. A ring
// that would drop below 2 samples per side returns ErrGridTooSmall.
// Complexity: O(perimeter · rings).
func Trace(g Grid2D, nlayer int, attrib Attrib) (Boundary, error) {
	nr, err := checkTrace(g, nlayer, attrib)
	if err != nil {
		return Boundary{}, err
	}
	total := 0
	for r := 0; r < nr; r++ {
		total += perimeter(g.Nx-2*r, g.Nz-2*r)
	}
	b := Boundary{
		Z: make([]float64, 0, total),
		X: make([]float64, 0, total),
	}
	for r := 0; r < nr; r++ {
		b.appendRing(g.X[r:g.Nx-r], g.Z[r:g.Nz-r])
	}
	if len(b.Z) != len(b.X) {
		return Boundary{}, ErrTraceMismatch
	}

	return b, nil
}

// TraceCount returns the total sample count Trace would produce, without
// materializing coordinates. Complexity: O(1) per ring.
func TraceCount(g Grid2D, nlayer int, attrib Attrib) (int, error) {
	nr, err := checkTrace(g, nlayer, attrib)
	if err != nil {
		return 0, err
	}
	total := 0
	for r := 0; r < nr; r++ {
		total += perimeter(g.Nx-2*r, g.Nz-2*r)
	}

	return total, nil
}

// checkTrace validates trace arguments and returns the clamped ring count.
// Inner and Outer share one path: the Outer axis extension of the upstream
// solver spans an empty layer range, so both attributes walk g's own axes
// (see Attrib).
func checkTrace(g Grid2D, nlayer int, attrib Attrib) (int, error) {
	switch attrib {
	case Inner, Outer:
	default:
		return 0, ErrBadAttrib
	}
	if nlayer < 1 {
		return 0, ErrBadLayerCount
	}
	nr := nlayer
	if nr > maxRings {
		nr = maxRings
	}
	// The innermost requested ring still needs 2 samples per side.
	if g.Nx-2*(nr-1) < 2 || g.Nz-2*(nr-1) < 2 {
		return 0, ErrGridTooSmall
	}

	return nr, nil
}

// perimeter is the sample count of one rectangle ring, corners counted once.
func perimeter(nx, nz int) int { return 2*nx + 2*nz - 4 }

// appendRing emits one clockwise ring over the axis windows xs, zs.
func (b *Boundary) appendRing(xs, zs []float64) {
	right, bottom := len(xs)-1, len(zs)-1
	// Top row, left→right.
	for i := 0; i <= right; i++ {
		b.Z = append(b.Z, zs[0])
		b.X = append(b.X, xs[i])
	}
	// Right column, top→bottom, corner already emitted.
	for j := 1; j <= bottom; j++ {
		b.Z = append(b.Z, zs[j])
		b.X = append(b.X, xs[right])
	}
	// Bottom row, right→left, corner already emitted.
	for i := right - 1; i >= 0; i-- {
		b.Z = append(b.Z, zs[bottom])
		b.X = append(b.X, xs[i])
	}
	// Left column, bottom→top, both corners already emitted.
	for j := bottom - 1; j >= 1; j-- {
		b.Z = append(b.Z, zs[j])
		b.X = append(b.X, xs[0])
	}
}
