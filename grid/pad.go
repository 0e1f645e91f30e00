package grid

// PadTruncate grows (Pad) or shrinks (Truncate) both axes of g by its own
// Npml layers per side, at the existing spacing: padded extents are
// X[0]−Npml·Dx .. X[end]+Npml·Dx (mirrored on Z) with counts Nx+2·Npml and
// Nz+2·Npml; truncation is the inward mirror. The result is built through
// the count-driven constructor, so its spacing is recomputed from the new
// axes. Any mode outside {Pad, Truncate} returns ErrBadPadMode; a
// truncation that would leave an empty axis fails with ErrBadCount.
// Complexity: O(nx + nz + 4·Npml).
func PadTruncate(g Grid2D, mode PadMode) (Grid2D, error) {
	switch mode {
	case Pad, Truncate:
	default:
		return Grid2D{}, ErrBadPadMode
	}
	// Signed layer count: +Npml grows, −Npml shrinks.
	n := int(mode) * g.Npml

	return Count2D(
		g.X[0]-float64(n)*g.Dx, g.X[g.Nx-1]+float64(n)*g.Dx,
		g.Z[0]-float64(n)*g.Dz, g.Z[g.Nz-1]+float64(n)*g.Dz,
		g.Nx+2*n, g.Nz+2*n, g.Npml,
	)
}
