package grid

// Resample1D rebuilds g over the same endpoints at spacing dx, via the
// spacing-driven constructor. When dx does not evenly divide the original
// span the realized terminal sample stops short of the original endpoint;
// that is accepted behavior, not an error. Complexity: O(nx').
func Resample1D(g Grid1D, dx float64) (Grid1D, error) {
	return Spacing1D(g.X[0], g.X[g.Nx-1], dx)
}

// Resample2D rebuilds g over the same per-axis endpoints at spacings dx and
// dz, preserving Npml. Complexity: O(nx' + nz').
func Resample2D(g Grid2D, dx, dz float64) (Grid2D, error) {
	return Spacing2D(g.X[0], g.X[g.Nx-1], g.Z[0], g.Z[g.Nz-1], dx, dz, g.Npml)
}
