// Package lag builds zero-centered 1D offset grids for correlation
// workflows.
//
// What:
//
//   - New / Symmetric: sparse, strictly increasing lag axes
//     [−reverse(neg offsets), 0, pos offsets] with the zero lag included
//     exactly once, plus the realized per-side counts.
//   - XCorr: the dense integer-lag axis {−Neg·δx, …, −δx, 0, δx, …, Pos·δx}
//     for cross-correlating two records sampled on the same grid; extents
//     default to the grid's full span and are overridable with WithLags.
//
// Rounding: per-side counts are round(extent/δx) with Go's math.Round —
// half away from zero. The convention only matters at exact .5 ratios of
// extent to spacing.
//
// Errors:
//
//   - grid.ErrNonPositiveSpacing — δx ≤ 0.
//   - ErrNegativeExtent — a lag extent below zero.
//   - ErrAsymmetricLags — internal: equal non-zero extents produced an
//     even-length axis; indicates a logic error, never expected in use.
//
// Complexity: O(samples) time and memory for every builder.
package lag
