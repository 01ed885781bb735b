package fastmarch

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/eikonal/grid"
)

// SolveEikonal solves the first-order upwind discretization of |∇u| = 1/f at
// one cell, given the per-axis upwind minimums us and the cell cost f.
//
// With s = 1/f, the unknown r satisfies
//
//	N·r² − 2·Σu·r + (Σu² − s²) = 0
//
// and the reduced discriminant is delta = (Σu)² − N·(Σu² − s²).
//
//   - delta ≥ 0: r = (Σu + √delta)/N, the larger root, provided r is not
//     below any contributing u_i.
//   - otherwise: the one-sided update min(u) + s.
//
// An unreached axis contributes Sentinel, whose square overflows and turns
// delta into NaN; that case takes the one-sided branch as well.
//
// The r ≥ max(u) guard departs from the plain two-sided formula: when
// s < |u₁ − u₀| ≤ √2·s the formula yields a root below the larger upwind
// value (u = (0, 1.2), f = 1 gives 0.9742), and this solver returns the
// one-sided min(u) + s = 1 instead.
//
// The caller guarantees f > 0.
// Complexity: O(N).
func SolveEikonal(us []float64, f float64) float64 {
	n := float64(len(us))
	s := 1 / f
	usum := floats.Sum(us)
	delta := usum*usum - n*(floats.Dot(us, us)-s*s)
	if delta >= 0 {
		r := (usum + math.Sqrt(delta)) / n
		if r >= floats.Max(us) {
			return r
		}
	}

	return floats.Min(us) + s
}

// Solve computes the candidate arrival time of cell c from the distance field
// dist and the cell cost f. Axis neighbors outside the grid count as
// Sentinel. Returns ErrOutOfRange for bad coordinates and ErrInvalidCost for
// f ≤ 0 or NaN.
func Solve(dist *grid.Grid[float64], c grid.Coord, f float64) (float64, error) {
	if !dist.Contains(c) {
		return 0, fmt.Errorf("%w: %v", ErrOutOfRange, c)
	}
	if !validCost(f) {
		return 0, fmt.Errorf("%w: cost %v at %v", ErrInvalidCost, f, c)
	}
	us := make([]float64, dist.Dim())
	upwind(dist.Data(), dist.Sizes(), dist.Strides(), dist.Index(c), c, us)

	return SolveEikonal(us, f), nil
}

// upwind fills us[k] with min(dist(c − e_k), dist(c + e_k)).
func upwind(dist []float64, sizes, strides []int, idx int, c grid.Coord, us []float64) {
	for k := range us {
		lo, hi := Sentinel, Sentinel
		if c[k] > 0 {
			lo = dist[idx-strides[k]]
		}
		if c[k]+1 < sizes[k] {
			hi = dist[idx+strides[k]]
		}
		us[k] = math.Min(lo, hi)
	}
}

// validCost reports whether f can be inverted safely.
func validCost(f float64) bool {
	return f > 0 && !math.IsInf(f, 1)
}
