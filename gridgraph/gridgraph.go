// Package gridgraph adapts a 2D grid of float costs to the Fast Marching
// engine. It supports:
//
//   - Four- or eight-connectivity (Conn4 or Conn8) for region analysis
//   - Conversion to an N-dimensional cost field
//   - Identification of connected regions of passable cells
//   - Distance maps and geodesic paths between seed and target cells
//
// Cells whose cost is not finite, not positive, or below MinCost are blocked.
package gridgraph

import (
	"math"

	"github.com/katalvlaran/eikonal/grid"
)

// NewGridGraph constructs a GridGraph from a non-empty, rectangular 2D slice.
// It deep-copies the input to ensure immutability.
// Returns ErrEmptyGrid if grid has no rows or no columns,
// ErrNonRectangular if any row length differs.
// Algorithmic complexity: O(W×H) time and memory.
func NewGridGraph(values [][]float64, opts GridOptions) (*GridGraph, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(values), len(values[0])
	for _, row := range values {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}
	// Deep copy to prevent external mutation
	cells := make([][]float64, h)
	for y := 0; y < h; y++ {
		cells[y] = make([]float64, w)
		copy(cells[y], values[y])
	}
	// Precompute neighbor offsets based on connectivity
	var offsets [][2]int
	if opts.Conn == Conn8 {
		offsets = [][2]int{{0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}}
	} else {
		offsets = [][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}
	}
	gg := &GridGraph{
		Width:           w,
		Height:          h,
		Costs:           cells,
		Conn:            opts.Conn,
		MinCost:         opts.MinCost,
		neighborOffsets: offsets,
	}

	return gg, nil
}

// InBounds reports whether (x,y) lies within the grid boundaries.
// Complexity: O(1).
func (gg *GridGraph) InBounds(x, y int) bool {
	return x >= 0 && x < gg.Width && y >= 0 && y < gg.Height
}

// NeighborOffsets returns the precomputed neighbor offsets slice as (dx,dy).
// Complexity: O(1).
func (gg *GridGraph) NeighborOffsets() [][2]int {
	return gg.neighborOffsets
}

// Passable reports whether (x,y) is inside the grid and not blocked.
// Complexity: O(1).
func (gg *GridGraph) Passable(x, y int) bool {
	if !gg.InBounds(x, y) {
		return false
	}
	f := gg.Costs[y][x]
	return f > 0 && f >= gg.MinCost && !math.IsInf(f, 1)
}

// CostField returns the costs as a fresh grid of sizes [Height, Width];
// cell (x,y) lives at coordinate {y, x} and linear index y*Width + x.
// Complexity: O(W×H).
func (gg *GridGraph) CostField() *grid.Grid[float64] {
	// sizes are positive, so New cannot fail
	g, _ := grid.New[float64](gg.Height, gg.Width)
	for y, row := range gg.Costs {
		copy(g.Data()[y*gg.Width:], row)
	}
	return g
}

// BlockedCells returns the coordinates {y, x} of every blocked cell in
// row-major order.
// Complexity: O(W×H).
func (gg *GridGraph) BlockedCells() []grid.Coord {
	var out []grid.Coord
	for y := 0; y < gg.Height; y++ {
		for x := 0; x < gg.Width; x++ {
			if !gg.Passable(x, y) {
				out = append(out, grid.Coord{y, x})
			}
		}
	}
	return out
}

// index maps (x,y) to a row‑major index: y*Width + x.
// Complexity: O(1).
func (gg *GridGraph) index(x, y int) int {
	return y*gg.Width + x
}

// Coordinate converts a row‑major index back to (x,y).
// Complexity: O(1).
func (gg *GridGraph) Coordinate(idx int) (x, y int) {
	return idx % gg.Width, idx / gg.Width
}
