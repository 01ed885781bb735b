// SPDX-License-Identifier: MIT

package grid_test

import (
	"fmt"

	"github.com/katalvlaran/eikonal/grid"
)

// ExampleGrid shows coordinate access on a 2×3 grid and the row-major index.
func ExampleGrid() {
	g, _ := grid.New[float64](2, 3)
	_ = g.Set(grid.Coord{1, 2}, 9)

	v, _ := g.At(grid.Coord{1, 2})
	fmt.Println(v, g.Index(grid.Coord{1, 2}), g.CoordOf(4))
	// Output: 9 5 (1,1)
}

// ExampleNeighborhood lists the 8-connected offsets of a 2D cell.
func ExampleNeighborhood() {
	fmt.Println(len(grid.Neighborhood(2)), len(grid.Neighborhood(3)))
	fmt.Println(grid.Neighborhood(2)[:3])
	// Output:
	// 8 26
	// [(-1,-1) (-1,0) (-1,1)]
}
