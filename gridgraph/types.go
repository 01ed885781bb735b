// Package gridgraph defines core types, options, and sentinel errors
// for the gridgraph subpackage of github.com/katalvlaran/eikonal.
package gridgraph

import (
	"errors"
)

// Sentinel errors for gridgraph operations.
var (
	// ErrEmptyGrid indicates input grid has no rows or no columns.
	ErrEmptyGrid = errors.New("gridgraph: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("gridgraph: all rows must have the same length")
	// ErrSeedBlocked indicates a seed or target placed on a blocked cell.
	ErrSeedBlocked = errors.New("gridgraph: seed on blocked cell")
	// ErrOutOfBounds indicates a cell outside the grid.
	ErrOutOfBounds = errors.New("gridgraph: cell out of bounds")
	// ErrNoSeeds indicates an empty seed or target list.
	ErrNoSeeds = errors.New("gridgraph: at least one seed is required")
	// ErrNoPath indicates that no target was reached from the seeds.
	ErrNoPath = errors.New("gridgraph: no path between seeds and target")
)

// Connectivity selects neighbor connectivity: orthogonal (Conn4) or including diagonals (Conn8).
// It drives ConnectedComponents only; distance maps always use the full 8-neighborhood.
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: N, E, S, W.
	Conn4 Connectivity = iota
	// Conn8 uses 8-directional connectivity: N, NE, E, SE, S, SW, W, NW.
	Conn8
)

// GridOptions contains tunable parameters for grid analysis.
type GridOptions struct {
	// MinCost is the smallest cost of a passable cell. Cells with a cost
	// below MinCost, not above zero, or not finite are blocked.
	MinCost float64
	// Conn chooses 4- or 8-directional connectivity.
	Conn Connectivity
}

// DefaultGridOptions returns a GridOptions with default settings:
// MinCost=0 (any positive finite cost is passable), Conn=Conn8.
func DefaultGridOptions() GridOptions {
	return GridOptions{
		MinCost: 0,
		Conn:    Conn8,
	}
}

// GridGraph treats a 2D cost grid as a graph. It is immutable once built.
// Width and Height define dimensions; Costs[y][x] holds the input cost.
type GridGraph struct {
	Width, Height   int
	Costs           [][]float64
	Conn            Connectivity
	MinCost         float64
	neighborOffsets [][2]int
}
