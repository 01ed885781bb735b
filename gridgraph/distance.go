package gridgraph

import (
	"fmt"

	"github.com/katalvlaran/eikonal/fastmarch"
	"github.com/katalvlaran/eikonal/grid"
)

// DistanceMap holds the arrival times computed from a set of seed cells.
type DistanceMap struct {
	gg     *GridGraph
	engine *fastmarch.Engine
}

// DistanceMap runs Fast Marching from the seed cells (x,y) over the grid
// costs. Blocked cells are forbidden. Propagation covers the whole grid
// (margin 0) unless opts override it.
//
// Errors: ErrNoSeeds, ErrOutOfBounds, ErrSeedBlocked, or any engine error.
// Complexity: O(W·H·log(W·H)).
func (gg *GridGraph) DistanceMap(seeds [][2]int, opts ...fastmarch.Option) (*DistanceMap, error) {
	e, err := gg.newEngine(seeds, opts)
	if err != nil {
		return nil, err
	}
	if err = e.Run(); err != nil {
		return nil, err
	}

	return &DistanceMap{gg: gg, engine: e}, nil
}

// newEngine validates seeds, builds an engine with blocked cells forbidden,
// and seeds it.
func (gg *GridGraph) newEngine(seeds [][2]int, opts []fastmarch.Option) (*fastmarch.Engine, error) {
	coords, err := gg.cellCoords(seeds)
	if err != nil {
		return nil, err
	}
	all := append([]fastmarch.Option{fastmarch.WithMargin(0)}, opts...)
	e, err := fastmarch.New(gg.CostField(), all...)
	if err != nil {
		return nil, err
	}
	if err = e.SetForbidden(gg.BlockedCells()...); err != nil {
		return nil, err
	}
	if err = e.InitializeAlivePoints(coords); err != nil {
		return nil, err
	}
	return e, nil
}

// cellCoords converts (x,y) cells to passable {y,x} coordinates.
func (gg *GridGraph) cellCoords(cells [][2]int) ([]grid.Coord, error) {
	if len(cells) == 0 {
		return nil, ErrNoSeeds
	}
	out := make([]grid.Coord, len(cells))
	for i, c := range cells {
		x, y := c[0], c[1]
		if !gg.InBounds(x, y) {
			return nil, fmt.Errorf("%w: (%d,%d)", ErrOutOfBounds, x, y)
		}
		if !gg.Passable(x, y) {
			return nil, fmt.Errorf("%w: (%d,%d)", ErrSeedBlocked, x, y)
		}
		out[i] = grid.Coord{y, x}
	}
	return out, nil
}

// At returns the stored distance at (x,y); fastmarch.Sentinel if never
// touched or out of bounds. Cells left Trial by an enforced limit report
// their tentative distance; use Reached to tell final values apart.
func (dm *DistanceMap) At(x, y int) float64 {
	if !dm.gg.InBounds(x, y) {
		return fastmarch.Sentinel
	}
	return dm.engine.Distances().AtIndex(dm.gg.index(x, y))
}

// Reached reports whether (x,y) is Alive with a finite, final arrival time.
func (dm *DistanceMap) Reached(x, y int) bool {
	if !dm.gg.InBounds(x, y) {
		return false
	}
	i := dm.gg.index(x, y)
	return dm.engine.States().AtIndex(i) == fastmarch.Alive &&
		dm.engine.Distances().AtIndex(i) < fastmarch.Sentinel
}

// Path returns the row-major cell indices from the seed that reached (x,y)
// to (x,y) itself. ErrOutOfBounds or ErrNoPath on failure.
// Complexity: O(path length).
func (dm *DistanceMap) Path(x, y int) ([]int, error) {
	if !dm.gg.InBounds(x, y) {
		return nil, fmt.Errorf("%w: (%d,%d)", ErrOutOfBounds, x, y)
	}
	if !dm.Reached(x, y) {
		return nil, fmt.Errorf("%w: (%d,%d)", ErrNoPath, x, y)
	}
	return pathIndices(dm.engine, dm.gg.index(x, y))
}

// Engine exposes the underlying engine for state and predecessor queries.
func (dm *DistanceMap) Engine() *fastmarch.Engine {
	return dm.engine
}

// pathIndices backtracks from idx and returns the chain seed-first.
func pathIndices(e *fastmarch.Engine, idx int) ([]int, error) {
	coords, err := e.Path(e.Cost().CoordOf(idx))
	if err != nil {
		return nil, err
	}
	out := make([]int, len(coords))
	for i, c := range coords {
		out[len(coords)-1-i] = e.Cost().Index(c)
	}
	return out, nil
}
