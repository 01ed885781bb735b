package gridgraph

import (
	"context"
	"errors"

	"github.com/katalvlaran/eikonal/fastmarch"
	"github.com/katalvlaran/eikonal/grid"
)

// errTargetFrozen stops the march once a target is frozen.
var errTargetFrozen = errors.New("gridgraph: target reached")

// Connect finds the geodesically nearest target cell from any of the source
// cells and returns the path (row-major indices, source first) and its
// arrival time.
//
// Behavior:
//  1. Validate sources and targets (ErrNoSeeds, ErrOutOfBounds, ErrSeedBlocked).
//  2. Multi-source Fast Marching from all sources, blocked cells forbidden.
//  3. Stop as soon as any target cell is frozen.
//  4. Reconstruct the path via predecessors.
//
// A target that is also a source is reached at distance 0.
// Returns ErrNoPath if no target is reachable.
//
// Complexity: O(W·H·log(W·H)) worst case; the march stops early at the
// first target.
func (gg *GridGraph) Connect(sources, targets [][2]int, opts ...fastmarch.Option) (path []int, dist float64, err error) {
	src, err := gg.cellCoords(sources)
	if err != nil {
		return nil, 0, err
	}
	dst, err := gg.cellCoords(targets)
	if err != nil {
		return nil, 0, err
	}
	dstSet := make(map[int]struct{}, len(dst))
	for _, c := range dst {
		dstSet[gg.index(c[1], c[0])] = struct{}{}
	}
	// seeds are never frozen by the march
	for _, c := range src {
		if i := gg.index(c[1], c[0]); hasKey(dstSet, i) {
			return []int{i}, 0, nil
		}
	}

	ctx, cancel := context.WithCancelCause(context.Background())
	defer cancel(nil)
	target := -1
	stop := fastmarch.WithOnFreeze(func(idx int, _ grid.Coord, _ float64) {
		if target < 0 && hasKey(dstSet, idx) {
			target = idx
			cancel(errTargetFrozen)
		}
	})

	all := append(append([]fastmarch.Option(nil), opts...), stop)
	e, err := gg.newEngine(sources, all)
	if err != nil {
		return nil, 0, err
	}
	if err = e.RunContext(ctx); err != nil && !errors.Is(context.Cause(ctx), errTargetFrozen) {
		return nil, 0, err
	}
	if target < 0 || e.Distances().AtIndex(target) >= fastmarch.Sentinel {
		return nil, 0, ErrNoPath
	}

	path, err = pathIndices(e, target)
	if err != nil {
		return nil, 0, err
	}
	return path, e.Distances().AtIndex(target), nil
}

func hasKey(set map[int]struct{}, k int) bool {
	_, ok := set[k]
	return ok
}
