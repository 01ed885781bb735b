package fastmarch

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/eikonal/grid"
)

// RunBatch computes one distance map per seed set over a shared cost grid.
//
// Each seed set gets its own Engine (private state, distance and predecessor
// grids and trial set); the cost grid is only read. Engines run concurrently
// and the first failure cancels the others. Results are returned in seed-set
// order. forbidden, if non-nil, is applied to every engine before seeding.
//
// The options are shared by every engine, so a WithOnFreeze observer is
// called from several goroutines at once and must be safe for concurrent use.
//
// Complexity: the sum of the individual runs, spread over len(seedSets)
// goroutines; memory O(len(seedSets) · V).
func RunBatch(ctx context.Context, cost *grid.Grid[float64], seedSets [][]grid.Coord, forbidden []grid.Coord, opts ...Option) ([]*Engine, error) {
	engines := make([]*Engine, len(seedSets))
	for i := range seedSets {
		e, err := New(cost, opts...)
		if err != nil {
			return nil, err
		}
		if err = e.SetForbidden(forbidden...); err != nil {
			return nil, err
		}
		engines[i] = e
	}

	g, gctx := errgroup.WithContext(ctx)
	for i, e := range engines {
		i, e := i, e
		g.Go(func() error {
			if err := e.InitializeAlivePoints(seedSets[i]); err != nil {
				return fmt.Errorf("fastmarch: batch run %d: %w", i, err)
			}
			if err := e.RunContext(gctx); err != nil {
				return fmt.Errorf("fastmarch: batch run %d: %w", i, err)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return engines, nil
}
