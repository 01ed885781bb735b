package fastmarch_test

import (
	"context"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/eikonal/fastmarch"
	"github.com/katalvlaran/eikonal/grid"
)

func TestRunBatch_MatchesSequentialRuns(t *testing.T) {
	cost := randomCost(t, 13, 11, 11)
	seedSets := [][]grid.Coord{
		{{5, 5}},
		{{0, 0}, {10, 10}},
		{{2, 8}},
	}
	forbidden := []grid.Coord{{4, 4}, {4, 5}, {4, 6}}

	engines, err := fastmarch.RunBatch(context.Background(), cost, seedSets, forbidden, fastmarch.WithMargin(0))
	require.NoError(t, err)
	require.Len(t, engines, len(seedSets))

	for i, seeds := range seedSets {
		ref := newEngine(t, cost, fastmarch.WithMargin(0))
		require.NoError(t, ref.SetForbidden(forbidden...))
		run(t, ref, seeds...)
		assert.Equal(t, ref.Distances().Data(), engines[i].Distances().Data(), "seed set %d", i)
		assert.Equal(t, ref.Predecessors().Data(), engines[i].Predecessors().Data(), "seed set %d", i)
	}
}

func TestRunBatch_Errors(t *testing.T) {
	cost := uniformCost(t, 1, 6, 6)

	_, err := fastmarch.RunBatch(context.Background(), cost, [][]grid.Coord{{{1, 1}}, {{9, 9}}}, nil)
	assert.ErrorIs(t, err, fastmarch.ErrSeedOutOfRange)

	_, err = fastmarch.RunBatch(context.Background(), cost, [][]grid.Coord{{{1, 1}}}, []grid.Coord{{6, 0}})
	assert.ErrorIs(t, err, fastmarch.ErrOutOfRange)

	_, err = fastmarch.RunBatch(context.Background(), nil, [][]grid.Coord{{{1, 1}}}, nil)
	assert.ErrorIs(t, err, fastmarch.ErrNilCost)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = fastmarch.RunBatch(ctx, cost, [][]grid.Coord{{{2, 2}}}, nil)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRunBatch_Empty(t *testing.T) {
	engines, err := fastmarch.RunBatch(context.Background(), uniformCost(t, 1, 3, 3), nil, nil)
	require.NoError(t, err)
	assert.Empty(t, engines)
}

func TestRunBatch_SharedObserverIsCalledPerFreeze(t *testing.T) {
	cost := uniformCost(t, 1, 9, 9)
	seedSets := [][]grid.Coord{{{0, 0}}, {{4, 4}}, {{8, 8}}, {{0, 8}}}

	var frozen atomic.Int64
	observe := func(int, grid.Coord, float64) { frozen.Add(1) }
	engines, err := fastmarch.RunBatch(context.Background(), cost, seedSets, nil,
		fastmarch.WithMargin(0), fastmarch.WithOnFreeze(observe))
	require.NoError(t, err)

	var want int64
	for _, e := range engines {
		want += int64(e.Stats().Frozen)
	}
	assert.Positive(t, want)
	assert.Equal(t, want, frozen.Load())
}

func TestRunBatch_ErrorNamesFailingRun(t *testing.T) {
	cost := uniformCost(t, 1, 4, 4)
	_, err := fastmarch.RunBatch(context.Background(), cost, [][]grid.Coord{{{1, 1}}, {{1, 1}}, {{7, 0}}}, nil)
	require.ErrorIs(t, err, fastmarch.ErrSeedOutOfRange)
	assert.Contains(t, err.Error(), "fastmarch: batch run 2:")
}
