// Package fastmarch implements the Fast Marching Method on N-dimensional grids.
//
// The engine computes arrival times (geodesic distances) from a set of seed
// cells over a per-cell cost field by solving the Eikonal equation
// |∇u| = 1/f one cell at a time, in non-decreasing order of arrival time.
//
// Complexity:
//
//   - Time:  O(V · 3^N · log V) for V cells in N dimensions.
//   - Each cell is frozen at most once and relaxes its 3^N − 1 neighbors.
//   - Each relaxation costs one O(N) Eikonal solve and at most one O(log V)
//     trial set update.
//   - Space: O(V) for state, distance and predecessor grids plus the trial set.
//
// Notes on implementation choices:
//
//   - The trial set is an ordered set keyed by (distance, index), so a trial
//     cell whose distance drops is found and moved instead of duplicated.
//   - Stale extractions (a cell already Alive) are still tolerated, counted
//     and skipped, so seeding over existing trial cells stays safe.
//   - A relaxed candidate never undercuts the distance of the cell being
//     frozen; this keeps the extraction order non-decreasing.
package fastmarch

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/plan-systems/klog"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/katalvlaran/eikonal/grid"
)

// Engine runs Fast Marching over one borrowed cost grid. It owns its state,
// distance and predecessor grids and its trial set; it is not safe for
// concurrent use. Several engines may share the same cost grid.
type Engine struct {
	cost   *grid.Grid[float64] // borrowed, read-only
	states *grid.Grid[State]
	dist   *grid.Grid[float64]
	pred   *grid.Grid[int]
	trial  *trialSet

	options Options
	sizes   []int
	strides []int
	deltas  []grid.Coord // neighbor offsets, 3^N − 1
	steps   []int        // linear offset of each delta

	stats Stats

	// scratch, reused across relaxations
	pc grid.Coord
	nc grid.Coord
	us []float64
}

// New builds an engine for the cost grid and resets it.
//
// Preconditions and validation (in order):
//  1. cost must be non-nil (ErrNilCost).
//  2. every Option must be valid (ErrOptionViolation).
//
// Complexity: O(V + 3^N·N).
func New(cost *grid.Grid[float64], opts ...Option) (*Engine, error) {
	if cost == nil {
		return nil, ErrNilCost
	}
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}

	sizes := cost.Sizes()
	// New only fails on invalid sizes, which cost already satisfies.
	states, _ := grid.New[State](sizes...)
	dist, _ := grid.New[float64](sizes...)
	pred, _ := grid.New[int](sizes...)

	n := cost.Dim()
	deltas := grid.Neighborhood(n)
	strides := cost.Strides()
	steps := make([]int, len(deltas))
	for j, d := range deltas {
		for k, v := range d {
			steps[j] += v * strides[k]
		}
	}

	e := &Engine{
		cost:    cost,
		states:  states,
		dist:    dist,
		pred:    pred,
		trial:   newTrialSet(),
		options: cfg,
		sizes:   sizes,
		strides: strides,
		deltas:  deltas,
		steps:   steps,
		pc:      make(grid.Coord, n),
		nc:      make(grid.Coord, n),
		us:      make([]float64, n),
	}
	e.Reset()

	return e, nil
}

// Reset sets every cell to Far with distance Sentinel and no predecessor,
// empties the trial set and clears Stats. The cost grid is untouched;
// Forbidden marks are cleared too and must be set again.
// Complexity: O(V).
func (e *Engine) Reset() {
	e.states.Fill(Far)
	e.dist.Fill(Sentinel)
	e.pred.Fill(NoPredecessor)
	e.trial.Clear()
	e.stats = Stats{}
}

// SetForbidden marks cells as Forbidden. Returns ErrOutOfRange for a
// coordinate outside the grid and ErrStateConflict for a cell that is
// already Alive or Trial; cells before the failing one stay marked.
func (e *Engine) SetForbidden(coords ...grid.Coord) error {
	for _, c := range coords {
		if !e.cost.Contains(c) {
			return fmt.Errorf("%w: %v", ErrOutOfRange, c)
		}
		i := e.cost.Index(c)
		switch e.states.AtIndex(i) {
		case Alive, Trial:
			return fmt.Errorf("%w: %v", ErrStateConflict, c)
		}
		e.states.SetIndex(i, Forbidden)
	}

	return nil
}

// ForbidInvalidCosts marks every Far cell whose cost is not a finite positive
// number as Forbidden and returns how many cells it marked.
// Complexity: O(V).
func (e *Engine) ForbidInvalidCosts() int {
	marked := 0
	for i, f := range e.cost.Data() {
		if validCost(f) || e.states.AtIndex(i) != Far {
			continue
		}
		e.states.SetIndex(i, Forbidden)
		marked++
	}

	return marked
}

// InitializeAlivePoints seeds the run.
//
// Every seed becomes Alive with distance 0. Every neighbor of a seed that
// lies inside the margin and is neither Alive nor Forbidden becomes Trial with
// its own cost as distance and the seed as predecessor. A neighbor shared by
// several seeds keeps the first seed. Seeds without valid neighbors are
// accepted and simply never propagate.
//
// All seeds are validated before anything changes:
//   - ErrSeedOutOfRange for a seed outside the grid.
//   - ErrSeedForbidden for a seed on a Forbidden cell.
//   - ErrInvalidCost for a seed neighbor that would become Trial but has an
//     unusable cost.
func (e *Engine) InitializeAlivePoints(seeds []grid.Coord) error {
	seeded := make(map[int]struct{}, len(seeds))
	for _, s := range seeds {
		if !e.cost.Contains(s) {
			return fmt.Errorf("%w: %v", ErrSeedOutOfRange, s)
		}
		i := e.cost.Index(s)
		if e.states.AtIndex(i) == Forbidden {
			return fmt.Errorf("%w: %v", ErrSeedForbidden, s)
		}
		seeded[i] = struct{}{}
	}
	for _, s := range seeds {
		if err := e.checkSeedNeighbors(s, seeded); err != nil {
			return err
		}
	}

	for _, s := range seeds {
		i := e.cost.Index(s)
		e.states.SetIndex(i, Alive)
		e.dist.SetIndex(i, 0)
		e.pred.SetIndex(i, NoPredecessor)
	}
	e.stats.Seeds += len(seeds)

	for _, s := range seeds {
		si := e.cost.Index(s)
		copy(e.pc, s)
		for j := range e.deltas {
			if !e.neighborInMargin(j) {
				continue
			}
			ni := si + e.steps[j]
			switch e.states.AtIndex(ni) {
			case Alive, Forbidden, Trial:
				continue
			}
			f := e.cost.AtIndex(ni)
			e.states.SetIndex(ni, Trial)
			e.dist.SetIndex(ni, f)
			e.pred.SetIndex(ni, si)
			e.trial.Insert(ni, f)
			e.stats.Inserted++
		}
	}
	e.options.Collector.SetTrialSetSize(e.trial.Len())

	return nil
}

// checkSeedNeighbors reports ErrInvalidCost for the first neighbor of s that
// seeding would turn into Trial while its cost cannot be inverted.
func (e *Engine) checkSeedNeighbors(s grid.Coord, seeded map[int]struct{}) error {
	si := e.cost.Index(s)
	copy(e.pc, s)
	for j := range e.deltas {
		if !e.neighborInMargin(j) {
			continue
		}
		ni := si + e.steps[j]
		if _, ok := seeded[ni]; ok {
			continue
		}
		switch e.states.AtIndex(ni) {
		case Alive, Forbidden, Trial:
			continue
		}
		if f := e.cost.AtIndex(ni); !validCost(f) {
			return fmt.Errorf("%w: cost %v at %v", ErrInvalidCost, f, e.cost.CoordOf(ni))
		}
	}

	return nil
}

// Run executes the marching loop to completion. See RunContext.
func (e *Engine) Run() error {
	return e.RunContext(context.Background())
}

// RunContext executes the marching loop until the trial set is empty, the
// enforced limit is exceeded, ctx is done, or a reachable cell has an
// invalid cost.
//
// Loop, per extraction:
//  1. Check ctx; all engine state is consistent here.
//  2. Extract the smallest (distance, index) entry.
//  3. Skip it if the cell is already Alive.
//  4. Freeze it (Alive) and notify the observer.
//  5. Relax every in-margin neighbor that is Far or Trial.
//
// An interrupted run can be resumed by calling RunContext again.
func (e *Engine) RunContext(ctx context.Context) (err error) {
	ctx, span := e.options.Tracer.Start(ctx, "fastmarch.Run", trace.WithAttributes(
		attribute.Int("fastmarch.cells", e.cost.Len()),
		attribute.Int("fastmarch.dim", e.cost.Dim()),
		attribute.Int("fastmarch.trial", e.trial.Len()),
	))
	start := time.Now()
	frozenBefore := e.stats.Frozen
	defer func() {
		span.SetAttributes(
			attribute.Int("fastmarch.frozen", e.stats.Frozen-frozenBefore),
			attribute.Int("fastmarch.stale", e.stats.Stale),
			attribute.Bool("fastmarch.limit_reached", e.stats.LimitReached),
		)
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
		e.options.Collector.ObserveRun(time.Since(start))
		e.options.Collector.SetTrialSetSize(e.trial.Len())
	}()

	for !e.trial.Empty() {
		// 1) cancellation between extractions
		if cerr := ctx.Err(); cerr != nil {
			return fmt.Errorf("fastmarch: run interrupted: %w", cerr)
		}

		// 2) limit check before extracting, so the cut-off cell stays Trial
		if e.options.EnforceLimit {
			if _, d, _ := e.trial.Peek(); d > e.options.Limit {
				e.stats.LimitReached = true
				klog.V(2).Infof("fastmarch: limit %v reached at distance %v, %d trial cells left",
					e.options.Limit, d, e.trial.Len())
				break
			}
		}

		p, _, _ := e.trial.ExtractMin()

		// 3) stale entry
		if e.states.AtIndex(p) == Alive {
			e.stats.Stale++
			e.options.Collector.IncStale()
			klog.V(2).Infof("fastmarch: skipping stale entry for alive cell %v", e.cost.CoordOf(p))
			continue
		}

		// 4) freeze
		e.states.SetIndex(p, Alive)
		dp := e.dist.AtIndex(p)
		e.stats.Frozen++
		e.stats.LastFrozen = dp
		e.options.Collector.IncFrozen()
		e.coordInto(p, e.pc)
		if e.options.OnFreeze != nil {
			e.options.OnFreeze(p, e.pc, dp)
		}

		// 5) relax neighbors
		if err = e.relax(p, dp); err != nil {
			return err
		}
	}
	klog.V(3).Infof("fastmarch: run done, frozen=%d stale=%d reprioritized=%d trial=%d",
		e.stats.Frozen, e.stats.Stale, e.stats.Reprioritized, e.trial.Len())

	return nil
}

// relax updates every Far or Trial neighbor of the frozen cell p.
// e.pc must hold the coordinate of p.
func (e *Engine) relax(p int, dp float64) error {
	for j := range e.deltas {
		if !e.neighborInMargin(j) {
			continue
		}
		n := p + e.steps[j]
		st := e.states.AtIndex(n)
		if st == Alive || st == Forbidden {
			continue
		}

		f := e.cost.AtIndex(n)
		if !validCost(f) {
			return fmt.Errorf("%w: cost %v at %v", ErrInvalidCost, f, e.cost.CoordOf(n))
		}

		// a) candidate from the upwind neighbors of n
		upwind(e.dist.Data(), e.sizes, e.strides, n, e.nc, e.us)
		candidate := math.Max(SolveEikonal(e.us, f), dp)

		// b) keep the better distance; prev is the trial set key of n
		prev := e.dist.AtIndex(n)
		if candidate < prev {
			e.dist.SetIndex(n, candidate)
			e.pred.SetIndex(n, p)
		}

		// c) Far → Trial, or d) move the existing trial entry
		switch st {
		case Far:
			e.states.SetIndex(n, Trial)
			e.trial.Insert(n, e.dist.AtIndex(n))
			e.stats.Inserted++
		case Trial:
			if e.trial.Reprioritize(n, prev, e.dist.AtIndex(n)) {
				e.stats.Reprioritized++
				e.options.Collector.IncReprioritized()
			}
		}
	}

	return nil
}

// neighborInMargin reports whether e.pc + deltas[j] lies inside the margin
// and, if so, leaves that coordinate in e.nc.
func (e *Engine) neighborInMargin(j int) bool {
	m := e.options.Margin
	for k, v := range e.deltas[j] {
		c := e.pc[k] + v
		if c < m || c >= e.sizes[k]-m {
			return false
		}
		e.nc[k] = c
	}

	return true
}

// coordInto writes the coordinate of linear index i into c.
func (e *Engine) coordInto(i int, c grid.Coord) {
	for k, s := range e.strides {
		c[k] = i / s
		i -= c[k] * s
	}
}

// ---------- accessors ----------

// Cost returns the borrowed cost grid.
func (e *Engine) Cost() *grid.Grid[float64] { return e.cost }

// Distances returns the live distance grid. Callers must not write to it.
func (e *Engine) Distances() *grid.Grid[float64] { return e.dist }

// States returns the live state grid. Callers must not write to it.
func (e *Engine) States() *grid.Grid[State] { return e.states }

// Predecessors returns the live predecessor grid (linear indices,
// NoPredecessor for none). Callers must not write to it.
func (e *Engine) Predecessors() *grid.Grid[int] { return e.pred }

// Limit returns the configured distance limit.
func (e *Engine) Limit() float64 { return e.options.Limit }

// Margin returns the configured margin.
func (e *Engine) Margin() int { return e.options.Margin }

// TrialLen returns the number of cells in the trial set.
func (e *Engine) TrialLen() int { return e.trial.Len() }

// Stats returns the counters of the current reset–run cycle.
func (e *Engine) Stats() Stats { return e.stats }

// Distance returns the distance of cell c (Sentinel if unreached).
func (e *Engine) Distance(c grid.Coord) (float64, error) {
	if !e.cost.Contains(c) {
		return 0, fmt.Errorf("%w: %v", ErrOutOfRange, c)
	}
	return e.dist.AtIndex(e.cost.Index(c)), nil
}

// State returns the state of cell c.
func (e *Engine) State(c grid.Coord) (State, error) {
	if !e.cost.Contains(c) {
		return Far, fmt.Errorf("%w: %v", ErrOutOfRange, c)
	}
	return e.states.AtIndex(e.cost.Index(c)), nil
}

// Predecessor returns the linear index of the cell c was reached from,
// or NoPredecessor.
func (e *Engine) Predecessor(c grid.Coord) (int, error) {
	if !e.cost.Contains(c) {
		return NoPredecessor, fmt.Errorf("%w: %v", ErrOutOfRange, c)
	}
	return e.pred.AtIndex(e.cost.Index(c)), nil
}

// Path backtracks the predecessor chain from c to the seed it was reached
// from. The result starts at c and ends at the seed.
//
// Errors: ErrOutOfRange, ErrUnreached (no finite distance), ErrBrokenChain
// (the chain does not end at a zero-distance cell within V steps).
// Complexity: O(length of the path · N).
func (e *Engine) Path(c grid.Coord) ([]grid.Coord, error) {
	if !e.cost.Contains(c) {
		return nil, fmt.Errorf("%w: %v", ErrOutOfRange, c)
	}
	i := e.cost.Index(c)
	if e.dist.AtIndex(i) >= Sentinel {
		return nil, fmt.Errorf("%w: %v", ErrUnreached, c)
	}

	path := []grid.Coord{e.cost.CoordOf(i)}
	for steps := 0; ; steps++ {
		if steps > e.cost.Len() {
			return nil, fmt.Errorf("%w: from %v", ErrBrokenChain, c)
		}
		p := e.pred.AtIndex(i)
		if p == NoPredecessor {
			break
		}
		i = p
		path = append(path, e.cost.CoordOf(i))
	}
	if e.dist.AtIndex(i) != 0 {
		return nil, fmt.Errorf("%w: from %v", ErrBrokenChain, c)
	}

	return path, nil
}
