// Package fastmarch defines the cell states, configuration options and
// sentinel errors of the Fast Marching engine.
package fastmarch

import (
	"errors"
	"fmt"
	"math"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"

	"github.com/katalvlaran/eikonal/grid"
	"github.com/katalvlaran/eikonal/observability"
)

// Sentinel is the distance of a cell that has not been reached yet.
const Sentinel = math.MaxFloat64

// NoPredecessor marks a cell without a predecessor (seeds, unreached cells).
const NoPredecessor = -1

// DefaultMargin is the border width, in cells, that propagation never enters.
const DefaultMargin = 1

const tracerName = "github.com/katalvlaran/eikonal/fastmarch"

// Sentinel errors returned by the Fast Marching engine.
var (
	// ErrNilCost indicates that New was given a nil cost grid.
	ErrNilCost = errors.New("fastmarch: cost grid is nil")

	// ErrSeedOutOfRange indicates a seed coordinate outside the grid.
	ErrSeedOutOfRange = errors.New("fastmarch: seed out of range")

	// ErrSeedForbidden indicates a seed placed on a Forbidden cell.
	ErrSeedForbidden = errors.New("fastmarch: seed on forbidden cell")

	// ErrOutOfRange indicates a coordinate outside the grid in an accessor or SetForbidden.
	ErrOutOfRange = errors.New("fastmarch: coordinate out of range")

	// ErrStateConflict indicates an attempt to forbid a cell that already
	// took part in propagation (Alive or Trial).
	ErrStateConflict = errors.New("fastmarch: cell already alive or trial")

	// ErrInvalidCost indicates that propagation reached a cell whose cost is
	// not a finite positive number. Such cells must be marked Forbidden
	// before Run (see Engine.ForbidInvalidCosts).
	ErrInvalidCost = errors.New("fastmarch: cost must be finite and positive on reachable cells")

	// ErrUnreached indicates that a path was requested for a cell without a
	// finite distance.
	ErrUnreached = errors.New("fastmarch: cell not reached")

	// ErrBrokenChain indicates a predecessor chain that does not end at a seed.
	ErrBrokenChain = errors.New("fastmarch: predecessor chain does not reach a seed")

	// ErrOptionViolation is returned by New when an invalid Option was supplied.
	ErrOptionViolation = errors.New("fastmarch: invalid option supplied")
)

// State is the per-cell marching state. Cells move Far → Trial → Alive only;
// Forbidden is set by the caller and never left during a run.
type State uint8

const (
	// Alive cells hold their final distance.
	Alive State = iota
	// Trial cells hold a tentative distance and sit in the trial set.
	Trial
	// Far cells have not been reached; their distance is Sentinel.
	Far
	// Forbidden cells are skipped by propagation.
	Forbidden
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case Alive:
		return "Alive"
	case Trial:
		return "Trial"
	case Far:
		return "Far"
	case Forbidden:
		return "Forbidden"
	default:
		return fmt.Sprintf("State(%d)", uint8(s))
	}
}

// FreezeFunc observes one Trial → Alive transition. The coordinate is owned
// by the engine and reused; copy it to keep it. It must not mutate the engine.
// A single engine calls it from one goroutine; RunBatch shares it between
// engines running concurrently, so batch observers must be goroutine-safe.
type FreezeFunc func(idx int, c grid.Coord, dist float64)

// Options configures an Engine.
//
// Limit        – distance limit; advisory unless EnforceLimit is set. Default Sentinel.
// EnforceLimit – stop Run once the smallest trial distance exceeds Limit.
// Margin       – border width never visited by propagation. Default DefaultMargin.
// OnFreeze     – optional observer, nil by default.
// Collector    – optional Prometheus collector, nil by default.
// Tracer       – tracer for Run spans; defaults to the global otel provider.
type Options struct {
	Limit        float64
	EnforceLimit bool
	Margin       int
	OnFreeze     FreezeFunc
	Collector    *observability.Collector
	Tracer       trace.Tracer

	// first invalid option, surfaced by New
	err error
}

// Option represents a functional option for configuring an Engine.
type Option func(*Options)

// DefaultOptions returns the configuration used when no Option is given:
//   - Limit:        Sentinel (no limit).
//   - EnforceLimit: false.
//   - Margin:       DefaultMargin.
//   - Tracer:       otel.Tracer for this package.
func DefaultOptions() Options {
	return Options{
		Limit:  Sentinel,
		Margin: DefaultMargin,
		Tracer: otel.Tracer(tracerName),
	}
}

// WithLimit stores a distance limit. Without WithLimitEnforced the limit is
// carried for callers only (Engine.Limit) and Run still propagates everywhere.
// Negative or NaN limits are reported by New as ErrOptionViolation.
func WithLimit(limit float64) Option {
	return func(o *Options) {
		if limit < 0 || math.IsNaN(limit) {
			o.err = fmt.Errorf("%w: limit must be non-negative (%v)", ErrOptionViolation, limit)
			return
		}
		o.Limit = limit
	}
}

// WithLimitEnforced makes Run stop as soon as the smallest trial distance is
// greater than Limit. Cells left in the trial set keep the Trial state.
func WithLimitEnforced() Option {
	return func(o *Options) {
		o.EnforceLimit = true
	}
}

// WithMargin sets the border width that propagation never enters.
// Margin 0 visits border cells too; their out-of-grid axis neighbors count as
// unreached. Negative margins are reported by New as ErrOptionViolation.
func WithMargin(m int) Option {
	return func(o *Options) {
		if m < 0 {
			o.err = fmt.Errorf("%w: margin cannot be negative (%d)", ErrOptionViolation, m)
			return
		}
		o.Margin = m
	}
}

// WithOnFreeze registers an observer called once per frozen cell.
func WithOnFreeze(fn FreezeFunc) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnFreeze = fn
		}
	}
}

// WithCollector reports run metrics to c.
func WithCollector(c *observability.Collector) Option {
	return func(o *Options) {
		o.Collector = c
	}
}

// WithTracer overrides the tracer used for Run spans.
func WithTracer(t trace.Tracer) Option {
	return func(o *Options) {
		if t != nil {
			o.Tracer = t
		}
	}
}

// Stats summarizes the activity of the current reset–run cycle.
type Stats struct {
	Seeds         int     // cells seeded as Alive
	Inserted      int     // trial set insertions
	Frozen        int     // Trial → Alive transitions
	Stale         int     // extractions skipped because the cell was already Alive
	Reprioritized int     // trial entries whose key decreased
	LastFrozen    float64 // distance of the most recently frozen cell
	LimitReached  bool    // Run stopped early on an enforced limit
}
