package observability

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metric names.
const (
	FrozenCellsName       = "fastmarch_frozen_cells_total"
	StaleExtractionsName  = "fastmarch_stale_extractions_total"
	TrialSetSizeName      = "fastmarch_trial_set_size"
	RunDurationName       = "fastmarch_run_duration_seconds"
	ReprioritizationsName = "fastmarch_reprioritizations_total"
)

// Collector groups the fast marching metrics.
type Collector struct {
	gatherer prometheus.Gatherer

	FrozenCells       prometheus.Counter
	StaleExtractions  prometheus.Counter
	Reprioritizations prometheus.Counter
	TrialSetSize      prometheus.Gauge
	RunDuration       prometheus.Histogram
}

// NewCollector registers the fast marching metrics against reg. A nil reg
// selects the default registerer. Registering twice against the same registry
// returns the already-registered collectors.
func NewCollector(reg prometheus.Registerer) (*Collector, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	gatherer := prometheus.DefaultGatherer
	if g, ok := reg.(prometheus.Gatherer); ok {
		gatherer = g
	}

	frozen, err := registerCounter(reg, prometheus.NewCounter(prometheus.CounterOpts{
		Name: FrozenCellsName,
		Help: "Cells moved from Trial to Alive.",
	}), FrozenCellsName)
	if err != nil {
		return nil, err
	}

	stale, err := registerCounter(reg, prometheus.NewCounter(prometheus.CounterOpts{
		Name: StaleExtractionsName,
		Help: "Trial set extractions skipped because the cell was already Alive.",
	}), StaleExtractionsName)
	if err != nil {
		return nil, err
	}

	reprio, err := registerCounter(reg, prometheus.NewCounter(prometheus.CounterOpts{
		Name: ReprioritizationsName,
		Help: "Trial cells whose tentative distance decreased.",
	}), ReprioritizationsName)
	if err != nil {
		return nil, err
	}

	size, err := registerGauge(reg, prometheus.NewGauge(prometheus.GaugeOpts{
		Name: TrialSetSizeName,
		Help: "Number of cells currently in the trial set of the last engine that reported.",
	}), TrialSetSizeName)
	if err != nil {
		return nil, err
	}

	duration, err := registerHistogram(reg, prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    RunDurationName,
		Help:    "Wall-clock duration of fast marching runs.",
		Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5},
	}), RunDurationName)
	if err != nil {
		return nil, err
	}

	return &Collector{
		gatherer:          gatherer,
		FrozenCells:       frozen,
		StaleExtractions:  stale,
		Reprioritizations: reprio,
		TrialSetSize:      size,
		RunDuration:       duration,
	}, nil
}

// Gatherer returns the gatherer associated with the collector's registry.
func (c *Collector) Gatherer() prometheus.Gatherer {
	if c == nil {
		return nil
	}
	return c.gatherer
}

// IncFrozen counts one Trial → Alive transition.
func (c *Collector) IncFrozen() {
	if c == nil || c.FrozenCells == nil {
		return
	}
	c.FrozenCells.Inc()
}

// IncStale counts one skipped stale extraction.
func (c *Collector) IncStale() {
	if c == nil || c.StaleExtractions == nil {
		return
	}
	c.StaleExtractions.Inc()
}

// IncReprioritized counts one decrease of a trial cell's key.
func (c *Collector) IncReprioritized() {
	if c == nil || c.Reprioritizations == nil {
		return
	}
	c.Reprioritizations.Inc()
}

// SetTrialSetSize reports the current frontier size.
func (c *Collector) SetTrialSetSize(n int) {
	if c == nil || c.TrialSetSize == nil {
		return
	}
	c.TrialSetSize.Set(float64(n))
}

// ObserveRun records the duration of one run.
func (c *Collector) ObserveRun(d time.Duration) {
	if c == nil || c.RunDuration == nil {
		return
	}
	c.RunDuration.Observe(d.Seconds())
}

func registerCounter(reg prometheus.Registerer, counter prometheus.Counter, name string) (prometheus.Counter, error) {
	if err := reg.Register(counter); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(prometheus.Counter); ok {
				return existing, nil
			}
			return nil, fmt.Errorf("collector %s already registered with incompatible type", name)
		}
		return nil, err
	}
	return counter, nil
}

func registerGauge(reg prometheus.Registerer, gauge prometheus.Gauge, name string) (prometheus.Gauge, error) {
	if err := reg.Register(gauge); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(prometheus.Gauge); ok {
				return existing, nil
			}
			return nil, fmt.Errorf("collector %s already registered with incompatible type", name)
		}
		return nil, err
	}
	return gauge, nil
}

func registerHistogram(reg prometheus.Registerer, hist prometheus.Histogram, name string) (prometheus.Histogram, error) {
	if err := reg.Register(hist); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(prometheus.Histogram); ok {
				return existing, nil
			}
			return nil, fmt.Errorf("collector %s already registered with incompatible type", name)
		}
		return nil, err
	}
	return hist, nil
}
