package observability

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	dto "github.com/prometheus/client_model/go"
)

func TestCollectorCounts(t *testing.T) {
	reg := prometheus.NewRegistry()
	c, err := NewCollector(reg)
	if err != nil {
		t.Fatalf("NewCollector: %v", err)
	}

	c.IncFrozen()
	c.IncFrozen()
	c.IncStale()
	c.IncReprioritized()
	c.SetTrialSetSize(7)
	c.ObserveRun(20 * time.Millisecond)

	if got := testutil.ToFloat64(c.FrozenCells); got != 2 {
		t.Fatalf("%s = %v, want 2", FrozenCellsName, got)
	}
	if got := testutil.ToFloat64(c.StaleExtractions); got != 1 {
		t.Fatalf("%s = %v, want 1", StaleExtractionsName, got)
	}
	if got := testutil.ToFloat64(c.Reprioritizations); got != 1 {
		t.Fatalf("%s = %v, want 1", ReprioritizationsName, got)
	}
	if got := testutil.ToFloat64(c.TrialSetSize); got != 7 {
		t.Fatalf("%s = %v, want 7", TrialSetSizeName, got)
	}
	if count := histogramSampleCount(t, c.Gatherer(), RunDurationName); count != 1 {
		t.Fatalf("%s sample_count = %d, want 1", RunDurationName, count)
	}
}

func TestCollectorRegisterTwiceReusesMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	a, err := NewCollector(reg)
	if err != nil {
		t.Fatalf("first NewCollector: %v", err)
	}
	b, err := NewCollector(reg)
	if err != nil {
		t.Fatalf("second NewCollector: %v", err)
	}

	a.IncFrozen()
	b.IncFrozen()
	if got := testutil.ToFloat64(a.FrozenCells); got != 2 {
		t.Fatalf("shared counter = %v, want 2", got)
	}
}

func TestNilCollectorIsNoop(t *testing.T) {
	var c *Collector
	c.IncFrozen()
	c.IncStale()
	c.IncReprioritized()
	c.SetTrialSetSize(3)
	c.ObserveRun(time.Second)
	if c.Gatherer() != nil {
		t.Fatal("nil collector must have nil gatherer")
	}
}

func histogramSampleCount(t *testing.T, g prometheus.Gatherer, name string) uint64 {
	t.Helper()
	families, err := g.Gather()
	if err != nil {
		t.Fatalf("Gather: %v", err)
	}
	for _, mf := range families {
		if mf.GetName() != name || mf.GetType() != dto.MetricType_HISTOGRAM {
			continue
		}
		for _, m := range mf.GetMetric() {
			return m.GetHistogram().GetSampleCount()
		}
	}
	return 0
}
