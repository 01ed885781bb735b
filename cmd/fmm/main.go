// Command fmm computes a Fast Marching distance map over a 2D cost grid.
//
// Usage:
//
//	fmm [flags] <grid-file>
//
// The grid file holds whitespace-separated costs, one row per line.
// Cells with a cost that is not a positive finite number are blocked.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/plan-systems/klog"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"

	"github.com/katalvlaran/eikonal/fastmarch"
	"github.com/katalvlaran/eikonal/gridgraph"
	"github.com/katalvlaran/eikonal/observability"
)

type config struct {
	seeds        cellList
	path         string
	margin       int
	limit        float64
	enforceLimit bool
	conn4        bool
	metrics      bool
	trace        bool
}

func (c *config) register(fset *flag.FlagSet) {
	fset.Var(&c.seeds, "seed", "seed cell x,y (repeatable)")
	fset.StringVar(&c.path, "path", "", "print the path from the nearest seed to cell x,y")
	fset.IntVar(&c.margin, "margin", 0, "border width never entered by propagation")
	fset.Float64Var(&c.limit, "limit", -1, "distance limit (negative for none)")
	fset.BoolVar(&c.enforceLimit, "enforce-limit", false, "stop marching once the limit is exceeded")
	fset.BoolVar(&c.conn4, "conn4", false, "count regions with 4-connectivity instead of 8")
	fset.BoolVar(&c.metrics, "metrics", false, "dump run metrics in Prometheus text format")
	fset.BoolVar(&c.trace, "trace", false, "export the run span to stderr")
}

func main() {
	fset := flag.NewFlagSet("fmm", flag.ExitOnError)
	klog.InitFlags(fset)
	fset.Set("logtostderr", "true")
	klog.SetFormatter(&klog.FmtConstWidth{
		FileNameCharWidth: 16,
		UseColor:          true,
	})

	var cfg config
	cfg.register(fset)
	fset.Parse(os.Args[1:])

	err := run(cfg, fset.Args(), os.Stdout, os.Stderr)
	klog.Flush()
	if err != nil {
		fmt.Fprintln(os.Stderr, "fmm:", err)
		os.Exit(1)
	}
}

func run(cfg config, args []string, stdout, stderr io.Writer) error {
	if len(args) != 1 {
		return errors.New("expected exactly one grid file")
	}
	if len(cfg.seeds) == 0 {
		return errors.New("at least one -seed is required")
	}

	f, err := os.Open(args[0])
	if err != nil {
		return err
	}
	values, err := readGrid(f)
	f.Close()
	if err != nil {
		return errors.Wrap(err, args[0])
	}

	gopts := gridgraph.DefaultGridOptions()
	if cfg.conn4 {
		gopts.Conn = gridgraph.Conn4
	}
	gg, err := gridgraph.NewGridGraph(values, gopts)
	if err != nil {
		return err
	}
	klog.V(1).Infof("grid %dx%d, %d blocked cells, %d regions",
		gg.Width, gg.Height, len(gg.BlockedCells()), len(gg.ConnectedComponents()))

	opts := []fastmarch.Option{fastmarch.WithMargin(cfg.margin)}
	if cfg.limit >= 0 {
		opts = append(opts, fastmarch.WithLimit(cfg.limit))
		if cfg.enforceLimit {
			opts = append(opts, fastmarch.WithLimitEnforced())
		}
	}

	var reg *prometheus.Registry
	if cfg.metrics {
		reg = prometheus.NewRegistry()
		col, err := observability.NewCollector(reg)
		if err != nil {
			return err
		}
		opts = append(opts, fastmarch.WithCollector(col))
	}

	if cfg.trace {
		exp, err := stdouttrace.New(stdouttrace.WithWriter(stderr), stdouttrace.WithPrettyPrint())
		if err != nil {
			return errors.Wrap(err, "trace exporter")
		}
		tp := sdktrace.NewTracerProvider(sdktrace.WithSyncer(exp))
		defer tp.Shutdown(context.Background())
		opts = append(opts, fastmarch.WithTracer(tp.Tracer("fmm")))
	}

	dm, err := gg.DistanceMap(cfg.seeds, opts...)
	if err != nil {
		return err
	}
	st := dm.Engine().Stats()
	klog.V(1).Infof("frozen %d cells, last distance %v, limit reached %v", st.Frozen, st.LastFrozen, st.LimitReached)

	if err = writeDistances(stdout, gg, dm); err != nil {
		return err
	}

	if cfg.path != "" {
		cell, err := parseCell(cfg.path)
		if err != nil {
			return err
		}
		path, err := dm.Path(cell[0], cell[1])
		if err != nil {
			return err
		}
		fmt.Fprint(stdout, "path:")
		for _, idx := range path {
			x, y := gg.Coordinate(idx)
			fmt.Fprintf(stdout, " (%d,%d)", x, y)
		}
		fmt.Fprintln(stdout)
	}

	if reg != nil {
		mfs, err := reg.Gather()
		if err != nil {
			return errors.Wrap(err, "gather metrics")
		}
		for _, mf := range mfs {
			if _, err = expfmt.MetricFamilyToText(stdout, mf); err != nil {
				return err
			}
		}
	}

	return nil
}
