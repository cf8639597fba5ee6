// SPDX-License-Identifier: MIT

// Command pathfind runs one shortest-path query over a graph described in the
// fixture YAML format and prints the routes it finds.
//
// Usage:
//
//	pathfind -fixture scenario                      # every route from the fixture source
//	pathfind -graph roads.yaml -from Kyiv -to Lviv  # one route, Dijkstra
//	pathfind -graph grid.yaml -algo astar -heuristic manhattan -from 0,0 -to 9,9
//	pathfind -fixture negative_dag -algo floydwarshall
//
// Run statistics are logged to stderr (raise -v for start/finish lines) and,
// with -metrics, dumped in the Prometheus text format after the routes.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/go-logr/stdr"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
	"go.opentelemetry.io/otel"

	"github.com/katalvlaran/lvlath-paths/astar"
	"github.com/katalvlaran/lvlath-paths/builder"
	"github.com/katalvlaran/lvlath-paths/core"
	"github.com/katalvlaran/lvlath-paths/dijkstra"
	"github.com/katalvlaran/lvlath-paths/floydwarshall"
	"github.com/katalvlaran/lvlath-paths/internal/fixture"
	"github.com/katalvlaran/lvlath-paths/observe"
	"github.com/katalvlaran/lvlath-paths/shortest"
)

var (
	errUsage    = errors.New("usage")
	errNoRoute  = errors.New("no route")
	errNoTarget = errors.New("-to is required")
)

type config struct {
	graphFile  string
	fixture    string
	algo       string
	heuristic  string
	from, to   string
	maxCost    float64
	impassable float64
	verbosity  int
	slow       time.Duration
	metrics    bool
}

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if !errors.Is(err, flag.ErrHelp) {
			fmt.Fprintln(os.Stderr, "pathfind:", err)
		}
		os.Exit(1)
	}
}

func parseFlags(args []string, stderr io.Writer) (config, error) {
	var c config
	fs := flag.NewFlagSet("pathfind", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&c.graphFile, "graph", "", "YAML graph file")
	fs.StringVar(&c.fixture, "fixture", "", "embedded fixture name (instead of -graph)")
	fs.StringVar(&c.algo, "algo", dijkstra.Name, "dijkstra | astar | floydwarshall")
	fs.StringVar(&c.heuristic, "heuristic", "zero", "A* heuristic: zero | manhattan (grid IDs \"r,c\")")
	fs.StringVar(&c.from, "from", "", "source node (defaults to the file's source)")
	fs.StringVar(&c.to, "to", "", "target node")
	fs.Float64Var(&c.maxCost, "max-cost", -1, "dijkstra: stop beyond this cost (negative = off)")
	fs.Float64Var(&c.impassable, "impassable", 0, "dijkstra: skip edges at or above this weight (0 = off)")
	fs.IntVar(&c.verbosity, "v", 0, "log verbosity")
	fs.DurationVar(&c.slow, "slow", 0, "log runs slower than this (0 = off)")
	fs.BoolVar(&c.metrics, "metrics", false, "print Prometheus metrics after the query")
	if err := fs.Parse(args); err != nil {
		return c, err
	}
	if (c.graphFile == "") == (c.fixture == "") {
		return c, fmt.Errorf("%w: exactly one of -graph or -fixture is required", errUsage)
	}

	return c, nil
}

func run(args []string, stdout, stderr io.Writer) error {
	c, err := parseFlags(args, stderr)
	if err != nil {
		return err
	}
	f, err := loadFixture(c)
	if err != nil {
		return err
	}
	g, err := fixture.Build[float64](f)
	if err != nil {
		return err
	}
	if c.from == "" {
		c.from = f.Source
	}

	stdr.SetVerbosity(c.verbosity)
	logger := stdr.New(log.New(stderr, "", log.LstdFlags))
	reg := prometheus.NewRegistry()
	obs := observe.Multi(
		observe.NewLogger(logger, observe.WithSlowRun(c.slow)),
		observe.NewPrometheus(reg),
		observe.NewTracer(otel.Tracer("pathfind")),
	)
	opts := []shortest.Option{shortest.WithObserver(obs)}

	switch c.algo {
	case dijkstra.Name:
		err = runDijkstra(c, g, opts, stdout)
	case astar.Name:
		err = runAStar(c, g, opts, stdout)
	case floydwarshall.Name:
		err = runFloydWarshall(c, g, opts, stdout)
	default:
		err = fmt.Errorf("%w: unknown -algo %q", errUsage, c.algo)
	}
	if err != nil {
		return err
	}
	if c.metrics {
		return writeMetrics(reg, stdout)
	}

	return nil
}

func loadFixture(c config) (fixture.Fixture, error) {
	if c.fixture != "" {
		return fixture.Load(c.fixture)
	}
	raw, err := os.ReadFile(c.graphFile)
	if err != nil {
		return fixture.Fixture{}, err
	}

	return fixture.Parse(c.graphFile, raw)
}

func runDijkstra(c config, g *core.Graph[float64], opts []shortest.Option, w io.Writer) error {
	d := dijkstra.New[string, float64](c.from, opts...)
	if c.maxCost >= 0 {
		d.WithMaxCost(c.maxCost)
	}
	if c.impassable > 0 {
		d.WithImpassable(c.impassable)
	}
	if c.to != "" {
		r, ok := shortest.PathBetween[string, float64](d, g, c.from, c.to)
		if !ok {
			return fmt.Errorf("%w: %s→%s", errNoRoute, c.from, c.to)
		}
		_, err := fmt.Fprintln(w, r)

		return err
	}

	routes, err := d.EveryPath(g)
	if err != nil {
		return err
	}
	for r := range routes {
		if _, err = fmt.Fprintln(w, r); err != nil {
			return err
		}
	}

	return nil
}

func runAStar(c config, g *core.Graph[float64], opts []shortest.Option, w io.Writer) error {
	if c.to == "" {
		return fmt.Errorf("%w: %w for astar", errUsage, errNoTarget)
	}
	h, err := heuristic(c, g)
	if err != nil {
		return err
	}
	routes, err := astar.New(c.from, c.to, h, opts...).EveryPath(g)
	if err != nil {
		return err
	}
	found := false
	for r := range routes {
		found = true
		if _, err = fmt.Fprintln(w, r); err != nil {
			return err
		}
	}
	if !found {
		return fmt.Errorf("%w: %s→%s", errNoRoute, c.from, c.to)
	}

	return nil
}

// heuristic builds the A* estimate named by -heuristic. The Manhattan estimate
// is scaled by the lightest edge so it never overestimates.
func heuristic(c config, g *core.Graph[float64]) (astar.Heuristic[string, float64], error) {
	switch c.heuristic {
	case "zero":
		return astar.Zero[string, float64](), nil
	case "manhattan":
		tr, tc, ok := builder.GridCoord(c.to)
		if !ok {
			return nil, fmt.Errorf("%w: manhattan needs grid IDs, got target %q", errUsage, c.to)
		}
		minW := -1.0
		for _, e := range g.Edges() {
			if minW < 0 || e.Weight < minW {
				minW = e.Weight
			}
		}
		if minW < 0 {
			minW = 0
		}

		return func(node string) float64 {
			r, col, ok := builder.GridCoord(node)
			if !ok {
				return 0
			}
			dr, dc := r-tr, col-tc
			if dr < 0 {
				dr = -dr
			}
			if dc < 0 {
				dc = -dc
			}

			return float64(dr+dc) * minW
		}, nil
	default:
		return nil, fmt.Errorf("%w: unknown -heuristic %q", errUsage, c.heuristic)
	}
}

func runFloydWarshall(c config, g *core.Graph[float64], opts []shortest.Option, w io.Writer) error {
	fw := floydwarshall.New[string, float64](opts...)
	routes, err := fw.EveryPath(g)
	if err != nil {
		return err
	}
	for r := range routes {
		if c.from != "" && r.Source() != c.from {
			continue
		}
		if c.to != "" && r.Target() != c.to {
			continue
		}
		if _, err = fmt.Fprintln(w, r); err != nil {
			return err
		}
	}

	return nil
}

func writeMetrics(reg *prometheus.Registry, w io.Writer) error {
	families, err := reg.Gather()
	if err != nil {
		return err
	}
	for _, mf := range families {
		if _, err = expfmt.MetricFamilyToText(w, mf); err != nil {
			return err
		}
	}

	return nil
}
