// SPDX-License-Identifier: MIT

package astar

import (
	"fmt"
	"iter"

	"github.com/katalvlaran/lvlath-paths/internal/search"
	"github.com/katalvlaran/lvlath-paths/shortest"
)

var (
	_ shortest.ShortestPath[string, float64]     = (*AStar[string, float64])(nil)
	_ shortest.ShortestDistance[string, float64] = (*AStar[string, float64])(nil)
)

// validate checks, in order: nil graph, source, target, nil heuristic,
// h(target) == 0 and finally the negative-weight pre-scan.
func (a *AStar[N, W]) validate(g shortest.Graph[N, W]) error {
	if g == nil {
		return shortest.ErrNilGraph
	}
	if !g.HasNode(a.source) {
		return fmt.Errorf("%w: %v", shortest.ErrSourceNotFound, a.source)
	}
	if !g.HasNode(a.target) {
		return fmt.Errorf("%w: %v", shortest.ErrTargetNotFound, a.target)
	}
	if a.heuristic == nil {
		return shortest.ErrNilHeuristic
	}
	var zero W
	if h := a.heuristic(a.target); h > zero {
		return fmt.Errorf("%w: h(%v)=%v", shortest.ErrInadmissibleHeuristic, a.target, h)
	}
	if a.opts.CheckWeights {
		if err := shortest.CheckWeights(g); err != nil {
			return err
		}
	}

	return nil
}

// EveryPath yields the single optimal route from source to target, or nothing
// when the target is unreachable. The search stops as soon as the target is
// settled; nodes settled on the way are not reported.
func (a *AStar[N, W]) EveryPath(g shortest.Graph[N, W]) (iter.Seq[shortest.Route[N, W]], error) {
	if err := a.validate(g); err != nil {
		return nil, shortest.Fail(a.opts, err)
	}
	cfg := a.config(true)
	name := a.opts.Name

	return search.Sequence(a.opts,
		func(stats *shortest.Stats) *search.Engine[N, W] {
			return search.NewEngine(g, cfg, stats)
		},
		a.isTarget,
		func(eng *search.Engine[N, W], node N, cost W) shortest.Route[N, W] {
			return shortest.NewRoute(g, search.MustPath(name, eng, node), cost)
		},
	), nil
}

// EveryDistance is EveryPath without path bookkeeping.
func (a *AStar[N, W]) EveryDistance(g shortest.Graph[N, W]) (iter.Seq[shortest.DirectRoute[N, W]], error) {
	if err := a.validate(g); err != nil {
		return nil, shortest.Fail(a.opts, err)
	}
	cfg := a.config(false)
	source := a.source

	return search.Sequence(a.opts,
		func(stats *shortest.Stats) *search.Engine[N, W] {
			return search.NewEngine(g, cfg, stats)
		},
		a.isTarget,
		func(_ *search.Engine[N, W], node N, cost W) shortest.DirectRoute[N, W] {
			return shortest.NewDirectRoute(g, source, node, cost)
		},
	), nil
}

func (a *AStar[N, W]) isTarget(node N) bool { return node == a.target }
