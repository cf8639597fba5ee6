// SPDX-License-Identifier: MIT

package dijkstra

import (
	"fmt"
	"iter"

	"github.com/katalvlaran/lvlath-paths/internal/search"
	"github.com/katalvlaran/lvlath-paths/shortest"
)

// Compile-time checks: Dijkstra answers both query interfaces.
var (
	_ shortest.ShortestPath[string, int64]     = (*Dijkstra[string, int64])(nil)
	_ shortest.ShortestDistance[string, int64] = (*Dijkstra[string, int64])(nil)
)

// validate runs every eager check, in order:
//  1. g must be non-nil (ErrNilGraph).
//  2. knobs must be valid (ErrBadThreshold).
//  3. g must contain the source (ErrSourceNotFound).
//  4. no edge may be negative unless the pre-scan is disabled (ErrNegativeWeight).
func (d *Dijkstra[N, W]) validate(g shortest.Graph[N, W]) error {
	if g == nil {
		return shortest.ErrNilGraph
	}
	if d.err != nil {
		return d.err
	}
	if !g.HasNode(d.source) {
		return fmt.Errorf("%w: %v", shortest.ErrSourceNotFound, d.source)
	}
	if d.opts.CheckWeights {
		if err := shortest.CheckWeights(g); err != nil {
			return err
		}
	}

	return nil
}

// EveryPath yields one Route per node settled from the source, in settle order
// (non-decreasing cost, ties in discovery order). The source itself comes first
// with a one-node path and zero cost. Unreachable nodes never appear.
//
// Complexity: O((V + E) log V) for a full run; pulling k routes costs only the
// work needed to settle k nodes, plus O(path length) per reconstruction.
func (d *Dijkstra[N, W]) EveryPath(g shortest.Graph[N, W]) (iter.Seq[shortest.Route[N, W]], error) {
	if err := d.validate(g); err != nil {
		return nil, shortest.Fail(d.opts, err)
	}
	cfg := d.config(true)
	name := d.opts.Name

	return search.Sequence(d.opts,
		func(stats *shortest.Stats) *search.Engine[N, W] {
			return search.NewEngine(g, cfg, stats)
		},
		nil,
		func(eng *search.Engine[N, W], node N, cost W) shortest.Route[N, W] {
			return shortest.NewRoute(g, search.MustPath(name, eng, node), cost)
		},
	), nil
}

// EveryDistance yields one DirectRoute per settled node, like EveryPath but
// without keeping a predecessor map.
func (d *Dijkstra[N, W]) EveryDistance(g shortest.Graph[N, W]) (iter.Seq[shortest.DirectRoute[N, W]], error) {
	if err := d.validate(g); err != nil {
		return nil, shortest.Fail(d.opts, err)
	}
	cfg := d.config(false)
	source := d.source

	return search.Sequence(d.opts,
		func(stats *shortest.Stats) *search.Engine[N, W] {
			return search.NewEngine(g, cfg, stats)
		},
		nil,
		func(_ *search.Engine[N, W], node N, cost W) shortest.DirectRoute[N, W] {
			return shortest.NewDirectRoute(g, source, node, cost)
		},
	), nil
}

// Distances runs the query to completion and returns cost per reached node.
// Unreachable nodes are absent from the map.
func (d *Dijkstra[N, W]) Distances(g shortest.Graph[N, W]) (map[N]W, error) {
	routes, err := d.EveryDistance(g)
	if err != nil {
		return nil, err
	}
	dist := make(map[N]W)
	for r := range routes {
		dist[r.Target()] = r.Cost().Value()
	}

	return dist, nil
}
