// SPDX-License-Identifier: MIT

package search

import (
	"fmt"

	"github.com/katalvlaran/lvlath-paths/shortest"
)

// Config describes one settle-and-relax run.
//
//	Source     – node seeded at cost zero; must exist (checked by the caller).
//	Priority   – ordering key for a node reached at cost; nil orders by cost alone.
//	Target     – when HasTarget, the run ends right after Target is settled.
//	MaxCost    – when HasMaxCost, tentative costs above MaxCost are discarded.
//	Impassable – when HasImpassable, edges with weight ≥ Impassable are skipped.
//	TrackPaths – keep a predecessor map so Path can rebuild routes.
type Config[N comparable, W shortest.Weight] struct {
	Source   N
	Priority func(node N, cost W) W

	Target    N
	HasTarget bool

	MaxCost    W
	HasMaxCost bool

	Impassable    W
	HasImpassable bool

	TrackPaths bool
}

// Engine is a lazy Dijkstra-style relaxation loop. Each call to Next settles
// exactly one node; nothing runs ahead of the caller.
type Engine[N comparable, W shortest.Weight] struct {
	g        shortest.Graph[N, W]
	cfg      Config[N, W]
	frontier *Frontier[N, W]
	best     map[N]W
	settled  map[N]bool
	preds    *Predecessors[N, W]
	stats    *shortest.Stats
	done     bool
	err      error
}

// NewEngine seeds a run over g. stats, if non-nil, receives settle/relax counts.
func NewEngine[N comparable, W shortest.Weight](g shortest.Graph[N, W], cfg Config[N, W], stats *shortest.Stats) *Engine[N, W] {
	if stats == nil {
		stats = &shortest.Stats{}
	}
	var zero W
	e := &Engine[N, W]{
		g:        g,
		cfg:      cfg,
		frontier: NewFrontier[N, W](16),
		best:     map[N]W{cfg.Source: zero},
		settled:  make(map[N]bool),
		stats:    stats,
	}
	if cfg.TrackPaths {
		e.preds = NewPredecessors[N, W](16)
	}
	e.frontier.Push(cfg.Source, zero, e.priority(cfg.Source, zero))

	return e
}

func (e *Engine[N, W]) priority(node N, cost W) W {
	if e.cfg.Priority == nil {
		return cost
	}

	return e.cfg.Priority(node, cost)
}

// Next settles the cheapest pending node and relaxes its outgoing edges.
// ok is false once the frontier is exhausted, the target has been settled, or
// the backend failed (see Err).
func (e *Engine[N, W]) Next() (node N, cost W, ok bool) {
	for !e.done {
		node, cost, ok = e.frontier.Pop()
		if !ok {
			e.done = true

			break
		}
		// Skip stale entries left behind by lazy decrease-key.
		if e.settled[node] {
			continue
		}
		e.settled[node] = true
		e.stats.Settled++

		if e.cfg.HasTarget && node == e.cfg.Target {
			e.done = true

			return node, cost, true
		}
		e.relax(node, cost)

		return node, cost, true
	}

	return node, cost, false
}

// relax examines every edge leaving u, which was just settled at cost.
func (e *Engine[N, W]) relax(u N, cost W) {
	edges, err := e.g.Outgoing(u)
	if err != nil {
		// The node was resolvable when the run started; the backend changed under us.
		e.err = fmt.Errorf("search: outgoing edges of %v: %w", u, err)
		e.done = true

		return
	}

	var (
		edge shortest.Edge[N, W]
		cand W
		cur  W
		seen bool
	)
	for _, edge = range edges {
		e.stats.Relaxed++
		if e.settled[edge.To] {
			continue
		}
		if e.cfg.HasImpassable && edge.Weight >= e.cfg.Impassable {
			continue
		}
		cand = cost + edge.Weight
		if e.cfg.HasMaxCost && cand > e.cfg.MaxCost {
			continue
		}
		// Strict improvement only, so equal-cost alternatives keep the first predecessor.
		if cur, seen = e.best[edge.To]; seen && cand >= cur {
			continue
		}
		e.best[edge.To] = cand
		if e.preds != nil {
			e.preds.Record(edge, cand)
		}
		e.stats.Improved++
		e.frontier.Push(edge.To, cand, e.priority(edge.To, cand))
	}
}

// Path rebuilds the source→node path of a settled node.
func (e *Engine[N, W]) Path(node N) ([]N, error) {
	if e.preds == nil {
		return nil, fmt.Errorf("%w: path requested from a run without predecessor tracking", shortest.ErrInvariant)
	}

	return e.preds.Reconstruct(e.cfg.Source, node)
}

// Err returns the backend failure that ended the run early, if any.
func (e *Engine[N, W]) Err() error { return e.err }
