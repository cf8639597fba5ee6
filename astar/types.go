// SPDX-License-Identifier: MIT

package astar

import (
	"github.com/katalvlaran/lvlath-paths/internal/search"
	"github.com/katalvlaran/lvlath-paths/shortest"
)

// Name is the algorithm label reported to observers.
const Name = "astar"

// Heuristic estimates the remaining cost from node to the configured target.
// For optimal results it must never overestimate, and it must be 0 at the target.
type Heuristic[N comparable, W shortest.Weight] func(node N) W

// Zero is the trivial admissible heuristic; with it A* settles nodes exactly
// like Dijkstra.
func Zero[N comparable, W shortest.Weight]() Heuristic[N, W] {
	return func(N) W {
		var zero W

		return zero
	}
}

// AStar is a configured single-pair query. The target is part of the
// configuration: EveryPath reports at most the one route source→target.
type AStar[N comparable, W shortest.Weight] struct {
	source    N
	target    N
	heuristic Heuristic[N, W]
	opts      shortest.Options
}

// New configures an A* query from source to target guided by h.
// A nil h is accepted here and reported as shortest.ErrNilHeuristic when the
// query runs. Options are the shared shortest.Option set.
func New[N comparable, W shortest.Weight](source, target N, h Heuristic[N, W], opts ...shortest.Option) *AStar[N, W] {
	return &AStar[N, W]{
		source:    source,
		target:    target,
		heuristic: h,
		opts:      shortest.Resolve(Name, opts...),
	}
}

// Source returns the configured source node.
func (a *AStar[N, W]) Source() N { return a.source }

// Target returns the configured target node.
func (a *AStar[N, W]) Target() N { return a.target }

func (a *AStar[N, W]) config(trackPaths bool) search.Config[N, W] {
	h := a.heuristic

	return search.Config[N, W]{
		Source:     a.source,
		Priority:   func(node N, cost W) W { return cost + h(node) },
		Target:     a.target,
		HasTarget:  true,
		TrackPaths: trackPaths,
	}
}
