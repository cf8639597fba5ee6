// SPDX-License-Identifier: MIT

package dijkstra

import (
	"fmt"

	"github.com/katalvlaran/lvlath-paths/internal/search"
	"github.com/katalvlaran/lvlath-paths/shortest"
)

// Name is the algorithm label reported to observers.
const Name = "dijkstra"

// Dijkstra is a configured single-source query. It is a plain value holder:
// every EveryPath / EveryDistance call performs a fresh run against the graph
// it is given, so one Dijkstra may be reused across graphs and goroutines once
// configuration is finished.
type Dijkstra[N comparable, W shortest.Weight] struct {
	source N
	opts   shortest.Options

	maxCost W    // discard tentative costs above this cap
	hasMax  bool // whether maxCost is active

	impassable    W    // edges with weight ≥ impassable are walls
	hasImpassable bool // whether impassable is active

	// err records an invalid knob; surfaced by EveryPath / EveryDistance.
	err error
}

// New configures a Dijkstra query from source.
//
// Options (shortest.Option):
//   - shortest.WithObserver(obs):   receive run lifecycle events.
//   - shortest.WithContext(ctx):    parent context for the observer.
//   - shortest.WithoutWeightCheck(): skip the O(V+E) negative-weight pre-scan.
//   - shortest.WithName(name):      override the observer label.
func New[N comparable, W shortest.Weight](source N, opts ...shortest.Option) *Dijkstra[N, W] {
	return &Dijkstra[N, W]{
		source: source,
		opts:   shortest.Resolve(Name, opts...),
	}
}

// Source returns the configured source node.
func (d *Dijkstra[N, W]) Source() N { return d.source }

// WithMaxCost stops exploration at max: nodes whose shortest cost exceeds max
// are never settled, so they are not reported. A negative max is recorded and
// reported as shortest.ErrBadThreshold when the query runs.
func (d *Dijkstra[N, W]) WithMaxCost(max W) *Dijkstra[N, W] {
	var zero W
	if max < zero {
		d.err = fmt.Errorf("%w: max cost %v is negative", shortest.ErrBadThreshold, max)

		return d
	}
	d.maxCost, d.hasMax = max, true

	return d
}

// WithImpassable treats every edge whose weight is ≥ threshold as absent.
// A threshold ≤ 0 would block zero-weight edges too; it is recorded and
// reported as shortest.ErrBadThreshold when the query runs.
func (d *Dijkstra[N, W]) WithImpassable(threshold W) *Dijkstra[N, W] {
	var zero W
	if threshold <= zero {
		d.err = fmt.Errorf("%w: impassable threshold %v must be positive", shortest.ErrBadThreshold, threshold)

		return d
	}
	d.impassable, d.hasImpassable = threshold, true

	return d
}

// config snapshots the knobs into an engine configuration.
func (d *Dijkstra[N, W]) config(trackPaths bool) search.Config[N, W] {
	return search.Config[N, W]{
		Source:        d.source,
		MaxCost:       d.maxCost,
		HasMaxCost:    d.hasMax,
		Impassable:    d.impassable,
		HasImpassable: d.hasImpassable,
		TrackPaths:    trackPaths,
	}
}
