// SPDX-License-Identifier: MIT

package floydwarshall

import (
	"iter"

	"github.com/katalvlaran/lvlath-paths/shortest"
)

// Name is the algorithm label reported to observers.
const Name = "floydwarshall"

var (
	_ shortest.ShortestPath[string, int64]     = (*FloydWarshall[string, int64])(nil)
	_ shortest.ShortestDistance[string, int64] = (*FloydWarshall[string, int64])(nil)
)

// FloydWarshall is a configured all-pairs query. Negative edge weights are
// accepted; negative cycles are reported as shortest.ErrNegativeCycle.
type FloydWarshall[N comparable, W shortest.Weight] struct {
	opts shortest.Options
}

// New configures an all-pairs query. shortest.WithoutWeightCheck has no effect
// here since negative weights are legal.
func New[N comparable, W shortest.Weight](opts ...shortest.Option) *FloydWarshall[N, W] {
	return &FloydWarshall[N, W]{opts: shortest.Resolve(Name, opts...)}
}

// solve builds and closes the table. The observer sees the run end here:
// the O(V³) work is done before the first item exists, so Stats.Yielded stays
// zero and Settled counts completed k rounds.
func (f *FloydWarshall[N, W]) solve(g shortest.Graph[N, W], trackPaths bool) (*table[N, W], error) {
	if g == nil {
		return nil, shortest.Fail(f.opts, shortest.ErrNilGraph)
	}
	run := shortest.Begin(f.opts)
	defer run.End()

	t, err := newTable(g, trackPaths)
	if err == nil {
		err = t.relax(&run.Stats)
	}
	if err != nil {
		run.Stats.Err = err

		return nil, err
	}

	return t, nil
}

// EveryDistance yields one DirectRoute per reachable ordered pair, including
// every (v, v) at zero, row-major in g.Nodes() order.
//
// Complexity: O(V³) before returning, O(1) per item.
func (f *FloydWarshall[N, W]) EveryDistance(g shortest.Graph[N, W]) (iter.Seq[shortest.DirectRoute[N, W]], error) {
	t, err := f.solve(g, false)
	if err != nil {
		return nil, err
	}

	return pairs(t, func(i, j int) shortest.DirectRoute[N, W] {
		return shortest.NewDirectRoute(g, t.nodes[i], t.nodes[j], t.dist[i*t.n+j])
	}), nil
}

// EveryPath yields one Route per reachable ordered pair, in the same order as
// EveryDistance. Paths are rebuilt from the next-hop table as they are pulled.
//
// Complexity: O(V³) before returning, O(path length) per item; the next-hop
// table adds V² ints of memory.
func (f *FloydWarshall[N, W]) EveryPath(g shortest.Graph[N, W]) (iter.Seq[shortest.Route[N, W]], error) {
	t, err := f.solve(g, true)
	if err != nil {
		return nil, err
	}
	name := f.opts.Name

	return pairs(t, func(i, j int) shortest.Route[N, W] {
		nodes, err := t.path(i, j)
		if err != nil {
			panic(&shortest.InvariantError{Algorithm: name, Err: err})
		}

		return shortest.NewRoute(g, nodes, t.dist[i*t.n+j])
	}), nil
}

// Matrix runs the query and returns the distances as a dense map keyed by
// source then target. Unreachable pairs are absent.
func (f *FloydWarshall[N, W]) Matrix(g shortest.Graph[N, W]) (map[N]map[N]W, error) {
	t, err := f.solve(g, false)
	if err != nil {
		return nil, err
	}
	out := make(map[N]map[N]W, t.n)
	for i := 0; i < t.n; i++ {
		row := make(map[N]W)
		for j := 0; j < t.n; j++ {
			if t.present[i*t.n+j] {
				row[t.nodes[j]] = t.dist[i*t.n+j]
			}
		}
		out[t.nodes[i]] = row
	}

	return out, nil
}

// pairs walks the present cells row-major, once.
func pairs[N comparable, W shortest.Weight, T any](t *table[N, W], emit func(i, j int) T) iter.Seq[T] {
	used := false

	return func(yield func(T) bool) {
		if used {
			return
		}
		used = true
		for i := 0; i < t.n; i++ {
			for j := 0; j < t.n; j++ {
				if t.present[i*t.n+j] && !yield(emit(i, j)) {
					return
				}
			}
		}
	}
}
