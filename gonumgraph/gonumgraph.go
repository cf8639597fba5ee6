// SPDX-License-Identifier: MIT

// Package gonumgraph connects gonum graphs to the shortest-path engines.
//
// Wrap adapts any gonum graph.Weighted so the engines can query it directly,
// with int64 node IDs and float64 weights. Export goes the other way: it copies
// a shortest.Graph into a gonum simple.WeightedDirectedGraph so gonum's own
// algorithms (path.DijkstraFrom, path.FloydWarshall, ...) can run on the same
// data.
package gonumgraph

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/simple"

	"github.com/katalvlaran/lvlath-paths/shortest"
)

// ErrNodeNotFound is returned by Outgoing for an ID the wrapped graph lacks.
var ErrNodeNotFound = errors.New("gonumgraph: node not found")

// Graph exposes a gonum graph.Weighted as a shortest.Graph[int64, float64].
// It holds no state of its own; every call reads the wrapped graph.
type Graph struct {
	g graph.Weighted
}

var _ shortest.Graph[int64, float64] = (*Graph)(nil)

// Wrap adapts g. Panics on nil.
func Wrap(g graph.Weighted) *Graph {
	if g == nil {
		panic("gonumgraph: Wrap(nil)")
	}

	return &Graph{g: g}
}

// HasNode reports whether id is a node of the wrapped graph.
func (a *Graph) HasNode(id int64) bool { return a.g.Node(id) != nil }

// Nodes returns every node ID in ascending order.
func (a *Graph) Nodes() []int64 {
	return sortedIDs(a.g.Nodes())
}

// Outgoing returns one edge per successor of id (neighbor, for undirected
// graphs), ordered by successor ID, weighted by the graph's Weight(id, to).
// Multigraphs report whatever single weight their Weight method reports.
func (a *Graph) Outgoing(id int64) ([]shortest.Edge[int64, float64], error) {
	if a.g.Node(id) == nil {
		return nil, fmt.Errorf("%w: %d", ErrNodeNotFound, id)
	}
	succ := sortedIDs(a.g.From(id))
	out := make([]shortest.Edge[int64, float64], 0, len(succ))
	for _, to := range succ {
		w, ok := a.g.Weight(id, to)
		if !ok {
			continue
		}
		out = append(out, shortest.Edge[int64, float64]{From: id, To: to, Weight: w})
	}

	return out, nil
}

func sortedIDs(it graph.Nodes) []int64 {
	nodes := graph.NodesOf(it)
	ids := make([]int64, len(nodes))
	for i, n := range nodes {
		ids[i] = n.ID()
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	return ids
}

// Export copies g into a directed gonum graph. Nodes are numbered by their
// position in g.Nodes(); ids maps each node to its gonum ID. Undirected
// storage arrives as two arcs (Outgoing reports both directions), parallel
// edges keep the cheapest weight and self-loops are dropped, since gonum
// simple graphs reject them.
func Export[N comparable, W shortest.Weight](g shortest.Graph[N, W]) (*simple.WeightedDirectedGraph, map[N]int64, error) {
	if g == nil {
		return nil, nil, shortest.ErrNilGraph
	}
	dg := simple.NewWeightedDirectedGraph(0, math.Inf(1))
	nodes := g.Nodes()
	ids := make(map[N]int64, len(nodes))
	for i, n := range nodes {
		ids[n] = int64(i)
		dg.AddNode(simple.Node(i))
	}
	for _, n := range nodes {
		edges, err := g.Outgoing(n)
		if err != nil {
			return nil, nil, fmt.Errorf("gonumgraph: export %v: %w", n, err)
		}
		for _, e := range edges {
			from, to := ids[e.From], ids[e.To]
			if from == to {
				continue
			}
			w := float64(e.Weight)
			if cur, ok := dg.Weight(from, to); ok && cur <= w {
				continue
			}
			dg.SetWeightedEdge(dg.NewWeightedEdge(simple.Node(from), simple.Node(to), w))
		}
	}

	return dg, ids, nil
}
