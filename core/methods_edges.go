// SPDX-License-Identifier: MIT
//
// File: methods_edges.go
// Role: Edge lifecycle & queries: AddEdge/RemoveEdge/HasEdge/GetEdge/Edges/EdgeCount.
// Determinism:
//   - Edges() returns edges in creation order.
//   - Edge IDs are monotonic ("e1", "e2", …).
// Concurrency:
//   - Mutations under muEdgeAdj write lock; endpoints are created first via AddVertex.

package core

import (
	"sort"
	"strconv"
	"sync/atomic"

	"github.com/katalvlaran/lvlath-paths/shortest"
)

// edgeIDPrefix keeps IDs human-readable: "e1", "e2", ...
const edgeIDPrefix = 'e'

// AddEdge creates an edge from→to with the given weight, adding missing
// endpoints. Undirected edges are mirrored in the adjacency.
//
// Errors:
//   - ErrEmptyVertexID: if from or to is empty.
//   - ErrLoopNotAllowed: if from == to and loops are disabled.
//   - ErrMixedEdgesNotAllowed: if opts are given without mixed mode.
//   - ErrMultiEdgeNotAllowed: if from→to exists and multi-edges are disabled.
//
// Weights are not validated here: negative weights are legal storage and are
// rejected (or not) by the algorithm that reads them.
//
// Complexity: O(1) amortized.
func (g *Graph[W]) AddEdge(from, to string, weight W, opts ...EdgeOption) (string, error) {
	if from == "" || to == "" {
		return "", ErrEmptyVertexID
	}
	if from == to && !g.allowLoops {
		return "", ErrLoopNotAllowed
	}
	if len(opts) > 0 && !g.allowMixed {
		return "", ErrMixedEdgesNotAllowed
	}

	if err := g.AddVertex(from); err != nil {
		return "", err
	}
	if err := g.AddVertex(to); err != nil {
		return "", err
	}

	ec := edgeConfig{directed: g.directed}
	for _, opt := range opts {
		opt(&ec)
	}

	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	if !g.allowMulti {
		if len(g.adjacency[from][to]) > 0 {
			return "", ErrMultiEdgeNotAllowed
		}
	}

	seq := atomic.AddUint64(&g.nextEdgeID, 1)
	eid := string(strconv.AppendUint([]byte{edgeIDPrefix}, seq, 10))
	e := &Edge[W]{ID: eid, From: from, To: to, Weight: weight, Directed: ec.directed, seq: seq}

	g.edges[eid] = e
	ensureAdjacency(g, from, to)
	g.adjacency[from][to][eid] = struct{}{}
	if !e.Directed && from != to {
		ensureAdjacency(g, to, from)
		g.adjacency[to][from][eid] = struct{}{}
	}
	atomic.AddUint64(&g.version, 1)

	return eid, nil
}

// RemoveEdge deletes one edge (and its mirror).
//
// Errors:
//   - ErrEdgeNotFound: if eid is unknown.
//
// Complexity: O(1).
func (g *Graph[W]) RemoveEdge(eid string) error {
	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	e, ok := g.edges[eid]
	if !ok {
		return ErrEdgeNotFound
	}
	delete(g.edges, eid)
	removeAdjacency(g, e)
	atomic.AddUint64(&g.version, 1)

	return nil
}

// HasEdge reports whether at least one edge leads from→to (mirrors included).
func (g *Graph[W]) HasEdge(from, to string) bool {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return len(g.adjacency[from][to]) > 0
}

// GetEdge returns a copy of the edge with the given ID.
func (g *Graph[W]) GetEdge(eid string) (Edge[W], error) {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	e, ok := g.edges[eid]
	if !ok {
		return Edge[W]{}, ErrEdgeNotFound
	}

	return *e, nil
}

// Edges returns copies of all edges in creation order.
// Complexity: O(E log E).
func (g *Graph[W]) Edges() []Edge[W] {
	g.muEdgeAdj.RLock()
	out := make([]Edge[W], 0, len(g.edges))
	for _, e := range g.edges {
		out = append(out, *e)
	}
	g.muEdgeAdj.RUnlock()

	sort.Slice(out, func(i, j int) bool { return out[i].seq < out[j].seq })

	return out
}

// EdgeCount returns the number of edges (an undirected edge counts once).
func (g *Graph[W]) EdgeCount() int {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return len(g.edges)
}

// ensureAdjacency allocates the nested buckets for from→to.
// Must be called under muEdgeAdj write lock.
func ensureAdjacency[W shortest.Weight](g *Graph[W], from, to string) {
	if g.adjacency[from] == nil {
		g.adjacency[from] = make(map[string]map[string]struct{})
	}
	if g.adjacency[from][to] == nil {
		g.adjacency[from][to] = make(map[string]struct{})
	}
}

// removeAdjacency unlinks e from its buckets, pruning empty ones.
// Must be called under muEdgeAdj write lock.
func removeAdjacency[W shortest.Weight](g *Graph[W], e *Edge[W]) {
	unlink := func(from, to string) {
		if m := g.adjacency[from][to]; m != nil {
			delete(m, e.ID)
			if len(m) == 0 {
				delete(g.adjacency[from], to)
			}
		}
		if len(g.adjacency[from]) == 0 {
			delete(g.adjacency, from)
		}
	}
	unlink(e.From, e.To)
	if !e.Directed && e.From != e.To {
		unlink(e.To, e.From)
	}
}
