// SPDX-License-Identifier: MIT
//
// File: methods_adjacent.go
// Role: Neighborhood queries: Neighbors/NeighborIDs.
// Policy:
//   - Directed edge: returned only from its From endpoint.
//   - Undirected edge: returned from both endpoints (as stored, not re-oriented).
//   - Self-loop: returned once.
// Determinism:
//   - Neighbors() sorts by edge creation order; NeighborIDs() sorts ascending.

package core

import "sort"

// Neighbors returns copies of the edges incident to id that can be traversed
// away from id, in edge creation order.
//
// Errors:
//   - ErrEmptyVertexID: if id == "".
//   - ErrVertexNotFound: if the vertex does not exist.
//
// Complexity: O(d log d), d = out-degree of id.
func (g *Graph[W]) Neighbors(id string) ([]Edge[W], error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}
	if !g.HasVertex(id) {
		return nil, ErrVertexNotFound
	}

	g.muEdgeAdj.RLock()
	out := make([]Edge[W], 0, len(g.adjacency[id]))
	for _, bucket := range g.adjacency[id] {
		for eid := range bucket {
			out = append(out, *g.edges[eid])
		}
	}
	g.muEdgeAdj.RUnlock()

	sort.Slice(out, func(i, j int) bool { return out[i].seq < out[j].seq })

	return out, nil
}

// NeighborIDs returns the distinct vertex IDs reachable from id over one edge,
// sorted ascending.
func (g *Graph[W]) NeighborIDs(id string) ([]string, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}
	if !g.HasVertex(id) {
		return nil, ErrVertexNotFound
	}

	g.muEdgeAdj.RLock()
	ids := make([]string, 0, len(g.adjacency[id]))
	for to := range g.adjacency[id] {
		ids = append(ids, to)
	}
	g.muEdgeAdj.RUnlock()

	sort.Strings(ids)

	return ids, nil
}
