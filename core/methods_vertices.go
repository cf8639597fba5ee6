// SPDX-License-Identifier: MIT
//
// File: methods_vertices.go
// Role: Vertex lifecycle & queries: AddVertex/HasVertex/RemoveVertex/Vertices/VertexCount.
// Determinism:
//   - Vertices() returns IDs sorted lexicographically ascending.
// Concurrency:
//   - Mutations hold muVert (and muEdgeAdj for RemoveVertex) write locks.

package core

import (
	"sort"
	"sync/atomic"
)

// AddVertex inserts a vertex with the given id. Adding an existing vertex is a
// no-op and does not bump the version.
//
// Errors:
//   - ErrEmptyVertexID: if id == "".
//
// Complexity: O(1) amortized.
func (g *Graph[W]) AddVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}

	g.muVert.Lock()
	defer g.muVert.Unlock()

	if _, ok := g.vertices[id]; ok {
		return nil
	}
	g.vertices[id] = &Vertex{ID: id, Metadata: make(map[string]interface{})}
	atomic.AddUint64(&g.version, 1)

	return nil
}

// HasVertex reports whether id exists. Empty IDs are never present.
// Complexity: O(1).
func (g *Graph[W]) HasVertex(id string) bool {
	if id == "" {
		return false
	}

	g.muVert.RLock()
	defer g.muVert.RUnlock()

	_, ok := g.vertices[id]

	return ok
}

// RemoveVertex deletes id and every incident edge.
//
// Errors:
//   - ErrEmptyVertexID: if id == "".
//   - ErrVertexNotFound: if the vertex does not exist.
//
// Complexity: O(E) for the incident-edge scan.
func (g *Graph[W]) RemoveVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}

	// Acquire both locks for atomic removal of vertex + incident edges.
	g.muVert.Lock()
	defer g.muVert.Unlock()
	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	if _, ok := g.vertices[id]; !ok {
		return ErrVertexNotFound
	}

	for eid, e := range g.edges {
		if e.From == id || e.To == id {
			removeAdjacency(g, e)
			delete(g.edges, eid)
		}
	}
	delete(g.vertices, id)
	delete(g.adjacency, id)
	atomic.AddUint64(&g.version, 1)

	return nil
}

// Vertices returns all vertex IDs in lexicographic ascending order.
// Complexity: O(V log V).
func (g *Graph[W]) Vertices() []string {
	g.muVert.RLock()
	ids := make([]string, 0, len(g.vertices))
	for id := range g.vertices {
		ids = append(ids, id)
	}
	g.muVert.RUnlock()

	sort.Strings(ids)

	return ids
}

// VertexCount returns the number of vertices.
func (g *Graph[W]) VertexCount() int {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return len(g.vertices)
}
