// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Vertex, Edge, Graph, GraphOption, EdgeOption, sentinel errors, NewGraph.
// Concurrency:
//   - muVert guards vertices; muEdgeAdj guards edges and adjacency.
//   - Lock order is always muVert → muEdgeAdj.
//   - version is bumped atomically by every successful mutation.

package core

import (
	"errors"
	"sync"

	"github.com/katalvlaran/lvlath-paths/shortest"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyVertexID indicates that the provided vertex ID is empty.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrLoopNotAllowed indicates a self-loop was attempted when loops are disabled.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrMultiEdgeNotAllowed indicates a parallel edge was attempted when multi-edges are disabled.
	ErrMultiEdgeNotAllowed = errors.New("core: multi-edges not allowed")

	// ErrMixedEdgesNotAllowed indicates a per-edge direction override without mixed mode.
	ErrMixedEdgesNotAllowed = errors.New("core: mixed-mode per-edge overrides not allowed")
)

// Vertex represents a node in the graph.
type Vertex struct {
	// ID is the unique identifier for this Vertex.
	ID string

	// Metadata stores arbitrary user data.
	Metadata map[string]interface{}
}

// Edge represents a connection between two vertices.
//
// Each Edge has a unique ID, endpoints From→To, a Weight of the graph's weight
// type and a Directed flag (per-edge only when mixed edges are enabled).
type Edge[W shortest.Weight] struct {
	// ID uniquely identifies this edge in the Graph ("e1", "e2", …).
	ID string

	// From is the source vertex ID.
	From string

	// To is the destination vertex ID.
	To string

	// Weight is the traversal cost of the edge.
	Weight W

	// Directed reports whether the edge is one-way.
	Directed bool

	seq uint64 // creation order; drives deterministic adjacency order
}

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(*config)

// config holds the construction-time flags shared by every Graph instantiation.
type config struct {
	directed   bool // default directedness
	allowMulti bool // allow parallel edges
	allowLoops bool // allow self-loops
	allowMixed bool // allow per-edge direction overrides
}

// WithDirected sets the default directedness for all new edges.
func WithDirected(defaultDirected bool) GraphOption {
	return func(c *config) { c.directed = defaultDirected }
}

// WithMultiEdges permits parallel edges between the same vertices.
func WithMultiEdges() GraphOption {
	return func(c *config) { c.allowMulti = true }
}

// WithLoops permits self-loops.
func WithLoops() GraphOption {
	return func(c *config) { c.allowLoops = true }
}

// WithMixedEdges lets per-edge WithEdgeDirected overrides take effect.
func WithMixedEdges() GraphOption {
	return func(c *config) { c.allowMixed = true }
}

// EdgeOption configures properties of individual edges when added.
type EdgeOption func(*edgeConfig)

type edgeConfig struct {
	directed    bool
	hasDirected bool
}

// WithEdgeDirected overrides the Graph's default directedness for this edge.
func WithEdgeDirected(directed bool) EdgeOption {
	return func(e *edgeConfig) { e.directed, e.hasDirected = directed, true }
}

// Graph is a thread-safe in-memory graph with string vertex IDs and weights of
// type W. By default it is undirected, with no loops and no multi-edges.
type Graph[W shortest.Weight] struct {
	muVert    sync.RWMutex // guards vertices
	muEdgeAdj sync.RWMutex // guards edges and adjacency

	config

	nextEdgeID uint64              // atomic edge ID generator
	version    uint64              // atomic mutation counter
	vertices   map[string]*Vertex  // vertex ID → Vertex
	edges      map[string]*Edge[W] // edge ID → Edge

	// adjacency[from][to][edgeID] = struct{}{}; undirected edges are mirrored.
	adjacency map[string]map[string]map[string]struct{}
}

// NewGraph creates an empty Graph with the given options.
// Complexity: O(1)
func NewGraph[W shortest.Weight](opts ...GraphOption) *Graph[W] {
	g := &Graph[W]{
		vertices:  make(map[string]*Vertex),
		edges:     make(map[string]*Edge[W]),
		adjacency: make(map[string]map[string]map[string]struct{}),
	}
	for _, opt := range opts {
		opt(&g.config)
	}

	return g
}

// NewMixedGraph is NewGraph with WithMixedEdges applied first.
func NewMixedGraph[W shortest.Weight](opts ...GraphOption) *Graph[W] {
	mixed := make([]GraphOption, 0, len(opts)+1)
	mixed = append(mixed, WithMixedEdges())
	mixed = append(mixed, opts...)

	return NewGraph[W](mixed...)
}

// Directed reports the default directedness applied to new edges.
func (g *Graph[W]) Directed() bool { return g.directed }

// Looped reports whether self-loops are permitted.
func (g *Graph[W]) Looped() bool { return g.allowLoops }

// Multigraph reports whether parallel edges are permitted.
func (g *Graph[W]) Multigraph() bool { return g.allowMulti }

// MixedEdges reports whether per-edge direction overrides are permitted.
func (g *Graph[W]) MixedEdges() bool { return g.allowMixed }
