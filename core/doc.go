// Package core provides a thread-safe in-memory Graph with string vertex IDs
// and generic numeric weights. *Graph[W] is the reference storage backend for
// the path engines: it implements shortest.Graph[string, W] and
// shortest.Versioned.
//
// The Graph G = (V,E) supports:
//
//   - Directed vs. undirected edges (WithDirected)
//   - Per-edge orientation in "mixed" graphs (WithMixedEdges + WithEdgeDirected)
//   - Parallel edges / multi-graphs (WithMultiEdges)
//   - Self-loops (WithLoops)
//   - Constant-time edge operations via nested maps:
//     adjacency[from][to][edgeID] = struct{}{}
//   - Collision-free atomic Edge.ID generation ("e1", "e2", …)
//   - Separate sync.RWMutex for vertices (muVert) and edges+adjacency (muEdgeAdj)
//
// Weights:
//
//	The weight type W is any integer or float type. Negative weights are
//	stored as given; whether they are legal is decided by the algorithm that
//	reads the graph (Dijkstra and A* reject them, Floyd-Warshall accepts them).
//
// Versioning:
//
//	Every successful mutation (AddVertex of a new ID, AddEdge, RemoveEdge,
//	RemoveVertex) bumps Version(). Routes computed over a Graph report
//	Stale(g) == true once the graph moves on.
//
// Determinism:
//
//	Vertices() and NeighborIDs() are sorted ascending; Edges(), Neighbors()
//	and Outgoing() follow edge creation order.
//
// Example:
//
//	g := core.NewGraph[int64](core.WithDirected(true))
//	_, _ = g.AddEdge("A", "B", 1)
//	_, _ = g.AddEdge("B", "C", 2)
//	edges, _ := g.Outgoing("A") // [A→B (1)]
package core
