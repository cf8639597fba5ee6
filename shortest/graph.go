// SPDX-License-Identifier: MIT

package shortest

import "fmt"

// Edge is a single outgoing edge as seen by an engine: From is always the node
// whose adjacency was requested, even for undirected storage.
type Edge[N comparable, W Weight] struct {
	From   N
	To     N
	Weight W
}

// Graph is the read-only capability contract an engine needs from a storage
// backend. Engines depend on nothing else.
//
// Contract:
//   - HasNode resolves an identifier; it must be safe to call at any time.
//   - Nodes returns every node exactly once, in an order that is stable for an
//     unchanged graph. Floyd-Warshall reports pairs in this order.
//   - Outgoing returns the edges leaving id in a stable order. Undirected edges
//     appear once per endpoint, oriented away from id. Self-loops appear once.
//   - Outgoing may fail only for an unknown id.
type Graph[N comparable, W Weight] interface {
	HasNode(id N) bool
	Nodes() []N
	Outgoing(id N) ([]Edge[N, W], error)
}

// Versioned is implemented by backends that count their mutations. Results
// computed over a Versioned graph can detect that they went stale.
type Versioned interface {
	Version() uint64
}

// versionOf returns the current version of g and whether g is versioned.
func versionOf(g any) (uint64, bool) {
	v, ok := g.(Versioned)
	if !ok {
		return 0, false
	}

	return v.Version(), true
}

// CheckWeights scans every edge of g and fails with ErrNegativeWeight on the
// first negative weight. Complexity: O(V + E).
func CheckWeights[N comparable, W Weight](g Graph[N, W]) error {
	var zero W
	for _, id := range g.Nodes() {
		edges, err := g.Outgoing(id)
		if err != nil {
			return err
		}
		for _, e := range edges {
			if e.Weight < zero {
				return fmt.Errorf("%w: edge %v→%v weight=%v", ErrNegativeWeight, e.From, e.To, e.Weight)
			}
		}
	}

	return nil
}
