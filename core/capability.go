// SPDX-License-Identifier: MIT
//
// File: capability.go
// Role: shortest.Graph[string, W] and shortest.Versioned for *Graph[W].
// Orientation:
//   - Outgoing re-orients undirected edges so that From == the queried node.

package core

import (
	"fmt"
	"sync/atomic"

	"github.com/katalvlaran/lvlath-paths/shortest"
)

var (
	_ shortest.Graph[string, int64]   = (*Graph[int64])(nil)
	_ shortest.Graph[string, float64] = (*Graph[float64])(nil)
	_ shortest.Versioned              = (*Graph[int64])(nil)
)

// HasNode reports whether id is a vertex.
func (g *Graph[W]) HasNode(id string) bool { return g.HasVertex(id) }

// Nodes returns every vertex ID, sorted ascending.
func (g *Graph[W]) Nodes() []string { return g.Vertices() }

// Outgoing returns the edges leaving id in creation order. Undirected edges
// are reported as id→other; a self-loop appears once.
func (g *Graph[W]) Outgoing(id string) ([]shortest.Edge[string, W], error) {
	nbs, err := g.Neighbors(id)
	if err != nil {
		return nil, fmt.Errorf("core: outgoing %q: %w", id, err)
	}
	out := make([]shortest.Edge[string, W], 0, len(nbs))
	for _, e := range nbs {
		to := e.To
		if !e.Directed && e.To == id {
			to = e.From
		}
		out = append(out, shortest.Edge[string, W]{From: id, To: to, Weight: e.Weight})
	}

	return out, nil
}

// Version returns a counter bumped by every successful mutation.
func (g *Graph[W]) Version() uint64 { return atomic.LoadUint64(&g.version) }
