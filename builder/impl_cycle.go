// SPDX-License-Identifier: MIT
// Package: lvlath-paths/builder
//
// impl_cycle.go — Cycle(n): C_n with edges idFn(i)→idFn((i+1) mod n).

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvlath-paths/core"
	"github.com/katalvlaran/lvlath-paths/shortest"
)

const (
	methodCycle   = "Cycle"
	minCycleNodes = 3
)

// Cycle returns a Constructor that builds a simple cycle C_n (n ≥ 3).
// In directed graphs the cycle runs in ascending index order.
// Complexity: O(n) vertices + O(n) edges.
func Cycle[W shortest.Weight](n int) Constructor[W] {
	return func(g *core.Graph[W], cfg builderConfig) error {
		if n < minCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices)
		}
		if err := addVertices(g, n, cfg.idFn); err != nil {
			return fmt.Errorf("%s: %w", methodCycle, err)
		}

		for i := 0; i < n; i++ {
			u, v := cfg.idFn(i), cfg.idFn((i+1)%n)
			w := weight[W](cfg)
			if _, err := g.AddEdge(u, v, w); err != nil {
				return fmt.Errorf("%s: AddEdge(%s→%s, w=%v): %w", methodCycle, u, v, w, err)
			}
		}

		return nil
	}
}
