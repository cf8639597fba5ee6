// SPDX-License-Identifier: MIT
// Package: lvlath-paths/builder
//
// impl_path.go — Path(n): P_n with edges idFn(i-1)→idFn(i), i = 1..n-1.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvlath-paths/core"
	"github.com/katalvlaran/lvlath-paths/shortest"
)

const (
	methodPath   = "Path"
	minPathNodes = 2
)

// Path returns a Constructor that builds a simple path P_n (n ≥ 2).
// Complexity: O(n) vertices + O(n-1) edges.
func Path[W shortest.Weight](n int) Constructor[W] {
	return func(g *core.Graph[W], cfg builderConfig) error {
		if n < minPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewVertices)
		}
		if err := addVertices(g, n, cfg.idFn); err != nil {
			return fmt.Errorf("%s: %w", methodPath, err)
		}

		var (
			u, v string
			w    W
		)
		for i := 1; i < n; i++ {
			u, v = cfg.idFn(i-1), cfg.idFn(i)
			w = weight[W](cfg)
			if _, err := g.AddEdge(u, v, w); err != nil {
				return fmt.Errorf("%s: AddEdge(%s→%s, w=%v): %w", methodPath, u, v, w, err)
			}
		}

		return nil
	}
}
