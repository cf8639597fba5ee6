// SPDX-License-Identifier: MIT
// Package: lvlath-paths/builder
//
// impl_complete.go — Complete(n): K_n; directed graphs get both arcs per pair.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvlath-paths/core"
	"github.com/katalvlaran/lvlath-paths/shortest"
)

const (
	methodComplete   = "Complete"
	minCompleteNodes = 1
)

// Complete returns a Constructor that builds the complete simple graph K_n.
// Edge order: for i asc, j > i asc, emit i→j then (directed only) j→i, each
// with its own weight draw.
// Complexity: O(n) vertices + O(n²) edges.
func Complete[W shortest.Weight](n int) Constructor[W] {
	return func(g *core.Graph[W], cfg builderConfig) error {
		if n < minCompleteNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minCompleteNodes, ErrTooFewVertices)
		}
		if err := addVertices(g, n, cfg.idFn); err != nil {
			return fmt.Errorf("%s: %w", methodComplete, err)
		}

		directed := g.Directed()
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if err := addArc(g, methodComplete, cfg.idFn(i), cfg.idFn(j), weight[W](cfg)); err != nil {
					return err
				}
				if directed {
					if err := addArc(g, methodComplete, cfg.idFn(j), cfg.idFn(i), weight[W](cfg)); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}
