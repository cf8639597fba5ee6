// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvlath-paths/core"
	"github.com/katalvlaran/lvlath-paths/shortest"
)

// addVertices adds vertices idFn(0..n-1) in ascending index order.
func addVertices[W shortest.Weight](g *core.Graph[W], n int, idFn IDFn) error {
	for i := 0; i < n; i++ {
		id := idFn(i)
		if err := g.AddVertex(id); err != nil {
			return fmt.Errorf("AddVertex(%s): %w", id, err)
		}
	}

	return nil
}

// addArc adds u→v with weight w, tagging failures with method.
func addArc[W shortest.Weight](g *core.Graph[W], method, u, v string, w W) error {
	if _, err := g.AddEdge(u, v, w); err != nil {
		return fmt.Errorf("%s: AddEdge(%s→%s, w=%v): %w", method, u, v, w, err)
	}

	return nil
}
