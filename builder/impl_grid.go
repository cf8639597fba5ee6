// SPDX-License-Identifier: MIT
// Package: lvlath-paths/builder
//
// impl_grid.go — Grid(rows, cols): 4-neighborhood grid with IDs "r,c".
//
// Contract:
//   • rows ≥ 1 and cols ≥ 1 (else ErrTooFewVertices).
//   • Vertex IDs use the fixed scheme "r,c" (row-major), not cfg.idFn, so that
//     coordinates stay recoverable for distance heuristics (see GridCoord).
//   • For each cell emit Right then Bottom; directed graphs also get the
//     reverse arc with the same weight.

package builder

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/lvlath-paths/core"
	"github.com/katalvlaran/lvlath-paths/shortest"
)

const (
	methodGrid = "Grid"
	minGridDim = 1
)

// Grid returns a Constructor that builds a rows×cols orthogonal grid.
// Complexity: O(rows*cols) vertices and edges.
func Grid[W shortest.Weight](rows, cols int) Constructor[W] {
	return func(g *core.Graph[W], cfg builderConfig) error {
		if rows < minGridDim || cols < minGridDim {
			return fmt.Errorf("%s: rows=%d, cols=%d (each must be ≥ %d): %w",
				methodGrid, rows, cols, minGridDim, ErrTooFewVertices)
		}
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				if err := g.AddVertex(GridID(r, c)); err != nil {
					return fmt.Errorf("%s: AddVertex(%s): %w", methodGrid, GridID(r, c), err)
				}
			}
		}

		directed := g.Directed()
		link := func(u, v string) error {
			w := weight[W](cfg)
			if err := addArc(g, methodGrid, u, v, w); err != nil {
				return err
			}
			if directed {
				return addArc(g, methodGrid, v, u, w)
			}

			return nil
		}
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				u := GridID(r, c)
				if c+1 < cols {
					if err := link(u, GridID(r, c+1)); err != nil {
						return err
					}
				}
				if r+1 < rows {
					if err := link(u, GridID(r+1, c)); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}

// GridID formats a 2D grid coordinate as "r,c".
func GridID(r, c int) string {
	return strconv.Itoa(r) + "," + strconv.Itoa(c)
}

// GridCoord parses an ID produced by GridID. ok is false for any other string.
func GridCoord(id string) (r, c int, ok bool) {
	rs, cs, found := strings.Cut(id, ",")
	if !found {
		return 0, 0, false
	}
	r, errR := strconv.Atoi(rs)
	c, errC := strconv.Atoi(cs)
	if errR != nil || errC != nil {
		return 0, 0, false
	}

	return r, c, true
}
