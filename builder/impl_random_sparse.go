// SPDX-License-Identifier: MIT
// Package: lvlath-paths/builder
//
// impl_random_sparse.go - RandomSparse(n, p): Erdős–Rényi-like sampling.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices).
//   - 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   - cfg.rng is required when 0 < p < 1 (else ErrNeedRandSource).
//   - Undirected: unordered pairs {i,j}, i<j. Directed: ordered pairs (i,j);
//     self-loops only when g.Looped().
//
// Determinism:
//   - Trial order is i asc, then j asc; weights are drawn right after a
//     successful trial, so a fixed seed fixes both topology and weights.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvlath-paths/core"
	"github.com/katalvlaran/lvlath-paths/shortest"
)

const (
	methodRandomSparse      = "RandomSparse"
	minRandomSparseVertices = 1
	probMin                 = 0.0
	probMax                 = 1.0
)

// RandomSparse returns a Constructor that samples a graph over n vertices with
// independent edge probability p.
// Complexity: O(n²) Bernoulli trials.
func RandomSparse[W shortest.Weight](n int, p float64) Constructor[W] {
	return func(g *core.Graph[W], cfg builderConfig) error {
		if n < minRandomSparseVertices {
			return fmt.Errorf("%s: n=%d < min=%d: %w",
				methodRandomSparse, n, minRandomSparseVertices, ErrTooFewVertices)
		}
		if p < probMin || p > probMax {
			return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
				methodRandomSparse, p, probMin, probMax, ErrInvalidProbability)
		}
		if cfg.rng == nil && p > probMin && p < probMax {
			return fmt.Errorf("%s: rng is required: %w", methodRandomSparse, ErrNeedRandSource)
		}
		if err := addVertices(g, n, cfg.idFn); err != nil {
			return fmt.Errorf("%s: %w", methodRandomSparse, err)
		}

		// include decides one Bernoulli trial; p ∈ {0,1} needs no RNG.
		include := func() bool {
			if cfg.rng == nil {
				return p == probMax
			}

			return cfg.rng.Float64() < p
		}

		directed, loops := g.Directed(), g.Looped()
		for i := 0; i < n; i++ {
			start := i + 1
			if directed {
				start = 0
			}
			for j := start; j < n; j++ {
				if i == j && !loops {
					continue
				}
				if !include() {
					continue
				}
				if err := addArc(g, methodRandomSparse, cfg.idFn(i), cfg.idFn(j), weight[W](cfg)); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
