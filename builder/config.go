// SPDX-License-Identifier: MIT
// Package: lvlath-paths/builder
//
// config.go — internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   • idFn     = DefaultIDFn          ("0","1","2",...)
//   • rng      = nil                  (pure/deterministic unless seeded)
//   • weightFn = DefaultWeightFn      (constant DefaultEdgeWeight)

package builder

import (
	"math/rand"

	"github.com/katalvlaran/lvlath-paths/shortest"
)

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors (immutable to callers).
type builderConfig struct {
	// Vertex ID strategy: index -> ID (deterministic).
	idFn IDFn
	// RNG for stochastic choices; nil means “no randomness”.
	rng *rand.Rand
	// Weight generator for edges.
	weightFn WeightFn
}

// newBuilderConfig constructs a config with deterministic defaults and applies
// all options in order (later overrides earlier).
// Complexity: O(len(opts)) time, O(1) space.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		idFn:     DefaultIDFn,
		weightFn: DefaultWeightFn,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// weight draws the next edge weight and converts it to the graph's weight
// type. Integer weight types truncate toward zero.
func weight[W shortest.Weight](cfg builderConfig) W {
	return W(cfg.weightFn(cfg.rng))
}
