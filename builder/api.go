// SPDX-License-Identifier: MIT
// Package: lvlath-paths/builder
//
// api.go - the single orchestrator BuildGraph and the Constructor type.
//
// Design contract:
//   - BuildGraph creates g, resolves the builder configuration, runs cons in order.
//   - Constructors are implemented in impl_*.go.
//   - Determinism: same inputs/options/seed and constructor order ⇒ identical graphs.
//   - Constructors never panic; they return builder sentinels wrapped with %w.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvlath-paths/core"
	"github.com/katalvlaran/lvlath-paths/shortest"
)

// Constructor applies a deterministic graph mutation using the resolved
// builderConfig. Constructors MUST:
//   - Validate parameters early and return sentinel errors (no panics).
//   - Respect core graph mode flags (directed/loops/multigraph).
//   - Preserve determinism for the same config and call order.
type Constructor[W shortest.Weight] func(g *core.Graph[W], cfg builderConfig) error

// BuildGraph creates a new core.Graph with graph options gopts, resolves the
// builder configuration from bopts, and applies all constructors in order.
// Any constructor error is wrapped with the context "BuildGraph: %w" and
// returned immediately; no partial cleanup is attempted.
//
// Errors:
//   - ErrConstructFailed for a nil constructor.
//   - Whatever sentinel the failing constructor returned.
func BuildGraph[W shortest.Weight](gopts []core.GraphOption, bopts []BuilderOption, cons ...Constructor[W]) (*core.Graph[W], error) {
	g := core.NewGraph[W](gopts...)
	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return g, nil
}
