// SPDX-License-Identifier: MIT
// Package: lvlath-paths/builder
//
// errors.go — sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Implementations attach context with %w: "<Method>: <detail>: %w".
//   • Validation order: ErrTooFewVertices, ErrInvalidProbability, ErrNeedRandSource.

package builder

import "errors"

// ErrTooFewVertices indicates that a size parameter (n, rows, cols) is smaller
// than the allowed minimum for the requested constructor.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates a probability outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates that a stochastic constructor requires a
// *rand.Rand (WithSeed/WithRand must be set).
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates a construction that cannot proceed, such as a
// nil constructor passed to BuildGraph.
var ErrConstructFailed = errors.New("builder: construction failed")
