// SPDX-License-Identifier: MIT

package shortest

import (
	"errors"
	"fmt"
)

// Classification parents. Every sentinel below wraps exactly one of them, so
// callers can branch on the class with errors.Is(err, ErrConfiguration) or on
// the precise cause with errors.Is(err, ErrSourceNotFound).
var (
	// ErrConfiguration marks a query whose configuration cannot be executed
	// against the given graph.
	ErrConfiguration = errors.New("shortest: configuration error")

	// ErrStructural marks a graph whose structure defeats the algorithm.
	ErrStructural = errors.New("shortest: structural error")

	// ErrInvariant marks an internal defect. It is never returned for user input.
	ErrInvariant = errors.New("shortest: internal invariant violated")
)

// Configuration errors.
var (
	// ErrNilGraph indicates a nil Graph was passed to a primitive.
	ErrNilGraph = fmt.Errorf("%w: graph is nil", ErrConfiguration)

	// ErrSourceNotFound indicates the configured source does not resolve to a node.
	ErrSourceNotFound = fmt.Errorf("%w: source node not found", ErrConfiguration)

	// ErrTargetNotFound indicates the configured target does not resolve to a node.
	ErrTargetNotFound = fmt.Errorf("%w: target node not found", ErrConfiguration)

	// ErrNilHeuristic indicates A* was configured without a heuristic.
	ErrNilHeuristic = fmt.Errorf("%w: heuristic is nil", ErrConfiguration)

	// ErrInadmissibleHeuristic indicates the heuristic overestimates at the target,
	// where the true remaining cost is zero.
	ErrInadmissibleHeuristic = fmt.Errorf("%w: heuristic overestimates at target", ErrConfiguration)

	// ErrBadThreshold indicates a negative cost cap or a non-positive impassable threshold.
	ErrBadThreshold = fmt.Errorf("%w: invalid cost threshold", ErrConfiguration)
)

// Structural errors.
var (
	// ErrNegativeWeight indicates a negative edge weight seen by a non-negative engine.
	ErrNegativeWeight = fmt.Errorf("%w: negative edge weight", ErrStructural)

	// ErrNegativeCycle indicates a cycle whose summed weight is negative.
	ErrNegativeCycle = fmt.Errorf("%w: negative cycle detected", ErrStructural)
)

// ErrPathCycle indicates path reconstruction met the same node twice.
var ErrPathCycle = fmt.Errorf("%w: predecessor chain contains a cycle", ErrInvariant)

// InvariantError is the panic value raised when an internal invariant breaks
// while a sequence is being consumed. It unwraps to the underlying sentinel.
type InvariantError struct {
	Algorithm string
	Err       error
}

// Error implements error.
func (e *InvariantError) Error() string {
	return fmt.Sprintf("%s: %v", e.Algorithm, e.Err)
}

// Unwrap exposes the underlying sentinel to errors.Is / errors.As.
func (e *InvariantError) Unwrap() error { return e.Err }
