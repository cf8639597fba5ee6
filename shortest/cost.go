// SPDX-License-Identifier: MIT

package shortest

import (
	"cmp"
	"fmt"

	"golang.org/x/exp/constraints"
)

// Weight is the capability set every cost type must provide: a total order (<),
// an additive identity (the zero value) and an associative combine (+).
//
// Dijkstra and A* additionally expect weights to be non-negative. Floats are
// accepted; NaN weights break the ordering and are a caller error.
type Weight interface {
	constraints.Integer | constraints.Float
}

// Cost is the accumulated cost of traversing a path.
type Cost[T Weight] struct {
	value T
}

// NewCost wraps v.
func NewCost[T Weight](v T) Cost[T] {
	return Cost[T]{value: v}
}

// Value returns the wrapped weight.
func (c Cost[T]) Value() T { return c.value }

// IsZero reports whether c equals the additive identity.
func (c Cost[T]) IsZero() bool {
	var zero T

	return c.value == zero
}

// Add returns c + o.
func (c Cost[T]) Add(o Cost[T]) Cost[T] {
	return Cost[T]{value: c.value + o.value}
}

// Less reports whether c is strictly cheaper than o.
func (c Cost[T]) Less(o Cost[T]) bool { return c.value < o.value }

// Compare returns -1, 0 or +1 as c is cheaper, equal or more expensive than o.
func (c Cost[T]) Compare(o Cost[T]) int { return cmp.Compare(c.value, o.value) }

// String renders the wrapped value with %v.
func (c Cost[T]) String() string { return fmt.Sprintf("%v", c.value) }
