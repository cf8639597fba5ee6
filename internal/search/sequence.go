// SPDX-License-Identifier: MIT

package search

import (
	"iter"

	"github.com/katalvlaran/lvlath-paths/shortest"
)

// Sequence turns an engine run into a single-use iter.Seq.
//
// The engine is built by start only when the caller begins ranging, so an
// unconsumed sequence costs nothing. Every settled node accepted by keep (all
// of them when keep is nil) is mapped through emit. The observer sees one Start/Finish pair per run, including runs the caller
// abandons early.
func Sequence[N comparable, W shortest.Weight, T any](
	o shortest.Options,
	start func(stats *shortest.Stats) *Engine[N, W],
	keep func(node N) bool,
	emit func(eng *Engine[N, W], node N, cost W) T,
) iter.Seq[T] {
	used := false

	return func(yield func(T) bool) {
		if used {
			return
		}
		used = true

		run := shortest.Begin(o)
		defer run.End()

		eng := start(&run.Stats)
		for {
			node, cost, ok := eng.Next()
			if !ok {
				break
			}
			if keep != nil && !keep(node) {
				continue
			}
			run.Stats.Yielded++
			if !yield(emit(eng, node, cost)) {
				return
			}
		}
		run.Stats.Err = eng.Err()
	}
}

// MustPath rebuilds the path to node or panics with *shortest.InvariantError.
// A settled node always has a valid predecessor chain; anything else is a defect.
func MustPath[N comparable, W shortest.Weight](algorithm string, eng *Engine[N, W], node N) []N {
	nodes, err := eng.Path(node)
	if err != nil {
		panic(&shortest.InvariantError{Algorithm: algorithm, Err: err})
	}

	return nodes
}
