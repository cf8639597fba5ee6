// SPDX-License-Identifier: MIT

package search

import (
	"fmt"

	"github.com/katalvlaran/lvlath-paths/shortest"
)

// Step records how a node was last reached: through Edge from Edge.From, at
// accumulated Cost.
type Step[N comparable, W shortest.Weight] struct {
	Edge shortest.Edge[N, W]
	Cost W
}

// Prev returns the predecessor node.
func (s Step[N, W]) Prev() N { return s.Edge.From }

// Predecessors maps each reached node (source excluded) to its best Step.
type Predecessors[N comparable, W shortest.Weight] struct {
	steps map[N]Step[N, W]
}

// NewPredecessors returns an empty map sized for hint nodes.
func NewPredecessors[N comparable, W shortest.Weight](hint int) *Predecessors[N, W] {
	return &Predecessors[N, W]{steps: make(map[N]Step[N, W], hint)}
}

// Record overwrites the step for e.To.
func (p *Predecessors[N, W]) Record(e shortest.Edge[N, W], cost W) {
	p.steps[e.To] = Step[N, W]{Edge: e, Cost: cost}
}

// Step returns the recorded step for node.
func (p *Predecessors[N, W]) Step(node N) (Step[N, W], bool) {
	s, ok := p.steps[node]

	return s, ok
}

// Len returns the number of recorded nodes.
func (p *Predecessors[N, W]) Len() int { return len(p.steps) }

// Reconstruct walks from target back to source and returns the nodes in
// source→target order.
//
// A chain longer than the number of recorded steps must revisit a node, which
// is reported as shortest.ErrPathCycle. A chain that ends before reaching
// source is reported as shortest.ErrInvariant.
// Complexity: O(path length).
func (p *Predecessors[N, W]) Reconstruct(source, target N) ([]N, error) {
	nodes := []N{target}
	limit := len(p.steps) + 1
	for cur := target; cur != source; {
		step, ok := p.steps[cur]
		if !ok {
			return nil, fmt.Errorf("%w: chain from %v stops at %v before %v", shortest.ErrInvariant, target, cur, source)
		}
		cur = step.Prev()
		nodes = append(nodes, cur)
		if len(nodes) > limit {
			return nil, fmt.Errorf("%w: walking back from %v", shortest.ErrPathCycle, target)
		}
	}

	// reverse to get source → target
	for i, j := 0, len(nodes)-1; i < j; i, j = i+1, j-1 {
		nodes[i], nodes[j] = nodes[j], nodes[i]
	}

	return nodes, nil
}
