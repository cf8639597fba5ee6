// SPDX-License-Identifier: MIT
//
// File: table.go
// Role: dense all-pairs table (distances, presence mask, next hops) and the
//       k → i → j relaxation.
// Layout:
//   - Flat row-major buffers of n×n cells; cell (i, j) lives at i*n + j.
//   - present[c] == false means "no path"; dist[c] is meaningless then.
//   - next[c] is the index of the node after i on the best i→j path.

package floydwarshall

import (
	"fmt"

	"github.com/katalvlaran/lvlath-paths/shortest"
)

const noHop = -1

type table[N comparable, W shortest.Weight] struct {
	n       int
	nodes   []N
	index   map[N]int
	dist    []W
	present []bool
	next    []int // nil unless paths were requested
}

// newTable seeds the table from g: zero diagonal, the cheapest parallel edge
// per ordered pair, and negative self-loops lowering the diagonal.
// Complexity: O(V² + E).
func newTable[N comparable, W shortest.Weight](g shortest.Graph[N, W], trackPaths bool) (*table[N, W], error) {
	nodes := g.Nodes()
	n := len(nodes)
	t := &table[N, W]{
		n:       n,
		nodes:   nodes,
		index:   make(map[N]int, n),
		dist:    make([]W, n*n),
		present: make([]bool, n*n),
	}
	if trackPaths {
		t.next = make([]int, n*n)
		for c := range t.next {
			t.next[c] = noHop
		}
	}
	for i, id := range nodes {
		t.index[id] = i
	}

	var (
		i, j, c int
		known   bool
		edges   []shortest.Edge[N, W]
		err     error
	)
	for i = 0; i < n; i++ {
		c = i*n + i
		t.present[c] = true
		if t.next != nil {
			t.next[c] = i
		}
	}
	for i = 0; i < n; i++ {
		if edges, err = g.Outgoing(nodes[i]); err != nil {
			return nil, fmt.Errorf("floydwarshall: outgoing edges of %v: %w", nodes[i], err)
		}
		for _, e := range edges {
			if j, known = t.index[e.To]; !known {
				return nil, fmt.Errorf("%w: edge %v→%v leads outside Nodes()", shortest.ErrInvariant, e.From, e.To)
			}
			c = i*n + j
			// Strictly cheaper only: the diagonal starts at zero, so a
			// non-negative self-loop never replaces it.
			if t.present[c] && e.Weight >= t.dist[c] {
				continue
			}
			t.dist[c], t.present[c] = e.Weight, true
			if t.next != nil {
				t.next[c] = j
			}
		}
	}
	for i = 0; i < n; i++ {
		if c = i*n + i; t.dist[c] < 0 {
			return nil, fmt.Errorf("%w: self-loop on %v weight=%v", shortest.ErrNegativeCycle, nodes[i], t.dist[c])
		}
	}

	return t, nil
}

// relax runs the k → i → j closure with strict improvement. It stops with
// ErrNegativeCycle as soon as a diagonal cell turns negative.
// Complexity: O(V³) time, no allocations.
func (t *table[N, W]) relax(stats *shortest.Stats) error {
	var (
		n            = t.n
		dist         = t.dist
		present      = t.present
		next         = t.next
		k, i, j      int
		baseK, baseI int
		ik, cand     W
	)
	for k = 0; k < n; k++ {
		baseK = k * n
		for i = 0; i < n; i++ {
			if !present[i*n+k] {
				continue
			}
			ik = dist[i*n+k]
			baseI = i * n
			for j = 0; j < n; j++ {
				if !present[baseK+j] {
					continue
				}
				stats.Relaxed++
				cand = ik + dist[baseK+j]
				if present[baseI+j] && cand >= dist[baseI+j] {
					continue
				}
				dist[baseI+j], present[baseI+j] = cand, true
				if next != nil {
					next[baseI+j] = next[baseI+k]
				}
				stats.Improved++
				if i == j && cand < 0 {
					return fmt.Errorf("%w: through %v", shortest.ErrNegativeCycle, t.nodes[i])
				}
			}
		}
		stats.Settled++
	}

	return nil
}

// path rebuilds the node sequence i→j from the next-hop table. A walk longer
// than n nodes or a missing hop means the table is corrupt.
func (t *table[N, W]) path(i, j int) ([]N, error) {
	out := []N{t.nodes[i]}
	for cur := i; cur != j; {
		cur = t.next[cur*t.n+j]
		if cur == noHop {
			return nil, fmt.Errorf("%w: no next hop from %v towards %v", shortest.ErrInvariant, t.nodes[i], t.nodes[j])
		}
		out = append(out, t.nodes[cur])
		if len(out) > t.n {
			return nil, fmt.Errorf("%w: next hops from %v towards %v", shortest.ErrPathCycle, t.nodes[i], t.nodes[j])
		}
	}

	return out, nil
}
