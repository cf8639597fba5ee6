// SPDX-License-Identifier: MIT

// Package search holds the relaxation machinery shared by the single-source
// engines: a deterministic priority frontier, a predecessor map with path
// reconstruction, and the lazy settle-and-relax loop.
package search

import (
	"container/heap"

	"github.com/katalvlaran/lvlath-paths/shortest"
)

// item is one pending frontier entry. Stale entries (for nodes settled since)
// stay in the heap and are skipped on pop ("lazy decrease-key").
type item[N comparable, W shortest.Weight] struct {
	node     N
	cost     W      // accumulated cost from the source
	priority W      // ordering key: cost, or cost + heuristic
	seq      uint64 // insertion order, the documented tie-break
}

// itemHeap implements heap.Interface ordered by (priority asc, seq asc).
type itemHeap[N comparable, W shortest.Weight] []item[N, W]

func (h itemHeap[N, W]) Len() int { return len(h) }

func (h itemHeap[N, W]) Less(i, j int) bool {
	if h[i].priority != h[j].priority {
		return h[i].priority < h[j].priority
	}

	return h[i].seq < h[j].seq
}

func (h itemHeap[N, W]) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *itemHeap[N, W]) Push(x any) { *h = append(*h, x.(item[N, W])) }

func (h *itemHeap[N, W]) Pop() any {
	old := *h
	n := len(old)
	it := old[n-1]
	*h = old[:n-1]

	return it
}

// Frontier is a min-priority queue of pending nodes. Equal priorities pop in
// insertion order, which makes runs reproducible for a fixed graph.
type Frontier[N comparable, W shortest.Weight] struct {
	h   itemHeap[N, W]
	seq uint64
}

// NewFrontier returns an empty frontier with room for capacity entries.
func NewFrontier[N comparable, W shortest.Weight](capacity int) *Frontier[N, W] {
	return &Frontier[N, W]{h: make(itemHeap[N, W], 0, capacity)}
}

// Push enqueues node with its accumulated cost and ordering priority.
// Complexity: O(log n).
func (f *Frontier[N, W]) Push(node N, cost, priority W) {
	heap.Push(&f.h, item[N, W]{node: node, cost: cost, priority: priority, seq: f.seq})
	f.seq++
}

// Pop removes the entry with the lowest priority. ok is false when empty.
// Complexity: O(log n).
func (f *Frontier[N, W]) Pop() (node N, cost W, ok bool) {
	if len(f.h) == 0 {
		return node, cost, false
	}
	it := heap.Pop(&f.h).(item[N, W])

	return it.node, it.cost, true
}

// Len returns the number of pending entries, stale ones included.
func (f *Frontier[N, W]) Len() int { return len(f.h) }
