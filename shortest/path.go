// SPDX-License-Identifier: MIT

package shortest

import (
	"fmt"
	"strings"
)

// stamp remembers which graph version a result was computed against.
type stamp struct {
	version   uint64
	versioned bool
}

func stampOf(g any) stamp {
	v, ok := versionOf(g)

	return stamp{version: v, versioned: ok}
}

// stale reports whether g moved past the recorded version. Results computed
// over an unversioned graph are never reported stale.
func (s stamp) stale(g Versioned) bool {
	if !s.versioned || g == nil {
		return false
	}

	return g.Version() != s.version
}

// Path is an ordered, non-empty sequence of nodes from Source to Target inclusive.
// A Path is immutable: Nodes returns a copy and Reverse returns a new Path.
type Path[N comparable] struct {
	nodes []N
	stamp stamp
}

// NewPath builds a Path over nodes. The slice is copied. It panics on an empty
// slice, since every path has at least its source.
func NewPath[N comparable](nodes ...N) Path[N] {
	if len(nodes) == 0 {
		panic("shortest: NewPath requires at least one node")
	}
	own := make([]N, len(nodes))
	copy(own, nodes)

	return Path[N]{nodes: own}
}

// Source returns the first node.
func (p Path[N]) Source() N { return p.nodes[0] }

// Target returns the last node.
func (p Path[N]) Target() N { return p.nodes[len(p.nodes)-1] }

// Len returns the number of nodes, source and target included.
func (p Path[N]) Len() int { return len(p.nodes) }

// Hops returns the number of edges traversed.
func (p Path[N]) Hops() int { return len(p.nodes) - 1 }

// Nodes returns a copy of the node sequence.
func (p Path[N]) Nodes() []N {
	out := make([]N, len(p.nodes))
	copy(out, p.nodes)

	return out
}

// Reverse returns the same nodes in opposite order; source and target swap.
func (p Path[N]) Reverse() Path[N] {
	n := len(p.nodes)
	out := make([]N, n)
	for i, v := range p.nodes {
		out[n-1-i] = v
	}

	return Path[N]{nodes: out, stamp: p.stamp}
}

// Stale reports whether g was mutated after this path was computed.
func (p Path[N]) Stale(g Versioned) bool { return p.stamp.stale(g) }

// String renders the path as "A→B→C".
func (p Path[N]) String() string {
	parts := make([]string, len(p.nodes))
	for i, v := range p.nodes {
		parts[i] = fmt.Sprint(v)
	}

	return strings.Join(parts, "→")
}

// Route is a Path together with its total cost.
type Route[N comparable, W Weight] struct {
	path Path[N]
	cost Cost[W]
}

// NewRoute builds a Route over nodes with total cost. When g implements
// Versioned the route records the current version.
func NewRoute[N comparable, W Weight](g Graph[N, W], nodes []N, cost W) Route[N, W] {
	p := NewPath(nodes...)
	p.stamp = stampOf(g)

	return Route[N, W]{path: p, cost: NewCost(cost)}
}

// Path returns the traversed path.
func (r Route[N, W]) Path() Path[N] { return r.path }

// Cost returns the total cost.
func (r Route[N, W]) Cost() Cost[W] { return r.cost }

// Source returns the first node of the path.
func (r Route[N, W]) Source() N { return r.path.Source() }

// Target returns the last node of the path.
func (r Route[N, W]) Target() N { return r.path.Target() }

// Reverse returns the route walked backwards at the same cost. The result is
// only a valid route on graphs where every traversed edge is symmetric.
func (r Route[N, W]) Reverse() Route[N, W] {
	return Route[N, W]{path: r.path.Reverse(), cost: r.cost}
}

// Stale reports whether g was mutated after this route was computed.
func (r Route[N, W]) Stale(g Versioned) bool { return r.path.Stale(g) }

// String renders the route as "A→B→C (cost 3)".
func (r Route[N, W]) String() string {
	return fmt.Sprintf("%s (cost %s)", r.path, r.cost)
}

// DirectRoute is a (source, target, cost) triple without the intervening path,
// produced when only distances are requested.
type DirectRoute[N comparable, W Weight] struct {
	source N
	target N
	cost   Cost[W]
	stamp  stamp
}

// NewDirectRoute builds a DirectRoute, recording the version of g if it has one.
func NewDirectRoute[N comparable, W Weight](g Graph[N, W], source, target N, cost W) DirectRoute[N, W] {
	return DirectRoute[N, W]{source: source, target: target, cost: NewCost(cost), stamp: stampOf(g)}
}

// Source returns the origin.
func (d DirectRoute[N, W]) Source() N { return d.source }

// Target returns the destination.
func (d DirectRoute[N, W]) Target() N { return d.target }

// Cost returns the distance from Source to Target.
func (d DirectRoute[N, W]) Cost() Cost[W] { return d.cost }

// Reverse swaps source and target, keeping the cost.
func (d DirectRoute[N, W]) Reverse() DirectRoute[N, W] {
	return DirectRoute[N, W]{source: d.target, target: d.source, cost: d.cost, stamp: d.stamp}
}

// Stale reports whether g was mutated after this distance was computed.
func (d DirectRoute[N, W]) Stale(g Versioned) bool { return d.stamp.stale(g) }

// String renders the distance as "A→C = 3".
func (d DirectRoute[N, W]) String() string {
	return fmt.Sprintf("%v→%v = %s", d.source, d.target, d.cost)
}
