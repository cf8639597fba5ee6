// SPDX-License-Identifier: MIT

package shortest

import "iter"

// ShortestPath is implemented by every engine that can report full paths.
//
// EveryPath enumerates every route the configured algorithm produces for the
// current state of g. It validates eagerly: on failure it returns (nil, err) and
// no work is left pending. The returned sequence is lazy and single-use.
type ShortestPath[N comparable, W Weight] interface {
	EveryPath(g Graph[N, W]) (iter.Seq[Route[N, W]], error)
}

// ShortestDistance is implemented by every engine that can report distances
// without reconstructing paths. Same contract as ShortestPath.EveryPath.
type ShortestDistance[N comparable, W Weight] interface {
	EveryDistance(g Graph[N, W]) (iter.Seq[DirectRoute[N, W]], error)
}

// PathTo yields the routes of sp whose destination is target.
func PathTo[N comparable, W Weight](sp ShortestPath[N, W], g Graph[N, W], target N) (iter.Seq[Route[N, W]], error) {
	routes, err := sp.EveryPath(g)
	if err != nil {
		return nil, err
	}

	return filter(routes, func(r Route[N, W]) bool { return r.Target() == target }), nil
}

// PathFrom yields the routes of sp whose origin is source.
func PathFrom[N comparable, W Weight](sp ShortestPath[N, W], g Graph[N, W], source N) (iter.Seq[Route[N, W]], error) {
	routes, err := sp.EveryPath(g)
	if err != nil {
		return nil, err
	}

	return filter(routes, func(r Route[N, W]) bool { return r.Source() == source }), nil
}

// PathBetween returns the first route of sp from source to target.
//
// A failing enumeration is reported the same way as a missing route: ok is
// false. Call EveryPath directly to tell the two apart.
func PathBetween[N comparable, W Weight](sp ShortestPath[N, W], g Graph[N, W], source, target N) (Route[N, W], bool) {
	routes, err := PathFrom(sp, g, source)
	if err != nil {
		return Route[N, W]{}, false
	}

	return first(routes, func(r Route[N, W]) bool { return r.Target() == target })
}

// DistanceTo yields the distances of sd whose destination is target.
func DistanceTo[N comparable, W Weight](sd ShortestDistance[N, W], g Graph[N, W], target N) (iter.Seq[DirectRoute[N, W]], error) {
	routes, err := sd.EveryDistance(g)
	if err != nil {
		return nil, err
	}

	return filter(routes, func(d DirectRoute[N, W]) bool { return d.Target() == target }), nil
}

// DistanceFrom yields the distances of sd whose origin is source.
func DistanceFrom[N comparable, W Weight](sd ShortestDistance[N, W], g Graph[N, W], source N) (iter.Seq[DirectRoute[N, W]], error) {
	routes, err := sd.EveryDistance(g)
	if err != nil {
		return nil, err
	}

	return filter(routes, func(d DirectRoute[N, W]) bool { return d.Source() == source }), nil
}

// DistanceBetween returns the cost of the first distance of sd from source to
// target. Enumeration failures are folded into ok == false, as in PathBetween.
func DistanceBetween[N comparable, W Weight](sd ShortestDistance[N, W], g Graph[N, W], source, target N) (Cost[W], bool) {
	routes, err := sd.EveryDistance(g)
	if err != nil {
		return Cost[W]{}, false
	}
	d, ok := first(routes, func(d DirectRoute[N, W]) bool {
		return d.Source() == source && d.Target() == target
	})
	if !ok {
		return Cost[W]{}, false
	}

	return d.Cost(), true
}

// filter wraps seq, passing through the items keep accepts.
func filter[T any](seq iter.Seq[T], keep func(T) bool) iter.Seq[T] {
	return func(yield func(T) bool) {
		for v := range seq {
			if keep(v) && !yield(v) {
				return
			}
		}
	}
}

// first returns the first item of seq accepted by match and stops the sequence
// right after it, so the engine does no further work.
func first[T any](seq iter.Seq[T], match func(T) bool) (T, bool) {
	for v := range seq {
		if match(v) {
			return v, true
		}
	}
	var zero T

	return zero, false
}
