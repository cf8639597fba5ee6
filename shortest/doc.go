// SPDX-License-Identifier: MIT

// Package shortest defines the algorithm-agnostic contract of the lvlath-paths
// shortest-path engines.
//
// Overview:
//
//   - Cost[T] wraps a numeric weight type (any integer or float) and fixes the
//     arithmetic and ordering every engine relies on.
//   - Path[N], Route[N,W] and DirectRoute[N,W] are the immutable results an engine
//     yields. They are created fresh per query and never mutated afterwards.
//   - Graph[N,W] is the capability contract a storage backend must satisfy:
//     node lookup, deterministic node enumeration and outgoing-edge iteration.
//   - ShortestPath and ShortestDistance are the two query interfaces. Each has one
//     required primitive (EveryPath / EveryDistance); the derived queries
//     PathTo, PathFrom, PathBetween, DistanceTo, DistanceFrom and DistanceBetween
//     are package functions implemented purely as filters over that primitive.
//
// Laziness:
//
//	Primitives return an iter.Seq. Pulling the next item advances the engine's
//	internal loop; stopping the range early halts all further work. Each call to
//	a primitive starts a fresh run: nothing is cached between queries, and a
//	sequence is single-use (ranging it a second time yields nothing).
//
// Errors:
//
//	Validation happens before the first item exists. A primitive either returns
//	(nil, err) or a sequence that never fails. Errors are classified:
//
//	  ErrConfiguration - unknown endpoints, nil graph, bad heuristic, bad threshold.
//	  ErrStructural    - negative edge weights, negative cycles.
//	  ErrInvariant     - internal defects (a predecessor cycle); raised as a panic
//	                     carrying *InvariantError because it can only surface while
//	                     a sequence is being consumed.
//
// Staleness:
//
//	Results keep node identifiers only. When the graph implements Versioned the
//	results remember the graph version they were computed against and Stale
//	reports whether the graph has been mutated since.
//
// Concurrency:
//
//	Engines never mutate the graph. Independent runs may execute concurrently over
//	the same graph as long as the backend permits concurrent reads (core.Graph does).
//	State inside a run (frontier, predecessor map, DP tables) is owned by that run.
package shortest
