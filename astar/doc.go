// Package astar finds one shortest path between a fixed source and target,
// guided by a caller-supplied heuristic.
//
// A* is Dijkstra with a different frontier order: nodes are popped by
// accumulated cost + h(node). With an admissible heuristic (never above the
// true remaining cost) the first time the target is settled its cost is
// optimal, and the search stops right there.
//
// Key points:
//
//   - The target is bound at New; EveryPath yields zero or one Route.
//   - h(target) must be 0; a positive value is rejected with
//     shortest.ErrInadmissibleHeuristic. Admissibility elsewhere is the
//     caller's responsibility: an overestimating h yields a valid but
//     possibly longer route.
//   - Zero[N, W]() makes A* settle exactly like Dijkstra.
//   - Ties on priority settle in discovery order, so results are deterministic.
//
// Errors (returned before any item exists):
//
//   - shortest.ErrNilGraph, shortest.ErrSourceNotFound, shortest.ErrTargetNotFound
//   - shortest.ErrNilHeuristic, shortest.ErrInadmissibleHeuristic
//   - shortest.ErrNegativeWeight (pre-scan, skip with shortest.WithoutWeightCheck)
//
// Complexity: O((V + E) log V) worst case; a sharp heuristic settles far fewer
// nodes.
package astar
