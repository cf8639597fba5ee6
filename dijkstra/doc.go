// Package dijkstra provides Dijkstra's single-source shortest-path engine over
// any shortest.Graph with non-negative edge weights.
//
// Overview:
//
//   - The engine seeds the source at cost zero and repeatedly settles the
//     cheapest pending node, relaxing its outgoing edges.
//   - Results are lazy: EveryPath / EveryDistance return an iter.Seq that settles
//     one node per pulled item. Breaking out of the range stops the run.
//   - Every call is a fresh run; nothing is cached between queries.
//
// When to use:
//
//   - You need costs (and optionally paths) from one source to many targets.
//   - For one target with a good distance estimate, prefer package astar.
//   - For every ordered pair on a small dense graph, prefer package floydwarshall.
//
// Key features:
//
//   - Deterministic: ties in cost settle in discovery order (insertion sequence),
//     so a fixed graph always yields the same sequence of routes.
//   - WithMaxCost(x): nodes farther than x are never settled or reported.
//   - WithImpassable(t): edges with weight ≥ t are treated as walls.
//   - Derived queries come from package shortest: PathTo, PathFrom, PathBetween,
//     DistanceTo, DistanceFrom, DistanceBetween.
//
// Performance and complexity:
//
//   - Time:  O((V + E) log V) for a full run.
//   - Space: O(V + E): cost and predecessor maps plus up to E heap entries under
//     the lazy decrease-key strategy (stale entries are skipped on pop).
//   - The negative-weight pre-scan adds O(V + E) before the first item; disable it
//     with shortest.WithoutWeightCheck() when weights are known to be valid.
//
// Error handling (returned by EveryPath / EveryDistance before any item exists):
//
//   - shortest.ErrNilGraph:       g is nil.
//   - shortest.ErrBadThreshold:   WithMaxCost < 0 or WithImpassable ≤ 0.
//   - shortest.ErrSourceNotFound: the source is not a node of g.
//   - shortest.ErrNegativeWeight: the pre-scan met a negative weight.
//
// Example:
//
//	d := dijkstra.New[string, int64]("A")
//	routes, err := d.EveryPath(g)
//	if err != nil {
//	    return err
//	}
//	for r := range routes {
//	    fmt.Println(r) // A (cost 0), A→B (cost 1), ...
//	}
package dijkstra
