// Package floydwarshall computes shortest paths between every ordered pair of
// nodes with the Floyd–Warshall dynamic program.
//
// Overview:
//
//   - The graph is copied into a dense row-major n×n table in g.Nodes() order.
//     Parallel edges keep the cheapest weight; a self-loop only matters when
//     it is negative, which is itself a negative cycle.
//   - The closure runs k → i → j with strict improvement, so ties keep the
//     first path found and results are deterministic.
//   - Negative edge weights are supported. A diagonal cell dropping below zero
//     means a negative cycle and fails the query with shortest.ErrNegativeCycle.
//   - Disconnected graphs are fine: unreachable pairs are simply not reported.
//
// Laziness:
//
//	The table is computed when EveryPath / EveryDistance is called, so every
//	error is returned up front. Items are then produced on demand; EveryPath
//	rebuilds each path from a next-hop table only when it is pulled.
//
// Complexity:
//
//   - Time:  O(V³) per query.
//   - Space: O(V²) for distances and presence, plus O(V²) next hops for EveryPath.
//
// Example:
//
//	fw := floydwarshall.New[string, float64]()
//	dists, err := fw.EveryDistance(g)
//	if err != nil {
//	    return err // shortest.ErrNegativeCycle, shortest.ErrNilGraph
//	}
//	for d := range dists {
//	    fmt.Println(d) // A→A = 0, A→B = 1, ...
//	}
package floydwarshall
