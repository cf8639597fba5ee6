// Package paths is an in-memory toolkit for shortest-path queries over
// weighted graphs with a generic cost type.
//
// What is inside?
//
//	shortest/      the shared contract: Graph, Cost, Path, Route, DirectRoute,
//	               the ShortestPath / ShortestDistance query interfaces, derived
//	               queries (PathTo, PathBetween, ...), options and errors
//	dijkstra/      single-source, non-negative weights, lazy settle order
//	astar/         single pair guided by an admissible heuristic
//	floydwarshall/ all pairs, negative weights allowed, negative cycles reported
//	core/          thread-safe string-keyed graph store implementing shortest.Graph
//	builder/       deterministic generators (path, cycle, complete, grid, random)
//	gonumgraph/    adapters to and from gonum graphs
//	observe/       run observers for logr, Prometheus and OpenTelemetry
//	cmd/pathfind   command-line front end over YAML graph files
//
// Every engine validates eagerly and returns a lazy, single-use iter.Seq:
//
//	g := core.NewGraph[int64](core.WithDirected(true))
//	g.AddEdge("A", "B", 1)
//	g.AddEdge("B", "C", 2)
//
//	routes, err := dijkstra.New[string, int64]("A").EveryPath(g)
//	if err != nil {
//	    return err
//	}
//	for r := range routes {
//	    fmt.Println(r) // A (cost 0), A→B (cost 1), A→B→C (cost 3)
//	}
//
// Results remember the graph version they were computed against; Route.Stale
// reports whether the graph has been mutated since.
//
//	go get github.com/katalvlaran/lvlath-paths
package paths
