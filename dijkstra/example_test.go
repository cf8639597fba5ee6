package dijkstra_test

import (
	"fmt"

	"github.com/katalvlaran/lvlath-paths/core"
	"github.com/katalvlaran/lvlath-paths/dijkstra"
	"github.com/katalvlaran/lvlath-paths/shortest"
)

// ExampleNew walks every route from A in settle order.
func ExampleNew() {
	g := core.NewGraph[int64](core.WithDirected(true))
	_, _ = g.AddEdge("A", "B", 1)
	_, _ = g.AddEdge("B", "C", 2)
	_, _ = g.AddEdge("A", "C", 10)
	_, _ = g.AddEdge("C", "D", 1)

	routes, err := dijkstra.New[string, int64]("A").EveryPath(g)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	for r := range routes {
		fmt.Println(r)
	}
	// Output:
	// A (cost 0)
	// A→B (cost 1)
	// A→B→C (cost 3)
	// A→B→C→D (cost 4)
}

// ExampleDijkstra_WithMaxCost limits exploration to a cost radius.
func ExampleDijkstra_WithMaxCost() {
	g := core.NewGraph[int64]()
	_, _ = g.AddEdge("Home", "Shop", 3)
	_, _ = g.AddEdge("Shop", "Park", 4)
	_, _ = g.AddEdge("Home", "Lake", 9)

	dists, err := dijkstra.New[string, int64]("Home").WithMaxCost(5).EveryDistance(g)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	for d := range dists {
		fmt.Println(d)
	}
	// Output:
	// Home→Home = 0
	// Home→Shop = 3
}

// ExampleDijkstra_WithImpassable routes around a wall.
func ExampleDijkstra_WithImpassable() {
	g := core.NewGraph[float64]()
	_, _ = g.AddEdge("A", "B", 2)
	_, _ = g.AddEdge("B", "C", 4)
	_, _ = g.AddEdge("A", "C", 100)

	d := dijkstra.New[string, float64]("A").WithImpassable(50)
	r, ok := shortest.PathBetween[string, float64](d, g, "A", "C")
	fmt.Println(r, ok)
	// Output:
	// A→B→C (cost 6) true
}

// ExampleDijkstra_Distances collects the full distance map.
func ExampleDijkstra_Distances() {
	g := core.NewGraph[int64]()
	_, _ = g.AddEdge("A", "B", 1)
	_, _ = g.AddEdge("B", "C", 1)
	_ = g.AddVertex("Z")

	dist, err := dijkstra.New[string, int64]("A").Distances(g)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println(dist)
	// Output:
	// map[A:0 B:1 C:2]
}
