package floydwarshall_test

import (
	"fmt"

	"github.com/katalvlaran/lvlath-paths/core"
	"github.com/katalvlaran/lvlath-paths/floydwarshall"
)

// ExampleNew lists every reachable pair of a small graph with a negative edge.
func ExampleNew() {
	g := core.NewGraph[int64](core.WithDirected(true))
	_, _ = g.AddEdge("A", "B", 4)
	_, _ = g.AddEdge("A", "C", 1)
	_, _ = g.AddEdge("C", "B", -2)

	routes, err := floydwarshall.New[string, int64]().EveryPath(g)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	for r := range routes {
		fmt.Println(r)
	}
	// Output:
	// A (cost 0)
	// A→C→B (cost -1)
	// A→C (cost 1)
	// B (cost 0)
	// C→B (cost -2)
	// C (cost 0)
}

// ExampleFloydWarshall_Matrix reads single distances out of the dense result.
func ExampleFloydWarshall_Matrix() {
	g := core.NewGraph[float64]()
	_, _ = g.AddEdge("X", "Y", 1.5)
	_, _ = g.AddEdge("Y", "Z", 2)

	m, err := floydwarshall.New[string, float64]().Matrix(g)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println(m["Z"]["X"], len(m["X"]))
	// Output:
	// 3.5 3
}
