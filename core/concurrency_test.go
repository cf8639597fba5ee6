package core_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/lvlath-paths/core"
)

// TestConcurrentAddEdge verifies that parallel writers never lose edges and
// that every generated ID is unique.
func TestConcurrentAddEdge(t *testing.T) {
	g := core.NewGraph[int64](core.WithDirected(true), core.WithMultiEdges())

	const workers, perWorker = 8, 50
	var eg errgroup.Group
	for w := 0; w < workers; w++ {
		w := w
		eg.Go(func() error {
			for i := 0; i < perWorker; i++ {
				if _, err := g.AddEdge(fmt.Sprintf("w%d", w), fmt.Sprintf("n%d", i), int64(i)); err != nil {
					return err
				}
				_ = g.Nodes()
			}
			return nil
		})
	}
	require.NoError(t, eg.Wait())

	require.Equal(t, workers*perWorker, g.EdgeCount())
	seen := make(map[string]struct{})
	for _, e := range g.Edges() {
		seen[e.ID] = struct{}{}
	}
	require.Len(t, seen, workers*perWorker)
}
