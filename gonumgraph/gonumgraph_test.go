package gonumgraph_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/graph/path"
	"gonum.org/v1/gonum/graph/simple"

	"github.com/katalvlaran/lvlath-paths/builder"
	"github.com/katalvlaran/lvlath-paths/core"
	"github.com/katalvlaran/lvlath-paths/dijkstra"
	"github.com/katalvlaran/lvlath-paths/floydwarshall"
	"github.com/katalvlaran/lvlath-paths/gonumgraph"
	"github.com/katalvlaran/lvlath-paths/internal/fixture"
	"github.com/katalvlaran/lvlath-paths/shortest"
)

func weightedUndirected(t *testing.T) *simple.WeightedUndirectedGraph {
	t.Helper()
	g := simple.NewWeightedUndirectedGraph(0, math.Inf(1))
	for _, e := range []struct {
		u, v int64
		w    float64
	}{
		{0, 1, 7}, {0, 2, 9}, {0, 5, 14}, {1, 2, 10}, {1, 3, 15},
		{2, 3, 11}, {2, 5, 2}, {3, 4, 6}, {4, 5, 9},
	} {
		g.SetWeightedEdge(g.NewWeightedEdge(simple.Node(e.u), simple.Node(e.v), e.w))
	}
	g.AddNode(simple.Node(6)) // isolated

	return g
}

func TestWrap_Contract(t *testing.T) {
	gw := gonumgraph.Wrap(weightedUndirected(t))
	require.Equal(t, []int64{0, 1, 2, 3, 4, 5, 6}, gw.Nodes())
	require.True(t, gw.HasNode(6))
	require.False(t, gw.HasNode(42))

	out, err := gw.Outgoing(2)
	require.NoError(t, err)
	require.Equal(t, []shortest.Edge[int64, float64]{
		{From: 2, To: 0, Weight: 9},
		{From: 2, To: 1, Weight: 10},
		{From: 2, To: 3, Weight: 11},
		{From: 2, To: 5, Weight: 2},
	}, out)

	_, err = gw.Outgoing(42)
	require.ErrorIs(t, err, gonumgraph.ErrNodeNotFound)
	require.Panics(t, func() { gonumgraph.Wrap(nil) })
}

func TestWrap_DijkstraMatchesGonum(t *testing.T) {
	g := weightedUndirected(t)
	gw := gonumgraph.Wrap(g)

	got, err := dijkstra.New[int64, float64](0).Distances(gw)
	require.NoError(t, err)

	oracle := path.DijkstraFrom(simple.Node(0), g)
	for _, id := range gw.Nodes() {
		want := oracle.WeightTo(id)
		w, ok := got[id]
		if math.IsInf(want, 1) {
			require.False(t, ok, "node %d should be unreachable", id)
			continue
		}
		require.True(t, ok, "node %d missing", id)
		require.InDelta(t, want, w, 1e-9, "node %d", id)
	}
	require.Equal(t, 20.0, got[4])
}

func TestExport_FloydWarshallMatchesGonum(t *testing.T) {
	for _, name := range []string{"scenario", "undirected", "disconnected", "parallel", "negative_dag"} {
		f, err := fixture.Load(name)
		require.NoError(t, err)
		g, err := fixture.Build[float64](f)
		require.NoError(t, err)

		dg, ids, err := gonumgraph.Export[string, float64](g)
		require.NoError(t, err)
		oracle, ok := path.FloydWarshall(dg)
		require.True(t, ok, name)

		dists, err := floydwarshall.New[string, float64]().Matrix(g)
		require.NoError(t, err)
		for _, u := range g.Nodes() {
			for _, v := range g.Nodes() {
				want := oracle.Weight(ids[u], ids[v])
				got, reached := dists[u][v]
				if math.IsInf(want, 1) {
					require.False(t, reached, "%s: %s→%s", name, u, v)
					continue
				}
				require.True(t, reached, "%s: %s→%s", name, u, v)
				require.InDelta(t, want, got, 1e-9, "%s: %s→%s", name, u, v)
			}
		}
	}
}

func TestExport_RandomGraphs(t *testing.T) {
	for seed := int64(1); seed <= 5; seed++ {
		g, err := builder.BuildGraph[int64](
			[]core.GraphOption{core.WithDirected(true)},
			[]builder.BuilderOption{builder.WithSeed(seed), builder.WithIntUniformWeight(0, 20)},
			builder.RandomSparse[int64](25, 0.15),
		)
		require.NoError(t, err)
		dg, ids, err := gonumgraph.Export[string, int64](g)
		require.NoError(t, err)

		got, err := dijkstra.New[string, int64]("0").Distances(g)
		require.NoError(t, err)
		oracle := path.DijkstraFrom(simple.Node(ids["0"]), dg)
		for _, v := range g.Nodes() {
			want := oracle.WeightTo(ids[v])
			w, ok := got[v]
			if math.IsInf(want, 1) {
				require.False(t, ok, "seed %d: %s", seed, v)
				continue
			}
			require.True(t, ok, "seed %d: %s", seed, v)
			require.Equal(t, int64(want), w, "seed %d: %s", seed, v)
		}
	}
}

func TestExport_NilGraph(t *testing.T) {
	_, _, err := gonumgraph.Export[string, int64](nil)
	require.ErrorIs(t, err, shortest.ErrNilGraph)
}
