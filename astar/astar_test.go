package astar_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlath-paths/astar"
	"github.com/katalvlaran/lvlath-paths/builder"
	"github.com/katalvlaran/lvlath-paths/core"
	"github.com/katalvlaran/lvlath-paths/dijkstra"
	"github.com/katalvlaran/lvlath-paths/internal/fixture"
	"github.com/katalvlaran/lvlath-paths/shortest"
)

type recorder struct{ stats []shortest.Stats }

func (r *recorder) Start(ctx context.Context, _ string) context.Context { return ctx }
func (r *recorder) Finish(_ context.Context, s shortest.Stats)          { r.stats = append(r.stats, s) }

// manhattan returns an admissible grid heuristic towards target for graphs
// whose every edge weighs at least minW.
func manhattan(target string, minW int64) astar.Heuristic[string, int64] {
	tr, tc, _ := builder.GridCoord(target)

	return func(node string) int64 {
		r, c, ok := builder.GridCoord(node)
		if !ok {
			return 0
		}

		return int64(abs(r-tr)+abs(c-tc)) * minW
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}

	return x
}

func grid(t *testing.T, rows, cols int, seed int64) *core.Graph[int64] {
	t.Helper()
	g, err := builder.BuildGraph[int64](nil,
		[]builder.BuilderOption{builder.WithSeed(seed), builder.WithIntUniformWeight(1, 9)},
		builder.Grid[int64](rows, cols))
	require.NoError(t, err)

	return g
}

func routes(t *testing.T, a *astar.AStar[string, int64], g shortest.Graph[string, int64]) []shortest.Route[string, int64] {
	t.Helper()
	seq, err := a.EveryPath(g)
	require.NoError(t, err)
	var out []shortest.Route[string, int64]
	for r := range seq {
		out = append(out, r)
	}

	return out
}

func TestAStar_Validation(t *testing.T) {
	g := core.NewGraph[int64]()
	_, err := g.AddEdge("A", "B", 1)
	require.NoError(t, err)
	neg := core.NewGraph[int64](core.WithDirected(true))
	_, _ = neg.AddEdge("A", "B", -1)

	tests := []struct {
		name string
		a    *astar.AStar[string, int64]
		g    shortest.Graph[string, int64]
		want error
	}{
		{"NilGraph", astar.New("A", "B", astar.Zero[string, int64]()), nil, shortest.ErrNilGraph},
		{"SourceNotFound", astar.New("X", "B", astar.Zero[string, int64]()), g, shortest.ErrSourceNotFound},
		{"TargetNotFound", astar.New("A", "X", astar.Zero[string, int64]()), g, shortest.ErrTargetNotFound},
		{"NilHeuristic", astar.New[string, int64]("A", "B", nil), g, shortest.ErrNilHeuristic},
		{"Inadmissible", astar.New("A", "B", astar.Heuristic[string, int64](func(string) int64 { return 1 })), g, shortest.ErrInadmissibleHeuristic},
		{"NegativeWeight", astar.New("A", "B", astar.Zero[string, int64]()), neg, shortest.ErrNegativeWeight},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			seq, err := tc.a.EveryPath(tc.g)
			require.ErrorIs(t, err, tc.want)
			require.Nil(t, seq)
			_, err = tc.a.EveryDistance(tc.g)
			require.ErrorIs(t, err, tc.want)
		})
	}
}

func TestAStar_YieldsOnlyTarget(t *testing.T) {
	f, err := fixture.Load("scenario")
	require.NoError(t, err)
	g, err := fixture.Build[int64](f)
	require.NoError(t, err)

	got := routes(t, astar.New("A", "D", astar.Zero[string, int64]()), g)
	require.Len(t, got, 1)
	assert.Equal(t, "A→B→C→D (cost 4)", got[0].String())

	self := routes(t, astar.New("C", "C", astar.Zero[string, int64]()), g)
	require.Len(t, self, 1)
	assert.Equal(t, []string{"C"}, self[0].Path().Nodes())
	assert.True(t, self[0].Cost().IsZero())
}

func TestAStar_UnreachableTarget(t *testing.T) {
	f, err := fixture.Load("disconnected")
	require.NoError(t, err)
	g, err := fixture.Build[int64](f)
	require.NoError(t, err)

	rec := &recorder{}
	got := routes(t, astar.New("A", "E", astar.Zero[string, int64](), shortest.WithObserver(rec)), g)
	assert.Empty(t, got)
	require.Len(t, rec.stats, 1)
	assert.Equal(t, 0, rec.stats[0].Yielded)
	assert.Equal(t, 2, rec.stats[0].Settled, "A and B are explored before giving up")
	assert.NoError(t, rec.stats[0].Err)

	_, ok := shortest.PathBetween[string, int64](astar.New("A", "E", astar.Zero[string, int64]()), g, "A", "E")
	assert.False(t, ok)
}

func TestAStar_MatchesDijkstra(t *testing.T) {
	for seed := int64(1); seed <= 5; seed++ {
		g := grid(t, 8, 8, seed)
		dist, err := dijkstra.New[string, int64]("0,0").Distances(g)
		require.NoError(t, err)

		for _, target := range []string{"7,7", "3,5", "0,0", "6,1"} {
			for name, h := range map[string]astar.Heuristic[string, int64]{
				"zero":      astar.Zero[string, int64](),
				"manhattan": manhattan(target, 1),
			} {
				r, ok := shortest.PathBetween[string, int64](astar.New("0,0", target, h), g, "0,0", target)
				require.True(t, ok, "seed=%d target=%s h=%s", seed, target, name)
				assert.Equal(t, dist[target], r.Cost().Value(), "seed=%d target=%s h=%s", seed, target, name)
				assert.Equal(t, "0,0", r.Source())
				assert.Equal(t, target, r.Target())
			}
		}
	}
}

func TestAStar_DistanceMatchesPath(t *testing.T) {
	g := grid(t, 5, 5, 42)
	a := astar.New("0,0", "4,4", manhattan("4,4", 1))

	r, ok := shortest.PathBetween[string, int64](a, g, "0,0", "4,4")
	require.True(t, ok)
	c, ok := shortest.DistanceBetween[string, int64](a, g, "0,0", "4,4")
	require.True(t, ok)
	assert.Equal(t, r.Cost(), c)
	assert.GreaterOrEqual(t, r.Path().Hops(), 8, "opposite corners of a 5×5 grid are 8 hops apart")
}

func TestAStar_SettlesFewerThanDijkstra(t *testing.T) {
	// Unit weights: Manhattan distance is exact, so A* keeps to row 10 while
	// Dijkstra floods a diamond of radius 19.
	g, err := builder.BuildGraph[int64](nil, nil, builder.Grid[int64](20, 20))
	require.NoError(t, err)

	dRec, aRec := &recorder{}, &recorder{}
	_, ok := shortest.PathBetween[string, int64](dijkstra.New[string, int64]("10,0", shortest.WithObserver(dRec)), g, "10,0", "10,19")
	require.True(t, ok)
	r, ok := shortest.PathBetween[string, int64](astar.New("10,0", "10,19", manhattan("10,19", 1), shortest.WithObserver(aRec)), g, "10,0", "10,19")
	require.True(t, ok)
	assert.Equal(t, int64(19), r.Cost().Value())

	require.Len(t, dRec.stats, 1)
	require.Len(t, aRec.stats, 1)
	assert.Equal(t, astar.Name, aRec.stats[0].Algorithm)
	assert.Less(t, aRec.stats[0].Settled, dRec.stats[0].Settled)
}

func TestAStar_FloatWeights(t *testing.T) {
	g := core.NewGraph[float64]()
	_, _ = g.AddEdge("A", "B", 1.5)
	_, _ = g.AddEdge("B", "C", 1.5)
	_, _ = g.AddEdge("A", "C", 3.5)

	a := astar.New("A", "C", astar.Zero[string, float64]())
	seq, err := a.EveryDistance(g)
	require.NoError(t, err)
	var got []shortest.DirectRoute[string, float64]
	for d := range seq {
		got = append(got, d)
	}
	require.Len(t, got, 1)
	assert.InDelta(t, 3.0, got[0].Cost().Value(), 1e-12)
	assert.Equal(t, "A", a.Source())
	assert.Equal(t, "C", a.Target())
}
