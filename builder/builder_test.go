package builder_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlath-paths/builder"
	"github.com/katalvlaran/lvlath-paths/core"
)

// edgeKey identifies an edge by its endpoints.
type edgeKey struct{ U, V string }

func edgeWeights(g *core.Graph[int64]) map[edgeKey]int64 {
	m := make(map[edgeKey]int64)
	for _, e := range g.Edges() {
		m[edgeKey{U: e.From, V: e.To}] = e.Weight
	}

	return m
}

// TestBuilders_Functional runs table-driven topology checks for each constructor.
func TestBuilders_Functional(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		ctor        builder.Constructor[int64]
		wantV       int
		wantE       int
		sampleCheck func(t *testing.T, g *core.Graph[int64])
	}{
		{
			name: "Cycle(5)", ctor: builder.Cycle[int64](5), wantV: 5, wantE: 5,
			sampleCheck: func(t *testing.T, g *core.Graph[int64]) {
				edges := edgeWeights(g)
				for i := 0; i < 5; i++ {
					k := edgeKey{fmt.Sprint(i), fmt.Sprint((i + 1) % 5)}
					assert.Equal(t, int64(1), edges[k], "edge %v", k)
				}
			},
		},
		{
			name: "Path(4)", ctor: builder.Path[int64](4), wantV: 4, wantE: 3,
			sampleCheck: func(t *testing.T, g *core.Graph[int64]) {
				assert.True(t, g.HasEdge("0", "1"))
				assert.True(t, g.HasEdge("3", "2"), "undirected by default")
			},
		},
		{name: "Complete(4)", ctor: builder.Complete[int64](4), wantV: 4, wantE: 6},
		{
			name: "Grid(2,3)", ctor: builder.Grid[int64](2, 3), wantV: 6, wantE: 7,
			sampleCheck: func(t *testing.T, g *core.Graph[int64]) {
				assert.True(t, g.HasEdge("0,0", "0,1"))
				assert.True(t, g.HasEdge("0,2", "1,2"))
				assert.False(t, g.HasEdge("0,0", "1,1"))
			},
		},
		{name: "RandomSparse(6,1)", ctor: builder.RandomSparse[int64](6, 1), wantV: 6, wantE: 15},
		{name: "RandomSparse(6,0)", ctor: builder.RandomSparse[int64](6, 0), wantV: 6, wantE: 0},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			g, err := builder.BuildGraph[int64](nil, nil, tc.ctor)
			require.NoError(t, err)
			assert.Equal(t, tc.wantV, g.VertexCount())
			assert.Equal(t, tc.wantE, g.EdgeCount())
			if tc.sampleCheck != nil {
				tc.sampleCheck(t, g)
			}
		})
	}
}

func TestBuilders_Directed(t *testing.T) {
	g, err := builder.BuildGraph[int64]([]core.GraphOption{core.WithDirected(true)}, nil,
		builder.Complete[int64](3), builder.Grid[int64](1, 1))
	require.NoError(t, err)
	assert.Equal(t, 6, g.EdgeCount(), "K3 directed has both arcs per pair")
	assert.Equal(t, 4, g.VertexCount())

	g, err = builder.BuildGraph[int64]([]core.GraphOption{core.WithDirected(true)}, nil, builder.Grid[int64](2, 2))
	require.NoError(t, err)
	assert.Equal(t, 8, g.EdgeCount())
	assert.True(t, g.HasEdge("1,0", "0,0"))
}

func TestBuilders_Errors(t *testing.T) {
	tests := []struct {
		name string
		ctor builder.Constructor[int64]
		want error
	}{
		{"PathTooSmall", builder.Path[int64](1), builder.ErrTooFewVertices},
		{"CycleTooSmall", builder.Cycle[int64](2), builder.ErrTooFewVertices},
		{"CompleteTooSmall", builder.Complete[int64](0), builder.ErrTooFewVertices},
		{"GridTooSmall", builder.Grid[int64](0, 3), builder.ErrTooFewVertices},
		{"SparseBadP", builder.RandomSparse[int64](3, 1.5), builder.ErrInvalidProbability},
		{"SparseNoRNG", builder.RandomSparse[int64](3, 0.5), builder.ErrNeedRandSource},
		{"NilConstructor", nil, builder.ErrConstructFailed},
	}
	for _, tc := range tests {
		_, err := builder.BuildGraph[int64](nil, nil, tc.ctor)
		require.ErrorIs(t, err, tc.want, tc.name)
	}
}

func TestRandomSparse_Deterministic(t *testing.T) {
	build := func() *core.Graph[int64] {
		g, err := builder.BuildGraph[int64](
			[]core.GraphOption{core.WithDirected(true)},
			[]builder.BuilderOption{builder.WithSeed(7), builder.WithIntUniformWeight(1, 9)},
			builder.RandomSparse[int64](12, 0.3),
		)
		require.NoError(t, err)

		return g
	}
	a, b := build(), build()
	require.Equal(t, a.Edges(), b.Edges())
	for _, e := range a.Edges() {
		require.GreaterOrEqual(t, e.Weight, int64(1))
		require.LessOrEqual(t, e.Weight, int64(9))
	}
}

func TestIDSchemesAndWeights(t *testing.T) {
	g, err := builder.BuildGraph[float64](nil,
		[]builder.BuilderOption{builder.WithSymbolIDs(), builder.WithConstantWeight(2.5)},
		builder.Path[float64](3))
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C"}, g.Vertices())
	for _, e := range g.Edges() {
		assert.Equal(t, 2.5, e.Weight)
	}

	assert.Equal(t, "AA", builder.ExcelColumnIDFn(26))
	assert.Equal(t, "v3", builder.SymbolNumberIDFn("v")(3))
	assert.Panics(t, func() { builder.SymbolIDFn(26) })
	assert.Panics(t, func() { builder.WithIDScheme(nil) })
	assert.Panics(t, func() { builder.UniformWeightFn(2, 1) })

	r, c, ok := builder.GridCoord(builder.GridID(3, 4))
	assert.True(t, ok)
	assert.Equal(t, [2]int{3, 4}, [2]int{r, c})
	_, _, ok = builder.GridCoord("x")
	assert.False(t, ok)
}
