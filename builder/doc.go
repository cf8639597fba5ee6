// Package builder constructs deterministic core.Graph fixtures: paths, cycles,
// grids, complete graphs and seeded random sparse graphs.
//
// Compose constructors with BuildGraph:
//
//	g, err := builder.BuildGraph[int64](
//	    []core.GraphOption{core.WithDirected(true)},
//	    []builder.BuilderOption{builder.WithSeed(42), builder.WithIntUniformWeight(1, 9)},
//	    builder.RandomSparse[int64](20, 0.2),
//	)
//
// Determinism: the same options, seed and constructor order always produce
// the same vertices, edges, edge IDs and weights.
//
// Vertex IDs come from the configured IDFn (decimal by default), except Grid,
// which always uses "r,c" so that GridCoord can recover coordinates.
//
// Errors: ErrTooFewVertices, ErrInvalidProbability, ErrNeedRandSource and
// ErrConstructFailed, wrapped with the constructor name.
package builder
