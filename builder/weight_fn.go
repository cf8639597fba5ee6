// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"
	"math"
	"math/rand"
)

// DefaultEdgeWeight is the weight assigned to each edge when no custom
// WeightFn is provided.
const DefaultEdgeWeight float64 = 1

// WeightFn produces an edge weight given an optional *rand.Rand source.
// It must be deterministic for a given RNG seed. Results are converted to the
// graph's weight type, so integer graphs should use integral generators.
type WeightFn func(rng *rand.Rand) float64

// DefaultWeightFn always returns DefaultEdgeWeight.
func DefaultWeightFn(_ *rand.Rand) float64 { return DefaultEdgeWeight }

// ConstantWeightFn returns a WeightFn that always yields value.
// Negative values are allowed: they feed negative-weight fixtures.
func ConstantWeightFn(value float64) WeightFn {
	return func(_ *rand.Rand) float64 { return value }
}

// UniformWeightFn samples uniformly in [min, max). With a nil rng it falls back
// to DefaultEdgeWeight. Panics if max < min.
func UniformWeightFn(min, max float64) WeightFn {
	if max < min {
		panic(fmt.Sprintf("UniformWeightFn: require min ≤ max, got min=%g, max=%g", min, max))
	}

	return func(rng *rand.Rand) float64 {
		if rng == nil {
			return DefaultEdgeWeight
		}
		if max == min {
			return min
		}

		return min + rng.Float64()*(max-min)
	}
}

// IntUniformWeightFn samples integers uniformly in [min, max] inclusive.
// With a nil rng it falls back to DefaultEdgeWeight. Panics if max < min.
func IntUniformWeightFn(min, max int64) WeightFn {
	if max < min {
		panic(fmt.Sprintf("IntUniformWeightFn: require min ≤ max, got min=%d, max=%d", min, max))
	}

	return func(rng *rand.Rand) float64 {
		if rng == nil {
			return DefaultEdgeWeight
		}

		return float64(min + rng.Int63n(max-min+1))
	}
}

// ExponentialWeightFn samples Exp(rate), rounded to the nearest integer.
// With a nil rng it falls back to DefaultEdgeWeight. Panics if rate ≤ 0.
func ExponentialWeightFn(rate float64) WeightFn {
	if rate <= 0 {
		panic(fmt.Sprintf("ExponentialWeightFn: rate must be > 0, got %f", rate))
	}

	return func(rng *rand.Rand) float64 {
		if rng == nil {
			return DefaultEdgeWeight
		}

		return math.Round(rng.ExpFloat64() / rate)
	}
}

// WithConstantWeight sets a fixed edge weight via ConstantWeightFn.
func WithConstantWeight(w float64) BuilderOption { return WithWeightFn(ConstantWeightFn(w)) }

// WithUniformWeight sets weights ∼ U[min,max) via UniformWeightFn.
func WithUniformWeight(min, max float64) BuilderOption {
	return WithWeightFn(UniformWeightFn(min, max))
}

// WithIntUniformWeight sets integer weights ∼ U{min..max} via IntUniformWeightFn.
func WithIntUniformWeight(min, max int64) BuilderOption {
	return WithWeightFn(IntUniformWeightFn(min, max))
}
