package fbm

import (
	"errors"

	"github.com/dorvarsul/terranoise/perlin"
	"github.com/dorvarsul/terranoise/simplex"
)

// Sentinel errors for fbm operations.
var (
	// ErrBadOctaves indicates Options.Octaves < 1.
	ErrBadOctaves = errors.New("fbm: octaves must be at least 1")
	// ErrNilSampler indicates Sum was given a nil sampler.
	ErrNilSampler = errors.New("fbm: sampler must be non-nil")
)

// Sampler2D is any single-sample 2D noise function. Both
// (*perlin.Generator).Sample2 and (*simplex.Generator).Sample2 satisfy it.
type Sampler2D func(x, y float64) float64

// Options tunes the octave summation.
//
// Fields:
//   - Octaves     — number of layers combined; must be ≥ 1.
//   - Persistence — per-octave amplitude multiplier (< 1 damps higher octaves).
//   - Lacunarity  — per-octave frequency multiplier (> 1 samples finer detail).
type Options struct {
	Octaves     int
	Persistence float64
	Lacunarity  float64
}

// DefaultOptions returns the conventional FBM parameters:
// Octaves=4, Persistence=0.5, Lacunarity=2.0.
func DefaultOptions() Options {
	return Options{
		Octaves:     4,
		Persistence: 0.5,
		Lacunarity:  2.0,
	}
}

// Sum accumulates opts.Octaves samples of sample at geometrically increasing
// frequency and decreasing amplitude, and returns the amplitude-weighted
// average:
//
//	total    = Σ sample(x·fᵢ, y·fᵢ) · aᵢ
//	result   = total / Σ aᵢ
//
// with f₀=1, a₀=1, aᵢ₊₁=aᵢ·Persistence, fᵢ₊₁=fᵢ·Lacunarity.
// With Octaves=1 the result equals sample(x, y) exactly.
//
// Returns ErrNilSampler or ErrBadOctaves on invalid configuration.
//
// Complexity: O(Octaves).
func Sum(sample Sampler2D, x, y float64, opts Options) (float64, error) {
	if sample == nil {
		return 0, ErrNilSampler
	}
	if opts.Octaves < 1 {
		return 0, ErrBadOctaves
	}

	var (
		total     float64
		maxValue  float64
		amplitude = 1.0
		frequency = 1.0
	)
	for i := 0; i < opts.Octaves; i++ {
		total += sample(x*frequency, y*frequency) * amplitude
		maxValue += amplitude
		amplitude *= opts.Persistence
		frequency *= opts.Lacunarity
	}

	return total / maxValue, nil
}

// Perlin combines opts.Octaves layers of Perlin noise for seed. A fresh
// generator (hence a fresh permutation table) is built per call, so repeated
// calls with the same seed are bit-identical.
func Perlin(x, y float64, opts Options, seed uint64) (float64, error) {
	return Sum(perlin.New(seed).Sample2, x, y, opts)
}

// Simplex combines opts.Octaves layers of simplex noise for seed, with the
// same per-call generator policy as Perlin.
func Simplex(x, y float64, opts Options, seed uint64) (float64, error) {
	return Sum(simplex.New(seed).Sample2, x, y, opts)
}
