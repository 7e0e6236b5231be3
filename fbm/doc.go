// Package fbm layers multiple noise octaves into fractal Brownian motion:
// each octave samples at a higher frequency and lower amplitude, and the
// weighted sum is divided by the total amplitude.
//
// What:
//
//   - Sum applies the combinator to any Sampler2D.
//   - Perlin and Simplex are convenience forms that build a fresh seeded
//     generator per call and feed its Sample2 into Sum.
//   - Options carries Octaves, Persistence, and Lacunarity;
//     DefaultOptions() is 4 / 0.5 / 2.0.
//
// Range:
//
//   - The result is an amplitude-weighted average of per-octave samples, not
//     a re-normalized clamp. Since terranoise samplers emit [0,1], the
//     average stays within [0,1] up to floating-point rounding; marginal
//     excursions at extreme parameter combinations are possible and are a
//     documented characteristic, not an error. No clamping is applied.
//
// Errors:
//
//   - ErrBadOctaves: Octaves < 1.
//   - ErrNilSampler: Sum received a nil Sampler2D.
//
// Complexity: O(octaves) samples per call; the convenience forms add one
// permutation-table build (O(256)) per call.
package fbm
