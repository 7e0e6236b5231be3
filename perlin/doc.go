// Package perlin implements classic improved Perlin gradient noise
// (Ken Perlin, 2002) in three dimensions, with 2D as a z=0 slice.
//
// What:
//
//   - Generator owns one seed-derived permutation table and is stateless
//     otherwise; sampling is a pure function of the coordinates.
//   - Sample3(x, y, z) returns a scalar in [0,1]; Sample2(x, y) is
//     Sample3(x, y, 0).
//   - Sample(x, y, z, seed) is the one-shot form: it builds a Generator for
//     seed and samples once.
//
// How:
//
//   - Locate the unit lattice cube around the point (floor toward −∞, mask
//     to 255), fade the fractional offsets with the quintic
//     6t⁵ − 15t⁴ + 10t³, hash the 8 cube corners through two chained
//     permutation lookups, evaluate the 16-case gradient function at each
//     corner, and trilinearly interpolate. Raw output in [−1,1] is mapped to
//     [0,1] via (v+1)/2.
//
// Guarantees:
//
//   - Deterministic: same (seed, coordinates) ⇒ bit-identical output.
//   - Any finite coordinates are valid, negative included; lattice indexing
//     floors toward negative infinity, so negative coordinates behave
//     symmetrically with positive ones.
//   - No error conditions, no panics, no shared mutable state; independent
//     Generators may sample concurrently.
//
// Complexity: O(1) per sample, zero allocations.
package perlin
