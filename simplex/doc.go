// Package simplex implements 2D simplex-grid gradient noise
// (Gustavson's formulation) over a fixed 12-vector gradient set.
//
// What:
//
//   - Generator owns one seed-derived permutation table; Sample2(x, y)
//     returns a scalar in [0,1].
//   - Sample(x, y, seed) is the one-shot form.
//
// How:
//
//   - Skew the input point into simplex space with F2 = (√3−1)/2, unskew the
//     containing cell origin with G2 = (3−√3)/6, pick the triangle of the
//     unit square from the local offsets (x0 > y0 selects the lower one),
//     then sum the three corner contributions t⁴·(g·d) where
//     t = 0.5 − dx² − dy², clamped to zero outside the influence radius.
//     The sum is scaled by 70 and mapped to [0,1] via (70·sum + 1)/2.
//   - Cell indexing uses fast-floor semantics (floor toward −∞), so negative
//     coordinates are handled symmetrically with positive ones.
//
// Guarantees:
//
//   - Deterministic: same (seed, coordinates) ⇒ bit-identical output.
//   - No error conditions, no panics; independent Generators may sample
//     concurrently.
//
// Complexity: O(1) per sample, zero allocations.
package simplex
