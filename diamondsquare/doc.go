// Package diamondsquare builds square heightmaps by fractal midpoint
// displacement (the Diamond-Square algorithm).
//
// What:
//
//   - Generator owns a size×size grid and a seeded random source; Generate
//     runs the full displacement pipeline and returns the finished Heightmap.
//   - Generate (package-level) is the one-shot form:
//     Generate(size, roughness, seed, wrap).
//   - Heightmap is the read surface: At(x, y), Size(), Cells().
//
// How:
//
//  1. Seed the four grid corners with uniform values in [−1,1].
//  2. For stepSize = size−1 down to 2, halving each round:
//     a diamond pass sets each square center to the mean of its four diagonal
//     corners plus a uniform offset in [−randomRange, +randomRange]; then a
//     square pass sets each diamond center to the mean of its 2–4 orthogonal
//     neighbors (all 4, wrapped, when edge wrapping is on) plus the same
//     offset policy. After both passes randomRange shrinks by 2^(−roughness).
//  3. Normalize the grid to [0,1], unless max−min ≤ 1e−4 (degenerate flat
//     terrain keeps its raw values).
//
// Ordering invariant: the diamond pass of a step completes before the square
// pass of the same step, and all writes at step s complete before any read at
// step s/2 — square-pass averages read values the diamond pass just wrote.
// The pipeline runs the passes strictly in sequence.
//
// Options:
//
//   - Options.Roughness: decay rate of the displacement range; larger values
//     collapse amplitude faster and yield flatter terrain. Default 0.5.
//   - Options.Wrap: wrap edge neighbors around the grid for seamless tiling.
//
// Errors:
//
//   - ErrBadSize: size is not 2^n+1 for some n ≥ 1. Rejected at construction
//     rather than silently producing a malformed grid.
//
// Determinism: the random source is owned by the Generator and every draw
// happens in a fixed order, so a seed fully determines the grid.
//
// Complexity: Generate is O(size²) time and memory.
package diamondsquare
