// Package terranoise is a deterministic, seedable procedural-noise toolkit —
// scalar gradient noise and fractal heightmaps with a strict
// same-seed ⇒ same-output contract.
//
// 🚀 What is terranoise?
//
//	A pure-Go noise library that brings together:
//		• Perlin noise: classic improved 3D gradient noise (2D as a z=0 slice)
//		• Simplex noise: 2D simplex-grid gradient noise, fixed 12-vector gradient set
//		• FBM: generic multi-octave fractal Brownian motion over any 2D sampler
//		• Diamond-Square: fractal midpoint-displacement heightmap generation
//		• Permutation tables: seed-derived shuffled lookup tables shared by the
//		  gradient-noise generators
//
// ✨ Why choose terranoise?
//
//   - Reproducible – every generator owns its seed; same seed, bit-identical output
//   - Parallel-friendly – instances share no mutable state; run as many as you like
//   - Pure Go – no cgo, no GPU, no hidden process-wide randomness
//   - Honest errors – invalid configuration is rejected at the boundary, never
//     papered over with a malformed grid
//
// Everything is organized under five subpackages:
//
//	permtab/       — seed-derived permutation tables (leaf, shared by perlin & simplex)
//	perlin/        — improved Perlin gradient noise, Sample2/Sample3
//	simplex/       — 2D simplex gradient noise
//	fbm/           — octave-summation combinator + Perlin/Simplex convenience forms
//	diamondsquare/ — heightmap grids via fractal midpoint displacement
//
// Quick ASCII example:
//
//	seed 42 ──► perlin.New ──► Sample2(x, y) ∈ [0,1]
//	seed 42 ──► diamondsquare.Generate(129, 0.5, 42, false) ──► 129×129 grid ∈ [0,1]
//
// The cmd/terrainmap tool renders any generator to a grayscale PNG and can
// snapshot raw grids; examples/ holds runnable scenarios.
//
//	go get github.com/dorvarsul/terranoise
package terranoise
