// Package permtab builds seed-derived permutation tables — the shared leaf
// dependency of the perlin and simplex gradient-noise generators.
//
// What:
//
//   - Table is a permutation of [0,255], doubled to 512 entries so that
//     Table[i+256] == Table[i] and chained lookups never branch on wrap-around.
//   - New(seed) fills 0..255 in order, then applies a Fisher–Yates shuffle
//     driven by a seed-initialized deterministic source.
//
// Why:
//
//   - Gradient noise hashes lattice coordinates through the table to
//     decorrelate gradient selection from raw coordinates.
//   - Owning the table per generator instance keeps seed changes explicit and
//     removes hidden process-wide state.
//
// Guarantees:
//
//   - Same seed ⇒ bit-identical table, across runs and across processes.
//   - The full uint64 seed space is valid, including 0.
//   - A Table is immutable after construction; sharing one read-only across
//     goroutines is safe.
//
// Complexity:
//
//   - New: O(256) time, O(512) memory.
//   - Lookup: O(1), plain array indexing.
package permtab
