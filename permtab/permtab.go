package permtab

import "math/rand"

// Size is the number of distinct entries; a Table is a permutation of
// [0, Size-1] mirrored into its upper half.
const Size = 256

// Table is a seed-derived permutation of [0,255] doubled to 512 entries:
// for every i in [0,255], Table[i+256] == Table[i]. The doubling lets callers
// chain lookups like t[t[x]+y] without masking intermediate sums.
type Table [2 * Size]int

// New builds the permutation table for seed.
//
// Construction fills 0..255 in order, shuffles with Fisher–Yates driven by a
// deterministic source initialized from seed, then mirrors the lower half
// into the upper half. Two calls with the same seed produce identical tables.
//
// Complexity: O(Size).
func New(seed uint64) *Table {
	rng := rand.New(rand.NewSource(int64(seed)))

	var t Table
	for i := 0; i < Size; i++ {
		t[i] = i
	}
	// Fisher–Yates over the lower half only; the upper half mirrors it.
	for i := Size - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		t[i], t[j] = t[j], t[i]
	}
	for i := 0; i < Size; i++ {
		t[Size+i] = t[i]
	}

	return &t
}
