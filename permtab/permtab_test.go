package permtab_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dorvarsul/terranoise/permtab"
)

// TestNew_IsPermutation verifies that the lower half holds every value in
// [0,255] exactly once.
func TestNew_IsPermutation(t *testing.T) {
	tab := permtab.New(12345)

	seen := make(map[int]int, permtab.Size)
	for i := 0; i < permtab.Size; i++ {
		v := tab[i]
		require.GreaterOrEqual(t, v, 0, "entry %d below range", i)
		require.Less(t, v, permtab.Size, "entry %d above range", i)
		seen[v]++
	}
	assert.Len(t, seen, permtab.Size, "every value 0..255 must appear exactly once")
}

// TestNew_DoubledHalf verifies the wrap-avoidance mirror: Table[i+256] == Table[i].
func TestNew_DoubledHalf(t *testing.T) {
	tab := permtab.New(7)
	for i := 0; i < permtab.Size; i++ {
		assert.Equal(t, tab[i], tab[permtab.Size+i], "mirror mismatch at %d", i)
	}
}

// TestNew_Deterministic verifies bit-identical tables for a fixed seed,
// including seed 0.
func TestNew_Deterministic(t *testing.T) {
	for _, seed := range []uint64{0, 1, 42, 1 << 40, ^uint64(0)} {
		a := permtab.New(seed)
		b := permtab.New(seed)
		assert.Equal(t, a, b, "seed %d must reproduce the same table", seed)
	}
}

// TestNew_SeedsDecorrelate checks that distinct seeds give distinct tables.
// Collisions are astronomically unlikely for these fixed seeds; a failure
// here means the seed is not reaching the shuffle.
func TestNew_SeedsDecorrelate(t *testing.T) {
	a := permtab.New(1)
	b := permtab.New(2)
	assert.NotEqual(t, a, b, "seeds 1 and 2 should produce different tables")
}
