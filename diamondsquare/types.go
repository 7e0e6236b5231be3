// Package diamondsquare defines options, errors, and the Heightmap read
// surface for the Diamond-Square generator.
package diamondsquare

import "errors"

// Sentinel errors for diamondsquare operations.
var (
	// ErrBadSize indicates a grid size that is not 2^n+1 for some n ≥ 1.
	ErrBadSize = errors.New("diamondsquare: size must be 2^n+1 for some n ≥ 1 (3, 5, 9, ..., 257, ...)")
)

// normalizeEpsilon is the minimum value spread required before the grid is
// rescaled to [0,1]; flatter grids keep their raw values.
const normalizeEpsilon = 1e-4

// Options contains tunable parameters for heightmap generation.
type Options struct {
	// Roughness controls how fast the random-displacement range decays across
	// step sizes (range shrinks by 2^(−Roughness) per step). Larger values
	// collapse amplitude faster and produce flatter, less jagged terrain.
	Roughness float64
	// Wrap makes square-pass neighbor reads wrap around the grid edges,
	// producing a seamlessly tileable heightmap.
	Wrap bool
}

// DefaultOptions returns Options with Roughness=0.5 and wrapping disabled.
func DefaultOptions() Options {
	return Options{Roughness: 0.5}
}

// Heightmap is a finished square grid of heights, row-major, immutable after
// Generate returns it.
type Heightmap struct {
	size  int
	wrap  bool
	cells []float64 // cells[y*size+x]
}

// Size returns the grid side length.
func (h *Heightmap) Size() int { return h.size }

// At returns the height at (x, y). Out-of-range coordinates return 0 when
// wrapping is disabled, or the wrapped in-range value when enabled.
//
// Complexity: O(1).
func (h *Heightmap) At(x, y int) float64 {
	if h.wrap {
		x = ((x % h.size) + h.size) % h.size
		y = ((y % h.size) + h.size) % h.size
	}
	if x < 0 || x >= h.size || y < 0 || y >= h.size {
		return 0
	}
	return h.cells[y*h.size+x]
}

// Cells returns the backing row-major slice by reference: cells[y*Size()+x].
// Callers must treat it as read-only.
func (h *Heightmap) Cells() []float64 { return h.cells }

// validSize reports whether size is 2^n+1 for some n ≥ 1.
func validSize(size int) bool {
	if size < 3 {
		return false
	}
	n := size - 1
	return n&(n-1) == 0
}
