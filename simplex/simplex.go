package simplex

import (
	"math"

	"github.com/dorvarsul/terranoise/permtab"
)

// Skew/unskew factors for the 2D simplex grid.
var (
	f2 = 0.5 * (math.Sqrt(3) - 1) // (√3−1)/2
	g2 = (3 - math.Sqrt(3)) / 6   // (3−√3)/6
)

// grad3 is the fixed gradient set: the 12 edge midpoints of a cube. Shared
// read-only by all Generators; only the x/y components matter in 2D.
var grad3 = [12][3]float64{
	{1, 1, 0}, {-1, 1, 0}, {1, -1, 0}, {-1, -1, 0},
	{1, 0, 1}, {-1, 0, 1}, {1, 0, -1}, {-1, 0, -1},
	{0, 1, 1}, {0, -1, 1}, {0, 1, -1}, {0, -1, -1},
}

// Generator produces 2D simplex noise from one owned permutation table.
// Immutable after New; safe for concurrent reads.
type Generator struct {
	perm *permtab.Table
}

// New returns a Generator whose permutation table derives from seed.
func New(seed uint64) *Generator {
	return &Generator{perm: permtab.New(seed)}
}

// Sample2 returns 2D simplex noise at (x, y), normalized to [0,1].
//
// Complexity: O(1).
func (g *Generator) Sample2(x, y float64) float64 {
	p := g.perm

	// Skew into simplex space to find the containing cell.
	s := (x + y) * f2
	i := fastFloor(x + s)
	j := fastFloor(y + s)

	// Unskew the cell origin back to (x, y) space.
	t := float64(i+j) * g2
	x0 := x - (float64(i) - t)
	y0 := y - (float64(j) - t)

	// Which triangle of the unit square: x0 > y0 is the lower one.
	var i1, j1 int
	if x0 > y0 {
		i1, j1 = 1, 0
	} else {
		i1, j1 = 0, 1
	}

	// Offsets of the middle and last corners in unskewed space.
	x1 := x0 - float64(i1) + g2
	y1 := y0 - float64(j1) + g2
	x2 := x0 - 1 + 2*g2
	y2 := y0 - 1 + 2*g2

	// Hashed gradient indices of the three corners.
	ii := i & (permtab.Size - 1)
	jj := j & (permtab.Size - 1)
	gi0 := p[ii+p[jj]] % 12
	gi1 := p[ii+i1+p[jj+j1]] % 12
	gi2 := p[ii+1+p[jj+1]] % 12

	// Corner contributions t⁴·(g·d); corners outside the influence radius
	// contribute zero.
	var n0, n1, n2 float64
	if t0 := 0.5 - x0*x0 - y0*y0; t0 > 0 {
		t0 *= t0
		n0 = t0 * t0 * dot2(grad3[gi0], x0, y0)
	}
	if t1 := 0.5 - x1*x1 - y1*y1; t1 > 0 {
		t1 *= t1
		n1 = t1 * t1 * dot2(grad3[gi1], x1, y1)
	}
	if t2 := 0.5 - x2*x2 - y2*y2; t2 > 0 {
		t2 *= t2
		n2 = t2 * t2 * dot2(grad3[gi2], x2, y2)
	}

	return (70*(n0+n1+n2) + 1) / 2
}

// Sample is the one-shot entry point: it builds a fresh Generator for seed
// and returns Sample2(x, y).
func Sample(x, y float64, seed uint64) float64 {
	return New(seed).Sample2(x, y)
}

// fastFloor floors toward negative infinity without a math.Floor call.
func fastFloor(x float64) int {
	xi := int(x)
	if x < float64(xi) {
		return xi - 1
	}
	return xi
}

// dot2 is the 2D dot product of a gradient vector with (x, y).
func dot2(g [3]float64, x, y float64) float64 {
	return g[0]*x + g[1]*y
}
