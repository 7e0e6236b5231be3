package perlin

import (
	"math"

	"github.com/dorvarsul/terranoise/permtab"
)

// Generator produces improved Perlin noise from one owned permutation table.
// Immutable after New; safe for concurrent reads.
type Generator struct {
	perm *permtab.Table
}

// New returns a Generator whose permutation table derives from seed.
// Same seed ⇒ identical sampling behavior.
func New(seed uint64) *Generator {
	return &Generator{perm: permtab.New(seed)}
}

// Sample3 returns 3D Perlin noise at (x, y, z), normalized to [0,1].
//
// Complexity: O(1).
func (g *Generator) Sample3(x, y, z float64) float64 {
	p := g.perm

	// Unit cube containing the point; floor toward −∞ keeps negative
	// coordinates symmetric with positive ones.
	fx, fy, fz := math.Floor(x), math.Floor(y), math.Floor(z)
	xi := int(fx) & (permtab.Size - 1)
	yi := int(fy) & (permtab.Size - 1)
	zi := int(fz) & (permtab.Size - 1)

	// Fractional offsets within the cube.
	x -= fx
	y -= fy
	z -= fz

	u := fade(x)
	v := fade(y)
	w := fade(z)

	// Hash the 8 cube corners via two chained table lookups.
	a := p[xi] + yi
	aa := p[a] + zi
	ab := p[a+1] + zi
	b := p[xi+1] + yi
	ba := p[b] + zi
	bb := p[b+1] + zi

	res := lerp(w,
		lerp(v,
			lerp(u, grad(p[aa], x, y, z), grad(p[ba], x-1, y, z)),
			lerp(u, grad(p[ab], x, y-1, z), grad(p[bb], x-1, y-1, z))),
		lerp(v,
			lerp(u, grad(p[aa+1], x, y, z-1), grad(p[ba+1], x-1, y, z-1)),
			lerp(u, grad(p[ab+1], x, y-1, z-1), grad(p[bb+1], x-1, y-1, z-1))))

	return (res + 1) / 2
}

// Sample2 returns 2D Perlin noise at (x, y): the z=0 slice of Sample3.
func (g *Generator) Sample2(x, y float64) float64 {
	return g.Sample3(x, y, 0)
}

// Sample is the one-shot entry point: it builds a fresh Generator for seed
// and returns Sample3(x, y, z). Repeated calls with the same seed reconstruct
// an identical table, so results match a long-lived Generator exactly.
func Sample(x, y, z float64, seed uint64) float64 {
	return New(seed).Sample3(x, y, z)
}

// fade is Perlin's quintic curve 6t⁵ − 15t⁴ + 10t³; zero first and second
// derivatives at t=0 and t=1.
func fade(t float64) float64 {
	return t * t * t * (t*(t*6-15) + 10)
}

// lerp linearly interpolates between a and b by t.
func lerp(t, a, b float64) float64 {
	return a + t*(b-a)
}

// grad evaluates one of 16 gradient directions keyed on the low 4 bits of
// hash, dotted with the offset (x, y, z).
func grad(hash int, x, y, z float64) float64 {
	h := hash & 15
	u := x
	if h >= 8 {
		u = y
	}
	v := y
	if h >= 4 {
		if h == 12 || h == 14 {
			v = x
		} else {
			v = z
		}
	}
	if h&1 != 0 {
		u = -u
	}
	if h&2 != 0 {
		v = -v
	}
	return u + v
}
