package diamondsquare

import (
	"math"
	"math/rand"
)

// Generator runs the Diamond-Square pipeline over one owned grid. The random
// source belongs exclusively to the instance, so runs are reproducible and
// independent of each other.
type Generator struct {
	size  int
	rough float64
	wrap  bool
	rng   *rand.Rand
	cells []float64 // row-major, cells[y*size+x]
}

// New allocates a size×size zero grid for the given seed and options.
// Returns ErrBadSize unless size is 2^n+1 for some n ≥ 1.
//
// Complexity: O(size²) memory.
func New(size int, seed uint64, opts Options) (*Generator, error) {
	if !validSize(size) {
		return nil, ErrBadSize
	}
	return &Generator{
		size:  size,
		rough: opts.Roughness,
		wrap:  opts.Wrap,
		rng:   rand.New(rand.NewSource(int64(seed))),
		cells: make([]float64, size*size),
	}, nil
}

// Generate runs the full pipeline — corner seeding, the step-size loop of
// diamond and square passes, and normalization — and returns the finished
// Heightmap. The passes run strictly in sequence: square-pass averages read
// values the diamond pass of the same step just wrote.
//
// Complexity: O(size²) time.
func (g *Generator) Generate() *Heightmap {
	g.seedCorners()

	randomRange := 1.0
	for step := g.size - 1; step > 1; step /= 2 {
		g.diamondPass(step, randomRange)
		g.squarePass(step, randomRange)
		randomRange *= math.Pow(2, -g.rough)
	}

	g.normalize()

	return &Heightmap{size: g.size, wrap: g.wrap, cells: g.cells}
}

// Generate is the one-shot entry point: construct, run, and return the grid.
// Fails with ErrBadSize before any work when size is not 2^n+1.
func Generate(size int, roughness float64, seed uint64, wrap bool) (*Heightmap, error) {
	g, err := New(size, seed, Options{Roughness: roughness, Wrap: wrap})
	if err != nil {
		return nil, err
	}
	return g.Generate(), nil
}

// seedCorners assigns the four grid corners independent uniform values in
// [−1,1]. Draw order is fixed — (0,0), (size−1,0), (0,size−1),
// (size−1,size−1) — and part of the determinism contract.
func (g *Generator) seedCorners() {
	last := g.size - 1
	g.set(0, 0, g.displace(1))
	g.set(last, 0, g.displace(1))
	g.set(0, last, g.displace(1))
	g.set(last, last, g.displace(1))
}

// diamondPass sets every cell at the center of a step×step square to the
// average of its four diagonal corners plus a random offset.
func (g *Generator) diamondPass(step int, randomRange float64) {
	half := step / 2
	for y := half; y < g.size; y += step {
		for x := half; x < g.size; x += step {
			avg := (g.at(x-half, y-half) +
				g.at(x+half, y-half) +
				g.at(x-half, y+half) +
				g.at(x+half, y+half)) / 4
			g.set(x, y, avg+g.displace(randomRange))
		}
	}
}

// squarePass sets every remaining midpoint (diamond center) to the average
// of its orthogonal neighbors at distance step/2. Without wrapping, edge
// cells average only their 2 or 3 in-bounds neighbors; with wrapping all
// four neighbors are read modulo the grid.
func (g *Generator) squarePass(step int, randomRange float64) {
	half := step / 2
	for y := 0; y < g.size; y += half {
		for x := (y + half) % step; x < g.size; x += step {
			var sum float64
			var count int
			for _, d := range [4][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}} {
				nx, ny := x+d[0]*half, y+d[1]*half
				if g.wrap {
					sum += g.at(((nx%g.size)+g.size)%g.size, ((ny%g.size)+g.size)%g.size)
					count++
				} else if nx >= 0 && nx < g.size && ny >= 0 && ny < g.size {
					sum += g.at(nx, ny)
					count++
				}
			}
			g.set(x, y, sum/float64(count)+g.displace(randomRange))
		}
	}
}

// normalize rescales the grid to [0,1] unless the value spread is below
// normalizeEpsilon, in which case the degenerate flat grid keeps its raw
// values.
func (g *Generator) normalize() {
	minV, maxV := g.cells[0], g.cells[0]
	for _, v := range g.cells {
		if v < minV {
			minV = v
		}
		if v > maxV {
			maxV = v
		}
	}

	spread := maxV - minV
	if spread <= normalizeEpsilon {
		return
	}
	for i, v := range g.cells {
		g.cells[i] = (v - minV) / spread
	}
}

// displace draws a uniform offset in [−r, +r] from the generator-owned source.
func (g *Generator) displace(r float64) float64 {
	return (g.rng.Float64()*2 - 1) * r
}

func (g *Generator) at(x, y int) float64 {
	return g.cells[y*g.size+x]
}

func (g *Generator) set(x, y int, v float64) {
	g.cells[y*g.size+x] = v
}
