package main

import (
	"encoding/gob"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"

	"github.com/klauspost/compress/zstd"

	"github.com/dorvarsul/terranoise/diamondsquare"
	"github.com/dorvarsul/terranoise/fbm"
	"github.com/dorvarsul/terranoise/perlin"
	"github.com/dorvarsul/terranoise/simplex"
)

// buildGrid evaluates the preset's generator over a Size×Size grid and
// returns row-major heights in (approximately) [0,1].
func buildGrid(p Preset) ([]float64, error) {
	switch p.Generator {
	case "diamond-square":
		hm, err := diamondsquare.Generate(p.Size, p.Roughness, p.Seed, p.Wrap)
		if err != nil {
			return nil, err
		}
		return hm.Cells(), nil

	case "perlin", "simplex":
		var sampler fbm.Sampler2D
		if p.Generator == "perlin" {
			sampler = perlin.New(p.Seed).Sample2
		} else {
			sampler = simplex.New(p.Seed).Sample2
		}
		opts := fbm.Options{
			Octaves:     p.Octaves,
			Persistence: p.Persistence,
			Lacunarity:  p.Lacunarity,
		}

		cells := make([]float64, p.Size*p.Size)
		for y := 0; y < p.Size; y++ {
			for x := 0; x < p.Size; x++ {
				v, err := fbm.Sum(sampler, float64(x)/p.Scale, float64(y)/p.Scale, opts)
				if err != nil {
					return nil, err
				}
				cells[y*p.Size+x] = v
			}
		}
		return cells, nil

	default:
		return nil, fmt.Errorf("unknown generator %q", p.Generator)
	}
}

// writePNG renders the grid as an 8-bit grayscale heightmap.
func writePNG(path string, size int, cells []float64) error {
	img := image.NewGray(image.Rect(0, 0, size, size))
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			v := cells[y*size+x]
			if v < 0 {
				v = 0
			} else if v > 1 {
				v = 1
			}
			img.SetGray(x, y, color.Gray{Y: uint8(v*255 + 0.5)})
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}

// Snapshot is the raw export format: the generating preset plus the
// full-precision grid, gob-encoded inside a zstd stream.
type Snapshot struct {
	Preset Preset
	Size   int
	Cells  []float64
}

// writeSnapshot persists the grid losslessly for later reloading or diffing.
func writeSnapshot(path string, p Preset, cells []float64) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	zw, err := zstd.NewWriter(f)
	if err != nil {
		f.Close()
		return err
	}
	if err := gob.NewEncoder(zw).Encode(Snapshot{Preset: p, Size: p.Size, Cells: cells}); err != nil {
		zw.Close()
		f.Close()
		return fmt.Errorf("encode snapshot %s: %w", path, err)
	}
	if err := zw.Close(); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// readSnapshot loads a snapshot written by writeSnapshot.
func readSnapshot(path string) (Snapshot, error) {
	var s Snapshot
	f, err := os.Open(path)
	if err != nil {
		return s, err
	}
	defer f.Close()

	zr, err := zstd.NewReader(f)
	if err != nil {
		return s, err
	}
	defer zr.Close()

	if err := gob.NewDecoder(zr).Decode(&s); err != nil {
		return s, fmt.Errorf("decode snapshot %s: %w", path, err)
	}
	return s, nil
}
