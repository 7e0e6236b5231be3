package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Preset is the on-disk generation profile. Flags override preset values;
// any field left zero falls back to the default.
type Preset struct {
	Generator   string  `yaml:"generator"` // perlin | simplex | diamond-square
	Size        int     `yaml:"size"`      // output side length in pixels
	Seed        uint64  `yaml:"seed"`
	Scale       float64 `yaml:"scale"` // pixels per noise unit (perlin/simplex)
	Octaves     int     `yaml:"octaves"`
	Persistence float64 `yaml:"persistence"`
	Lacunarity  float64 `yaml:"lacunarity"`
	Roughness   float64 `yaml:"roughness"` // diamond-square only
	Wrap        bool    `yaml:"wrap"`      // diamond-square only
}

// DefaultPreset mirrors the library defaults: 4 octaves at 0.5/2.0,
// roughness 0.5, a 257-pixel grid sampled at 64 pixels per noise unit.
func DefaultPreset() Preset {
	return Preset{
		Generator:   "perlin",
		Size:        257,
		Scale:       64,
		Octaves:     4,
		Persistence: 0.5,
		Lacunarity:  2.0,
		Roughness:   0.5,
	}
}

// LoadPreset reads a YAML profile from path over the defaults.
func LoadPreset(path string) (Preset, error) {
	p := DefaultPreset()
	raw, err := os.ReadFile(path)
	if err != nil {
		return p, err
	}
	if err := yaml.Unmarshal(raw, &p); err != nil {
		return p, fmt.Errorf("preset %s: %w", path, err)
	}
	return p, nil
}

// Validate rejects profiles the generators would refuse, before any work.
func (p Preset) Validate() error {
	switch p.Generator {
	case "perlin", "simplex":
		if p.Octaves < 1 {
			return fmt.Errorf("octaves must be at least 1, got %d", p.Octaves)
		}
		if p.Scale <= 0 {
			return fmt.Errorf("scale must be positive, got %v", p.Scale)
		}
		if p.Size < 1 {
			return fmt.Errorf("size must be positive, got %d", p.Size)
		}
	case "diamond-square":
		// Size validity (2^n+1) is owned by the diamondsquare package.
	default:
		return fmt.Errorf("unknown generator %q (available: perlin, simplex, diamond-square)", p.Generator)
	}
	return nil
}
