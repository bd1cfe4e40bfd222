package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

// Point is a world-coordinate position, round-tripped through YAML as a
// plain {x, y} pair.
type Point struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// Config holds everything a host needs to build a field and street graph
// for one generation run. SeedMethod mirrors streetgraph.SeedStrategy's
// numbering exactly (0: grid, 1: random, 2: density-constrained) so a
// caller can convert with a plain streetgraph.SeedStrategy(cfg.SeedMethod)
// cast rather than a lookup table.
type Config struct {
	BottomLeft Point `yaml:"bottom_left"`
	TopRight   Point `yaml:"top_right"`

	FieldWidth  int `yaml:"field_width"`
	FieldHeight int `yaml:"field_height"`

	DSep       float64 `yaml:"d_sep"`
	SeedMethod int     `yaml:"seed_method"`
	DrawNodes  bool    `yaml:"draw_nodes"`
}

// Validate reports whether c describes a usable run: a positive-area
// region, a positive field size, and a SeedMethod in {0, 1, 2}.
func (c Config) Validate() error {
	if c.TopRight.X <= c.BottomLeft.X || c.TopRight.Y <= c.BottomLeft.Y {
		return ErrInvalidRegion
	}
	if c.FieldWidth <= 0 || c.FieldHeight <= 0 {
		return ErrInvalidFieldSize
	}
	if c.SeedMethod < 0 || c.SeedMethod > 2 {
		return ErrInvalidSeedMethod
	}
	return nil
}

// Load reads and parses a YAML config file at path.
func Load(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Save encodes c as YAML and writes it to path.
func (c Config) Save(path string) error {
	raw, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(path, raw, 0o644)
}
