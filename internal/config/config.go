package config

import (
	"encoding/json"
	"os"
	"runtime"

	"github.com/pkg/errors"

	"github.com/lukaszgryglicki/triangles3d/internal/bvh"
	"github.com/lukaszgryglicki/triangles3d/internal/geometry"
)

// Config is the run configuration, read from JSON.
type Config struct {
	AbsTolerance    geometry.Real `json:"absTolerance,omitempty"`
	RelTolerance    geometry.Real `json:"relTolerance,omitempty"`
	MaxLeafCapacity int           `json:"maxLeafCapacity,omitempty"`
	TreeMaxDepth    int           `json:"treeMaxDepth,omitempty"`
	Workers         int           `json:"workers,omitempty"`
	// BVHStats builds a tree over the input and logs its statistics.
	BVHStats bool `json:"bvhStats,omitempty"`
	// PrintPairs writes the number of intersecting pairs before the indices.
	PrintPairs bool `json:"printPairs,omitempty"`
}

// Default returns a config with every field at its default.
func Default() *Config {
	cfg := &Config{}
	cfg.fillDefaults()
	return cfg
}

// Load reads a JSON config; zero or missing fields get defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "read config %s", path)
	}
	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, errors.Wrapf(err, "parse config %s", path)
	}
	cfg.fillDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrapf(err, "config %s", path)
	}
	return &cfg, nil
}

func (c *Config) fillDefaults() {
	if c.AbsTolerance == 0 {
		c.AbsTolerance = geometry.DefaultTolerance.Abs
	}
	if c.RelTolerance == 0 {
		c.RelTolerance = geometry.DefaultTolerance.Rel
	}
	if c.MaxLeafCapacity == 0 {
		c.MaxLeafCapacity = bvh.DefaultMaxLeafCapacity
	}
	if c.TreeMaxDepth == 0 {
		c.TreeMaxDepth = bvh.DefaultMaxDepth
	}
	if c.Workers == 0 {
		c.Workers = runtime.NumCPU()
	}
}

// Validate rejects values no default can repair.
func (c *Config) Validate() error {
	if _, err := c.checkTolerance(); err != nil {
		return err
	}
	if c.MaxLeafCapacity < 1 || c.TreeMaxDepth < 1 || c.Workers < 1 {
		return errors.Wrapf(geometry.ErrInvalidArgument,
			"maxLeafCapacity=%d treeMaxDepth=%d workers=%d", c.MaxLeafCapacity, c.TreeMaxDepth, c.Workers)
	}
	return nil
}

func (c *Config) checkTolerance() (geometry.Tolerance, error) {
	t := c.Tolerance()
	if t.Abs <= 0 || t.Rel < 0 || t.Abs >= 1 || t.Rel >= 1 {
		return t, errors.Wrapf(geometry.ErrInvalidArgument, "tolerance abs=%g rel=%g", t.Abs, t.Rel)
	}
	return t, nil
}

// Tolerance returns the geometry comparison policy.
func (c *Config) Tolerance() geometry.Tolerance {
	return geometry.Tolerance{Abs: c.AbsTolerance, Rel: c.RelTolerance}
}

// BVHOptions returns the tree construction options.
func (c *Config) BVHOptions() bvh.Options {
	return bvh.Options{MaxLeafCapacity: c.MaxLeafCapacity, MaxDepth: c.TreeMaxDepth}
}
