package app

import (
	"encoding/json"
	"flag"
	"os"

	"github.com/pkg/errors"

	"life-gl/internal/sims/life"
)

// Config represents the command-line parameters for the application.
type Config struct {
	Size    int    `json:"size"`
	Scale   int    `json:"scale"`
	TPS     int    `json:"tps"`
	Seed    int64  `json:"seed"`
	Workers int    `json:"workers"`
	File    string `json:"-"`
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{Size: 100, Scale: 6, TPS: 60, Seed: 42, Workers: 1}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Size, "size", c.Size, "cells along each side of the grid")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixels per cell")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for the initial population")
	fs.IntVar(&c.Workers, "workers", c.Workers, "goroutines per generation step")
	fs.StringVar(&c.File, "config", c.File, "optional JSON file with the same keys")
}

// Parse parses args into c. When -config names a file its values are applied
// and args are parsed again, so explicit flags take precedence over the file.
func (c *Config) Parse(fs *flag.FlagSet, args []string) error {
	if err := fs.Parse(args); err != nil {
		return errors.Wrap(err, "[Config.Parse] failed to parse flags")
	}
	if c.File == "" {
		return c.validate()
	}
	if err := c.LoadFile(c.File); err != nil {
		return err
	}
	if err := fs.Parse(args); err != nil {
		return errors.Wrap(err, "[Config.Parse] failed to parse flags")
	}
	return c.validate()
}

// LoadFile overlays the JSON document at filename onto c.
func (c *Config) LoadFile(filename string) error {
	data, err := os.ReadFile(filename)
	if err != nil {
		return errors.Wrapf(err, "[LoadFile] failed to read file: %+v", filename)
	}
	if err = json.Unmarshal(data, c); err != nil {
		return errors.Wrapf(err, "[LoadFile] failed to unmarshal data from file: %+v", filename)
	}
	return nil
}

func (c *Config) validate() error {
	if c.Size < 1 {
		return errors.Errorf("size must be at least 1, got %d", c.Size)
	}
	if c.Scale < 1 {
		return errors.Errorf("scale must be at least 1, got %d", c.Scale)
	}
	if c.TPS < 1 {
		return errors.Errorf("tps must be at least 1, got %d", c.TPS)
	}
	if c.Workers < 1 {
		return errors.Errorf("workers must be at least 1, got %d", c.Workers)
	}
	return nil
}

// LifeConfig converts c into the simulation configuration.
func (c *Config) LifeConfig() life.Config {
	return life.Config{Width: c.Size, Height: c.Size, Seed: c.Seed, Workers: c.Workers}
}
