package life

import "strconv"

// LiveProbability is the chance that a cell starts alive after Reset.
const LiveProbability = 0.5

// Config controls the Life simulation dimensions and stepping.
type Config struct {
	Width  int
	Height int
	Seed   int64
	// Workers is the number of goroutines a step is split across. Values
	// below 2 step serially.
	Workers int
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{Width: 100, Height: 100, Seed: 42, Workers: 1}
}

// FromMap populates a Config from a string map (flag-style key/value pairs).
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["size"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Width = parsed
			c.Height = parsed
		}
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Height = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["workers"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Workers = parsed
		}
	}
	return c
}
