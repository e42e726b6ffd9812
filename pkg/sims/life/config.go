package life

import (
	"strconv"
	"strings"
)

// Seeding modes understood by Reset.
const (
	// ModePacked draws one random 32-bit word per storage word.
	ModePacked = "packed"
	// ModeCells draws each cell independently with Config.Density.
	ModeCells = "cells"
	// ModeEmpty starts from an all-dead grid.
	ModeEmpty = "empty"
)

// Config controls the Life simulation dimensions and seeding.
type Config struct {
	Width  int
	Height int

	Seed    int64
	Density float64
	Mode    string
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{Width: 128, Height: 128, Seed: 42, Density: 0.5, Mode: ModePacked}
}

// FromMap populates a Config from a string map (flag-style key/value pairs).
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
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
	if v, ok := cfg["density"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 && parsed <= 1 {
			c.Density = parsed
		}
	}
	if v, ok := cfg["mode"]; ok {
		switch mode := strings.ToLower(v); mode {
		case ModePacked, ModeCells, ModeEmpty:
			c.Mode = mode
		}
	}
	return c
}
