package app

import (
	"flag"
	"strconv"
)

// Config represents the command-line parameters for the application.
type Config struct {
	Width   int
	Height  int
	Mode    string
	Density float64
	Scale   int
	TPS     int
	Seed    int64

	Scenario string

	LogLevel  string
	LogFormat string
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Width:     128,
		Height:    128,
		Mode:      "packed",
		Density:   0.5,
		Scale:     5,
		TPS:       60,
		Seed:      42,
		LogLevel:  "info",
		LogFormat: "text",
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Width, "w", c.Width, "grid width in cells")
	fs.IntVar(&c.Height, "h", c.Height, "grid height in cells")
	fs.StringVar(&c.Mode, "mode", c.Mode, "seeding mode: packed, cells or empty")
	fs.Float64Var(&c.Density, "density", c.Density, "live cell probability for -mode cells")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for simulation reset")
	fs.StringVar(&c.Scenario, "scenario", c.Scenario, "HCL scenario file; overrides size and seeding flags")
	fs.StringVar(&c.LogLevel, "log-level", c.LogLevel, "log level: debug, info, warn or error")
	fs.StringVar(&c.LogFormat, "log-format", c.LogFormat, "log format: text or json")
}

// SimParams renders the size and seeding flags in the key/value form
// accepted by life.FromMap.
func (c *Config) SimParams() map[string]string {
	return map[string]string{
		"w":       strconv.Itoa(c.Width),
		"h":       strconv.Itoa(c.Height),
		"seed":    strconv.FormatInt(c.Seed, 10),
		"density": strconv.FormatFloat(c.Density, 'f', -1, 64),
		"mode":    c.Mode,
	}
}
