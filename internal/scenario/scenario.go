package scenario

import (
	"context"
	"errors"
	"fmt"
	"math"

	"bitlife/internal/ctxlog"
	"bitlife/pkg/lifegrid"
	"bitlife/pkg/sims/life"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/function"
	"github.com/zclconf/go-cty/cty/function/stdlib"
)

// Scenario is a fully decoded scenario file.
type Scenario struct {
	Config life.Config
	// Generations is nil when the file does not set it.
	Generations *int
	Placements  []Placement
}

// Placement stamps Pattern with its top-left corner at (Row, Col).
type Placement struct {
	Name     string
	Row, Col int
	Pattern  life.Pattern
}

type header struct {
	Grid        *gridBlock `hcl:"grid,block"`
	Seed        *seedBlock `hcl:"seed,block"`
	Generations *int       `hcl:"generations,optional"`
	Remain      hcl.Body   `hcl:",remain"`
}

type gridBlock struct {
	Width  int `hcl:"width"`
	Height int `hcl:"height"`
}

type seedBlock struct {
	Mode    *string  `hcl:"mode,optional"`
	Value   *int64   `hcl:"value,optional"`
	Density *float64 `hcl:"density,optional"`
}

type body struct {
	Patterns []*patternBlock `hcl:"pattern,block"`
}

type patternBlock struct {
	Name  string   `hcl:"name,label"`
	Row   int      `hcl:"row"`
	Col   int      `hcl:"col"`
	Cells []string `hcl:"cells,optional"`
}

// Load parses the scenario file at path.
func Load(ctx context.Context, path string) (*Scenario, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Loading scenario.", "path", path)

	file, diags := hclparse.NewParser().ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse scenario %s: %w", path, diags)
	}
	s, err := decode(file.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to decode scenario %s: %w", path, err)
	}
	logger.Debug("Scenario loaded.",
		"width", s.Config.Width, "height", s.Config.Height,
		"mode", s.Config.Mode, "patterns", len(s.Placements))
	if s.Generations != nil {
		logger.Debug("Scenario sets generations.", "generations", *s.Generations)
	}
	return s, nil
}

// Parse decodes scenario source held in memory. filename is used in
// diagnostics only.
func Parse(src []byte, filename string) (*Scenario, error) {
	file, diags := hclparse.NewParser().ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse scenario %s: %w", filename, diags)
	}
	return decode(file.Body)
}

func decode(root hcl.Body) (*Scenario, error) {
	var h header
	if diags := gohcl.DecodeBody(root, nil, &h); diags.HasErrors() {
		return nil, diags
	}
	if h.Grid == nil {
		return nil, errors.New(`missing required "grid" block`)
	}
	if h.Grid.Width <= 0 || h.Grid.Height <= 0 {
		return nil, fmt.Errorf("grid %dx%d: %w", h.Grid.Width, h.Grid.Height, lifegrid.ErrEmptyGrid)
	}
	if uint64(h.Grid.Width) > math.MaxUint32 || uint64(h.Grid.Height) > math.MaxUint32 {
		return nil, fmt.Errorf("grid %dx%d: %w", h.Grid.Width, h.Grid.Height, lifegrid.ErrGridTooLarge)
	}

	cfg := life.DefaultConfig()
	cfg.Width, cfg.Height = h.Grid.Width, h.Grid.Height
	cfg.Mode = life.ModeEmpty
	if h.Seed != nil {
		cfg.Mode = life.ModePacked
		if h.Seed.Mode != nil {
			switch *h.Seed.Mode {
			case life.ModePacked, life.ModeCells, life.ModeEmpty:
				cfg.Mode = *h.Seed.Mode
			default:
				return nil, fmt.Errorf("seed: unknown mode %q", *h.Seed.Mode)
			}
		}
		if h.Seed.Value != nil {
			cfg.Seed = *h.Seed.Value
		}
		if h.Seed.Density != nil {
			if *h.Seed.Density < 0 || *h.Seed.Density > 1 {
				return nil, fmt.Errorf("seed: density %v outside [0, 1]", *h.Seed.Density)
			}
			cfg.Density = *h.Seed.Density
		}
	}

	if h.Generations != nil && *h.Generations < 0 {
		return nil, fmt.Errorf("generations must not be negative, got %d", *h.Generations)
	}
	s := &Scenario{Config: cfg, Generations: h.Generations}

	var b body
	if diags := gohcl.DecodeBody(h.Remain, evalContext(cfg), &b); diags.HasErrors() {
		return nil, diags
	}
	for _, pb := range b.Patterns {
		p, err := resolvePattern(pb)
		if err != nil {
			return nil, err
		}
		if pb.Row < 0 || pb.Col < 0 || pb.Row+p.Height() > cfg.Height || pb.Col+p.Width() > cfg.Width {
			return nil, fmt.Errorf("pattern %q at (%d,%d) does not fit %dx%d grid: %w",
				pb.Name, pb.Row, pb.Col, cfg.Width, cfg.Height, lifegrid.ErrOutOfBounds)
		}
		s.Placements = append(s.Placements, Placement{Name: pb.Name, Row: pb.Row, Col: pb.Col, Pattern: p})
	}
	return s, nil
}

func resolvePattern(pb *patternBlock) (life.Pattern, error) {
	if len(pb.Cells) > 0 {
		p, err := life.ParsePattern(pb.Cells)
		if err != nil {
			return nil, fmt.Errorf("pattern %q: %w", pb.Name, err)
		}
		return p, nil
	}
	p, ok := life.Builtin(pb.Name)
	if !ok {
		return nil, fmt.Errorf("pattern %q has no cells and is not one of %v", pb.Name, life.BuiltinNames())
	}
	return p, nil
}

func evalContext(cfg life.Config) *hcl.EvalContext {
	return &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"grid_width":  cty.NumberIntVal(int64(cfg.Width)),
			"grid_height": cty.NumberIntVal(int64(cfg.Height)),
		},
		Functions: map[string]function.Function{
			"floor": stdlib.FloorFunc,
			"ceil":  stdlib.CeilFunc,
			"min":   stdlib.MinFunc,
			"max":   stdlib.MaxFunc,
		},
	}
}

// Build creates the sim described by the scenario and stamps its patterns.
func (s *Scenario) Build(opts ...lifegrid.Option) (*life.Life, error) {
	sim, err := life.New(s.Config, opts...)
	if err != nil {
		return nil, err
	}
	for _, p := range s.Placements {
		if err := sim.Place(p.Pattern, p.Row, p.Col); err != nil {
			return nil, fmt.Errorf("pattern %q: %w", p.Name, err)
		}
	}
	return sim, nil
}
