package life

import (
	"fmt"
	"math"

	"bitlife/pkg/core"
	"bitlife/pkg/lifegrid"
)

// Life adapts a lifegrid.Grid to the core.Sim contract.
type Life struct {
	cfg  Config
	opts []lifegrid.Option
	grid *lifegrid.Grid

	// stamps are re-applied after every Reset.
	stamps []stamp
}

type stamp struct {
	pattern  Pattern
	row, col int
}

// New returns a Life simulation seeded from cfg.Seed.
func New(cfg Config, opts ...lifegrid.Option) (*Life, error) {
	l := &Life{cfg: cfg, opts: opts}
	if err := l.Reset(cfg.Seed); err != nil {
		return nil, err
	}
	return l, nil
}

// Name returns the simulation identifier.
func (l *Life) Name() string { return "life" }

// Size returns the grid dimensions.
func (l *Life) Size() core.Size { return core.Size{W: l.cfg.Width, H: l.cfg.Height} }

// Config returns the configuration the sim was built with.
func (l *Life) Config() Config { return l.cfg }

// Grid exposes the underlying engine.
func (l *Life) Grid() *lifegrid.Grid { return l.grid }

// Words exposes the packed cell state.
func (l *Life) Words() []uint32 { return l.grid.Words() }

// Generation reports how many steps ran since the last Reset.
func (l *Life) Generation() uint64 { return l.grid.Generation() }

// Population counts live cells.
func (l *Life) Population() int { return l.grid.Population() }

// Step advances the simulation by one generation.
func (l *Life) Step() { l.grid.Advance() }

// Reset rebuilds the board from seed using the configured mode, then stamps
// every pattern previously added with Place.
func (l *Life) Reset(seed int64) error {
	if l.cfg.Width <= 0 || l.cfg.Height <= 0 {
		return fmt.Errorf("life: %dx%d: %w", l.cfg.Width, l.cfg.Height, lifegrid.ErrEmptyGrid)
	}
	if uint64(l.cfg.Width) > math.MaxUint32 || uint64(l.cfg.Height) > math.MaxUint32 {
		return fmt.Errorf("life: %dx%d: %w", l.cfg.Width, l.cfg.Height, lifegrid.ErrGridTooLarge)
	}
	w, h := uint32(l.cfg.Width), uint32(l.cfg.Height)
	rng := core.NewRNG(seed)

	var (
		g   *lifegrid.Grid
		err error
	)
	switch l.cfg.Mode {
	case ModeEmpty:
		g, err = lifegrid.New(w, h, nil, l.opts...)
	case ModeCells:
		g, err = lifegrid.New(w, h, core.RandomCells(rng, l.cfg.Density), l.opts...)
	case ModePacked, "":
		g, err = lifegrid.NewPacked(w, h, core.RandomWords(rng), l.opts...)
	default:
		return fmt.Errorf("life: unknown seeding mode %q", l.cfg.Mode)
	}
	if err != nil {
		return fmt.Errorf("life: reset: %w", err)
	}
	l.grid = g
	l.cfg.Seed = seed
	for _, st := range l.stamps {
		if err := l.stamp(st.pattern, st.row, st.col); err != nil {
			return fmt.Errorf("life: reset: %w", err)
		}
	}
	return nil
}

// Toggle flips the cell in column x, row y.
func (l *Life) Toggle(x, y int) error {
	if x < 0 || y < 0 {
		return fmt.Errorf("life: toggle (%d,%d): %w", x, y, lifegrid.ErrOutOfBounds)
	}
	return l.grid.Toggle(uint32(y), uint32(x))
}

// Place stamps p with its top-left corner at (row, col). Live pattern cells
// are set; dead ones clear the underlying cell. The pattern must fit. Placed
// patterns become part of the initial layout and survive Reset.
func (l *Life) Place(p Pattern, row, col int) error {
	if err := l.stamp(p, row, col); err != nil {
		return err
	}
	l.stamps = append(l.stamps, stamp{pattern: p, row: row, col: col})
	return nil
}

func (l *Life) stamp(p Pattern, row, col int) error {
	if row < 0 || col < 0 || row+p.Height() > l.cfg.Height || col+p.Width() > l.cfg.Width {
		return fmt.Errorf("life: %dx%d pattern at (%d,%d) exceeds %dx%d grid: %w",
			p.Width(), p.Height(), row, col, l.cfg.Width, l.cfg.Height, lifegrid.ErrOutOfBounds)
	}
	for r, cells := range p {
		for c, alive := range cells {
			if err := l.grid.SetCell(uint32(row+r), uint32(col+c), alive); err != nil {
				return err
			}
		}
	}
	return nil
}

var _ core.Sim = (*Life)(nil)
