// Package lifegrid implements Conway's Game of Life on a fixed rectangular
// grid with hard edges. Cell states are packed one bit per cell into 32-bit
// words in row-major order.
package lifegrid

import (
	"math"
	"math/bits"
)

const wordBits = 32

// Grid is a bit-packed Life universe. It is not safe for concurrent use.
type Grid struct {
	width, height uint32
	cells         []uint32
	spare         []uint32

	generation uint64
	tracer     Tracer
}

// Option configures a Grid at construction.
type Option func(*Grid)

// WithTracer installs a timing hook around the phases of Advance.
func WithTracer(t Tracer) Option {
	return func(g *Grid) {
		if t != nil {
			g.tracer = t
		}
	}
}

// New builds a grid whose initial liveness is decided by calling seed once
// per cell in row-major order. A nil seed produces an all-dead grid.
func New(width, height uint32, seed func() bool, opts ...Option) (*Grid, error) {
	g, err := alloc(width, height, opts)
	if err != nil {
		return nil, err
	}
	if seed == nil {
		return g, nil
	}
	total := g.cellCount()
	for i := uint32(0); i < total; i++ {
		if seed() {
			g.cells[i/wordBits] |= 1 << (i % wordBits)
		}
	}
	return g, nil
}

// NewPacked builds a grid by drawing one word per storage word. Bits past
// width*height are cleared.
func NewPacked(width, height uint32, word func() uint32, opts ...Option) (*Grid, error) {
	g, err := alloc(width, height, opts)
	if err != nil {
		return nil, err
	}
	if word == nil {
		return g, nil
	}
	for i := range g.cells {
		g.cells[i] = word()
	}
	if tail := g.cellCount() % wordBits; tail != 0 {
		g.cells[len(g.cells)-1] &= 1<<tail - 1
	}
	return g, nil
}

func alloc(width, height uint32, opts []Option) (*Grid, error) {
	if width == 0 || height == 0 {
		return nil, ErrEmptyGrid
	}
	if uint64(width)*uint64(height) > math.MaxUint32 {
		return nil, ErrGridTooLarge
	}
	n := wordCount(width * height)
	g := &Grid{
		width:  width,
		height: height,
		cells:  make([]uint32, n),
		spare:  make([]uint32, n),
		tracer: nopTracer{},
	}
	for _, opt := range opts {
		opt(g)
	}
	return g, nil
}

func wordCount(cells uint32) int {
	return int((uint64(cells) + wordBits - 1) / wordBits)
}

func (g *Grid) cellCount() uint32 { return g.width * g.height }

// Width returns the number of columns.
func (g *Grid) Width() uint32 { return g.width }

// Height returns the number of rows.
func (g *Grid) Height() uint32 { return g.height }

// Generation returns how many times Advance has run.
func (g *Grid) Generation() uint64 { return g.generation }

// Words exposes the packed cell state. Bit i of word i/32 holds the cell at
// flat index i = row*width+col. The slice must be treated as read-only and
// must not be retained across Advance, SetCell or Toggle.
func (g *Grid) Words() []uint32 { return g.cells }

// Population counts live cells.
func (g *Grid) Population() int {
	n := 0
	for _, w := range g.cells {
		n += bits.OnesCount32(w)
	}
	return n
}

// CellCoords maps a coordinate onto its storage word and bit.
func (g *Grid) CellCoords(row, col uint32) (word, bit uint32, err error) {
	if err := g.check(row, col); err != nil {
		return 0, 0, err
	}
	word, bit = g.coords(row, col)
	return word, bit, nil
}

// IsAlive reports whether the cell at (row, col) is alive.
func (g *Grid) IsAlive(row, col uint32) (bool, error) {
	if err := g.check(row, col); err != nil {
		return false, err
	}
	return g.at(row, col), nil
}

// SetCell sets the liveness of a single cell in place.
func (g *Grid) SetCell(row, col uint32, on bool) error {
	if err := g.check(row, col); err != nil {
		return err
	}
	word, bit := g.coords(row, col)
	if on {
		g.cells[word] |= 1 << bit
	} else {
		g.cells[word] &^= 1 << bit
	}
	return nil
}

// Toggle flips the liveness of a single cell.
func (g *Grid) Toggle(row, col uint32) error {
	if err := g.check(row, col); err != nil {
		return err
	}
	word, bit := g.coords(row, col)
	g.cells[word] ^= 1 << bit
	return nil
}

// LiveNeighborCount counts live cells in the Moore neighborhood of
// (row, col). Offsets that leave the grid are skipped.
func (g *Grid) LiveNeighborCount(row, col uint32) (int, error) {
	if err := g.check(row, col); err != nil {
		return 0, err
	}
	return g.neighbors(row, col), nil
}

// Advance computes the next generation. Every cell is evaluated against the
// current generation; the result replaces it in a single swap.
func (g *Grid) Advance() {
	defer g.span("tick")()

	done := g.span("allocate next cells")
	next := g.spare
	copy(next, g.cells)
	done()

	done = g.span("new generation")
	for row := uint32(0); row < g.height; row++ {
		for col := uint32(0); col < g.width; col++ {
			word, bit := g.coords(row, col)
			curr := g.cells[word]&(1<<bit) != 0
			nxt := NextState(curr, g.neighbors(row, col))
			if nxt != curr {
				next[word] ^= 1 << bit
			}
		}
	}
	done()

	done = g.span("free old cells")
	g.cells, g.spare = next, g.cells
	g.generation++
	done()
}

// span opens a tracer span. A nil end func is replaced by a no-op.
func (g *Grid) span(name string) func() {
	if end := g.tracer.Span(name); end != nil {
		return end
	}
	return func() {}
}

func (g *Grid) check(row, col uint32) error {
	if row >= g.height || col >= g.width {
		return &BoundsError{Row: row, Col: col, Width: g.width, Height: g.height}
	}
	return nil
}

func (g *Grid) coords(row, col uint32) (uint32, uint32) {
	flat := row*g.width + col
	return flat / wordBits, flat % wordBits
}

func (g *Grid) neighbors(row, col uint32) int {
	count := 0
	for dr := -1; dr <= 1; dr++ {
		r := int64(row) + int64(dr)
		if r < 0 || r >= int64(g.height) {
			continue
		}
		for dc := -1; dc <= 1; dc++ {
			if dr == 0 && dc == 0 {
				continue
			}
			c := int64(col) + int64(dc)
			if c < 0 || c >= int64(g.width) {
				continue
			}
			if g.at(uint32(r), uint32(c)) {
				count++
			}
		}
	}
	return count
}

func (g *Grid) at(row, col uint32) bool {
	word, bit := g.coords(row, col)
	return g.cells[word]&(1<<bit) != 0
}
