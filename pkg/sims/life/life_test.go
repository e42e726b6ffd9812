package life

import (
	"strconv"
	"testing"

	"bitlife/pkg/lifegrid"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func emptyLife(t *testing.T, w, h int) *Life {
	t.Helper()
	cfg := DefaultConfig()
	cfg.Width, cfg.Height, cfg.Mode = w, h, ModeEmpty
	l, err := New(cfg)
	require.NoError(t, err)
	return l
}

func TestBlinkerOscillation(t *testing.T) {
	life := emptyLife(t, 5, 5)
	blinker, ok := Builtin("blinker")
	require.True(t, ok)
	require.NoError(t, life.Place(blinker, 2, 1))

	grid := life.Grid()
	check := func(step string, expects map[[2]int]bool) {
		t.Helper()
		for y := 0; y < 5; y++ {
			for x := 0; x < 5; x++ {
				alive, err := grid.IsAlive(uint32(y), uint32(x))
				require.NoError(t, err)
				if expects[[2]int{x, y}] != alive {
					t.Fatalf("%s: cell (%d,%d) alive=%v, expected %v", step, x, y, alive, expects[[2]int{x, y}])
				}
			}
		}
	}

	life.Step()
	grid = life.Grid()
	check("first step", map[[2]int]bool{{2, 1}: true, {2, 2}: true, {2, 3}: true})

	life.Step()
	grid = life.Grid()
	check("second step", map[[2]int]bool{{1, 2}: true, {2, 2}: true, {3, 2}: true})

	assert.Equal(t, uint64(2), life.Generation())
	assert.Equal(t, 3, life.Population())
}

func TestResetDeterministic(t *testing.T) {
	for _, mode := range []string{ModePacked, ModeCells} {
		cfg := DefaultConfig()
		cfg.Width, cfg.Height, cfg.Mode = 40, 30, mode

		a, err := New(cfg)
		require.NoError(t, err)
		initial := append([]uint32(nil), a.Words()...)

		a.Step()
		require.NoError(t, a.Reset(cfg.Seed))
		assert.Equal(t, initial, a.Words(), "mode %s", mode)
		assert.Zero(t, a.Generation())

		require.NoError(t, a.Reset(cfg.Seed+1))
		assert.NotEqual(t, initial, a.Words(), "mode %s: different seeds should differ", mode)
	}
}

func TestResetEmptyMode(t *testing.T) {
	l := emptyLife(t, 9, 9)
	assert.Zero(t, l.Population())
}

func TestResetRejectsBadConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Width = 0
	_, err := New(cfg)
	require.ErrorIs(t, err, lifegrid.ErrEmptyGrid)

	cfg = DefaultConfig()
	cfg.Mode = "nope"
	_, err = New(cfg)
	require.Error(t, err)
}

func TestResetRejectsOversizedConfig(t *testing.T) {
	if strconv.IntSize < 64 {
		t.Skip("int cannot exceed uint32 range")
	}
	var wide uint64 = 1<<32 + 3

	cfg := DefaultConfig()
	cfg.Width, cfg.Height, cfg.Mode = int(wide), 2, ModeEmpty
	_, err := New(cfg)
	require.ErrorIs(t, err, lifegrid.ErrGridTooLarge)

	cfg.Width, cfg.Height = 2, int(wide)
	_, err = New(cfg)
	require.ErrorIs(t, err, lifegrid.ErrGridTooLarge)
}

func TestToggle(t *testing.T) {
	l := emptyLife(t, 4, 3)
	require.NoError(t, l.Toggle(3, 2))
	alive, err := l.Grid().IsAlive(2, 3)
	require.NoError(t, err)
	assert.True(t, alive)

	assert.ErrorIs(t, l.Toggle(-1, 0), lifegrid.ErrOutOfBounds)
	assert.ErrorIs(t, l.Toggle(4, 0), lifegrid.ErrOutOfBounds)
}

func TestPlaceBounds(t *testing.T) {
	l := emptyLife(t, 5, 5)
	glider, ok := Builtin("glider")
	require.True(t, ok)

	require.NoError(t, l.Place(glider, 2, 2))
	assert.Equal(t, 5, l.Population())

	assert.ErrorIs(t, l.Place(glider, 3, 0), lifegrid.ErrOutOfBounds)
	assert.ErrorIs(t, l.Place(glider, 0, -1), lifegrid.ErrOutOfBounds)
}

func TestResetRestampsPlacedPatterns(t *testing.T) {
	for _, mode := range []string{ModeEmpty, ModePacked} {
		cfg := DefaultConfig()
		cfg.Width, cfg.Height, cfg.Mode = 12, 12, mode
		l, err := New(cfg)
		require.NoError(t, err)

		glider, ok := Builtin("glider")
		require.True(t, ok)
		require.NoError(t, l.Place(glider, 1, 1))
		initial := append([]uint32(nil), l.Words()...)

		l.Step()
		l.Step()
		require.NoError(t, l.Toggle(10, 10))
		require.NoError(t, l.Reset(cfg.Seed))
		assert.Equal(t, initial, l.Words(), "mode %s", mode)

		require.NoError(t, l.Reset(cfg.Seed+1))
		for r, cells := range glider {
			for c, want := range cells {
				alive, err := l.Grid().IsAlive(uint32(1+r), uint32(1+c))
				require.NoError(t, err)
				assert.Equal(t, want, alive, "mode %s: cell (%d,%d) after reseed", mode, 1+r, 1+c)
			}
		}
	}
}

func TestFailedPlaceIsNotRestamped(t *testing.T) {
	l := emptyLife(t, 5, 5)
	glider, ok := Builtin("glider")
	require.True(t, ok)
	require.ErrorIs(t, l.Place(glider, 3, 3), lifegrid.ErrOutOfBounds)

	require.NoError(t, l.Reset(1))
	assert.Zero(t, l.Population())
}

func TestFromMap(t *testing.T) {
	c := FromMap(map[string]string{
		"w":       "64",
		"h":       "32",
		"seed":    "-7",
		"density": "0.25",
		"mode":    "CELLS",
	})
	assert.Equal(t, Config{Width: 64, Height: 32, Seed: -7, Density: 0.25, Mode: ModeCells}, c)

	bad := FromMap(map[string]string{"w": "0", "h": "x", "density": "3", "mode": "wrap"})
	assert.Equal(t, DefaultConfig(), bad)
	assert.Equal(t, DefaultConfig(), FromMap(nil))
}

func TestParsePattern(t *testing.T) {
	p, err := ParsePattern([]string{"O.*", " #_"})
	require.NoError(t, err)
	assert.Equal(t, Pattern{{true, false, true}, {false, true, false}}, p)
	assert.Equal(t, 3, p.Width())
	assert.Equal(t, 2, p.Height())

	_, err = ParsePattern([]string{"#x"})
	assert.Error(t, err)
	_, err = ParsePattern(nil)
	assert.Error(t, err)
}

func TestBuiltins(t *testing.T) {
	for _, name := range BuiltinNames() {
		p, ok := Builtin(name)
		require.True(t, ok, name)
		assert.NotZero(t, p.Height(), name)
	}
	_, ok := Builtin("unknown")
	assert.False(t, ok)
}
