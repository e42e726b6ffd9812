package scenario

import (
	"context"
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"bitlife/pkg/lifegrid"
	"bitlife/pkg/sims/life"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFull(t *testing.T) {
	src := `
grid {
  width  = 21
  height = 11
}

seed {
  mode    = "cells"
  value   = 9
  density = 0.25
}

generations = 40

pattern "glider" {
  row = 0
  col = 0
}

pattern "bar" {
  row   = floor(grid_height / 2)
  col   = max(0, floor(grid_width / 2) - 2)
  cells = ["#####"]
}
`
	s, err := Parse([]byte(src), "full.hcl")
	require.NoError(t, err)

	assert.Equal(t, life.Config{Width: 21, Height: 11, Seed: 9, Density: 0.25, Mode: life.ModeCells}, s.Config)
	require.NotNil(t, s.Generations)
	assert.Equal(t, 40, *s.Generations)
	require.Len(t, s.Placements, 2)

	assert.Equal(t, "glider", s.Placements[0].Name)
	assert.Equal(t, 3, s.Placements[0].Pattern.Height())

	bar := s.Placements[1]
	assert.Equal(t, 5, bar.Row)
	assert.Equal(t, 8, bar.Col)
	assert.Equal(t, 5, bar.Pattern.Width())
}

func TestParseDefaultsToEmptyGrid(t *testing.T) {
	s, err := Parse([]byte(`
grid {
  width  = 5
  height = 5
}

pattern "blinker" {
  row = 2
  col = 1
}
`), "blinker.hcl")
	require.NoError(t, err)
	assert.Equal(t, life.ModeEmpty, s.Config.Mode)
	assert.Nil(t, s.Generations)

	sim, err := s.Build()
	require.NoError(t, err)
	assert.Equal(t, 3, sim.Population())

	sim.Step()
	for row := uint32(1); row <= 3; row++ {
		alive, err := sim.Grid().IsAlive(row, 2)
		require.NoError(t, err)
		assert.True(t, alive, "row %d", row)
	}
}

func TestParseSeedBlockDefaultsToPacked(t *testing.T) {
	s, err := Parse([]byte(`
grid {
  width  = 8
  height = 8
}
seed {}
`), "packed.hcl")
	require.NoError(t, err)
	assert.Equal(t, life.ModePacked, s.Config.Mode)
	assert.Equal(t, life.DefaultConfig().Seed, s.Config.Seed)
}

func TestParseErrors(t *testing.T) {
	cases := map[string]string{
		"missing grid": `generations = 3`,
		"syntax":       `grid {`,
		"zero width": `
grid {
  width  = 0
  height = 4
}`,
		"unknown mode": `
grid {
  width  = 4
  height = 4
}
seed {
  mode = "wrap"
}`,
		"bad density": `
grid {
  width  = 4
  height = 4
}
seed {
  density = 1.5
}`,
		"negative generations": `
grid {
  width  = 4
  height = 4
}
generations = -1`,
		"unknown builtin": `
grid {
  width  = 4
  height = 4
}
pattern "spaceship" {
  row = 0
  col = 0
}`,
		"bad cells": `
grid {
  width  = 4
  height = 4
}
pattern "x" {
  row   = 0
  col   = 0
  cells = ["#?"]
}`,
		"unknown attribute": `
grid {
  width  = 4
  height = 4
}
wrap = true`,
		"duplicate grid": `
grid {
  width  = 4
  height = 4
}
grid {
  width  = 4
  height = 4
}`,
	}
	for name, src := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Parse([]byte(src), name+".hcl")
			assert.Error(t, err)
		})
	}
}

func TestParsePatternOutsideGrid(t *testing.T) {
	_, err := Parse([]byte(`
grid {
  width  = 4
  height = 4
}
pattern "glider" {
  row = 2
  col = 2
}`), "edge.hcl")
	require.ErrorIs(t, err, lifegrid.ErrOutOfBounds)
}

func TestParseRejectsOversizedGrid(t *testing.T) {
	if strconv.IntSize < 64 {
		t.Skip("int cannot exceed uint32 range")
	}
	_, err := Parse([]byte(`
grid {
  width  = 4294967299
  height = 2
}`), "wide.hcl")
	require.ErrorIs(t, err, lifegrid.ErrGridTooLarge)
}

func TestParseKeepsExplicitZeroGenerations(t *testing.T) {
	s, err := Parse([]byte(`
grid {
  width  = 4
  height = 4
}
generations = 0
`), "forever.hcl")
	require.NoError(t, err)
	require.NotNil(t, s.Generations)
	assert.Zero(t, *s.Generations)
}

func TestBuildResetRestampsPatterns(t *testing.T) {
	for _, seed := range []string{"", `seed {
  value = 3
}`} {
		s, err := Parse([]byte(`
grid {
  width  = 10
  height = 10
}
`+seed+`
pattern "glider" {
  row = 1
  col = 1
}
pattern "block" {
  row = 7
  col = 7
}`), "layout.hcl")
		require.NoError(t, err)

		sim, err := s.Build()
		require.NoError(t, err)
		initial := append([]uint32(nil), sim.Words()...)

		for i := 0; i < 4; i++ {
			sim.Step()
		}
		require.NoError(t, sim.Reset(s.Config.Seed))
		assert.Equal(t, initial, sim.Words(), "seed block %q", seed)
		assert.Zero(t, sim.Generation())
	}
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "block.hcl")
	require.NoError(t, os.WriteFile(path, []byte(`
grid {
  width  = 4
  height = 4
}
generations = 12
pattern "block" {
  row = 1
  col = 1
}
`), 0o644))

	s, err := Load(context.Background(), path)
	require.NoError(t, err)
	require.NotNil(t, s.Generations)
	assert.Equal(t, 12, *s.Generations)

	sim, err := s.Build()
	require.NoError(t, err)
	before := append([]uint32(nil), sim.Words()...)
	for i := 0; i < *s.Generations; i++ {
		sim.Step()
	}
	assert.Equal(t, before, sim.Words())
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(context.Background(), filepath.Join(t.TempDir(), "nope.hcl"))
	assert.Error(t, err)
}
