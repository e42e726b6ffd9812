//go:build ebiten

package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"os"

	"bitlife/internal/app"
	"bitlife/internal/ctxlog"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	logger, err := ctxlog.New(cfg.LogLevel, cfg.LogFormat, os.Stderr)
	if err != nil {
		log.Fatal(err)
	}
	ctx := ctxlog.WithLogger(context.Background(), logger)

	sim, _, err := cfg.BuildSim(ctx)
	if err != nil {
		log.Fatal(err)
	}

	game := app.New(sim, cfg.Scale, sim.Config().Seed, logger)
	size := sim.Size()

	ebiten.SetWindowTitle("bitlife — " + sim.Name())
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(size.W*cfg.Scale, size.H*cfg.Scale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
