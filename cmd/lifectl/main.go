// Command lifectl runs a Life grid headlessly and writes the final
// generation as text or PNG.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"bitlife/internal/app"
	"bitlife/internal/ctxlog"
	"bitlife/internal/render"
	"bitlife/internal/runner"
	"bitlife/pkg/core"
)

// ExitError carries a specific process exit code.
type ExitError struct {
	Code    int
	Message string
}

func (e *ExitError) Error() string { return e.Message }

type options struct {
	app.Config

	Generations int
	Every       int
	Out         string
	PNGScale    int

	// set holds the names of flags given on the command line.
	set map[string]bool
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Stdout, os.Stderr, os.Args[1:]); err != nil {
		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func parse(args []string, output io.Writer) (*options, bool, error) {
	opts := &options{Config: *app.NewConfig(), Generations: 100, Out: "-", PNGScale: 1}
	opts.TPS = 0

	fs := flag.NewFlagSet("lifectl", flag.ContinueOnError)
	fs.SetOutput(output)
	fs.Usage = func() {
		fmt.Fprint(output, `
lifectl - run a bit-packed Game of Life grid without a window.

Usage:
  lifectl [options]

Options:
`)
		fs.PrintDefaults()
	}
	opts.Bind(fs)
	fs.IntVar(&opts.Generations, "generations", opts.Generations, "generations to run; 0 runs until interrupted")
	fs.IntVar(&opts.Every, "every", opts.Every, "log progress every N generations; 0 disables")
	fs.StringVar(&opts.Out, "out", opts.Out, "snapshot destination: '-' for stdout text, *.png, or a text file path")
	fs.IntVar(&opts.PNGScale, "png-scale", opts.PNGScale, "pixels per cell in PNG snapshots")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	opts.set = make(map[string]bool)
	fs.Visit(func(f *flag.Flag) { opts.set[f.Name] = true })
	if fs.NArg() > 0 {
		return nil, false, &ExitError{Code: 2, Message: fmt.Sprintf("unexpected arguments: %v", fs.Args())}
	}
	if opts.Generations < 0 || opts.Every < 0 || opts.TPS < 0 {
		return nil, false, &ExitError{Code: 2, Message: "generations, every and tps must not be negative"}
	}
	if opts.PNGScale <= 0 {
		return nil, false, &ExitError{Code: 2, Message: "png-scale must be positive"}
	}
	if _, err := ctxlog.ParseLevel(opts.LogLevel); err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	return opts, false, nil
}

func run(ctx context.Context, stdout, stderr io.Writer, args []string) error {
	opts, shouldExit, err := parse(args, stdout)
	if err != nil || shouldExit {
		return err
	}

	logger, err := ctxlog.New(opts.LogLevel, opts.LogFormat, stderr)
	if err != nil {
		return &ExitError{Code: 2, Message: err.Error()}
	}
	ctx = ctxlog.WithLogger(ctx, logger)

	sim, scenarioGens, err := opts.BuildSim(ctx)
	if err != nil {
		return err
	}
	gens := opts.Generations
	if scenarioGens != nil && !opts.set["generations"] {
		gens = *scenarioGens
	}

	r := &runner.Runner{Sim: sim, Generations: gens, TPS: opts.TPS, Every: opts.Every}
	_, runErr := r.Run(ctx)
	if runErr != nil && !errors.Is(runErr, context.Canceled) {
		return runErr
	}
	return writeSnapshot(logger, stdout, opts, sim)
}

func writeSnapshot(logger *slog.Logger, stdout io.Writer, opts *options, sim core.Sim) error {
	size := sim.Size()
	if opts.Out == "-" {
		return render.WriteText(stdout, sim.Words(), size.W, size.H)
	}

	f, err := os.Create(opts.Out)
	if err != nil {
		return fmt.Errorf("create snapshot: %w", err)
	}
	defer f.Close()

	if strings.EqualFold(filepath.Ext(opts.Out), ".png") {
		err = render.WritePNG(f, sim.Words(), size.W, size.H, opts.PNGScale, render.DefaultPalette())
	} else {
		err = render.WriteText(f, sim.Words(), size.W, size.H)
	}
	if err != nil {
		return fmt.Errorf("write snapshot %s: %w", opts.Out, err)
	}
	logger.Info("Snapshot written.", "path", opts.Out, "generation", sim.Generation())
	return f.Close()
}
