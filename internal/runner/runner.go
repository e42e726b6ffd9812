// Package runner drives a simulation without a window: it advances a fixed
// number of generations, optionally paced to a tick rate, and logs progress.
package runner

import (
	"context"
	"time"

	"bitlife/internal/core"
	"bitlife/internal/ctxlog"
	simcore "bitlife/pkg/core"
)

// Runner advances a Sim headlessly.
type Runner struct {
	Sim simcore.Sim
	// Generations to run. Zero runs until the context is cancelled.
	Generations int
	// TPS paces generations to a ticks-per-second rate. Zero runs flat out.
	TPS int
	// Every logs progress each Every generations. Zero disables progress logs.
	Every int
}

// Stats summarizes a finished run.
type Stats struct {
	Generations uint64
	Population  int
	Elapsed     time.Duration
}

// Run advances the sim until Generations is reached or ctx is done. A
// cancelled run returns the stats so far together with ctx.Err().
func (r *Runner) Run(ctx context.Context) (Stats, error) {
	logger := ctxlog.FromContext(ctx)
	start := time.Now()
	startGen := r.Sim.Generation()

	var pace *core.FixedStep
	if r.TPS > 0 {
		pace = core.NewFixedStep(r.TPS)
	}

	logger.Info("Run started.",
		"sim", r.Sim.Name(), "generations", r.Generations, "tps", r.TPS,
		"population", r.Sim.Population())

	stats := func() Stats {
		return Stats{
			Generations: r.Sim.Generation() - startGen,
			Population:  r.Sim.Population(),
			Elapsed:     time.Since(start),
		}
	}

	for done := 0; r.Generations == 0 || done < r.Generations; {
		select {
		case <-ctx.Done():
			s := stats()
			logger.Warn("Run cancelled.", "generation", r.Sim.Generation(), "error", ctx.Err())
			return s, ctx.Err()
		default:
		}

		if pace != nil && !pace.ShouldStep() {
			if err := sleep(ctx, pace.Remaining()); err != nil {
				s := stats()
				logger.Warn("Run cancelled.", "generation", r.Sim.Generation(), "error", err)
				return s, err
			}
			continue
		}

		r.Sim.Step()
		done++
		if r.Every > 0 && done%r.Every == 0 {
			logger.Info("Generation advanced.", "generation", r.Sim.Generation(), "population", r.Sim.Population())
		}
	}

	s := stats()
	logger.Info("Run finished.", "generations", s.Generations, "population", s.Population, "elapsed", s.Elapsed)
	return s, nil
}

func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
