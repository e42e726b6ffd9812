package app

import (
	"context"

	"bitlife/internal/ctxlog"
	"bitlife/internal/scenario"
	"bitlife/pkg/lifegrid"
	"bitlife/pkg/sims/life"
)

// BuildSim constructs the sim described by the configuration. When a
// scenario file is set it wins over the size and seeding flags, and its
// generation count is returned. generations is nil when no scenario sets it.
func (c *Config) BuildSim(ctx context.Context) (sim *life.Life, generations *int, err error) {
	logger := ctxlog.FromContext(ctx)
	opts := []lifegrid.Option{lifegrid.WithTracer(lifegrid.LogTracer(logger))}

	if c.Scenario != "" {
		s, err := scenario.Load(ctx, c.Scenario)
		if err != nil {
			return nil, nil, err
		}
		sim, err := s.Build(opts...)
		if err != nil {
			return nil, nil, err
		}
		return sim, s.Generations, nil
	}

	sim, err = life.New(life.FromMap(c.SimParams()), opts...)
	if err != nil {
		return nil, nil, err
	}
	logger.Debug("Sim built.", "config", sim.Config())
	return sim, nil, nil
}
