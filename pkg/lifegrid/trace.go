package lifegrid

import (
	"context"
	"log/slog"
	"time"
)

// Tracer receives named timing spans from Advance. Span is called when a
// phase starts; the returned func is called when it ends. A nil end func is
// allowed and skipped. Tracers observe only and never influence the computed
// generation.
type Tracer interface {
	Span(name string) func()
}

type nopTracer struct{}

func (nopTracer) Span(string) func() { return func() {} }

// TracerFunc adapts a plain function to the Tracer interface.
type TracerFunc func(name string) func()

// Span calls f(name).
func (f TracerFunc) Span(name string) func() { return f(name) }

// LogTracer returns a Tracer that logs each span's duration at debug level.
func LogTracer(logger *slog.Logger) Tracer {
	if logger == nil {
		return nopTracer{}
	}
	return TracerFunc(func(name string) func() {
		if !logger.Enabled(context.Background(), slog.LevelDebug) {
			return func() {}
		}
		start := time.Now()
		return func() {
			logger.Debug("span", "name", name, "elapsed", time.Since(start))
		}
	})
}
