package ui

import (
	"fmt"
	"math"
	"time"
)

const fpsWindow = 100

// FPS tracks frame rates over the most recent frames.
type FPS struct {
	frames []float64
	last   time.Time
}

// FPSStats summarizes the tracked window.
type FPSStats struct {
	Latest, Mean, Min, Max float64
}

// Frame records a frame rendered at now and returns the updated stats.
func (f *FPS) Frame(now time.Time) FPSStats {
	if f.last.IsZero() {
		f.last = now
		return FPSStats{}
	}
	delta := now.Sub(f.last)
	f.last = now
	if delta <= 0 {
		return f.Stats()
	}
	f.frames = append(f.frames, float64(time.Second)/float64(delta))
	if len(f.frames) > fpsWindow {
		f.frames = f.frames[len(f.frames)-fpsWindow:]
	}
	return f.Stats()
}

// Stats computes latest, mean, min and max over the window.
func (f *FPS) Stats() FPSStats {
	if len(f.frames) == 0 {
		return FPSStats{}
	}
	s := FPSStats{Latest: f.frames[len(f.frames)-1], Min: math.Inf(1), Max: math.Inf(-1)}
	sum := 0.0
	for _, v := range f.frames {
		sum += v
		s.Min = math.Min(s.Min, v)
		s.Max = math.Max(s.Max, v)
	}
	s.Mean = sum / float64(len(f.frames))
	return s
}

func (s FPSStats) String() string {
	return fmt.Sprintf("FPS:\n         latest = %d\navg of last %d = %d\nmin of last %d = %d\nmax of last %d = %d",
		round(s.Latest), fpsWindow, round(s.Mean), fpsWindow, round(s.Min), fpsWindow, round(s.Max))
}

func round(v float64) int { return int(math.Round(v)) }
