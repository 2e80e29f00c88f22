package turtle

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"
)

// RunStats summarizes one headless run.
type RunStats struct {
	Seed      int64
	Frames    int
	Elapsed   time.Duration
	Contained bool
	Shapes    int
}

// FPS is the frame rate the run achieved.
func (r RunStats) FPS() float64 {
	if r.Elapsed <= 0 {
		return 0
	}
	return float64(r.Frames) / r.Elapsed.Seconds()
}

// Ensemble runs several independently seeded engines in parallel.
type Ensemble struct {
	opts          Options
	width, height float64
	numRuns       int
	seedStart     int64
}

func NewEnsemble(o Options, width, height float64, numRuns int, seedStart int64) *Ensemble {
	return &Ensemble{opts: o, width: width, height: height, numRuns: numRuns, seedStart: seedStart}
}

// Run steps and draws every engine for frames frames onto a Tally. It stops
// early when ctx is done.
func (en *Ensemble) Run(ctx context.Context, frames int) ([]RunStats, error) {
	stats := make([]RunStats, en.numRuns)
	g, ctx := errgroup.WithContext(ctx)

	for i := 0; i < en.numRuns; i++ {
		idx := i
		g.Go(func() error {
			o := en.opts
			o.Seed = en.seedStart + int64(idx)
			eng, err := New(o, en.width, en.height)
			if err != nil {
				return err
			}

			var tally Tally
			contained := true
			start := time.Now()
			for f := 0; f < frames; f++ {
				if err := ctx.Err(); err != nil {
					return &FrameError{Frame: f, Mode: eng.Mode(), Wrapped: err}
				}
				eng.Frame(&tally)
				contained = contained && eng.State().Contained()
			}
			stats[idx] = RunStats{
				Seed:      o.Seed,
				Frames:    frames,
				Elapsed:   time.Since(start),
				Contained: contained,
				Shapes:    tally.Shapes(),
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return stats, nil
}
