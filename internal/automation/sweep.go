package automation

import (
	"context"
	"fmt"

	"github.com/san-kum/backdrop/internal/metrics"
	"github.com/san-kum/backdrop/internal/turtle"
)

// SweepParams lists the option fields a sweep can vary.
var SweepParams = []string{"particles", "speed", "opacity", "line_width"}

// sweepRange is the default span of a parameter and the largest value it
// accepts (0 for no ceiling).
type sweepRange struct {
	min, max, ceiling float64
}

var sweepRanges = map[string]sweepRange{
	"particles":  {10, 100, turtle.MaxCount},
	"speed":      {0.1, 2, 0},
	"opacity":    {0.02, 0.5, 1},
	"line_width": {0.5, 4, 0},
}

// DefaultRange is the span swept for param when no bounds are given.
func DefaultRange(param string) (lo, hi float64, err error) {
	r, ok := sweepRanges[param]
	if !ok {
		return 0, 0, unknownParam(param)
	}
	return r.min, r.max, nil
}

func unknownParam(name string) error {
	return fmt.Errorf("unknown sweep parameter %q (available: %v)", name, SweepParams)
}

// checkPoint rejects values the engine would silently replace: zero and
// below select the option default, and opacity is clamped at 1.
func checkPoint(param string, v float64) error {
	r, ok := sweepRanges[param]
	if !ok {
		return unknownParam(param)
	}
	low := 0.0
	if param == "particles" {
		low = 0.5
	}
	if v <= low {
		return fmt.Errorf("%s=%.4f: sweep values must be positive", param, v)
	}
	if r.ceiling > 0 && v > r.ceiling {
		return fmt.Errorf("%s=%.4f: above the maximum %.4g", param, v, r.ceiling)
	}
	return nil
}

// ParameterSweep runs the same seeded canvas across a range of one option.
type ParameterSweep struct {
	Param    string
	Min      float64
	Max      float64
	NumSteps int
	Frames   int
	Width    float64
	Height   float64
	Base     turtle.Options
}

// SweepResult holds the metrics of one sweep point.
type SweepResult struct {
	Value     float64
	Contained bool
	Metrics   map[string]float64
}

// RunSweep executes a parameter sweep. Every point uses Base.Seed (1 when
// unset) so the points differ only in the swept value. The whole range is
// checked before the first run.
func RunSweep(ctx context.Context, sw *ParameterSweep) ([]SweepResult, error) {
	if sw.NumSteps <= 0 || sw.Frames <= 0 {
		return nil, fmt.Errorf("sweep needs positive steps and frames, got %d and %d", sw.NumSteps, sw.Frames)
	}

	paramStep := 0.0
	if sw.NumSteps > 1 {
		paramStep = (sw.Max - sw.Min) / float64(sw.NumSteps-1)
	}
	for i := 0; i < sw.NumSteps; i++ {
		if err := checkPoint(sw.Param, sw.Min+float64(i)*paramStep); err != nil {
			return nil, err
		}
	}

	results := make([]SweepResult, 0, sw.NumSteps)
	for i := 0; i < sw.NumSteps; i++ {
		value := sw.Min + float64(i)*paramStep
		o := sw.Base
		if o.Seed == 0 {
			o.Seed = 1
		}
		if err := setParam(&o, sw.Param, value); err != nil {
			return nil, err
		}

		eng, err := turtle.New(o, sw.Width, sw.Height)
		if err != nil {
			return nil, fmt.Errorf("%s=%.4f: %w", sw.Param, value, err)
		}

		var tally turtle.Tally
		series := metrics.NewSeries()
		contained := true
		for f := 0; f < sw.Frames; f++ {
			if err := ctx.Err(); err != nil {
				return results, &turtle.FrameError{Frame: f, Mode: eng.Mode(), Wrapped: err}
			}
			eng.Frame(&tally)
			series.Observe(eng.State())
			contained = contained && eng.State().Contained()
		}

		results = append(results, SweepResult{
			Value:     value,
			Contained: contained,
			Metrics:   series.Values(),
		})
	}
	return results, nil
}

func setParam(o *turtle.Options, name string, v float64) error {
	switch name {
	case "particles":
		o.Count = int(v + 0.5)
	case "speed":
		o.Speed = v
	case "opacity":
		o.Opacity = v
	case "line_width":
		o.LineWidth = v
	default:
		return unknownParam(name)
	}
	return nil
}
