// Package automation runs scripted canvas sessions: scenarios loaded from
// YAML and parameter sweeps over the engine options.
package automation

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"gopkg.in/yaml.v3"

	"github.com/san-kum/backdrop/internal/config"
	"github.com/san-kum/backdrop/internal/metrics"
	"github.com/san-kum/backdrop/internal/turtle"
)

const (
	EventMove  = "move"
	EventClick = "click"
)

// Scenario defines a scripted canvas session
type Scenario struct {
	Name        string               `yaml:"name"`
	Description string               `yaml:"description"`
	Width       float64              `yaml:"width"`
	Height      float64              `yaml:"height"`
	Seed        int64                `yaml:"seed"`
	Preset      string               `yaml:"preset"`
	Canvas      *config.CanvasConfig `yaml:"canvas"`
	Steps       []ScenarioStep       `yaml:"steps"`
}

// ScenarioStep runs the engine for Frames frames after optionally switching
// mode, scheme or size.
type ScenarioStep struct {
	Mode   string  `yaml:"mode"`
	Scheme string  `yaml:"scheme"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Frames int     `yaml:"frames"`
	Events []Event `yaml:"events"`
}

// Event is a pointer interaction delivered before the given frame of a step.
type Event struct {
	Frame int     `yaml:"frame"`
	Type  string  `yaml:"type"`
	X     float64 `yaml:"x"`
	Y     float64 `yaml:"y"`
}

// StepResult summarizes one finished step.
type StepResult struct {
	Step      int
	Mode      turtle.Mode
	Scheme    string
	Frames    int
	Contained bool
	Last      metrics.Sample
	Metrics   map[string]float64
}

// LoadScenario loads a scenario from a YAML file
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseScenario(data)
}

func ParseScenario(data []byte) (*Scenario, error) {
	var sc Scenario
	if err := yaml.Unmarshal(data, &sc); err != nil {
		return nil, fmt.Errorf("parse scenario: %w", err)
	}
	if err := sc.Validate(); err != nil {
		return nil, err
	}
	return &sc, nil
}

func (sc *Scenario) Validate() error {
	if len(sc.Steps) == 0 {
		return fmt.Errorf("scenario %q has no steps", sc.Name)
	}
	if sc.Width < 0 || sc.Height < 0 {
		return fmt.Errorf("scenario size %.0fx%.0f: %w", sc.Width, sc.Height, turtle.ErrNoCanvas)
	}
	if sc.Preset != "" && config.GetPreset(sc.Preset) == nil {
		return fmt.Errorf("unknown preset %q (available: %v)", sc.Preset, config.ListPresets())
	}
	for i, st := range sc.Steps {
		if st.Frames <= 0 {
			return fmt.Errorf("step %d: frames must be positive, got %d", i+1, st.Frames)
		}
		if st.Mode != "" {
			if _, err := turtle.ParseMode(st.Mode); err != nil {
				return fmt.Errorf("step %d: %w", i+1, err)
			}
		}
		if st.Scheme != "" {
			if _, ok := turtle.Schemes[st.Scheme]; !ok {
				return fmt.Errorf("step %d: %w: %q", i+1, turtle.ErrUnknownScheme, st.Scheme)
			}
		}
		for _, ev := range st.Events {
			if ev.Type != EventMove && ev.Type != EventClick {
				return fmt.Errorf("step %d: unknown event type %q", i+1, ev.Type)
			}
			if ev.Frame < 0 || ev.Frame >= st.Frames {
				return fmt.Errorf("step %d: event frame %d outside [0,%d)", i+1, ev.Frame, st.Frames)
			}
		}
	}
	return nil
}

// Options resolves the engine options: defaults, then the preset, then
// the inline canvas section, then the seed.
func (sc *Scenario) Options() turtle.Options {
	cfg := config.DefaultConfig()
	if p := config.GetPreset(sc.Preset); p != nil {
		cfg = p
	}
	if sc.Canvas != nil {
		cfg.Canvas = *sc.Canvas
	}
	if sc.Seed != 0 {
		cfg.Canvas.Seed = sc.Seed
	}
	return cfg.Options()
}

// Size is the scenario's initial canvas extent.
func (sc *Scenario) Size() (float64, float64) {
	w, h := sc.Width, sc.Height
	if w == 0 {
		w = config.DefaultWidth
	}
	if h == 0 {
		h = config.DefaultHeight
	}
	return w, h
}

// Runner executes scenarios. Surface receives every frame; a nil Surface
// draws onto a discarded tally.
type Runner struct {
	Surface turtle.Surface
	OnFrame func(step int, s *turtle.State)
	Logger  *log.Logger
}

// RunScenario executes all steps in a scenario without a surface.
func RunScenario(ctx context.Context, sc *Scenario) ([]StepResult, error) {
	return (&Runner{}).Run(ctx, sc)
}

// Run executes all steps in order. Cancellation is checked between frames
// and reported as a *turtle.FrameError; results of finished steps are
// returned alongside it.
func (r *Runner) Run(ctx context.Context, sc *Scenario) ([]StepResult, error) {
	if err := sc.Validate(); err != nil {
		return nil, err
	}
	w, h := sc.Size()
	eng, err := turtle.New(sc.Options(), w, h)
	if err != nil {
		return nil, err
	}

	dst := r.Surface
	if dst == nil {
		dst = &turtle.Tally{}
	}
	logger := r.Logger
	if logger == nil {
		logger = log.Default()
	}

	results := make([]StepResult, 0, len(sc.Steps))
	for i, st := range sc.Steps {
		if err := applyStep(eng, st); err != nil {
			return results, fmt.Errorf("step %d: %w", i+1, err)
		}
		logger.Debug("scenario step", "scenario", sc.Name, "step", i+1, "mode", eng.Mode(), "frames", st.Frames)

		events := make(map[int][]Event, len(st.Events))
		for _, ev := range st.Events {
			events[ev.Frame] = append(events[ev.Frame], ev)
		}

		series := metrics.NewSeries()
		contained := true
		for f := 0; f < st.Frames; f++ {
			if err := ctx.Err(); err != nil {
				return results, &turtle.FrameError{Frame: eng.State().Frame, Mode: eng.Mode(), Wrapped: err}
			}
			for _, ev := range events[f] {
				p := turtle.Vec{X: ev.X, Y: ev.Y}
				if ev.Type == EventClick {
					eng.Click(p)
				} else {
					eng.PointerMove(p)
				}
			}
			eng.Frame(dst)

			s := eng.State()
			series.Observe(s)
			contained = contained && s.Contained()
			if r.OnFrame != nil {
				r.OnFrame(i, s)
			}
		}

		results = append(results, StepResult{
			Step:      i + 1,
			Mode:      eng.Mode(),
			Scheme:    eng.Options().Scheme,
			Frames:    st.Frames,
			Contained: contained,
			Last:      series.Samples[len(series.Samples)-1],
			Metrics:   series.Values(),
		})
	}
	return results, nil
}

func applyStep(eng *turtle.Engine, st ScenarioStep) error {
	if st.Width > 0 && st.Height > 0 {
		eng.Resize(st.Width, st.Height)
	}
	if st.Mode != "" {
		m, err := turtle.ParseMode(st.Mode)
		if err != nil {
			return err
		}
		if m != eng.Mode() {
			if err := eng.SetMode(m); err != nil {
				return err
			}
		}
	}
	if st.Scheme != "" && st.Scheme != eng.Options().Scheme {
		return eng.SetScheme(st.Scheme)
	}
	return nil
}
