package turtle

import (
	"fmt"
	"image/color"
	"math/rand"
	"time"
)

// Engine owns one canvas worth of entities and drives it frame by frame.
// Every method is a no-op on a nil Engine, so a front end whose canvas
// failed to initialize can keep calling it.
type Engine struct {
	opts    Options
	palette []color.NRGBA
	strat   Strategy
	rng     *rand.Rand
	state   State
}

// New validates o and spawns the first state. A zero Seed picks one from
// the clock.
func New(o Options, width, height float64) (*Engine, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrNoCanvas
	}
	o = o.WithDefaults()
	if o.Seed == 0 {
		o.Seed = time.Now().UnixNano()
	}
	if err := o.Validate(); err != nil {
		return nil, err
	}
	palette, err := ParsePalette(o.Colors)
	if err != nil {
		return nil, err
	}
	strat, err := NewStrategy(o)
	if err != nil {
		return nil, err
	}

	e := &Engine{
		opts:    o,
		palette: palette,
		strat:   strat,
		rng:     rand.New(rand.NewSource(o.Seed)),
	}
	e.state = Spawn(width, height, o, strat, palette, e.rng)
	return e, nil
}

func (e *Engine) Options() Options {
	if e == nil {
		return Options{}
	}
	return e.opts
}

func (e *Engine) Mode() Mode {
	if e == nil {
		return ""
	}
	return e.strat.Mode()
}

// State returns the live state. Callers must not keep it across frames.
func (e *Engine) State() *State {
	if e == nil {
		return nil
	}
	return &e.state
}

// Step advances one frame without drawing.
func (e *Engine) Step() {
	if e == nil {
		return
	}
	e.state = Step(e.state, e.opts, e.strat, e.rng)
}

// Render draws the current state without advancing it.
func (e *Engine) Render(dst Surface) {
	if e == nil || dst == nil {
		return
	}
	Draw(&e.state, e.opts, e.strat, dst)
}

// Frame is one display refresh: step, then draw.
func (e *Engine) Frame(dst Surface) {
	e.Step()
	e.Render(dst)
}

// Resize regenerates everything for the new extent.
func (e *Engine) Resize(width, height float64) {
	if e == nil || width <= 0 || height <= 0 {
		return
	}
	if width == e.state.Width && height == e.state.Height {
		return
	}
	e.state = Spawn(width, height, e.opts, e.strat, e.palette, e.rng)
}

// Reset discards the current entities and spawns a fresh set.
func (e *Engine) Reset() {
	if e == nil {
		return
	}
	e.state = Spawn(e.state.Width, e.state.Height, e.opts, e.strat, e.palette, e.rng)
}

// SetMode switches strategy. All prior entities are discarded.
func (e *Engine) SetMode(m Mode) error {
	if e == nil {
		return nil
	}
	o := e.opts
	o.Mode = m
	strat, err := NewStrategy(o)
	if err != nil {
		return err
	}
	e.opts, e.strat = o, strat
	e.Reset()
	return nil
}

// SetScheme swaps the palette for a named scheme and respawns.
func (e *Engine) SetScheme(name string) error {
	if e == nil {
		return nil
	}
	colors, ok := Schemes[name]
	if !ok {
		return fmt.Errorf("%w: %q (available: %v)", ErrUnknownScheme, name, SchemeNames())
	}
	palette, err := ParsePalette(colors)
	if err != nil {
		return err
	}
	e.opts.Scheme = name
	e.opts.Colors = append([]string(nil), colors...)
	e.palette = palette
	e.Reset()
	return nil
}

// NextScheme cycles through the registered schemes in name order. An engine
// with no scheme set counts as DefaultScheme.
func (e *Engine) NextScheme() error {
	if e == nil {
		return nil
	}
	current := e.opts.Scheme
	if current == "" {
		current = DefaultScheme
	}
	names := SchemeNames()
	next := names[0]
	for i, n := range names {
		if n == current {
			next = names[(i+1)%len(names)]
			break
		}
	}
	return e.SetScheme(next)
}
