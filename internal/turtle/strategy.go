package turtle

import (
	"fmt"
	"image/color"
	"math/rand"
	"sort"
)

// Strategy is one mode's behaviour. Spawn replaces the entity list of s;
// Update advances it one frame; Draw renders it without mutating.
type Strategy interface {
	Mode() Mode
	Spawn(s *State, o Options, palette []color.NRGBA, rng *rand.Rand)
	Update(s *State, o Options)
	Draw(s *State, o Options, dst Surface)
}

type strategyFactory func(o Options) Strategy

var strategies = map[Mode]strategyFactory{
	ModeGeometric: func(Options) Strategy { return geometric{} },
	ModeOrganic:   newOrganic,
	ModeNetwork:   func(Options) Strategy { return network{} },
}

// NewStrategy builds the strategy registered for o.Mode.
func NewStrategy(o Options) (Strategy, error) {
	fn, ok := strategies[o.Mode]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownMode, o.Mode)
	}
	return fn(o), nil
}

func ListModes() []string {
	names := make([]string, 0, len(strategies))
	for m := range strategies {
		names = append(names, string(m))
	}
	sort.Strings(names)
	return names
}

func pick(palette []color.NRGBA, rng *rand.Rand) color.NRGBA {
	if len(palette) == 0 {
		return color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	}
	return palette[rng.Intn(len(palette))]
}

// jitter returns a uniform value in [-span/2, span/2).
func jitter(rng *rand.Rand, span float64) float64 {
	return (rng.Float64() - 0.5) * span
}
