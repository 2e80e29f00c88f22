package turtle

import (
	"image/color"
	"math/rand"
)

var (
	// BackgroundColor is the opaque canvas color front ends clear to once.
	BackgroundColor = color.NRGBA{R: 13, G: 27, B: 63, A: 255}
	// FadeColor is the translucent fill laid over the previous frame.
	FadeColor = color.NRGBA{R: 13, G: 27, B: 63, A: 8}
)

// Spawn builds a fresh state for the given extent: mode entities, the static
// graph where the mode has one, and the background layer.
func Spawn(w, h float64, o Options, strat Strategy, palette []color.NRGBA, rng *rand.Rand) State {
	s := State{Width: w, Height: h, Mode: strat.Mode()}
	strat.Spawn(&s, o, palette, rng)
	s.Particles = SpawnParticles(o.BackgroundCount(), w, h, rng)
	return s
}

// Step advances a copy of s by one frame and returns it; s is untouched.
// The only source of randomness is rng (particle respawns).
func Step(s State, o Options, strat Strategy, rng *rand.Rand) State {
	next := s.Clone()
	strat.Update(&next, o)
	UpdateParticles(next.Particles, next.Width, next.Height, rng)
	next.Frame++
	return next
}

// Draw renders s: fade, mode layer, particle layer.
func Draw(s *State, o Options, strat Strategy, dst Surface) {
	dst.Fill(FadeColor)
	strat.Draw(s, o, dst)
	DrawParticles(s.Particles, dst)
}
