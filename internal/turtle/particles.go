package turtle

import (
	"image/color"
	"math"
	"math/rand"
)

// ParticleLife is the life a particle respawns with.
const ParticleLife = 100.0

var particleGold = color.NRGBA{R: 245, G: 180, B: 0}

// SpawnParticles builds the background layer.
func SpawnParticles(n int, w, h float64, rng *rand.Rand) []Particle {
	ps := make([]Particle, n)
	for i := range ps {
		ps[i] = Particle{
			Pos:   Vec{rng.Float64() * w, rng.Float64() * h},
			Vel:   Vec{jitter(rng, 0.5), jitter(rng, 0.5)},
			Size:  rng.Float64() * 2,
			Color: WithAlpha(particleGold, rng.Float64()*0.2),
			Life:  rng.Float64() * ParticleLife,
		}
	}
	return ps
}

// UpdateParticles moves, wraps and ages the layer; a particle whose life
// runs out is respawned at a random point with full life.
func UpdateParticles(ps []Particle, w, h float64, rng *rand.Rand) {
	for i := range ps {
		p := &ps[i]
		p.Pos = p.Pos.Add(p.Vel)
		p.Life--

		if p.Pos.X < 0 {
			p.Pos.X = w
		}
		if p.Pos.X > w {
			p.Pos.X = 0
		}
		if p.Pos.Y < 0 {
			p.Pos.Y = h
		}
		if p.Pos.Y > h {
			p.Pos.Y = 0
		}

		if p.Life <= 0 {
			p.Pos = Vec{rng.Float64() * w, rng.Float64() * h}
			p.Life = ParticleLife
		}
	}
}

func DrawParticles(ps []Particle, dst Surface) {
	for i := range ps {
		p := &ps[i]
		alpha := float64(p.Color.A) / 255 * math.Max(p.Life, 0) / ParticleLife
		dst.FillCircle(p.Pos, p.Size, WithAlpha(p.Color, alpha))
	}
}
