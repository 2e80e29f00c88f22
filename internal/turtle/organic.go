package turtle

import (
	"image/color"
	"math"
	"math/rand"

	"github.com/aquilax/go-perlin"
)

type organic struct {
	noise *perlin.Perlin
}

func newOrganic(o Options) Strategy {
	if o.Noise == NoisePerlin {
		return organic{noise: perlin.NewPerlin(2, 2, 3, o.Seed)}
	}
	return organic{}
}

func (organic) Mode() Mode { return ModeOrganic }

func (organic) Spawn(s *State, o Options, palette []color.NRGBA, rng *rand.Rand) {
	s.Entities = make([]Entity, o.Count)
	for i := range s.Entities {
		fi := float64(i)
		s.Entities[i] = Entity{
			Pos:   Vec{rng.Float64() * s.Width, rng.Float64() * s.Height},
			Vel:   Vec{math.Sin(fi) * o.Speed, math.Cos(fi) * o.Speed},
			Size:  rng.Float64()*15 + 3,
			Color: pick(palette, rng),
			Angle: fi * 0.1,
			Spin:  jitter(rng, 0.01),
			Trail: NewTrail(DefaultTrailLen),
		}
	}
	s.Links, s.Adjacency = nil, nil
}

func (g organic) Update(s *State, o Options) {
	for i := range s.Entities {
		e := &s.Entities[i]
		e.Angle += e.Spin
		e.Vel = g.drift(e.Angle, i, o.Speed)
		e.Pos = wrap(e.Pos.Add(e.Vel), s.Width, s.Height)
		e.Trail.Push(e.Pos)
	}
}

// drift is the cheap pseudo-noise heading: sinusoids of an ever-growing
// angle, or a Perlin field sampled along it.
func (g organic) drift(angle float64, i int, speed float64) Vec {
	if g.noise == nil {
		return Vec{math.Sin(angle) * speed, math.Cos(angle*0.5) * speed}
	}
	heading := g.noise.Noise2D(angle, float64(i)*0.37) * 2 * math.Pi
	return Vec{math.Cos(heading) * speed, math.Sin(heading) * speed}
}

func (organic) Draw(s *State, o Options, dst Surface) {
	for i := range s.Entities {
		e := &s.Entities[i]
		n := e.Trail.Len()
		for k := 1; k < n; k++ {
			a, b := e.Trail.At(k-1), e.Trail.At(k)
			// A wrap jump is not part of the path.
			if math.Abs(a.X-b.X) > s.Width/2 || math.Abs(a.Y-b.Y) > s.Height/2 {
				continue
			}
			alpha := o.Opacity * float64(k) / float64(n)
			dst.StrokeLine(a, b, o.LineWidth, WithAlpha(e.Color, alpha))
		}
		dst.FillCircle(e.Pos, e.Size/2, WithAlpha(e.Color, o.Opacity*2))
	}
}

// wrap folds p back into [0,w]×[0,h].
func wrap(p Vec, w, h float64) Vec {
	return Vec{wrapAxis(p.X, w), wrapAxis(p.Y, h)}
}

func wrapAxis(v, size float64) float64 {
	if size <= 0 {
		return 0
	}
	if v >= 0 && v <= size {
		return v
	}
	v = math.Mod(v, size)
	if v < 0 {
		v += size
	}
	return v
}
