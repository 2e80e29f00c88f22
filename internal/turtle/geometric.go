package turtle

import (
	"image/color"
	"math"
	"math/rand"
)

// ProximityRadius is the distance under which geometric entities are joined
// by a transient line.
const ProximityRadius = 100.0

type geometric struct{}

func (geometric) Mode() Mode { return ModeGeometric }

func (geometric) Spawn(s *State, o Options, palette []color.NRGBA, rng *rand.Rand) {
	s.Entities = make([]Entity, o.Count)
	for i := range s.Entities {
		s.Entities[i] = Entity{
			Pos:   Vec{rng.Float64() * s.Width, rng.Float64() * s.Height},
			Vel:   Vec{jitter(rng, 2*o.Speed), jitter(rng, 2*o.Speed)},
			Size:  rng.Float64()*20 + 5,
			Color: pick(palette, rng),
			Angle: rng.Float64() * 2 * math.Pi,
			Spin:  jitter(rng, 0.02),
			Shape: Shape(rng.Intn(numShapes)),
		}
	}
	s.Links, s.Adjacency = nil, nil
}

func (geometric) Update(s *State, o Options) {
	for i := range s.Entities {
		e := &s.Entities[i]
		e.Pos = e.Pos.Add(e.Vel)
		e.Angle += e.Spin

		if e.Pos.X < 0 || e.Pos.X > s.Width {
			e.Vel.X = -e.Vel.X
		}
		if e.Pos.Y < 0 || e.Pos.Y > s.Height {
			e.Vel.Y = -e.Vel.Y
		}
		e.Pos.X = clamp(e.Pos.X, 0, s.Width)
		e.Pos.Y = clamp(e.Pos.Y, 0, s.Height)
	}
}

func (geometric) Draw(s *State, o Options, dst Surface) {
	for i := range s.Entities {
		e := &s.Entities[i]
		drawShape(dst, e, WithAlpha(e.Color, o.Opacity))

		// O(n²) per frame; fine for decorative entity counts.
		line := WithAlpha(e.Color, o.Opacity*0.3)
		for j := range s.Entities {
			if i == j {
				continue
			}
			other := s.Entities[j].Pos
			if e.Pos.Dist(other) < ProximityRadius {
				dst.StrokeLine(e.Pos, other, 1, line)
			}
		}
	}
}

// ShapeOutline returns the polygon of a square or triangle of the given
// half-size, rotated by angle and centred on c. Circles have no outline.
func ShapeOutline(shape Shape, c Vec, size, angle float64) []Vec {
	var local []Vec
	switch shape {
	case ShapeSquare:
		local = []Vec{{-size, -size}, {size, -size}, {size, size}, {-size, size}}
	case ShapeTriangle:
		local = []Vec{{0, -size}, {size, size}, {-size, size}}
	default:
		return nil
	}
	for i, p := range local {
		local[i] = p.Rotate(angle).Add(c)
	}
	return local
}

func drawShape(dst Surface, e *Entity, col color.NRGBA) {
	if e.Shape == ShapeCircle {
		dst.FillCircle(e.Pos, e.Size, col)
		return
	}
	dst.FillPolygon(ShapeOutline(e.Shape, e.Pos, e.Size, e.Angle), col)
}

// ProximityLinks lists the pairs closer than radius, A < B.
func ProximityLinks(entities []Entity, radius float64) []Link {
	var links []Link
	for i := range entities {
		for j := i + 1; j < len(entities); j++ {
			if entities[i].Pos.Dist(entities[j].Pos) < radius {
				links = append(links, Link{A: i, B: j})
			}
		}
	}
	return links
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
