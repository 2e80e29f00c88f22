package turtle

import (
	"image/color"
	"math"
	"math/rand"
)

const (
	// LinkRadius is the spawn-time distance under which network nodes are
	// connected.
	LinkRadius = 150.0

	orbitX = 20.0
	orbitY = 10.0
)

type network struct{}

func (network) Mode() Mode { return ModeNetwork }

func (network) Spawn(s *State, o Options, palette []color.NRGBA, rng *rand.Rand) {
	center := Vec{s.Width / 2, s.Height / 2}
	radius := math.Min(s.Width, s.Height) * 0.4
	// Keep origin plus orbit inside the canvas.
	maxRadius := math.Max(0, math.Min(s.Width/2-orbitX, s.Height/2-orbitY))

	s.Entities = make([]Entity, o.Count)
	for i := range s.Entities {
		angle := float64(i) / float64(o.Count) * 2 * math.Pi
		dist := math.Min(radius+rng.Float64()*50, maxRadius)
		pos := center.Add(Vec{math.Cos(angle), math.Sin(angle)}.Scale(dist))
		s.Entities[i] = Entity{
			Pos:        pos,
			Origin:     pos,
			Size:       rng.Float64()*8 + 2,
			Color:      pick(palette, rng),
			Angle:      angle,
			PulseSpeed: rng.Float64()*0.05 + 0.02,
		}
	}
	s.Links, s.Adjacency = BuildLinks(s.Entities, LinkRadius)
}

// BuildLinks runs the pairwise distance pass once and returns the link list
// together with its symmetric adjacency view.
func BuildLinks(entities []Entity, radius float64) ([]Link, [][]int) {
	links := ProximityLinks(entities, radius)
	adj := make([][]int, len(entities))
	for _, l := range links {
		adj[l.A] = append(adj[l.A], l.B)
		adj[l.B] = append(adj[l.B], l.A)
	}
	return links, adj
}

func (network) Update(s *State, o Options) {
	for i := range s.Entities {
		e := &s.Entities[i]
		e.Pulse += e.PulseSpeed
		if e.Pulse > 2*math.Pi {
			e.Pulse = 0
		}
		prev := e.Pos
		e.Pos = e.Origin.Add(Vec{
			orbitTable.Sin(e.Pulse) * orbitX,
			orbitTable.Cos(e.Pulse*0.5) * orbitY,
		})
		e.Pos.X = clamp(e.Pos.X, 0, s.Width)
		e.Pos.Y = clamp(e.Pos.Y, 0, s.Height)
		// nodes are placed, not integrated; Vel carries the frame's displacement
		e.Vel = e.Pos.Sub(prev)
	}
}

func (network) Draw(s *State, o Options, dst Surface) {
	for _, l := range s.Links {
		if l.A >= len(s.Entities) || l.B >= len(s.Entities) {
			continue
		}
		a, b := &s.Entities[l.A], &s.Entities[l.B]
		glow := (math.Sin(a.Pulse) + 1) * 0.1 * o.Opacity
		dst.StrokeLine(a.Pos, b.Pos, 1, WithAlpha(a.Color, glow))
	}
	for i := range s.Entities {
		e := &s.Entities[i]
		glow := (math.Sin(e.Pulse) + 1) * 0.3 * o.Opacity
		dst.FillCircle(e.Pos, e.Size, WithAlpha(e.Color, glow))
	}
}
