package turtle

import (
	"image/color"
	"math"
)

// Vec is a point or velocity in canvas units.
type Vec struct {
	X, Y float64
}

func (v Vec) Add(o Vec) Vec        { return Vec{v.X + o.X, v.Y + o.Y} }
func (v Vec) Sub(o Vec) Vec        { return Vec{v.X - o.X, v.Y - o.Y} }
func (v Vec) Scale(f float64) Vec  { return Vec{v.X * f, v.Y * f} }
func (v Vec) Len() float64         { return math.Hypot(v.X, v.Y) }
func (v Vec) Dist(o Vec) float64   { return math.Hypot(v.X-o.X, v.Y-o.Y) }
func (v Vec) In(w, h float64) bool { return v.X >= 0 && v.X <= w && v.Y >= 0 && v.Y <= h }
func (v Vec) IsValid() bool        { return !math.IsNaN(v.X+v.Y) && !math.IsInf(v.X+v.Y, 0) }

// Rotate turns v by a radians around the origin.
func (v Vec) Rotate(a float64) Vec {
	s, c := math.Sincos(a)
	return Vec{v.X*c - v.Y*s, v.X*s + v.Y*c}
}

// Shape is the outline a geometric entity is drawn with.
type Shape int

const (
	ShapeCircle Shape = iota
	ShapeSquare
	ShapeTriangle

	numShapes = 3
)

func (s Shape) String() string {
	switch s {
	case ShapeCircle:
		return "circle"
	case ShapeSquare:
		return "square"
	case ShapeTriangle:
		return "triangle"
	default:
		return "unknown"
	}
}

// ParseShape is the inverse of Shape.String.
func ParseShape(name string) (Shape, bool) {
	for s := Shape(0); s < numShapes; s++ {
		if s.String() == name {
			return s, true
		}
	}
	return ShapeCircle, false
}

// Entity is a single animated element ("turtle"). Which fields are live
// depends on the mode that spawned it.
type Entity struct {
	Pos   Vec
	Vel   Vec
	Size  float64
	Color color.NRGBA
	Angle float64
	Spin  float64
	Shape Shape

	// organic
	Trail Trail

	// network
	Origin     Vec
	Pulse      float64
	PulseSpeed float64
}

// Particle belongs to the background layer drawn under every mode.
type Particle struct {
	Pos   Vec
	Vel   Vec
	Size  float64
	Color color.NRGBA
	Life  float64
}

// Link joins two entities by index, A < B.
type Link struct {
	A, B int
}

// State is everything one frame of the engine depends on.
type State struct {
	Width, Height float64
	Mode          Mode
	Entities      []Entity
	Particles     []Particle

	// Links and Adjacency are built once at spawn time (network mode) and
	// carried unchanged until the next spawn.
	Links     []Link
	Adjacency [][]int

	Frame int
}

// Clone returns a deep copy; trails are copied, the static graph is shared.
func (s State) Clone() State {
	c := s
	c.Entities = make([]Entity, len(s.Entities))
	for i, e := range s.Entities {
		e.Trail = e.Trail.clone()
		c.Entities[i] = e
	}
	c.Particles = make([]Particle, len(s.Particles))
	copy(c.Particles, s.Particles)
	return c
}

// Contained reports whether every entity and particle lies inside the canvas.
func (s *State) Contained() bool {
	for _, e := range s.Entities {
		if !e.Pos.In(s.Width, s.Height) {
			return false
		}
	}
	for _, p := range s.Particles {
		if !p.Pos.In(s.Width, s.Height) {
			return false
		}
	}
	return true
}

// SignedArea is the shoelace area of a polygon. In y-down screen
// coordinates a positive value means the points wind clockwise on screen.
func SignedArea(pts []Vec) float64 {
	var a float64
	for i := range pts {
		j := (i + 1) % len(pts)
		a += pts[i].X*pts[j].Y - pts[j].X*pts[i].Y
	}
	return a / 2
}
