// Package pen is a turtle-graphics pen over a turtle.Surface, plus the
// static decorations the site drew with it.
package pen

import (
	"image/color"
	"math"

	"github.com/san-kum/backdrop/internal/turtle"
)

// circleSegments is the polygon resolution used when a circle is filled.
const circleSegments = 48

// Pen draws lines as it moves while the pen is down. It never fails on
// drawing calls; only color parsing returns errors.
type Pen struct {
	dst           turtle.Surface
	Width, Height float64
	pos           turtle.Vec
	down          bool
	color         color.NRGBA
	lineWidth     float64
	path          []turtle.Vec
}

func New(dst turtle.Surface, width, height float64) *Pen {
	return &Pen{
		dst:       dst,
		Width:     width,
		Height:    height,
		down:      true,
		color:     color.NRGBA{A: 255},
		lineWidth: 1,
	}
}

func (p *Pen) Pos() turtle.Vec    { return p.pos }
func (p *Pen) IsDown() bool       { return p.down }
func (p *Pen) Color() color.NRGBA { return p.color }
func (p *Pen) LineWidth() float64 { return p.lineWidth }
func (p *Pen) Center() turtle.Vec { return turtle.Vec{X: p.Width / 2, Y: p.Height / 2} }

func (p *Pen) SetLineWidth(w float64) {
	if w > 0 {
		p.lineWidth = w
	}
}

func (p *Pen) PenUp() {
	p.down = false
	p.path = nil
}

// PenDown starts a new path at the current position.
func (p *Pen) PenDown() {
	p.down = true
	p.path = []turtle.Vec{p.pos}
}

// Goto moves to (x, y), drawing a segment if the pen is down.
func (p *Pen) Goto(x, y float64) {
	next := turtle.Vec{X: x, Y: y}
	if p.down {
		p.dst.StrokeLine(p.pos, next, p.lineWidth, p.color)
		p.path = append(p.path, next)
	}
	p.pos = next
}

// Jump moves without drawing and puts the pen down at the destination.
func (p *Pen) Jump(x, y float64) {
	p.PenUp()
	p.Goto(x, y)
	p.PenDown()
}

// Circle draws a circle of radius r whose rightmost point is the current
// position. The pen does not move.
func (p *Pen) Circle(r float64) {
	if !p.down || r <= 0 {
		return
	}
	center := turtle.Vec{X: p.pos.X - r, Y: p.pos.Y}
	p.dst.StrokeCircle(center, r, p.lineWidth, p.color)
	p.path = p.path[:0]
	for i := 0; i < circleSegments; i++ {
		a := 2 * math.Pi * float64(i) / circleSegments
		p.path = append(p.path, turtle.Vec{X: center.X + r*math.Cos(a), Y: center.Y + r*math.Sin(a)})
	}
}

// Fill fills the current path with the pen color.
func (p *Pen) Fill() {
	if len(p.path) < 3 {
		return
	}
	p.dst.FillPolygon(append([]turtle.Vec(nil), p.path...), p.color)
}

// Clear paints the whole surface with the background color.
func (p *Pen) Clear() {
	p.dst.Fill(turtle.BackgroundColor)
}

// SetColor parses a CSS-style color and applies alpha (0..1) to it.
func (p *Pen) SetColor(spec string, alpha float64) error {
	c, err := ParseColor(spec)
	if err != nil {
		return err
	}
	p.color = turtle.WithAlpha(c, alpha)
	return nil
}

// MustColor is SetColor for literals known to parse.
func (p *Pen) MustColor(spec string, alpha float64) {
	if err := p.SetColor(spec, alpha); err != nil {
		panic(err)
	}
}
