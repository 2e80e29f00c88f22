package pen

import (
	"fmt"
	"math"
	"math/rand"
	"sort"

	"github.com/san-kum/backdrop/internal/turtle"
)

// Pattern draws one static decoration with p. rng supplies any scatter.
type Pattern func(p *Pen, rng *rand.Rand)

// Patterns maps names to the decorations drawn on the site's canvases.
var Patterns = map[string]Pattern{
	"background":     Background,
	"header":         HeaderGrid,
	"logo":           Logo,
	"hero":           HeroSpiral,
	"card-lines":     CardLines,
	"card-dots":      CardDots,
	"pie":            func(p *Pen, _ *rand.Rand) { PieChart(p, 85, "#1a237e") },
	"bar":            func(p *Pen, _ *rand.Rand) { BarGraph(p, 75, "#534bae") },
	"growing-circle": func(p *Pen, _ *rand.Rand) { GrowingCircle(p, 95, "#ff4081", 1) },
	"line-graph":     func(p *Pen, _ *rand.Rand) { LineGraph(p, 80, "#00bcd4") },
	"footer":         Footer,
	"emblem":         Emblem,
	"waves":          func(p *Pen, _ *rand.Rand) { Waves(p, 0) },
}

func PatternNames() []string {
	names := make([]string, 0, len(Patterns))
	for name := range Patterns {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Draw renders the named pattern onto dst.
func Draw(name string, dst turtle.Surface, width, height float64, seed int64) error {
	pat, ok := Patterns[name]
	if !ok {
		return fmt.Errorf("unknown pattern %q (available: %v)", name, PatternNames())
	}
	if width <= 0 || height <= 0 {
		return turtle.ErrNoCanvas
	}
	pat(New(dst, width, height), rand.New(rand.NewSource(seed)))
	return nil
}

// Hexagon outlines a hexagon of the given radius around (x, y).
func Hexagon(p *Pen, x, y, size float64) {
	p.Jump(x+size, y)
	for i := 1; i <= 6; i++ {
		a := float64(i*60) * math.Pi / 180
		p.Goto(x+size*math.Cos(a), y+size*math.Sin(a))
	}
}

// Triangle outlines an isosceles triangle with its apex above (x, y).
func Triangle(p *Pen, x, y, size float64) {
	p.Jump(x, y-size)
	p.Goto(x+size, y+size)
	p.Goto(x-size, y+size)
	p.Goto(x, y-size)
}

// ConcentricCircles draws rings every 5 units out to maxSize.
func ConcentricCircles(p *Pen, x, y, maxSize float64) {
	for r := 5.0; r <= maxSize; r += 5 {
		p.Jump(x+r, y)
		p.Circle(r)
	}
}

// Background scatters 50 faint hexagons, triangles and ring clusters.
func Background(p *Pen, rng *rand.Rand) {
	p.SetLineWidth(1)
	for i := 0; i < 50; i++ {
		x := rng.Float64() * p.Width
		y := rng.Float64() * p.Height
		size := rng.Float64()*30 + 10
		switch rng.Intn(3) {
		case 0:
			p.MustColor("#534bae", 0.1)
			Hexagon(p, x, y, size)
		case 1:
			p.MustColor("#ff4081", 0.1)
			Triangle(p, x, y, size)
		default:
			p.MustColor("#00bcd4", 0.1)
			ConcentricCircles(p, x, y, size)
		}
	}
}

// HeaderGrid rules a 40-unit grid.
func HeaderGrid(p *Pen, _ *rand.Rand) {
	p.MustColor("white", 0.3)
	p.SetLineWidth(2)
	for x := 0.0; x < p.Width; x += 40 {
		p.Jump(x, 0)
		p.Goto(x, p.Height)
	}
	for y := 0.0; y < p.Height; y += 40 {
		p.Jump(0, y)
		p.Goto(p.Width, y)
	}
}

func Logo(p *Pen, _ *rand.Rand) {
	c := p.Center()
	const radius = 20.0

	p.MustColor("#ff4081", 1)
	p.SetLineWidth(3)
	p.Jump(c.X+radius, c.Y)
	p.Circle(radius)

	p.MustColor("#00bcd4", 1)
	Hexagon(p, c.X, c.Y, radius*0.7)

	p.MustColor("white", 1)
	for i := 0; i < 6; i++ {
		a := float64(i*60) * math.Pi / 180
		p.Jump(c.X+math.Cos(a)*radius*0.5, c.Y+math.Sin(a)*radius*0.5)
		p.Circle(2)
	}
}

// HeroSpiral is an outward spiral whose hue rotates as it grows.
func HeroSpiral(p *Pen, _ *rand.Rand) {
	c := p.Center()
	p.MustColor("#1a237e", 0.3)
	p.SetLineWidth(2)

	radius := 5.0
	for i := 0; i < 150; i++ {
		a := 0.1 * float64(i)
		x, y := c.X+radius*math.Cos(a), c.Y+radius*math.Sin(a)
		if i == 0 {
			p.Jump(x, y)
		} else {
			p.Goto(x, y)
		}
		radius += 0.5
		p.MustColor(fmt.Sprintf("hsl(%d, 70%%, 60%%)", (i*2)%360), 0.6)
	}
}

// CardLines hatches the canvas with 45 degree lines.
func CardLines(p *Pen, _ *rand.Rand) {
	p.MustColor("#1a237e", 0.1)
	p.SetLineWidth(1)
	for x := -p.Width; x < p.Width*2; x += 30 {
		p.Jump(x, 0)
		p.Goto(x+p.Height, p.Height)
	}
}

// CardDots draws a 40-unit dot grid.
func CardDots(p *Pen, _ *rand.Rand) {
	p.MustColor("#ff4081", 0.1)
	p.SetLineWidth(1)
	for x := 20.0; x < p.Width; x += 40 {
		for y := 20.0; y < p.Height; y += 40 {
			p.Jump(x, y)
			p.Circle(2)
		}
	}
}

// PieChart draws a grey ring and sweeps a spoke to percent of a turn.
func PieChart(p *Pen, percent float64, col string) {
	c := p.Center()
	const radius = 40.0

	p.MustColor("#eee", 1)
	p.Jump(c.X+radius, c.Y)
	p.Circle(radius)

	end := percent / 100 * 360
	p.MustColor(col, 1)
	p.SetLineWidth(8)
	p.Jump(c.X, c.Y)
	for deg := 0.0; deg <= end; deg += 5 {
		rad := deg * math.Pi / 180
		p.Goto(c.X+radius*math.Cos(rad), c.Y+radius*math.Sin(rad))
	}
}

// BarGraph draws one filled bar at percent of 60% of the height.
func BarGraph(p *Pen, percent float64, col string) {
	const barWidth = 30.0
	h := percent / 100 * p.Height * 0.6
	x := p.Width/2 - barWidth/2
	y := p.Height - h

	p.MustColor(col, 1)
	p.SetLineWidth(1)
	p.Jump(x, p.Height)
	p.Goto(x, y)
	p.Goto(x+barWidth, y)
	p.Goto(x+barWidth, p.Height)
	p.Goto(x, p.Height)
	p.Fill()
}

// GrowingCircle draws the circle at progress t (0..1) of its growth to
// percent of a 40-unit radius. Animating t from 0 to 1 reproduces the
// site's stat counter.
func GrowingCircle(p *Pen, percent float64, col string, t float64) {
	c := p.Center()
	r := math.Max(0, math.Min(t, 1)) * percent / 100 * 40

	p.MustColor(col, 0.3)
	p.SetLineWidth(3)
	p.Clear()
	p.Jump(c.X+r, c.Y)
	p.Circle(r)
}

// LineGraph joins four rising points and marks each with a filled dot.
func LineGraph(p *Pen, value float64, col string) {
	pts := []turtle.Vec{
		{X: 20, Y: p.Height - 20},
		{X: p.Width / 3, Y: p.Height - value*0.3},
		{X: p.Width * 2 / 3, Y: p.Height - value*0.6},
		{X: p.Width - 20, Y: p.Height - value},
	}

	p.MustColor(col, 1)
	p.SetLineWidth(3)
	for i, pt := range pts {
		if i == 0 {
			p.Jump(pt.X, pt.Y)
			continue
		}
		p.Goto(pt.X, pt.Y)
	}
	for _, pt := range pts {
		p.Jump(pt.X, pt.Y)
		p.Circle(3)
		p.Fill()
	}
}

// Footer draws a sine wave along the bottom and ten floating shapes.
func Footer(p *Pen, rng *rand.Rand) {
	p.MustColor("white", 0.1)
	p.SetLineWidth(1)
	for x := 0.0; x < p.Width; x += 10 {
		y := p.Height - math.Sin(x*0.05)*20
		if x == 0 {
			p.Jump(x, y)
		} else {
			p.Goto(x, y)
		}
	}

	for i := 0; i < 10; i++ {
		x := rng.Float64() * p.Width
		y := rng.Float64() * p.Height
		size := rng.Float64()*15 + 5
		switch i % 3 {
		case 0:
			p.Jump(x, y)
			p.Circle(size)
		case 1:
			Triangle(p, x, y, size)
		default:
			Hexagon(p, x, y, size)
		}
	}
}

// Emblem is a hexagon with its long diagonals' star and a centre ring.
func Emblem(p *Pen, _ *rand.Rand) {
	c := p.Center()
	radius := math.Min(p.Width, p.Height) * 0.3
	vertex := func(i int) (float64, float64) {
		a := float64(i*60) * math.Pi / 180
		return c.X + radius*math.Cos(a), c.Y + radius*math.Sin(a)
	}

	p.MustColor("#0d1b3f", 0.1)
	p.SetLineWidth(1)
	Hexagon(p, c.X, c.Y, radius)
	for i := 0; i < 6; i++ {
		p.Jump(vertex(i))
		p.Goto(vertex(i + 2))
	}

	p.MustColor("#f5b400", 0.2)
	p.Jump(c.X+radius*0.3, c.Y)
	p.Circle(radius * 0.3)
}

// Waves draws three drifting sine paths at time t seconds.
func Waves(p *Pen, t float64) {
	cols := []string{"#f5b400", "#00bcd4", "#0d1b3f"}
	p.SetLineWidth(1)
	for i, col := range cols {
		offset := float64(i * 100)
		p.MustColor(col, 0.1)
		for x := 0.0; x < p.Width; x += 10 {
			y := p.Height*0.5 + math.Sin((x+offset+t*100)*0.01)*50 + math.Cos((x+offset)*0.005)*30
			if x == 0 {
				p.Jump(x, y)
			} else {
				p.Goto(x, y)
			}
		}
	}
}
