package turtle

import "image/color"

// Surface is the 2D drawing target a frame is rendered onto. Colors carry
// their own alpha; implementations blend source-over.
type Surface interface {
	// Fill covers the whole canvas; with a translucent color it produces
	// the fading trail effect.
	Fill(col color.NRGBA)
	FillCircle(c Vec, r float64, col color.NRGBA)
	StrokeCircle(c Vec, r, width float64, col color.NRGBA)
	FillPolygon(pts []Vec, col color.NRGBA)
	StrokeLine(a, b Vec, width float64, col color.NRGBA)
}

// Tally is a Surface that only counts primitives. It backs draw-cost
// benchmarks and tests.
type Tally struct {
	Fills, Circles, Rings, Polygons, Lines int
}

func (t *Tally) Fill(color.NRGBA)                                { t.Fills++ }
func (t *Tally) FillCircle(Vec, float64, color.NRGBA)            { t.Circles++ }
func (t *Tally) StrokeCircle(Vec, float64, float64, color.NRGBA) { t.Rings++ }
func (t *Tally) FillPolygon([]Vec, color.NRGBA)                  { t.Polygons++ }
func (t *Tally) StrokeLine(Vec, Vec, float64, color.NRGBA)       { t.Lines++ }

// Shapes is the number of filled primitives drawn.
func (t *Tally) Shapes() int { return t.Circles + t.Polygons }

func (t *Tally) Reset() { *t = Tally{} }
