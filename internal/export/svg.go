package export

import (
	"fmt"
	"image/color"
	"io"
	"strings"

	"github.com/san-kum/backdrop/internal/turtle"
	"github.com/san-kum/backdrop/internal/viz"
)

// SVG is a turtle.Surface that keeps the primitives of the most recent
// frame as SVG elements. Each Fill starts a new frame, so trails built up
// by the fade are not reproduced.
type SVG struct {
	Width, Height float64
	body          strings.Builder
	elements      int
}

func NewSVG(width, height float64) *SVG {
	return &SVG{Width: width, Height: height}
}

// Elements is the number of shapes in the current frame.
func (s *SVG) Elements() int { return s.elements }

func (s *SVG) Fill(col color.NRGBA) {
	s.body.Reset()
	s.elements = 0
}

func (s *SVG) FillCircle(c turtle.Vec, r float64, col color.NRGBA) {
	fmt.Fprintf(&s.body, `<circle cx="%.1f" cy="%.1f" r="%.1f" fill="%s" fill-opacity="%.3f"/>
`, c.X, c.Y, r, hex(col), alpha(col))
	s.elements++
}

func (s *SVG) StrokeCircle(c turtle.Vec, r, width float64, col color.NRGBA) {
	fmt.Fprintf(&s.body, `<circle cx="%.1f" cy="%.1f" r="%.1f" fill="none" stroke="%s" stroke-width="%.1f" stroke-opacity="%.3f"/>
`, c.X, c.Y, r, hex(col), width, alpha(col))
	s.elements++
}

func (s *SVG) FillPolygon(pts []turtle.Vec, col color.NRGBA) {
	if len(pts) < 3 {
		return
	}
	s.body.WriteString(`<polygon points="`)
	for i, p := range pts {
		if i > 0 {
			s.body.WriteByte(' ')
		}
		fmt.Fprintf(&s.body, "%.1f,%.1f", p.X, p.Y)
	}
	fmt.Fprintf(&s.body, `" fill="%s" fill-opacity="%.3f"/>
`, hex(col), alpha(col))
	s.elements++
}

func (s *SVG) StrokeLine(a, b turtle.Vec, width float64, col color.NRGBA) {
	fmt.Fprintf(&s.body, `<line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f" stroke="%s" stroke-width="%.1f" stroke-opacity="%.3f"/>
`, a.X, a.Y, b.X, b.Y, hex(col), width, alpha(col))
	s.elements++
}

func (s *SVG) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, `<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f" viewBox="0 0 %.0f %.0f">
<rect width="100%%" height="100%%" fill="%s"/>
`, s.Width, s.Height, s.Width, s.Height, hex(turtle.BackgroundColor))
	sb.WriteString(s.body.String())
	sb.WriteString("</svg>\n")
	return sb.String()
}

func (s *SVG) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, s.String())
	return int64(n), err
}

// CanvasToSVG converts a Braille canvas to SVG format
func CanvasToSVG(canvas *viz.Canvas, scale float64) string {
	if canvas == nil {
		return ""
	}

	width := float64(canvas.Width) * scale * 2   // 2 sub-pixels per char
	height := float64(canvas.Height) * scale * 4 // 4 sub-pixels per char

	var sb strings.Builder
	fmt.Fprintf(&sb, `<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f" viewBox="0 0 %.0f %.0f">
<rect width="100%%" height="100%%" fill="%s"/>
<g fill="#f5b400">
`, width, height, width, height, hex(turtle.BackgroundColor))

	dotRadius := scale * 0.4
	for row := 0; row < canvas.Height; row++ {
		for col := 0; col < canvas.Width; col++ {
			baseX := float64(col) * scale * 2
			baseY := float64(row) * scale * 4
			for dy := 0; dy < 4; dy++ {
				for dx := 0; dx < 2; dx++ {
					if !canvas.IsSet(col*2+dx, row*4+dy) {
						continue
					}
					cx := baseX + float64(dx)*scale + scale/2
					cy := baseY + float64(dy)*scale + scale/2
					fmt.Fprintf(&sb, `<circle cx="%.1f" cy="%.1f" r="%.1f"/>
`, cx, cy, dotRadius)
				}
			}
		}
	}

	sb.WriteString("</g>\n</svg>\n")
	return sb.String()
}

func hex(c color.NRGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

func alpha(c color.NRGBA) float64 {
	return float64(c.A) / 255
}
