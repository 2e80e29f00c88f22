package viz

import (
	"image/color"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/san-kum/backdrop/internal/turtle"
)

// Braille Patterns: 2x4 dots
// 1 4
// 2 5
// 3 6
// 7 8
//
// Unicode offset 0x2800
var pixelMap = [4][2]int{
	{0x1, 0x8},
	{0x2, 0x10},
	{0x4, 0x20},
	{0x40, 0x80},
}

const blank = 0x2800

// AlphaGain brightens translucent colors so faint strokes stay visible in
// a terminal, which cannot blend.
const AlphaGain = 5.0

// Canvas is a braille grid that doubles as a turtle.Surface. World
// coordinates are scaled onto the (Width*2)x(Height*4) dot grid.
type Canvas struct {
	Width, Height int
	Grid          [][]rune
	Colors        [][]color.NRGBA
	sx, sy        float64
}

func NewCanvas(w, h int) *Canvas {
	c := &Canvas{
		Width:  w,
		Height: h,
		Grid:   make([][]rune, h),
		Colors: make([][]color.NRGBA, h),
		sx:     1,
		sy:     1,
	}
	for i := range c.Grid {
		c.Grid[i] = make([]rune, w)
		c.Colors[i] = make([]color.NRGBA, w)
	}
	c.Clear()
	return c
}

// SetWorld maps a world extent of ww x wh onto the dot grid.
func (c *Canvas) SetWorld(ww, wh float64) {
	if ww > 0 {
		c.sx = float64(c.Width*2) / ww
	}
	if wh > 0 {
		c.sy = float64(c.Height*4) / wh
	}
}

// Set sets a pixel at (x, y) in dot coordinates.
func (c *Canvas) Set(x, y int) {
	c.set(x, y, color.NRGBA{R: 255, G: 255, B: 255, A: 255})
}

func (c *Canvas) set(x, y int, col color.NRGBA) {
	if x < 0 || y < 0 {
		return
	}
	cx, cy := x/2, y/4
	if cx >= c.Width || cy >= c.Height {
		return
	}
	c.Grid[cy][cx] |= rune(pixelMap[y%4][x%2])
	if luma(col) >= luma(c.Colors[cy][cx]) {
		c.Colors[cy][cx] = col
	}
}

// Unset clears a pixel
func (c *Canvas) Unset(x, y int) {
	if x < 0 || y < 0 {
		return
	}
	cx, cy := x/2, y/4
	if cx >= c.Width || cy >= c.Height {
		return
	}
	c.Grid[cy][cx] &^= rune(pixelMap[y%4][x%2])
	if c.Grid[cy][cx] < blank {
		c.Grid[cy][cx] = blank
	}
}

func (c *Canvas) IsSet(x, y int) bool {
	if x < 0 || y < 0 {
		return false
	}
	cx, cy := x/2, y/4
	if cx >= c.Width || cy >= c.Height {
		return false
	}
	return c.Grid[cy][cx]&rune(pixelMap[y%4][x%2]) != 0
}

// Clear resets the canvas
func (c *Canvas) Clear() {
	for i := range c.Grid {
		for j := range c.Grid[i] {
			c.Grid[i][j] = blank
			c.Colors[i][j] = color.NRGBA{}
		}
	}
}

// DrawLine draws a line using Bresenham's algorithm
func (c *Canvas) DrawLine(x0, y0, x1, y1 int) {
	c.line(x0, y0, x1, y1, color.NRGBA{R: 255, G: 255, B: 255, A: 255})
}

func (c *Canvas) line(x0, y0, x1, y1 int, col color.NRGBA) {
	dx := absInt(x1 - x0)
	dy := absInt(y1 - y0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx - dy

	for {
		c.set(x0, y0, col)
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x0 += sx
		}
		if e2 < dx {
			err += dx
			y0 += sy
		}
	}
}

func (c *Canvas) dot(p turtle.Vec) (int, int) {
	return int(math.Floor(p.X * c.sx)), int(math.Floor(p.Y * c.sy))
}

// Fill starts a new frame. A terminal cannot fade, so the grid is cleared.
func (c *Canvas) Fill(color.NRGBA) {
	c.Clear()
}

func (c *Canvas) FillCircle(center turtle.Vec, r float64, col color.NRGBA) {
	col = c.shade(col)
	cx, cy := c.dot(center)
	rx, ry := r*c.sx, r*c.sy
	if rx < 1 && ry < 1 {
		c.set(cx, cy, col)
		return
	}
	ix, iy := int(math.Ceil(rx)), int(math.Ceil(ry))
	for dy := -iy; dy <= iy; dy++ {
		for dx := -ix; dx <= ix; dx++ {
			nx, ny := float64(dx)/math.Max(rx, 1), float64(dy)/math.Max(ry, 1)
			if nx*nx+ny*ny <= 1 {
				c.set(cx+dx, cy+dy, col)
			}
		}
	}
}

func (c *Canvas) StrokeCircle(center turtle.Vec, r, _ float64, col color.NRGBA) {
	col = c.shade(col)
	steps := int(math.Max(8, 2*math.Pi*r*math.Max(c.sx, c.sy)))
	for i := 0; i < steps; i++ {
		a := 2 * math.Pi * float64(i) / float64(steps)
		x, y := c.dot(turtle.Vec{X: center.X + r*math.Cos(a), Y: center.Y + r*math.Sin(a)})
		c.set(x, y, col)
	}
}

// FillPolygon draws the outline only; filled braille shapes read as blobs.
func (c *Canvas) FillPolygon(pts []turtle.Vec, col color.NRGBA) {
	if len(pts) == 0 {
		return
	}
	col = c.shade(col)
	for i := range pts {
		x0, y0 := c.dot(pts[i])
		x1, y1 := c.dot(pts[(i+1)%len(pts)])
		c.line(x0, y0, x1, y1, col)
	}
}

func (c *Canvas) StrokeLine(a, b turtle.Vec, _ float64, col color.NRGBA) {
	col = c.shade(col)
	x0, y0 := c.dot(a)
	x1, y1 := c.dot(b)
	c.line(x0, y0, x1, y1, col)
}

// shade blends col toward the canvas background by its (boosted) alpha.
func (c *Canvas) shade(col color.NRGBA) color.NRGBA {
	t := math.Min(1, float64(col.A)/255*AlphaGain)
	bg := turtle.BackgroundColor
	from := colorful.Color{R: float64(bg.R) / 255, G: float64(bg.G) / 255, B: float64(bg.B) / 255}
	to := colorful.Color{R: float64(col.R) / 255, G: float64(col.G) / 255, B: float64(col.B) / 255}
	r, g, b := from.BlendRgb(to, t).Clamped().RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: 255}
}

func (c *Canvas) String() string {
	var b strings.Builder
	for _, row := range c.Grid {
		b.WriteString(string(row) + "\n")
	}
	return b.String()
}

// Render is String with each cell in its brightest color.
func (c *Canvas) Render() string {
	var b strings.Builder
	for y, row := range c.Grid {
		for x, r := range row {
			if r == blank {
				b.WriteRune(r)
				continue
			}
			col := c.Colors[y][x]
			style := lipgloss.NewStyle().Foreground(lipgloss.Color(hexColor(col)))
			b.WriteString(style.Render(string(r)))
		}
		b.WriteByte('\n')
	}
	return b.String()
}

func luma(c color.NRGBA) int {
	return int(c.R)*299 + int(c.G)*587 + int(c.B)*114
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
