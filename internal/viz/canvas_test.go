package viz

import (
	"image/color"
	"strings"
	"testing"

	"github.com/san-kum/backdrop/internal/turtle"
)

func TestCanvas_SetUnset(t *testing.T) {
	c := NewCanvas(2, 1)
	c.Set(0, 0)
	c.Set(3, 3)
	if !c.IsSet(0, 0) || !c.IsSet(3, 3) {
		t.Fatal("expected dots set")
	}
	if c.Grid[0][0] != 0x2801 {
		t.Errorf("expected ⠁, got %U", c.Grid[0][0])
	}
	if c.Grid[0][1] != 0x2880 {
		t.Errorf("expected ⢀, got %U", c.Grid[0][1])
	}

	c.Unset(0, 0)
	if c.IsSet(0, 0) || c.Grid[0][0] != blank {
		t.Error("expected dot cleared")
	}
}

func TestCanvas_OutOfBoundsIgnored(t *testing.T) {
	c := NewCanvas(2, 2)
	c.Set(-1, 0)
	c.Set(100, 100)
	if strings.Trim(c.String(), "⠀\n") != "" {
		t.Error("out of bounds set drew something")
	}
	if c.IsSet(-1, -1) {
		t.Error("negative coordinates reported set")
	}
}

func TestCanvas_DrawLine(t *testing.T) {
	c := NewCanvas(4, 1)
	c.DrawLine(0, 0, 7, 0)
	for x := 0; x < 8; x++ {
		if !c.IsSet(x, 0) {
			t.Errorf("dot %d not set", x)
		}
	}
}

func TestCanvas_WorldScaling(t *testing.T) {
	c := NewCanvas(10, 5) // 20x20 dots
	c.SetWorld(200, 200)
	white := color.NRGBA{R: 255, G: 255, B: 255, A: 255}

	c.FillCircle(turtle.Vec{X: 100, Y: 100}, 1, white)
	if !c.IsSet(10, 10) {
		t.Error("expected world (100,100) at dot (10,10)")
	}

	c.Fill(turtle.FadeColor)
	if c.IsSet(10, 10) {
		t.Error("fill should clear the grid")
	}

	c.StrokeLine(turtle.Vec{X: 0, Y: 0}, turtle.Vec{X: 190, Y: 0}, 1, white)
	if !c.IsSet(0, 0) || !c.IsSet(19, 0) {
		t.Error("expected line across the top row")
	}
}

func TestCanvas_ShadeKeepsBrightest(t *testing.T) {
	c := NewCanvas(1, 1)
	dim := color.NRGBA{R: 245, G: 180, B: 0, A: 5}
	bright := color.NRGBA{R: 245, G: 180, B: 0, A: 255}

	c.FillCircle(turtle.Vec{}, 0.1, bright)
	c.FillCircle(turtle.Vec{}, 0.1, dim)
	if got := c.Colors[0][0]; got.R != 245 || got.G != 180 {
		t.Errorf("dim stroke overwrote bright cell: %v", got)
	}
	if c.shade(dim) == c.shade(bright) {
		t.Error("expected alpha to darken the shade")
	}
}

func TestCanvas_Polygon(t *testing.T) {
	c := NewCanvas(10, 5)
	tri := turtle.ShapeOutline(turtle.ShapeTriangle, turtle.Vec{X: 10, Y: 10}, 12, 0)
	c.FillPolygon(tri, color.NRGBA{R: 255, A: 255})
	n := 0
	for y := 0; y < 20; y++ {
		for x := 0; x < 20; x++ {
			if c.IsSet(x, y) {
				n++
			}
		}
	}
	if n < 10 {
		t.Errorf("expected a triangle outline, got %d dots", n)
	}
}

func TestSparklineChart(t *testing.T) {
	tests := []struct {
		name   string
		values []float64
		width  int
		want   int
	}{
		{"empty", nil, 5, 5},
		{"fits", []float64{1, 2, 3}, 5, 3},
		{"truncated", []float64{1, 2, 3, 4, 5, 6}, 4, 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := []rune(SparklineChart(tt.values, tt.width))
			if len(got) != tt.want {
				t.Errorf("expected %d runes, got %d", tt.want, len(got))
			}
		})
	}
}
