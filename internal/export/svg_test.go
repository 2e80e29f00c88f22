package export

import (
	"bytes"
	"encoding/xml"
	"errors"
	"image/color"
	"io"
	"strings"
	"testing"

	"github.com/san-kum/backdrop/internal/turtle"
	"github.com/san-kum/backdrop/internal/viz"
)

func TestSVG_KeepsLastFrame(t *testing.T) {
	s := NewSVG(100, 50)
	gold := color.NRGBA{R: 245, G: 180, B: 0, A: 128}

	s.Fill(turtle.FadeColor)
	s.FillCircle(turtle.Vec{X: 10, Y: 10}, 3, gold)
	s.FillCircle(turtle.Vec{X: 20, Y: 10}, 3, gold)
	s.Fill(turtle.FadeColor)
	s.StrokeLine(turtle.Vec{}, turtle.Vec{X: 5, Y: 5}, 1, gold)

	if s.Elements() != 1 {
		t.Fatalf("expected 1 element after new frame, got %d", s.Elements())
	}
	out := s.String()
	if strings.Contains(out, "<circle") {
		t.Error("previous frame leaked into output")
	}
	if !strings.Contains(out, `stroke="#f5b400"`) {
		t.Errorf("missing stroke color in %s", out)
	}
}

func TestSVG_WellFormed(t *testing.T) {
	eng, err := turtle.New(turtle.Options{Mode: turtle.ModeGeometric, Count: 12, Seed: 2}, 300, 200)
	if err != nil {
		t.Fatal(err)
	}
	s := NewSVG(300, 200)
	eng.Frame(s)

	var buf bytes.Buffer
	if _, err := s.WriteTo(&buf); err != nil {
		t.Fatal(err)
	}
	dec := xml.NewDecoder(&buf)
	for {
		_, err := dec.Token()
		if err != nil {
			if !errors.Is(err, io.EOF) {
				t.Fatalf("invalid svg: %v", err)
			}
			break
		}
	}
	if s.Elements() < 12 {
		t.Errorf("expected at least 12 shapes, got %d", s.Elements())
	}
}

func TestSVG_PolygonNeedsThreePoints(t *testing.T) {
	s := NewSVG(10, 10)
	s.FillPolygon([]turtle.Vec{{X: 1, Y: 1}, {X: 2, Y: 2}}, color.NRGBA{A: 255})
	if s.Elements() != 0 {
		t.Error("degenerate polygon should be skipped")
	}
}

func TestCanvasToSVG(t *testing.T) {
	if CanvasToSVG(nil, 4) != "" {
		t.Error("expected empty output for nil canvas")
	}

	c := viz.NewCanvas(4, 2)
	c.Set(0, 0)
	c.Set(3, 7)
	out := CanvasToSVG(c, 4)
	if n := strings.Count(out, "<circle"); n != 2 {
		t.Errorf("expected 2 dots, got %d", n)
	}
}
