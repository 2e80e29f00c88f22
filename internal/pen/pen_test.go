package pen

import (
	"errors"
	"image/color"
	"testing"

	"github.com/san-kum/backdrop/internal/turtle"
)

func TestPen_UpDown(t *testing.T) {
	var tally turtle.Tally
	p := New(&tally, 100, 100)

	p.Goto(10, 10)
	p.PenUp()
	p.Goto(50, 50)
	p.PenDown()
	p.Goto(60, 60)

	if tally.Lines != 2 {
		t.Errorf("expected 2 lines, got %d", tally.Lines)
	}
	if p.Pos() != (turtle.Vec{X: 60, Y: 60}) {
		t.Errorf("unexpected position %v", p.Pos())
	}
}

type ringSpy struct {
	turtle.Tally
	center turtle.Vec
	radius float64
}

func (r *ringSpy) StrokeCircle(c turtle.Vec, radius, w float64, col color.NRGBA) {
	r.center, r.radius = c, radius
	r.Tally.StrokeCircle(c, radius, w, col)
}

func TestPen_CircleLeftOfPosition(t *testing.T) {
	spy := &ringSpy{}
	p := New(spy, 100, 100)
	p.Jump(30, 20)
	p.Circle(10)

	if spy.center != (turtle.Vec{X: 20, Y: 20}) || spy.radius != 10 {
		t.Errorf("expected ring at (20,20) r=10, got %v r=%v", spy.center, spy.radius)
	}
	if p.Pos() != (turtle.Vec{X: 30, Y: 20}) {
		t.Error("circle should not move the pen")
	}

	p.PenUp()
	p.Circle(5)
	if spy.Rings != 1 {
		t.Error("circle with pen up should not draw")
	}
}

func TestPen_Fill(t *testing.T) {
	var tally turtle.Tally
	p := New(&tally, 100, 100)

	p.Jump(0, 0)
	p.Goto(10, 0)
	p.Fill()
	if tally.Polygons != 0 {
		t.Error("two-point path should not fill")
	}

	p.Goto(10, 10)
	p.Fill()
	if tally.Polygons != 1 {
		t.Errorf("expected 1 polygon, got %d", tally.Polygons)
	}
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		spec    string
		want    color.NRGBA
		wantErr bool
	}{
		{"#ff4081", color.NRGBA{R: 255, G: 64, B: 129, A: 255}, false},
		{"#eee", color.NRGBA{R: 238, G: 238, B: 238, A: 255}, false},
		{"White", color.NRGBA{R: 255, G: 255, B: 255, A: 255}, false},
		{"hsl(0, 100%, 50%)", color.NRGBA{R: 255, A: 255}, false},
		{"hsl(120, 100%, 25%)", color.NRGBA{G: 128, A: 255}, false},
		{"hsl(1, 2)", color.NRGBA{}, true},
		{"chartreuse-ish", color.NRGBA{}, true},
		{"#zzzzzz", color.NRGBA{}, true},
	}
	for _, tt := range tests {
		t.Run(tt.spec, func(t *testing.T) {
			got, err := ParseColor(tt.spec)
			if tt.wantErr {
				if !errors.Is(err, turtle.ErrBadColor) {
					t.Errorf("expected ErrBadColor, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestPen_SetColorAlpha(t *testing.T) {
	p := New(&turtle.Tally{}, 10, 10)
	if err := p.SetColor("#1a237e", 0.5); err != nil {
		t.Fatal(err)
	}
	if p.Color().A != 128 {
		t.Errorf("expected alpha 128, got %d", p.Color().A)
	}
	if err := p.SetColor("nope", 1); err == nil {
		t.Error("expected error")
	}
	if p.Color().A != 128 {
		t.Error("failed SetColor changed the color")
	}
}
