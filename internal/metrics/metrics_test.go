package metrics

import (
	"math"
	"testing"

	"github.com/san-kum/backdrop/internal/turtle"
)

func TestMeanSpeed(t *testing.T) {
	m := NewMeanSpeed()
	s := &turtle.State{Entities: []turtle.Entity{
		{Vel: turtle.Vec{X: 3, Y: 4}},
		{Vel: turtle.Vec{X: 0, Y: 1}},
	}}

	m.Observe(s)
	if math.Abs(m.Value()-3) > 1e-9 {
		t.Errorf("expected mean speed 3, got %f", m.Value())
	}

	m.Reset()
	if m.Value() != 0 {
		t.Error("expected zero after reset")
	}
}

func TestPeakSpeed(t *testing.T) {
	p := NewPeakSpeed()
	p.Observe(&turtle.State{Entities: []turtle.Entity{{Vel: turtle.Vec{X: 2}}}})
	p.Observe(&turtle.State{Entities: []turtle.Entity{{Vel: turtle.Vec{X: 1}}}})
	if p.Value() != 2 {
		t.Errorf("expected peak 2, got %f", p.Value())
	}
}

func TestContainment(t *testing.T) {
	c := NewContainment()
	if c.Value() != 1 {
		t.Error("expected 1 with no samples")
	}

	in := &turtle.State{Width: 10, Height: 10, Entities: []turtle.Entity{{Pos: turtle.Vec{X: 5, Y: 5}}}}
	out := &turtle.State{Width: 10, Height: 10, Entities: []turtle.Entity{{Pos: turtle.Vec{X: 11, Y: 5}}}}
	c.Observe(in)
	c.Observe(out)
	if c.Value() != 0.5 {
		t.Errorf("expected 0.5, got %f", c.Value())
	}
}

func TestLinks(t *testing.T) {
	tests := []struct {
		name  string
		state *turtle.State
		want  float64
	}{
		{
			name: "network uses static graph",
			state: &turtle.State{
				Mode:  turtle.ModeNetwork,
				Links: []turtle.Link{{A: 0, B: 1}, {A: 1, B: 2}},
			},
			want: 2,
		},
		{
			name: "geometric counts proximity pairs",
			state: &turtle.State{
				Mode: turtle.ModeGeometric,
				Entities: []turtle.Entity{
					{Pos: turtle.Vec{X: 0, Y: 0}},
					{Pos: turtle.Vec{X: 50, Y: 0}},
					{Pos: turtle.Vec{X: 500, Y: 0}},
				},
			},
			want: 1,
		},
		{
			name:  "organic has none",
			state: &turtle.State{Mode: turtle.ModeOrganic, Entities: make([]turtle.Entity, 3)},
			want:  0,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := NewLinks(turtle.ProximityRadius)
			l.Observe(tt.state)
			if l.Value() != tt.want {
				t.Errorf("expected %f, got %f", tt.want, l.Value())
			}
		})
	}
}

func TestSeries(t *testing.T) {
	eng, err := turtle.New(turtle.Options{Mode: turtle.ModeNetwork, Count: 20, Seed: 3}, 800, 600)
	if err != nil {
		t.Fatal(err)
	}
	r := NewSeries()
	for i := 0; i < 30; i++ {
		eng.Step()
		r.Observe(eng.State())
	}

	if len(r.Samples) != 30 {
		t.Fatalf("expected 30 samples, got %d", len(r.Samples))
	}
	if r.Samples[29].Frame != 30 {
		t.Errorf("expected last frame 30, got %d", r.Samples[29].Frame)
	}
	vals := r.Values()
	if vals["containment"] != 1 {
		t.Errorf("expected full containment, got %f", vals["containment"])
	}
	if got := r.Column("links"); len(got) != 30 {
		t.Errorf("expected 30 link samples, got %d", len(got))
	}
	for i, g := range r.Column("pulse") {
		if g < 0 || g > 1 {
			t.Fatalf("sample %d: expected glow in [0,1], got %f", i, g)
		}
	}
	if r.Samples[29].Speed == 0 {
		t.Error("expected moving network nodes")
	}
	if r.Column("bogus") != nil {
		t.Error("expected nil for unknown column")
	}

	r.Reset()
	if len(r.Samples) != 0 {
		t.Error("expected samples cleared")
	}
}
