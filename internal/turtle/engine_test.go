package turtle

import (
	"context"
	"errors"
	"image/color"
	"reflect"
	"testing"
)

func TestNew_NoCanvas(t *testing.T) {
	tests := []struct {
		name string
		w, h float64
	}{
		{"zero width", 0, 100},
		{"zero height", 100, 0},
		{"negative", -1, -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			eng, err := New(Options{}, tt.w, tt.h)
			if !errors.Is(err, ErrNoCanvas) {
				t.Errorf("expected ErrNoCanvas, got %v", err)
			}
			if eng != nil {
				t.Error("expected nil engine")
			}
		})
	}
}

func TestEngine_NilIsNoop(t *testing.T) {
	var eng *Engine
	var tally Tally

	eng.Frame(&tally)
	eng.PointerMove(Vec{1, 1})
	eng.Click(Vec{1, 1})
	eng.Resize(10, 10)
	eng.Reset()
	if err := eng.SetMode(ModeNetwork); err != nil {
		t.Errorf("SetMode on nil: %v", err)
	}
	if err := eng.SetScheme("mono"); err != nil {
		t.Errorf("SetScheme on nil: %v", err)
	}
	if eng.State() != nil {
		t.Error("expected nil state")
	}
	if tally != (Tally{}) {
		t.Errorf("nil engine drew: %+v", tally)
	}
}

func TestEngine_SetModeDiscardsEntities(t *testing.T) {
	eng, err := New(Options{Mode: ModeNetwork, Count: 30, Seed: 4}, 800, 600)
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	for i := 0; i < 10; i++ {
		eng.Step()
	}
	if len(eng.State().Links) == 0 {
		t.Fatal("expected network links")
	}

	if err := eng.SetMode(ModeOrganic); err != nil {
		t.Fatalf("set mode: %v", err)
	}
	s := eng.State()
	if s.Mode != ModeOrganic || eng.Mode() != ModeOrganic {
		t.Errorf("expected organic, got %s/%s", s.Mode, eng.Mode())
	}
	if len(s.Entities) != 30 {
		t.Errorf("expected 30 entities, got %d", len(s.Entities))
	}
	if s.Links != nil || s.Adjacency != nil {
		t.Error("network graph survived the mode switch")
	}
	if s.Frame != 0 {
		t.Errorf("expected fresh state, frame %d", s.Frame)
	}
	for i, e := range s.Entities {
		if e.Trail.Cap() != DefaultTrailLen {
			t.Errorf("entity %d: expected organic trail, cap %d", i, e.Trail.Cap())
		}
	}

	if err := eng.SetMode("spiral"); !errors.Is(err, ErrUnknownMode) {
		t.Errorf("expected ErrUnknownMode, got %v", err)
	}
	if eng.Mode() != ModeOrganic {
		t.Errorf("failed switch changed mode to %s", eng.Mode())
	}
}

func TestEngine_SetScheme(t *testing.T) {
	eng, err := New(Options{Count: 20, Seed: 8}, 400, 400)
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	if err := eng.SetScheme("mono"); err != nil {
		t.Fatalf("set scheme: %v", err)
	}
	mono, _ := ParsePalette(Schemes["mono"])
	for i, e := range eng.State().Entities {
		if !paletteHas(mono, e.Color.R, e.Color.G, e.Color.B) {
			t.Errorf("entity %d color %+v not in mono palette", i, e.Color)
		}
	}
	if err := eng.SetScheme("neon"); !errors.Is(err, ErrUnknownScheme) {
		t.Errorf("expected ErrUnknownScheme, got %v", err)
	}
}

func TestEngine_NextSchemeCycles(t *testing.T) {
	eng, err := New(Options{Count: 5, Seed: 1}, 100, 100)
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	seen := map[string]bool{}
	for range SchemeNames() {
		if err := eng.NextScheme(); err != nil {
			t.Fatalf("next scheme: %v", err)
		}
		seen[eng.Options().Scheme] = true
	}
	if len(seen) != len(Schemes) {
		t.Errorf("expected %d schemes visited, got %v", len(Schemes), seen)
	}
}

func TestEngine_NextSchemeLeavesDefault(t *testing.T) {
	eng, err := New(Options{Count: 5, Seed: 1}, 100, 100)
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	before := eng.Options().Colors
	if err := eng.NextScheme(); err != nil {
		t.Fatalf("next scheme: %v", err)
	}
	after := eng.Options()
	if after.Scheme == DefaultScheme {
		t.Fatalf("expected first press to leave %q", DefaultScheme)
	}
	if reflect.DeepEqual(before, after.Colors) {
		t.Errorf("expected palette change, still %v", after.Colors)
	}
}

func TestEngine_ResizeKeepsCount(t *testing.T) {
	eng, err := New(Options{Mode: ModeGeometric, Count: 25, Seed: 2}, 1000, 800)
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	eng.Resize(320, 240)
	s := eng.State()
	if s.Width != 320 || s.Height != 240 {
		t.Errorf("expected 320x240, got %vx%v", s.Width, s.Height)
	}
	if len(s.Entities) != 25 {
		t.Errorf("expected 25 entities, got %d", len(s.Entities))
	}
	if !s.Contained() {
		t.Error("entities outside resized canvas")
	}
}

func TestEngine_SeedIsDeterministic(t *testing.T) {
	a, _ := New(Options{Mode: ModeOrganic, Seed: 42}, 500, 500)
	b, _ := New(Options{Mode: ModeOrganic, Seed: 42}, 500, 500)
	for i := 0; i < 50; i++ {
		a.Step()
		b.Step()
	}
	for i := range a.State().Entities {
		if a.State().Entities[i].Pos != b.State().Entities[i].Pos {
			t.Fatalf("entity %d diverged", i)
		}
	}
}

func TestEngine_PointerRepels(t *testing.T) {
	eng, err := New(Options{Count: 1, Seed: 3}, 500, 500)
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	e := &eng.State().Entities[0]
	e.Pos, e.Vel = Vec{100, 100}, Vec{}

	eng.PointerMove(Vec{150, 100})
	if e.Vel.X >= 0 || e.Vel.Y != 0 {
		t.Errorf("expected push to -x, got %v", e.Vel)
	}

	e.Vel = Vec{}
	eng.PointerMove(Vec{300, 100})
	if e.Vel != (Vec{}) {
		t.Errorf("pointer out of range moved entity: %v", e.Vel)
	}
}

func TestEngine_ClickImpulse(t *testing.T) {
	eng, err := New(Options{Count: 2, Seed: 3}, 1000, 500)
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	s := eng.State()
	s.Entities[0].Pos, s.Entities[0].Vel = Vec{100, 100}, Vec{}
	s.Entities[1].Pos, s.Entities[1].Vel = Vec{900, 100}, Vec{}

	eng.Click(Vec{120, 100})
	if s.Entities[1].Vel != (Vec{}) {
		t.Errorf("far entity got impulse %v", s.Entities[1].Vel)
	}
	v := s.Entities[0].Vel
	if v.X < -ClickForce/2 || v.X >= ClickForce/2 || v.Y < -ClickForce/2 || v.Y >= ClickForce/2 {
		t.Errorf("impulse %v out of range", v)
	}
}

func TestEnsemble_Run(t *testing.T) {
	en := NewEnsemble(Options{Count: 15, Mode: ModeGeometric}, 400, 300, 3, 100)
	stats, err := en.Run(context.Background(), 20)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if len(stats) != 3 {
		t.Fatalf("expected 3 runs, got %d", len(stats))
	}
	for i, s := range stats {
		if s.Seed != 100+int64(i) {
			t.Errorf("run %d: seed %d", i, s.Seed)
		}
		if !s.Contained {
			t.Errorf("run %d left the canvas", i)
		}
		if s.Shapes < 15*20 {
			t.Errorf("run %d: only %d shapes", i, s.Shapes)
		}
	}
}

func TestEnsemble_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	en := NewEnsemble(Options{Count: 5}, 100, 100, 2, 1)
	_, err := en.Run(ctx, 10)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
	var fe *FrameError
	if !errors.As(err, &fe) {
		t.Errorf("expected FrameError, got %T", err)
	}
}

func paletteHas(p []color.NRGBA, r, g, b uint8) bool {
	for _, c := range p {
		if c.R == r && c.G == g && c.B == b {
			return true
		}
	}
	return false
}
