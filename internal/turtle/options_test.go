package turtle

import (
	"errors"
	"testing"
)

func TestDefaultOptions(t *testing.T) {
	o := DefaultOptions()

	if o.Count != DefaultCount {
		t.Errorf("expected count %d, got %d", DefaultCount, o.Count)
	}
	if o.Mode != ModeGeometric {
		t.Errorf("expected geometric mode, got %s", o.Mode)
	}
	if len(o.Colors) != len(DefaultColors) {
		t.Errorf("expected %d colors, got %d", len(DefaultColors), len(o.Colors))
	}
	if o.BackgroundCount() != DefaultBackground {
		t.Errorf("expected %d background particles, got %d", DefaultBackground, o.BackgroundCount())
	}
	if err := o.Validate(); err != nil {
		t.Errorf("defaults should validate: %v", err)
	}
}

func TestOptions_SchemeReplacesColors(t *testing.T) {
	o := Options{Scheme: "rainbow", Colors: []string{"#123456"}}.WithDefaults()
	if len(o.Colors) != len(Schemes["rainbow"]) {
		t.Errorf("expected rainbow palette, got %v", o.Colors)
	}
}

func TestOptions_NegativeBackgroundDisablesLayer(t *testing.T) {
	o := Options{Background: -5}.WithDefaults()
	if o.BackgroundCount() != 0 {
		t.Errorf("expected no background layer, got %d", o.BackgroundCount())
	}
}

func TestOptions_Validate(t *testing.T) {
	tests := []struct {
		name string
		opts Options
		want error
	}{
		{"unknown mode", Options{Mode: "spiral"}, ErrUnknownMode},
		{"too many", Options{Count: MaxCount + 1}, ErrCount},
		{"negative count", Options{Count: -1}, ErrCount},
		{"bad color", Options{Colors: []string{"not-a-color"}}, ErrBadColor},
		{"unknown scheme", Options{Scheme: "neon"}, ErrUnknownScheme},
		{"unknown noise", Options{Noise: "simplex"}, ErrUnknownNoise},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.opts.WithDefaults().Validate()
			if !errors.Is(err, tt.want) {
				t.Errorf("expected %v, got %v", tt.want, err)
			}
		})
	}
}

func TestParseMode(t *testing.T) {
	for _, m := range Modes {
		got, err := ParseMode(" " + string(m) + " ")
		if err != nil || got != m {
			t.Errorf("ParseMode(%q) = %q, %v", m, got, err)
		}
	}
	if _, err := ParseMode("spiral"); !errors.Is(err, ErrUnknownMode) {
		t.Errorf("expected ErrUnknownMode, got %v", err)
	}
}

func TestParseShape(t *testing.T) {
	for _, sh := range []Shape{ShapeCircle, ShapeSquare, ShapeTriangle} {
		got, ok := ParseShape(sh.String())
		if !ok || got != sh {
			t.Errorf("ParseShape(%q) = %v, %v", sh.String(), got, ok)
		}
	}
	if _, ok := ParseShape("unknown"); ok {
		t.Error("expected unknown shape rejected")
	}
}

func TestMode_Next(t *testing.T) {
	if ModeGeometric.Next() != ModeOrganic || ModeOrganic.Next() != ModeNetwork || ModeNetwork.Next() != ModeGeometric {
		t.Error("mode cycle out of order")
	}
}

func TestParsePalette(t *testing.T) {
	p, err := ParsePalette([]string{"#f5b400", "#fff"})
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if p[0].R != 0xf5 || p[0].G != 0xb4 || p[0].B != 0 || p[0].A != 255 {
		t.Errorf("unexpected color %+v", p[0])
	}
	if p[1].R != 255 || p[1].G != 255 || p[1].B != 255 {
		t.Errorf("short hex not expanded: %+v", p[1])
	}
}

func TestWithAlpha(t *testing.T) {
	c := WithAlpha(particleGold, 2)
	if c.A != 255 {
		t.Errorf("expected clamped alpha 255, got %d", c.A)
	}
	c = WithAlpha(particleGold, -1)
	if c.A != 0 {
		t.Errorf("expected clamped alpha 0, got %d", c.A)
	}
}
