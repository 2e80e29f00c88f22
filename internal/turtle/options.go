package turtle

import (
	"fmt"
	"image/color"
	"sort"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// Mode selects one of the interchangeable animation behaviours.
type Mode string

const (
	ModeGeometric Mode = "geometric"
	ModeOrganic   Mode = "organic"
	ModeNetwork   Mode = "network"
)

// Modes lists every mode in display order.
var Modes = []Mode{ModeGeometric, ModeOrganic, ModeNetwork}

func ParseMode(s string) (Mode, error) {
	m := Mode(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Modes {
		if m == known {
			return m, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownMode, s)
}

// Next returns the mode after m, wrapping around.
func (m Mode) Next() Mode {
	for i, known := range Modes {
		if known == m {
			return Modes[(i+1)%len(Modes)]
		}
	}
	return ModeGeometric
}

const (
	NoiseSine   = "sine"
	NoisePerlin = "perlin"
)

const (
	DefaultCount      = 50
	DefaultLineWidth  = 1.5
	DefaultSpeed      = 0.5
	DefaultOpacity    = 0.1
	DefaultBackground = 100
	MaxCount          = 500
)

var DefaultColors = []string{"#f5b400", "#00bcd4", "#ff4081", "#4caf50"}

// DefaultScheme names DefaultColors in Schemes.
const DefaultScheme = "default"

// Schemes are the named palettes selectable at runtime.
var Schemes = map[string][]string{
	DefaultScheme: DefaultColors,
	"primary": {"#f5b400", "#00bcd4", "#ff4081"},
	"mono":    {"#ffffff", "#f0f0f0", "#e0e0e0"},
	"rainbow": {"#ff0000", "#00ff00", "#0000ff", "#ffff00", "#ff00ff"},
}

func SchemeNames() []string {
	names := make([]string, 0, len(Schemes))
	for name := range Schemes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Options is the per-session option set. Zero values fall back to the
// defaults, so a partially filled literal is always usable. A negative
// Background disables the particle layer.
type Options struct {
	Count      int
	LineWidth  float64
	Speed      float64
	Colors     []string
	Opacity    float64
	Mode       Mode
	Scheme     string
	Background int
	Noise      string
	Seed       int64
}

func DefaultOptions() Options {
	return Options{}.WithDefaults()
}

// WithDefaults fills every zero field. A named Scheme replaces Colors.
func (o Options) WithDefaults() Options {
	if o.Count == 0 {
		o.Count = DefaultCount
	}
	if o.LineWidth == 0 {
		o.LineWidth = DefaultLineWidth
	}
	if o.Speed == 0 {
		o.Speed = DefaultSpeed
	}
	if o.Opacity == 0 {
		o.Opacity = DefaultOpacity
	}
	if o.Mode == "" {
		o.Mode = ModeGeometric
	}
	if o.Noise == "" {
		o.Noise = NoiseSine
	}
	switch {
	case o.Background == 0:
		o.Background = DefaultBackground
	case o.Background < 0:
		o.Background = -1
	}
	if colors, ok := Schemes[o.Scheme]; ok {
		o.Colors = append([]string(nil), colors...)
	} else if len(o.Colors) == 0 {
		o.Colors = append([]string(nil), DefaultColors...)
	}
	return o
}

// Validate checks an option set after defaults have been applied.
func (o Options) Validate() error {
	if o.Count < 0 || o.Count > MaxCount {
		return fmt.Errorf("%w: %d (max %d)", ErrCount, o.Count, MaxCount)
	}
	if _, err := ParseMode(string(o.Mode)); err != nil {
		return err
	}
	if o.Scheme != "" {
		if _, ok := Schemes[o.Scheme]; !ok {
			return fmt.Errorf("%w: %q (available: %v)", ErrUnknownScheme, o.Scheme, SchemeNames())
		}
	}
	if o.Noise != NoiseSine && o.Noise != NoisePerlin {
		return fmt.Errorf("%w: %q", ErrUnknownNoise, o.Noise)
	}
	if _, err := ParsePalette(o.Colors); err != nil {
		return err
	}
	return nil
}

// BackgroundCount is the size of the particle layer.
func (o Options) BackgroundCount() int {
	if o.Background < 0 {
		return 0
	}
	return o.Background
}

// ParsePalette converts hex color strings to opaque colors.
func ParsePalette(hexes []string) ([]color.NRGBA, error) {
	if len(hexes) == 0 {
		return nil, fmt.Errorf("%w: empty palette", ErrBadColor)
	}
	out := make([]color.NRGBA, len(hexes))
	for i, h := range hexes {
		c, err := colorful.Hex(strings.TrimSpace(h))
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrBadColor, h)
		}
		r, g, b := c.RGB255()
		out[i] = color.NRGBA{R: r, G: g, B: b, A: 255}
	}
	return out, nil
}

// WithAlpha returns c with its alpha set to a (0..1, clamped).
func WithAlpha(c color.NRGBA, a float64) color.NRGBA {
	if a < 0 {
		a = 0
	}
	if a > 1 {
		a = 1
	}
	c.A = uint8(a*255 + 0.5)
	return c
}
