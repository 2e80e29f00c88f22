package pen

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/san-kum/backdrop/internal/turtle"
)

var namedColors = map[string]string{
	"white":   "#ffffff",
	"black":   "#000000",
	"red":     "#ff0000",
	"green":   "#008000",
	"blue":    "#0000ff",
	"yellow":  "#ffff00",
	"cyan":    "#00ffff",
	"magenta": "#ff00ff",
	"gold":    "#ffd700",
	"navy":    "#000080",
	"gray":    "#808080",
	"grey":    "#808080",
}

// ParseColor accepts #rgb / #rrggbb, a small set of CSS color names, and
// hsl(h, s%, l%). The result is opaque.
func ParseColor(spec string) (color.NRGBA, error) {
	s := strings.ToLower(strings.TrimSpace(spec))
	if hex, ok := namedColors[s]; ok {
		s = hex
	}

	var c colorful.Color
	switch {
	case strings.HasPrefix(s, "#"):
		var err error
		if c, err = colorful.Hex(s); err != nil {
			return color.NRGBA{}, fmt.Errorf("%w: %q", turtle.ErrBadColor, spec)
		}
	case strings.HasPrefix(s, "hsl(") && strings.HasSuffix(s, ")"):
		args, err := parseArgs(s[len("hsl(") : len(s)-1])
		if err != nil {
			return color.NRGBA{}, fmt.Errorf("%w: %q: %v", turtle.ErrBadColor, spec, err)
		}
		c = colorful.Hsl(args[0], args[1]/100, args[2]/100)
	default:
		return color.NRGBA{}, fmt.Errorf("%w: %q", turtle.ErrBadColor, spec)
	}

	r, g, b := c.Clamped().RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: 255}, nil
}

func parseArgs(s string) ([3]float64, error) {
	var out [3]float64
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return out, fmt.Errorf("want 3 components, got %d", len(parts))
	}
	for i, part := range parts {
		v, err := strconv.ParseFloat(strings.TrimSuffix(strings.TrimSpace(part), "%"), 64)
		if err != nil {
			return out, err
		}
		out[i] = v
	}
	return out, nil
}
