package config

import "sort"

// Presets are the canvases the site configured per page.
var Presets = map[string]*CanvasConfig{
	"main": {
		Particles: 80, LineWidth: 1.5, Speed: 0.3, Opacity: 0.08,
		Mode: "geometric", Background: 100,
	},
	"hero": {
		Particles: 30, LineWidth: 2, Speed: 0.2, Opacity: 0.15,
		Mode: "organic", Background: 60,
	},
	"network": {
		Particles: 60, LineWidth: 1, Speed: 0.4, Opacity: 0.2,
		Mode: "network", Scheme: "primary", Background: 100,
	},
	"calm": {
		Particles: 25, LineWidth: 1, Speed: 0.15, Opacity: 0.12,
		Mode: "organic", Scheme: "mono", Background: -1, Noise: "perlin",
	},
}

// GetPreset returns a config with the named canvas preset applied, or nil.
func GetPreset(name string) *Config {
	p, ok := Presets[name]
	if !ok {
		return nil
	}
	cfg := DefaultConfig()
	cfg.Canvas = *p
	cfg.Canvas.Colors = append([]string(nil), p.Colors...)
	return cfg
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
