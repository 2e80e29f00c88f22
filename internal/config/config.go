package config

import (
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"

	"github.com/san-kum/backdrop/internal/turtle"
)

const (
	DefaultWidth   = 1280
	DefaultHeight  = 720
	DefaultFPS     = 60
	DefaultBackend = "raylib"
	DefaultTheme   = "midnight"
	DefaultDataDir = "./data"
)

// Backends lists the desktop window implementations.
var Backends = []string{"raylib", "ebiten"}

type Config struct {
	Width   int          `yaml:"width" env:"BACKDROP_WIDTH"`
	Height  int          `yaml:"height" env:"BACKDROP_HEIGHT"`
	FPS     int          `yaml:"fps" env:"BACKDROP_FPS"`
	Backend string       `yaml:"backend" env:"BACKDROP_BACKEND"`
	Theme   string       `yaml:"theme" env:"BACKDROP_THEME"`
	DataDir string       `yaml:"data_dir" env:"BACKDROP_DATA_DIR"`
	Canvas  CanvasConfig `yaml:"canvas"`
}

// CanvasConfig mirrors turtle.Options. Zero values fall back to the engine
// defaults.
type CanvasConfig struct {
	Particles  int      `yaml:"particles" env:"BACKDROP_PARTICLES"`
	LineWidth  float64  `yaml:"line_width" env:"BACKDROP_LINE_WIDTH"`
	Speed      float64  `yaml:"speed" env:"BACKDROP_SPEED"`
	Colors     []string `yaml:"colors,omitempty" env:"BACKDROP_COLORS" envSeparator:","`
	Opacity    float64  `yaml:"opacity" env:"BACKDROP_OPACITY"`
	Mode       string   `yaml:"mode" env:"BACKDROP_MODE"`
	Scheme     string   `yaml:"scheme,omitempty" env:"BACKDROP_SCHEME"`
	Background int      `yaml:"background" env:"BACKDROP_BACKGROUND"`
	Noise      string   `yaml:"noise,omitempty" env:"BACKDROP_NOISE"`
	Seed       int64    `yaml:"seed,omitempty" env:"BACKDROP_SEED"`
}

func DefaultConfig() *Config {
	return &Config{
		Width:   DefaultWidth,
		Height:  DefaultHeight,
		FPS:     DefaultFPS,
		Backend: DefaultBackend,
		Theme:   DefaultTheme,
		DataDir: DefaultDataDir,
		Canvas: CanvasConfig{
			Particles:  turtle.DefaultCount,
			LineWidth:  turtle.DefaultLineWidth,
			Speed:      turtle.DefaultSpeed,
			Opacity:    turtle.DefaultOpacity,
			Mode:       string(turtle.ModeGeometric),
			Background: turtle.DefaultBackground,
			Noise:      turtle.NoiseSine,
		},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// ApplyEnv overlays any BACKDROP_* variables that are set. Unset variables
// leave the current values alone.
func (c *Config) ApplyEnv() error {
	if err := env.Parse(c); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Options converts the canvas section into engine options.
func (c *Config) Options() turtle.Options {
	cv := c.Canvas
	return turtle.Options{
		Count:      cv.Particles,
		LineWidth:  cv.LineWidth,
		Speed:      cv.Speed,
		Colors:     cv.Colors,
		Opacity:    cv.Opacity,
		Mode:       turtle.Mode(cv.Mode),
		Scheme:     cv.Scheme,
		Background: cv.Background,
		Noise:      cv.Noise,
		Seed:       cv.Seed,
	}
}

func (c *Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("window size %dx%d: %w", c.Width, c.Height, turtle.ErrNoCanvas)
	}
	if c.FPS <= 0 {
		return fmt.Errorf("fps must be positive, got %d", c.FPS)
	}
	if !validBackend(c.Backend) {
		return fmt.Errorf("unknown backend %q (available: %v)", c.Backend, Backends)
	}
	if err := c.Options().WithDefaults().Validate(); err != nil {
		return fmt.Errorf("canvas: %w", err)
	}
	return nil
}

func validBackend(name string) bool {
	for _, b := range Backends {
		if b == name {
			return true
		}
	}
	return false
}
