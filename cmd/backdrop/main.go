package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/san-kum/backdrop/internal/config"
	"github.com/san-kum/backdrop/internal/export"
	"github.com/san-kum/backdrop/internal/gui"
	"github.com/san-kum/backdrop/internal/turtle"
	"github.com/san-kum/backdrop/internal/viz"
)

var (
	configFile string
	preset     string
	dataDir    string
	verbose    bool
	// canvas overrides
	mode      string
	scheme    string
	particles int
	seed      int64
	width     int
	height    int
	// window
	backend string
	theme   string
	// headless
	warmup  int
	every   int
	caption bool
	runs    int
	// sweep
	sweepMin   float64
	sweepMax   float64
	sweepSteps int
)

var logger = log.NewWithOptions(os.Stderr, log.Options{
	ReportTimestamp: true,
	TimeFormat:      time.Kitchen,
	Prefix:          "backdrop",
})

// main registers the commands, opens the desktop window when no subcommand
// is given, and exits with status 1 when a command fails.
func main() {
	rootCmd := &cobra.Command{
		Use:           "backdrop",
		Short:         "animated turtle canvas backgrounds",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose {
				logger.SetLevel(log.DebugLevel)
			}
		},
		RunE: runGUI,
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&configFile, "config", "", "config file path (yaml)")
	pf.StringVar(&preset, "preset", "", "canvas preset (main, hero, network, calm)")
	pf.StringVar(&dataDir, "data", config.DefaultDataDir, "data directory")
	pf.BoolVarP(&verbose, "verbose", "v", false, "debug logging")
	pf.StringVar(&mode, "mode", "", "animation mode (geometric, organic, network)")
	pf.StringVar(&scheme, "scheme", "", "color scheme (default, primary, mono, rainbow)")
	pf.IntVar(&particles, "particles", 0, "number of entities")
	pf.Int64Var(&seed, "seed", 0, "random seed (0 picks one from the clock)")
	pf.IntVar(&width, "width", config.DefaultWidth, "canvas width")
	pf.IntVar(&height, "height", config.DefaultHeight, "canvas height")

	rootCmd.Flags().StringVar(&backend, "backend", config.DefaultBackend, "window backend (raylib, ebiten)")
	rootCmd.Flags().Int("fps", config.DefaultFPS, "target frame rate")

	guiCmd := &cobra.Command{
		Use:   "gui",
		Short: "open the canvas in a desktop window",
		Args:  cobra.NoArgs,
		RunE:  runGUI,
	}
	guiCmd.Flags().StringVar(&backend, "backend", config.DefaultBackend, "window backend (raylib, ebiten)")
	guiCmd.Flags().Int("fps", config.DefaultFPS, "target frame rate")

	tuiCmd := &cobra.Command{
		Use:   "tui",
		Short: "run the canvas in the terminal",
		Args:  cobra.NoArgs,
		RunE:  runTUI,
	}
	tuiCmd.Flags().Int("fps", config.DefaultFPS, "frame rate")
	tuiCmd.Flags().StringVar(&theme, "theme", config.DefaultTheme, "color theme")

	renderCmd := &cobra.Command{
		Use:   "render",
		Short: "render frames to PNG files or an animated GIF",
		Args:  cobra.NoArgs,
		RunE:  runRender,
	}
	renderCmd.Flags().Int("frames", 120, "frames to render")
	renderCmd.Flags().IntVar(&warmup, "warmup", 60, "frames drawn before the first capture")
	renderCmd.Flags().IntVar(&every, "every", 2, "capture one frame in this many")
	renderCmd.Flags().Int("fps", 30, "GIF playback rate")
	renderCmd.Flags().StringP("out", "o", "frames", "output directory, or a .gif file")
	renderCmd.Flags().BoolVar(&caption, "caption", false, "stamp mode and frame on each image")

	snapshotCmd := &cobra.Command{
		Use:   "snapshot",
		Short: "render a single frame to PNG or SVG",
		Args:  cobra.NoArgs,
		RunE:  runSnapshot,
	}
	snapshotCmd.Flags().Int("frames", 120, "frames to run before capturing")
	snapshotCmd.Flags().StringP("out", "o", "snapshot.png", "output file (.png or .svg)")
	snapshotCmd.Flags().BoolVar(&caption, "caption", false, "stamp mode and frame on the PNG")

	recordCmd := &cobra.Command{
		Use:   "record",
		Short: "run headless and store per-frame metrics",
		Args:  cobra.NoArgs,
		RunE:  runRecord,
	}
	recordCmd.Flags().Int("frames", 600, "frames to record")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list recorded runs",
		Args:  cobra.NoArgs,
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot a recorded run",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}

	analyzeCmd := &cobra.Command{
		Use:   "analyze [run_id]",
		Short: "frequency analysis of a recorded run",
		Args:  cobra.ExactArgs(1),
		RunE:  analyzeRun,
	}

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [run_id]",
		Short: "export run data to JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportJSON,
	}

	benchCmd := &cobra.Command{
		Use:   "bench",
		Short: "benchmark every mode headlessly",
		Args:  cobra.NoArgs,
		RunE:  runBench,
	}
	benchCmd.Flags().Int("frames", 600, "frames per run")
	benchCmd.Flags().IntVar(&runs, "runs", 4, "parallel runs per mode")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list canvas presets",
		Args:  cobra.NoArgs,
		RunE:  listPresets,
	}

	patternCmd := &cobra.Command{
		Use:   "pattern [name]",
		Short: "draw a static turtle pattern (lists patterns without a name)",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runPattern,
	}
	patternCmd.Flags().StringP("out", "o", "", "output file (.png or .svg), default <name>.png")

	scenarioCmd := &cobra.Command{
		Use:   "scenario [file]",
		Short: "run a scripted scenario",
		Args:  cobra.ExactArgs(1),
		RunE:  runScenario,
	}

	sweepCmd := &cobra.Command{
		Use:   "sweep [param]",
		Short: "sweep one option (particles, speed, opacity, line_width)",
		Args:  cobra.ExactArgs(1),
		RunE:  runSweep,
	}
	sweepCmd.Flags().Float64Var(&sweepMin, "min", 0, "first value (default depends on the parameter)")
	sweepCmd.Flags().Float64Var(&sweepMax, "max", 0, "last value (default depends on the parameter)")
	sweepCmd.Flags().IntVar(&sweepSteps, "steps", 5, "number of values")
	sweepCmd.Flags().Int("frames", 300, "frames per value")

	rootCmd.AddCommand(guiCmd, tuiCmd, renderCmd, snapshotCmd, recordCmd, listCmd, plotCmd,
		analyzeCmd, exportJSONCmd, benchCmd, presetsCmd, patternCmd, scenarioCmd, sweepCmd)

	if err := rootCmd.Execute(); err != nil {
		logger.Error("command failed", "err", err)
		os.Exit(1)
	}
}

// loadConfig layers defaults, config file, preset, BACKDROP_* variables and
// explicitly set flags, in that order.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
		logger.Debug("loaded config", "path", configFile)
	}
	if preset != "" {
		p := config.GetPreset(preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset %q (available: %v)", preset, config.ListPresets())
		}
		cfg.Canvas = p.Canvas
	}
	if err := cfg.ApplyEnv(); err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("width") {
		cfg.Width = width
	}
	if flags.Changed("height") {
		cfg.Height = height
	}
	if flags.Changed("data") {
		cfg.DataDir = dataDir
	}
	if flags.Changed("mode") {
		cfg.Canvas.Mode = mode
	}
	if flags.Changed("scheme") {
		cfg.Canvas.Scheme = scheme
	}
	if flags.Changed("particles") {
		cfg.Canvas.Particles = particles
	}
	if flags.Changed("seed") {
		cfg.Canvas.Seed = seed
	}
	if flags.Lookup("fps") != nil && flags.Changed("fps") {
		cfg.FPS, _ = flags.GetInt("fps")
	}
	if flags.Lookup("backend") != nil && flags.Changed("backend") {
		cfg.Backend = backend
	}
	if flags.Lookup("theme") != nil && flags.Changed("theme") {
		cfg.Theme = theme
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func newEngine(cfg *config.Config) (*turtle.Engine, error) {
	eng, err := turtle.New(cfg.Options(), float64(cfg.Width), float64(cfg.Height))
	if err != nil {
		return nil, err
	}
	o := eng.Options()
	logger.Debug("engine ready", "mode", o.Mode, "count", o.Count, "seed", o.Seed,
		"size", fmt.Sprintf("%dx%d", cfg.Width, cfg.Height))
	return eng, nil
}

func runGUI(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	eng, err := newEngine(cfg)
	if err != nil {
		return err
	}

	opts := gui.Options{
		Width:  cfg.Width,
		Height: cfg.Height,
		FPS:    cfg.FPS,
		Title:  "backdrop - " + string(eng.Mode()),
		Logger: logger,
	}
	logger.Info("opening window", "backend", cfg.Backend, "mode", eng.Mode())
	switch cfg.Backend {
	case "ebiten":
		return gui.NewEbiten(eng, opts).Run()
	default:
		return gui.NewRaylib(eng, opts).Run()
	}
}

func runTUI(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	eng, err := newEngine(cfg)
	if err != nil {
		return err
	}

	m := viz.NewModel(eng, cfg.FPS, cfg.Theme)
	m.OnSnapshot = func(c *viz.Canvas) (string, error) {
		if err := os.MkdirAll(cfg.DataDir, 0755); err != nil {
			return "", err
		}
		path := filepath.Join(cfg.DataDir, fmt.Sprintf("snapshot_%d.svg", time.Now().Unix()))
		if err := os.WriteFile(path, []byte(export.CanvasToSVG(c, 4)), 0644); err != nil {
			return "", err
		}
		return path, nil
	}

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseAllMotion())
	if _, err := p.Run(); err != nil {
		return err
	}
	return nil
}
