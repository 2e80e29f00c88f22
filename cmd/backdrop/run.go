package main

import (
	"context"
	"fmt"
	"image"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/fogleman/gg"
	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/san-kum/backdrop/internal/analysis"
	"github.com/san-kum/backdrop/internal/automation"
	"github.com/san-kum/backdrop/internal/config"
	"github.com/san-kum/backdrop/internal/export"
	"github.com/san-kum/backdrop/internal/metrics"
	"github.com/san-kum/backdrop/internal/pen"
	"github.com/san-kum/backdrop/internal/render"
	"github.com/san-kum/backdrop/internal/storage"
	"github.com/san-kum/backdrop/internal/turtle"
)

// interruptible returns a context canceled on Ctrl-C.
func interruptible() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt)
}

func frameCaption(eng *turtle.Engine) func(int) string {
	return func(frame int) string {
		return fmt.Sprintf("%s  frame %d", eng.Mode(), frame)
	}
}

func runRender(cmd *cobra.Command, args []string) error {
	frames, _ := cmd.Flags().GetInt("frames")
	fps, _ := cmd.Flags().GetInt("fps")
	outPath, _ := cmd.Flags().GetString("out")
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	eng, err := newEngine(cfg)
	if err != nil {
		return err
	}
	raster, err := render.NewRaster(cfg.Width, cfg.Height)
	if err != nil {
		return err
	}

	seq := &render.Sequence{Engine: eng, Raster: raster, Warmup: warmup, Every: every}
	if caption {
		seq.Caption = frameCaption(eng)
	}

	ctx, cancel := interruptible()
	defer cancel()

	start := time.Now()
	if strings.EqualFold(filepath.Ext(outPath), ".gif") {
		anim := render.NewGIF(fps)
		err = seq.Run(ctx, frames, func(_ int, img image.Image) error {
			anim.Add(img)
			return nil
		})
		if err != nil {
			return err
		}
		f, err := os.Create(outPath)
		if err != nil {
			return err
		}
		defer f.Close()
		if err := anim.Encode(f); err != nil {
			return err
		}
		fmt.Printf("wrote %s (%d frames) in %v\n", outPath, anim.Len(), time.Since(start).Round(time.Millisecond))
		return nil
	}

	if err := os.MkdirAll(outPath, 0755); err != nil {
		return err
	}
	written := 0
	err = seq.Run(ctx, frames, func(frame int, img image.Image) error {
		written++
		return gg.SavePNG(render.FramePath(outPath, frame), img)
	})
	if err != nil {
		return err
	}
	fmt.Printf("wrote %d frames to %s in %v\n", written, outPath, time.Since(start).Round(time.Millisecond))
	return nil
}

func runSnapshot(cmd *cobra.Command, args []string) error {
	frames, _ := cmd.Flags().GetInt("frames")
	outPath, _ := cmd.Flags().GetString("out")
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	eng, err := newEngine(cfg)
	if err != nil {
		return err
	}

	switch strings.ToLower(filepath.Ext(outPath)) {
	case ".svg":
		svg := export.NewSVG(float64(cfg.Width), float64(cfg.Height))
		for i := 0; i < frames; i++ {
			eng.Frame(svg)
		}
		f, err := os.Create(outPath)
		if err != nil {
			return err
		}
		defer f.Close()
		if _, err := svg.WriteTo(f); err != nil {
			return err
		}
		fmt.Printf("wrote %s (%d elements)\n", outPath, svg.Elements())
	case ".png":
		raster, err := render.NewRaster(cfg.Width, cfg.Height)
		if err != nil {
			return err
		}
		for i := 0; i < frames; i++ {
			eng.Frame(raster)
		}
		if caption {
			if err := raster.Caption(frameCaption(eng)(eng.State().Frame)); err != nil {
				return err
			}
		}
		if err := raster.SavePNG(outPath); err != nil {
			return err
		}
		fmt.Printf("wrote %s\n", outPath)
	default:
		return fmt.Errorf("unsupported snapshot format %q (use .png or .svg)", filepath.Ext(outPath))
	}
	return nil
}

func runRecord(cmd *cobra.Command, args []string) error {
	frames, _ := cmd.Flags().GetInt("frames")
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	eng, err := newEngine(cfg)
	if err != nil {
		return err
	}

	ctx, cancel := interruptible()
	defer cancel()

	fmt.Printf("recording %s for %d frames...\n", eng.Mode(), frames)
	var tally turtle.Tally
	series := metrics.NewSeries()
	start := time.Now()
	for f := 0; f < frames; f++ {
		if ctx.Err() != nil {
			logger.Warn("interrupted, saving partial run", "frames", f)
			break
		}
		eng.Frame(&tally)
		series.Observe(eng.State())
	}
	elapsed := time.Since(start)

	st := storage.New(cfg.DataDir)
	runID, err := st.Save(&storage.Recording{
		Options:  eng.Options(),
		Width:    float64(cfg.Width),
		Height:   float64(cfg.Height),
		Samples:  series.Samples,
		Entities: eng.State().Entities,
		Metrics:  series.Values(),
	})
	if err != nil {
		return fmt.Errorf("failed to save run: %w", err)
	}

	fmt.Printf("completed in %v\n", elapsed)
	fmt.Printf("run id: %s\n", runID)
	fmt.Printf("frames: %d\n", len(series.Samples))
	for name, val := range series.Values() {
		fmt.Printf("  %s: %.4f\n", name, val)
	}
	return nil
}

func openStore(cmd *cobra.Command) (*storage.Store, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}
	return storage.New(cfg.DataDir), nil
}

func listRuns(cmd *cobra.Command, args []string) error {
	st, err := openStore(cmd)
	if err != nil {
		return err
	}
	runs, err := st.List()
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tMODE\tSCHEME\tTIME\tSIZE\tCOUNT\tFRAMES\tSEED")
	for _, run := range runs {
		scheme := run.Scheme
		if scheme == "" {
			scheme = "-"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%.0fx%.0f\t%d\t%d\t%d\n",
			run.ID,
			run.Mode,
			scheme,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Width, run.Height,
			run.Count,
			run.Frames,
			run.Seed,
		)
	}
	return w.Flush()
}

func plotRun(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st, err := openStore(cmd)
	if err != nil {
		return err
	}
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}
	samples, err := st.LoadSamples(runID)
	if err != nil {
		return err
	}
	if len(samples) == 0 {
		return fmt.Errorf("no data to plot")
	}

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("mode: %s\n", meta.Mode)
	fmt.Printf("samples: %d\n\n", len(samples))

	series := &metrics.Series{Samples: samples}
	plots := []struct{ column, caption string }{
		{"speed", "mean entity speed"},
		{"links", "links"},
		{"life", "mean particle life"},
		{"pulse", "mean node glow"},
	}
	for _, p := range plots {
		graph := asciigraph.Plot(series.Column(p.column),
			asciigraph.Height(10),
			asciigraph.Width(80),
			asciigraph.Caption(p.caption),
		)
		fmt.Println(graph)
		fmt.Println()
	}
	return nil
}

func analyzeRun(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st, err := openStore(cmd)
	if err != nil {
		return err
	}
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}
	samples, err := st.LoadSamples(runID)
	if err != nil {
		return err
	}
	if len(samples) < 4 {
		return fmt.Errorf("need at least 4 samples, got %d", len(samples))
	}

	fmt.Printf("frequency analysis: %s\n", meta.ID)
	fmt.Printf("mode: %s\n\n", meta.Mode)

	series := &metrics.Series{Samples: samples}
	speed := series.Column("speed")
	ps := analysis.PowerSpectrum(speed)
	if len(ps) > 80 {
		ps = ps[:80]
	}
	graph := asciigraph.Plot(ps,
		asciigraph.Height(15),
		asciigraph.Width(80),
		asciigraph.Caption("power spectrum (mean speed)"),
	)
	fmt.Println(graph)
	fmt.Println()

	for _, col := range []string{"speed", "links", "life", "pulse"} {
		peak, ok := analysis.DominantPeak(series.Column(col))
		if !ok {
			fmt.Printf("%-6s no periodic component\n", col)
			continue
		}
		fmt.Printf("%-6s dominant period: %.1f frames (power %.3f)\n", col, peak.Period, peak.Power)
	}
	return nil
}

func exportJSON(cmd *cobra.Command, args []string) error {
	st, err := openStore(cmd)
	if err != nil {
		return err
	}
	return st.ExportJSON(os.Stdout, args[0])
}

func runBench(cmd *cobra.Command, args []string) error {
	frames, _ := cmd.Flags().GetInt("frames")
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	ctx, cancel := interruptible()
	defer cancel()

	fmt.Printf("benchmarking %d runs x %d frames at %dx%d\n\n", runs, frames, cfg.Width, cfg.Height)
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "MODE\tSEED\tFRAMES\tTIME\tFPS\tSHAPES\tCONTAINED")

	seedStart := cfg.Canvas.Seed
	if seedStart == 0 {
		seedStart = 1
	}
	for _, m := range turtle.Modes {
		o := cfg.Options()
		o.Mode = m
		stats, err := turtle.NewEnsemble(o, float64(cfg.Width), float64(cfg.Height), runs, seedStart).Run(ctx, frames)
		if err != nil {
			return err
		}
		for _, s := range stats {
			fmt.Fprintf(w, "%s\t%d\t%d\t%v\t%.0f\t%d\t%t\n",
				m, s.Seed, s.Frames, s.Elapsed.Round(time.Microsecond), s.FPS(), s.Shapes, s.Contained)
		}
	}
	return w.Flush()
}

func listPresets(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "PRESET\tMODE\tPARTICLES\tSPEED\tOPACITY\tSCHEME")
	for _, name := range config.ListPresets() {
		p := config.Presets[name]
		scheme := p.Scheme
		if scheme == "" {
			scheme = "-"
		}
		fmt.Fprintf(w, "%s\t%s\t%d\t%.2f\t%.2f\t%s\n", name, p.Mode, p.Particles, p.Speed, p.Opacity, scheme)
	}
	return w.Flush()
}

func runPattern(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		fmt.Println("patterns:")
		for _, name := range pen.PatternNames() {
			fmt.Printf("  %s\n", name)
		}
		return nil
	}
	name := args[0]
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	out, _ := cmd.Flags().GetString("out")
	if out == "" {
		out = name + ".png"
	}
	w, h := float64(cfg.Width), float64(cfg.Height)

	switch strings.ToLower(filepath.Ext(out)) {
	case ".svg":
		svg := export.NewSVG(w, h)
		if err := pen.Draw(name, svg, w, h, cfg.Canvas.Seed); err != nil {
			return err
		}
		f, err := os.Create(out)
		if err != nil {
			return err
		}
		defer f.Close()
		if _, err := svg.WriteTo(f); err != nil {
			return err
		}
	case ".png":
		raster, err := render.NewRaster(cfg.Width, cfg.Height)
		if err != nil {
			return err
		}
		if err := pen.Draw(name, raster, w, h, cfg.Canvas.Seed); err != nil {
			return err
		}
		if err := raster.SavePNG(out); err != nil {
			return err
		}
	default:
		return fmt.Errorf("unsupported pattern format %q (use .png or .svg)", filepath.Ext(out))
	}
	fmt.Printf("wrote %s\n", out)
	return nil
}

func runScenario(cmd *cobra.Command, args []string) error {
	sc, err := automation.LoadScenario(args[0])
	if err != nil {
		return fmt.Errorf("failed to load scenario: %w", err)
	}

	ctx, cancel := interruptible()
	defer cancel()

	fmt.Printf("running scenario %q (%d steps)\n", sc.Name, len(sc.Steps))
	r := &automation.Runner{Logger: logger}
	results, err := r.Run(ctx, sc)
	printSteps(results)
	return err
}

func printSteps(results []automation.StepResult) {
	if len(results) == 0 {
		return
	}
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "STEP\tMODE\tSCHEME\tFRAMES\tSPEED\tLINKS\tCONTAINED")
	for _, r := range results {
		scheme := r.Scheme
		if scheme == "" {
			scheme = "-"
		}
		fmt.Fprintf(w, "%d\t%s\t%s\t%d\t%.3f\t%d\t%t\n",
			r.Step, r.Mode, scheme, r.Frames, r.Last.Speed, r.Last.Links, r.Contained)
	}
	w.Flush()
}

func runSweep(cmd *cobra.Command, args []string) error {
	frames, _ := cmd.Flags().GetInt("frames")
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	lo, hi, err := automation.DefaultRange(args[0])
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("min") {
		lo = sweepMin
	}
	if cmd.Flags().Changed("max") {
		hi = sweepMax
	}

	ctx, cancel := interruptible()
	defer cancel()

	sw := &automation.ParameterSweep{
		Param:    args[0],
		Min:      lo,
		Max:      hi,
		NumSteps: sweepSteps,
		Frames:   frames,
		Width:    float64(cfg.Width),
		Height:   float64(cfg.Height),
		Base:     cfg.Options(),
	}
	results, err := automation.RunSweep(ctx, sw)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "%s\tMEAN_SPEED\tPEAK_SPEED\tLINKS\tCONTAINED\n", strings.ToUpper(sw.Param))
	for _, r := range results {
		fmt.Fprintf(w, "%.4f\t%.4f\t%.4f\t%.1f\t%t\n",
			r.Value, r.Metrics["mean_speed"], r.Metrics["peak_speed"], r.Metrics["links"], r.Contained)
	}
	return w.Flush()
}
