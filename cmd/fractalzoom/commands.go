package main

import (
	"context"
	"fmt"
	"math"
	"os"
	"os/signal"
	"syscall"
	"text/tabwriter"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/san-kum/fractalzoom/internal/config"
	"github.com/san-kum/fractalzoom/internal/engine"
	"github.com/san-kum/fractalzoom/internal/experiment"
	"github.com/san-kum/fractalzoom/internal/export"
	"github.com/san-kum/fractalzoom/internal/gui"
	"github.com/san-kum/fractalzoom/internal/host"
	"github.com/san-kum/fractalzoom/internal/palette"
	"github.com/san-kum/fractalzoom/internal/screen"
	"github.com/san-kum/fractalzoom/internal/storage"
	"github.com/san-kum/fractalzoom/internal/viz"
	"github.com/san-kum/fractalzoom/internal/web"
)

func runLive(cmd *cobra.Command, args []string) error {
	viz.SetTheme(themeName)
	if pick {
		infos := make([]viz.PresetInfo, 0, len(config.Presets))
		for _, name := range config.ListPresets() {
			infos = append(infos, viz.PresetInfo{Name: name, Description: config.Presets[name].Description})
		}
		return viz.RunPicker(infos, func(name string, surface host.Surface) (*engine.Animation, error) {
			cfg, err := resolveConfig(cmd, name)
			if err != nil {
				return nil, err
			}
			return build(cfg, surface)
		})
	}

	cfg, err := resolveConfig(cmd, preset)
	if err != nil {
		return err
	}
	canvas := viz.NewCanvas()
	anim, err := build(cfg, canvas)
	if err != nil {
		return err
	}
	return viz.Run(viz.NewModel(anim, canvas, title()))
}

func runScreen(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd, preset)
	if err != nil {
		return err
	}
	s, err := screen.New()
	if err != nil {
		return err
	}
	defer s.Fini()

	anim, err := build(cfg, screen.NewSurface(s))
	if err != nil {
		return err
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return screen.NewApp(s, anim, title(), frameRate).Run(ctx)
}

func runWindow(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd, preset)
	if err != nil {
		return err
	}
	surface := gui.NewSurface(title(), int32(frameRate))
	anim, err := build(cfg, surface)
	if err != nil {
		return err
	}
	return gui.NewApp(anim, surface).Run()
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd, preset)
	if err != nil {
		return err
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	fmt.Printf("listening on http://localhost%s\n", addr)
	srv := web.NewServer(addr, frameRate, func(s host.Surface) (*engine.Animation, error) {
		return build(cfg, s)
	})
	return srv.Run(ctx)
}

func runRender(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd, preset)
	if err != nil {
		return err
	}
	if outPath == "" {
		outPath = "fractalzoom"
		if format != "png" {
			outPath += "." + format
		}
	}

	var surface host.Surface
	var finish func() error
	switch format {
	case "png":
		p := export.NewPNG(outPath, "frame")
		surface = p
		finish = func() error {
			fmt.Printf("wrote %d frames to %s\n", p.Frames(), outPath)
			return p.Close()
		}
	case "svg":
		s := export.NewSVG()
		surface = s
		finish = func() error {
			f, err := os.Create(outPath)
			if err != nil {
				return err
			}
			defer f.Close()
			if _, err := s.WriteTo(f); err != nil {
				return err
			}
			fmt.Printf("wrote %d rects to %s\n", s.Rects(), outPath)
			return nil
		}
	case "gif":
		g := export.NewGIF(cfg.Tick, numTicks)
		surface = g
		finish = func() error {
			if err := g.Save(outPath); err != nil {
				return err
			}
			fmt.Printf("wrote %d frames to %s\n", g.Frames(), outPath)
			return nil
		}
	default:
		return fmt.Errorf("unknown format: %s (available: png, svg, gif)", format)
	}

	opts, err := cfg.Options()
	if err != nil {
		return err
	}
	exp, err := experiment.New(experiment.Config{Name: runName(), Options: opts, Ticks: numTicks, Surface: surface})
	if err != nil {
		return err
	}
	res, err := exp.Run(cmd.Context())
	if err != nil {
		return err
	}
	if err := finish(); err != nil {
		return err
	}
	if saveTrace {
		return saveRun(cfg, res)
	}
	return nil
}

func runTrace(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd, preset)
	if err != nil {
		return err
	}
	opts, err := cfg.Options()
	if err != nil {
		return err
	}
	exp, err := experiment.New(experiment.Config{Name: runName(), Options: opts, Ticks: numTicks})
	if err != nil {
		return err
	}

	fmt.Printf("running %d ticks...\n", numTicks)
	res, err := exp.Run(cmd.Context())
	if err != nil {
		return err
	}
	fmt.Printf("completed in %v\n", res.Elapsed)
	return saveRun(cfg, res)
}

func runName() string {
	if preset == "" {
		return "custom"
	}
	return preset
}

func saveRun(cfg *config.Config, res *experiment.Result) error {
	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}
	w := cfg.ViewWindow()
	meta := storage.RunMetadata{
		Preset:     res.Name,
		Width:      cfg.Grid.Width,
		Height:     cfg.Grid.Height,
		Tick:       cfg.Tick,
		Iterations: cfg.Iterations,
		Palette:    cfg.Palette,
		Presenter:  cfg.Presenter,
		Window:     [4]float64{w.MinRe, w.MaxRe, w.MinIm, w.MaxIm},
		Metrics:    res.Metrics,
	}
	runID, err := st.Save(meta, res.Rows)
	if err != nil {
		return err
	}

	fmt.Printf("run id: %s\n", runID)
	fmt.Printf("ticks: %d\n", len(res.Rows))
	fmt.Println("\nmetrics:")
	for name, val := range res.Metrics {
		fmt.Printf("  %s: %.6f\n", name, val)
	}
	return nil
}

func runBench(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd, preset)
	if err != nil {
		return err
	}

	fmt.Printf("benchmarking %dx%d, %d ticks\n\n", cfg.Grid.Width, cfg.Grid.Height, numTicks)
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "PRESENTER\tTICKS\tTIME\tTICKS/SEC\tDRAWS\tDRAWS/TICK")

	for _, name := range []string{config.PresenterFull, config.PresenterDiff} {
		c := *cfg
		c.Presenter = name
		opts, err := c.Options()
		if err != nil {
			return err
		}
		exp, err := experiment.New(experiment.Config{Name: name, Options: opts, Ticks: numTicks})
		if err != nil {
			return err
		}
		res, err := exp.Run(cmd.Context())
		if err != nil {
			return err
		}

		fmt.Fprintf(w, "%s\t%d\t%v\t%.1f\t%d\t%.1f\n",
			name,
			len(res.Rows),
			res.Elapsed.Round(time.Millisecond),
			res.TicksPerSecond(),
			res.DrawCalls,
			float64(res.DrawCalls)/float64(max(len(res.Rows), 1)),
		)
	}
	return w.Flush()
}

func runSurvey(cmd *cobra.Command, args []string) error {
	names := config.ListPresets()
	cfgs := make([]experiment.Config, 0, len(names))
	for _, name := range names {
		cfg, err := resolveConfig(cmd, name)
		if err != nil {
			return err
		}
		opts, err := cfg.Options()
		if err != nil {
			return err
		}
		cfgs = append(cfgs, experiment.Config{Name: name, Options: opts, Ticks: numTicks})
	}

	fmt.Printf("surveying %d presets, %d ticks each\n\n", len(cfgs), numTicks)
	results, err := experiment.RunAll(cmd.Context(), cfgs, parallel)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "PRESET\tGRID\tTICKS\tDEPTH\tFINAL CAP\tDRAWS/TICK\tTICKS/SEC")
	for i, res := range results {
		opts := cfgs[i].Options
		finalCap := 0
		if n := len(res.Rows); n > 0 {
			finalCap = res.Rows[n-1].Cap
		}
		fmt.Fprintf(w, "%s\t%dx%d\t%d\t%.2f\t%d\t%.1f\t%.1f\n",
			res.Name,
			opts.Width, opts.Height,
			len(res.Rows),
			res.Metrics["zoom_depth"],
			finalCap,
			float64(res.DrawCalls)/float64(max(len(res.Rows), 1)),
			res.TicksPerSecond(),
		)
	}
	return w.Flush()
}

func listRuns(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tPRESET\tTIME\tGRID\tTICKS\tPALETTE\tPRESENTER")
	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%dx%d\t%d\t%s\t%s\n",
			run.ID,
			run.Preset,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Width, run.Height,
			run.Ticks,
			run.Palette,
			run.Presenter,
		)
	}
	return w.Flush()
}

func plotRun(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}
	rows, err := st.LoadTicks(runID)
	if err != nil {
		return err
	}
	if len(rows) == 0 {
		return fmt.Errorf("no data to plot")
	}

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("preset: %s\n", meta.Preset)
	fmt.Printf("ticks: %d\n\n", len(rows))

	initial := meta.Window[1] - meta.Window[0]
	series := []struct {
		caption string
		value   func(storage.Row) float64
	}{
		{"log10 zoom", func(r storage.Row) float64 { return math.Log10(initial / r.Width) }},
		{"iteration cap", func(r storage.Row) float64 { return float64(r.Cap) }},
		{"interest score", func(r storage.Row) float64 { return r.Score }},
		{"draw calls", func(r storage.Row) float64 { return float64(r.DrawCalls) }},
	}
	for _, s := range series {
		data := make([]float64, len(rows))
		for i, r := range rows {
			data[i] = s.value(r)
		}
		graph := asciigraph.Plot(data,
			asciigraph.Height(10),
			asciigraph.Width(80),
			asciigraph.Caption(s.caption),
		)
		fmt.Println(graph)
		fmt.Println()
	}
	return nil
}

func exportCSV(cmd *cobra.Command, args []string) error {
	rows, err := storage.New(dataDir).LoadTicks(args[0])
	if err != nil {
		return err
	}
	return storage.WriteCSV(os.Stdout, rows)
}

func exportJSON(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}
	rows, err := st.LoadTicks(args[0])
	if err != nil {
		return err
	}
	return storage.ExportJSON(os.Stdout, *meta, rows)
}

func listPresets(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tCENTER\tDESCRIPTION")
	for _, name := range config.ListPresets() {
		p := config.Presets[name]
		fmt.Fprintf(w, "%s\t%s\t%s\n", name, p.Center.String(), p.Description)
	}
	return w.Flush()
}

func listPalettes(cmd *cobra.Command, args []string) error {
	for _, name := range palette.Names() {
		fmt.Println(name)
	}
	return nil
}
