package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/san-kum/fractalzoom/internal/config"
	"github.com/san-kum/fractalzoom/internal/engine"
	"github.com/san-kum/fractalzoom/internal/experiment"
	"github.com/san-kum/fractalzoom/internal/host"
	"github.com/san-kum/fractalzoom/internal/logging"
	"github.com/san-kum/fractalzoom/internal/viz"
)

var (
	dataDir    string
	configFile string
	preset     string
	paletteArg string
	presenter  string
	width      int
	height     int
	cellSize   int
	tick       float64
	iterations int
	frameRate  int
	debug      bool
	logDir     string
	pick       bool
	addr       string
	numTicks   int
	format     string
	outPath    string
	saveTrace  bool
	parallel   int
	themeName  string

	logFile *os.File
)

// main registers the commands and runs the live terminal view when no
// subcommand is given. It exits with status 1 if the command fails.
func main() {
	rootCmd := &cobra.Command{
		Use:          "fractalzoom",
		Short:        "endless mandelbrot zoom",
		SilenceUsage: true,
		RunE:         runLive,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			f, err := logging.Setup(logDir, debug)
			if err != nil {
				return err
			}
			logFile = f
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if logFile != nil {
				logFile.Close()
			}
		},
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&dataDir, "data", ".fractalzoom", "data directory")
	pf.BoolVar(&debug, "debug", false, "write debug logs")
	pf.StringVar(&logDir, "log-dir", logging.DefaultDir, "log directory")

	liveCmd := &cobra.Command{
		Use:   "live",
		Short: "zoom in the terminal (bubbletea)",
		RunE:  runLive,
	}
	liveCmd.Flags().BoolVar(&pick, "pick", false, "choose a preset from a menu")
	for _, c := range []*cobra.Command{rootCmd, liveCmd} {
		c.Flags().StringVar(&themeName, "theme", viz.ThemeInferno.Name, "panel theme ("+strings.Join(viz.ThemeNames(), ", ")+")")
	}

	screenCmd := &cobra.Command{
		Use:   "screen",
		Short: "zoom in the terminal (tcell)",
		RunE:  runScreen,
	}

	windowCmd := &cobra.Command{
		Use:   "window",
		Short: "zoom in a desktop window",
		RunE:  runWindow,
	}

	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "stream the zoom to browsers",
		RunE:  runServe,
	}
	serveCmd.Flags().StringVar(&addr, "addr", ":8080", "listen address")

	renderCmd := &cobra.Command{
		Use:   "render",
		Short: "render ticks to png frames, svg or gif",
		RunE:  runRender,
	}
	renderCmd.Flags().StringVar(&format, "format", "png", "output format (png, svg, gif)")
	renderCmd.Flags().StringVarP(&outPath, "out", "o", "", "output directory (png) or file (svg, gif)")
	renderCmd.Flags().BoolVar(&saveTrace, "save", false, "also save a trace to the data directory")

	traceCmd := &cobra.Command{
		Use:   "trace",
		Short: "run headless and save a trace",
		RunE:  runTrace,
	}

	benchCmd := &cobra.Command{
		Use:   "bench",
		Short: "compare full and diff presenters",
		RunE:  runBench,
	}

	surveyCmd := &cobra.Command{
		Use:   "survey",
		Short: "run every preset headless and compare",
		RunE:  runSurvey,
	}
	surveyCmd.Flags().IntVarP(&parallel, "parallel", "p", 4, "presets run at once")

	for _, c := range []*cobra.Command{rootCmd, liveCmd, screenCmd, windowCmd, serveCmd, renderCmd, traceCmd, benchCmd, surveyCmd} {
		addViewFlags(c)
	}
	for _, c := range []*cobra.Command{renderCmd, traceCmd, benchCmd, surveyCmd} {
		c.Flags().IntVarP(&numTicks, "ticks", "n", 200, "number of ticks")
	}
	for _, c := range []*cobra.Command{rootCmd, liveCmd, screenCmd, windowCmd, serveCmd} {
		c.Flags().IntVar(&frameRate, "fps", 60, "host frame rate")
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list saved traces",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot a saved trace",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [run_id]",
		Short: "export a trace to CSV",
		Args:  cobra.ExactArgs(1),
		RunE:  exportCSV,
	}

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [run_id]",
		Short: "export a trace to JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportJSON,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list presets",
		RunE:  listPresets,
	}

	palettesCmd := &cobra.Command{
		Use:   "palettes",
		Short: "list palettes",
		RunE:  listPalettes,
	}

	rootCmd.AddCommand(liveCmd, screenCmd, windowCmd, serveCmd, renderCmd, traceCmd, benchCmd, surveyCmd,
		listCmd, plotCmd, exportCSVCmd, exportJSONCmd, presetsCmd, palettesCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func addViewFlags(c *cobra.Command) {
	f := c.Flags()
	f.StringVar(&configFile, "config", "", "config file path (yaml)")
	f.StringVar(&preset, "preset", "", "start from a preset view")
	f.StringVar(&paletteArg, "palette", config.DefaultPalette, "palette")
	f.StringVar(&presenter, "presenter", config.PresenterDiff, "presenter (diff, full)")
	f.IntVar(&width, "width", engine.DefaultWidth, "grid width in cells")
	f.IntVar(&height, "height", engine.DefaultHeight, "grid height in cells")
	f.IntVar(&cellSize, "cell", engine.DefaultCellSize, "cell size in pixels")
	f.Float64Var(&tick, "tick", engine.DefaultTick, "seconds per tick")
	f.IntVar(&iterations, "iterations", engine.DefaultIterations, "initial iteration cap")
}

// resolveConfig layers preset, config file and changed flags, in that order.
func resolveConfig(cmd *cobra.Command, presetName string) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if presetName != "" {
		p, err := config.FromPreset(presetName)
		if err != nil {
			return nil, err
		}
		cfg = p
	}

	if configFile != "" {
		loaded, err := config.LoadWith(configFile, cfg)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("palette") {
		cfg.Palette = paletteArg
	}
	if flags.Changed("presenter") {
		cfg.Presenter = presenter
	}
	if flags.Changed("width") {
		cfg.Grid.Width = width
	}
	if flags.Changed("height") {
		cfg.Grid.Height = height
	}
	if flags.Changed("cell") {
		cfg.Grid.CellSize = cellSize
	}
	if flags.Changed("tick") {
		cfg.Tick = tick
	}
	if flags.Changed("iterations") {
		cfg.Iterations = iterations
	}
	if presetName != "" {
		cfg.FitAspect()
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// build creates an animation for cfg on surface with the standard metrics.
func build(cfg *config.Config, surface host.Surface) (*engine.Animation, error) {
	opts, err := cfg.Options()
	if err != nil {
		return nil, err
	}
	return experiment.Build(opts, surface)
}

func title() string {
	if preset != "" {
		return "fractalzoom · " + preset
	}
	return "fractalzoom"
}
