package config

import (
	"errors"
	"fmt"
	"image/color"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/fractalzoom/internal/engine"
	"github.com/san-kum/fractalzoom/internal/fractal"
	"github.com/san-kum/fractalzoom/internal/nav"
	"github.com/san-kum/fractalzoom/internal/palette"
)

const (
	PresenterDiff = "diff"
	PresenterFull = "full"

	DefaultPalette    = "bernstein"
	DefaultBackground = "#181818ff"
)

var (
	ErrUnknownPreset    = errors.New("fractalzoom: unknown preset")
	ErrUnknownPresenter = errors.New("fractalzoom: unknown presenter")
	ErrInvalidColor     = errors.New("fractalzoom: invalid color")
)

type Config struct {
	Grid          GridConfig       `yaml:"grid"`
	Tick          float64          `yaml:"tick"`
	Window        WindowConfig     `yaml:"window"`
	Iterations    int              `yaml:"iterations"`
	Navigation    NavigationConfig `yaml:"navigation"`
	Palette       string           `yaml:"palette"`
	Presenter     string           `yaml:"presenter"`
	ClearOnRedraw bool             `yaml:"clear_on_redraw"`
	Background    string           `yaml:"background"`
}

type GridConfig struct {
	Width    int `yaml:"width"`
	Height   int `yaml:"height"`
	CellSize int `yaml:"cell_size"`
}

type WindowConfig struct {
	MinRe float64 `yaml:"min_re"`
	MaxRe float64 `yaml:"max_re"`
	MinIm float64 `yaml:"min_im"`
	MaxIm float64 `yaml:"max_im"`
}

type NavigationConfig struct {
	ZoomStep      float64 `yaml:"zoom_step"`
	Smoothing     float64 `yaml:"smoothing"`
	ShiftFraction float64 `yaml:"shift_fraction"`
}

func DefaultConfig() *Config {
	w := engine.DefaultWindow
	return &Config{
		Grid: GridConfig{
			Width:    engine.DefaultWidth,
			Height:   engine.DefaultHeight,
			CellSize: engine.DefaultCellSize,
		},
		Tick:       engine.DefaultTick,
		Window:     WindowConfig{MinRe: w.MinRe, MaxRe: w.MaxRe, MinIm: w.MinIm, MaxIm: w.MaxIm},
		Iterations: engine.DefaultIterations,
		Navigation: NavigationConfig{
			ZoomStep:      nav.DefaultZoomStep,
			Smoothing:     nav.DefaultSmoothing,
			ShiftFraction: nav.DefaultShiftFraction,
		},
		Palette:    DefaultPalette,
		Presenter:  PresenterDiff,
		Background: DefaultBackground,
	}
}

func Load(path string) (*Config, error) {
	return LoadWith(path, DefaultConfig())
}

// LoadWith reads path over a copy of base. Keys missing from the file keep
// base's values.
func LoadWith(path string, base *Config) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := *base
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return &cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func (c *Config) ViewWindow() fractal.Window {
	return fractal.Window{
		MinRe: c.Window.MinRe,
		MaxRe: c.Window.MaxRe,
		MinIm: c.Window.MinIm,
		MaxIm: c.Window.MaxIm,
	}
}

func (c *Config) SetWindow(w fractal.Window) {
	c.Window = WindowConfig{MinRe: w.MinRe, MaxRe: w.MaxRe, MinIm: w.MinIm, MaxIm: w.MaxIm}
}

// FitAspect rebuilds the window around its center with the imaginary extent
// following the grid aspect, keeping the real extent.
func (c *Config) FitAspect() {
	if c.Grid.Width <= 0 || c.Grid.Height <= 0 {
		return
	}
	w := c.ViewWindow()
	halfRe := w.Width() / 2
	halfIm := halfRe * float64(c.Grid.Height) / float64(c.Grid.Width)
	c.SetWindow(fractal.WindowAround(w.Center(), halfRe, halfIm))
}

// Options resolves names and colors and returns validated engine options.
func (c *Config) Options() (engine.Options, error) {
	p, err := palette.Lookup(c.Palette)
	if err != nil {
		return engine.Options{}, err
	}
	bg, err := ParseHex(c.Background)
	if err != nil {
		return engine.Options{}, err
	}

	var diff bool
	switch c.Presenter {
	case PresenterDiff, "":
		diff = true
	case PresenterFull:
	default:
		return engine.Options{}, fmt.Errorf("%w: %q (want %s or %s)", ErrUnknownPresenter, c.Presenter, PresenterDiff, PresenterFull)
	}

	opts := engine.Options{
		Width:         c.Grid.Width,
		Height:        c.Grid.Height,
		CellSize:      c.Grid.CellSize,
		Tick:          c.Tick,
		Window:        c.ViewWindow(),
		Iterations:    c.Iterations,
		ZoomStep:      c.Navigation.ZoomStep,
		Smoothing:     c.Navigation.Smoothing,
		ShiftFraction: c.Navigation.ShiftFraction,
		Palette:       p,
		Diff:          diff,
		ClearOnRedraw: c.ClearOnRedraw,
		Background:    bg,
	}
	if err := opts.Validate(); err != nil {
		return engine.Options{}, err
	}
	return opts, nil
}

func (c *Config) Validate() error {
	_, err := c.Options()
	return err
}

// ParseHex parses #rgb, #rrggbb or #rrggbbaa. Alpha defaults to opaque.
func ParseHex(s string) (color.RGBA, error) {
	h := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(h) == 3 {
		h = string([]byte{h[0], h[0], h[1], h[1], h[2], h[2]})
	}
	if len(h) == 6 {
		h += "ff"
	}
	if len(h) != 8 {
		return color.RGBA{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}
	return color.RGBA{R: uint8(v >> 24), G: uint8(v >> 16), B: uint8(v >> 8), A: uint8(v)}, nil
}
