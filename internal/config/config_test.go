package config

import (
	"errors"
	"image/color"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/san-kum/fractalzoom/internal/engine"
	"github.com/san-kum/fractalzoom/internal/palette"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Grid.Width != 96 || cfg.Grid.Height != 48 {
		t.Errorf("expected 96x48 grid, got %dx%d", cfg.Grid.Width, cfg.Grid.Height)
	}
	if cfg.Tick <= 0 {
		t.Error("tick should be positive")
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}

	opts, _ := cfg.Options()
	if !opts.Diff {
		t.Error("diff presenter should be the default")
	}
	if opts.Background != engine.DefaultBackground {
		t.Errorf("background = %v", opts.Background)
	}
	if _, ok := opts.Palette.(palette.Bernstein); !ok {
		t.Errorf("palette = %T", opts.Palette)
	}
}

func TestSaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "zoom.yaml")

	cfg := DefaultConfig()
	cfg.Grid.Width = 120
	cfg.Palette = "hcl"
	cfg.Presenter = PresenterFull
	cfg.Navigation.Smoothing = 0.3

	if err := Save(path, cfg); err != nil {
		t.Fatalf("save: %v", err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if *got != *cfg {
		t.Errorf("round trip mismatch:\n got %+v\nwant %+v", got, cfg)
	}
}

func TestLoad_PartialKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "partial.yaml")
	if err := os.WriteFile(path, []byte("iterations: 80\ngrid:\n  width: 40\n"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Iterations != 80 || cfg.Grid.Width != 40 {
		t.Errorf("overrides not applied: %+v", cfg)
	}
	if cfg.Grid.Height != 48 || cfg.Tick != engine.DefaultTick {
		t.Errorf("defaults lost: %+v", cfg)
	}
}

func TestLoadWith_OverPreset(t *testing.T) {
	path := filepath.Join(t.TempDir(), "over.yaml")
	if err := os.WriteFile(path, []byte("palette: hcl\n"), 0644); err != nil {
		t.Fatal(err)
	}
	base, err := FromPreset("seahorse")
	if err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadWith(path, base)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Palette != "hcl" {
		t.Errorf("palette = %q, want hcl", cfg.Palette)
	}
	if cfg.Window != base.Window || cfg.Iterations != 100 {
		t.Errorf("preset values lost: %+v", cfg)
	}
	if base.Palette != DefaultPalette {
		t.Errorf("base modified: palette %q", base.Palette)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		want   error
	}{
		{"small grid", func(c *Config) { c.Grid.Height = 1 }, engine.ErrInvalidGrid},
		{"bad window", func(c *Config) { c.Window.MaxIm = c.Window.MinIm }, engine.ErrInvalidWindow},
		{"bad tick", func(c *Config) { c.Tick = -1 }, engine.ErrInvalidTick},
		{"bad cap", func(c *Config) { c.Iterations = 0 }, engine.ErrInvalidCap},
		{"bad palette", func(c *Config) { c.Palette = "sepia" }, palette.ErrUnknownPalette},
		{"bad presenter", func(c *Config) { c.Presenter = "lazy" }, ErrUnknownPresenter},
		{"bad color", func(c *Config) { c.Background = "#12" }, ErrInvalidColor},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			if err := cfg.Validate(); !errors.Is(err, tt.want) {
				t.Errorf("got %v, want %v", err, tt.want)
			}
		})
	}
}

func TestParseHex(t *testing.T) {
	tests := []struct {
		in   string
		want color.RGBA
		ok   bool
	}{
		{"#181818ff", color.RGBA{0x18, 0x18, 0x18, 0xff}, true},
		{"181818", color.RGBA{0x18, 0x18, 0x18, 0xff}, true},
		{"#fff", color.RGBA{255, 255, 255, 255}, true},
		{"#00000080", color.RGBA{0, 0, 0, 0x80}, true},
		{"#zzzzzz", color.RGBA{}, false},
		{"", color.RGBA{}, false},
	}

	for _, tt := range tests {
		got, err := ParseHex(tt.in)
		if (err == nil) != tt.ok {
			t.Errorf("ParseHex(%q) error = %v", tt.in, err)
			continue
		}
		if tt.ok && got != tt.want {
			t.Errorf("ParseHex(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestGetPreset(t *testing.T) {
	if _, err := GetPreset("nowhere"); !errors.Is(err, ErrUnknownPreset) {
		t.Errorf("expected ErrUnknownPreset, got %v", err)
	}

	for _, name := range ListPresets() {
		cfg, err := FromPreset(name)
		if err != nil {
			t.Fatalf("%s: %v", name, err)
		}
		if err := cfg.Validate(); err != nil {
			t.Errorf("%s: invalid config: %v", name, err)
		}
	}
}

func TestPresetAspect(t *testing.T) {
	cfg, err := FromPreset("seahorse")
	if err != nil {
		t.Fatal(err)
	}
	w := cfg.ViewWindow()
	aspect := w.Width() / w.Height()
	grid := float64(cfg.Grid.Width) / float64(cfg.Grid.Height)
	if math.Abs(aspect-grid) > 1e-9 {
		t.Errorf("window aspect %v != grid aspect %v", aspect, grid)
	}
	if c := w.Center(); math.Abs(c.Re+0.75) > 1e-12 || math.Abs(c.Im-0.1) > 1e-12 {
		t.Errorf("center = %v", c)
	}
}

func TestFitAspect_AfterGridChange(t *testing.T) {
	cfg, err := FromPreset("seahorse")
	if err != nil {
		t.Fatal(err)
	}
	before := cfg.ViewWindow()
	cfg.Grid.Width, cfg.Grid.Height = 40, 40
	cfg.FitAspect()

	w := cfg.ViewWindow()
	cellRe := w.Width() / float64(cfg.Grid.Width)
	cellIm := w.Height() / float64(cfg.Grid.Height)
	if math.Abs(cellRe-cellIm) > 1e-12 {
		t.Errorf("cells not square: %g x %g", cellRe, cellIm)
	}
	if math.Abs(w.Width()-before.Width()) > 1e-12 {
		t.Errorf("real extent changed: %g -> %g", before.Width(), w.Width())
	}
	if c := w.Center(); math.Abs(c.Re+0.75) > 1e-12 || math.Abs(c.Im-0.1) > 1e-12 {
		t.Errorf("center = %v", c)
	}
}

func TestOriginalPreset(t *testing.T) {
	cfg, err := FromPreset("original")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Grid != (GridConfig{Width: 250, Height: 125, CellSize: 20}) || cfg.Tick != 0.3 {
		t.Errorf("original geometry not applied: %+v", cfg)
	}
}

func TestListPresetsSorted(t *testing.T) {
	names := ListPresets()
	for i := 1; i < len(names); i++ {
		if names[i-1] > names[i] {
			t.Fatalf("presets not sorted: %v", names)
		}
	}
}
