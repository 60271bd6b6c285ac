package config

import (
	"fmt"
	"sort"

	"github.com/san-kum/fractalzoom/internal/fractal"
)

// Preset is a named starting view. Grid, Tick and Iterations override the
// config only when set.
type Preset struct {
	Description string
	Center      fractal.Point
	HalfRe      float64
	Grid        *GridConfig
	Tick        float64
	Iterations  int
}

var Presets = map[string]Preset{
	"classic": {
		Description: "full set",
		Center:      fractal.Point{Re: -0.75, Im: 0},
		HalfRe:      1.75,
	},
	"seahorse": {
		Description: "seahorse valley",
		Center:      fractal.Point{Re: -0.75, Im: 0.1},
		HalfRe:      0.05,
		Iterations:  100,
	},
	"elephant": {
		Description: "elephant valley",
		Center:      fractal.Point{Re: -1.8, Im: -0.06},
		HalfRe:      0.05,
		Iterations:  100,
	},
	"spiral": {
		Description: "spiral minibrot",
		Center:      fractal.Point{Re: -0.74275, Im: 0.13175},
		HalfRe:      0.00075,
		Iterations:  200,
	},
	"triple_spiral": {
		Description: "triple spiral",
		Center:      fractal.Point{Re: -0.7465, Im: 0.0965},
		HalfRe:      0.0015,
		Iterations:  200,
	},
	"dragon": {
		Description: "valley of the dragon",
		Center:      fractal.Point{Re: -0.7375, Im: 0.1825},
		HalfRe:      0.0025,
		Iterations:  150,
	},
	"mini_spiral": {
		Description: "minibrot in a mini spiral",
		Center:      fractal.Point{Re: -1.73825, Im: -0.02275},
		HalfRe:      0.00075,
		Iterations:  200,
	},
	"original": {
		Description: "full set on the 250x125 board, 20px cells, 0.3s ticks",
		Center:      fractal.Point{Re: -0.75, Im: 0},
		HalfRe:      1.75,
		Grid:        &GridConfig{Width: 250, Height: 125, CellSize: 20},
		Tick:        0.3,
	},
}

func GetPreset(name string) (Preset, error) {
	p, ok := Presets[name]
	if !ok {
		return Preset{}, fmt.Errorf("%w: %s (available: %v)", ErrUnknownPreset, name, ListPresets())
	}
	return p, nil
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Apply writes the preset into cfg. The imaginary half-extent follows the
// grid aspect so cells stay square.
func (p Preset) Apply(cfg *Config) {
	if p.Grid != nil {
		cfg.Grid = *p.Grid
	}
	if p.Tick > 0 {
		cfg.Tick = p.Tick
	}
	if p.Iterations > 0 {
		cfg.Iterations = p.Iterations
	}
	cfg.SetWindow(fractal.WindowAround(p.Center, p.HalfRe, p.HalfRe))
	cfg.FitAspect()
}

// FromPreset returns the default config with the named preset applied.
func FromPreset(name string) (*Config, error) {
	p, err := GetPreset(name)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	p.Apply(cfg)
	return cfg, nil
}
