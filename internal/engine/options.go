package engine

import (
	"fmt"
	"image/color"
	"math"

	"github.com/san-kum/fractalzoom/internal/fractal"
	"github.com/san-kum/fractalzoom/internal/nav"
	"github.com/san-kum/fractalzoom/internal/palette"
)

const (
	DefaultWidth      = 96
	DefaultHeight     = 48
	DefaultCellSize   = 1
	DefaultTick       = 0.1
	DefaultIterations = 50

	minGrid = 3
)

// DefaultBackground is the board color surfaces are cleared to.
var DefaultBackground = color.RGBA{0x18, 0x18, 0x18, 0xff}

// DefaultWindow is the classic full view of the set at a 2:1 aspect.
var DefaultWindow = fractal.Window{MinRe: -2.5, MaxRe: 1, MinIm: -0.875, MaxIm: 0.875}

type Options struct {
	Width, Height int
	CellSize      int
	Tick          float64

	Window     fractal.Window
	Iterations int

	ZoomStep      float64
	Smoothing     float64
	ShiftFraction float64

	Palette       palette.Palette
	Diff          bool
	ClearOnRedraw bool
	Background    color.RGBA
}

func DefaultOptions() Options {
	return Options{
		Width:         DefaultWidth,
		Height:        DefaultHeight,
		CellSize:      DefaultCellSize,
		Tick:          DefaultTick,
		Window:        DefaultWindow,
		Iterations:    DefaultIterations,
		ZoomStep:      nav.DefaultZoomStep,
		Smoothing:     nav.DefaultSmoothing,
		ShiftFraction: nav.DefaultShiftFraction,
		Palette:       palette.Bernstein{},
		Diff:          true,
		Background:    DefaultBackground,
	}
}

func (o Options) Validate() error {
	if o.Width < minGrid || o.Height < minGrid {
		return fmt.Errorf("%w: %dx%d, need at least %dx%d", ErrInvalidGrid, o.Width, o.Height, minGrid, minGrid)
	}
	if o.CellSize < 1 {
		return fmt.Errorf("%w: cell size %d", ErrInvalidGrid, o.CellSize)
	}
	if !(o.Tick > 0) || math.IsInf(o.Tick, 0) {
		return fmt.Errorf("%w: %v", ErrInvalidTick, o.Tick)
	}
	if !finite(o.Window.MinRe, o.Window.MaxRe, o.Window.MinIm, o.Window.MaxIm) || !o.Window.Valid() {
		return fmt.Errorf("%w: %v", ErrInvalidWindow, o.Window)
	}
	if o.Iterations < 1 {
		return fmt.Errorf("%w: %d", ErrInvalidCap, o.Iterations)
	}
	if !(o.ZoomStep > 0) || math.IsInf(o.ZoomStep, 0) {
		return fmt.Errorf("%w: zoom step %v", ErrInvalidNavigation, o.ZoomStep)
	}
	if !(o.Smoothing > 0 && o.Smoothing <= 1) {
		return fmt.Errorf("%w: smoothing %v", ErrInvalidNavigation, o.Smoothing)
	}
	if !(o.ShiftFraction > 0 && o.ShiftFraction <= 1) {
		return fmt.Errorf("%w: shift fraction %v", ErrInvalidNavigation, o.ShiftFraction)
	}
	return nil
}

// PixelSize is the surface size in pixels.
func (o Options) PixelSize() (int, int) {
	return o.Width * o.CellSize, o.Height * o.CellSize
}

func (o Options) navParams() nav.Params {
	return nav.Params{
		Initial:       o.Window,
		InitialCap:    o.Iterations,
		ZoomStep:      o.ZoomStep,
		Smoothing:     o.Smoothing,
		ShiftFraction: o.ShiftFraction,
	}
}

func finite(vs ...float64) bool {
	for _, v := range vs {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}
