// Package nav drives the view window: it zooms in by a fixed step per tick
// and drifts the center toward a target with a bounded shift.
package nav

import (
	"math"

	"github.com/san-kum/fractalzoom/internal/fractal"
)

const (
	DefaultZoomStep      = 0.05
	DefaultSmoothing     = 0.2
	DefaultShiftFraction = 0.05

	// capPerZoom is the number of extra iterations per unit of zoom time.
	capPerZoom = 10
)

type Params struct {
	Initial       fractal.Window
	InitialCap    int
	ZoomStep      float64
	Smoothing     float64
	ShiftFraction float64
}

// State is the navigation state carried from tick to tick. Saturated is
// set when the last rebuild could not shrink the window and cleared on the
// next rebuild that does.
type State struct {
	Center    fractal.Point
	Window    fractal.Window
	ZoomTime  float64
	Cap       int
	Ticks     int
	Saturated bool
}

// Controller is stateless apart from its parameters; all mutable data lives
// in State.
type Controller struct {
	params       Params
	initWidth    float64
	initHalfRe   float64
	initHalfIm   float64
	initialPoint fractal.Point
}

func New(p Params) *Controller {
	return &Controller{
		params:       p,
		initWidth:    p.Initial.Width(),
		initHalfRe:   p.Initial.Width() / 2,
		initHalfIm:   p.Initial.Height() / 2,
		initialPoint: p.Initial.Center(),
	}
}

func (c *Controller) Params() Params { return c.params }

func (c *Controller) Initial() State {
	return State{
		Center: c.initialPoint,
		Window: c.params.Initial,
		Cap:    c.params.InitialCap,
	}
}

// Step advances s by one tick toward target.
func (c *Controller) Step(s *State, target fractal.Point) {
	limit := c.Shift(*s)

	dRe := clamp((target.Re-s.Center.Re)*c.params.Smoothing, limit)
	dIm := clamp((target.Im-s.Center.Im)*c.params.Smoothing, limit)
	s.Center.Re += dRe
	s.Center.Im += dIm

	s.ZoomTime += c.params.ZoomStep
	s.Ticks++

	zoom := math.Exp(s.ZoomTime)
	if math.IsInf(zoom, 1) {
		zoom = math.MaxFloat64
	}

	win := fractal.WindowAround(s.Center, c.initHalfRe/zoom, c.initHalfIm/zoom)
	if win.Valid() && win.Width() < s.Window.Width() && win.Height() < s.Window.Height() {
		s.Window = win
		s.Saturated = false
	} else {
		s.Saturated = true
	}

	s.Cap = iterationCap(c.params.InitialCap, s.ZoomTime)
}

// Shift returns the maximum per-axis center displacement for s.
func (c *Controller) Shift(s State) float64 {
	return c.params.ShiftFraction * s.Window.Width() / c.initWidth
}

func iterationCap(initial int, zoomTime float64) int {
	extra := math.Floor(zoomTime * capPerZoom)
	total := float64(initial) + extra
	if total >= fractal.MaxIterationCap || math.IsNaN(total) {
		return fractal.MaxIterationCap
	}
	return int(total)
}

func clamp(v, limit float64) float64 {
	if v > limit {
		return limit
	}
	if v < -limit {
		return -limit
	}
	return v
}
