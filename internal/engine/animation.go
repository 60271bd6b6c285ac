package engine

import (
	"context"
	"fmt"

	"github.com/san-kum/fractalzoom/internal/fractal"
	"github.com/san-kum/fractalzoom/internal/host"
	"github.com/san-kum/fractalzoom/internal/logging"
	"github.com/san-kum/fractalzoom/internal/nav"
	"github.com/san-kum/fractalzoom/internal/present"
)

// Animation is the zoom pipeline bound to one surface. It implements
// host.FrameHandler and is not safe for concurrent use.
type Animation struct {
	opts      Options
	surface   host.Surface
	ctrl      *nav.Controller
	renderer  *fractal.Renderer
	presenter present.Presenter
	field     *fractal.Field

	state   nav.State
	target  fractal.Point
	acc     float64
	started bool
	warned  bool
	last    TickInfo
	err     error

	metrics   []Metric
	observers []Observer
}

func New(opts Options, surface host.Surface) (*Animation, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	if surface == nil {
		return nil, fmt.Errorf("fractalzoom: nil surface")
	}

	var p present.Presenter
	if opts.Diff {
		p = present.NewDiff(opts.CellSize, opts.Width, opts.Height)
	} else {
		p = present.NewFull(opts.CellSize, opts.ClearOnRedraw, opts.Background)
	}

	a := &Animation{
		opts:      opts,
		surface:   surface,
		ctrl:      nav.New(opts.navParams()),
		renderer:  fractal.NewRenderer(opts.Palette),
		presenter: p,
		field:     fractal.NewField(opts.Width, opts.Height),
	}
	a.state = a.ctrl.Initial()
	a.target = a.state.Center
	return a, nil
}

func (a *Animation) AddMetric(m Metric)     { a.metrics = append(a.metrics, m) }
func (a *Animation) AddObserver(o Observer) { a.observers = append(a.observers, o) }

// Start sizes and clears the surface. Tick calls it on first use.
func (a *Animation) Start() {
	w, h := a.opts.PixelSize()
	a.surface.Configure(w, h)
	a.surface.Clear(a.opts.Background)
	a.presenter.Reset()
	a.started = true
}

// OnFrame accumulates dt and runs one tick once more than the tick interval
// has passed.
func (a *Animation) OnFrame(dt float64) {
	a.acc += dt
	if a.acc <= a.opts.Tick {
		return
	}
	a.acc = 0
	a.Tick()
}

// Tick runs one navigate, render, select, present pass unconditionally.
func (a *Animation) Tick() TickInfo {
	if !a.started {
		a.Start()
	}

	a.ctrl.Step(&a.state, a.target)
	stats := a.renderer.Render(a.field, a.state.Window, a.state.Cap)
	target := fractal.Select(a.field, a.state.Window)
	a.target = target.Point
	draws := a.presenter.Present(a.field, a.surface)

	if fl, ok := a.surface.(host.Flusher); ok {
		if err := fl.Flush(); err != nil && a.err == nil {
			a.err = err
			logging.Logger().Error("surface flush failed", "tick", a.state.Ticks, "err", err)
		}
	}

	info := TickInfo{
		Tick:      a.state.Ticks,
		ZoomTime:  a.state.ZoomTime,
		Center:    a.state.Center,
		Window:    a.state.Window,
		Cap:       a.state.Cap,
		Target:    target,
		DrawCalls: draws,
		Cells:     len(a.field.Cells),
		Stats:     stats,
		Saturated: a.state.Saturated,
	}
	a.last = info

	for _, m := range a.metrics {
		m.Observe(info)
	}
	for _, o := range a.observers {
		o.OnTick(info)
	}

	log := logging.Logger()
	log.Debug("tick",
		"n", info.Tick,
		"center", info.Center.String(),
		"width", info.Window.Width(),
		"cap", info.Cap,
		"score", target.Score,
		"draws", draws,
	)
	switch {
	case a.state.Saturated && !a.warned:
		a.warned = true
		log.Warn("view window reached float64 precision; window did not shrink", "tick", info.Tick, "width", info.Window.Width())
	case !a.state.Saturated && a.warned:
		a.warned = false
	}
	return info
}

// Run executes n ticks back to back, ignoring the tick interval. It stops
// early when ctx is done or a surface flush fails.
func (a *Animation) Run(ctx context.Context, n int) error {
	for i := 0; i < n; i++ {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		a.Tick()
		if a.err != nil {
			return a.err
		}
	}
	return nil
}

// Reset returns navigation, the accumulator and the metrics to their start
// state and clears the surface.
func (a *Animation) Reset() {
	a.state = a.ctrl.Initial()
	a.target = a.state.Center
	a.acc = 0
	a.warned = false
	a.last = TickInfo{}
	a.err = nil
	for _, m := range a.metrics {
		m.Reset()
	}
	a.Start()
}

func (a *Animation) Options() Options      { return a.opts }
func (a *Animation) State() nav.State      { return a.state }
func (a *Animation) Field() *fractal.Field { return a.field }
func (a *Animation) Last() TickInfo        { return a.last }
func (a *Animation) Err() error            { return a.err }
func (a *Animation) Pending() float64      { return a.acc }

// Metrics returns the current value of every registered metric.
func (a *Animation) Metrics() map[string]float64 {
	out := make(map[string]float64, len(a.metrics))
	for _, m := range a.metrics {
		out[m.Name()] = m.Value()
	}
	return out
}
