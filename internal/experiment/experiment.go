// Package experiment runs animations headless for a fixed number of ticks
// and collects their traces and metrics.
package experiment

import (
	"context"
	"fmt"
	"slices"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/san-kum/fractalzoom/internal/engine"
	"github.com/san-kum/fractalzoom/internal/host"
	"github.com/san-kum/fractalzoom/internal/metrics"
	"github.com/san-kum/fractalzoom/internal/storage"
)

type Config struct {
	Name    string
	Options engine.Options
	Ticks   int
	// Surface receives the draw calls. A counting recorder is used when nil.
	Surface host.Surface
}

type Result struct {
	Name      string
	Rows      []storage.Row
	Metrics   map[string]float64
	DrawCalls int
	Elapsed   time.Duration
}

// TicksPerSecond is the measured tick rate.
func (r *Result) TicksPerSecond() float64 {
	if r.Elapsed <= 0 {
		return 0
	}
	return float64(len(r.Rows)) / r.Elapsed.Seconds()
}

type Experiment struct {
	cfg   Config
	anim  *engine.Animation
	trace *storage.Trace
	draws int
}

// Build creates an animation on surface with the standard metrics attached.
func Build(opts engine.Options, surface host.Surface) (*engine.Animation, error) {
	anim, err := engine.New(opts, surface)
	if err != nil {
		return nil, err
	}
	for _, m := range metrics.Standard(opts.Window.Width()) {
		anim.AddMetric(m)
	}
	return anim, nil
}

func New(cfg Config) (*Experiment, error) {
	if cfg.Ticks < 0 {
		return nil, fmt.Errorf("experiment %s: negative tick count %d", cfg.Name, cfg.Ticks)
	}
	if cfg.Surface == nil {
		rec := host.NewRecorder()
		rec.Keep = false
		cfg.Surface = rec
	}
	anim, err := Build(cfg.Options, cfg.Surface)
	if err != nil {
		return nil, fmt.Errorf("experiment %s: %w", cfg.Name, err)
	}
	e := &Experiment{cfg: cfg, anim: anim, trace: &storage.Trace{}}
	anim.AddObserver(e.trace)
	anim.AddObserver(engine.ObserverFunc(func(info engine.TickInfo) {
		e.draws += info.DrawCalls
	}))
	return e, nil
}

// Run resets the animation and runs the configured number of ticks.
func (e *Experiment) Run(ctx context.Context) (*Result, error) {
	e.anim.Reset()
	e.trace.Reset()
	e.draws = 0

	start := time.Now()
	if err := e.anim.Run(ctx, e.cfg.Ticks); err != nil {
		return nil, fmt.Errorf("experiment %s: %w", e.cfg.Name, err)
	}
	return &Result{
		Name:      e.cfg.Name,
		Rows:      slices.Clone(e.trace.Rows),
		Metrics:   e.anim.Metrics(),
		DrawCalls: e.draws,
		Elapsed:   time.Since(start),
	}, nil
}

// RunAll runs every config on its own goroutine, at most limit at a time
// (unbounded when limit <= 0). Results keep the order of cfgs. The first
// failure cancels the rest. Configs must not share a Surface.
func RunAll(ctx context.Context, cfgs []Config, limit int) ([]*Result, error) {
	results := make([]*Result, len(cfgs))
	g, ctx := errgroup.WithContext(ctx)
	if limit > 0 {
		g.SetLimit(limit)
	}
	for i, cfg := range cfgs {
		g.Go(func() error {
			exp, err := New(cfg)
			if err != nil {
				return err
			}
			res, err := exp.Run(ctx)
			if err != nil {
				return err
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
