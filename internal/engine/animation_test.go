package engine

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/san-kum/fractalzoom/internal/fractal"
	"github.com/san-kum/fractalzoom/internal/host"
)

func smallOptions() Options {
	opts := DefaultOptions()
	opts.Width, opts.Height = 16, 10
	opts.CellSize = 2
	opts.Tick = 0.5
	return opts
}

func TestOptionsValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Options)
		want   error
	}{
		{"defaults", func(*Options) {}, nil},
		{"narrow grid", func(o *Options) { o.Width = 2 }, ErrInvalidGrid},
		{"zero cell", func(o *Options) { o.CellSize = 0 }, ErrInvalidGrid},
		{"zero tick", func(o *Options) { o.Tick = 0 }, ErrInvalidTick},
		{"nan tick", func(o *Options) { o.Tick = math.NaN() }, ErrInvalidTick},
		{"flipped window", func(o *Options) { o.Window.MinRe, o.Window.MaxRe = 1, -2 }, ErrInvalidWindow},
		{"infinite window", func(o *Options) { o.Window.MaxIm = math.Inf(1) }, ErrInvalidWindow},
		{"zero cap", func(o *Options) { o.Iterations = 0 }, ErrInvalidCap},
		{"zero zoom", func(o *Options) { o.ZoomStep = 0 }, ErrInvalidNavigation},
		{"smoothing above one", func(o *Options) { o.Smoothing = 1.5 }, ErrInvalidNavigation},
		{"negative shift", func(o *Options) { o.ShiftFraction = -0.1 }, ErrInvalidNavigation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := DefaultOptions()
			tt.mutate(&opts)
			err := opts.Validate()
			if tt.want == nil {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, tt.want) {
				t.Fatalf("got %v, want %v", err, tt.want)
			}
		})
	}
}

func TestNew_RejectsInvalid(t *testing.T) {
	opts := DefaultOptions()
	opts.Iterations = -1
	if _, err := New(opts, host.NewRecorder()); !errors.Is(err, ErrInvalidCap) {
		t.Errorf("expected ErrInvalidCap, got %v", err)
	}
	if _, err := New(DefaultOptions(), nil); err == nil {
		t.Error("expected error for nil surface")
	}
}

func TestOnFrame_StrictThreshold(t *testing.T) {
	rec := host.NewRecorder()
	anim, err := New(smallOptions(), rec)
	if err != nil {
		t.Fatal(err)
	}

	anim.OnFrame(0.25)
	anim.OnFrame(0.25)
	if anim.State().Ticks != 0 {
		t.Fatalf("tick ran at exactly the threshold")
	}
	if rec.Configures != 0 {
		t.Error("surface touched before the first tick")
	}

	anim.OnFrame(0.25)
	if anim.State().Ticks != 1 {
		t.Fatalf("ticks = %d, want 1", anim.State().Ticks)
	}
	if anim.Pending() != 0 {
		t.Errorf("accumulator = %v after tick, want 0", anim.Pending())
	}

	anim.OnFrame(10)
	if anim.State().Ticks != 2 {
		t.Errorf("large dt should run exactly one tick, got %d", anim.State().Ticks)
	}
}

func TestTick_FirstFrameDrawsEverything(t *testing.T) {
	rec := host.NewRecorder()
	opts := smallOptions()
	anim, _ := New(opts, rec)

	info := anim.Tick()

	if rec.Width != 32 || rec.Height != 20 || rec.Configures != 1 {
		t.Errorf("configure = %dx%d (%d calls)", rec.Width, rec.Height, rec.Configures)
	}
	if rec.Clears != 1 || rec.LastClear != DefaultBackground {
		t.Errorf("clear = %v (%d calls)", rec.LastClear, rec.Clears)
	}
	if info.DrawCalls != 160 || rec.Fills != 160 {
		t.Errorf("draws = %d / %d, want 160", info.DrawCalls, rec.Fills)
	}
	if rec.Flushes != 1 {
		t.Errorf("flushes = %d", rec.Flushes)
	}
	if info.Cells != 160 || info.Tick != 1 {
		t.Errorf("info = %+v", info)
	}
}

func TestTick_StaticFieldDrawsNothing(t *testing.T) {
	rec := host.NewRecorder()
	opts := smallOptions()
	// Entirely inside the main cardioid: every cell is in the set.
	opts.Window = fractal.Window{MinRe: -0.1, MaxRe: 0.1, MinIm: -0.1, MaxIm: 0.1}
	anim, _ := New(opts, rec)

	first := anim.Tick()
	if first.Stats.InSet != 160 {
		t.Fatalf("in-set cells = %d, want 160", first.Stats.InSet)
	}

	rec.Reset()
	second := anim.Tick()
	if second.DrawCalls != 0 || rec.Fills != 0 {
		t.Errorf("identical field issued %d draws", second.DrawCalls)
	}
}

func TestTick_FullPresenter(t *testing.T) {
	rec := host.NewRecorder()
	opts := smallOptions()
	opts.Diff = false
	opts.ClearOnRedraw = true
	anim, _ := New(opts, rec)

	anim.Tick()
	anim.Tick()
	if rec.Fills != 320 {
		t.Errorf("fills = %d, want 320", rec.Fills)
	}
	// Start clears once, then every redraw clears.
	if rec.Clears != 3 {
		t.Errorf("clears = %d, want 3", rec.Clears)
	}
}

func TestReset(t *testing.T) {
	rec := host.NewRecorder()
	anim, _ := New(smallOptions(), rec)
	anim.AddMetric(&countMetric{})

	for i := 0; i < 5; i++ {
		anim.Tick()
	}
	anim.OnFrame(0.1)
	anim.Reset()

	s := anim.State()
	if s.Ticks != 0 || s.ZoomTime != 0 || s.Window != smallOptions().Window {
		t.Errorf("state not reset: %+v", s)
	}
	if anim.Pending() != 0 {
		t.Error("accumulator not reset")
	}
	if anim.Metrics()["count"] != 0 {
		t.Error("metrics not reset")
	}

	rec.Reset()
	anim.Tick()
	if rec.Fills != 160 {
		t.Errorf("first tick after reset drew %d cells, want 160", rec.Fills)
	}
}

type failingSurface struct {
	host.Recorder
}

func (f *failingSurface) Flush() error { return errors.New("disk full") }

func TestRun(t *testing.T) {
	anim, _ := New(smallOptions(), host.NewRecorder())
	var seen []int
	anim.AddObserver(ObserverFunc(func(info TickInfo) { seen = append(seen, info.Tick) }))

	if err := anim.Run(context.Background(), 4); err != nil {
		t.Fatal(err)
	}
	if len(seen) != 4 || seen[3] != 4 {
		t.Errorf("observer saw %v", seen)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := anim.Run(ctx, 4); !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}

	bad, _ := New(smallOptions(), &failingSurface{})
	if err := bad.Run(context.Background(), 3); err == nil || bad.State().Ticks != 1 {
		t.Errorf("flush error not surfaced: %v after %d ticks", err, bad.State().Ticks)
	}
}

type countMetric struct{ n int }

func (m *countMetric) Name() string     { return "count" }
func (m *countMetric) Observe(TickInfo) { m.n++ }
func (m *countMetric) Value() float64   { return float64(m.n) }
func (m *countMetric) Reset()           { m.n = 0 }
