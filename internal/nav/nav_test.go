package nav

import (
	"math"
	"testing"

	"github.com/san-kum/fractalzoom/internal/fractal"
)

func testParams() Params {
	return Params{
		Initial:       fractal.Window{MinRe: -2.5, MaxRe: 1, MinIm: -0.875, MaxIm: 0.875},
		InitialCap:    50,
		ZoomStep:      DefaultZoomStep,
		Smoothing:     DefaultSmoothing,
		ShiftFraction: DefaultShiftFraction,
	}
}

func TestInitial(t *testing.T) {
	c := New(testParams())
	s := c.Initial()

	if s.Center != (fractal.Point{Re: -0.75, Im: 0}) {
		t.Errorf("center = %v", s.Center)
	}
	if s.Cap != 50 || s.ZoomTime != 0 || s.Ticks != 0 {
		t.Errorf("unexpected initial state %+v", s)
	}
}

func TestStep_ClampsFarTarget(t *testing.T) {
	c := New(testParams())
	s := c.Initial()

	far := fractal.Point{Re: 1e6, Im: -1e6}
	for i := 0; i < 40; i++ {
		limit := c.Shift(s)
		before := s.Center
		c.Step(&s, far)

		if d := math.Abs(s.Center.Re - before.Re); d > limit*(1+1e-12) {
			t.Fatalf("tick %d: re shift %g exceeds limit %g", i, d, limit)
		}
		if d := math.Abs(s.Center.Im - before.Im); d > limit*(1+1e-12) {
			t.Fatalf("tick %d: im shift %g exceeds limit %g", i, d, limit)
		}
	}
}

func TestStep_SmoothsNearTarget(t *testing.T) {
	c := New(testParams())
	s := c.Initial()

	target := fractal.Point{Re: s.Center.Re + 0.01, Im: s.Center.Im - 0.02}
	c.Step(&s, target)

	want := fractal.Point{Re: -0.75 + 0.002, Im: -0.004}
	if math.Abs(s.Center.Re-want.Re) > 1e-12 || math.Abs(s.Center.Im-want.Im) > 1e-12 {
		t.Errorf("center = %v, want %v", s.Center, want)
	}
}

func TestStep_ShrinksAndDeepens(t *testing.T) {
	c := New(testParams())
	s := c.Initial()
	target := fractal.Point{Re: -0.7436, Im: 0.1318}

	for i := 0; i < 200; i++ {
		prevW, prevH, prevCap := s.Window.Width(), s.Window.Height(), s.Cap
		c.Step(&s, target)

		if !s.Window.Valid() {
			t.Fatalf("tick %d: invalid window %v", i, s.Window)
		}
		if s.Window.Width() >= prevW || s.Window.Height() >= prevH {
			t.Fatalf("tick %d: window did not shrink", i)
		}
		if s.Cap < prevCap {
			t.Fatalf("tick %d: cap decreased %d -> %d", i, prevCap, s.Cap)
		}
	}

	if s.Ticks != 200 {
		t.Errorf("ticks = %d", s.Ticks)
	}
	if want := 50 + int(math.Floor(s.ZoomTime*10)); s.Cap != want {
		t.Errorf("cap = %d, want %d", s.Cap, want)
	}
}

func TestStep_Saturates(t *testing.T) {
	c := New(testParams())
	s := c.Initial()
	s.ZoomTime = 800

	prev := s.Window
	c.Step(&s, fractal.Point{})

	if !s.Saturated {
		t.Fatal("expected saturation")
	}
	if s.Window != prev {
		t.Errorf("window changed while saturated: %v", s.Window)
	}
	if !s.Window.Valid() {
		t.Error("saturated window invalid")
	}
}

func TestStep_SaturationTracksWindow(t *testing.T) {
	c := New(testParams())
	s := c.Initial()
	target := fractal.Point{Re: -0.74364388703, Im: 0.13182590421}

	saturated, recovered := 0, 0
	for i := 0; i < 2000; i++ {
		prev := s.Window
		wasSaturated := s.Saturated
		c.Step(&s, target)

		shrank := s.Window.Width() < prev.Width() && s.Window.Height() < prev.Height()
		if shrank && s.Saturated {
			t.Fatalf("tick %d: window shrank to %g but Saturated is set", s.Ticks, s.Window.Width())
		}
		if !shrank && !s.Saturated {
			t.Fatalf("tick %d: window kept at %g but Saturated is clear", s.Ticks, s.Window.Width())
		}
		if s.Saturated {
			saturated++
		}
		if wasSaturated && shrank {
			recovered++
		}
	}

	if saturated == 0 {
		t.Fatal("window never reached the precision limit")
	}
	if recovered == 0 {
		t.Error("no rebuild succeeded after a rejected one")
	}
	if !s.Saturated {
		t.Errorf("final state not saturated at width %g", s.Window.Width())
	}
}

func TestIterationCap(t *testing.T) {
	tests := []struct {
		initial  int
		zoomTime float64
		want     int
	}{
		{50, 0, 50},
		{50, 0.05, 50},
		{50, 0.1, 51},
		{50, 1.0, 60},
		{50, 1e300, fractal.MaxIterationCap},
		{50, math.Inf(1), fractal.MaxIterationCap},
	}

	for _, tt := range tests {
		if got := iterationCap(tt.initial, tt.zoomTime); got != tt.want {
			t.Errorf("iterationCap(%d, %g) = %d, want %d", tt.initial, tt.zoomTime, got, tt.want)
		}
	}
}
