package metrics

import (
	"math"
	"testing"

	"github.com/san-kum/fractalzoom/internal/engine"
	"github.com/san-kum/fractalzoom/internal/fractal"
)

func TestDrawSavings(t *testing.T) {
	m := NewDrawSavings()
	if m.Value() != 0 {
		t.Error("expected zero before samples")
	}

	m.Observe(engine.TickInfo{DrawCalls: 100, Cells: 100})
	m.Observe(engine.TickInfo{DrawCalls: 20, Cells: 100})
	if got := m.Value(); math.Abs(got-0.4) > 1e-12 {
		t.Errorf("savings = %v, want 0.4", got)
	}

	m.Reset()
	if m.Value() != 0 {
		t.Error("expected zero after reset")
	}
}

func TestInSetFraction(t *testing.T) {
	m := NewInSetFraction()
	m.Observe(engine.TickInfo{Cells: 10, Stats: fractal.Stats{InSet: 5}})
	m.Observe(engine.TickInfo{Cells: 10, Stats: fractal.Stats{InSet: 1}})
	m.Observe(engine.TickInfo{})

	if got := m.Value(); math.Abs(got-0.3) > 1e-12 {
		t.Errorf("fraction = %v, want 0.3", got)
	}
}

func TestMeanScore(t *testing.T) {
	m := NewMeanScore()
	for _, s := range []float64{2, 4, 6} {
		m.Observe(engine.TickInfo{Target: fractal.Target{Score: s}})
	}
	if m.Value() != 4 {
		t.Errorf("mean = %v, want 4", m.Value())
	}
}

func TestDepth(t *testing.T) {
	m := NewDepth(4)
	m.Observe(engine.TickInfo{Window: fractal.Window{MaxRe: 0.4, MaxIm: 1}})
	m.Observe(engine.TickInfo{Window: fractal.Window{MaxRe: 4, MaxIm: 1}})

	if got := m.Value(); math.Abs(got-1) > 1e-12 {
		t.Errorf("depth = %v, want 1", got)
	}
}

func TestPrecision(t *testing.T) {
	m := NewPrecision()
	if m.Value() != 1 {
		t.Error("expected full precision before samples")
	}
	m.Observe(engine.TickInfo{})
	m.Observe(engine.TickInfo{Saturated: true})
	if m.Value() != 0.5 {
		t.Errorf("precision = %v, want 0.5", m.Value())
	}
}

func TestStandard(t *testing.T) {
	seen := map[string]bool{}
	for _, m := range Standard(3.5) {
		if seen[m.Name()] {
			t.Errorf("duplicate metric %s", m.Name())
		}
		seen[m.Name()] = true
	}
	if len(seen) != 5 {
		t.Errorf("got %d metrics", len(seen))
	}
}
