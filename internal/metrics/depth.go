package metrics

import (
	"math"

	"github.com/san-kum/fractalzoom/internal/engine"
)

// Depth reports the deepest zoom reached as log10(initial width / width).
type Depth struct {
	name    string
	initial float64
	max     float64
}

func NewDepth(initialWidth float64) *Depth {
	return &Depth{name: "zoom_depth", initial: initialWidth}
}

func (d *Depth) Name() string { return d.name }

func (d *Depth) Observe(info engine.TickInfo) {
	w := info.Window.Width()
	if w <= 0 || d.initial <= 0 {
		return
	}
	if v := math.Log10(d.initial / w); v > d.max {
		d.max = v
	}
}

func (d *Depth) Value() float64 { return d.max }

func (d *Depth) Reset() { d.max = 0 }

// Precision is the share of ticks where the window could still shrink.
// It drops below 1 once float64 resolution is exhausted.
type Precision struct {
	name      string
	saturated int
	samples   int
}

func NewPrecision() *Precision {
	return &Precision{name: "precision"}
}

func (p *Precision) Name() string { return p.name }

func (p *Precision) Observe(info engine.TickInfo) {
	p.samples++
	if info.Saturated {
		p.saturated++
	}
}

func (p *Precision) Value() float64 {
	if p.samples == 0 {
		return 1.0
	}
	return 1.0 - float64(p.saturated)/float64(p.samples)
}

func (p *Precision) Reset() {
	p.saturated = 0
	p.samples = 0
}

// Standard returns the metrics every run records.
func Standard(initialWidth float64) []engine.Metric {
	return []engine.Metric{
		NewDrawSavings(),
		NewInSetFraction(),
		NewMeanScore(),
		NewDepth(initialWidth),
		NewPrecision(),
	}
}
