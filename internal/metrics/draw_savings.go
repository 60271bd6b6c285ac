package metrics

import "github.com/san-kum/fractalzoom/internal/engine"

// DrawSavings is the fraction of cells the presenter did not have to draw,
// averaged over ticks. A full presenter scores 0.
type DrawSavings struct {
	name    string
	draws   int64
	cells   int64
	samples int
}

func NewDrawSavings() *DrawSavings {
	return &DrawSavings{name: "draw_savings"}
}

func (d *DrawSavings) Name() string { return d.name }

func (d *DrawSavings) Observe(info engine.TickInfo) {
	d.draws += int64(info.DrawCalls)
	d.cells += int64(info.Cells)
	d.samples++
}

func (d *DrawSavings) Value() float64 {
	if d.cells == 0 {
		return 0
	}
	return 1 - float64(d.draws)/float64(d.cells)
}

func (d *DrawSavings) Reset() {
	d.draws = 0
	d.cells = 0
	d.samples = 0
}
