package metrics

import "github.com/san-kum/fractalzoom/internal/engine"

// InSetFraction is the mean share of cells that hit the iteration cap.
type InSetFraction struct {
	name    string
	total   float64
	samples int
}

func NewInSetFraction() *InSetFraction {
	return &InSetFraction{name: "in_set_fraction"}
}

func (m *InSetFraction) Name() string { return m.name }

func (m *InSetFraction) Observe(info engine.TickInfo) {
	if info.Cells == 0 {
		return
	}
	m.total += float64(info.Stats.InSet) / float64(info.Cells)
	m.samples++
}

func (m *InSetFraction) Value() float64 {
	if m.samples == 0 {
		return 0
	}
	return m.total / float64(m.samples)
}

func (m *InSetFraction) Reset() {
	m.total = 0
	m.samples = 0
}

// MeanScore is the average selector score of the chosen targets.
type MeanScore struct {
	name    string
	sum     float64
	samples int
}

func NewMeanScore() *MeanScore {
	return &MeanScore{name: "mean_score"}
}

func (m *MeanScore) Name() string { return m.name }

func (m *MeanScore) Observe(info engine.TickInfo) {
	m.sum += info.Target.Score
	m.samples++
}

func (m *MeanScore) Value() float64 {
	if m.samples == 0 {
		return 0
	}
	return m.sum / float64(m.samples)
}

func (m *MeanScore) Reset() {
	m.sum = 0
	m.samples = 0
}
