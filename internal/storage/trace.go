package storage

import (
	"strconv"

	"github.com/san-kum/fractalzoom/internal/engine"
)

// Row is one tick of a saved run.
type Row struct {
	Tick      int     `json:"tick"`
	ZoomTime  float64 `json:"zoom_time"`
	CenterRe  float64 `json:"center_re"`
	CenterIm  float64 `json:"center_im"`
	Width     float64 `json:"width"`
	Score     float64 `json:"score"`
	Cap       int     `json:"cap"`
	DrawCalls int     `json:"draw_calls"`
	InSet     int     `json:"in_set"`
}

func RowFromTick(info engine.TickInfo) Row {
	return Row{
		Tick:      info.Tick,
		ZoomTime:  info.ZoomTime,
		CenterRe:  info.Center.Re,
		CenterIm:  info.Center.Im,
		Width:     info.Window.Width(),
		Score:     info.Target.Score,
		Cap:       info.Cap,
		DrawCalls: info.DrawCalls,
		InSet:     info.Stats.InSet,
	}
}

func (r Row) record() []string {
	f := func(v float64) string { return strconv.FormatFloat(v, 'g', -1, 64) }
	return []string{
		strconv.Itoa(r.Tick),
		f(r.ZoomTime),
		f(r.CenterRe),
		f(r.CenterIm),
		f(r.Width),
		f(r.Score),
		strconv.Itoa(r.Cap),
		strconv.Itoa(r.DrawCalls),
		strconv.Itoa(r.InSet),
	}
}

// Trace is an engine observer that records every tick.
type Trace struct {
	Rows []Row
}

func (t *Trace) OnTick(info engine.TickInfo) {
	t.Rows = append(t.Rows, RowFromTick(info))
}

func (t *Trace) Reset() { t.Rows = t.Rows[:0] }
