package engine

import "github.com/san-kum/fractalzoom/internal/fractal"

// TickInfo describes one completed tick.
type TickInfo struct {
	Tick      int
	ZoomTime  float64
	Center    fractal.Point
	Window    fractal.Window
	Cap       int
	Target    fractal.Target
	DrawCalls int
	Cells     int
	Stats     fractal.Stats
	Saturated bool
}

type Observer interface {
	OnTick(info TickInfo)
}

type Metric interface {
	Name() string
	Observe(info TickInfo)
	Value() float64
	Reset()
}

// ObserverFunc adapts a function to Observer.
type ObserverFunc func(TickInfo)

func (f ObserverFunc) OnTick(info TickInfo) { f(info) }
