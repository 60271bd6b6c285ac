// Package present pushes a rendered field to a host surface.
package present

import (
	"image/color"

	"github.com/san-kum/fractalzoom/internal/fractal"
	"github.com/san-kum/fractalzoom/internal/host"
)

// Presenter draws a field and returns the number of FillRect calls issued.
type Presenter interface {
	Present(f *fractal.Field, s host.Surface) int
	Reset()
}

// Full redraws every cell each tick.
type Full struct {
	Cell       int
	Clear      bool
	Background color.RGBA
}

func NewFull(cell int, clear bool, background color.RGBA) *Full {
	return &Full{Cell: cell, Clear: clear, Background: background}
}

func (p *Full) Present(f *fractal.Field, s host.Surface) int {
	if p.Clear {
		s.Clear(p.Background)
	}
	size := float64(p.Cell)
	for y := 0; y < f.Height; y++ {
		for x := 0; x < f.Width; x++ {
			s.FillRect(float64(x)*size, float64(y)*size, size, size, f.Cells[y*f.Width+x])
		}
	}
	return len(f.Cells)
}

func (p *Full) Reset() {}

// unset never comes out of a palette, which are all opaque, so the first
// Present after construction or Reset draws every cell.
var unset = color.RGBA{}

// Diff draws only the cells that changed since the previous Present.
type Diff struct {
	Cell int
	prev *fractal.Field
}

func NewDiff(cell, width, height int) *Diff {
	d := &Diff{Cell: cell, prev: fractal.NewField(width, height)}
	d.Reset()
	return d
}

func (p *Diff) Present(f *fractal.Field, s host.Surface) int {
	size := float64(p.Cell)
	draws := 0
	for y := 0; y < f.Height; y++ {
		for x := 0; x < f.Width; x++ {
			i := y*f.Width + x
			c := f.Cells[i]
			if p.prev.Cells[i] == c {
				continue
			}
			s.FillRect(float64(x)*size, float64(y)*size, size, size, c)
			p.prev.Cells[i] = c
			draws++
		}
	}
	return draws
}

// Reset forgets what was drawn; use it when the surface has been cleared or
// recreated underneath the presenter.
func (p *Diff) Reset() {
	p.prev.Fill(unset)
}
