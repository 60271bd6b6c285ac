package fractal

import (
	"image/color"

	"github.com/san-kum/fractalzoom/internal/palette"
)

// lutLimit bounds the size of the cached palette table.
const lutLimit = 1 << 16

// Stats summarises one render pass.
type Stats struct {
	InSet      int
	Iterations int64
}

// Renderer fills a field by mapping, evaluating and coloring every cell.
type Renderer struct {
	palette palette.Palette
	lut     []color.RGBA
	lutCap  int
}

func NewRenderer(p palette.Palette) *Renderer {
	if p == nil {
		p = palette.Bernstein{}
	}
	return &Renderer{palette: p, lutCap: -1}
}

// Render fills f over win with the given iteration cap in row-major order.
func (r *Renderer) Render(f *Field, win Window, maxIter int) Stats {
	r.prepare(maxIter)

	var stats Stats
	w, h := f.Width, f.Height
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			n := Escape(win.Map(x, y, w, h), maxIter)
			if n >= maxIter {
				stats.InSet++
			}
			stats.Iterations += int64(n)
			f.Cells[y*w+x] = r.color(n, maxIter)
		}
	}
	return stats
}

func (r *Renderer) prepare(maxIter int) {
	if maxIter == r.lutCap {
		return
	}
	r.lutCap = maxIter
	if maxIter < 0 || maxIter > lutLimit {
		r.lut = nil
		return
	}
	if cap(r.lut) < maxIter+1 {
		r.lut = make([]color.RGBA, maxIter+1)
	}
	r.lut = r.lut[:maxIter+1]
	for i := range r.lut {
		r.lut[i] = r.palette.Color(i, maxIter)
	}
}

func (r *Renderer) color(n, maxIter int) color.RGBA {
	if r.lut != nil && n < len(r.lut) {
		return r.lut[n]
	}
	return r.palette.Color(n, maxIter)
}
