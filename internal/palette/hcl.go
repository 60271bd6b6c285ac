package palette

import (
	"image/color"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// HCL blends a fixed list of stops in HCL space. Stops start dark so the
// red channel still tracks escape time through the low range.
type HCL struct {
	stops []colorful.Color
}

func NewHCL() *HCL {
	return &HCL{stops: []colorful.Color{
		rgb255(0, 7, 100),
		rgb255(32, 107, 203),
		rgb255(237, 255, 255),
		rgb255(255, 170, 0),
		rgb255(0, 2, 0),
	}}
}

func (h *HCL) Color(i, n int) color.RGBA {
	if i >= n {
		return InSet
	}
	t := float64(i) / float64(n)
	seg := t * float64(len(h.stops)-1)
	k := int(seg)
	if k >= len(h.stops)-1 {
		k = len(h.stops) - 2
	}
	c := h.stops[k].BlendHcl(h.stops[k+1], seg-float64(k)).Clamped()
	r, g, b := c.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 255}
}

func rgb255(r, g, b uint8) colorful.Color {
	return colorful.Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255}
}
