package export

import (
	"fmt"
	"image/color"
	"io"
	"strings"

	"github.com/san-kum/fractalzoom/internal/host"
)

type svgRect struct {
	x, y, w, h float64
}

// SVG collects draw calls and writes them as a single SVG document. A rect
// drawn twice at the same place keeps only its latest color.
type SVG struct {
	width, height int
	background    color.RGBA
	order         []svgRect
	fills         map[svgRect]color.RGBA
}

func NewSVG() *SVG {
	return &SVG{fills: make(map[svgRect]color.RGBA)}
}

func (s *SVG) Configure(width, height int) {
	s.width, s.height = width, height
}

func (s *SVG) Clear(c color.RGBA) {
	s.background = c
	s.order = s.order[:0]
	clear(s.fills)
}

func (s *SVG) FillRect(x, y, w, h float64, c color.RGBA) {
	r := svgRect{x, y, w, h}
	if _, ok := s.fills[r]; !ok {
		s.order = append(s.order, r)
	}
	s.fills[r] = c
}

func (s *SVG) Rects() int { return len(s.order) }

func (s *SVG) String() string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d" shape-rendering="crispEdges">
<rect width="100%%" height="100%%" fill="%s"/>
`, s.width, s.height, s.width, s.height, svgColor(s.background)))

	for _, r := range s.order {
		sb.WriteString(fmt.Sprintf(`<rect x="%g" y="%g" width="%g" height="%g" fill="%s"/>
`, r.x, r.y, r.w, r.h, svgColor(s.fills[r])))
	}

	sb.WriteString("</svg>\n")
	return sb.String()
}

func (s *SVG) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, s.String())
	return int64(n), err
}

func svgColor(c color.RGBA) string {
	if c.A == 255 {
		return host.ToHex(c)[:7]
	}
	return host.ToHex(c)
}
