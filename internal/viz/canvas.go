package viz

import (
	"image"
	"image/color"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/fractalzoom/internal/host"
)

// Upper half block: foreground paints the top pixel, background the bottom.
const halfBlock = "▀"

// Canvas is a host.Surface that renders two pixel rows per terminal line.
// Only lines touched since the last String call are re-rendered.
type Canvas struct {
	Width, Height int
	pixels        []color.RGBA
	lines         []string
	dirty         []bool
}

func NewCanvas() *Canvas { return &Canvas{} }

func (c *Canvas) Configure(width, height int) {
	c.Width, c.Height = width, height
	c.pixels = make([]color.RGBA, width*height)
	n := (height + 1) / 2
	c.lines = make([]string, n)
	c.dirty = make([]bool, n)
	c.markAll()
}

func (c *Canvas) Clear(col color.RGBA) {
	for i := range c.pixels {
		c.pixels[i] = col
	}
	c.markAll()
}

func (c *Canvas) FillRect(x, y, w, h float64, col color.RGBA) {
	x0, y0 := max(int(x), 0), max(int(y), 0)
	x1, y1 := min(int(x+w), c.Width), min(int(y+h), c.Height)
	for py := y0; py < y1; py++ {
		row := c.pixels[py*c.Width : (py+1)*c.Width]
		for px := x0; px < x1; px++ {
			row[px] = col
		}
		c.dirty[py/2] = true
	}
}

func (c *Canvas) At(x, y int) color.RGBA { return c.pixels[y*c.Width+x] }

// Lines returns the number of terminal lines the canvas occupies.
func (c *Canvas) Lines() int { return len(c.lines) }

func (c *Canvas) Image() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, c.Width, c.Height))
	for i, p := range c.pixels {
		img.SetRGBA(i%c.Width, i/c.Width, p)
	}
	return img
}

func (c *Canvas) String() string {
	for i, d := range c.dirty {
		if d {
			c.lines[i] = c.renderLine(i)
			c.dirty[i] = false
		}
	}
	return strings.Join(c.lines, "\n")
}

// renderLine styles runs of identical top/bottom pairs with one style each.
func (c *Canvas) renderLine(line int) string {
	top := 2 * line
	bottom := top + 1

	var sb strings.Builder
	run := 0
	var fg, bg color.RGBA
	flush := func() {
		if run == 0 {
			return
		}
		style := lipgloss.NewStyle().
			Foreground(lipgloss.Color(hex(fg))).
			Background(lipgloss.Color(hex(bg)))
		sb.WriteString(style.Render(strings.Repeat(halfBlock, run)))
		run = 0
	}

	for x := 0; x < c.Width; x++ {
		t := c.pixels[top*c.Width+x]
		b := t
		if bottom < c.Height {
			b = c.pixels[bottom*c.Width+x]
		}
		if run > 0 && (t != fg || b != bg) {
			flush()
		}
		fg, bg = t, b
		run++
	}
	flush()
	return sb.String()
}

func (c *Canvas) markAll() {
	for i := range c.dirty {
		c.dirty[i] = true
	}
}

func hex(c color.RGBA) string { return host.ToHex(c)[:7] }
