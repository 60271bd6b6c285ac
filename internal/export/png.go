// Package export writes animation frames to files.
package export

import (
	"fmt"
	"image"
	"image/color"
	"os"
	"path/filepath"

	"github.com/gogpu/gg"
)

// PNG is a surface backed by a gg context. Every Flush writes the current
// canvas to dir/<prefix>_NNNNN.png.
type PNG struct {
	dir    string
	prefix string
	ctx    *gg.Context
	frame  int
	err    error
}

func NewPNG(dir, prefix string) *PNG {
	if prefix == "" {
		prefix = "frame"
	}
	return &PNG{dir: dir, prefix: prefix}
}

func (p *PNG) Configure(width, height int) {
	if p.ctx != nil {
		p.ctx.Close()
	}
	p.ctx = gg.NewContext(width, height)
}

func (p *PNG) Clear(c color.RGBA) {
	if p.ctx == nil {
		return
	}
	p.ctx.ClearWithColor(gg.FromColor(c))
}

func (p *PNG) FillRect(x, y, w, h float64, c color.RGBA) {
	if p.ctx == nil {
		return
	}
	p.ctx.SetColor(c)
	p.ctx.DrawRectangle(x, y, w, h)
	if err := p.ctx.Fill(); err != nil && p.err == nil {
		p.err = fmt.Errorf("fill rect: %w", err)
	}
}

// Flush saves the canvas as the next numbered frame.
func (p *PNG) Flush() error {
	if p.err != nil {
		return p.err
	}
	if p.ctx == nil {
		return fmt.Errorf("png surface not configured")
	}
	if err := os.MkdirAll(p.dir, 0755); err != nil {
		return err
	}
	path := filepath.Join(p.dir, fmt.Sprintf("%s_%05d.png", p.prefix, p.frame))
	if err := p.ctx.SavePNG(path); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	p.frame++
	return nil
}

func (p *PNG) Frames() int { return p.frame }

func (p *PNG) Image() image.Image {
	if p.ctx == nil {
		return nil
	}
	return p.ctx.Image()
}

func (p *PNG) Close() error {
	if p.ctx == nil {
		return nil
	}
	err := p.ctx.Close()
	p.ctx = nil
	return err
}
