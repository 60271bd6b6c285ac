package export

import (
	"fmt"
	"image"
	"image/color"
	"image/color/palette"
	"image/draw"
	"image/gif"
	"io"
	"os"
)

// GIF rasterises draw calls into an RGBA canvas and snapshots it on every
// Flush. Frames beyond MaxFrames are dropped.
type GIF struct {
	MaxFrames int
	Delay     int // hundredths of a second per frame

	canvas *image.RGBA
	frames []*image.Paletted
}

func NewGIF(tick float64, maxFrames int) *GIF {
	delay := int(tick*100 + 0.5)
	if delay < 1 {
		delay = 1
	}
	return &GIF{MaxFrames: maxFrames, Delay: delay}
}

func (g *GIF) Configure(width, height int) {
	g.canvas = image.NewRGBA(image.Rect(0, 0, width, height))
}

func (g *GIF) Clear(c color.RGBA) {
	if g.canvas == nil {
		return
	}
	draw.Draw(g.canvas, g.canvas.Bounds(), image.NewUniform(c), image.Point{}, draw.Src)
}

func (g *GIF) FillRect(x, y, w, h float64, c color.RGBA) {
	if g.canvas == nil {
		return
	}
	r := image.Rect(int(x), int(y), int(x+w), int(y+h))
	draw.Draw(g.canvas, r, image.NewUniform(c), image.Point{}, draw.Src)
}

func (g *GIF) Flush() error {
	if g.canvas == nil {
		return fmt.Errorf("gif surface not configured")
	}
	g.Capture(g.canvas)
	return nil
}

// Capture appends img as a frame, dithered to the Plan 9 palette.
func (g *GIF) Capture(img image.Image) {
	if g.MaxFrames > 0 && len(g.frames) >= g.MaxFrames {
		return
	}
	frame := image.NewPaletted(img.Bounds(), palette.Plan9)
	draw.FloydSteinberg.Draw(frame, frame.Bounds(), img, img.Bounds().Min)
	g.frames = append(g.frames, frame)
}

func (g *GIF) Frames() int { return len(g.frames) }

func (g *GIF) Encode(w io.Writer) error {
	if len(g.frames) == 0 {
		return fmt.Errorf("gif: no frames recorded")
	}
	anim := gif.GIF{LoopCount: 0}
	for _, frame := range g.frames {
		anim.Image = append(anim.Image, frame)
		anim.Delay = append(anim.Delay, g.Delay)
	}
	return gif.EncodeAll(w, &anim)
}

func (g *GIF) Save(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := g.Encode(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
