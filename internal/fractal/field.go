package fractal

import (
	"fmt"
	"image"
	"image/color"
)

// Field is a row-major grid of colors, one per cell.
type Field struct {
	Width, Height int
	Cells         []color.RGBA
}

// NewField allocates a width×height field. Sizes are checked once here
// rather than on every access.
func NewField(width, height int) *Field {
	if width < 1 || height < 1 {
		panic(fmt.Sprintf("fractal: invalid field size %dx%d", width, height))
	}
	return &Field{
		Width:  width,
		Height: height,
		Cells:  make([]color.RGBA, width*height),
	}
}

func (f *Field) Index(x, y int) int { return y*f.Width + x }

func (f *Field) At(x, y int) color.RGBA { return f.Cells[y*f.Width+x] }

func (f *Field) Set(x, y int, c color.RGBA) { f.Cells[y*f.Width+x] = c }

// Fill sets every cell to c.
func (f *Field) Fill(c color.RGBA) {
	for i := range f.Cells {
		f.Cells[i] = c
	}
}

// Equal reports whether both fields have the same shape and colors.
func (f *Field) Equal(other *Field) bool {
	if other == nil || f.Width != other.Width || f.Height != other.Height {
		return false
	}
	for i, c := range f.Cells {
		if other.Cells[i] != c {
			return false
		}
	}
	return true
}

func (f *Field) Clone() *Field {
	c := &Field{Width: f.Width, Height: f.Height, Cells: make([]color.RGBA, len(f.Cells))}
	copy(c.Cells, f.Cells)
	return c
}

// Image renders the field with each cell scaled to scale×scale pixels.
func (f *Field) Image(scale int) *image.RGBA {
	if scale < 1 {
		scale = 1
	}
	img := image.NewRGBA(image.Rect(0, 0, f.Width*scale, f.Height*scale))
	for y := 0; y < f.Height; y++ {
		for x := 0; x < f.Width; x++ {
			c := f.At(x, y)
			for py := 0; py < scale; py++ {
				for px := 0; px < scale; px++ {
					img.SetRGBA(x*scale+px, y*scale+py, c)
				}
			}
		}
	}
	return img
}
