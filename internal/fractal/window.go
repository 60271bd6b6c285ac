package fractal

import "fmt"

// Point is a sample point on the complex plane.
type Point struct {
	Re, Im float64
}

func (p Point) String() string {
	return fmt.Sprintf("(%.12g, %.12gi)", p.Re, p.Im)
}

// Window is the visible rectangle of the complex plane.
type Window struct {
	MinRe, MaxRe float64
	MinIm, MaxIm float64
}

// WindowAround builds a window centered on c with the given half extents.
func WindowAround(c Point, halfRe, halfIm float64) Window {
	return Window{
		MinRe: c.Re - halfRe,
		MaxRe: c.Re + halfRe,
		MinIm: c.Im - halfIm,
		MaxIm: c.Im + halfIm,
	}
}

func (w Window) Width() float64  { return w.MaxRe - w.MinRe }
func (w Window) Height() float64 { return w.MaxIm - w.MinIm }

func (w Window) Center() Point {
	return Point{Re: (w.MinRe + w.MaxRe) / 2, Im: (w.MinIm + w.MaxIm) / 2}
}

// Valid reports whether max > min on both axes.
func (w Window) Valid() bool {
	return w.MaxRe > w.MinRe && w.MaxIm > w.MinIm
}

// Map converts pixel (x, y) of a width×height grid into a plane point.
// Both dimensions must be at least 2.
func (w Window) Map(x, y, width, height int) Point {
	return Point{
		Re: w.MinRe + (w.MaxRe-w.MinRe)*float64(x)/float64(width-1),
		Im: w.MinIm + (w.MaxIm-w.MinIm)*float64(y)/float64(height-1),
	}
}

func (w Window) String() string {
	return fmt.Sprintf("[%.12g, %.12g]x[%.12g, %.12g]", w.MinRe, w.MaxRe, w.MinIm, w.MaxIm)
}
