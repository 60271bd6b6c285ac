package fractal

import "math"

// Target is the cell chosen by Select and its plane coordinate.
type Target struct {
	Point Point
	X, Y  int
	Score float64
}

// Select scans the interior cells of a rendered field and returns the cell
// with the highest interest score, mapped back through win.
//
// The score favours a steep red-channel gradient, a red level near the
// middle of its range and closeness to the field center. The center weight
// is not clamped, so far corners score negative. Ties keep the first cell in
// row-major order, and when nothing scores above zero the result is cell
// (0, 0).
func Select(f *Field, win Window) Target {
	w, h := f.Width, f.Height
	cx, cy := float64(w)/2, float64(h)/2
	radius := float64(w) / 2

	bestX, bestY, best := 0, 0, 0.0
	for y := 1; y < h-1; y++ {
		for x := 1; x < w-1; x++ {
			left := float64(f.Cells[y*w+x-1].R)
			right := float64(f.Cells[y*w+x+1].R)
			up := float64(f.Cells[(y-1)*w+x].R)
			down := float64(f.Cells[(y+1)*w+x].R)

			dx := math.Abs(right - left)
			dy := math.Abs(up - down)
			gradient := math.Sqrt(dx*dx + dy*dy)

			level := float64(f.Cells[y*w+x].R) / 255
			dist := math.Hypot(float64(x)-cx, float64(y)-cy)
			weight := 1 - dist/radius

			score := gradient * (1 - math.Abs(level-0.5)) * weight
			if score > best {
				best, bestX, bestY = score, x, y
			}
		}
	}

	return Target{
		Point: win.Map(bestX, bestY, w, h),
		X:     bestX,
		Y:     bestY,
		Score: best,
	}
}
