package fractal

import "math"

const (
	// EscapeRadius bounds |z| before a point counts as escaped.
	EscapeRadius = 2.0

	escapeRadius2 = EscapeRadius * EscapeRadius

	// MaxIterationCap is the saturation value for the iteration cap.
	MaxIterationCap = math.MaxInt32
)

// Escape iterates z ← z² + c from z = 0 and returns the index of the
// iteration at which |z| reached the escape radius, or maxIter when it never
// did. A result equal to maxIter means c is treated as inside the set.
func Escape(c Point, maxIter int) int {
	if maxIter <= 0 {
		return 0
	}
	var zx, zy, zx2, zy2 float64
	for n := 0; n < maxIter; n++ {
		zy = 2*zx*zy + c.Im
		zx = zx2 - zy2 + c.Re
		zx2, zy2 = zx*zx, zy*zy
		if zx2+zy2 >= escapeRadius2 {
			return n
		}
	}
	return maxIter
}
