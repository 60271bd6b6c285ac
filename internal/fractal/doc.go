// Package fractal implements the escape-time core of the zoom animation.
//
// The package is organised leaf-first:
//
//   - [Window]: visible rectangle of the complex plane and the pixel mapper
//   - [Escape]: escape-time iteration for a single sample point
//   - [Field]: fixed-size row-major color grid
//   - [Renderer]: fills a [Field] over a [Window] with a palette
//   - [Select]: picks the most interesting boundary cell of a rendered field
//
// # Example
//
//	f := fractal.NewField(96, 48)
//	r := fractal.NewRenderer(palette.Bernstein{})
//	r.Render(f, win, 50)
//	next := fractal.Select(f, win)
//
// Nothing in this package is safe for concurrent mutation; a field has a
// single writer (the renderer) per tick.
package fractal
