// Package palette maps escape-time iteration counts to colors.
package palette

import (
	"errors"
	"fmt"
	"image/color"
	"sort"
)

// ErrUnknownPalette is returned by Lookup for unregistered names.
var ErrUnknownPalette = errors.New("fractalzoom: unknown palette")

// InSet is the color of points that never escape.
var InSet = color.RGBA{0, 0, 0, 255}

// Palette converts iteration count i under cap n into a color. Implementations
// must be deterministic and return InSet when i == n.
type Palette interface {
	Color(i, n int) color.RGBA
}

// Bernstein is the fixed polynomial palette. Every channel vanishes at t = 0
// and t = 1.
type Bernstein struct{}

func (Bernstein) Color(i, n int) color.RGBA {
	if i >= n {
		return InSet
	}
	t := float64(i) / float64(n)
	u := 1 - t
	return color.RGBA{
		R: channel(9 * u * t * t * t),
		G: channel(15 * u * u * t * t),
		B: channel(8.5 * u * u * u * t),
		A: 255,
	}
}

func channel(v float64) uint8 {
	v *= 255
	if v <= 0 {
		return 0
	}
	if v >= 255 {
		return 255
	}
	return uint8(v)
}

var registry = map[string]func() Palette{
	"bernstein": func() Palette { return Bernstein{} },
	"hcl":       func() Palette { return NewHCL() },
}

// Lookup returns the palette registered under name.
func Lookup(name string) (Palette, error) {
	fn, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s (available: %v)", ErrUnknownPalette, name, Names())
	}
	return fn(), nil
}

// Names lists registered palettes in sorted order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
