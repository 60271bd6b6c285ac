package engine

import "errors"

// Validation errors for animation options.
var (
	// ErrInvalidGrid indicates a grid too small to have interior cells, or a
	// non-positive cell size.
	ErrInvalidGrid = errors.New("fractalzoom: invalid grid size")

	// ErrInvalidWindow indicates a view window with min >= max on an axis or
	// non-finite bounds.
	ErrInvalidWindow = errors.New("fractalzoom: invalid view window")

	// ErrInvalidTick indicates a non-positive tick interval.
	ErrInvalidTick = errors.New("fractalzoom: tick interval must be positive")

	// ErrInvalidCap indicates an initial iteration cap below one.
	ErrInvalidCap = errors.New("fractalzoom: iteration cap must be at least 1")

	// ErrInvalidNavigation indicates zoom or steering parameters out of range.
	ErrInvalidNavigation = errors.New("fractalzoom: navigation parameter out of range")
)
