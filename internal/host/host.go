// Package host defines the contract between the animation core and the
// environment that displays it.
package host

import (
	"context"
	"fmt"
	"image/color"
	"time"
)

// Surface is a pixel canvas. Coordinates are in pixels with the origin at
// the top-left corner.
type Surface interface {
	Configure(width, height int)
	Clear(c color.RGBA)
	FillRect(x, y, w, h float64, c color.RGBA)
}

// FrameHandler receives elapsed wall time, in seconds, once per host frame.
type FrameHandler interface {
	OnFrame(deltaSeconds float64)
}

// Flusher is implemented by surfaces that buffer draw calls and want to
// commit them once per tick.
type Flusher interface {
	Flush() error
}

// FrameFunc adapts a plain function to FrameHandler.
type FrameFunc func(dt float64)

func (f FrameFunc) OnFrame(dt float64) { f(dt) }

// Run calls h.OnFrame every interval with the measured elapsed time until
// ctx is done.
func Run(ctx context.Context, h FrameHandler, interval time.Duration) error {
	if interval <= 0 {
		return fmt.Errorf("host: invalid frame interval %v", interval)
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	last := time.Now()
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case now := <-ticker.C:
			h.OnFrame(now.Sub(last).Seconds())
			last = now
		}
	}
}

// ToHex formats c as #rrggbbaa.
func ToHex(c color.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, c.A)
}
