package host

import "image/color"

// Rect is a single recorded FillRect call.
type Rect struct {
	X, Y, W, H float64
	Color      color.RGBA
}

// Recorder is an in-memory Surface. It keeps the call counts and, when Keep
// is set, every rect since the last Reset.
type Recorder struct {
	Width, Height int
	Configures    int
	Clears        int
	Fills         int
	Flushes       int
	LastClear     color.RGBA
	Keep          bool
	Rects         []Rect
}

func NewRecorder() *Recorder {
	return &Recorder{Keep: true}
}

func (r *Recorder) Configure(width, height int) {
	r.Width, r.Height = width, height
	r.Configures++
}

func (r *Recorder) Clear(c color.RGBA) {
	r.LastClear = c
	r.Clears++
}

func (r *Recorder) FillRect(x, y, w, h float64, c color.RGBA) {
	r.Fills++
	if r.Keep {
		r.Rects = append(r.Rects, Rect{X: x, Y: y, W: w, H: h, Color: c})
	}
}

func (r *Recorder) Flush() error {
	r.Flushes++
	return nil
}

// Reset clears the recorded rects and counters but keeps the configured size.
func (r *Recorder) Reset() {
	w, h, keep := r.Width, r.Height, r.Keep
	*r = Recorder{Width: w, Height: h, Keep: keep, Rects: r.Rects[:0]}
}
