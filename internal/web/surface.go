package web

import (
	"encoding/json"
	"fmt"
	"image/color"
	"strconv"

	"github.com/san-kum/fractalzoom/internal/host"
)

// Message types sent to the browser.
const (
	TypeConfigure = "configure"
	TypeFrame     = "frame"
	TypeStats     = "stats"
)

// Message is one JSON document on the wire.
type Message struct {
	Type   string `json:"type"`
	Width  int    `json:"width,omitempty"`
	Height int    `json:"height,omitempty"`
	Clear  string `json:"clear,omitempty"`
	Rects  []Rect `json:"rects,omitempty"`
	Stats  *Stats `json:"stats,omitempty"`
}

type Stats struct {
	Tick      int     `json:"tick"`
	CenterRe  float64 `json:"re"`
	CenterIm  float64 `json:"im"`
	Width     float64 `json:"width"`
	Cap       int     `json:"cap"`
	DrawCalls int     `json:"draws"`
	Cells     int     `json:"cells"`
	Saturated bool    `json:"saturated,omitempty"`
}

// Rect is a fill_rect call. It encodes as [x, y, w, h, "#rrggbbaa"].
type Rect struct {
	X, Y, W, H float64
	Color      string
}

func (r Rect) MarshalJSON() ([]byte, error) {
	b := make([]byte, 0, 48)
	b = append(b, '[')
	for _, v := range [4]float64{r.X, r.Y, r.W, r.H} {
		b = strconv.AppendFloat(b, v, 'g', -1, 64)
		b = append(b, ',')
	}
	b = strconv.AppendQuote(b, r.Color)
	return append(b, ']'), nil
}

func (r *Rect) UnmarshalJSON(data []byte) error {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if len(raw) != 5 {
		return fmt.Errorf("web: rect has %d fields, want 5", len(raw))
	}
	for i, dst := range []*float64{&r.X, &r.Y, &r.W, &r.H} {
		if err := json.Unmarshal(raw[i], dst); err != nil {
			return fmt.Errorf("web: rect field %d: %w", i, err)
		}
	}
	return json.Unmarshal(raw[4], &r.Color)
}

// Surface queues draw calls and hands them to send on Flush, one message
// per configure and one per frame.
type Surface struct {
	send  func(Message) error
	queue []Message
	frame int
}

func NewSurface(send func(Message) error) *Surface {
	return &Surface{send: send, frame: -1}
}

func (s *Surface) Configure(width, height int) {
	s.queue = append(s.queue, Message{Type: TypeConfigure, Width: width, Height: height})
	s.frame = -1
}

func (s *Surface) Clear(c color.RGBA) {
	f := s.current()
	f.Clear = host.ToHex(c)
	f.Rects = f.Rects[:0]
}

func (s *Surface) FillRect(x, y, w, h float64, c color.RGBA) {
	f := s.current()
	f.Rects = append(f.Rects, Rect{X: x, Y: y, W: w, H: h, Color: host.ToHex(c)})
}

// Flush sends every queued message. Empty frames are dropped.
func (s *Surface) Flush() error {
	defer func() {
		s.queue = s.queue[:0]
		s.frame = -1
	}()
	for _, m := range s.queue {
		if m.Type == TypeFrame && m.Clear == "" && len(m.Rects) == 0 {
			continue
		}
		if err := s.send(m); err != nil {
			return fmt.Errorf("web: send %s: %w", m.Type, err)
		}
	}
	return nil
}

// Pending returns the number of queued messages.
func (s *Surface) Pending() int { return len(s.queue) }

func (s *Surface) current() *Message {
	if s.frame < 0 {
		s.queue = append(s.queue, Message{Type: TypeFrame})
		s.frame = len(s.queue) - 1
	}
	return &s.queue[s.frame]
}
