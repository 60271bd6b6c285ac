// Package screen is a tcell host for the zoom animation.
package screen

import (
	"context"
	"fmt"
	"image/color"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/san-kum/fractalzoom/internal/engine"
	"github.com/san-kum/fractalzoom/internal/logging"
)

const halfBlock = '▀'

// Surface paints pixels as half-block cells, two pixel rows per screen
// line. Nothing reaches the terminal until Flush.
type Surface struct {
	screen        tcell.Screen
	width, height int
	pixels        []color.RGBA
}

func NewSurface(s tcell.Screen) *Surface {
	return &Surface{screen: s}
}

func (s *Surface) Configure(width, height int) {
	s.width, s.height = width, height
	s.pixels = make([]color.RGBA, width*height)
}

func (s *Surface) Clear(c color.RGBA) {
	for i := range s.pixels {
		s.pixels[i] = c
	}
	for line := 0; line < (s.height+1)/2; line++ {
		for x := 0; x < s.width; x++ {
			s.paint(x, line)
		}
	}
}

func (s *Surface) FillRect(x, y, w, h float64, c color.RGBA) {
	x0, y0 := max(int(x), 0), max(int(y), 0)
	x1, y1 := min(int(x+w), s.width), min(int(y+h), s.height)
	for py := y0; py < y1; py++ {
		for px := x0; px < x1; px++ {
			s.pixels[py*s.width+px] = c
		}
	}
	for line := y0 / 2; line <= (y1-1)/2 && y1 > y0; line++ {
		for px := x0; px < x1; px++ {
			s.paint(px, line)
		}
	}
}

func (s *Surface) Flush() error {
	s.screen.Show()
	return nil
}

func (s *Surface) paint(x, line int) {
	top := s.pixels[2*line*s.width+x]
	bottom := top
	if 2*line+1 < s.height {
		bottom = s.pixels[(2*line+1)*s.width+x]
	}
	style := tcell.StyleDefault.Foreground(rgb(top)).Background(rgb(bottom))
	s.screen.SetContent(x, line, halfBlock, nil, style)
}

func rgb(c color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

// App owns a tcell screen and drives an animation from a ticker.
type App struct {
	screen  tcell.Screen
	anim    *engine.Animation
	title   string
	running bool
	fps     int
}

// New initialises the terminal. Close must be called to restore it.
func New() (tcell.Screen, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("create screen: %w", err)
	}
	if err := s.Init(); err != nil {
		return nil, fmt.Errorf("init screen: %w", err)
	}
	return s, nil
}

func NewApp(s tcell.Screen, anim *engine.Animation, title string, fps int) *App {
	if fps <= 0 {
		fps = 60
	}
	return &App{screen: s, anim: anim, title: title, running: true, fps: fps}
}

// Run blocks until ctx is done or the user quits.
func (a *App) Run(ctx context.Context) error {
	ticker := time.NewTicker(time.Second / time.Duration(a.fps))
	defer ticker.Stop()

	events := make(chan tcell.Event, 100)
	quit := make(chan struct{})
	defer close(quit)
	go func() {
		for {
			ev := a.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-quit:
				return
			}
		}
	}()

	a.anim.Start()
	a.drawStatus()
	last := time.Now()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev := <-events:
			if !a.handle(ev) {
				return nil
			}
		case now := <-ticker.C:
			dt := now.Sub(last).Seconds()
			last = now
			if !a.running {
				continue
			}
			before := a.anim.State().Ticks
			a.anim.OnFrame(dt)
			if a.anim.State().Ticks != before {
				a.drawStatus()
				a.screen.Show()
			}
			if err := a.anim.Err(); err != nil {
				return err
			}
		}
	}
}

func (a *App) handle(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
			return false
		}
		if ev.Key() == tcell.KeyRune {
			switch ev.Rune() {
			case 'q':
				return false
			case ' ':
				a.running = !a.running
				a.drawStatus()
				a.screen.Show()
			case 'r':
				a.anim.Reset()
				logging.Logger().Info("animation reset")
				a.drawStatus()
				a.screen.Show()
			}
		}
	case *tcell.EventResize:
		a.screen.Sync()
	}
	return true
}

func (a *App) drawStatus() {
	_, h := a.anim.Options().PixelSize()
	y := (h + 1) / 2
	info := a.anim.Last()
	state := "zooming"
	if !a.running {
		state = "paused"
	}
	line := fmt.Sprintf(" %s  %s  tick %d  width %.3e  cap %d  draws %d   [space] pause [r] reset [q] quit",
		a.title, state, info.Tick, info.Window.Width(), info.Cap, info.DrawCalls)

	style := tcell.StyleDefault.Foreground(tcell.ColorGray)
	w, _ := a.screen.Size()
	for x := 0; x < w; x++ {
		r := ' '
		if x < len(line) {
			r = rune(line[x])
		}
		a.screen.SetContent(x, y, r, nil, style)
	}
}
