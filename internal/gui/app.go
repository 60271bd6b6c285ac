package gui

import (
	"fmt"
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/san-kum/fractalzoom/internal/engine"
	"github.com/san-kum/fractalzoom/internal/logging"
)

var (
	ColBg   = rl.NewColor(10, 10, 10, 255)
	ColText = rl.NewColor(140, 140, 140, 255)
	ColDim  = rl.NewColor(60, 60, 60, 255)
)

// App drives an Animation from the raylib frame clock.
type App struct {
	Anim    *engine.Animation
	Surface *Surface
	Running bool
	Title   string

	initialWidth float64
}

// NewApp binds anim, which must have been built on surface.
func NewApp(anim *engine.Animation, surface *Surface) *App {
	return &App{
		Anim:         anim,
		Surface:      surface,
		Running:      true,
		Title:        surface.Title,
		initialWidth: anim.Options().Window.Width(),
	}
}

// Run opens the window and blocks until it is closed. It returns the first
// error the animation recorded.
func (a *App) Run() error {
	defer a.Surface.close()
	a.Anim.Start()
	if err := a.Surface.Flush(); err != nil {
		return fmt.Errorf("initial flush: %w", err)
	}

	for !rl.WindowShouldClose() {
		if a.Update() {
			break
		}
		a.Draw()
	}
	return a.Anim.Err()
}

// Update handles input and advances the animation. It reports whether the
// user asked to quit.
func (a *App) Update() bool {
	if rl.IsKeyPressed(rl.KeyQ) || rl.IsKeyPressed(rl.KeyEscape) {
		return true
	}
	if rl.IsKeyPressed(rl.KeySpace) {
		a.Running = !a.Running
	}
	if rl.IsKeyPressed(rl.KeyR) {
		a.Anim.Reset()
		if err := a.Surface.Flush(); err != nil {
			logging.Logger().Error("surface flush failed", "err", err)
		}
		logging.Logger().Info("reset", "window", a.Anim.State().Window)
	}
	if a.Running {
		a.Anim.OnFrame(float64(rl.GetFrameTime()))
	}
	return false
}

func (a *App) Draw() {
	rl.BeginDrawing()
	rl.ClearBackground(ColBg)
	a.Surface.draw()
	a.drawStatus()
	rl.EndDrawing()
}

func (a *App) drawStatus() {
	info := a.Anim.Last()
	y := int32(float32(a.Surface.height)*a.Surface.scale) + 6

	state := "ZOOMING"
	if !a.Running {
		state = "PAUSED"
	}
	if info.Saturated {
		state += " (precision limit)"
	}
	depth := 0.0
	if w := info.Window.Width(); w > 0 {
		depth = math.Log10(a.initialWidth / w)
	}
	text := fmt.Sprintf("%s  tick %d  zoom 1e%.1f  cap %d  draws %d/%d",
		state, info.Tick, depth, info.Cap, info.DrawCalls, info.Cells)
	rl.DrawText(text, 8, y, 16, ColText)
	rl.DrawText("SPACE pause  R reset  Q quit", int32(rl.GetScreenWidth())-250, y, 16, ColDim)
}
