package gui

import (
	"image/color"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Largest window the canvas is scaled into. Boards bigger than this are
// drawn into the render texture at full size and shrunk on screen.
const (
	maxWindowWidth  = 1280
	maxWindowHeight = 720
	statusHeight    = 28
)

// Surface draws into an off-screen render texture. Draw calls between two
// flushes are batched inside one texture pass.
type Surface struct {
	Title string
	FPS   int32

	target     rl.RenderTexture2D
	width      int
	height     int
	scale      float32
	open       bool
	configured bool
}

func NewSurface(title string, fps int32) *Surface {
	return &Surface{Title: title, FPS: fps, scale: 1}
}

func (s *Surface) Configure(width, height int) {
	s.end()
	if s.configured && width == s.width && height == s.height {
		return
	}
	s.scale = fit(width, height, maxWindowWidth, maxWindowHeight)
	winW := int32(float32(width) * s.scale)
	winH := int32(float32(height)*s.scale) + statusHeight
	if !s.configured {
		rl.InitWindow(winW, winH, s.Title)
		rl.SetTargetFPS(s.FPS)
		rl.SetExitKey(0)
	} else {
		rl.UnloadRenderTexture(s.target)
		rl.SetWindowSize(int(winW), int(winH))
	}
	s.width, s.height = width, height
	s.target = rl.LoadRenderTexture(int32(width), int32(height))
	rl.SetTextureFilter(s.target.Texture, rl.FilterPoint)
	s.configured = true
}

func (s *Surface) Clear(c color.RGBA) {
	s.begin()
	rl.ClearBackground(c)
}

func (s *Surface) FillRect(x, y, w, h float64, c color.RGBA) {
	s.begin()
	rl.DrawRectangleRec(rl.NewRectangle(float32(x), float32(y), float32(w), float32(h)), c)
}

// Flush closes the texture pass opened by the first draw call.
func (s *Surface) Flush() error {
	s.end()
	return nil
}

func (s *Surface) begin() {
	if !s.open {
		rl.BeginTextureMode(s.target)
		s.open = true
	}
}

func (s *Surface) end() {
	if s.open {
		rl.EndTextureMode()
		s.open = false
	}
}

// draw blits the texture to the window. Render textures are stored upside
// down, hence the negative source height.
func (s *Surface) draw() {
	src := rl.NewRectangle(0, 0, float32(s.width), -float32(s.height))
	dst := rl.NewRectangle(0, 0, float32(s.width)*s.scale, float32(s.height)*s.scale)
	rl.DrawTexturePro(s.target.Texture, src, dst, rl.NewVector2(0, 0), 0, rl.White)
}

func (s *Surface) close() {
	s.end()
	if s.configured {
		rl.UnloadRenderTexture(s.target)
		rl.CloseWindow()
		s.configured = false
	}
}

// fit returns the largest scale no greater than 1 that keeps a w x h board
// inside maxW x maxH.
func fit(w, h, maxW, maxH int) float32 {
	scale := float32(1)
	if w > maxW {
		scale = float32(maxW) / float32(w)
	}
	if h > 0 && float32(h)*scale > float32(maxH) {
		scale = float32(maxH) / float32(h)
	}
	return scale
}
