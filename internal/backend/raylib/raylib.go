//go:build raylib

package raylib

import (
	"errors"
	"image/color"

	"dodge/internal/core"
	"dodge/pkg/geom"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Window is a core.Window backed by a native raylib window.
type Window struct{}

func init() {
	core.Register("raylib", Open)
}

// Open creates a window the size of the playfield.
func Open(size core.Size, title string) (core.Window, error) {
	rl.InitWindow(int32(size.W), int32(size.H), title)
	if !rl.IsWindowReady() {
		return nil, errors.New("raylib: window not ready")
	}
	return Window{}, nil
}

// ShouldClose reports whether the window was closed or Esc was pressed.
func (Window) ShouldClose() bool { return rl.WindowShouldClose() }

func (Window) MousePosition() geom.Vec2 {
	p := rl.GetMousePosition()
	return geom.Vec2{X: float64(p.X), Y: float64(p.Y)}
}

func (Window) KeyPressed(k core.Key) bool {
	switch k {
	case core.KeySpace:
		return rl.IsKeyPressed(rl.KeySpace)
	case core.KeyEscape:
		return rl.IsKeyPressed(rl.KeyEscape)
	}
	return false
}

func (Window) MouseButtonPressed(b core.MouseButton) bool {
	switch b {
	case core.MouseButtonLeft:
		return rl.IsMouseButtonPressed(rl.MouseButtonLeft)
	case core.MouseButtonRight:
		return rl.IsMouseButtonPressed(rl.MouseButtonRight)
	}
	return false
}

func (Window) SetTargetFPS(fps int) { rl.SetTargetFPS(int32(fps)) }

func (Window) BeginFrame(bg color.RGBA) {
	rl.BeginDrawing()
	rl.ClearBackground(bg)
}

func (Window) DrawFilledCircle(center geom.Vec2, radius float64, c color.RGBA) {
	rl.DrawCircleV(rl.NewVector2(float32(center.X), float32(center.Y)), float32(radius), c)
}

func (Window) DrawText(s string, x, y, size int, c color.RGBA) {
	rl.DrawText(s, int32(x), int32(y), int32(size), c)
}

// EndFrame swaps buffers and polls input for the next frame.
func (Window) EndFrame() { rl.EndDrawing() }

func (Window) Close() error {
	rl.CloseWindow()
	return nil
}
