package core

import (
	"image/color"
	"sort"

	"dodge/pkg/geom"
)

// Size describes the logical dimensions of the playfield.
type Size struct {
	W int
	H int
}

// Key identifies a keyboard key understood by every backend.
type Key int

const (
	KeySpace Key = iota
	KeyEscape
)

// MouseButton identifies a pointer button.
type MouseButton int

const (
	MouseButtonLeft MouseButton = iota
	MouseButtonRight
)

// Renderer draws primitives in playfield units.
type Renderer interface {
	DrawFilledCircle(center geom.Vec2, radius float64, c color.RGBA)
	DrawText(s string, x, y, size int, c color.RGBA)
}

// Input exposes the pointer position and edge-triggered presses for the
// current frame.
type Input interface {
	MousePosition() geom.Vec2
	KeyPressed(k Key) bool
	MouseButtonPressed(b MouseButton) bool
}

// Window is the windowing collaborator driven by a poll loop.
type Window interface {
	Input
	Renderer

	ShouldClose() bool
	BeginFrame(background color.RGBA)
	EndFrame()
	SetTargetFPS(fps int)
	Close() error
}

// Factory opens a window with the given logical size and title.
type Factory func(size Size, title string) (Window, error)

var backends = map[string]Factory{}

// Register adds a backend factory under the provided name.
func Register(name string, f Factory) {
	if name == "" || f == nil {
		return
	}
	backends[name] = f
}

// Backends exposes the registry of available window backends.
func Backends() map[string]Factory {
	return backends
}

// BackendNames returns the registered backend names in sorted order.
func BackendNames() []string {
	names := make([]string, 0, len(backends))
	for name := range backends {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
