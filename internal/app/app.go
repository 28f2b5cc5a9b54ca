//go:build ebiten

package app

import (
	"dodge/internal/core"
	"dodge/internal/game"
	"dodge/internal/render"
	"dodge/pkg/geom"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts a Driver to the ebiten.Game interface. ebiten owns the loop, so
// Update stands in for one poll-and-tick and Draw for one render pass.
type Game struct {
	driver  *Driver
	painter *render.ScreenPainter
	field   core.Size
}

// New constructs a Game for the provided driver.
func New(d *Driver) *Game {
	return &Game{
		driver:  d,
		painter: render.NewScreenPainter(),
		field:   d.Session().Config().Size(),
	}
}

// Update handles per-frame input and advances the session.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	g.driver.Step(ebitenInput{})
	return nil
}

// Draw renders the current session state.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(game.ColorBackground)
	g.painter.Target(screen)
	g.driver.Render(g.painter)
}

// Layout returns the logical playfield size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.field.W, g.field.H
}

type ebitenInput struct{}

func (ebitenInput) MousePosition() geom.Vec2 {
	x, y := ebiten.CursorPosition()
	return geom.Vec2{X: float64(x), Y: float64(y)}
}

func (ebitenInput) KeyPressed(k core.Key) bool {
	switch k {
	case core.KeySpace:
		return inpututil.IsKeyJustPressed(ebiten.KeySpace)
	case core.KeyEscape:
		return inpututil.IsKeyJustPressed(ebiten.KeyEscape)
	}
	return false
}

func (ebitenInput) MouseButtonPressed(b core.MouseButton) bool {
	switch b {
	case core.MouseButtonLeft:
		return inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
	case core.MouseButtonRight:
		return inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight)
	}
	return false
}
