//go:build ebiten

package render

import (
	"image/color"

	"dodge/pkg/geom"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

// ScreenPainter draws primitives onto an ebiten screen image. Text uses the
// 7x13 bitmap face scaled to the requested size.
type ScreenPainter struct {
	dst  *ebiten.Image
	face *text.GoXFace
}

// NewScreenPainter returns a painter with no target.
func NewScreenPainter() *ScreenPainter {
	return &ScreenPainter{face: text.NewGoXFace(basicfont.Face7x13)}
}

// Target sets the image subsequent draws go to.
func (p *ScreenPainter) Target(dst *ebiten.Image) { p.dst = dst }

// DrawFilledCircle paints an antialiased disc.
func (p *ScreenPainter) DrawFilledCircle(center geom.Vec2, radius float64, c color.RGBA) {
	if p.dst == nil {
		return
	}
	vector.DrawFilledCircle(p.dst, float32(center.X), float32(center.Y), float32(radius), c, true)
}

// DrawText paints s with its top-left corner at (x, y).
func (p *ScreenPainter) DrawText(s string, x, y, size int, c color.RGBA) {
	if p.dst == nil || s == "" {
		return
	}
	scale := float64(size) / float64(basicfont.Face7x13.Height)
	op := &text.DrawOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(float64(x), float64(y))
	op.ColorScale.ScaleWithColor(c)
	text.Draw(p.dst, s, p.face, op)
}
