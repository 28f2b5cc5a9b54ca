package ui

import (
	"image/color"
	"strconv"

	"dodge/internal/core"
)

// HUD renders the status prompt in the top-left corner and the score in the
// top-right corner of the playfield.
type HUD struct {
	width int
	color color.RGBA
}

// NewHUD constructs a HUD for a playfield of the given width.
func NewHUD(width int, c color.RGBA) *HUD {
	if width < 0 {
		width = 0
	}
	return &HUD{width: width, color: c}
}

// ScoreText formats the score label.
func ScoreText(score int) string {
	return "Score: " + strconv.Itoa(score)
}

// Draw paints both labels. An empty status draws nothing on the left.
func (h *HUD) Draw(r core.Renderer, status string, score int) {
	if h == nil {
		return
	}
	if status != "" {
		r.DrawText(status, statusX, marginTop, fontSize, h.color)
	}
	r.DrawText(ScoreText(score), h.width-scoreInset, marginTop, fontSize, h.color)
}

const (
	statusX    = 10
	marginTop  = 10
	fontSize   = 20
	scoreInset = 130
)
