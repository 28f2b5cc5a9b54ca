package game

import (
	"image/color"

	"dodge/internal/core"
	"dodge/pkg/geom"
)

// Mirror planes passed to Ball.Reflect.
const (
	// PlaneVertical bounces a ball off the top or bottom wall.
	PlaneVertical = 180.0
	// PlaneHorizontal bounces a ball off the left or right wall.
	PlaneHorizontal = 360.0
)

// Ball is a single virus bouncing around the playfield.
type Ball struct {
	Pos    geom.Vec2
	Dir    geom.Direction
	Radius float64
	Color  color.RGBA
}

// NewBall places a ball at the spawn point with a random heading and speed.
func NewBall(cfg Config, rng *core.RNG) Ball {
	return Ball{
		Pos: cfg.BallSpawn(),
		Dir: geom.Direction{
			Angle: rng.Angle(),
			Speed: rng.Range(cfg.BallSpeedMin, cfg.BallSpeedMax),
		},
		Radius: cfg.BallRadius,
		Color:  cfg.BallColor,
	}
}

// Reflect mirrors the heading about plane.
func (b *Ball) Reflect(plane float64) {
	b.Dir.Angle = geom.NormalizeAngle(plane - b.Dir.Angle)
}

// Update advances the ball one tick and bounces it off any wall it touched.
// The position is left where it landed, so a ball can sit past a wall for a
// frame before the new heading carries it back.
func (b *Ball) Update(w, h float64) {
	b.Pos = b.Pos.Add(geom.DirectionToDelta(b.Dir))
	if b.Pos.X-b.Radius <= 0 || b.Pos.X+b.Radius >= w {
		b.Reflect(PlaneHorizontal)
	}
	if b.Pos.Y-b.Radius <= 0 || b.Pos.Y+b.Radius >= h {
		b.Reflect(PlaneVertical)
	}
}

// Draw renders the ball.
func (b *Ball) Draw(r core.Renderer) {
	r.DrawFilledCircle(b.Pos, b.Radius, b.Color)
}
