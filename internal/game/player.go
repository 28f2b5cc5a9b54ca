package game

import (
	"image/color"
	"math"

	"dodge/internal/core"
	"dodge/pkg/geom"
)

// Player is the circle steered toward the pointer.
type Player struct {
	Pos    geom.Vec2
	Dir    geom.Direction
	Radius float64
	Color  color.RGBA

	maxSpeed float64
	approach float64
}

// NewPlayer places a stationary player at the player spawn point.
func NewPlayer(cfg Config) *Player {
	return &Player{
		Pos:      cfg.PlayerSpawn(),
		Radius:   cfg.PlayerRadius,
		Color:    cfg.PlayerColor,
		maxSpeed: cfg.PlayerMaxSpeed,
		approach: cfg.PlayerApproach,
	}
}

// AimAt returns the heading in degrees from the player to pointer and the
// distance between them.
func (p *Player) AimAt(pointer geom.Vec2) (angle, dist float64) {
	dx := pointer.X - p.Pos.X
	dy := pointer.Y - p.Pos.Y
	dist = math.Sqrt(dx*dx + dy*dy)
	if dx == 0 && dy == 0 {
		return 0, 0
	}
	// Dividing by a zero component yields +Inf and atan(+Inf) is 90 degrees,
	// which is the right answer on both axes.
	switch {
	case dx >= 0 && dy >= 0:
		angle = geom.ToDegrees(math.Atan(math.Abs(dx / dy)))
	case dx >= 0:
		angle = 90 + geom.ToDegrees(math.Atan(math.Abs(dy/dx)))
	case dy < 0:
		angle = 180 + geom.ToDegrees(math.Atan(math.Abs(dx/dy)))
	default:
		angle = 270 + geom.ToDegrees(math.Atan(math.Abs(dy/dx)))
	}
	return geom.NormalizeAngle(angle), dist
}

// Update steers the player toward pointer and keeps it inside a w by h field.
func (p *Player) Update(pointer geom.Vec2, w, h float64) {
	angle, dist := p.AimAt(pointer)
	p.Dir.Angle = angle
	if dist < p.Radius {
		p.Dir.Speed = 0
	} else {
		p.Dir.Speed = math.Min((dist-p.Radius)*p.approach, p.maxSpeed)
	}
	p.Pos = p.Pos.Add(geom.DirectionToDelta(p.Dir))
	p.Pos.X = geom.Clamp(p.Pos.X, p.Radius, w-p.Radius)
	p.Pos.Y = geom.Clamp(p.Pos.Y, p.Radius, h-p.Radius)
}

// HasCollided reports whether any ball overlaps the player.
func (p *Player) HasCollided(s *Swarm) bool {
	for _, b := range s.Balls() {
		if geom.CirclesOverlap(p.Pos, p.Radius, b.Pos, b.Radius) {
			return true
		}
	}
	return false
}

// Draw renders the player.
func (p *Player) Draw(r core.Renderer) {
	r.DrawFilledCircle(p.Pos, p.Radius, p.Color)
}
