package game

import "dodge/internal/core"

// Swarm is the growing set of balls in spawn order.
type Swarm struct {
	cfg   Config
	rng   *core.RNG
	balls []Ball
}

// NewSwarm returns a swarm holding n fresh balls.
func NewSwarm(cfg Config, rng *core.RNG, n int) *Swarm {
	s := &Swarm{cfg: cfg, rng: rng}
	s.Reset(n)
	return s
}

// Reset discards every ball and spawns n fresh ones.
func (s *Swarm) Reset(n int) {
	if n < 0 {
		n = 0
	}
	balls := make([]Ball, 0, n)
	for i := 0; i < n; i++ {
		balls = append(balls, NewBall(s.cfg, s.rng))
	}
	s.balls = balls
}

// Spawn appends one fresh ball.
func (s *Swarm) Spawn() {
	s.balls = append(s.balls, NewBall(s.cfg, s.rng))
}

// Len returns the number of balls.
func (s *Swarm) Len() int { return len(s.balls) }

// Balls exposes the backing slice. Callers may mutate balls in place.
func (s *Swarm) Balls() []Ball { return s.balls }

// Update advances every ball.
func (s *Swarm) Update() {
	for i := range s.balls {
		s.balls[i].Update(s.cfg.Width, s.cfg.Height)
	}
}

// Draw renders every ball.
func (s *Swarm) Draw(r core.Renderer) {
	for i := range s.balls {
		s.balls[i].Draw(r)
	}
}
