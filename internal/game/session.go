package game

import (
	"fmt"

	"dodge/internal/core"
	"dodge/pkg/geom"
)

// State is the session phase.
type State int

const (
	StatePaused State = iota
	StateRunning
	StateGameOver
)

func (s State) String() string {
	switch s {
	case StatePaused:
		return "paused"
	case StateRunning:
		return "running"
	case StateGameOver:
		return "gameover"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Status prompts shown in the top-left corner.
const (
	MessagePaused   = "Dodge the Virus. Press SPACE to start"
	MessageGameOver = "GAME OVER. Press SPACE to play again."
)

// Input is the per-frame snapshot the session reacts to.
type Input struct {
	Pointer geom.Vec2
	Start   bool
	Spawn   bool
}

// Session owns the swarm, the player and the scoring state of one game.
type Session struct {
	cfg Config
	rng *core.RNG

	state  State
	status string

	swarm  *Swarm
	player *Player

	score           int
	extraPoints     int
	startTime       int64
	lastSpawnSecond int64
}

// NewSession returns a paused session with a fresh swarm and player.
func NewSession(cfg Config, rng *core.RNG) *Session {
	return &Session{
		cfg:    cfg,
		rng:    rng,
		state:  StatePaused,
		status: MessagePaused,
		swarm:  NewSwarm(cfg, rng, cfg.InitialBalls),
		player: NewPlayer(cfg),
	}
}

// State returns the current phase.
func (s *Session) State() State { return s.state }

// Status returns the prompt for the current phase.
func (s *Session) Status() string { return s.status }

// Score returns the score of the current or last run.
func (s *Session) Score() int { return s.score }

// Swarm exposes the balls.
func (s *Session) Swarm() *Swarm { return s.swarm }

// Player exposes the player.
func (s *Session) Player() *Player { return s.player }

// Config returns the tuning the session was built with.
func (s *Session) Config() Config { return s.cfg }

// Tick advances the session by one frame. now is the clock reading in whole
// seconds, taken once for the whole frame.
func (s *Session) Tick(in Input, now int64) {
	switch s.state {
	case StatePaused:
		if in.Start {
			s.begin(now)
		}
	case StateGameOver:
		s.status = MessageGameOver
		if in.Start {
			s.swarm.Reset(s.cfg.InitialBalls)
			s.player = NewPlayer(s.cfg)
			s.begin(now)
		}
	case StateRunning:
		s.run(in, now)
	}
}

func (s *Session) begin(now int64) {
	s.state = StateRunning
	s.status = ""
	s.startTime = now
	s.score = 0
	s.extraPoints = 0
	s.lastSpawnSecond = 0
}

func (s *Session) run(in Input, now int64) {
	if s.player.HasCollided(s.swarm) {
		s.state = StateGameOver
		s.status = MessageGameOver
		return
	}

	elapsed := now - s.startTime
	every := int64(s.cfg.SpawnEvery)
	if elapsed > 0 && elapsed%every == 0 && elapsed != s.lastSpawnSecond {
		s.lastSpawnSecond = elapsed
		s.swarm.Spawn()
	}
	if in.Spawn {
		s.swarm.Spawn()
		s.extraPoints += s.cfg.ManualSpawnBonus
	}
	s.score = int(elapsed) + s.extraPoints

	s.swarm.Update()
	s.player.Update(in.Pointer, s.cfg.Width, s.cfg.Height)
}

// Draw renders the spawn marker, the swarm and the player.
func (s *Session) Draw(r core.Renderer) {
	r.DrawFilledCircle(s.cfg.BallSpawn(), s.cfg.BallRadius+10, s.cfg.MarkerColor)
	s.swarm.Draw(r)
	s.player.Draw(r)
}
