package game

import (
	"errors"
	"slices"
	"testing"

	"dodge/internal/core"
	"dodge/pkg/geom"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const t0 = int64(1_700_000_000)

// newStillSession returns a running session whose balls do not move, so the
// player is never hit unless a test puts a ball on it.
func newStillSession(t *testing.T) *Session {
	t.Helper()
	s := NewSession(DefaultConfig(), core.NewRNG(42))
	s.Tick(Input{Start: true}, t0)
	require.Equal(t, StateRunning, s.State())
	freeze(s)
	return s
}

func freeze(s *Session) {
	balls := s.Swarm().Balls()
	for i := range balls {
		balls[i].Dir.Speed = 0
	}
}

func idle(s *Session) Input {
	return Input{Pointer: s.Player().Pos}
}

func TestSessionStartsPaused(t *testing.T) {
	s := NewSession(DefaultConfig(), core.NewRNG(1))
	assert.Equal(t, StatePaused, s.State())
	assert.Equal(t, MessagePaused, s.Status())
	assert.Equal(t, 6, s.Swarm().Len())
	assert.Equal(t, DefaultConfig().PlayerSpawn(), s.Player().Pos)
}

func TestPausedIgnoresEverythingButStart(t *testing.T) {
	s := NewSession(DefaultConfig(), core.NewRNG(1))
	before := slices.Clone(s.Swarm().Balls())
	playerPos := s.Player().Pos

	for i := int64(0); i < 20; i++ {
		s.Tick(Input{Pointer: geom.Vec2{X: 0, Y: 0}, Spawn: true}, t0+i)
	}
	assert.Equal(t, StatePaused, s.State())
	assert.Equal(t, before, s.Swarm().Balls())
	assert.Equal(t, playerPos, s.Player().Pos)
	assert.Equal(t, MessagePaused, s.Status())

	s.Tick(Input{Start: true}, t0+30)
	assert.Equal(t, StateRunning, s.State())
	assert.Equal(t, 0, s.Score())
	assert.Empty(t, s.Status())
}

func TestSpawnCadence(t *testing.T) {
	s := newStillSession(t)

	for sec := int64(0); sec < 5; sec++ {
		s.Tick(idle(s), t0+sec)
		require.Equal(t, 6, s.Swarm().Len(), "second %d", sec)
	}

	s.Tick(idle(s), t0+5)
	assert.Equal(t, 7, s.Swarm().Len())
	freeze(s)

	// Many frames fall inside the same second.
	for i := 0; i < 30; i++ {
		s.Tick(idle(s), t0+5)
	}
	assert.Equal(t, 7, s.Swarm().Len())

	for sec := int64(6); sec < 10; sec++ {
		s.Tick(idle(s), t0+sec)
		require.Equal(t, 7, s.Swarm().Len(), "second %d", sec)
	}

	s.Tick(idle(s), t0+10)
	assert.Equal(t, 8, s.Swarm().Len())
	assert.Equal(t, 10, s.Score())
}

func TestManualSpawnStacksWithCadence(t *testing.T) {
	s := newStillSession(t)

	s.Tick(Input{Pointer: s.Player().Pos, Spawn: true}, t0+1)
	assert.Equal(t, 7, s.Swarm().Len())
	freeze(s)

	s.Tick(Input{Pointer: s.Player().Pos, Spawn: true}, t0+5)
	assert.Equal(t, 9, s.Swarm().Len(), "cadence and manual spawn fire on the same frame")
	assert.Equal(t, 5, s.Score(), "manual spawns are free by default")
}

func TestManualSpawnBonus(t *testing.T) {
	cfg := DefaultConfig()
	cfg.ManualSpawnBonus = 3
	s := NewSession(cfg, core.NewRNG(8))
	s.Tick(Input{Start: true}, t0)
	freeze(s)

	s.Tick(Input{Pointer: s.Player().Pos, Spawn: true}, t0+2)
	assert.Equal(t, 5, s.Score())
	freeze(s)
	s.Tick(idle(s), t0+3)
	assert.Equal(t, 6, s.Score())
}

func TestScoreTracksElapsedSeconds(t *testing.T) {
	s := newStillSession(t)
	s.Tick(idle(s), t0)
	assert.Equal(t, 0, s.Score())
	s.Tick(idle(s), t0+3)
	assert.Equal(t, 3, s.Score())
}

func TestRunningMovesEntities(t *testing.T) {
	s := NewSession(DefaultConfig(), core.NewRNG(4))
	s.Tick(Input{Start: true}, t0)
	before := slices.Clone(s.Swarm().Balls())

	target := geom.Vec2{X: 300, Y: 990}
	s.Tick(Input{Pointer: target}, t0)

	after := s.Swarm().Balls()
	for i := range before {
		assert.NotEqual(t, before[i].Pos, after[i].Pos)
	}
	assert.Greater(t, s.Player().Pos.Y, DefaultConfig().PlayerSpawn().Y)
}

func TestCollisionEndsRunOnSameTick(t *testing.T) {
	s := newStillSession(t)
	s.Swarm().Balls()[0].Pos = s.Player().Pos
	s.Swarm().Balls()[1].Dir.Speed = 5

	frozen := slices.Clone(s.Swarm().Balls())
	playerPos := s.Player().Pos

	s.Tick(Input{Pointer: geom.Vec2{X: 0, Y: 0}, Spawn: true}, t0+7)
	assert.Equal(t, StateGameOver, s.State())
	assert.Equal(t, MessageGameOver, s.Status())
	assert.Equal(t, frozen, s.Swarm().Balls(), "nothing moves on the collision tick")
	assert.Equal(t, playerPos, s.Player().Pos)

	for i := int64(8); i < 20; i++ {
		s.Tick(Input{Pointer: geom.Vec2{X: 0, Y: 0}, Spawn: true}, t0+i)
	}
	assert.Equal(t, StateGameOver, s.State())
	assert.Equal(t, MessageGameOver, s.Status())
	assert.Equal(t, frozen, s.Swarm().Balls())
	assert.Equal(t, playerPos, s.Player().Pos)
}

func TestRestartFromGameOver(t *testing.T) {
	s := newStillSession(t)
	for i := 0; i < 4; i++ {
		s.Tick(Input{Pointer: s.Player().Pos, Spawn: true}, t0+3)
		freeze(s)
	}
	require.Equal(t, 10, s.Swarm().Len())
	require.Equal(t, 3, s.Score())

	s.Swarm().Balls()[2].Pos = s.Player().Pos
	s.Tick(idle(s), t0+4)
	require.Equal(t, StateGameOver, s.State())
	oldPlayer := s.Player()

	s.Tick(Input{Start: true}, t0+60)
	assert.Equal(t, StateRunning, s.State())
	assert.Equal(t, 6, s.Swarm().Len())
	assert.Equal(t, 0, s.Score())
	assert.Empty(t, s.Status())
	assert.NotSame(t, oldPlayer, s.Player())
	assert.Equal(t, DefaultConfig().PlayerSpawn(), s.Player().Pos)
	for _, b := range s.Swarm().Balls() {
		assert.Equal(t, DefaultConfig().BallSpawn(), b.Pos)
	}

	freeze(s)
	s.Tick(idle(s), t0+62)
	assert.Equal(t, 2, s.Score(), "elapsed time restarts from the restart second")
	s.Tick(idle(s), t0+65)
	assert.Equal(t, 7, s.Swarm().Len())
}

func TestSessionDrawOrder(t *testing.T) {
	cfg := DefaultConfig()
	s := NewSession(cfg, core.NewRNG(2))
	rec := &recorder{}
	s.Draw(rec)

	require.Len(t, rec.circles, 1+6+1)
	marker := rec.circles[0]
	assert.Equal(t, cfg.BallSpawn(), marker.center)
	assert.Equal(t, cfg.BallRadius+10, marker.radius)
	assert.Equal(t, ColorMarker, marker.color)
	for _, c := range rec.circles[1:7] {
		assert.Equal(t, ColorVirus, c.color)
	}
	last := rec.circles[7]
	assert.Equal(t, ColorPlayer, last.color)
	assert.Equal(t, 20.0, last.radius)
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "paused", StatePaused.String())
	assert.Equal(t, "running", StateRunning.String())
	assert.Equal(t, "gameover", StateGameOver.String())
	assert.Equal(t, "State(9)", State(9).String())
}

func TestOverrideRejects(t *testing.T) {
	for _, set := range []map[string]string{
		{"intial_balls": "2"},
		{"width": "800"},
		{"ball_radius": "-1"},
		{"spawn_every": "1.5"},
		{"player_radius": "oops"},
	} {
		cfg, err := DefaultConfig().Override(set)
		assert.ErrorIs(t, err, ErrInvalidConfig, "%v", set)
		assert.Equal(t, DefaultConfig(), cfg, "%v", set)
	}
}

func TestConfigValidateAndOverride(t *testing.T) {
	require.NoError(t, DefaultConfig().Validate())

	cfg, err := DefaultConfig().Override(map[string]string{
		"initial_balls":    "3",
		"spawn_every":      "2",
		"ball_speed_min":   "4",
		"player_max_speed": "2.5",
	})
	require.NoError(t, err)
	assert.Equal(t, 3, cfg.InitialBalls)
	assert.Equal(t, 2, cfg.SpawnEvery)
	assert.Equal(t, 4.0, cfg.BallSpeedMin)
	assert.Equal(t, 2.5, cfg.PlayerMaxSpeed)

	cfg, err = DefaultConfig().Override(nil)
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)

	bad := DefaultConfig()
	bad.SpawnEvery = 0
	assert.True(t, errors.Is(bad.Validate(), ErrInvalidConfig))

	bad = DefaultConfig()
	bad.PlayerRadius = 400
	assert.ErrorIs(t, bad.Validate(), ErrInvalidConfig)

	bad = DefaultConfig()
	bad.BallSpeedMax = 1
	assert.ErrorIs(t, bad.Validate(), ErrInvalidConfig)
}
