package game

import (
	"errors"
	"fmt"
	"image/color"
	"maps"
	"slices"
	"strconv"

	"dodge/internal/core"
	"dodge/pkg/geom"
)

// ErrInvalidConfig is returned by Validate for unusable tuning values.
var ErrInvalidConfig = errors.New("invalid game config")

// Config holds the playfield dimensions and every gameplay tunable.
type Config struct {
	Width  float64 `toml:"-"`
	Height float64 `toml:"-"`

	BallRadius   float64 `toml:"ball_radius"`
	BallSpeedMin float64 `toml:"ball_speed_min"`
	BallSpeedMax float64 `toml:"ball_speed_max"`
	InitialBalls int     `toml:"initial_balls"`
	SpawnEvery   int     `toml:"spawn_every"`

	PlayerRadius   float64 `toml:"player_radius"`
	PlayerMaxSpeed float64 `toml:"player_max_speed"`
	PlayerApproach float64 `toml:"player_approach"`

	ManualSpawnBonus int `toml:"manual_spawn_bonus"`

	BallColor   color.RGBA `toml:"-"`
	PlayerColor color.RGBA `toml:"-"`
	MarkerColor color.RGBA `toml:"-"`
}

// Colors shared by every backend.
var (
	ColorBackground = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	ColorVirus      = color.RGBA{R: 230, G: 41, B: 55, A: 255}
	ColorPlayer     = color.RGBA{R: 0, G: 121, B: 241, A: 255}
	ColorMarker     = color.RGBA{R: 80, G: 80, B: 80, A: 255}
	ColorText       = color.RGBA{R: 200, G: 200, B: 200, A: 255}
)

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Width:  600,
		Height: 1000,

		BallRadius:   10,
		BallSpeedMin: 2,
		BallSpeedMax: 6,
		InitialBalls: 6,
		SpawnEvery:   5,

		PlayerRadius:   20,
		PlayerMaxSpeed: 2,
		PlayerApproach: 0.05,

		BallColor:   ColorVirus,
		PlayerColor: ColorPlayer,
		MarkerColor: ColorMarker,
	}
}

// Size returns the playfield size rounded to whole units.
func (c Config) Size() core.Size {
	return core.Size{W: int(c.Width), H: int(c.Height)}
}

// BallSpawn is the point every ball starts from.
func (c Config) BallSpawn() geom.Vec2 {
	return geom.Vec2{X: c.Width / 2, Y: c.Height / 2}
}

// PlayerSpawn is where a fresh player is placed.
func (c Config) PlayerSpawn() geom.Vec2 {
	return geom.Vec2{X: c.Width / 2, Y: 2 * c.Height / 3}
}

// Validate reports the first unusable value.
func (c Config) Validate() error {
	switch {
	case c.Width <= 0 || c.Height <= 0:
		return fmt.Errorf("%w: playfield %vx%v", ErrInvalidConfig, c.Width, c.Height)
	case c.BallRadius <= 0 || c.PlayerRadius <= 0:
		return fmt.Errorf("%w: radii must be positive", ErrInvalidConfig)
	case 2*c.PlayerRadius > c.Width || 2*c.PlayerRadius > c.Height:
		return fmt.Errorf("%w: player does not fit the playfield", ErrInvalidConfig)
	case c.BallSpeedMin < 0 || c.BallSpeedMax < c.BallSpeedMin:
		return fmt.Errorf("%w: ball speed range [%v,%v]", ErrInvalidConfig, c.BallSpeedMin, c.BallSpeedMax)
	case c.InitialBalls < 0:
		return fmt.Errorf("%w: initial_balls %d", ErrInvalidConfig, c.InitialBalls)
	case c.SpawnEvery <= 0:
		return fmt.Errorf("%w: spawn_every %d", ErrInvalidConfig, c.SpawnEvery)
	case c.PlayerMaxSpeed < 0 || c.PlayerApproach < 0:
		return fmt.Errorf("%w: player speed tuning must be non-negative", ErrInvalidConfig)
	case c.ManualSpawnBonus < 0:
		return fmt.Errorf("%w: manual_spawn_bonus %d", ErrInvalidConfig, c.ManualSpawnBonus)
	}
	return nil
}

// Override applies flag-style key/value pairs on top of c. Unknown keys and
// values that do not parse as non-negative numbers are rejected.
func (c Config) Override(set map[string]string) (Config, error) {
	base := c
	floats := map[string]*float64{
		"ball_radius":      &c.BallRadius,
		"ball_speed_min":   &c.BallSpeedMin,
		"ball_speed_max":   &c.BallSpeedMax,
		"player_radius":    &c.PlayerRadius,
		"player_max_speed": &c.PlayerMaxSpeed,
		"player_approach":  &c.PlayerApproach,
	}
	ints := map[string]*int{
		"initial_balls":      &c.InitialBalls,
		"spawn_every":        &c.SpawnEvery,
		"manual_spawn_bonus": &c.ManualSpawnBonus,
	}
	for _, key := range slices.Sorted(maps.Keys(set)) {
		v := set[key]
		if dst, ok := floats[key]; ok {
			parsed, err := strconv.ParseFloat(v, 64)
			if err != nil || parsed < 0 {
				return base, fmt.Errorf("%w: %s=%q", ErrInvalidConfig, key, v)
			}
			*dst = parsed
			continue
		}
		if dst, ok := ints[key]; ok {
			parsed, err := strconv.Atoi(v)
			if err != nil || parsed < 0 {
				return base, fmt.Errorf("%w: %s=%q", ErrInvalidConfig, key, v)
			}
			*dst = parsed
			continue
		}
		return base, fmt.Errorf("%w: unknown tunable %q", ErrInvalidConfig, key)
	}
	return c, nil
}
