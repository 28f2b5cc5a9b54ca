package app

import (
	"flag"
	"fmt"
	"strings"
	"time"

	"dodge/internal/core"
	"dodge/internal/game"

	"github.com/BurntSushi/toml"
)

// Config represents the command-line parameters for the application.
type Config struct {
	Backend string
	Seed    int64
	FPS     int
	Scale   float64
	Tuning  string
	Set     map[string]string
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{Backend: "terminal", FPS: 60, Scale: 0.8, Set: map[string]string{}}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for ball spawns (0 picks one from the clock)")
	fs.IntVar(&c.FPS, "fps", c.FPS, "target frames per second")
	fs.Float64Var(&c.Scale, "scale", c.Scale, "window scale for the ebiten build")
	fs.StringVar(&c.Tuning, "config", c.Tuning, "optional TOML file overriding gameplay tuning")
	fs.Func("set", "override one tunable as key=value (repeatable)", func(v string) error {
		key, val, ok := strings.Cut(v, "=")
		if !ok || key == "" {
			return fmt.Errorf("%w: -set wants key=value, got %q", game.ErrInvalidConfig, v)
		}
		if c.Set == nil {
			c.Set = map[string]string{}
		}
		c.Set[strings.TrimSpace(key)] = strings.TrimSpace(val)
		return nil
	})
}

// BindBackend adds -backend. Call it after the backends have registered so
// the help text lists them.
func (c *Config) BindBackend(fs *flag.FlagSet) {
	fs.StringVar(&c.Backend, "backend", c.Backend, "window backend ("+strings.Join(core.BackendNames(), ", ")+")")
}

// RNG returns the spawn RNG, seeding from the clock when Seed is zero.
func (c *Config) RNG() *core.RNG {
	seed := c.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return core.NewRNG(seed)
}

// GameConfig returns the default tuning with the TOML file, if any, and then
// the -set overrides applied on top.
func (c *Config) GameConfig() (game.Config, error) {
	cfg := game.DefaultConfig()
	if c.Tuning != "" {
		loaded, err := LoadTuning(c.Tuning, cfg)
		if err != nil {
			return cfg, err
		}
		cfg = loaded
	}
	cfg, err := cfg.Override(c.Set)
	if err != nil {
		return cfg, fmt.Errorf("-set: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// LoadTuning decodes the TOML file at path over base. Keys that do not map to
// a tunable are rejected.
func LoadTuning(path string, base game.Config) (game.Config, error) {
	cfg := base
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return base, fmt.Errorf("load tuning %s: %w", path, err)
	}
	return checkUndecoded(md, path, cfg, base)
}

// DecodeTuning is LoadTuning for in-memory TOML.
func DecodeTuning(data string, base game.Config) (game.Config, error) {
	cfg := base
	md, err := toml.Decode(data, &cfg)
	if err != nil {
		return base, fmt.Errorf("decode tuning: %w", err)
	}
	return checkUndecoded(md, "tuning", cfg, base)
}

func checkUndecoded(md toml.MetaData, src string, cfg, base game.Config) (game.Config, error) {
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return base, fmt.Errorf("%w: %s: unknown keys %s", game.ErrInvalidConfig, src, strings.Join(keys, ", "))
	}
	return cfg, nil
}
