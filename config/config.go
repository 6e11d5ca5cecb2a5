// Package config loads and validates the game settings.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"time"

	"snake-engine/game"
	"snake-engine/game/types"

	"github.com/go-playground/validator/v10"
	"github.com/pelletier/go-toml/v2"
)

const (
	FrontendRaylib   = "raylib"
	FrontendTerminal = "terminal"
	FrontendHeadless = "headless"
)

type Config struct {
	Width          int    `toml:"width" validate:"min=2,max=512"`
	Height         int    `toml:"height" validate:"min=2,max=512"`
	SpawnX         int    `toml:"spawn_x" validate:"gte=0,ltfield=Width"`
	SpawnY         int    `toml:"spawn_y" validate:"gte=1,ltfield=Height"` // room for the trailing segment below
	TickMillis     int    `toml:"tick_ms" validate:"min=10,max=2000"`
	FoodCap        int    `toml:"food_cap" validate:"min=0,max=4096"`
	FoodEveryTicks int    `toml:"food_every_ticks" validate:"min=1"`
	Seed           uint64 `toml:"seed"`
	Frontend       string `toml:"frontend" validate:"oneof=raylib terminal headless"`
	HeadlessTicks  int    `toml:"headless_ticks" validate:"min=1"`
	Autopilot      string `toml:"autopilot" validate:"oneof=table dqn"`
	AutoPlay       bool   `toml:"autoplay"` // autopilot drives the window and terminal too
	LogLevel       string `toml:"log_level" validate:"oneof=debug info warn error"`
	LogFile        string `toml:"log_file"`
	Sound          bool   `toml:"sound"`
}

func Default() Config {
	return Config{
		Width:          10,
		Height:         10,
		SpawnX:         3,
		SpawnY:         3,
		TickMillis:     150,
		FoodCap:        types.DefaultFoodCap,
		FoodEveryTicks: 1,
		Frontend:       FrontendRaylib,
		HeadlessTicks:  1000,
		Autopilot:      "table",
		LogLevel:       "info",
		Sound:          true,
	}
}

// Load reads a TOML file over the defaults. An empty path yields the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config file: %w", err)
	}
	if err := Decode(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	return cfg, nil
}

// Decode overlays TOML data onto cfg; unknown keys are rejected
func Decode(data []byte, cfg *Config) error {
	d := toml.NewDecoder(bytes.NewReader(data))
	d.DisallowUnknownFields()
	return d.Decode(cfg)
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks every field against its constraints
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			first := verrs[0]
			return fmt.Errorf("invalid config: %s fails %q (value %v)", first.Field(), first.Tag(), first.Value())
		}
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

func (c Config) TickInterval() time.Duration {
	return time.Duration(c.TickMillis) * time.Millisecond
}

func (c Config) Grid() types.Grid {
	return types.Grid{Width: c.Width, Height: c.Height}
}

// GameSettings converts the config into simulation settings
func (c Config) GameSettings() game.Settings {
	return game.Settings{
		Grid:           c.Grid(),
		Spawn:          types.Cell{X: c.SpawnX, Y: c.SpawnY},
		FoodCap:        c.FoodCap,
		FoodEveryTicks: c.FoodEveryTicks,
		Seed:           c.Seed,
	}
}
