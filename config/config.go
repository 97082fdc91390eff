// Package config loads the game's settings from YAML or TOML files.
//
// Values absent from a file keep their defaults, so a config file only
// needs the settings it changes.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/plus3/pong/arena"
	"gopkg.in/yaml.v3"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

type Config struct {
	Window  WindowConfig        `yaml:"window" toml:"window"`
	Arena   ArenaConfig         `yaml:"arena" toml:"arena"`
	Keys    map[string][]string `yaml:"keys" toml:"keys"`
	Logging LoggingConfig       `yaml:"logging" toml:"logging"`
	Debug   DebugConfig         `yaml:"debug" toml:"debug"`
}

type WindowConfig struct {
	Width  int    `yaml:"width" toml:"width"`
	Height int    `yaml:"height" toml:"height"`
	Title  string `yaml:"title" toml:"title"`
	// TPS is the terminal frontend's frame rate. The window frontend
	// follows the display refresh rate instead.
	TPS int `yaml:"tps" toml:"tps"`
}

type ArenaConfig struct {
	PaddleHalfWidth  float32 `yaml:"paddle_half_width" toml:"paddle_half_width"`
	PaddleHalfHeight float32 `yaml:"paddle_half_height" toml:"paddle_half_height"`
	PaddleStep       float32 `yaml:"paddle_step" toml:"paddle_step"`
	PlayerX          float32 `yaml:"player_x" toml:"player_x"`
	EnemyX           float32 `yaml:"enemy_x" toml:"enemy_x"`
	BallHalfWidth    float32 `yaml:"ball_half_width" toml:"ball_half_width"`
	BallHalfHeight   float32 `yaml:"ball_half_height" toml:"ball_half_height"`
	BallVelocityX    float32 `yaml:"ball_velocity_x" toml:"ball_velocity_x"`
	BallVelocityY    float32 `yaml:"ball_velocity_y" toml:"ball_velocity_y"`
}

type LoggingConfig struct {
	Level  string `yaml:"level" toml:"level"`
	Format string `yaml:"format" toml:"format"`
	File   string `yaml:"file" toml:"file"`
}

type DebugConfig struct {
	Overlay bool `yaml:"overlay" toml:"overlay"`
}

// Default returns the stock settings.
func Default() *Config {
	setup := arena.DefaultSetup()
	return &Config{
		Window: WindowConfig{
			Width:  800,
			Height: 600,
			Title:  "Pong!!!",
			TPS:    60,
		},
		Arena: ArenaConfig{
			PaddleHalfWidth:  setup.PaddleHalfWidth,
			PaddleHalfHeight: setup.PaddleHalfHeight,
			PaddleStep:       setup.PaddleStep,
			PlayerX:          setup.PlayerX,
			EnemyX:           setup.EnemyX,
			BallHalfWidth:    setup.BallHalfWidth,
			BallHalfHeight:   setup.BallHalfHeight,
			BallVelocityX:    setup.BallVelocity.X,
			BallVelocityY:    setup.BallVelocity.Y,
		},
		Keys: map[string][]string{
			arena.KeyMoveUp.String():   {"W", "ArrowUp"},
			arena.KeyMoveDown.String(): {"S", "ArrowDown"},
			arena.KeyPause.String():    {"P", "Space"},
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// Load reads the file at path over the defaults and validates the result.
// The format is chosen by extension: .yaml, .yml or .toml.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	cfg := Default()
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, cfg)
	case ".toml":
		_, err = toml.Decode(string(data), cfg)
	default:
		return nil, fmt.Errorf("config %s: unsupported format %q", path, ext)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks that the settings describe a playable arena.
func (c *Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("%w: window size %dx%d", ErrInvalid, c.Window.Width, c.Window.Height)
	}
	if c.Window.TPS <= 0 {
		return fmt.Errorf("%w: window.tps must be positive, got %d", ErrInvalid, c.Window.TPS)
	}

	a := c.Arena
	positive := []struct {
		name  string
		value float32
	}{
		{"arena.paddle_half_width", a.PaddleHalfWidth},
		{"arena.paddle_half_height", a.PaddleHalfHeight},
		{"arena.paddle_step", a.PaddleStep},
		{"arena.ball_half_width", a.BallHalfWidth},
		{"arena.ball_half_height", a.BallHalfHeight},
	}
	for _, p := range positive {
		if !(p.value > 0) {
			return fmt.Errorf("%w: %s must be positive, got %v", ErrInvalid, p.name, p.value)
		}
	}
	if a.BallVelocityX == 0 || a.BallVelocityY == 0 {
		return fmt.Errorf("%w: ball velocity must be non-zero on both axes", ErrInvalid)
	}
	if a.PaddleHalfHeight > arena.ArenaMax {
		return fmt.Errorf("%w: paddle taller than the arena", ErrInvalid)
	}
	if a.BallHalfWidth >= arena.ArenaMax || a.BallHalfHeight >= arena.ArenaMax {
		return fmt.Errorf("%w: ball does not fit in the arena", ErrInvalid)
	}
	for _, x := range []float32{a.PlayerX, a.EnemyX} {
		if x-a.PaddleHalfWidth < arena.ArenaMin || x+a.PaddleHalfWidth > arena.ArenaMax {
			return fmt.Errorf("%w: paddle at x=%v leaves the arena", ErrInvalid, x)
		}
	}
	// the serve starts at the center, clear of both paddles
	if a.PlayerX+a.PaddleHalfWidth >= -a.BallHalfWidth || a.EnemyX-a.PaddleHalfWidth <= a.BallHalfWidth {
		return fmt.Errorf("%w: paddles at x=%v and x=%v overlap the serve", ErrInvalid, a.PlayerX, a.EnemyX)
	}

	if _, err := c.Bindings(); err != nil {
		return err
	}

	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: unknown log level %q", ErrInvalid, c.Logging.Level)
	}
	switch c.Logging.Format {
	case "text", "json", "console":
	default:
		return fmt.Errorf("%w: unknown log format %q", ErrInvalid, c.Logging.Format)
	}
	return nil
}

// Setup converts the arena section for arena.NewWorld.
func (c *Config) Setup() arena.Setup {
	return arena.Setup{
		PaddleHalfWidth:  c.Arena.PaddleHalfWidth,
		PaddleHalfHeight: c.Arena.PaddleHalfHeight,
		PaddleStep:       c.Arena.PaddleStep,
		PlayerX:          c.Arena.PlayerX,
		EnemyX:           c.Arena.EnemyX,
		BallHalfWidth:    c.Arena.BallHalfWidth,
		BallHalfHeight:   c.Arena.BallHalfHeight,
		BallVelocity:     arena.Vec2{X: c.Arena.BallVelocityX, Y: c.Arena.BallVelocityY},
	}
}

// Bindings resolves the keys section into physical key names per logical
// key. Physical names follow ebiten's key names ("W", "ArrowUp", "Space").
func (c *Config) Bindings() (map[arena.Key][]string, error) {
	bindings := make(map[arena.Key][]string, len(c.Keys))
	for name, physical := range c.Keys {
		key, ok := arena.ParseKey(name)
		if !ok {
			return nil, fmt.Errorf("%w: unknown key %q", ErrInvalid, name)
		}
		if len(physical) == 0 {
			return nil, fmt.Errorf("%w: key %q has no bindings", ErrInvalid, name)
		}
		for _, p := range physical {
			if !IsPhysicalKey(p) {
				return nil, fmt.Errorf("%w: key %q bound to unknown key name %q", ErrInvalid, name, p)
			}
		}
		bindings[key] = physical
	}
	return bindings, nil
}
