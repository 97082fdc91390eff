package config_test

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/plus3/pong/arena"
	"github.com/plus3/pong/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestDefault(t *testing.T) {
	cfg := config.Default()

	require.NoError(t, cfg.Validate())
	assert.Equal(t, 800, cfg.Window.Width)
	assert.Equal(t, 600, cfg.Window.Height)
	assert.Equal(t, "Pong!!!", cfg.Window.Title)
	assert.Equal(t, arena.DefaultSetup(), cfg.Setup())
	assert.False(t, cfg.Debug.Overlay)
}

func TestLoadSampleFiles(t *testing.T) {
	fromYAML, err := config.Load("../configs/pong.yaml")
	require.NoError(t, err)

	fromTOML, err := config.Load("../configs/pong.toml")
	require.NoError(t, err)

	assert.Equal(t, fromYAML, fromTOML)

	assert.Equal(t, 1024, fromYAML.Window.Width)
	assert.Equal(t, float32(0.02), fromYAML.Arena.PaddleStep)
	assert.Equal(t, arena.Vec2{X: 0.004, Y: 0.002}, fromYAML.Setup().BallVelocity)
	assert.Equal(t, float32(0.04), fromYAML.Arena.PaddleHalfWidth, "unset values keep defaults")
	assert.Equal(t, []string{"P"}, fromYAML.Keys["pause"])
	assert.Equal(t, "console", fromYAML.Logging.Format)
	assert.True(t, fromYAML.Debug.Overlay)
}

func TestLoadPartialFile(t *testing.T) {
	path := writeConfig(t, "pong.yml", "arena:\n  paddle_half_height: 0.5\n")

	cfg, err := config.Load(path)
	require.NoError(t, err)

	want := config.Default()
	want.Arena.PaddleHalfHeight = 0.5
	assert.Equal(t, want, cfg)
}

func TestLoadErrors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := config.Load(filepath.Join(t.TempDir(), "absent.yaml"))
		require.Error(t, err)
		assert.True(t, errors.Is(err, fs.ErrNotExist))
	})

	t.Run("unsupported extension", func(t *testing.T) {
		_, err := config.Load(writeConfig(t, "pong.json", "{}"))
		assert.ErrorContains(t, err, "unsupported format")
	})

	t.Run("malformed yaml", func(t *testing.T) {
		_, err := config.Load(writeConfig(t, "pong.yaml", "window: [1, 2"))
		assert.ErrorContains(t, err, "failed to parse")
	})

	t.Run("malformed toml", func(t *testing.T) {
		_, err := config.Load(writeConfig(t, "pong.toml", "[window\nwidth = 3"))
		assert.ErrorContains(t, err, "failed to parse")
	})

	t.Run("invalid values", func(t *testing.T) {
		_, err := config.Load(writeConfig(t, "pong.toml", "[arena]\nball_velocity_y = 0.0\n"))
		assert.ErrorIs(t, err, config.ErrInvalid)
	})
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*config.Config)
	}{
		{"zero width", func(c *config.Config) { c.Window.Width = 0 }},
		{"zero tps", func(c *config.Config) { c.Window.TPS = 0 }},
		{"negative paddle extent", func(c *config.Config) { c.Arena.PaddleHalfWidth = -0.1 }},
		{"zero ball extent", func(c *config.Config) { c.Arena.BallHalfHeight = 0 }},
		{"zero step", func(c *config.Config) { c.Arena.PaddleStep = 0 }},
		{"zero velocity", func(c *config.Config) { c.Arena.BallVelocityX = 0 }},
		{"paddle taller than arena", func(c *config.Config) { c.Arena.PaddleHalfHeight = 1.5 }},
		{"unknown key", func(c *config.Config) { c.Keys["jump"] = []string{"J"} }},
		{"empty binding", func(c *config.Config) { c.Keys["pause"] = nil }},
		{"unknown physical key", func(c *config.Config) { c.Keys["pause"] = []string{"Pause Button"} }},
		{"lowercase physical key", func(c *config.Config) { c.Keys["move_up"] = []string{"w"} }},
		{"ball as wide as the arena", func(c *config.Config) { c.Arena.BallHalfWidth = 1 }},
		{"ball as tall as the arena", func(c *config.Config) { c.Arena.BallHalfHeight = 1.25 }},
		{"player outside the arena", func(c *config.Config) { c.Arena.PlayerX = -1.5 }},
		{"enemy past the right wall", func(c *config.Config) { c.Arena.EnemyX = 0.98 }},
		{"player over the serve", func(c *config.Config) { c.Arena.PlayerX = 0 }},
		{"paddles swapped", func(c *config.Config) { c.Arena.PlayerX, c.Arena.EnemyX = 0.9, -0.9 }},
		{"unknown level", func(c *config.Config) { c.Logging.Level = "loud" }},
		{"unknown format", func(c *config.Config) { c.Logging.Format = "xml" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.Default()
			tt.mutate(cfg)
			assert.ErrorIs(t, cfg.Validate(), config.ErrInvalid)
		})
	}
}

func TestIsPhysicalKey(t *testing.T) {
	for _, name := range []string{"A", "Z", "Digit0", "Digit9", "Space", "ArrowLeft", "Enter", "Backspace"} {
		assert.True(t, config.IsPhysicalKey(name), name)
	}
	for _, name := range []string{"", "a", "7", "Pause Button", "Escape", "Digit10"} {
		assert.False(t, config.IsPhysicalKey(name), name)
	}
}

func TestBindings(t *testing.T) {
	bindings, err := config.Default().Bindings()
	require.NoError(t, err)

	assert.Equal(t, []string{"W", "ArrowUp"}, bindings[arena.KeyMoveUp])
	assert.Equal(t, []string{"S", "ArrowDown"}, bindings[arena.KeyMoveDown])
	assert.Equal(t, []string{"P", "Space"}, bindings[arena.KeyPause])
}
