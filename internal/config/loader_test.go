package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := parse(DefaultYAML())
	require.NoError(t, err)
	require.Equal(t, DefaultBreakoutConfig(), cfg)
	require.NoError(t, cfg.Validate())
}

func TestDefaultGeometry(t *testing.T) {
	cfg := DefaultBreakoutConfig()

	require.Equal(t, 600.0, cfg.PaddleY())
	require.Equal(t, 200.0, cfg.PaddleStartX())

	x, y := cfg.BallStart()
	require.Equal(t, 240.0, x)
	require.Equal(t, 590.0, y)
	require.Equal(t, 600, cfg.MaxPointsPerLevel())
}

func TestLoadBreakoutCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	yaml := "paddle:\n  width: 120\ngameplay:\n  lives: 7\n"
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0o600))

	cfg, err := LoadBreakout(path)
	require.NoError(t, err)
	require.Equal(t, 120.0, cfg.Paddle.Width)
	require.Equal(t, 7, cfg.Gameplay.Lives)

	// Untouched sections keep defaults
	require.Equal(t, 10.0, cfg.Ball.Radius)
	require.Equal(t, DefaultPalette, cfg.Bricks.Palette)
}

func TestLoadBreakoutCustomPalette(t *testing.T) {
	path := filepath.Join(t.TempDir(), "palette.yaml")
	require.NoError(t, os.WriteFile(path, []byte("bricks:\n  palette: [\"#123456\"]\n"), 0o600))

	cfg, err := LoadBreakout(path)
	require.NoError(t, err)
	require.Equal(t, []string{"#123456"}, cfg.Bricks.Palette)
}

func TestLoadBreakoutErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := LoadBreakout(filepath.Join(dir, "missing.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)

	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("field: [not, a, map"), 0o600))
	_, err = LoadBreakout(bad)
	require.Error(t, err)

	zero := filepath.Join(dir, "zero.yaml")
	require.NoError(t, os.WriteFile(zero, []byte("ball:\n  speed_x: 0\n"), 0o600))
	_, err = LoadBreakout(zero)
	require.ErrorIs(t, err, ErrInvalid)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*BreakoutConfig)
	}{
		{"zero dy", func(c *BreakoutConfig) { c.Ball.SpeedY = 0 }},
		{"no palette", func(c *BreakoutConfig) { c.Bricks.Palette = nil }},
		{"grid too wide", func(c *BreakoutConfig) { c.Bricks.Columns = 7 }},
		{"grid reaches paddle", func(c *BreakoutConfig) { c.Bricks.Rows = 30 }},
		{"paddle wider than field", func(c *BreakoutConfig) { c.Paddle.Width = 500 }},
		{"negative lives", func(c *BreakoutConfig) { c.Gameplay.Lives = -1 }},
		{"zero paddle speed", func(c *BreakoutConfig) { c.Paddle.Speed = 0 }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultBreakoutConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			require.Error(t, err)
			require.True(t, errors.Is(err, ErrInvalid))
		})
	}
}

func TestApplyPreset(t *testing.T) {
	easy := DefaultBreakoutConfig()
	ApplyPreset(&easy, DifficultyEasy)
	require.Equal(t, 5, easy.Gameplay.Lives)
	require.Equal(t, 100.0, easy.Paddle.Width)

	hard := DefaultBreakoutConfig()
	hard.Ball.SpeedX = -3
	ApplyPreset(&hard, DifficultyHard)
	require.Equal(t, 2, hard.Gameplay.Lives)
	require.Equal(t, -4.0, hard.Ball.SpeedX)
	require.Equal(t, 4.0, hard.Ball.SpeedY)
	require.NoError(t, hard.Validate())

	normal := DefaultBreakoutConfig()
	ApplyPreset(&normal, DifficultyNormal)
	require.Equal(t, DefaultBreakoutConfig(), normal)
}

func TestParsePreset(t *testing.T) {
	for _, s := range []string{"", "easy", "normal", "hard"} {
		p, err := ParsePreset(s)
		require.NoError(t, err)
		require.Equal(t, DifficultyPreset(s), p)
	}
	_, err := ParsePreset("nightmare")
	require.Error(t, err)
}
