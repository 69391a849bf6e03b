// Package config provides YAML-based game configuration loading,
// validation and difficulty presets for Breakout.
package config

import (
	"errors"
	"fmt"
)

// BreakoutConfig contains all geometry and gameplay constants of a session.
// It is loaded once and shared read-only by every game component.
type BreakoutConfig struct {
	Field    FieldConfig    `yaml:"field"`
	Ball     BallConfig     `yaml:"ball"`
	Paddle   PaddleConfig   `yaml:"paddle"`
	Bricks   BricksConfig   `yaml:"bricks"`
	Gameplay GameplayConfig `yaml:"gameplay"`
	Input    InputConfig    `yaml:"input"`
}

// FieldConfig defines the play area in field units (pixels).
type FieldConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// BallConfig defines the ball's size and deterministic start state.
type BallConfig struct {
	Radius float64 `yaml:"radius"`
	SpeedX float64 `yaml:"speed_x"` // Initial dx per tick
	SpeedY float64 `yaml:"speed_y"` // Initial dy per tick (positive = down)
	StartY float64 `yaml:"start_y"` // Distance of the start position above the field bottom
}

// PaddleConfig defines paddle geometry and movement.
type PaddleConfig struct {
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	Speed        float64 `yaml:"speed"`         // Movement per tick
	BottomMargin float64 `yaml:"bottom_margin"` // Gap between paddle and field bottom
}

// BricksConfig defines the brick grid.
type BricksConfig struct {
	Rows       int      `yaml:"rows"`
	Columns    int      `yaml:"columns"`
	Width      float64  `yaml:"width"`
	Height     float64  `yaml:"height"`
	Padding    float64  `yaml:"padding"`
	OffsetTop  float64  `yaml:"offset_top"`
	OffsetLeft float64  `yaml:"offset_left"`
	Points     int      `yaml:"points"`
	Palette    []string `yaml:"palette"`
}

// GameplayConfig defines session rules.
type GameplayConfig struct {
	Lives int `yaml:"lives"`
}

// InputConfig tunes how terminal key presses become held directions.
type InputConfig struct {
	HoldTicks int `yaml:"hold_ticks"` // Ticks a key press keeps its direction
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParsePreset converts a CLI value to a preset. The empty string is valid
// and means "no preset".
func ParsePreset(s string) (DifficultyPreset, error) {
	switch DifficultyPreset(s) {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard:
		return DifficultyPreset(s), nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal or hard)", s)
	}
}

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("config: invalid breakout config")

// Validate checks that the config describes a playable field.
func (c *BreakoutConfig) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf(format, args...))
		}
	}

	check(c.Field.Width > 0 && c.Field.Height > 0, "field must have positive size, got %vx%v", c.Field.Width, c.Field.Height)
	check(c.Ball.Radius > 0, "ball radius must be positive, got %v", c.Ball.Radius)
	check(c.Ball.SpeedX != 0 && c.Ball.SpeedY != 0, "ball speed components must be non-zero, got (%v, %v)", c.Ball.SpeedX, c.Ball.SpeedY)
	check(c.Paddle.Width > 0 && c.Paddle.Height > 0, "paddle must have positive size, got %vx%v", c.Paddle.Width, c.Paddle.Height)
	check(c.Paddle.Speed > 0, "paddle speed must be positive, got %v", c.Paddle.Speed)
	check(c.Paddle.Width <= c.Field.Width, "paddle width %v exceeds field width %v", c.Paddle.Width, c.Field.Width)
	check(c.Bricks.Rows > 0 && c.Bricks.Columns > 0, "brick grid must be at least 1x1, got %dx%d", c.Bricks.Rows, c.Bricks.Columns)
	check(c.Bricks.Width > 0 && c.Bricks.Height > 0, "bricks must have positive size, got %vx%v", c.Bricks.Width, c.Bricks.Height)
	check(c.Bricks.Points >= 0, "brick points must not be negative, got %d", c.Bricks.Points)
	check(len(c.Bricks.Palette) > 0, "brick palette must not be empty")
	check(c.Gameplay.Lives >= 0, "lives must not be negative, got %d", c.Gameplay.Lives)
	check(c.Input.HoldTicks >= 0, "hold_ticks must not be negative, got %d", c.Input.HoldTicks)

	if c.Bricks.Columns > 0 && c.Bricks.Rows > 0 {
		gridRight := c.Bricks.OffsetLeft + float64(c.Bricks.Columns)*(c.Bricks.Width+c.Bricks.Padding) - c.Bricks.Padding
		gridBottom := c.Bricks.OffsetTop + float64(c.Bricks.Rows)*(c.Bricks.Height+c.Bricks.Padding) - c.Bricks.Padding
		check(gridRight <= c.Field.Width, "brick grid right edge %v exceeds field width %v", gridRight, c.Field.Width)
		check(gridBottom < c.PaddleY(), "brick grid bottom %v reaches the paddle row %v", gridBottom, c.PaddleY())
	}

	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %w", ErrInvalid, errors.Join(errs...))
}

// PaddleY returns the paddle's fixed top edge.
func (c *BreakoutConfig) PaddleY() float64 {
	return c.Field.Height - c.Paddle.Height - c.Paddle.BottomMargin
}

// PaddleStartX returns the centered paddle position.
func (c *BreakoutConfig) PaddleStartX() float64 {
	return (c.Field.Width - c.Paddle.Width) / 2
}

// BallStart returns the ball's initial center.
func (c *BreakoutConfig) BallStart() (x, y float64) {
	return c.Field.Width / 2, c.Field.Height - c.Ball.StartY
}

// MaxPointsPerLevel returns the score available from one full grid.
func (c *BreakoutConfig) MaxPointsPerLevel() int {
	return c.Bricks.Rows * c.Bricks.Columns * c.Bricks.Points
}
