package config

import (
	_ "embed"
)

//go:embed defaults/breakout.yaml
var defaultBreakoutYAML []byte

// DefaultPalette is the brick color palette used when none is configured.
var DefaultPalette = []string{
	"#FF0000",
	"#00FF00",
	"#FFFF00",
	"#009000",
	"#0032FF",
	"#FF00FF",
	"#FFAA32",
	"#AE99E9",
}

// DefaultBreakoutConfig returns the built-in Breakout configuration.
// It matches defaults/breakout.yaml and is used if the embed cannot be parsed.
func DefaultBreakoutConfig() BreakoutConfig {
	return BreakoutConfig{
		Field: FieldConfig{
			Width:  480,
			Height: 620,
		},
		Ball: BallConfig{
			Radius: 10,
			SpeedX: 3,
			SpeedY: 3,
			StartY: 30,
		},
		Paddle: PaddleConfig{
			Width:        80,
			Height:       10,
			Speed:        5,
			BottomMargin: 10,
		},
		Bricks: BricksConfig{
			Rows:       10,
			Columns:    6,
			Width:      75,
			Height:     20,
			Padding:    2,
			OffsetTop:  30,
			OffsetLeft: 10,
			Points:     10,
			Palette:    append([]string(nil), DefaultPalette...),
		},
		Gameplay: GameplayConfig{
			Lives: 3,
		},
		Input: InputConfig{
			HoldTicks: 10,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultBreakoutYAML
}
