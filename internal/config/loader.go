package config

import (
	"fmt"
	"math"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// configFile is the file name looked up in the user and local directories.
const configFile = "breakout.yaml"

// LoadBreakout loads Breakout configuration and validates it.
// Search order: customPath -> ~/.breakout/breakout.yaml -> ./configs/breakout.yaml -> embedded default
//
// Values missing from a file keep their defaults.
func LoadBreakout(customPath string) (BreakoutConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return BreakoutConfig{}, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg, err := parse(data)
		if err != nil {
			return BreakoutConfig{}, fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		return cfg, cfg.Validate()
	}

	// Try user config directory, then local configs directory
	for _, path := range []string{userConfigPath(configFile), filepath.Join("configs", configFile)} {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		if cfg, err := parse(data); err == nil {
			return cfg, cfg.Validate()
		}
	}

	// Use embedded default YAML
	cfg, err := parse(defaultBreakoutYAML)
	if err != nil {
		return DefaultBreakoutConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, cfg.Validate()
}

// parse decodes YAML on top of the hard-coded defaults.
func parse(data []byte) (BreakoutConfig, error) {
	cfg := DefaultBreakoutConfig()
	cfg.Bricks.Palette = nil
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return BreakoutConfig{}, err
	}
	if len(cfg.Bricks.Palette) == 0 {
		cfg.Bricks.Palette = append([]string(nil), DefaultPalette...)
	}
	return cfg, nil
}

// ApplyPreset modifies the config based on a difficulty preset.
// Normal and the empty preset leave the config untouched.
func ApplyPreset(cfg *BreakoutConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Gameplay.Lives = 5
		cfg.Paddle.Width = 100
	case DifficultyHard:
		cfg.Gameplay.Lives = 2
		cfg.Paddle.Width = 60
		// One extra unit per tick on each axis, keeping the direction
		cfg.Ball.SpeedX = math.Copysign(math.Abs(cfg.Ball.SpeedX)+1, cfg.Ball.SpeedX)
		cfg.Ball.SpeedY = math.Copysign(math.Abs(cfg.Ball.SpeedY)+1, cfg.Ball.SpeedY)
	}
}

// Marshal renders a config as YAML.
func Marshal(cfg BreakoutConfig) ([]byte, error) {
	return yaml.Marshal(cfg)
}

// userConfigPath returns the path inside ~/.breakout, or "" if the home
// directory is unknown.
func userConfigPath(name string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".breakout", name)
}
