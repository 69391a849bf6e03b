// breakout is a terminal Breakout game with a headless simulator and an
// SSH server for remote play.
//
// Usage:
//
//	breakout play            - Play in the local terminal
//	breakout serve           - Start SSH server for remote play
//	breakout sim             - Run the simulation headless with the autopilot
//	breakout config          - Print the game configuration as YAML
//
// Global flags:
//
//	--fps <rate>           - Set tick rate (default: 60)
//	--seed <value>         - Set RNG seed for reproducible gameplay
//	--config <path>        - Load a custom breakout.yaml
//	--difficulty <preset>  - easy, normal or hard
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/core"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagConfig     string
	flagDifficulty string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "breakout",
	Short: "Breakout in your terminal",
	Long: `Breakout is the classic brick-breaking game for the terminal.

Available commands:
  play     - Play in the local terminal
  serve    - Start SSH server for remote play
  sim      - Run the simulation headless with the autopilot
  config   - Print the game configuration

Examples:
  breakout play
  breakout play --difficulty hard
  breakout serve --ssh :2222
  breakout sim --frames 10000 --seed 42`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom breakout.yaml")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(configCmd)
}

// loadConfig resolves the game config from the global flags.
func loadConfig() (*config.BreakoutConfig, error) {
	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return nil, err
	}

	cfg, err := config.LoadBreakout(flagConfig)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	config.ApplyPreset(&cfg, preset)
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("difficulty %q: %w", preset, err)
	}
	return &cfg, nil
}

// runtimeConfig builds host settings from the global flags.
func runtimeConfig(width, height int) core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}
