package main

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-breakout/internal/games/breakout"
	"github.com/vovakirdan/tui-breakout/internal/platform/tui"
)

var flagLogFile string

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play Breakout",
	Long: `Start a game in the local terminal.

Controls:
  ←/a/h, →/d/l  - Move the paddle
  Mouse         - Hold the left or right half of the field
  P/Esc         - Pause
  R             - Restart
  Q/Ctrl+C      - Quit

Difficulty options:
  easy    - 5 lives, wider paddle
  normal  - Defaults from the config
  hard    - 2 lives, narrower paddle, faster ball

Examples:
  breakout play
  breakout play --difficulty easy
  breakout play --config ./my-breakout.yaml --log breakout.log`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagLogFile, "log", "", "Write logs to this file (the terminal is used by the game)")
}

func runPlay(_ *cobra.Command, _ []string) {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	rt := runtimeConfig(width, height)
	if rt.Seed == 0 {
		rt.Seed = time.Now().UnixNano()
	}

	logger, closeLog, err := openLog(flagLogFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	game := breakout.New(cfg, rt)
	err = tui.Run(game, rt, logger)
	closeLog()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// openLog creates a file logger for path. An empty path returns a nil
// logger, which the game treats as discard.
func openLog(path string) (*log.Logger, func(), error) {
	if path == "" {
		return nil, func() {}, nil
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("opening log file: %w", err)
	}

	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "breakout",
		Level:           log.DebugLevel,
	})
	//nolint:errcheck // Best-effort close on exit
	return logger, func() { f.Close() }, nil
}
