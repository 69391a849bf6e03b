package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-breakout/internal/games/breakout"
	"github.com/vovakirdan/tui-breakout/internal/platform/headless"
)

var (
	flagFrames   int
	flagRealtime bool
	flagVerbose  bool
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run the simulation headless",
	Long: `Run Breakout without a terminal, with the autopilot steering the paddle.
Prints a YAML summary of the run, including a hash of the final state.
Runs with the same seed, config and frame count always produce the same hash.

Examples:
  breakout sim --seed 42
  breakout sim --seed 42 --frames 100000 --difficulty hard
  breakout sim --frames 0 --realtime -v   # Until Ctrl+C at the tick rate`,
	Args: cobra.NoArgs,
	Run:  runSim,
}

func init() {
	simCmd.Flags().IntVar(&flagFrames, "frames", 3600, "Frames to simulate (0 = until interrupted)")
	simCmd.Flags().BoolVar(&flagRealtime, "realtime", false, "Pace frames at the tick rate")
	simCmd.Flags().BoolVarP(&flagVerbose, "verbose", "v", false, "Log every life lost")
}

func runSim(_ *cobra.Command, _ []string) {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "breakout-sim",
	})
	if flagVerbose {
		logger.SetLevel(log.DebugLevel)
	}

	cfg, err := loadConfig()
	if err != nil {
		logger.Fatal("invalid config", "error", err)
	}
	if flagFrames <= 0 && !flagRealtime {
		logger.Fatal("--frames 0 needs --realtime")
	}

	rt := runtimeConfig(0, 0)
	if rt.Seed == 0 {
		rt.Seed = 1
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	game := breakout.New(cfg, rt)
	runner := headless.New(game, breakout.NewAutopilot(game), headless.Options{
		TickRate: rt.TickRate,
		Realtime: flagRealtime,
		Logger:   logger,
	})

	summary, err := runner.Run(ctx, flagFrames)
	if err != nil && !errors.Is(err, context.Canceled) {
		logger.Error("simulation failed", "error", err)
	}

	out := struct {
		Seed    int64            `yaml:"seed"`
		Summary headless.Summary `yaml:"summary"`
	}{rt.Seed, summary}

	enc := yaml.NewEncoder(os.Stdout)
	enc.SetIndent(2)
	if err := enc.Encode(out); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		stop()
		os.Exit(1)
	}
}
