// Package headless drives a Breakout game without a terminal, either as fast
// as possible or paced at the tick rate. It backs the sim command and
// long-running determinism checks.
package headless

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-breakout/internal/core"
	"github.com/vovakirdan/tui-breakout/internal/games/breakout"
)

// Options configures a Runner.
type Options struct {
	// TickRate paces realtime runs. Non-positive means 60.
	TickRate int

	// Realtime waits one tick interval between frames.
	Realtime bool

	// Sink receives every frame. May be nil.
	Sink func(breakout.Frame)

	// Logger receives game transitions. Nil discards.
	Logger *log.Logger
}

// Summary is the outcome of a run.
type Summary struct {
	Frames        uint64         `yaml:"frames"`
	BricksHit     int            `yaml:"bricks_hit"`
	LivesLost     int            `yaml:"lives_lost"`
	LevelsCleared int            `yaml:"levels_cleared"`
	GameOvers     int            `yaml:"game_overs"`
	State         breakout.State `yaml:"state"`
	Hash          string         `yaml:"hash"`
}

// Runner feeds one input snapshot per frame into a game.
type Runner struct {
	game  *breakout.Game
	input core.InputSource
	opts  Options
	log   *log.Logger

	summary Summary
}

// New creates a runner for game reading from input.
func New(game *breakout.Game, input core.InputSource, opts Options) *Runner {
	if opts.TickRate <= 0 {
		opts.TickRate = 60
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Runner{game: game, input: input, opts: opts, log: logger}
}

// Step advances the game by one frame.
func (r *Runner) Step() breakout.Frame {
	f := r.game.Tick(r.input.Input())
	r.record(f)
	if r.opts.Sink != nil {
		r.opts.Sink(f)
	}
	return f
}

// record folds a frame's events into the summary.
func (r *Runner) record(f breakout.Frame) {
	r.summary.Frames++

	if f.Events.Has(breakout.EventBrickHit) {
		r.summary.BricksHit++
	}
	if f.Events.Has(breakout.EventLifeLost) {
		r.summary.LivesLost++
		r.log.Debug("life lost", "tick", f.Tick, "lives", f.Lives)
	}
	if f.Events.Has(breakout.EventLevelCleared) {
		r.summary.LevelsCleared++
		r.log.Info("level cleared", "tick", f.Tick, "level", f.Level, "score", f.Score)
	}
	if f.Events.Has(breakout.EventGameOver) {
		r.summary.GameOvers++
		r.log.Info("game over", "tick", f.Tick)
	}
}

// Run steps the game n times, or until ctx is canceled when n <= 0.
// The summary is valid even when ctx ends the run early.
func (r *Runner) Run(ctx context.Context, n int) (Summary, error) {
	r.log.Debug("run started", "frames", n, "realtime", r.opts.Realtime, "rate", r.opts.TickRate)

	var tick <-chan time.Time
	if r.opts.Realtime {
		ticker := time.NewTicker(time.Second / time.Duration(r.opts.TickRate))
		defer ticker.Stop()
		tick = ticker.C
	}

	var err error
	for i := 0; n <= 0 || i < n; i++ {
		if tick != nil {
			select {
			case <-ctx.Done():
			case <-tick:
			}
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			err = fmt.Errorf("headless: run stopped after %d frames: %w", i, ctxErr)
			break
		}
		r.Step()
	}

	return r.Summary(), err
}

// Summary returns the totals so far with the current state.
func (r *Runner) Summary() Summary {
	s := r.summary
	s.State = r.game.State()
	s.Hash = fmt.Sprintf("%016x", s.State.Hash())
	return s
}
