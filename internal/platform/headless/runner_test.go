package headless

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/core"
	"github.com/vovakirdan/tui-breakout/internal/games/breakout"
)

func newGame(seed int64) *breakout.Game {
	cfg := config.DefaultBreakoutConfig()
	rt := core.DefaultConfig()
	rt.Seed = seed
	return breakout.New(&cfg, rt)
}

func TestRunFrames(t *testing.T) {
	g := newGame(1)
	var frames []breakout.Frame

	r := New(g, breakout.NewAutopilot(g), Options{
		Sink: func(f breakout.Frame) { frames = append(frames, f) },
	})
	sum, err := r.Run(context.Background(), 500)

	require.NoError(t, err)
	require.Equal(t, uint64(500), sum.Frames)
	require.Len(t, frames, 500)
	require.Equal(t, uint64(500), sum.State.Tick)
	require.Equal(t, frames[499].Score, sum.State.Score)
	require.Len(t, sum.Hash, 16)
}

func TestRunDeterministic(t *testing.T) {
	run := func() Summary {
		g := newGame(99)
		sum, err := New(g, breakout.NewAutopilot(g), Options{}).Run(context.Background(), 5000)
		require.NoError(t, err)
		return sum
	}

	a, b := run(), run()
	require.Equal(t, a.Hash, b.Hash)
	require.Equal(t, a, b)
}

func TestRunCountsEvents(t *testing.T) {
	g := newGame(3)
	// No input: the paddle stays put and the ball eventually falls
	idle := core.InputFunc(func() core.Input { return core.Input{} })

	sum, err := New(g, idle, Options{}).Run(context.Background(), 20000)

	require.NoError(t, err)
	require.Positive(t, sum.BricksHit)
	require.GreaterOrEqual(t, sum.BricksHit*10, sum.State.Score)
}

func TestRunStopsOnCancel(t *testing.T) {
	g := newGame(1)
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	sum, err := New(g, breakout.NewAutopilot(g), Options{Realtime: true, TickRate: 1000}).Run(ctx, 0)

	require.Error(t, err)
	require.True(t, errors.Is(err, context.DeadlineExceeded))
	require.Positive(t, sum.Frames)
}

func TestRunCanceledBeforeStart(t *testing.T) {
	g := newGame(1)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	sum, err := New(g, breakout.NewAutopilot(g), Options{}).Run(ctx, 10)

	require.ErrorIs(t, err, context.Canceled)
	require.Zero(t, sum.Frames)
}
