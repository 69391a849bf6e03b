package breakout

import (
	"testing"

	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/core"
)

// testConfig returns the default config by pointer, as components expect.
func testConfig() *config.BreakoutConfig {
	cfg := config.DefaultBreakoutConfig()
	return &cfg
}

// newTestGame creates a game with the default config and a fixed seed.
func newTestGame(t *testing.T) *Game {
	t.Helper()
	rt := core.DefaultConfig()
	rt.Seed = 42
	return New(testConfig(), rt)
}

var noInput = core.Input{}
