package breakout

import (
	"math"

	"github.com/vovakirdan/tui-breakout/internal/core"
)

// Autopilot is an InputSource that tracks the ball with the paddle.
// It is used by the headless runner and for demo play.
type Autopilot struct {
	game *Game
}

// NewAutopilot creates an autopilot bound to g.
func NewAutopilot(g *Game) *Autopilot {
	return &Autopilot{game: g}
}

// Input steers the paddle center toward the ball. It holds still inside a
// dead zone of half the paddle speed to avoid jitter around the target.
func (a *Autopilot) Input() core.Input {
	diff := a.game.ball.X - a.game.paddle.CenterX()
	if math.Abs(diff) <= a.game.cfg.Paddle.Speed/2 {
		return core.Input{}
	}
	if diff < 0 {
		return core.InputFor(core.DirLeft)
	}
	return core.InputFor(core.DirRight)
}

var _ core.InputSource = (*Autopilot)(nil)
