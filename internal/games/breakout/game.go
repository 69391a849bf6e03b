// Package breakout implements the Breakout simulation core: ball motion,
// wall/paddle/brick collisions, scoring, and life and level transitions.
// It reads an input snapshot per tick and produces an immutable Frame; it
// never draws or touches terminal input directly.
package breakout

import (
	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/core"
)

// Game owns every piece of session state and sequences the per-tick update.
type Game struct {
	cfg *config.BreakoutConfig

	paddle *Paddle
	ball   *Ball
	bricks *BrickField

	lives int
	score int
	level int
	tick  uint64
}

// New creates a game from a validated config. rt.Seed drives brick colors.
func New(cfg *config.BreakoutConfig, rt core.RuntimeConfig) *Game {
	g := &Game{
		cfg:    cfg,
		paddle: NewPaddle(cfg),
		ball:   NewBall(cfg),
		bricks: NewBrickField(cfg, newRNG(rt.Seed)),
	}
	g.resetCounters()
	return g
}

// ID returns the identifier used in logs and session names.
func (g *Game) ID() string {
	return "breakout"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Breakout"
}

// Config returns the shared session config.
func (g *Game) Config() *config.BreakoutConfig {
	return g.cfg
}

func (g *Game) resetCounters() {
	g.lives = g.cfg.Gameplay.Lives
	g.score = 0
	g.level = 1
}

// Reset performs a full game reset: counters, bricks, ball and paddle.
func (g *Game) Reset() {
	g.resetCounters()
	g.bricks.Reset()
	g.paddle.Reset()
	g.ball.Reset()
}

// resetServe puts the ball and paddle back at their start positions.
func (g *Game) resetServe() {
	g.paddle.Reset()
	g.ball.Reset()
}

// Tick advances the simulation by one frame.
//
// Order: paddle, ball, life loss, bricks, level clear. Bricks are tested on
// every tick that does not end in a full reset, including right after a
// life is lost (against the freshly reset ball).
func (g *Game) Tick(in core.Input) Frame {
	g.tick++
	var events Events

	dir := in.Direction()
	g.paddle.Update(dir)

	if g.ball.Update(g.paddle, dir) == BallFellOff {
		if g.lives == 0 {
			g.Reset()
			return g.frame(events | EventGameOver)
		}
		g.lives--
		g.resetServe()
		events |= EventLifeLost
	}

	if _, hit := g.bricks.Update(g.ball); hit {
		g.score += g.bricks.Points()
		events |= EventBrickHit
	}

	if g.bricks.Cleared() {
		g.level++
		g.resetServe()
		g.bricks.Reset()
		events |= EventLevelCleared
	}

	return g.frame(events)
}

// Frame returns the current render snapshot without advancing.
func (g *Game) Frame() Frame {
	return g.frame(0)
}

// Lives returns the remaining lives.
func (g *Game) Lives() int {
	return g.lives
}

// Score returns the current score.
func (g *Game) Score() int {
	return g.score
}

// Level returns the current level, starting at 1.
func (g *Game) Level() int {
	return g.level
}

// Ball exposes the ball for hosts and tests.
func (g *Game) Ball() *Ball {
	return g.ball
}

// Paddle exposes the paddle for hosts and tests.
func (g *Game) Paddle() *Paddle {
	return g.paddle
}

// Bricks exposes the brick field for hosts and tests.
func (g *Game) Bricks() *BrickField {
	return g.bricks
}
