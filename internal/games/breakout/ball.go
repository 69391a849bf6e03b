package breakout

import (
	"math"

	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/core"
)

// BallStatus is the outcome of one ball update.
type BallStatus int

const (
	BallAlive   BallStatus = iota // Ball is still in the field
	BallFellOff                   // Ball passed below the field: a life is lost
)

// String returns a human-readable name for the status.
func (s BallStatus) String() string {
	if s == BallFellOff {
		return "FellOff"
	}
	return "Alive"
}

// Ball is the single ball of a session. Its speed never changes; collision
// responses only flip the sign of DX or DY.
type Ball struct {
	X, Y   float64 // Center
	DX, DY float64 // Velocity per tick

	cfg *config.BreakoutConfig
}

// NewBall creates a ball at the configured start position.
func NewBall(cfg *config.BreakoutConfig) *Ball {
	b := &Ball{cfg: cfg}
	b.Reset()
	return b
}

// Reset restores the initial position and velocity exactly.
func (b *Ball) Reset() {
	b.X, b.Y = b.cfg.BallStart()
	b.DX = b.cfg.Ball.SpeedX
	b.DY = b.cfg.Ball.SpeedY
}

// Circle returns the ball's body.
func (b *Ball) Circle() core.Circle {
	return core.Circle{X: b.X, Y: b.Y, R: b.cfg.Ball.Radius}
}

// Reflect reverses one velocity component.
func (b *Ball) Reflect(axis core.Axis) {
	if axis == core.AxisX {
		b.DX = -b.DX
	} else {
		b.DY = -b.DY
	}
}

// Update moves the ball one tick and resolves wall, ceiling and paddle
// contacts. dir is the paddle input of this tick, used to steer returns.
//
// The side walls are checked independently. The ceiling, the paddle and the
// bottom edge form one chain where only the first matching test applies.
func (b *Ball) Update(p *Paddle, dir core.Direction) BallStatus {
	r := b.cfg.Ball.Radius
	fieldW := b.cfg.Field.Width

	b.X += b.DX
	b.Y += b.DY

	if b.X >= fieldW-r || b.X <= r {
		b.DX = -b.DX
	}

	switch {
	case b.Y < r:
		b.DY = -b.DY

	case b.Circle().Bounds().Intersects(p.Rect()):
		switch {
		case dir == core.DirLeft && b.DX > 0:
			b.DX = -math.Abs(b.DX)
		case dir == core.DirRight && b.DX < 0:
			b.DX = math.Abs(b.DX)
		}
		b.DY = -math.Abs(b.DY)

	case b.Y > b.cfg.Field.Height:
		return BallFellOff
	}

	return BallAlive
}
