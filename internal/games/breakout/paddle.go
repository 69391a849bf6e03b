package breakout

import (
	"math"

	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/core"
)

// Paddle is the player's paddle. It moves horizontally only and always
// stays within [0, FieldWidth-Width].
type Paddle struct {
	X, Y float64 // Top-left corner

	cfg *config.BreakoutConfig
}

// NewPaddle creates a paddle centered at the bottom of the field.
func NewPaddle(cfg *config.BreakoutConfig) *Paddle {
	p := &Paddle{cfg: cfg}
	p.Reset()
	return p
}

// Reset restores the centered start position.
func (p *Paddle) Reset() {
	p.X = p.cfg.PaddleStartX()
	p.Y = p.cfg.PaddleY()
}

// Rect returns the paddle's bounds.
func (p *Paddle) Rect() core.Rect {
	return core.NewRect(p.X, p.Y, p.cfg.Paddle.Width, p.cfg.Paddle.Height)
}

// CenterX returns the paddle's horizontal center.
func (p *Paddle) CenterX() float64 {
	return p.X + p.cfg.Paddle.Width/2
}

// Update moves the paddle one tick. Left takes priority over Right;
// movement stops at the field edges.
func (p *Paddle) Update(dir core.Direction) {
	maxX := p.cfg.Field.Width - p.cfg.Paddle.Width
	speed := p.cfg.Paddle.Speed

	switch {
	case dir == core.DirLeft && p.X > 0:
		p.X = math.Max(0, p.X-speed)
	case dir == core.DirRight && p.X < maxX:
		p.X = math.Min(maxX, p.X+speed)
	}
}
