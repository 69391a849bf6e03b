package breakout

import (
	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/core"
)

// Brick is a single destructible target. Its rectangle never changes
// after the field is built.
type Brick struct {
	Rect  core.Rect
	Color core.Color
	Alive bool
}

// BrickField is the fixed grid of bricks, stored in row-major order.
type BrickField struct {
	bricks []Brick
	cfg    *config.BreakoutConfig
	rng    *rng
}

// NewBrickField lays out rows×columns live bricks with random colors.
func NewBrickField(cfg *config.BreakoutConfig, r *rng) *BrickField {
	bc := cfg.Bricks
	stepX := bc.Width + bc.Padding
	stepY := bc.Height + bc.Padding

	f := &BrickField{
		bricks: make([]Brick, 0, bc.Rows*bc.Columns),
		cfg:    cfg,
		rng:    r,
	}
	for row := range bc.Rows {
		for col := range bc.Columns {
			f.bricks = append(f.bricks, Brick{
				Rect: core.NewRect(
					bc.OffsetLeft+float64(col)*stepX,
					bc.OffsetTop+float64(row)*stepY,
					bc.Width,
					bc.Height,
				),
				Color: f.randomColor(),
				Alive: true,
			})
		}
	}
	return f
}

// randomColor picks a palette entry. Color is cosmetic only.
func (f *BrickField) randomColor() core.Color {
	palette := f.cfg.Bricks.Palette
	return core.Color(palette[f.rng.intn(len(palette))])
}

// Update tests the ball against live bricks in row-major order. The first
// brick hit is destroyed, the ball is reflected and testing stops, so a
// tick never resolves more than one brick. Returns the brick index.
func (f *BrickField) Update(b *Ball) (index int, hit bool) {
	circle := b.Circle()
	for i := range f.bricks {
		brick := &f.bricks[i]
		if !brick.Alive {
			continue
		}

		dx, dy, ok := core.CircleRectOverlap(circle, brick.Rect)
		if !ok {
			continue
		}

		brick.Alive = false
		b.Reflect(core.ReflectAxis(dx, dy))
		return i, true
	}
	return -1, false
}

// Reset revives every brick and re-rolls its color.
func (f *BrickField) Reset() {
	for i := range f.bricks {
		f.bricks[i].Alive = true
		f.bricks[i].Color = f.randomColor()
	}
}

// Points returns the score awarded per destroyed brick.
func (f *BrickField) Points() int {
	return f.cfg.Bricks.Points
}

// Alive returns the number of bricks still standing.
func (f *BrickField) Alive() int {
	n := 0
	for _, b := range f.bricks {
		if b.Alive {
			n++
		}
	}
	return n
}

// Cleared reports whether no brick is alive.
func (f *BrickField) Cleared() bool {
	for _, b := range f.bricks {
		if b.Alive {
			return false
		}
	}
	return true
}

// Len returns the total number of bricks.
func (f *BrickField) Len() int {
	return len(f.bricks)
}

// Bricks returns a copy of every brick in row-major order.
func (f *BrickField) Bricks() []Brick {
	return append([]Brick(nil), f.bricks...)
}

// Brick returns a copy of the brick at index i.
func (f *BrickField) Brick(i int) Brick {
	return f.bricks[i]
}
