package tui

import (
	"fmt"

	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/core"
	"github.com/vovakirdan/tui-breakout/internal/games/breakout"
)

// Minimum terminal size for a playable view.
const (
	MinScreenW = 30
	MinScreenH = 15
)

// Glyphs used to draw the field.
const (
	brickRune  = '█'
	paddleRune = '▀'
	ballRune   = '●'
)

// Viewport maps field units onto the cells inside the border.
// The HUD takes row 0 and the border starts at row 1.
type Viewport struct {
	X, Y       int // Top-left inner cell
	Cols, Rows int // Inner size in cells

	fieldW, fieldH float64
}

// NewViewport computes the layout for a screen of w×h cells.
func NewViewport(w, h int, field config.FieldConfig) Viewport {
	return Viewport{
		X:      1,
		Y:      2,
		Cols:   max(w-2, 1),
		Rows:   max(h-3, 1),
		fieldW: field.Width,
		fieldH: field.Height,
	}
}

// CellX returns the screen column of field x, clamped to the inner area.
func (v Viewport) CellX(px float64) int {
	return v.X + core.Clamp(int(px*float64(v.Cols)/v.fieldW), 0, v.Cols-1)
}

// CellY returns the screen row of field y, clamped to the inner area.
func (v Viewport) CellY(py float64) int {
	return v.Y + core.Clamp(int(py*float64(v.Rows)/v.fieldH), 0, v.Rows-1)
}

// Cells returns the cell span [x0, x1) × [y0, y1) covered by r.
// Every visible rectangle covers at least one cell.
func (v Viewport) Cells(r core.Rect) (x0, y0, x1, y1 int) {
	x0, y0 = v.CellX(r.X), v.CellY(r.Y)
	x1, y1 = v.CellX(r.Right()), v.CellY(r.Bottom())
	return x0, y0, max(x1, x0+1), max(y1, y0+1)
}

// DirectionAt maps a screen column to the field half it falls in.
// The centre column of an odd-width field belongs to neither half.
func (v Viewport) DirectionAt(x int) core.Direction {
	// Compare in half-cells: column centre 2x+1 against field centre 2X+Cols
	col, mid := 2*x+1, 2*v.X+v.Cols
	switch {
	case col < mid:
		return core.DirLeft
	case col > mid:
		return core.DirRight
	default:
		return core.DirNone
	}
}

// Draw renders a frame onto the screen buffer.
func Draw(s *core.Screen, f breakout.Frame, field config.FieldConfig, paused bool) {
	s.Clear()

	w, h := s.Width(), s.Height()
	if w < MinScreenW || h < MinScreenH {
		s.DrawTextCentered(h/2, "Terminal too small", core.ColorHUD)
		s.DrawTextCentered(h/2+1, fmt.Sprintf("need %dx%d", MinScreenW, MinScreenH), core.ColorHUD)
		return
	}

	v := NewViewport(w, h, field)

	drawHUD(s, f)
	s.DrawBox(0, 1, w, h-1, core.ColorBorder)

	for _, b := range f.Bricks {
		if !b.Alive {
			continue
		}
		x0, y0, x1, y1 := v.Cells(b.Rect)
		s.FillRect(x0, y0, x1-x0, y1-y0, brickRune, b.Color)
	}

	// Paddle body with red end caps
	x0, y0, x1, _ := v.Cells(f.Paddle)
	s.DrawHLine(x0, y0, x1-x0, paddleRune, core.ColorPaddle)
	s.Set(x0, y0, paddleRune, core.ColorPaddleCap)
	s.Set(x1-1, y0, paddleRune, core.ColorPaddleCap)

	s.Set(v.CellX(f.Ball.X), v.CellY(f.Ball.Y), ballRune, core.ColorBall)

	if paused {
		s.DrawTextCentered(v.Y+v.Rows/2, " PAUSED ", core.ColorHUD)
	}
}

func drawHUD(s *core.Screen, f breakout.Frame) {
	level := fmt.Sprintf("Level %d", f.Level)
	score := fmt.Sprintf("Score %d", f.Score)
	lives := fmt.Sprintf("Lives %d", f.Lives)

	s.DrawText(1, 0, level, core.ColorHUD)
	s.DrawTextCentered(0, score, core.ColorHUD)
	s.DrawText(s.Width()-len(lives)-1, 0, lives, core.ColorHUD)
}
