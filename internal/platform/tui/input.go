package tui

import "github.com/vovakirdan/tui-breakout/internal/core"

// InputState collects keyboard and mouse events between simulation ticks
// and turns them into one core.Input per tick.
//
// Terminals report key presses (and auto-repeat) but never key releases, so
// a key press latches its direction for holdTicks ticks. Mouse presses hold
// their direction until the button is released.
type InputState struct {
	holdTicks int

	leftTicks  int
	rightTicks int
	mouse      core.Direction
	pressed    bool
}

// NewInputState creates an input record. holdTicks below 1 is treated as 1.
func NewInputState(holdTicks int) *InputState {
	return &InputState{holdTicks: max(holdTicks, 1)}
}

// Press latches a direction from the keyboard. The opposite latch is
// dropped, as the terminal only repeats the last key held.
func (s *InputState) Press(d core.Direction) {
	switch d {
	case core.DirLeft:
		s.leftTicks = s.holdTicks
		s.rightTicks = 0
	case core.DirRight:
		s.rightTicks = s.holdTicks
		s.leftTicks = 0
	}
}

// MouseDown presses the mouse on the half given by d. DirNone (the centre
// column) keeps whatever direction is already held.
func (s *InputState) MouseDown(d core.Direction) {
	s.pressed = true
	if d != core.DirNone {
		s.mouse = d
	}
}

// MouseMove re-evaluates the held half while the button is down.
func (s *InputState) MouseMove(d core.Direction) {
	if s.pressed && d != core.DirNone {
		s.mouse = d
	}
}

// MouseUp releases the mouse direction.
func (s *InputState) MouseUp() {
	s.pressed = false
	s.mouse = core.DirNone
}

// Input returns the snapshot for the next tick.
func (s *InputState) Input() core.Input {
	return core.Input{
		Left:  s.leftTicks > 0 || s.mouse == core.DirLeft,
		Right: s.rightTicks > 0 || s.mouse == core.DirRight,
	}
}

// Advance ages keyboard latches by one tick.
func (s *InputState) Advance() {
	if s.leftTicks > 0 {
		s.leftTicks--
	}
	if s.rightTicks > 0 {
		s.rightTicks--
	}
}

// Clear drops all held directions.
func (s *InputState) Clear() {
	s.leftTicks, s.rightTicks = 0, 0
	s.mouse = core.DirNone
	s.pressed = false
}

var _ core.InputSource = (*InputState)(nil)
