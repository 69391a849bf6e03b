package core

import "time"

// maxStepsPerAdvance caps catch-up work after a stall (spiral of death).
const maxStepsPerAdvance = 5

// FixedStep converts real elapsed time into a whole number of fixed
// simulation steps. Leftover time carries over to the next call.
type FixedStep struct {
	step        time.Duration
	accumulator time.Duration
}

// NewFixedStep creates an accumulator for the given tick rate.
// Non-positive rates fall back to 60 ticks per second.
func NewFixedStep(tickRate int) *FixedStep {
	if tickRate <= 0 {
		tickRate = 60
	}
	return &FixedStep{step: time.Second / time.Duration(tickRate)}
}

// Step returns the duration of one simulation tick.
func (f *FixedStep) Step() time.Duration {
	return f.step
}

// Advance adds elapsed time and returns how many ticks to simulate.
// At most maxStepsPerAdvance ticks are returned; excess time is dropped.
func (f *FixedStep) Advance(elapsed time.Duration) int {
	if elapsed < 0 {
		elapsed = 0
	}
	f.accumulator += elapsed

	steps := int(f.accumulator / f.step)
	f.accumulator -= time.Duration(steps) * f.step

	if steps > maxStepsPerAdvance {
		steps = maxStepsPerAdvance
		f.accumulator = 0
	}
	return steps
}

// Reset discards accumulated time.
func (f *FixedStep) Reset() {
	f.accumulator = 0
}
