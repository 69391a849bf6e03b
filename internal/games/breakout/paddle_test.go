package breakout

import (
	"testing"

	"github.com/vovakirdan/tui-breakout/internal/core"
)

func TestPaddleStartPosition(t *testing.T) {
	p := NewPaddle(testConfig())

	if p.X != 200 || p.Y != 600 {
		t.Errorf("paddle at (%v, %v), expected (200, 600)", p.X, p.Y)
	}
	if p.CenterX() != 240 {
		t.Errorf("CenterX() = %v, expected 240", p.CenterX())
	}
}

func TestPaddleUpdate(t *testing.T) {
	tests := []struct {
		name     string
		x        float64
		dir      core.Direction
		expected float64
	}{
		{"left", 200, core.DirLeft, 195},
		{"right", 200, core.DirRight, 205},
		{"none", 200, core.DirNone, 200},
		{"left at edge", 0, core.DirLeft, 0},
		{"right at edge", 400, core.DirRight, 400},
		{"left clamps", 2, core.DirLeft, 0},
		{"right clamps", 398, core.DirRight, 400},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := NewPaddle(testConfig())
			p.X = tc.x

			p.Update(tc.dir)

			if p.X != tc.expected {
				t.Errorf("X = %v, expected %v", p.X, tc.expected)
			}
			if p.Y != 600 {
				t.Errorf("Y changed to %v", p.Y)
			}
		})
	}
}

func TestPaddleStaysInField(t *testing.T) {
	p := NewPaddle(testConfig())
	r := newRNG(7)
	dirs := []core.Direction{core.DirNone, core.DirLeft, core.DirRight}

	// Long runs in one direction so both edges are reached
	for i := 0; i < 10000; i += 50 {
		dir := dirs[r.intn(len(dirs))]
		for range 50 {
			p.Update(dir)
			if p.X < 0 || p.X > 400 {
				t.Fatalf("step %d: paddle X = %v out of [0, 400]", i, p.X)
			}
		}
	}
}

func TestPaddleReset(t *testing.T) {
	p := NewPaddle(testConfig())
	p.X = 17
	p.Reset()

	if p.X != 200 {
		t.Errorf("Reset() X = %v, expected 200", p.X)
	}
}
