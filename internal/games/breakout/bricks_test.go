package breakout

import (
	"slices"
	"testing"

	"github.com/vovakirdan/tui-breakout/internal/core"
)

func newTestField() *BrickField {
	return NewBrickField(testConfig(), newRNG(1))
}

func TestBrickFieldLayout(t *testing.T) {
	f := newTestField()

	if f.Len() != 60 || f.Alive() != 60 {
		t.Fatalf("Len()=%d Alive()=%d, expected 60 live bricks", f.Len(), f.Alive())
	}

	tests := []struct {
		index    int
		expected core.Rect
	}{
		{0, core.NewRect(10, 30, 75, 20)},
		{1, core.NewRect(87, 30, 75, 20)},
		{6, core.NewRect(10, 52, 75, 20)},
		{54, core.NewRect(10, 228, 75, 20)},
		{59, core.NewRect(395, 228, 75, 20)},
	}
	for _, tc := range tests {
		if got := f.Brick(tc.index).Rect; got != tc.expected {
			t.Errorf("brick %d rect = %+v, expected %+v", tc.index, got, tc.expected)
		}
	}

	palette := testConfig().Bricks.Palette
	for i := range f.Len() {
		if !slices.Contains(palette, string(f.Brick(i).Color)) {
			t.Errorf("brick %d color %q not in palette", i, f.Brick(i).Color)
		}
	}
}

func TestBrickFieldSingleHit(t *testing.T) {
	f := newTestField()
	b := NewBall(testConfig())
	b.X, b.Y, b.DX, b.DY = 47.5, 255, 3, -3 // just under brick 54

	index, hit := f.Update(b)

	if !hit || index != 54 {
		t.Fatalf("Update() = (%d, %v), expected (54, true)", index, hit)
	}
	if f.Brick(54).Alive {
		t.Error("brick 54 should be destroyed")
	}
	if f.Alive() != 59 {
		t.Errorf("Alive() = %d, expected 59", f.Alive())
	}
	if b.DY != 3 || b.DX != 3 {
		t.Errorf("velocity = (%v, %v), expected (3, 3)", b.DX, b.DY)
	}
}

func TestBrickFieldFirstHitWins(t *testing.T) {
	f := newTestField()
	b := NewBall(testConfig())
	b.X, b.Y, b.DX, b.DY = 86, 255, 3, -3 // touches bricks 54 and 55

	index, hit := f.Update(b)

	if !hit || index != 54 {
		t.Fatalf("Update() = (%d, %v), expected (54, true)", index, hit)
	}
	if !f.Brick(55).Alive {
		t.Error("brick 55 should survive this tick")
	}
	if b.DY != 3 {
		t.Errorf("DY = %v, expected a single reflection to 3", b.DY)
	}

	index, hit = f.Update(b)
	if !hit || index != 55 {
		t.Errorf("second Update() = (%d, %v), expected (55, true)", index, hit)
	}
}

func TestBrickFieldReflectAxis(t *testing.T) {
	tests := []struct {
		name       string
		x, y       float64
		expectedDX float64
		expectedDY float64
	}{
		{"bottom face flips DY", 47.5, 255, 3, 3},
		{"left face flips DX", 2, 238, -3, -3},
		{"buried center flips DY", 47.5, 238, 3, 3},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			f := newTestField()
			b := NewBall(testConfig())
			b.X, b.Y, b.DX, b.DY = tc.x, tc.y, 3, -3

			if _, hit := f.Update(b); !hit {
				t.Fatal("expected a brick hit")
			}
			if b.DX != tc.expectedDX || b.DY != tc.expectedDY {
				t.Errorf("velocity = (%v, %v), expected (%v, %v)", b.DX, b.DY, tc.expectedDX, tc.expectedDY)
			}
		})
	}
}

func TestBrickFieldMiss(t *testing.T) {
	f := newTestField()
	b := NewBall(testConfig())

	if index, hit := f.Update(b); hit || index != -1 {
		t.Errorf("Update() = (%d, %v), expected miss", index, hit)
	}
	if f.Alive() != 60 {
		t.Errorf("Alive() = %d, expected 60", f.Alive())
	}
}

func TestBrickFieldResetAndCleared(t *testing.T) {
	f := newTestField()
	for i := range f.bricks {
		f.bricks[i].Alive = false
	}
	if !f.Cleared() {
		t.Fatal("Cleared() = false with no live bricks")
	}

	f.Reset()

	if f.Cleared() || f.Alive() != 60 {
		t.Errorf("after Reset() Alive() = %d, expected 60", f.Alive())
	}
	if f.Brick(0).Rect != core.NewRect(10, 30, 75, 20) {
		t.Error("Reset() must not move bricks")
	}
}

func TestRNGDeterministic(t *testing.T) {
	a, b := newRNG(99), newRNG(99)
	for i := range 100 {
		if x, y := a.next(), b.next(); x != y {
			t.Fatalf("step %d: %d != %d", i, x, y)
		}
	}

	r := newRNG(0)
	for range 1000 {
		if v := r.intn(8); v < 0 || v >= 8 {
			t.Fatalf("intn(8) = %d", v)
		}
	}
	if r.intn(0) != 0 {
		t.Error("intn(0) should return 0")
	}
}

func TestBrickFieldBricksIsCopy(t *testing.T) {
	f := newTestField()

	view := f.Bricks()
	view[0].Alive = false

	if !f.Brick(0).Alive {
		t.Error("Bricks() must not expose internal state")
	}
	if len(view) != f.Len() {
		t.Errorf("len(Bricks()) = %d, expected %d", len(view), f.Len())
	}
}
