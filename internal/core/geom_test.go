package core

import "testing"

func TestRectIntersects(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Rect
		expected bool
	}{
		{
			name:     "overlapping rects",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(5, 5, 10, 10),
			expected: true,
		},
		{
			name:     "non-overlapping horizontal",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(15, 0, 10, 10),
			expected: false,
		},
		{
			name:     "non-overlapping vertical",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(0, 15, 10, 10),
			expected: false,
		},
		{
			name:     "adjacent horizontal (no overlap)",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(10, 0, 10, 10),
			expected: false,
		},
		{
			name:     "contained rect",
			a:        NewRect(0, 0, 20, 20),
			b:        NewRect(5, 5, 5, 5),
			expected: true,
		},
		{
			name:     "fractional overlap",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(9.5, 9.5, 10, 10),
			expected: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.a.Intersects(tc.b); got != tc.expected {
				t.Errorf("Intersects() = %v, expected %v", got, tc.expected)
			}
			if got := tc.b.Intersects(tc.a); got != tc.expected {
				t.Errorf("Intersects() (reversed) = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestRectEdges(t *testing.T) {
	r := NewRect(5, 10, 20, 15)

	if r.Right() != 25 {
		t.Errorf("Right() = %v, expected 25", r.Right())
	}
	if r.Bottom() != 25 {
		t.Errorf("Bottom() = %v, expected 25", r.Bottom())
	}
}

func TestCircleBounds(t *testing.T) {
	b := Circle{X: 50, Y: 40, R: 10}.Bounds()
	if b != NewRect(40, 30, 20, 20) {
		t.Errorf("Bounds() = %+v, expected {40 30 20 20}", b)
	}
}

func TestCircleRectOverlap(t *testing.T) {
	brick := NewRect(100, 100, 75, 20)

	tests := []struct {
		name   string
		c      Circle
		hit    bool
		dx, dy float64
	}{
		{"below, touching", Circle{X: 120, Y: 130, R: 10}, true, 0, 10},
		{"below, clear", Circle{X: 120, Y: 131, R: 10}, false, 0, 11},
		{"left side", Circle{X: 95, Y: 110, R: 10}, true, -5, 0},
		{"corner inside radius", Circle{X: 96, Y: 96, R: 10}, true, -4, -4},
		{"corner outside radius", Circle{X: 92, Y: 92, R: 10}, false, -8, -8},
		{"center buried", Circle{X: 130, Y: 110, R: 10}, true, 0, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			dx, dy, hit := CircleRectOverlap(tc.c, brick)
			if hit != tc.hit {
				t.Errorf("hit = %v, expected %v", hit, tc.hit)
			}
			if dx != tc.dx || dy != tc.dy {
				t.Errorf("offset = (%v, %v), expected (%v, %v)", dx, dy, tc.dx, tc.dy)
			}
		})
	}
}

func TestReflectAxis(t *testing.T) {
	tests := []struct {
		dx, dy float64
		want   Axis
	}{
		{5, 0, AxisX},
		{-5, 2, AxisX},
		{0, 5, AxisY},
		{3, -3, AxisY}, // exact corner goes vertical
		{0, 0, AxisY},
	}

	for _, tc := range tests {
		if got := ReflectAxis(tc.dx, tc.dy); got != tc.want {
			t.Errorf("ReflectAxis(%v, %v) = %v, expected %v", tc.dx, tc.dy, got, tc.want)
		}
	}
}

func TestClampF(t *testing.T) {
	tests := []struct {
		val, min, max, expected float64
	}{
		{5.5, 0.0, 10.0, 5.5},
		{-5.5, 0.0, 10.0, 0.0},
		{15.5, 0.0, 10.0, 10.0},
	}

	for _, tc := range tests {
		if got := ClampF(tc.val, tc.min, tc.max); got != tc.expected {
			t.Errorf("ClampF(%f, %f, %f) = %f, expected %f", tc.val, tc.min, tc.max, got, tc.expected)
		}
	}
}

func TestClamp(t *testing.T) {
	if Clamp(-1, 0, 10) != 0 || Clamp(11, 0, 10) != 10 || Clamp(4, 0, 10) != 4 {
		t.Error("Clamp() should restrict values to [min, max]")
	}
}
