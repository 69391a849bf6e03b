// Package core provides fundamental types and utilities shared by the game
// and its hosts. It has no external dependencies (especially no Bubble Tea)
// to keep simulation logic pure and testable.
package core

import "math"

// Vec is a 2D point or offset in field space.
type Vec struct {
	X, Y float64
}

// Rect represents an axis-aligned box in field space.
type Rect struct {
	X, Y float64 // Top-left corner position
	W, H float64 // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h float64) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() float64 {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() float64 {
	return r.Y + r.H
}

// Intersects returns true if this rectangle overlaps with another.
// Touching edges do not count as overlap.
func (r Rect) Intersects(other Rect) bool {
	if r.X >= other.Right() || other.X >= r.Right() {
		return false
	}
	if r.Y >= other.Bottom() || other.Y >= r.Bottom() {
		return false
	}
	return true
}

// Circle is a ball-shaped body.
type Circle struct {
	X, Y float64 // Center
	R    float64 // Radius
}

// Bounds returns the bounding square of the circle.
func (c Circle) Bounds() Rect {
	return Rect{X: c.X - c.R, Y: c.Y - c.R, W: 2 * c.R, H: 2 * c.R}
}

// ClosestPoint returns the point of r nearest to the circle center.
func ClosestPoint(c Circle, r Rect) Vec {
	return Vec{
		X: ClampF(c.X, r.X, r.Right()),
		Y: ClampF(c.Y, r.Y, r.Bottom()),
	}
}

// CircleRectOverlap tests a circle against a rectangle.
// dx and dy are the offsets from the closest point of r to the circle
// center; hit is true when that distance does not exceed the radius.
func CircleRectOverlap(c Circle, r Rect) (dx, dy float64, hit bool) {
	p := ClosestPoint(c, r)
	dx = c.X - p.X
	dy = c.Y - p.Y
	return dx, dy, dx*dx+dy*dy <= c.R*c.R
}

// Axis names a velocity component.
type Axis int

const (
	AxisX Axis = iota
	AxisY
)

// String returns the axis name.
func (a Axis) String() string {
	if a == AxisX {
		return "x"
	}
	return "y"
}

// ReflectAxis picks the component to reverse after a contact whose
// penetration offsets are (dx, dy). Ties, including a center buried
// inside the rectangle, go to the vertical axis.
func ReflectAxis(dx, dy float64) Axis {
	if math.Abs(dx) > math.Abs(dy) {
		return AxisX
	}
	return AxisY
}

// ClampF restricts a float64 value to be within [min, max].
func ClampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}
