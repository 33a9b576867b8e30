// Package core provides the geometric value types of the physics engine and
// the small platform types shared with the terminal harness. It has no
// external dependencies (especially no Bubble Tea) to keep the simulation
// pure and testable.
package core

// SubPixel is one pixel at the reference resolution of 64 pixels per tile.
// Derived probe points are offset by it to stay clear of exact edges.
const SubPixel = 1.0 / 64

// groundCheckHeight is the thickness of the strip returned by GroundCheckBox.
const groundCheckHeight = 0.1 / 64

// Rect is an axis-aligned bounding box in tile-space units.
// The origin is the top-left corner and y grows downward.
type Rect struct {
	X, Y float64 // Top-left corner position
	W, H float64 // Width and height, never negative
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h float64) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

func (r Rect) Left() float64 {
	return r.X
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() float64 {
	return r.X + r.W
}

func (r Rect) Top() float64 {
	return r.Y
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() float64 {
	return r.Y + r.H
}

// Pos returns the top-left corner.
func (r Rect) Pos() Vec2 {
	return Vec2{r.X, r.Y}
}

// SetPos moves the rectangle so its top-left corner is at p.
func (r *Rect) SetPos(p Vec2) {
	r.X = p.X
	r.Y = p.Y
}

// AddPos translates the rectangle by d.
func (r *Rect) AddPos(d Vec2) {
	r.X += d.X
	r.Y += d.Y
}

// Center returns the center point of the rectangle.
func (r Rect) Center() Vec2 {
	return Vec2{r.X + r.W/2, r.Y + r.H/2}
}

// Intersects returns true if this rectangle overlaps with another.
// Edges that merely touch do not intersect.
func (r Rect) Intersects(other Rect) bool {
	return r.Left() < other.Right() && r.Right() > other.Left() &&
		r.Top() < other.Bottom() && r.Bottom() > other.Top()
}

// Contains returns true if point p is inside this rectangle.
// The right and bottom edges are exclusive.
func (r Rect) Contains(p Vec2) bool {
	return p.X >= r.X && p.X < r.Right() && p.Y >= r.Y && p.Y < r.Bottom()
}

// Overlap returns the penetration depth on each axis. Both values are
// positive exactly when the rectangles intersect.
func (r Rect) Overlap(other Rect) (x, y float64) {
	x = min(r.Right(), other.Right()) - max(r.Left(), other.Left())
	y = min(r.Bottom(), other.Bottom()) - max(r.Top(), other.Top())
	return x, y
}

// Pushout separates r from other along the axis of shallower penetration and
// returns the side r was pushed toward. An equal overlap resolves along X.
// r ends flush against other; other is never modified.
//
// The caller must ensure the rectangles intersect. For touching rectangles
// the translation is zero.
func (r *Rect) Pushout(other Rect) Direction {
	overlapX, overlapY := r.Overlap(other)
	c, oc := r.Center(), other.Center()

	if overlapX <= overlapY {
		if c.X < oc.X {
			r.X = other.Left() - r.W
			return DirLeft
		}
		r.X = other.Right()
		return DirRight
	}

	if c.Y < oc.Y {
		r.Y = other.Top() - r.H
		return DirUp
	}
	r.Y = other.Bottom()
	return DirDown
}

// SlopePoint returns the bottom-center point lifted by one sub-pixel.
func (r Rect) SlopePoint() Vec2 {
	return Vec2{r.X + r.W/2, r.Bottom() - SubPixel}
}

// SetSlopePoint moves the rectangle so its slope point lands on p.
func (r *Rect) SetSlopePoint(p Vec2) {
	r.X = p.X - r.W/2
	r.Y = p.Y - r.H + SubPixel
}

// GroundCheckBox returns a thin strip directly below the bottom edge.
func (r Rect) GroundCheckBox() Rect {
	return Rect{X: r.Left(), Y: r.Bottom(), W: r.W, H: groundCheckHeight}
}

// TopCollisionPoint returns the top-center point.
func (r Rect) TopCollisionPoint() Vec2 {
	return Vec2{r.X + r.W/2, r.Y}
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
