package core

import (
	"fmt"
	"math"
)

// Vec2 is a 2D vector used for positions, velocities and forces.
// All operations return a new value except Round, which mutates in place.
type Vec2 struct {
	X, Y float64
}

// Unit direction vectors in screen convention (y grows downward).
var (
	Up    = Vec2{0, -1}
	Down  = Vec2{0, 1}
	Left  = Vec2{-1, 0}
	Right = Vec2{1, 0}
)

// V is shorthand for Vec2{x, y}.
func V(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

// Between returns the vector pointing from a to b (b - a).
func Between(a, b Vec2) Vec2 {
	return Vec2{X: b.X - a.X, Y: b.Y - a.Y}
}

func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{v.X + o.X, v.Y + o.Y}
}

// AddX returns v with x added to the X component.
func (v Vec2) AddX(x float64) Vec2 {
	return Vec2{v.X + x, v.Y}
}

// AddY returns v with y added to the Y component.
func (v Vec2) AddY(y float64) Vec2 {
	return Vec2{v.X, v.Y + y}
}

func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{v.X - o.X, v.Y - o.Y}
}

// SubScalar subtracts n from both components.
func (v Vec2) SubScalar(n float64) Vec2 {
	return Vec2{v.X - n, v.Y - n}
}

// Mul scales both components by n.
func (v Vec2) Mul(n float64) Vec2 {
	return Vec2{v.X * n, v.Y * n}
}

// MulVec multiplies component-wise.
func (v Vec2) MulVec(o Vec2) Vec2 {
	return Vec2{v.X * o.X, v.Y * o.Y}
}

// Div divides both components by n. Division by zero follows IEEE 754.
func (v Vec2) Div(n float64) Vec2 {
	return Vec2{v.X / n, v.Y / n}
}

// Negate rotates the vector by 180 degrees.
func (v Vec2) Negate() Vec2 {
	return Vec2{-v.X, -v.Y}
}

func (v Vec2) NegateX() Vec2 {
	return Vec2{-v.X, v.Y}
}

func (v Vec2) NegateY() Vec2 {
	return Vec2{v.X, -v.Y}
}

// Swap exchanges the components.
func (v Vec2) Swap() Vec2 {
	return Vec2{v.Y, v.X}
}

// Len returns the euclidean length.
func (v Vec2) Len() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y)
}

// Distance returns the euclidean distance to point p.
func (v Vec2) Distance(p Vec2) float64 {
	dx := v.X - p.X
	dy := v.Y - p.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// Dot returns the scalar product.
func (v Vec2) Dot(o Vec2) float64 {
	return v.X*o.X + v.Y*o.Y
}

// Unit returns the unit vector. The zero vector stays zero.
func (v Vec2) Unit() Vec2 {
	l := v.Len()
	if l > 0 {
		return Vec2{v.X / l, v.Y / l}
	}
	return v
}

// UnitLen returns the unit vector scaled to length l.
func (v Vec2) UnitLen(l float64) Vec2 {
	return v.Unit().Mul(l)
}

// Angle returns the angle between v and o in radians.
// The result is NaN when either vector has zero length.
func (v Vec2) Angle(o Vec2) float64 {
	return math.Acos(v.Dot(o) / (v.Len() * o.Len()))
}

// AngleX returns the angle to the positive X axis in [0, 2π).
func (v Vec2) AngleX() float64 {
	phi := math.Atan2(v.Y, v.X)
	if phi < 0 {
		phi += 2 * math.Pi
	}
	return phi
}

func (v Vec2) IsZero() bool {
	return v.X == 0 && v.Y == 0
}

// IsInf reports whether either component is infinite.
func (v Vec2) IsInf() bool {
	return math.IsInf(v.X, 0) || math.IsInf(v.Y, 0)
}

// IsNaN reports whether either component is NaN.
func (v Vec2) IsNaN() bool {
	return math.IsNaN(v.X) || math.IsNaN(v.Y)
}

// IsFinite reports whether v is usable as a direction: not zero, not
// infinite and not NaN. The zero vector is NOT finite under this definition.
func (v Vec2) IsFinite() bool {
	return !v.IsZero() && !v.IsInf() && !v.IsNaN()
}

// Round truncates both components toward zero to the given number of
// decimal digits. 1.239 becomes 1.23 and -1.239 becomes -1.23.
// Components too large to carry a fraction at that scale, infinities and
// NaN are left unchanged.
func (v *Vec2) Round(digits int) {
	d := math.Pow10(digits)
	v.X = truncate(v.X, d)
	v.Y = truncate(v.Y, d)
}

// maxExact is the magnitude from which every float64 is an integer.
const maxExact = 1 << 53

func truncate(x, scale float64) float64 {
	s := x * scale
	if math.IsNaN(s) || math.Abs(s) >= maxExact {
		return x
	}
	return math.Trunc(s) / scale
}

func (v Vec2) String() string {
	return fmt.Sprintf("%.4g | %.4g", v.X, v.Y)
}
