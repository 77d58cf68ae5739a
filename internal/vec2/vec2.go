package vec2

import "github.com/chewxy/math32"

// Vec2 is a 2D vector with float32 components. It is a value type: all
// operations return a new vector and never mutate the receiver.
type Vec2 struct {
	X, Y float32
}

// Zero is the zero vector.
var Zero = Vec2{}

// New returns the vector (x, y).
func New(x, y float32) Vec2 {
	return Vec2{X: x, Y: y}
}

// Splat returns a vector with both components set to v.
func Splat(v float32) Vec2 {
	return Vec2{X: v, Y: v}
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{X: v.X - o.X, Y: v.Y - o.Y}
}

// Scale returns v with both components multiplied by s.
func (v Vec2) Scale(s float32) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

// Neg returns -v.
func (v Vec2) Neg() Vec2 {
	return Vec2{X: -v.X, Y: -v.Y}
}

// Dot returns the dot product of v and o.
func (v Vec2) Dot(o Vec2) float32 {
	return v.X*o.X + v.Y*o.Y
}

// Cross returns the 2D cross product (the z component of the 3D cross).
func (v Vec2) Cross(o Vec2) float32 {
	return v.X*o.Y - v.Y*o.X
}

// Length returns the length of v.
func (v Vec2) Length() float32 {
	return math32.Sqrt(v.Dot(v))
}

// LengthSquared returns the squared length of v. Cheaper than Length when
// only comparing magnitudes.
func (v Vec2) LengthSquared() float32 {
	return v.Dot(v)
}

// Distance returns the distance between v and o.
func (v Vec2) Distance(o Vec2) float32 {
	return v.Sub(o).Length()
}

// DistanceSquared returns the squared distance between v and o.
func (v Vec2) DistanceSquared(o Vec2) float32 {
	return v.Sub(o).LengthSquared()
}

// Normalize returns v scaled to length 1. The zero vector (or one too short
// to normalize) returns the zero vector rather than producing NaN components.
func (v Vec2) Normalize() Vec2 {
	l := v.Length()
	if l == 0 || math32.IsInf(1/l, 0) {
		return Zero
	}
	return v.Scale(1 / l)
}

// Min returns the component-wise minimum of v and o.
func (v Vec2) Min(o Vec2) Vec2 {
	return Vec2{X: math32.Min(v.X, o.X), Y: math32.Min(v.Y, o.Y)}
}

// Max returns the component-wise maximum of v and o.
func (v Vec2) Max(o Vec2) Vec2 {
	return Vec2{X: math32.Max(v.X, o.X), Y: math32.Max(v.Y, o.Y)}
}

// Clamp returns v clamped component-wise to [min, max].
func (v Vec2) Clamp(min, max Vec2) Vec2 {
	return v.Max(min).Min(max)
}
