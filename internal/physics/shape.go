package physics

import (
	"errors"

	"github.com/chewxy/math32"

	"physics-engine/internal/vec2"
)

// ShapeKind identifies which variant a Shape holds.
type ShapeKind int

const (
	KindCircle ShapeKind = iota
	KindBox
)

// ErrShapeMismatch is returned by typed shape accessors when the body holds
// the other variant. Reading the wrong variant is a programmer error; callers
// must check Kind first or handle the error.
var ErrShapeMismatch = errors.New("physics: shape kind mismatch")

// String returns "circle" or "box".
func (k ShapeKind) String() string {
	switch k {
	case KindCircle:
		return "circle"
	case KindBox:
		return "box"
	}
	return "unknown"
}

// Shape is a tagged variant over the supported collision shapes. Exactly one
// body owns each Shape; shapes are never shared. For a circle only Radius is
// meaningful; for a box, Min and Max are local bounds around the body origin
// (so a box centered on its position has Min = -Max).
type Shape struct {
	Kind   ShapeKind
	Radius float32   // circle
	Min    vec2.Vec2 // box, local
	Max    vec2.Vec2 // box, local
}

// NewCircleShape returns a circle shape with the given radius. Zero radius is
// degenerate but valid; it contributes zero mass.
func NewCircleShape(radius float32) Shape {
	return Shape{Kind: KindCircle, Radius: radius}
}

// NewBoxShape returns a box shape with the given local bounds.
func NewBoxShape(min, max vec2.Vec2) Shape {
	return Shape{Kind: KindBox, Min: min, Max: max}
}

// Area returns the 2D area of the shape, the volume term in mass derivation.
func (s Shape) Area() float32 {
	switch s.Kind {
	case KindCircle:
		return math32.Pi * s.Radius * s.Radius
	case KindBox:
		d := s.Max.Sub(s.Min)
		return d.X * d.Y
	}
	return 0
}

// inertia returns the moment of inertia for the given mass about the shape's
// own center. Rotation is not yet integrated by the world, but the mass data
// carries it so the resolver can grow into angular impulses.
func (s Shape) inertia(mass float32) float32 {
	switch s.Kind {
	case KindCircle:
		return 0.5 * mass * s.Radius * s.Radius
	case KindBox:
		d := s.Max.Sub(s.Min)
		return mass * (d.X*d.X + d.Y*d.Y) / 12
	}
	return 0
}

// Material describes the surface properties that feed mass derivation and
// collision response. Density 0 marks an infinite-mass (static) surface.
type Material struct {
	Density     float32
	Restitution float32 // 0 = perfectly inelastic, 1 = perfectly elastic
}

// MassData is derived from a shape and a material density. It is recomputed
// whenever either changes and never set directly.
type MassData struct {
	Mass       float32
	InvMass    float32
	Inertia    float32
	InvInertia float32
}

// computeMass derives mass data from shape area and density. Zero mass (zero
// density or degenerate shape) yields zero inverse mass, i.e. a static body.
func computeMass(s Shape, density float32) MassData {
	m := density * s.Area()
	md := MassData{Mass: m}
	if m != 0 {
		md.InvMass = 1 / m
	}
	md.Inertia = s.inertia(m)
	if md.Inertia != 0 {
		md.InvInertia = 1 / md.Inertia
	}
	return md
}
