package physics

import (
	"fmt"

	"physics-engine/internal/vec2"
)

// DefaultLayer is the layer mask new bodies start on. All bodies on the
// default layer collide with each other.
const DefaultLayer uint32 = 0x1

// defaultRestitution is applied by the body factories; override with
// SetRestitution for bouncier or deader surfaces.
const defaultRestitution float32 = 0.2

// Body is one simulated object: a shape, a transform, a material, derived
// mass data, velocity and an accumulated force. Static bodies have zero
// inverse mass and are never moved by integration or impulses, but still
// block dynamic bodies. Bodies are created through NewCircle or NewBox and
// mutated every step by integration and the resolver.
type Body struct {
	shape     Shape
	transform Transform
	material  Material
	mass      MassData

	Velocity     vec2.Vec2
	force        vec2.Vec2
	GravityScale float32
	Layer        uint32

	static bool
}

// NewCircle returns a dynamic circle body at the given position. Density
// must not be negative; density 0 produces a zero-mass (static) body.
func NewCircle(radius float32, position vec2.Vec2, density float32) (*Body, error) {
	return newBody(NewCircleShape(radius), position, density)
}

// NewBox returns a dynamic box body at the given position, with min and max
// as local bounds around the position. Density must not be negative.
func NewBox(min, max vec2.Vec2, position vec2.Vec2, density float32) (*Body, error) {
	return newBody(NewBoxShape(min, max), position, density)
}

func newBody(shape Shape, position vec2.Vec2, density float32) (*Body, error) {
	if density < 0 {
		return nil, fmt.Errorf("physics: negative density %v", density)
	}
	b := &Body{
		shape:        shape,
		transform:    Transform{Position: position},
		material:     Material{Density: density, Restitution: defaultRestitution},
		GravityScale: 1,
		Layer:        DefaultLayer,
	}
	b.mass = computeMass(shape, density)
	b.static = b.mass.InvMass == 0
	return b, nil
}

// ShapeKind returns which shape variant the body holds.
func (b *Body) ShapeKind() ShapeKind {
	return b.shape.Kind
}

// Circle returns the radius of a circle body. Calling it on a box body is a
// contract violation and returns ErrShapeMismatch.
func (b *Body) Circle() (float32, error) {
	if b.shape.Kind != KindCircle {
		return 0, fmt.Errorf("%w: want circle, have %s", ErrShapeMismatch, b.shape.Kind)
	}
	return b.shape.Radius, nil
}

// Box returns the local bounds of a box body. Calling it on a circle body is
// a contract violation and returns ErrShapeMismatch.
func (b *Body) Box() (min, max vec2.Vec2, err error) {
	if b.shape.Kind != KindBox {
		return vec2.Zero, vec2.Zero, fmt.Errorf("%w: want box, have %s", ErrShapeMismatch, b.shape.Kind)
	}
	return b.shape.Min, b.shape.Max, nil
}

// Position returns the body's current position.
func (b *Body) Position() vec2.Vec2 {
	return b.transform.Position
}

// SetPosition moves the body. Meant for setup; moving bodies mid-step is not
// supported.
func (b *Body) SetPosition(p vec2.Vec2) {
	b.transform.Position = p
}

// Rotation returns the body's rotation in radians.
func (b *Body) Rotation() float32 {
	return b.transform.Rotation
}

// Mass returns the body's derived mass data.
func (b *Body) Mass() MassData {
	return b.mass
}

// Material returns the body's material.
func (b *Body) Material() Material {
	return b.material
}

// SetRestitution sets the material restitution, clamped to [0, 1].
func (b *Body) SetRestitution(e float32) {
	if e < 0 {
		e = 0
	}
	if e > 1 {
		e = 1
	}
	b.material.Restitution = e
}

// Static reports whether the body is immovable.
func (b *Body) Static() bool {
	return b.static
}

// MakeStatic turns the body into an immovable infinite-mass body: mass and
// inverse mass go to zero and any accumulated motion is dropped.
func (b *Body) MakeStatic() {
	b.mass = MassData{}
	b.material.Density = 0
	b.Velocity = vec2.Zero
	b.force = vec2.Zero
	b.static = true
}

// ApplyForce adds f to the force accumulator. Forces act during the next
// integration and are cleared at the end of each step.
func (b *Body) ApplyForce(f vec2.Vec2) {
	b.force = b.force.Add(f)
}

// Force returns the currently accumulated force.
func (b *Body) Force() vec2.Vec2 {
	return b.force
}

// clearForce resets the accumulator; the world calls this at step end.
func (b *Body) clearForce() {
	b.force = vec2.Zero
}

// ApplyImpulse changes the body's velocity by impulse scaled with the inverse
// mass. Static bodies are unaffected.
func (b *Body) ApplyImpulse(impulse vec2.Vec2) {
	b.Velocity = b.Velocity.Add(impulse.Scale(b.mass.InvMass))
}

// Bounds returns the body's world-space axis-aligned bounding box, used by
// the broad phase.
func (b *Body) Bounds() (min, max vec2.Vec2) {
	p := b.transform.Position
	switch b.shape.Kind {
	case KindCircle:
		r := vec2.Splat(b.shape.Radius)
		return p.Sub(r), p.Add(r)
	default:
		return p.Add(b.shape.Min), p.Add(b.shape.Max)
	}
}
