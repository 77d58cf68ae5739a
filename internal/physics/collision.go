package physics

import (
	"github.com/chewxy/math32"

	"physics-engine/internal/vec2"
)

// Manifold is a confirmed contact between two bodies: a unit normal pointing
// from A toward B, the penetration depth along it, and a representative
// contact point. Manifolds are transient; the resolver consumes them within
// the same step.
type Manifold struct {
	A, B        *Body
	Normal      vec2.Vec2
	Penetration float32
	Contact     vec2.Vec2
}

// Collide runs the narrow phase for one candidate pair, dispatching on the
// shape variant combination. It returns false when the shapes do not overlap;
// that is the normal outcome, not an error.
func Collide(a, b *Body) (Manifold, bool) {
	switch {
	case a.shape.Kind == KindCircle && b.shape.Kind == KindCircle:
		return collideCircleCircle(a, b)
	case a.shape.Kind == KindBox && b.shape.Kind == KindBox:
		return collideBoxBox(a, b)
	case a.shape.Kind == KindBox && b.shape.Kind == KindCircle:
		return collideBoxCircle(a, b)
	default:
		// Circle vs box: solve as box vs circle and flip the normal back.
		m, ok := collideBoxCircle(b, a)
		if !ok {
			return Manifold{}, false
		}
		m.A, m.B = a, b
		m.Normal = m.Normal.Neg()
		return m, true
	}
}

func collideCircleCircle(a, b *Body) (Manifold, bool) {
	n := b.Position().Sub(a.Position())
	r := a.shape.Radius + b.shape.Radius
	distSqr := n.LengthSquared()
	if distSqr >= r*r {
		return Manifold{}, false
	}
	m := Manifold{A: a, B: b}
	dist := math32.Sqrt(distSqr)
	if dist == 0 {
		// Coincident centers: the normal is undefined, so pick a fixed axis
		// deterministically instead of letting NaN propagate.
		m.Normal = vec2.New(1, 0)
		m.Penetration = a.shape.Radius
		m.Contact = a.Position()
	} else {
		m.Normal = n.Scale(1 / dist)
		m.Penetration = r - dist
		m.Contact = a.Position().Add(m.Normal.Scale(a.shape.Radius))
	}
	return m, true
}

func collideBoxBox(a, b *Body) (Manifold, bool) {
	aMin, aMax := a.Bounds()
	bMin, bMax := b.Bounds()
	overlapX := math32.Min(aMax.X, bMax.X) - math32.Max(aMin.X, bMin.X)
	overlapY := math32.Min(aMax.Y, bMax.Y) - math32.Max(aMin.Y, bMin.Y)
	if overlapX <= 0 || overlapY <= 0 {
		return Manifold{}, false
	}
	m := Manifold{A: a, B: b}
	d := b.Position().Sub(a.Position())
	// Separate along the axis with the smaller overlap, toward B.
	if overlapX < overlapY {
		m.Penetration = overlapX
		if d.X < 0 {
			m.Normal = vec2.New(-1, 0)
		} else {
			m.Normal = vec2.New(1, 0)
		}
	} else {
		m.Penetration = overlapY
		if d.Y < 0 {
			m.Normal = vec2.New(0, -1)
		} else {
			m.Normal = vec2.New(0, 1)
		}
	}
	// Center of the overlap region.
	oMin := aMin.Max(bMin)
	oMax := aMax.Min(bMax)
	m.Contact = oMin.Add(oMax).Scale(0.5)
	return m, true
}

// collideBoxCircle tests a box body a against a circle body b. The closest
// point on the box to the circle center decides the contact; a center inside
// the box snaps to the nearest face so the circle is pushed out the short way.
func collideBoxCircle(a, b *Body) (Manifold, bool) {
	delta := b.Position().Sub(a.Position())
	closest := delta.Clamp(a.shape.Min, a.shape.Max)

	inside := closest == delta
	if inside {
		// Snap to the nearest face.
		left := delta.X - a.shape.Min.X
		right := a.shape.Max.X - delta.X
		bottom := delta.Y - a.shape.Min.Y
		top := a.shape.Max.Y - delta.Y
		least := math32.Min(math32.Min(left, right), math32.Min(bottom, top))
		switch least {
		case left:
			closest.X = a.shape.Min.X
		case right:
			closest.X = a.shape.Max.X
		case bottom:
			closest.Y = a.shape.Min.Y
		default:
			closest.Y = a.shape.Max.Y
		}
	}

	normal := delta.Sub(closest)
	d := normal.LengthSquared()
	r := b.shape.Radius
	if d > r*r && !inside {
		return Manifold{}, false
	}

	m := Manifold{A: a, B: b}
	m.Contact = a.Position().Add(closest)
	d = math32.Sqrt(d)
	if inside {
		// Center is behind the face: push out the face direction, through the
		// face and a full radius beyond it.
		out := closest.Sub(delta)
		if d = out.Length(); d == 0 {
			// Center exactly on the face.
			m.Normal = vec2.New(1, 0)
			m.Penetration = r
		} else {
			m.Normal = out.Scale(1 / d)
			m.Penetration = r + d
		}
	} else if d == 0 {
		// Center exactly on the surface.
		m.Normal = vec2.New(1, 0)
		m.Penetration = r
	} else {
		m.Normal = normal.Scale(1 / d)
		m.Penetration = r - d
	}
	return m, true
}
