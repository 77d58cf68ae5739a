package physics

import "github.com/chewxy/math32"

// Positional correction keeps stacked bodies from slowly sinking into each
// other under repeated small penetrations. Penetration below the slop is
// tolerated; beyond it, a fraction of the remaining depth is corrected each
// step. The exact values are tuning, not correctness.
const (
	DefaultPenetrationSlop  float32 = 0.01
	DefaultCorrectionFactor float32 = 0.4
)

// Resolver applies impulses and positional correction to confirmed contacts.
// The zero value uses the default slop and correction factor.
type Resolver struct {
	Slop       float32
	Correction float32
}

// NewResolver returns a resolver with the default tuning.
func NewResolver() Resolver {
	return Resolver{Slop: DefaultPenetrationSlop, Correction: DefaultCorrectionFactor}
}

// ApplyImpulse resolves the contact's relative velocity along the normal with
// a single closed-form impulse. Contacts that are already separating, and
// pairs where both bodies are static, are left untouched.
func (r Resolver) ApplyImpulse(m Manifold) {
	a, b := m.A, m.B
	invMassSum := a.mass.InvMass + b.mass.InvMass
	if invMassSum == 0 {
		return
	}

	rv := b.Velocity.Sub(a.Velocity)
	velAlongNormal := rv.Dot(m.Normal)
	if velAlongNormal > 0 {
		return
	}

	e := math32.Min(a.material.Restitution, b.material.Restitution)
	j := -(1 + e) * velAlongNormal / invMassSum

	impulse := m.Normal.Scale(j)
	a.Velocity = a.Velocity.Sub(impulse.Scale(a.mass.InvMass))
	b.Velocity = b.Velocity.Add(impulse.Scale(b.mass.InvMass))
}

// CorrectPositions nudges both bodies apart along the contact normal, split
// by each body's share of the pair's inverse mass. Static bodies never move.
func (r Resolver) CorrectPositions(m Manifold) {
	a, b := m.A, m.B
	invMassSum := a.mass.InvMass + b.mass.InvMass
	if invMassSum == 0 {
		return
	}
	depth := math32.Max(m.Penetration-r.Slop, 0)
	if depth == 0 {
		return
	}
	correction := m.Normal.Scale(depth / invMassSum * r.Correction)
	a.SetPosition(a.Position().Sub(correction.Scale(a.mass.InvMass)))
	b.SetPosition(b.Position().Add(correction.Scale(b.mass.InvMass)))
}
