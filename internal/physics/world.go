package physics

import "physics-engine/internal/vec2"

// World owns the body collection and the step loop. Gravity points down the
// +Y axis (screen coordinates). Bodies added while a step is in flight are
// queued and join the simulation at the next step boundary, so the body set
// iterated within one step is stable.
type World struct {
	dt         float32
	gravity    vec2.Vec2
	iterations int

	broadPhase BroadPhase
	resolver   Resolver

	bodies  []*Body
	pending []*Body

	// Contacts from the most recent step, kept for debug drawing.
	contacts []Manifold

	stepping bool
}

// NewWorld returns a world advancing by the fixed timestep dt each Step call,
// with gravity as a downward acceleration magnitude and the given number of
// impulse iterations per step.
func NewWorld(dt float32, gravity float32, iterations int) *World {
	if iterations < 1 {
		iterations = 1
	}
	return &World{
		dt:         dt,
		gravity:    vec2.New(0, gravity),
		iterations: iterations,
		broadPhase: NaiveBroadPhase{},
		resolver:   NewResolver(),
	}
}

// SetBroadPhase swaps the pair-generation strategy. The replacement must
// honor the BroadPhase contract; the rest of the pipeline is unaffected.
func (w *World) SetBroadPhase(bp BroadPhase) {
	w.broadPhase = bp
}

// SetCorrection overrides the positional-correction tuning.
func (w *World) SetCorrection(slop, factor float32) {
	w.resolver.Slop = slop
	w.resolver.Correction = factor
}

// Timestep returns the fixed timestep in seconds.
func (w *World) Timestep() float32 {
	return w.dt
}

// AddBody schedules a body for simulation. It takes effect at the next step
// boundary; bodies added between steps are included in the very next Step.
func (w *World) AddBody(b *Body) {
	w.pending = append(w.pending, b)
}

// RemoveBody removes a body from the world (or the pending queue). Removal
// takes effect immediately between steps; calling it mid-step is not
// supported.
func (w *World) RemoveBody(b *Body) {
	for i, x := range w.bodies {
		if x == b {
			w.bodies = append(w.bodies[:i], w.bodies[i+1:]...)
			return
		}
	}
	for i, x := range w.pending {
		if x == b {
			w.pending = append(w.pending[:i], w.pending[i+1:]...)
			return
		}
	}
}

// Bodies returns the bodies currently simulated, in insertion order. The
// slice is owned by the world; callers read it between steps (e.g. to draw)
// and must not mutate it.
func (w *World) Bodies() []*Body {
	return w.bodies
}

// Contacts returns the manifolds confirmed during the most recent step.
func (w *World) Contacts() []Manifold {
	return w.contacts
}

// Step advances the simulation by exactly one fixed timestep: flush pending
// bodies, integrate forces and gravity, generate candidate pairs, confirm
// contacts, resolve them, then clear force accumulators. Steps never overlap;
// a re-entrant call panics rather than corrupting the body set.
func (w *World) Step() {
	if w.stepping {
		panic("physics: Step called re-entrantly")
	}
	w.stepping = true
	defer func() { w.stepping = false }()

	if len(w.pending) > 0 {
		w.bodies = append(w.bodies, w.pending...)
		w.pending = w.pending[:0]
	}

	w.integrate()

	pairs := w.broadPhase.Pairs(w.bodies)

	w.contacts = w.contacts[:0]
	for _, p := range pairs {
		if m, ok := Collide(w.bodies[p.A], w.bodies[p.B]); ok {
			w.contacts = append(w.contacts, m)
		}
	}

	for i := 0; i < w.iterations; i++ {
		for _, m := range w.contacts {
			w.resolver.ApplyImpulse(m)
		}
	}
	for _, m := range w.contacts {
		w.resolver.CorrectPositions(m)
	}

	for _, b := range w.bodies {
		b.clearForce()
	}
}

// integrate applies gravity and accumulated force to each dynamic body's
// velocity, then velocity to position. Static bodies do not move.
func (w *World) integrate() {
	for _, b := range w.bodies {
		if b.static {
			continue
		}
		accel := w.gravity.Scale(b.GravityScale).Add(b.force.Scale(b.mass.InvMass))
		b.Velocity = b.Velocity.Add(accel.Scale(w.dt))
		b.SetPosition(b.Position().Add(b.Velocity.Scale(w.dt)))
	}
}
