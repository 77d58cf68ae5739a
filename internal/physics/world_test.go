package physics

import (
	"testing"

	"github.com/chewxy/math32"

	"physics-engine/internal/vec2"
)

const testDt = 1.0 / 60.0

func TestStepIntegratesGravity(t *testing.T) {
	w := NewWorld(testDt, 100, 4)
	b := mustCircle(t, 10, vec2.New(0, 0), 1)
	w.AddBody(b)

	w.Step()

	wantVy := float32(100 * testDt)
	if !approx(b.Velocity.Y, wantVy) {
		t.Errorf("velocity.Y = %v, want %v", b.Velocity.Y, wantVy)
	}
	wantY := wantVy * testDt
	if !approx(b.Position().Y, wantY) {
		t.Errorf("position.Y = %v, want %v", b.Position().Y, wantY)
	}
}

func TestStepAppliesForceAndClearsIt(t *testing.T) {
	w := NewWorld(testDt, 0, 4)
	b := mustCircle(t, 10, vec2.New(0, 0), 1)
	w.AddBody(b)
	f := b.Mass().Mass * 60 // accelerates by 60 units/s^2
	b.ApplyForce(vec2.New(f, 0))

	w.Step()

	if !approx(b.Velocity.X, 60*testDt) {
		t.Errorf("velocity.X = %v, want %v", b.Velocity.X, 60*testDt)
	}
	if b.Force() != vec2.Zero {
		t.Errorf("force = %v after step, want zero", b.Force())
	}

	// With the accumulator cleared, the next step adds no more speed.
	v := b.Velocity
	w.Step()
	if b.Velocity != v {
		t.Errorf("velocity changed with no force: %v -> %v", v, b.Velocity)
	}
}

func TestStepGravityScale(t *testing.T) {
	w := NewWorld(testDt, 100, 4)
	normal := mustCircle(t, 10, vec2.New(0, 0), 1)
	floaty := mustCircle(t, 10, vec2.New(100, 0), 1)
	floaty.GravityScale = 0
	w.AddBody(normal)
	w.AddBody(floaty)

	w.Step()

	if normal.Velocity.Y == 0 {
		t.Error("gravity not applied to normal body")
	}
	if floaty.Velocity.Y != 0 {
		t.Errorf("gravity-scale-0 body gained velocity %v", floaty.Velocity)
	}
}

func TestStepDoesNotMoveStaticBodies(t *testing.T) {
	w := NewWorld(testDt, 100, 4)
	ground := mustBox(t, vec2.New(-50, -10), vec2.New(50, 10), vec2.New(0, 100), 1)
	ground.MakeStatic()
	w.AddBody(ground)

	pos := ground.Position()
	for i := 0; i < 10; i++ {
		w.Step()
	}
	if ground.Position() != pos || ground.Velocity != vec2.Zero {
		t.Error("static body moved under gravity")
	}
}

func TestAddBodyTakesEffectAtStepBoundary(t *testing.T) {
	w := NewWorld(testDt, 0, 4)
	b := mustCircle(t, 10, vec2.New(0, 0), 1)
	w.AddBody(b)

	if n := len(w.Bodies()); n != 0 {
		t.Errorf("pending body visible before step: %d bodies", n)
	}
	w.Step()
	if n := len(w.Bodies()); n != 1 {
		t.Errorf("got %d bodies after step, want 1", n)
	}
}

func TestRemoveBody(t *testing.T) {
	w := NewWorld(testDt, 0, 4)
	a := mustCircle(t, 10, vec2.New(0, 0), 1)
	b := mustCircle(t, 10, vec2.New(100, 0), 1)
	w.AddBody(a)
	w.AddBody(b)
	w.Step()

	w.RemoveBody(a)
	if len(w.Bodies()) != 1 || w.Bodies()[0] != b {
		t.Errorf("bodies after removal: %v", w.Bodies())
	}

	// Removing a body still in the pending queue.
	c := mustCircle(t, 10, vec2.New(200, 0), 1)
	w.AddBody(c)
	w.RemoveBody(c)
	w.Step()
	if len(w.Bodies()) != 1 {
		t.Errorf("pending body not removed: %d bodies", len(w.Bodies()))
	}
}

func TestStepIsDeterministic(t *testing.T) {
	build := func() *World {
		w := NewWorld(testDt, 300, 4)
		ground := mustBox(t, vec2.New(-200, -10), vec2.New(200, 10), vec2.New(0, 200), 1)
		ground.MakeStatic()
		w.AddBody(ground)
		for i := 0; i < 5; i++ {
			c := mustCircle(t, 12, vec2.New(float32(i)*10-20, float32(i)*25), 1)
			c.SetRestitution(0.4)
			w.AddBody(c)
		}
		return w
	}

	w1, w2 := build(), build()
	for i := 0; i < 120; i++ {
		w1.Step()
		w2.Step()
	}
	for i := range w1.Bodies() {
		p1, p2 := w1.Bodies()[i].Position(), w2.Bodies()[i].Position()
		if p1 != p2 {
			t.Errorf("body %d diverged: %v vs %v", i, p1, p2)
		}
	}
}

func TestStepPanicsOnReentrantCall(t *testing.T) {
	w := NewWorld(testDt, 0, 4)
	defer func() {
		if recover() == nil {
			t.Error("re-entrant Step did not panic")
		}
	}()
	// Simulate re-entrancy by marking the world mid-step.
	w.stepping = true
	w.Step()
}

func TestGroundRest(t *testing.T) {
	// A circle dropped onto a static ground slab settles: its vertical speed
	// stays within one gravity tick and it never sinks visibly into the slab.
	const gravity = 300
	w := NewWorld(testDt, gravity, 4)

	ground := mustBox(t, vec2.New(-100, -10), vec2.New(100, 10), vec2.New(0, 130), 1)
	ground.MakeStatic()
	w.AddBody(ground)

	ball := mustCircle(t, 20, vec2.New(0, 50), 1)
	ball.SetRestitution(0.2)
	w.AddBody(ball)

	for i := 0; i < 600; i++ {
		w.Step()
	}

	// Settled: over another 100 steps the ball must stay on the surface. The
	// residual penetration is the slop plus what one gravity tick re-adds
	// before correction; half a unit covers both with room.
	groundTop := float32(120)
	const sinkLimit = 0.5
	for i := 0; i < 100; i++ {
		w.Step()
		if bottom := ball.Position().Y + 20; bottom > groundTop+sinkLimit {
			t.Fatalf("step %d: ball sank %v below ground surface", i, bottom-groundTop)
		}
	}

	// At rest the only vertical speed left is the gravity added this step,
	// cancelled each time by the contact impulse.
	bound := 2 * gravity * float32(testDt)
	if vy := math32.Abs(ball.Velocity.Y); vy > bound {
		t.Errorf("resting ball vertical speed = %v, want <= %v", vy, bound)
	}
	if ball.Position().X != 0 {
		t.Errorf("head-on drop drifted horizontally to x=%v", ball.Position().X)
	}
}

func TestContactsExposedAfterStep(t *testing.T) {
	w := NewWorld(testDt, 0, 4)
	a := mustCircle(t, 10, vec2.New(0, 0), 1)
	b := mustCircle(t, 10, vec2.New(15, 0), 1)
	w.AddBody(a)
	w.AddBody(b)

	w.Step()

	if len(w.Contacts()) != 1 {
		t.Fatalf("got %d contacts, want 1", len(w.Contacts()))
	}
	m := w.Contacts()[0]
	if m.A != a || m.B != b {
		t.Error("contact bodies not in broad-phase order")
	}
}
