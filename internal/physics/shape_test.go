package physics

import (
	"testing"

	"github.com/chewxy/math32"

	"physics-engine/internal/vec2"
)

func TestShapeArea(t *testing.T) {
	circle := NewCircleShape(2)
	want := float32(math32.Pi) * 4
	if got := circle.Area(); math32.Abs(got-want) > 1e-4 {
		t.Errorf("circle area = %v, want %v", got, want)
	}

	box := NewBoxShape(vec2.New(-1, -2), vec2.New(3, 2))
	if got := box.Area(); got != 16 {
		t.Errorf("box area = %v, want 16", got)
	}
}

func TestComputeMass(t *testing.T) {
	tests := []struct {
		name    string
		shape   Shape
		density float32
	}{
		{"circle density 1", NewCircleShape(3), 1},
		{"box density 2", NewBoxShape(vec2.New(-1, -1), vec2.New(1, 1)), 2},
		{"circle density 0.5", NewCircleShape(10), 0.5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			md := computeMass(tt.shape, tt.density)
			wantMass := tt.density * tt.shape.Area()
			if math32.Abs(md.Mass-wantMass) > 1e-3 {
				t.Errorf("mass = %v, want %v", md.Mass, wantMass)
			}
			if math32.Abs(md.InvMass*md.Mass-1) > 1e-5 {
				t.Errorf("inv_mass %v is not 1/mass %v", md.InvMass, md.Mass)
			}
			if md.Inertia <= 0 || md.InvInertia <= 0 {
				t.Errorf("inertia = %v, inv = %v; want positive", md.Inertia, md.InvInertia)
			}
		})
	}
}

func TestComputeMassZeroIsStatic(t *testing.T) {
	tests := []struct {
		name    string
		shape   Shape
		density float32
	}{
		{"zero density", NewCircleShape(5), 0},
		{"zero radius", NewCircleShape(0), 1},
		{"zero area box", NewBoxShape(vec2.New(0, -1), vec2.New(0, 1)), 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			md := computeMass(tt.shape, tt.density)
			if md.Mass != 0 {
				t.Errorf("mass = %v, want 0", md.Mass)
			}
			if md.InvMass != 0 {
				t.Errorf("mass == 0 but inv_mass = %v", md.InvMass)
			}
		})
	}
}

func TestShapeKindString(t *testing.T) {
	if KindCircle.String() != "circle" || KindBox.String() != "box" {
		t.Errorf("unexpected kind strings: %s, %s", KindCircle, KindBox)
	}
}
