package physics

import "physics-engine/internal/vec2"

// Transform is a body's placement in the world: position plus rotation in
// radians. Each transform is owned by exactly one body.
type Transform struct {
	Position vec2.Vec2
	Rotation float32
}
