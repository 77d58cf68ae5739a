package scene

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"physics-engine/internal/physics"
	"physics-engine/internal/vec2"
)

// DefaultPath is the scene file loaded when no path is given, relative to
// the working directory (project root when run via go run ./cmd/game).
const DefaultPath = "assets/scenes/default.yaml"

// BodyDef is the YAML definition of one body in a scene file.
type BodyDef struct {
	Type        string     `yaml:"type"` // "circle" or "box"
	Radius      float32    `yaml:"radius,omitempty"`
	Min         [2]float32 `yaml:"min,omitempty"`
	Max         [2]float32 `yaml:"max,omitempty"`
	Position    [2]float32 `yaml:"position"`
	Density     float32    `yaml:"density"`
	Restitution *float32   `yaml:"restitution,omitempty"`
	Static      bool       `yaml:"static,omitempty"`
	Layer       uint32     `yaml:"layer,omitempty"`
}

// Scene is a declarative initial world: solver settings plus starting bodies.
type Scene struct {
	Timestep   float32   `yaml:"timestep"`
	Gravity    float32   `yaml:"gravity"`
	Iterations int       `yaml:"iterations"`
	Bodies     []BodyDef `yaml:"bodies"`
}

// Default returns the built-in scene: a wide static ground slab near the
// bottom of an 800x600 view and a couple of falling circles.
func Default() Scene {
	return Scene{
		Timestep:   1.0 / 60.0,
		Gravity:    300,
		Iterations: 4,
		Bodies: []BodyDef{
			{Type: "box", Min: [2]float32{-350, -20}, Max: [2]float32{350, 20}, Position: [2]float32{400, 560}, Density: 0, Static: true},
			{Type: "circle", Radius: 25, Position: [2]float32{380, 80}, Density: 1},
			{Type: "circle", Radius: 18, Position: [2]float32{430, 160}, Density: 1},
		},
	}
}

// Load reads a scene from a YAML file. A missing file yields Default() with
// no error; a present but malformed file is an error.
func Load(path string) (Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Default(), nil
	}
	return Parse(data)
}

// Parse decodes a scene from YAML bytes and fills in unset solver settings
// from the defaults.
func Parse(data []byte) (Scene, error) {
	s := Scene{}
	if err := yaml.Unmarshal(data, &s); err != nil {
		return Scene{}, fmt.Errorf("scene: %w", err)
	}
	def := Default()
	if s.Timestep <= 0 {
		s.Timestep = def.Timestep
	}
	if s.Iterations <= 0 {
		s.Iterations = def.Iterations
	}
	return s, nil
}

// Build constructs a world from the scene and populates it with the scene's
// bodies. The bodies join the simulation on the world's first Step.
func (s Scene) Build() (*physics.World, error) {
	w := physics.NewWorld(s.Timestep, s.Gravity, s.Iterations)
	for i, def := range s.Bodies {
		b, err := makeBody(def)
		if err != nil {
			return nil, fmt.Errorf("scene: body %d: %w", i, err)
		}
		w.AddBody(b)
	}
	return w, nil
}

func makeBody(def BodyDef) (*physics.Body, error) {
	pos := vec2.New(def.Position[0], def.Position[1])
	var b *physics.Body
	var err error
	switch def.Type {
	case "circle":
		b, err = physics.NewCircle(def.Radius, pos, def.Density)
	case "box":
		min := vec2.New(def.Min[0], def.Min[1])
		max := vec2.New(def.Max[0], def.Max[1])
		b, err = physics.NewBox(min, max, pos, def.Density)
	default:
		return nil, fmt.Errorf("unknown body type %q", def.Type)
	}
	if err != nil {
		return nil, err
	}
	if def.Restitution != nil {
		b.SetRestitution(*def.Restitution)
	}
	if def.Static {
		b.MakeStatic()
	}
	if def.Layer != 0 {
		b.Layer = def.Layer
	}
	return b, nil
}
