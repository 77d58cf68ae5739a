package main

import (
	"flag"

	rl "github.com/gen2brain/raylib-go/raylib"

	"physics-engine/internal/debug"
	"physics-engine/internal/engineconfig"
	"physics-engine/internal/graphics"
	"physics-engine/internal/logger"
	"physics-engine/internal/physics"
	"physics-engine/internal/scene"
	"physics-engine/internal/vec2"
)

const (
	spawnCircleRadius  = 15
	spawnBoxHalfExtent = 15
	spawnDensity       = 1.0
)

// maxStepsPerFrame caps how many fixed steps a slow frame may run, so a long
// stall doesn't spiral into ever-longer catch-up work.
const maxStepsPerFrame = 5

func main() {
	scenePath := flag.String("scene", scene.DefaultPath, "scene YAML file")
	flag.Parse()

	log := logger.New()
	prefs, _ := engineconfig.Load()

	scn, err := scene.Load(*scenePath)
	if err != nil {
		log.Logf("scene load failed: %v", err)
		scn = scene.Default()
	}
	if prefs.SolverIterations > 0 {
		scn.Iterations = prefs.SolverIterations
	}
	world, err := scn.Build()
	if err != nil {
		log.Logf("scene build failed: %v", err)
		world, _ = scene.Default().Build()
	}
	world.SetCorrection(prefs.CorrectionSlop, prefs.CorrectionFactor)
	log.Logf("scene %s: %d bodies, dt=%v", *scenePath, len(scn.Bodies), scn.Timestep)

	dbg := debug.New()
	dbg.ShowFPS = prefs.ShowFPS
	dbg.ShowContacts = prefs.ShowContacts

	var accumulator float32
	update := func(frameTime float32) {
		handleInput(world, log)

		// Fixed-timestep accumulator: the renderer runs at whatever rate it
		// likes, the simulation always advances in whole timesteps.
		accumulator += frameTime
		steps := 0
		for accumulator >= world.Timestep() && steps < maxStepsPerFrame {
			world.Step()
			accumulator -= world.Timestep()
			steps++
		}
		if steps == maxStepsPerFrame {
			accumulator = 0
		}
	}

	draw := func() {
		drawBodies(world)
		dbg.Draw(world)
	}

	graphics.Run(prefs.WindowWidth, prefs.WindowHeight, "physics-engine", update, draw)
}

// handleInput turns clicks into spawn requests: left click drops a circle,
// right click drops a box. AddBody queues the body for the next step, so
// spawning never mutates the body set mid-step.
func handleInput(w *physics.World, log *logger.Logger) {
	if rl.IsMouseButtonPressed(rl.MouseLeftButton) {
		p := rl.GetMousePosition()
		b, err := physics.NewCircle(spawnCircleRadius, vec2.New(p.X, p.Y), spawnDensity)
		if err != nil {
			log.Logf("spawn circle: %v", err)
			return
		}
		w.AddBody(b)
		log.Logf("spawned circle at (%.0f, %.0f)", p.X, p.Y)
	}
	if rl.IsMouseButtonPressed(rl.MouseRightButton) {
		p := rl.GetMousePosition()
		half := vec2.Splat(spawnBoxHalfExtent)
		b, err := physics.NewBox(half.Neg(), half, vec2.New(p.X, p.Y), spawnDensity)
		if err != nil {
			log.Logf("spawn box: %v", err)
			return
		}
		w.AddBody(b)
		log.Logf("spawned box at (%.0f, %.0f)", p.X, p.Y)
	}
}

// drawBodies renders every body from its typed shape accessors. Static bodies
// draw gray, dynamic ones white.
func drawBodies(w *physics.World) {
	for _, b := range w.Bodies() {
		color := rl.RayWhite
		if b.Static() {
			color = rl.Gray
		}
		pos := b.Position()
		switch b.ShapeKind() {
		case physics.KindCircle:
			r, err := b.Circle()
			if err != nil {
				continue
			}
			rl.DrawCircleLines(int32(pos.X), int32(pos.Y), r, color)
		case physics.KindBox:
			min, max, err := b.Box()
			if err != nil {
				continue
			}
			size := max.Sub(min)
			rl.DrawRectangleLines(int32(pos.X+min.X), int32(pos.Y+min.Y), int32(size.X), int32(size.Y), color)
		}
	}
}
