package graphics

import rl "github.com/gen2brain/raylib-go/raylib"

// Run opens the window and drives the main loop. Each frame it calls update
// (input and simulation) with the frame time in seconds, then clears the
// screen and calls draw. This keeps the window/loop plumbing out of the demo
// and out of the physics core entirely.
func Run(width, height int32, title string, update func(dt float32), draw func()) {
	rl.InitWindow(width, height, title)
	defer rl.CloseWindow()

	rl.SetTargetFPS(60)

	for !rl.WindowShouldClose() {
		update(rl.GetFrameTime())

		rl.BeginDrawing()
		rl.ClearBackground(rl.Black)
		draw()
		rl.EndDrawing()
	}
}
