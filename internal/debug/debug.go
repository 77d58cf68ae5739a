package debug

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"

	"physics-engine/internal/physics"
)

const (
	fontSize   = 20
	padding    = 12
	lineHeight = fontSize + 4
	// updateInterval: only refresh overlay text every N frames to reduce allocations.
	updateInterval = 30

	contactMarkRadius = 3
)

// Debug holds runtime debugging overlays for the simulation (FPS, body count,
// contact points). All overlays are off by default.
type Debug struct {
	ShowFPS      bool
	ShowContacts bool

	frameCount   uint32
	lastFpsText  string
	lastBodyText string
}

// New returns a Debug system with all overlays hidden.
func New() *Debug {
	return &Debug{}
}

// Draw renders any enabled overlays for the given world. Call after the
// bodies are drawn. FPS and body count go top-right in green; contact points
// from the last step are marked in red when ShowContacts is true. Text is
// only recomputed every updateInterval frames to limit allocations.
func (d *Debug) Draw(w *physics.World) {
	d.frameCount++
	update := (d.frameCount%updateInterval) == 0 || d.lastFpsText == ""

	screenW := int32(rl.GetScreenWidth())
	y := int32(padding)

	if d.ShowFPS {
		if update {
			d.lastFpsText = fmt.Sprintf("FPS: %d", rl.GetFPS())
			d.lastBodyText = fmt.Sprintf("Bodies: %d", len(w.Bodies()))
		}
		for _, text := range []string{d.lastFpsText, d.lastBodyText} {
			tw := rl.MeasureText(text, fontSize)
			rl.DrawText(text, screenW-tw-padding, y, fontSize, rl.Green)
			y += lineHeight
		}
	}

	if d.ShowContacts {
		for _, m := range w.Contacts() {
			rl.DrawCircle(int32(m.Contact.X), int32(m.Contact.Y), contactMarkRadius, rl.Red)
			end := m.Contact.Add(m.Normal.Scale(10))
			rl.DrawLine(int32(m.Contact.X), int32(m.Contact.Y), int32(end.X), int32(end.Y), rl.Red)
		}
	}
}
