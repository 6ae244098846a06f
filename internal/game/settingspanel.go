package game

import (
	"fmt"

	"dropshot/internal/audio"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// drawSettingsPanel renders the pause overlay. Slider changes apply
// immediately; everything is persisted when the panel closes.
func (g *Game) drawSettingsPanel() {
	width := float32(rl.GetScreenWidth())
	height := float32(rl.GetScreenHeight())

	rl.DrawRectangle(0, 0, int32(width), int32(height), rl.NewColor(0, 0, 0, 160))

	panel := rl.Rectangle{X: width/2 - 180, Y: height/2 - 120, Width: 360, Height: 240}
	if gui.WindowBox(panel, "Settings") {
		g.togglePause()
		return
	}

	s := g.settings.Settings()

	volume := gui.Slider(
		rl.Rectangle{X: panel.X + 110, Y: panel.Y + 50, Width: 180, Height: 20},
		"Volume", fmt.Sprintf("%.2f", s.SoundVolume),
		float32(s.SoundVolume), 0, 1,
	)
	if float64(volume) != s.SoundVolume {
		s.SoundVolume = float64(volume)
		audio.SetMasterVolume(volume)
	}

	sensitivity := gui.Slider(
		rl.Rectangle{X: panel.X + 110, Y: panel.Y + 90, Width: 180, Height: 20},
		"Sensitivity", fmt.Sprintf("%.2f", s.MouseSensitivity),
		float32(s.MouseSensitivity), 0.1, 3,
	)
	if float64(sensitivity) != s.MouseSensitivity {
		s.MouseSensitivity = float64(sensitivity)
		g.controller.LookSpeed = 0.1 * sensitivity
	}

	fullscreen := gui.CheckBox(
		rl.Rectangle{X: panel.X + 110, Y: panel.Y + 130, Width: 20, Height: 20},
		"Fullscreen", s.Fullscreen,
	)
	if fullscreen != s.Fullscreen {
		s.Fullscreen = fullscreen
		rl.ToggleFullscreen()
	}

	rl.DrawText("Esc resumes", int32(panel.X)+110, int32(panel.Y)+180, 16, rl.Gray)
}
