package game

import (
	"fmt"

	"dropshot/internal/assets"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"
)

const flashDuration = 0.4

// HUD renders score, combo, crosshair and loading state. Score and combo
// text are rebuilt only when the state actually changes, via the state's
// change events.
type HUD struct {
	scoreText string
	comboText string

	flashTimer  float32
	flashPoints int
}

func NewHUD(state *State) *HUD {
	h := &HUD{}
	h.setScore(state.Score)
	h.setCombo(state.ComboMultiplier)

	state.ScoreChanged.AddListener(h.setScore)
	state.ComboChanged.AddListener(h.setCombo)
	return h
}

func (h *HUD) setScore(score int) {
	h.scoreText = fmt.Sprintf("Score: %d", score)
}

func (h *HUD) setCombo(multiplier float64) {
	h.comboText = fmt.Sprintf("Combo: x%.1f", multiplier)
}

// NotifyShot starts the hit feedback flash.
func (h *HUD) NotifyShot(outcome HitOutcome) {
	if !outcome.Hit {
		return
	}
	h.flashTimer = flashDuration
	h.flashPoints = outcome.Points
}

func (h *HUD) Update(deltaTime float32) {
	if h.flashTimer > 0 {
		h.flashTimer -= deltaTime
	}
}

func (h *HUD) Draw() {
	rl.DrawText(h.scoreText, 10, 10, 30, rl.RayWhite)
	rl.DrawText(h.comboText, 10, 45, 20, rl.SkyBlue)
	rl.DrawText("LMB shoot  R restart  Esc settings", 10, 75, 16, rl.DarkGray)
	rl.DrawFPS(10, 100)

	h.drawCrosshair()

	if h.flashTimer > 0 {
		color := rl.Lime
		if h.flashPoints < 0 {
			color = rl.Red
		}
		cx := int32(rl.GetScreenWidth() / 2)
		cy := int32(rl.GetScreenHeight() / 2)
		rl.DrawText(fmt.Sprintf("%+d", h.flashPoints), cx+16, cy-28, 24, color)
	}
}

func (h *HUD) drawCrosshair() {
	cx := int32(rl.GetScreenWidth() / 2)
	cy := int32(rl.GetScreenHeight() / 2)
	rl.DrawLine(cx-8, cy, cx+8, cy, rl.RayWhite)
	rl.DrawLine(cx, cy-8, cx, cy+8, rl.RayWhite)
}

// DrawLoading shows the progress bar while assets stream in, or the terminal
// error message if the load failed. Gameplay never becomes ready after a
// failure; the session stays on this screen.
func (h *HUD) DrawLoading(loader *assets.Loader) {
	width := float32(rl.GetScreenWidth())
	height := float32(rl.GetScreenHeight())

	if err := loader.Err(); err != nil {
		msg := "Asset load failed: " + err.Error()
		textWidth := rl.MeasureText(msg, 20)
		rl.DrawText(msg, int32(width/2)-textWidth/2, int32(height/2), 20, rl.Red)
		return
	}

	label := "LOADING..."
	textWidth := rl.MeasureText(label, 30)
	rl.DrawText(label, int32(width/2)-textWidth/2, int32(height/2)-60, 30, rl.RayWhite)

	bar := rl.Rectangle{X: width/2 - 200, Y: height / 2, Width: 400, Height: 24}
	gui.ProgressBar(bar, "", fmt.Sprintf("%.0f%%", loader.Progress()*100), loader.Progress(), 0, 1)
}
