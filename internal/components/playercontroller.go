package components

import (
	"math"

	"dropshot/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// PlayerController handles mouse look and WASD movement for the shooter rig.
// While Frozen (settings overlay open, assets still loading) it ignores input.
type PlayerController struct {
	engine.BaseComponent
	Yaw       float32
	Pitch     float32
	MoveSpeed float32
	LookSpeed float32
	EyeHeight float32
	Frozen    bool
}

func NewPlayerController() *PlayerController {
	return &PlayerController{
		Yaw:       -90.0, // facing -Z, toward the spawn volume
		Pitch:     0.0,
		MoveSpeed: 8.0,
		LookSpeed: 0.1,
		EyeHeight: 1.7,
	}
}

func (p *PlayerController) Update(deltaTime float32) {
	g := p.GetGameObject()
	if g == nil || p.Frozen {
		return
	}

	mouseDelta := rl.GetMouseDelta()
	p.Yaw += mouseDelta.X * p.LookSpeed
	p.Pitch -= mouseDelta.Y * p.LookSpeed

	if p.Pitch > 89 {
		p.Pitch = 89
	}
	if p.Pitch < -89 {
		p.Pitch = -89
	}

	forward, right := p.getDirections()

	var moveDir rl.Vector3
	if rl.IsKeyDown(rl.KeyW) {
		moveDir.X += forward.X
		moveDir.Z += forward.Z
	}
	if rl.IsKeyDown(rl.KeyS) {
		moveDir.X -= forward.X
		moveDir.Z -= forward.Z
	}
	if rl.IsKeyDown(rl.KeyA) {
		moveDir.X += right.X
		moveDir.Z += right.Z
	}
	if rl.IsKeyDown(rl.KeyD) {
		moveDir.X -= right.X
		moveDir.Z -= right.Z
	}

	// Normalize diagonal movement
	moveLen := float32(math.Sqrt(float64(moveDir.X*moveDir.X + moveDir.Z*moveDir.Z)))
	if moveLen > 0 {
		moveDir.X /= moveLen
		moveDir.Z /= moveLen
	}

	g.Transform.Position.X += moveDir.X * p.MoveSpeed * deltaTime
	g.Transform.Position.Z += moveDir.Z * p.MoveSpeed * deltaTime
}

func (p *PlayerController) getDirections() (forward, right rl.Vector3) {
	yawRad := float64(p.Yaw) * math.Pi / 180
	forward = rl.Vector3{
		X: float32(math.Cos(yawRad)),
		Y: 0,
		Z: float32(math.Sin(yawRad)),
	}
	right = rl.Vector3{
		X: float32(math.Sin(yawRad)),
		Y: 0,
		Z: float32(-math.Cos(yawRad)),
	}
	return
}

// GetLookDirection implements engine.LookProvider.
func (p *PlayerController) GetLookDirection() rl.Vector3 {
	yawRad := float64(p.Yaw) * math.Pi / 180
	pitchRad := float64(p.Pitch) * math.Pi / 180
	return rl.Vector3{
		X: float32(math.Cos(yawRad) * math.Cos(pitchRad)),
		Y: float32(math.Sin(pitchRad)),
		Z: float32(math.Sin(yawRad) * math.Cos(pitchRad)),
	}
}

// GetEyeHeight implements engine.LookProvider.
func (p *PlayerController) GetEyeHeight() float32 {
	return p.EyeHeight
}
