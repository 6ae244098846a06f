package components

import (
	"math"

	"dropshot/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

type Camera struct {
	engine.BaseComponent
	FOV        float32
	Near       float32
	Far        float32
	Projection rl.CameraProjection
}

func NewCamera() *Camera {
	return &Camera{
		FOV:        60.0,
		Near:       0.1,
		Far:        1000.0,
		Projection: rl.CameraPerspective,
	}
}

func (c *Camera) GetRaylibCamera() rl.Camera3D {
	g := c.GetGameObject()
	if g == nil {
		return rl.Camera3D{}
	}

	eyePos := g.Transform.Position

	look, hasLook := engine.FindComponent[engine.LookProvider](g)
	var target rl.Vector3
	if hasLook {
		eyePos.Y += look.GetEyeHeight()
		target = rl.Vector3Add(eyePos, look.GetLookDirection())
	} else {
		// Look forward from the object's yaw.
		yawRad := float64(g.Transform.Rotation.Y) * math.Pi / 180
		forward := rl.Vector3{
			X: float32(-math.Sin(yawRad)),
			Y: 0,
			Z: float32(-math.Cos(yawRad)),
		}
		target = rl.Vector3Add(eyePos, forward)
	}

	return rl.Camera3D{
		Position:   eyePos,
		Target:     target,
		Up:         rl.Vector3{X: 0, Y: 1, Z: 0},
		Fovy:       c.FOV,
		Projection: c.Projection,
	}
}
