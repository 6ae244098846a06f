package components

import (
	"dropshot/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Rigidbody is the simulated body paired with a visual object. The physics
// world integrates Position/Rotation here; nothing else writes them. The
// scene transform is synchronized from the body once per frame, never the
// other way around.
type Rigidbody struct {
	engine.BaseComponent
	Position        rl.Vector3
	Rotation        rl.Vector3 // Euler angles in degrees
	Velocity        rl.Vector3
	AngularVelocity rl.Vector3 // degrees per second on each axis
	Mass            float32
	Bounciness      float32 // 0 = no bounce, 1 = perfect bounce
	Friction        float32 // horizontal damping applied on ground contact
	AngularDamping  float32
	UseGravity      bool
}

func NewRigidbody() *Rigidbody {
	return &Rigidbody{
		Mass:           1.0,
		Bounciness:     0.4,
		Friction:       0.2,
		AngularDamping: 0.98,
		UseGravity:     true,
	}
}
