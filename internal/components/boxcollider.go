package components

import (
	"dropshot/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

type BoxCollider struct {
	engine.BaseComponent
	Size   rl.Vector3
	Offset rl.Vector3
}

func NewBoxCollider(size rl.Vector3) *BoxCollider {
	return &BoxCollider{
		Size:   size,
		Offset: rl.Vector3{},
	}
}

// WorldCenter returns the collider center in world space.
func (b *BoxCollider) WorldCenter() rl.Vector3 {
	g := b.GetGameObject()
	return rl.Vector3Add(g.Transform.Position, b.Offset)
}

// HalfExtents returns the world-space half size on each axis.
func (b *BoxCollider) HalfExtents() rl.Vector3 {
	return rl.Vector3{X: b.Size.X / 2, Y: b.Size.Y / 2, Z: b.Size.Z / 2}
}
