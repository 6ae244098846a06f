package components

import (
	"dropshot/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

type SphereCollider struct {
	engine.BaseComponent
	Radius float32
	Offset rl.Vector3
}

func NewSphereCollider(radius float32) *SphereCollider {
	return &SphereCollider{
		Radius: radius,
		Offset: rl.Vector3{},
	}
}

// WorldCenter returns the collider center in world space.
func (s *SphereCollider) WorldCenter() rl.Vector3 {
	g := s.GetGameObject()
	return rl.Vector3Add(g.Transform.Position, s.Offset)
}
