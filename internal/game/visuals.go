package game

import (
	"fmt"

	"dropshot/internal/components"
	"dropshot/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

var visualCounter uint64

// NewTargetVisual is the default VisualFactory. It generates a GPU mesh per
// target; the renderer owns it and releases it when the target retires.
// Requires a live GL context, so tests substitute their own factory.
func NewTargetVisual(tt TargetType) *engine.GameObject {
	visualCounter++
	obj := engine.NewGameObject(fmt.Sprintf("Target_%s_%d", tt.Name, visualCounter))

	switch tt.Shape {
	case ShapeSphere:
		radius := tt.Size / 2
		mesh := rl.GenMeshSphere(radius, 16, 16)
		model := rl.LoadModelFromMesh(mesh)
		obj.AddComponent(components.NewModelRenderer(model, tt.Color))
		obj.AddComponent(components.NewSphereCollider(radius))
	default:
		mesh := rl.GenMeshCube(tt.Size, tt.Size, tt.Size)
		model := rl.LoadModelFromMesh(mesh)
		obj.AddComponent(components.NewModelRenderer(model, tt.Color))
		obj.AddComponent(components.NewBoxCollider(rl.Vector3{X: tt.Size, Y: tt.Size, Z: tt.Size}))
	}

	return obj
}
