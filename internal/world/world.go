package world

import (
	"dropshot/internal/components"
	"dropshot/internal/engine"
	"dropshot/internal/physics"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const FloorSize = 60.0

// World owns the scene graph, the physics world and the static scenery.
type World struct {
	Scene   *engine.Scene
	Physics *physics.World

	floorModel rl.Model
}

func New() *World {
	w := &World{
		Scene:   engine.NewScene("Range"),
		Physics: physics.NewWorld(),
	}
	w.Physics.Ground = physics.Ground{Y: 0, HalfExtent: FloorSize / 2}
	return w
}

// Initialize creates GPU resources; call after the window exists.
func (w *World) Initialize() {
	floorMesh := rl.GenMeshPlane(FloorSize, FloorSize, 1, 1)
	w.floorModel = rl.LoadModelFromMesh(floorMesh)
}

func (w *World) Update(deltaTime float32) {
	w.Scene.Update(deltaTime)
}

// Draw renders the static scenery and every object with a renderer. Must run
// inside BeginMode3D.
func (w *World) Draw() {
	rl.DrawModel(w.floorModel, rl.Vector3Zero(), 1.0, rl.LightGray)
	rl.DrawGrid(20, 3)

	for _, g := range w.Scene.GameObjects {
		if renderer := engine.GetComponent[*components.ModelRenderer](g); renderer != nil {
			renderer.Draw()
		}
	}
}

func (w *World) Unload() {
	for _, g := range w.Scene.GameObjects {
		if renderer := engine.GetComponent[*components.ModelRenderer](g); renderer != nil {
			renderer.Unload()
		}
	}
	rl.UnloadModel(w.floorModel)
}
