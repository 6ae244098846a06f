package components

import (
	"dropshot/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// ModelRenderer draws a model at its object's transform. Unless the model is
// shared, the renderer owns the GPU-side mesh and releases it in Unload.
type ModelRenderer struct {
	engine.BaseComponent
	Model  rl.Model
	Color  rl.Color
	shared bool
}

func NewModelRenderer(model rl.Model, color rl.Color) *ModelRenderer {
	return &ModelRenderer{
		Model: model,
		Color: color,
	}
}

// NewSharedModelRenderer wraps a model owned elsewhere; Unload becomes a no-op.
func NewSharedModelRenderer(model rl.Model, color rl.Color) *ModelRenderer {
	return &ModelRenderer{
		Model:  model,
		Color:  color,
		shared: true,
	}
}

func (m *ModelRenderer) Draw() {
	g := m.GetGameObject()
	if g == nil || !g.Active {
		return
	}

	scale := g.Transform.Scale
	scaleMatrix := rl.MatrixScale(scale.X, scale.Y, scale.Z)

	rot := g.Transform.Rotation
	rotX := rl.MatrixRotateX(rot.X * rl.Deg2rad)
	rotY := rl.MatrixRotateY(rot.Y * rl.Deg2rad)
	rotZ := rl.MatrixRotateZ(rot.Z * rl.Deg2rad)
	rotMatrix := rl.MatrixMultiply(rl.MatrixMultiply(rotX, rotY), rotZ)

	pos := g.Transform.Position
	transMatrix := rl.MatrixTranslate(pos.X, pos.Y, pos.Z)

	// scale -> rotate -> translate
	m.Model.Transform = rl.MatrixMultiply(rl.MatrixMultiply(scaleMatrix, rotMatrix), transMatrix)

	rl.DrawModel(m.Model, rl.Vector3Zero(), 1.0, m.Color)
}

func (m *ModelRenderer) Unload() {
	if !m.shared {
		rl.UnloadModel(m.Model)
	}
}
