package engine

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

type Component interface {
	Start()
	Update(deltaTime float32)
	SetGameObject(g *GameObject)
	GetGameObject() *GameObject
}

// LookProvider is implemented by components that control the camera look
// direction. The camera and the shooting input both resolve it dynamically.
type LookProvider interface {
	GetLookDirection() rl.Vector3
	GetEyeHeight() float32
}

// BaseComponent provides default implementations for Component.
type BaseComponent struct {
	gameObject *GameObject
}

func (b *BaseComponent) Start() {}

func (b *BaseComponent) Update(deltaTime float32) {}

func (b *BaseComponent) SetGameObject(g *GameObject) {
	b.gameObject = g
}

func (b *BaseComponent) GetGameObject() *GameObject {
	return b.gameObject
}
