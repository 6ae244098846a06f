package game

import (
	"dropshot/internal/components"
	"dropshot/internal/config"
	"dropshot/internal/engine"
	"dropshot/internal/physics"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// VisualFactory builds the render-participating object for a target type:
// its renderer (if any) and collider, sized for the type. The lifecycle
// manager positions it and attaches the body. Tests inject a factory that
// skips GPU resources.
type VisualFactory func(tt TargetType) *engine.GameObject

// Lifecycle spawns, tracks, synchronizes and retires targets. It owns the
// full teardown path; nothing else removes targets from the scene or the
// physics world.
type Lifecycle struct {
	state     *State
	scene     *engine.Scene
	world     *physics.World
	tuning    *config.Tuning
	types     []TargetType
	newVisual VisualFactory
}

func NewLifecycle(state *State, scene *engine.Scene, world *physics.World, tuning *config.Tuning, types []TargetType, factory VisualFactory) *Lifecycle {
	if factory == nil {
		factory = NewTargetVisual
	}
	return &Lifecycle{
		state:     state,
		scene:     scene,
		world:     world,
		tuning:    tuning,
		types:     types,
		newVisual: factory,
	}
}

// Advance accumulates the spawn timer and spawns once eligibility is
// reached. Failed attempts (cap reached) leave the timer running so the next
// tick retries.
func (m *Lifecycle) Advance(deltaTime float32) {
	m.state.SpawnTimer += deltaTime
	if m.state.SpawnTimer >= m.state.SpawnInterval {
		m.Spawn()
	}
}

// Spawn creates one target: uniform random type, position sampled per axis
// from the tuning ranges, small random launch velocity and spin. Returns
// false without side effects when the population cap is reached or the
// cadence hasn't elapsed.
func (m *Lifecycle) Spawn() bool {
	if m.state.TargetCount() >= m.state.MaxTargets {
		return false
	}
	if m.state.SpawnTimer < m.state.SpawnInterval {
		return false
	}

	rng := m.state.rng
	tt := m.types[rng.Intn(len(m.types))]

	obj := m.newVisual(tt)
	obj.Transform.Position = rl.Vector3{
		X: m.tuning.SpawnX.Sample(rng.Float32),
		Y: m.tuning.SpawnY.Sample(rng.Float32),
		Z: m.tuning.SpawnZ.Sample(rng.Float32),
	}

	rb := components.NewRigidbody()
	rb.Velocity = rl.Vector3{
		X: symmetric(rng.Float32, m.tuning.LaunchSpeed),
		Y: symmetric(rng.Float32, m.tuning.LaunchSpeed),
		Z: symmetric(rng.Float32, m.tuning.LaunchSpeed),
	}
	rb.AngularVelocity = rl.Vector3{
		X: symmetric(rng.Float32, m.tuning.SpinSpeed),
		Y: symmetric(rng.Float32, m.tuning.SpinSpeed),
		Z: symmetric(rng.Float32, m.tuning.SpinSpeed),
	}
	obj.AddComponent(rb)

	m.scene.AddGameObject(obj)
	m.world.AddBody(obj)
	obj.Start()

	m.state.track(&Target{
		ID:     m.state.allocTargetID(),
		Object: obj,
		Body:   rb,
		Type:   tt,
	})

	m.state.SpawnTimer = 0
	m.state.SpawnInterval = m.tuning.SpawnInterval.Sample(rng.Float32)
	return true
}

// SyncAndPrune copies each body's position and orientation onto its visual
// (physics is the authority, the copy is strictly one-way) and retires
// targets that fell below the floor threshold. Reverse iteration keeps the
// pass stable while retiring.
func (m *Lifecycle) SyncAndPrune() {
	targets := m.state.targets
	for i := len(targets) - 1; i >= 0; i-- {
		t := targets[i]
		t.Object.Transform.Position = t.Body.Position
		t.Object.Transform.Rotation = t.Body.Rotation

		if t.Body.Position.Y < m.tuning.FloorY {
			m.Retire(t)
		}
	}
}

// Retire is the single teardown path shared by hit resolution and the
// out-of-bounds prune. The target leaves the tracking aggregate first, so a
// second caller in the same frame sees it already gone and backs off; the
// scene, physics world and GPU mesh are then released exactly once.
func (m *Lifecycle) Retire(t *Target) {
	if !m.state.untrack(t) {
		return
	}

	m.scene.RemoveGameObject(t.Object)
	m.world.RemoveBody(t.Object)

	if renderer := engine.GetComponent[*components.ModelRenderer](t.Object); renderer != nil {
		renderer.Unload()
	}
}

// RetireAll tears down every live target, used on session restart.
func (m *Lifecycle) RetireAll() {
	for len(m.state.targets) > 0 {
		m.Retire(m.state.targets[len(m.state.targets)-1])
	}
}

func symmetric(randFloat func() float32, magnitude float32) float32 {
	return (randFloat()*2 - 1) * magnitude
}
