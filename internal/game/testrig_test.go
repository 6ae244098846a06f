package game

import (
	"math/rand"
	"testing"

	"dropshot/internal/components"
	"dropshot/internal/config"
	"dropshot/internal/engine"
	"dropshot/internal/physics"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// testVisualFactory builds targets without GPU resources so the suite runs
// headless. Colliders still match the type's shape and size.
func testVisualFactory(tt TargetType) *engine.GameObject {
	obj := engine.NewGameObject("TestTarget_" + tt.Name)
	switch tt.Shape {
	case ShapeSphere:
		obj.AddComponent(components.NewSphereCollider(tt.Size / 2))
	default:
		obj.AddComponent(components.NewBoxCollider(rl.Vector3{X: tt.Size, Y: tt.Size, Z: tt.Size}))
	}
	return obj
}

type testRig struct {
	tuning *config.Tuning
	state  *State
	scene  *engine.Scene
	phys   *physics.World
	life   *Lifecycle
	types  []TargetType
}

func newTestRig(t *testing.T) *testRig {
	t.Helper()
	tuning := config.Default()
	types, err := TypesFromConfig(tuning.TargetTypes)
	if err != nil {
		t.Fatalf("TypesFromConfig: %v", err)
	}

	state := NewState(tuning, rand.New(rand.NewSource(42)))
	scene := engine.NewScene("test")
	phys := physics.NewWorld()

	return &testRig{
		tuning: tuning,
		state:  state,
		scene:  scene,
		phys:   phys,
		life:   NewLifecycle(state, scene, phys, tuning, types, testVisualFactory),
		types:  types,
	}
}

// spawnOne forces cadence eligibility and spawns a single target.
func (r *testRig) spawnOne(t *testing.T) *Target {
	t.Helper()
	r.state.SpawnTimer = r.state.SpawnInterval
	if !r.life.Spawn() {
		t.Fatal("Spawn() failed with cadence satisfied and cap free")
	}
	return r.state.targets[len(r.state.targets)-1]
}

func (r *testRig) typeNamed(t *testing.T, name string) TargetType {
	t.Helper()
	for _, tt := range r.types {
		if tt.Name == name {
			return tt
		}
	}
	t.Fatalf("no target type named %s", name)
	return TargetType{}
}
