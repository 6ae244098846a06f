package game

import (
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func TestSpawnRequiresCadence(t *testing.T) {
	rig := newTestRig(t)
	rig.state.SpawnTimer = rig.state.SpawnInterval / 2

	if rig.life.Spawn() {
		t.Error("Spawn() should fail before the interval elapses")
	}
	if rig.state.TargetCount() != 0 {
		t.Errorf("TargetCount = %d after failed spawn, want 0", rig.state.TargetCount())
	}
}

func TestSpawnRespectsPopulationCap(t *testing.T) {
	rig := newTestRig(t)

	for range rig.tuning.MaxTargets {
		rig.spawnOne(t)
	}

	rig.state.SpawnTimer = rig.state.SpawnInterval
	if rig.life.Spawn() {
		t.Error("Spawn() should fail at the population cap")
	}
	if rig.state.TargetCount() != rig.tuning.MaxTargets {
		t.Errorf("TargetCount = %d, want %d", rig.state.TargetCount(), rig.tuning.MaxTargets)
	}
}

func TestSpawnAssignsUniqueIDs(t *testing.T) {
	rig := newTestRig(t)
	seen := make(map[uint64]bool)

	for range rig.tuning.MaxTargets {
		target := rig.spawnOne(t)
		if seen[target.ID] {
			t.Errorf("Duplicate target ID %d", target.ID)
		}
		seen[target.ID] = true
	}
}

func TestSpawnPositionWithinRanges(t *testing.T) {
	rig := newTestRig(t)

	for range rig.tuning.MaxTargets {
		target := rig.spawnOne(t)
		pos := target.Body.Position
		if pos.X < rig.tuning.SpawnX.Min || pos.X > rig.tuning.SpawnX.Max {
			t.Errorf("Spawn X = %v outside [%v,%v]", pos.X, rig.tuning.SpawnX.Min, rig.tuning.SpawnX.Max)
		}
		if pos.Y < rig.tuning.SpawnY.Min || pos.Y > rig.tuning.SpawnY.Max {
			t.Errorf("Spawn Y = %v outside [%v,%v]", pos.Y, rig.tuning.SpawnY.Min, rig.tuning.SpawnY.Max)
		}
		if pos.Z < rig.tuning.SpawnZ.Min || pos.Z > rig.tuning.SpawnZ.Max {
			t.Errorf("Spawn Z = %v outside [%v,%v]", pos.Z, rig.tuning.SpawnZ.Min, rig.tuning.SpawnZ.Max)
		}
	}
}

func TestSpawnResetsCadence(t *testing.T) {
	rig := newTestRig(t)
	rig.spawnOne(t)

	if rig.state.SpawnTimer != 0 {
		t.Errorf("SpawnTimer = %v after spawn, want 0", rig.state.SpawnTimer)
	}
	min, max := rig.tuning.SpawnInterval.Min, rig.tuning.SpawnInterval.Max
	if rig.state.SpawnInterval < min || rig.state.SpawnInterval > max {
		t.Errorf("SpawnInterval = %v outside [%v,%v]", rig.state.SpawnInterval, min, max)
	}
}

func TestSpawnRegistersEverywhere(t *testing.T) {
	rig := newTestRig(t)
	target := rig.spawnOne(t)

	if !rig.scene.Contains(target.Object) {
		t.Error("Spawned target missing from scene")
	}
	if !rig.phys.Contains(target.Object) {
		t.Error("Spawned target missing from physics world")
	}
	if rig.state.LookupByObject(target.Object.UID) != target {
		t.Error("Spawned target missing from the visual index")
	}
}

func TestCapNeverExceededUnderAdvance(t *testing.T) {
	rig := newTestRig(t)

	// Drive the cadence hard for a simulated minute.
	for i := 0; i < 3600; i++ {
		rig.life.Advance(1.0 / 60.0)
		if rig.state.TargetCount() > rig.tuning.MaxTargets {
			t.Fatalf("TargetCount = %d exceeds cap %d", rig.state.TargetCount(), rig.tuning.MaxTargets)
		}
	}
}

func TestSyncCopiesBodyToVisual(t *testing.T) {
	rig := newTestRig(t)
	target := rig.spawnOne(t)

	target.Body.Position = rl.Vector3{X: 1, Y: 2, Z: 3}
	target.Body.Rotation = rl.Vector3{Y: 45}
	rig.life.SyncAndPrune()

	if target.Object.Transform.Position != target.Body.Position {
		t.Errorf("Visual position %v, want body position %v", target.Object.Transform.Position, target.Body.Position)
	}
	if target.Object.Transform.Rotation != target.Body.Rotation {
		t.Errorf("Visual rotation %v, want body rotation %v", target.Object.Transform.Rotation, target.Body.Rotation)
	}
}

func TestPruneBelowFloor(t *testing.T) {
	rig := newTestRig(t)
	target := rig.spawnOne(t)
	survivor := rig.spawnOne(t)

	target.Body.Position.Y = rig.tuning.FloorY - 1
	rig.life.SyncAndPrune()

	if rig.state.TargetCount() != 1 {
		t.Fatalf("TargetCount = %d after prune, want 1", rig.state.TargetCount())
	}
	if rig.state.targets[0] != survivor {
		t.Error("Prune removed the wrong target")
	}
	assertFullyRetired(t, rig, target)
}

func TestPruneAllDuringIteration(t *testing.T) {
	rig := newTestRig(t)
	for i := 0; i < 5; i++ {
		rig.spawnOne(t)
	}

	for _, target := range rig.state.targets {
		target.Body.Position.Y = rig.tuning.FloorY - 1
	}
	rig.life.SyncAndPrune()

	if rig.state.TargetCount() != 0 {
		t.Errorf("TargetCount = %d after pruning all, want 0", rig.state.TargetCount())
	}
}

func TestRetireIsIdempotent(t *testing.T) {
	rig := newTestRig(t)
	target := rig.spawnOne(t)
	other := rig.spawnOne(t)

	rig.life.Retire(target)
	rig.life.Retire(target) // second call must back off

	if rig.state.TargetCount() != 1 {
		t.Errorf("TargetCount = %d, want 1 (double retire must not touch others)", rig.state.TargetCount())
	}
	if rig.state.targets[0] != other {
		t.Error("Double retire removed the wrong target")
	}
}

// A target retired by the hit path cannot also be pruned in the same frame.
func TestHitRetireAndPruneAreMutuallyExclusive(t *testing.T) {
	rig := newTestRig(t)
	target := rig.spawnOne(t)
	target.Body.Position.Y = rig.tuning.FloorY - 1 // would qualify for pruning

	rig.life.Retire(target) // hit path wins first
	rig.life.SyncAndPrune() // prune pass must not see it again

	if rig.state.TargetCount() != 0 {
		t.Errorf("TargetCount = %d, want 0", rig.state.TargetCount())
	}
	assertFullyRetired(t, rig, target)
}

func TestSpawnThenPruneRoundTrip(t *testing.T) {
	rig := newTestRig(t)
	before := rig.state.TargetCount()

	target := rig.spawnOne(t)
	target.Body.Position.Y = rig.tuning.FloorY - 1
	rig.life.SyncAndPrune()

	if rig.state.TargetCount() != before {
		t.Errorf("TargetCount = %d, want %d (round trip)", rig.state.TargetCount(), before)
	}
}

func TestRetireAll(t *testing.T) {
	rig := newTestRig(t)
	for i := 0; i < 6; i++ {
		rig.spawnOne(t)
	}

	rig.life.RetireAll()

	if rig.state.TargetCount() != 0 {
		t.Errorf("TargetCount = %d after RetireAll, want 0", rig.state.TargetCount())
	}
	if len(rig.scene.GameObjects) != 0 {
		t.Errorf("Scene still holds %d objects", len(rig.scene.GameObjects))
	}
	if rig.phys.BodyCount() != 0 {
		t.Errorf("Physics world still holds %d bodies", rig.phys.BodyCount())
	}
}

// assertFullyRetired checks the "no dangling cross-references" invariant.
func assertFullyRetired(t *testing.T, rig *testRig, target *Target) {
	t.Helper()
	for _, tracked := range rig.state.targets {
		if tracked == target {
			t.Error("Retired target still tracked")
		}
	}
	if rig.state.LookupByObject(target.Object.UID) != nil {
		t.Error("Retired target still in the visual index")
	}
	if rig.scene.Contains(target.Object) {
		t.Error("Retired target still in the scene")
	}
	if rig.phys.Contains(target.Object) {
		t.Error("Retired target still in the physics world")
	}
}
