package game

import (
	"log"

	"dropshot/internal/audio"
	"dropshot/internal/physics"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	// MissSoundKey is played flat at reduced volume when a shot hits nothing.
	MissSoundKey = "miss"

	missVolume      = 0.5
	pickMaxDistance = 100.0
)

// HitOutcome reports what a shot did, for HUD feedback.
type HitOutcome struct {
	Hit    bool
	Points int
	Point  rl.Vector3
}

// HitResolver turns a pointer event into exactly one hit or miss outcome.
// At most one target is retired per shot; overlapping targets behind the
// nearest one are left alone.
type HitResolver struct {
	state *State
	life  *Lifecycle
}

func NewHitResolver(state *State, life *Lifecycle) *HitResolver {
	return &HitResolver{state: state, life: life}
}

// NormalizeToNDC maps client-space coordinates to device-independent [-1,1]
// with +Y up.
func NormalizeToNDC(x, y, width, height float32) (float32, float32) {
	nx := (2*x)/width - 1
	ny := 1 - (2*y)/height
	return nx, ny
}

// RayFromNDC unprojects a normalized pointer coordinate through the camera.
func RayFromNDC(nx, ny float32, camera rl.Camera3D, aspect, near, far float32) rl.Ray {
	view := rl.GetCameraMatrix(camera)
	proj := rl.MatrixPerspective(camera.Fovy*rl.Deg2rad, aspect, near, far)

	nearPoint := rl.Vector3Unproject(rl.Vector3{X: nx, Y: ny, Z: 0}, proj, view)
	farPoint := rl.Vector3Unproject(rl.Vector3{X: nx, Y: ny, Z: 1}, proj, view)

	return rl.Ray{
		Position:  camera.Position,
		Direction: rl.Vector3Normalize(rl.Vector3Subtract(farPoint, nearPoint)),
	}
}

// ShootAt resolves a pointer-down event at client coordinates against the
// current viewport.
func (h *HitResolver) ShootAt(pointer rl.Vector2, camera rl.Camera3D, width, height float32) HitOutcome {
	nx, ny := NormalizeToNDC(pointer.X, pointer.Y, width, height)
	ray := RayFromNDC(nx, ny, camera, width/height, 0.1, 1000.0)
	return h.ShootRay(ray)
}

// ShootRay picks against the visuals of the tracked targets only, resolves
// the nearest intersection back to its target, scores it, and retires it.
// A visual with no owning target is logged and treated as a miss.
func (h *HitResolver) ShootRay(ray rl.Ray) HitOutcome {
	hit, ok := physics.RaycastObjects(h.state.TargetObjects(), ray.Position, ray.Direction, pickMaxDistance)
	if !ok {
		return h.miss()
	}

	target := h.state.LookupByObject(hit.Object.UID)
	if target == nil {
		log.Printf("hit: picked object %q (uid %d) has no owning target, treating as miss", hit.Object.Name, hit.Object.UID)
		return h.miss()
	}

	earned := h.state.RecordHit(target.Type)
	point := hit.Point
	audio.Play(target.Type.SoundKey, audio.PlayOptions{At: &point})
	h.life.Retire(target)

	return HitOutcome{Hit: true, Points: earned, Point: point}
}

func (h *HitResolver) miss() HitOutcome {
	h.state.RecordMiss()
	audio.Play(MissSoundKey, audio.PlayOptions{Volume: missVolume})
	return HitOutcome{}
}
