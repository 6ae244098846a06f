package physics

import (
	"dropshot/internal/components"
	"dropshot/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Ground is a finite static slab. Bodies over the slab bounce on it; bodies
// past its edge keep falling, which is what feeds the out-of-bounds prune.
type Ground struct {
	Y          float32
	HalfExtent float32
}

// World simulates the dynamic bodies attached to scene objects. It is stepped
// at a fixed rate and is the only writer of Rigidbody position and rotation.
type World struct {
	Gravity rl.Vector3
	Ground  Ground
	objects []*engine.GameObject

	accumulator float32
}

func NewWorld() *World {
	return &World{
		Gravity: rl.Vector3{X: 0, Y: -9.82, Z: 0},
		Ground:  Ground{Y: 0, HalfExtent: 30},
		objects: make([]*engine.GameObject, 0),
	}
}

func (w *World) AddBody(g *engine.GameObject) {
	rb := engine.GetComponent[*components.Rigidbody](g)
	if rb == nil {
		return
	}
	// Body starts where the object was placed.
	rb.Position = g.Transform.Position
	rb.Rotation = g.Transform.Rotation
	w.objects = append(w.objects, g)
}

func (w *World) RemoveBody(g *engine.GameObject) {
	for i, obj := range w.objects {
		if obj == g {
			w.objects = append(w.objects[:i], w.objects[i+1:]...)
			return
		}
	}
}

func (w *World) Contains(g *engine.GameObject) bool {
	for _, obj := range w.objects {
		if obj == g {
			return true
		}
	}
	return false
}

func (w *World) BodyCount() int {
	return len(w.objects)
}

// Step advances the simulation by realDt using fixed substeps of fixedDt,
// at most maxSubsteps per call. Leftover time stays in the accumulator so
// slow frames don't speed up the simulation.
func (w *World) Step(fixedDt, realDt float32, maxSubsteps int) {
	w.accumulator += realDt
	steps := 0
	for w.accumulator >= fixedDt && steps < maxSubsteps {
		w.integrate(fixedDt)
		w.accumulator -= fixedDt
		steps++
	}
	if w.accumulator > fixedDt {
		// Can't catch up this frame; drop the excess instead of spiraling.
		w.accumulator = fixedDt
	}
}

func (w *World) integrate(dt float32) {
	for _, obj := range w.objects {
		rb := engine.GetComponent[*components.Rigidbody](obj)
		if rb == nil {
			continue
		}

		if rb.UseGravity {
			rb.Velocity = rl.Vector3Add(rb.Velocity, rl.Vector3Scale(w.Gravity, dt))
		}

		rb.Position = rl.Vector3Add(rb.Position, rl.Vector3Scale(rb.Velocity, dt))
		rb.Rotation = rl.Vector3Add(rb.Rotation, rl.Vector3Scale(rb.AngularVelocity, dt))

		// Time-based angular damping so it's framerate independent.
		damping := float32(1.0) - (1.0-rb.AngularDamping)*dt*60
		if damping < 0 {
			damping = 0
		}
		rb.AngularVelocity = rl.Vector3Scale(rb.AngularVelocity, damping)

		w.resolveGroundContact(obj, rb)
	}
}

func (w *World) resolveGroundContact(obj *engine.GameObject, rb *components.Rigidbody) {
	if rb.Position.X < -w.Ground.HalfExtent || rb.Position.X > w.Ground.HalfExtent ||
		rb.Position.Z < -w.Ground.HalfExtent || rb.Position.Z > w.Ground.HalfExtent {
		return
	}

	bottom := rb.Position.Y - bodyHalfHeight(obj)
	if bottom >= w.Ground.Y || rb.Velocity.Y > 0 {
		return
	}

	rb.Position.Y += w.Ground.Y - bottom
	rb.Velocity.Y = -rb.Velocity.Y * rb.Bounciness

	// Kill tiny rebounds so settled bodies stop jittering.
	if rb.Velocity.Y < 0.1 && rb.Velocity.Y > -0.1 {
		rb.Velocity.Y = 0
	}

	frictionDamp := 1.0 - rb.Friction
	rb.Velocity.X *= frictionDamp
	rb.Velocity.Z *= frictionDamp
}

// bodyHalfHeight derives the vertical half extent from whichever collider the
// object carries, defaulting to a half-unit body.
func bodyHalfHeight(obj *engine.GameObject) float32 {
	if box := engine.GetComponent[*components.BoxCollider](obj); box != nil {
		return box.Size.Y / 2
	}
	if sphere := engine.GetComponent[*components.SphereCollider](obj); sphere != nil {
		return sphere.Radius
	}
	return 0.5
}
