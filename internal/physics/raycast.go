package physics

import (
	"math"

	"dropshot/internal/components"
	"dropshot/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

type RaycastHit struct {
	Object   *engine.GameObject
	Point    rl.Vector3
	Normal   rl.Vector3
	Distance float32
}

// RaycastObjects tests the ray against the colliders of exactly the given
// objects and returns the closest hit. Colliders are evaluated at the visual
// transform, so the pick matches what is on screen.
func RaycastObjects(objects []*engine.GameObject, origin, direction rl.Vector3, maxDistance float32) (RaycastHit, bool) {
	direction = rl.Vector3Normalize(direction)
	closest := RaycastHit{Distance: maxDistance}
	hit := false

	for _, obj := range objects {
		if box := engine.GetComponent[*components.BoxCollider](obj); box != nil {
			if info, ok := raycastBox(origin, direction, box, maxDistance); ok && info.Distance < closest.Distance {
				closest = info
				closest.Object = obj
				hit = true
			}
		}
		if sphere := engine.GetComponent[*components.SphereCollider](obj); sphere != nil {
			if info, ok := raycastSphere(origin, direction, sphere, maxDistance); ok && info.Distance < closest.Distance {
				closest = info
				closest.Object = obj
				hit = true
			}
		}
	}

	return closest, hit
}

func raycastBox(origin, direction rl.Vector3, box *components.BoxCollider, maxDistance float32) (RaycastHit, bool) {
	center := box.WorldCenter()
	half := box.HalfExtents()

	min := rl.Vector3{X: center.X - half.X, Y: center.Y - half.Y, Z: center.Z - half.Z}
	max := rl.Vector3{X: center.X + half.X, Y: center.Y + half.Y, Z: center.Z + half.Z}

	var tmin, tmax float32

	// X slab
	if direction.X != 0 {
		t1 := (min.X - origin.X) / direction.X
		t2 := (max.X - origin.X) / direction.X
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		tmin = t1
		tmax = t2
	} else if origin.X < min.X || origin.X > max.X {
		return RaycastHit{}, false
	} else {
		tmin = -1e30
		tmax = 1e30
	}

	// Y slab
	if direction.Y != 0 {
		t1 := (min.Y - origin.Y) / direction.Y
		t2 := (max.Y - origin.Y) / direction.Y
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		if t1 > tmin {
			tmin = t1
		}
		if t2 < tmax {
			tmax = t2
		}
	} else if origin.Y < min.Y || origin.Y > max.Y {
		return RaycastHit{}, false
	}

	if tmin > tmax {
		return RaycastHit{}, false
	}

	// Z slab
	if direction.Z != 0 {
		t1 := (min.Z - origin.Z) / direction.Z
		t2 := (max.Z - origin.Z) / direction.Z
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		if t1 > tmin {
			tmin = t1
		}
		if t2 < tmax {
			tmax = t2
		}
	} else if origin.Z < min.Z || origin.Z > max.Z {
		return RaycastHit{}, false
	}

	if tmin > tmax || tmax < 0 || tmin > maxDistance {
		return RaycastHit{}, false
	}

	t := tmin
	if t < 0 {
		t = tmax
	}
	if t < 0 || t > maxDistance {
		return RaycastHit{}, false
	}

	point := rl.Vector3Add(origin, rl.Vector3Scale(direction, t))

	// Normal from whichever face the hit landed on.
	var normal rl.Vector3
	epsilon := float32(0.001)
	switch {
	case absf(point.X-min.X) < epsilon:
		normal = rl.Vector3{X: -1}
	case absf(point.X-max.X) < epsilon:
		normal = rl.Vector3{X: 1}
	case absf(point.Y-min.Y) < epsilon:
		normal = rl.Vector3{Y: -1}
	case absf(point.Y-max.Y) < epsilon:
		normal = rl.Vector3{Y: 1}
	case absf(point.Z-min.Z) < epsilon:
		normal = rl.Vector3{Z: -1}
	default:
		normal = rl.Vector3{Z: 1}
	}

	return RaycastHit{Point: point, Normal: normal, Distance: t}, true
}

func raycastSphere(origin, direction rl.Vector3, sphere *components.SphereCollider, maxDistance float32) (RaycastHit, bool) {
	center := sphere.WorldCenter()
	radius := sphere.Radius

	oc := rl.Vector3Subtract(origin, center)
	a := rl.Vector3DotProduct(direction, direction)
	b := 2.0 * rl.Vector3DotProduct(oc, direction)
	c := rl.Vector3DotProduct(oc, oc) - radius*radius

	discriminant := b*b - 4*a*c
	if discriminant < 0 {
		return RaycastHit{}, false
	}

	t := (-b - float32(math.Sqrt(float64(discriminant)))) / (2 * a)
	if t < 0 {
		t = (-b + float32(math.Sqrt(float64(discriminant)))) / (2 * a)
	}
	if t < 0 || t > maxDistance {
		return RaycastHit{}, false
	}

	point := rl.Vector3Add(origin, rl.Vector3Scale(direction, t))
	normal := rl.Vector3Normalize(rl.Vector3Subtract(point, center))

	return RaycastHit{Point: point, Normal: normal, Distance: t}, true
}

func absf(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}
