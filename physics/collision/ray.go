package collision

import (
	"math"

	"github.com/oliverbestmann/rigid/gm"
)

// RaycastAABB intersects the ray with the box using the slab method.
// A ray starting inside the box reports the exit point.
func RaycastAABB(ray gm.Ray, box gm.AABB) HitResult {
	if ray.Direction.IsZero() {
		return HitResult{}
	}

	tNear := math.Inf(-1)
	tFar := math.Inf(1)

	// axis index and sign of the slab that was entered last
	nearAxis := -1
	var nearSign float64

	for axis := range 3 {
		origin := ray.Origin.Axis(axis)
		dir := ray.Direction.Axis(axis)
		lo, hi := box.Min.Axis(axis), box.Max.Axis(axis)

		if math.Abs(dir) < 1e-12 {
			// parallel to the slab, must already be in between
			if origin < lo || origin > hi {
				return HitResult{}
			}

			continue
		}

		t1 := (lo - origin) / dir
		t2 := (hi - origin) / dir

		// the face we enter through faces against the ray
		faceSign := -1.0
		if t1 > t2 {
			t1, t2 = t2, t1
			faceSign = 1.0
		}

		if t1 > tNear {
			tNear = t1
			nearAxis = axis
			nearSign = faceSign
		}

		tFar = min(tFar, t2)
	}

	if tNear > tFar || tFar < 0 {
		return HitResult{}
	}

	result := HitResult{Hit: true}

	if tNear >= 0 {
		result.Distance = tNear
		result.Normal = axisVec(nearAxis, nearSign)
	} else {
		// started inside of the box
		result.Distance = tFar
		result.Normal = ray.Direction.Neg()
	}

	result.Point = ray.At(result.Distance)
	return result
}

// RaycastPlane intersects the ray with the horizontal plane y = height.
func RaycastPlane(ray gm.Ray, height float64) HitResult {
	if math.Abs(ray.Direction.Y) < 1e-6 {
		return HitResult{}
	}

	t := (height - ray.Origin.Y) / ray.Direction.Y
	if t < 0 {
		return HitResult{}
	}

	return HitResult{
		Hit:      true,
		Distance: t,
		Point:    ray.At(t),
		Normal:   gm.AxisY,
	}
}

// RaycastSphere intersects the ray with the sphere.
// The direction of the ray must be normalized.
func RaycastSphere(ray gm.Ray, sphere Sphere) HitResult {
	oc := ray.Origin.Sub(sphere.Center)

	b := oc.Dot(ray.Direction)
	c := oc.LengthSqr() - sphere.Radius*sphere.Radius

	// origin outside and pointing away
	if c > 0 && b > 0 {
		return HitResult{}
	}

	discriminant := b*b - c
	if discriminant < 0 {
		return HitResult{}
	}

	t := -b - math.Sqrt(discriminant)
	if t < 0 {
		// started inside of the sphere
		t = -b + math.Sqrt(discriminant)
	}

	point := ray.At(t)

	return HitResult{
		Hit:      true,
		Distance: t,
		Point:    point,
		Normal:   point.Sub(sphere.Center).Normalized(),
	}
}

func axisVec(axis int, value float64) gm.Vec3 {
	switch axis {
	case 0:
		return gm.Vec3{X: value}
	case 1:
		return gm.Vec3{Y: value}
	default:
		return gm.Vec3{Z: value}
	}
}
