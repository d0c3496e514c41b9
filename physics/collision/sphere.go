package collision

import (
	"math"

	"github.com/oliverbestmann/rigid/gm"
)

// TestPointSphere reports whether the point lies within the sphere.
func TestPointSphere(point gm.Vec3, sphere Sphere) bool {
	return point.Sub(sphere.Center).LengthSqr() <= sphere.Radius*sphere.Radius
}

// TestSpheres tests two spheres for overlap.
func TestSpheres(a, b Sphere) (Contact, bool) {
	delta := b.Center.Sub(a.Center)
	radii := a.Radius + b.Radius

	distSqr := delta.LengthSqr()
	if distSqr > radii*radii {
		return Contact{}, false
	}

	dist := math.Sqrt(distSqr)
	if dist < 1e-9 {
		// concentric, any direction separates them
		return Contact{Normal: gm.AxisY, Penetration: radii}, true
	}

	return Contact{
		Normal:      delta.Mul(1 / dist),
		Penetration: radii - dist,
	}, true
}

// TestSphereAABB tests a sphere against a box.
func TestSphereAABB(sphere Sphere, box gm.AABB) (Contact, bool) {
	closest := box.ClosestPoint(sphere.Center)
	delta := closest.Sub(sphere.Center)

	distSqr := delta.LengthSqr()
	if distSqr > sphere.Radius*sphere.Radius {
		return Contact{}, false
	}

	if distSqr > 1e-18 {
		dist := math.Sqrt(distSqr)
		return Contact{
			Normal:      delta.Mul(1 / dist),
			Penetration: sphere.Radius - dist,
		}, true
	}

	// the center is inside of the box, leave through the nearest face
	toMin := sphere.Center.Sub(box.Min)
	toMax := box.Max.Sub(sphere.Center)

	bestDist := math.Inf(1)
	var normal gm.Vec3

	for axis := range 3 {
		if d := toMin.Axis(axis); d < bestDist {
			// nearest face is the min face, the box lies in +axis direction
			bestDist = d
			normal = axisVec(axis, 1)
		}

		if d := toMax.Axis(axis); d < bestDist {
			bestDist = d
			normal = axisVec(axis, -1)
		}
	}

	return Contact{Normal: normal, Penetration: sphere.Radius + bestDist}, true
}
