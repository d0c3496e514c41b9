package collision

import (
	"math"

	"github.com/oliverbestmann/rigid/gm"
)

// ClosestPointOnSegment returns the point on segment ab closest to p.
func ClosestPointOnSegment(a, b, p gm.Vec3) gm.Vec3 {
	ab := b.Sub(a)

	lenSqr := ab.LengthSqr()
	if lenSqr < 1e-18 {
		return a
	}

	t := p.Sub(a).Dot(ab) / lenSqr
	t = max(0, min(1, t))

	return a.Add(ab.Mul(t))
}

// ClosestPointsOnSegments returns the closest points between segment p1q1 and
// segment p2q2.
func ClosestPointsOnSegments(p1, q1, p2, q2 gm.Vec3) (c1, c2 gm.Vec3) {
	d1 := q1.Sub(p1)
	d2 := q2.Sub(p2)
	r := p1.Sub(p2)

	a := d1.LengthSqr()
	e := d2.LengthSqr()
	f := d2.Dot(r)

	const eps = 1e-12

	var s, t float64

	switch {
	case a <= eps && e <= eps:
		// both segments degenerate into points
		return p1, p2

	case a <= eps:
		s = 0
		t = clamp01(f / e)

	default:
		c := d1.Dot(r)

		if e <= eps {
			t = 0
			s = clamp01(-c / a)
		} else {
			b := d1.Dot(d2)
			denom := a*e - b*b

			if denom > eps {
				s = clamp01((b*f - c*e) / denom)
			}

			t = (b*s + f) / e

			if t < 0 {
				t = 0
				s = clamp01(-c / a)
			} else if t > 1 {
				t = 1
				s = clamp01((b - c) / a)
			}
		}
	}

	return p1.Add(d1.Mul(s)), p2.Add(d2.Mul(t))
}

// TestCapsuleSphere tests a capsule against a sphere.
func TestCapsuleSphere(capsule Capsule, sphere Sphere) (Contact, bool) {
	closest := ClosestPointOnSegment(capsule.A, capsule.B, sphere.Center)
	return TestSpheres(Sphere{Center: closest, Radius: capsule.Radius}, sphere)
}

// TestCapsules tests two capsules against each other.
func TestCapsules(a, b Capsule) (Contact, bool) {
	c1, c2 := ClosestPointsOnSegments(a.A, a.B, b.A, b.B)
	return TestSpheres(Sphere{Center: c1, Radius: a.Radius}, Sphere{Center: c2, Radius: b.Radius})
}

// TestCapsuleAABB tests a capsule against a box.
//
// The point on the capsule's segment closest to the box is found by
// alternating closest point queries, which converges quickly for the
// convex box. The result is then tested like a sphere.
func TestCapsuleAABB(capsule Capsule, box gm.AABB) (Contact, bool) {
	onSegment := ClosestPointOnSegment(capsule.A, capsule.B, box.Center())

	for range 4 {
		onBox := box.ClosestPoint(onSegment)
		next := ClosestPointOnSegment(capsule.A, capsule.B, onBox)

		if next.Sub(onSegment).LengthSqr() < 1e-18 {
			break
		}

		onSegment = next
	}

	return TestSphereAABB(Sphere{Center: onSegment, Radius: capsule.Radius}, box)
}

func clamp01(value float64) float64 {
	return math.Max(0, math.Min(1, value))
}
