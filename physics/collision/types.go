package collision

import "github.com/oliverbestmann/rigid/gm"

// HitResult describes where a ray hit a shape.
type HitResult struct {
	Hit      bool
	Distance float64
	Point    gm.Vec3
	Normal   gm.Vec3
}

type Sphere struct {
	Center gm.Vec3
	Radius float64
}

func (s Sphere) AABB() gm.AABB {
	return gm.AABBWithCenterAndHalfSize(s.Center, gm.VecSplat(s.Radius))
}

// Capsule is a line segment from A to B, inflated by Radius.
type Capsule struct {
	A, B   gm.Vec3
	Radius float64
}

func (c Capsule) AABB() gm.AABB {
	return gm.AABBWithPoints(c.A, c.B).Expand(gm.VecSplat(c.Radius))
}

// Contact is the result of an overlap test.
type Contact struct {
	Normal      gm.Vec3
	Penetration float64
}

// Flipped returns the contact as seen from the other shape.
func (c Contact) Flipped() Contact {
	return Contact{Normal: c.Normal.Neg(), Penetration: c.Penetration}
}
