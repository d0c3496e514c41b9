package physics

import (
	"math"

	"github.com/oliverbestmann/rigid"
	"github.com/oliverbestmann/rigid/gm"
	"github.com/oliverbestmann/rigid/physics/collision"
)

// worldShape is a shape placed into world space by a transform.
type worldShape struct {
	Type    ShapeType
	AABB    gm.AABB
	Sphere  collision.Sphere
	Capsule collision.Capsule
}

// WorldAABB returns the bounding box of the shape after applying the
// transform, including its non uniform scale and rotation.
func (s Shape) WorldAABB(tr rigid.Transform) gm.AABB {
	return s.toWorld(tr).AABB
}

func (s Shape) toWorld(tr rigid.Transform) worldShape {
	center := tr.TransformPoint(s.Offset)
	scale := tr.Scale.Abs()

	switch s.Type {
	case ShapeSphere:
		sphere := collision.Sphere{
			Center: center,
			Radius: s.Radius * scale.MaxComponent(),
		}

		return worldShape{Type: ShapeSphere, Sphere: sphere, AABB: sphere.AABB()}

	case ShapeCapsule:
		axis := tr.RotationMatrix().Transform(gm.Vec3{Y: s.HalfHeight * scale.Y})

		capsule := collision.Capsule{
			A:      center.Sub(axis),
			B:      center.Add(axis),
			Radius: s.Radius * math.Max(scale.X, scale.Z),
		}

		return worldShape{Type: ShapeCapsule, Capsule: capsule, AABB: capsule.AABB()}

	default:
		halfSize := s.HalfExtents.MulEach(scale)

		if !tr.Rotation.IsZero() {
			// extent of the rotated box projected onto the world axes
			rot := tr.RotationMatrix()
			halfSize = gm.Vec3{
				X: rot.XAxis.Abs().Dot(halfSize),
				Y: rot.YAxis.Abs().Dot(halfSize),
				Z: rot.ZAxis.Abs().Dot(halfSize),
			}
		}

		return worldShape{Type: ShapeBox, AABB: gm.AABBWithCenterAndHalfSize(center, halfSize)}
	}
}

// testShapes runs the narrow phase test matching both shape types.
// The contact normal points from a to b.
func testShapes(a, b worldShape) (collision.Contact, bool) {
	switch a.Type {
	case ShapeSphere:
		switch b.Type {
		case ShapeSphere:
			return collision.TestSpheres(a.Sphere, b.Sphere)
		case ShapeCapsule:
			return flipped(collision.TestCapsuleSphere(b.Capsule, a.Sphere))
		default:
			return collision.TestSphereAABB(a.Sphere, b.AABB)
		}

	case ShapeCapsule:
		switch b.Type {
		case ShapeSphere:
			return collision.TestCapsuleSphere(a.Capsule, b.Sphere)
		case ShapeCapsule:
			return collision.TestCapsules(a.Capsule, b.Capsule)
		default:
			return collision.TestCapsuleAABB(a.Capsule, b.AABB)
		}

	default:
		switch b.Type {
		case ShapeSphere:
			return flipped(collision.TestSphereAABB(b.Sphere, a.AABB))
		case ShapeCapsule:
			return flipped(collision.TestCapsuleAABB(b.Capsule, a.AABB))
		default:
			normal, penetration, ok := collision.TestAABB(a.AABB, b.AABB)
			return collision.Contact{Normal: normal, Penetration: penetration}, ok
		}
	}
}

// testColliders runs the narrow phase for two colliders. Two simple boxes are
// tested using their world boxes. Everything else tests all pairs of sub
// shapes and reports the deepest contact.
func testColliders(colA *Collider, trA rigid.Transform, aabbA gm.AABB, colB *Collider, trB rigid.Transform, aabbB gm.AABB) (collision.Contact, bool) {
	if !colA.IsCompound() && !colB.IsCompound() && colA.Shape.Type == ShapeBox && colB.Shape.Type == ShapeBox {
		normal, penetration, ok := collision.TestAABB(aabbA, aabbB)
		return collision.Contact{Normal: normal, Penetration: penetration}, ok
	}

	var deepest collision.Contact
	var found bool

	for _, shapeA := range colA.Shapes() {
		worldA := shapeA.toWorld(trA)
		if !worldA.AABB.Overlaps(aabbB) {
			continue
		}

		for _, shapeB := range colB.Shapes() {
			worldB := shapeB.toWorld(trB)
			if !worldA.AABB.Overlaps(worldB.AABB) {
				continue
			}

			contact, ok := testShapes(worldA, worldB)
			if !ok {
				continue
			}

			if !found || contact.Penetration > deepest.Penetration {
				deepest = contact
				found = true
			}
		}
	}

	return deepest, found
}

func flipped(contact collision.Contact, ok bool) (collision.Contact, bool) {
	return contact.Flipped(), ok
}
