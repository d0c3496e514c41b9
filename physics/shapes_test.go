package physics

import (
	"testing"

	"github.com/oliverbestmann/rigid"
	"github.com/oliverbestmann/rigid/gm"
	"github.com/stretchr/testify/require"
)

func requireAABBInDelta(t *testing.T, expected, actual gm.AABB) {
	t.Helper()

	for axis := range 3 {
		require.InDelta(t, expected.Min.Axis(axis), actual.Min.Axis(axis), 1e-9, "min %s", actual)
		require.InDelta(t, expected.Max.Axis(axis), actual.Max.Axis(axis), 1e-9, "max %s", actual)
	}
}

func TestBoxWorldAABB(t *testing.T) {
	col := BoxCollider(gm.Vec3{X: 2, Y: 1, Z: 1})

	tr := rigid.TransformFromTranslation(gm.Vec3{X: 1})
	requireAABBInDelta(t,
		gm.AABB{Min: gm.Vec3{X: -1, Y: -1, Z: -1}, Max: gm.Vec3{X: 3, Y: 1, Z: 1}},
		col.WorldAABB(tr),
	)

	rotated := rigid.TransformFromTranslation(gm.Vec3{}).WithRotation(gm.Vec3{Z: 90})
	requireAABBInDelta(t,
		gm.AABB{Min: gm.Vec3{X: -1, Y: -2, Z: -1}, Max: gm.Vec3{X: 1, Y: 2, Z: 1}},
		col.WorldAABB(rotated),
	)

	scaled := rigid.TransformFromTranslation(gm.Vec3{}).WithScale(gm.Vec3{X: -1, Y: 2, Z: 1})
	requireAABBInDelta(t,
		gm.AABB{Min: gm.Vec3{X: -2, Y: -2, Z: -1}, Max: gm.Vec3{X: 2, Y: 2, Z: 1}},
		col.WorldAABB(scaled),
	)
}

func TestSphereWorldAABBUsesLargestScale(t *testing.T) {
	col := SphereCollider(1)

	tr := rigid.TransformFromTranslation(gm.Vec3{}).WithScale(gm.Vec3{X: 1, Y: 3, Z: 2})
	requireAABBInDelta(t,
		gm.AABB{Min: gm.VecSplat(-3), Max: gm.VecSplat(3)},
		col.WorldAABB(tr),
	)
}

func TestCapsuleWorldAABB(t *testing.T) {
	col := CapsuleCollider(0.5, 1)

	tr := rigid.TransformFromTranslation(gm.Vec3{})
	requireAABBInDelta(t,
		gm.AABB{Min: gm.Vec3{X: -0.5, Y: -1.5, Z: -0.5}, Max: gm.Vec3{X: 0.5, Y: 1.5, Z: 0.5}},
		col.WorldAABB(tr),
	)

	// lying along the x axis
	rotated := tr.WithRotation(gm.Vec3{Z: 90})
	requireAABBInDelta(t,
		gm.AABB{Min: gm.Vec3{X: -1.5, Y: -0.5, Z: -0.5}, Max: gm.Vec3{X: 1.5, Y: 0.5, Z: 0.5}},
		col.WorldAABB(rotated),
	)
}

func TestShapeOffsetIsRotated(t *testing.T) {
	shape := BoxShape(gm.VecSplat(0.5)).WithOffset(gm.Vec3{X: 1})

	tr := rigid.TransformFromTranslation(gm.Vec3{Y: 10}).WithRotation(gm.Vec3{Z: 90})
	requireAABBInDelta(t,
		gm.AABBWithCenterAndHalfSize(gm.Vec3{Y: 11}, gm.VecSplat(0.5)),
		shape.WorldAABB(tr),
	)
}

func TestCompoundWorldAABB(t *testing.T) {
	col := CompoundCollider(
		SphereShape(1).WithOffset(gm.Vec3{X: -3}),
		BoxShape(gm.VecSplat(0.5)).WithOffset(gm.Vec3{Y: 2}),
	)

	require.True(t, col.IsCompound())
	require.Len(t, col.Shapes(), 2)

	requireAABBInDelta(t,
		gm.AABB{Min: gm.Vec3{X: -4, Y: -1, Z: -1}, Max: gm.Vec3{X: 0.5, Y: 2.5, Z: 1}},
		col.WorldAABB(rigid.TransformFromTranslation(gm.Vec3{})),
	)
}

func TestCapsuleAgainstBoxContact(t *testing.T) {
	w, pw := newTestWorld()

	spawnCollider(w, gm.Vec3{}, BoxCollider(gm.Vec3{X: 5, Y: 0.5, Z: 5}))
	spawnCollider(w, gm.Vec3{Y: 1.9}, CapsuleCollider(0.5, 1))

	pw.DetectCollisions(w)
	require.Len(t, pw.CollisionPairs(), 1)

	pair := pw.CollisionPairs()[0]
	require.InDelta(t, 1, pair.Normal.Y, 1e-9)
	require.InDelta(t, 0.1, pair.Penetration, 1e-9)
}

func TestShapeTypeString(t *testing.T) {
	require.Equal(t, "Capsule", ShapeCapsule.String())
	require.Equal(t, "Spring", ConstraintSpring.String())
	require.Equal(t, "Stay", CollisionStay.String())
}
