package gm

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAABB_Overlaps(t *testing.T) {
	a := AABBWithCenterAndHalfSize(VecZero, VecSplat(0.5))

	require.True(t, a.Overlaps(a.Translate(Vec3{X: 0.9})))
	require.True(t, a.Overlaps(a.Translate(Vec3{X: 1.0})), "touching boxes overlap")
	require.False(t, a.Overlaps(a.Translate(Vec3{X: 1.1})))
}

func TestAABB_Union(t *testing.T) {
	a := AABBWithPoints(Vec3{X: 1, Y: 1, Z: 1}, VecZero)
	b := AABBWithPoints(Vec3{X: -1}, Vec3{X: -2, Y: 3})

	u := a.Union(b)
	require.Equal(t, Vec3{X: -2}, u.Min)
	require.Equal(t, Vec3{X: 1, Y: 3, Z: 1}, u.Max)
	require.Equal(t, Vec3{X: -0.5, Y: 1.5, Z: 0.5}, u.Center())
}

func TestAABB_ClosestPoint(t *testing.T) {
	a := AABBWithCenterAndHalfSize(VecZero, VecOne)
	require.Equal(t, Vec3{X: 1, Y: 0.5, Z: -1}, a.ClosestPoint(Vec3{X: 4, Y: 0.5, Z: -3}))
	require.True(t, a.Contains(Vec3{X: 1}))
	require.Equal(t, Vec3{X: 2, Y: 3, Z: 4}, a.Expand(Vec3{X: 0, Y: 1, Z: 2}).HalfSize().Add(Vec3{X: 1, Y: 1, Z: 1}))
}
