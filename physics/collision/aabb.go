package collision

import "github.com/oliverbestmann/rigid/gm"

// OverlapAABB reports whether both boxes intersect. Touching boxes overlap.
func OverlapAABB(a, b gm.AABB) bool {
	return a.Overlaps(b)
}

// TestAABB tests two boxes for overlap. On overlap it returns the axis of
// least penetration as normal (pointing from a to b) and the overlap along
// that axis.
func TestAABB(a, b gm.AABB) (normal gm.Vec3, penetration float64, ok bool) {
	if !a.Overlaps(b) {
		return gm.Vec3{}, 0, false
	}

	diff := b.Center().Sub(a.Center())
	overlap := a.HalfSize().Add(b.HalfSize()).Sub(diff.Abs())

	switch {
	case overlap.X < overlap.Y && overlap.X < overlap.Z:
		return gm.Vec3{X: sign(diff.X)}, overlap.X, true

	case overlap.Y < overlap.Z:
		return gm.Vec3{Y: sign(diff.Y)}, overlap.Y, true

	default:
		return gm.Vec3{Z: sign(diff.Z)}, overlap.Z, true
	}
}

func sign(value float64) float64 {
	if value > 0 {
		return 1
	}

	return -1
}
