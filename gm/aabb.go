package gm

import (
	"fmt"
)

// AABB is an axis aligned bounding box in world or local space.
type AABB struct {
	Min, Max Vec3
}

func AABBWithPoints(a, b Vec3) AABB {
	return AABB{
		Min: a.Min(b),
		Max: a.Max(b),
	}
}

func AABBWithCenterAndHalfSize(center, halfSize Vec3) AABB {
	return AABB{
		Min: center.Sub(halfSize),
		Max: center.Add(halfSize),
	}
}

func (b AABB) Center() Vec3 {
	return b.Min.Add(b.Max).Mul(0.5)
}

func (b AABB) Size() Vec3 {
	return b.Max.Sub(b.Min)
}

func (b AABB) HalfSize() Vec3 {
	return b.Size().Mul(0.5)
}

// Union returns the smallest box containing both boxes.
func (b AABB) Union(other AABB) AABB {
	return AABB{
		Min: b.Min.Min(other.Min),
		Max: b.Max.Max(other.Max),
	}
}

// Expand grows the box by the given amount on each side.
func (b AABB) Expand(amount Vec3) AABB {
	return AABB{
		Min: b.Min.Sub(amount),
		Max: b.Max.Add(amount),
	}
}

func (b AABB) Translate(offset Vec3) AABB {
	return AABB{
		Min: b.Min.Add(offset),
		Max: b.Max.Add(offset),
	}
}

// Overlaps reports whether both boxes intersect. Touching boxes overlap.
func (b AABB) Overlaps(other AABB) bool {
	return b.Min.X <= other.Max.X && b.Max.X >= other.Min.X &&
		b.Min.Y <= other.Max.Y && b.Max.Y >= other.Min.Y &&
		b.Min.Z <= other.Max.Z && b.Max.Z >= other.Min.Z
}

func (b AABB) Contains(p Vec3) bool {
	return b.Min.X <= p.X && p.X <= b.Max.X &&
		b.Min.Y <= p.Y && p.Y <= b.Max.Y &&
		b.Min.Z <= p.Z && p.Z <= b.Max.Z
}

// ClosestPoint clamps the point into the box.
func (b AABB) ClosestPoint(p Vec3) Vec3 {
	return p.Max(b.Min).Min(b.Max)
}

func (b AABB) String() string {
	return fmt.Sprintf("AABB(min=%s, max=%s)", b.Min, b.Max)
}
