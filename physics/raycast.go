package physics

import (
	"github.com/oliverbestmann/rigid"
	"github.com/oliverbestmann/rigid/gm"
	"github.com/oliverbestmann/rigid/physics/collision"
)

// Raycast returns the nearest collider hit by the ray within the configured
// maximum distance, together with the entity that was hit. The direction of
// the ray does not need to be normalized.
func (pw *World) Raycast(w *rigid.World, ray gm.Ray) (collision.HitResult, rigid.EntityId) {
	return pw.RaycastLayers(w, ray, AllLayers)
}

// RaycastLayers works like Raycast but only considers colliders
// with at least one layer in the mask.
func (pw *World) RaycastLayers(w *rigid.World, ray gm.Ray, mask uint32) (collision.HitResult, rigid.EntityId) {
	ray.Direction = ray.Direction.Normalized()
	if ray.Direction.IsZero() {
		return collision.HitResult{}, rigid.NoEntityId
	}

	best := collision.HitResult{Distance: pw.config.RaycastMaxDistance}
	bestEntity := rigid.NoEntityId

	colliders := rigid.GetComponentArray[Collider](w)
	transforms := rigid.GetComponentArray[rigid.Transform](w)

	for idx := range colliders.Size() {
		col := colliders.Data(idx)

		if layer, _ := col.layers(); layer&mask == 0 {
			continue
		}

		entity := colliders.GetEntity(idx)

		tr := transforms.Get(entity)
		if tr == nil {
			continue
		}

		hit := raycastCollider(ray, col, *tr)
		if !hit.Hit || hit.Distance > best.Distance {
			continue
		}

		if best.Hit && hit.Distance == best.Distance {
			continue
		}

		best = hit
		bestEntity = entity
	}

	if !best.Hit {
		return collision.HitResult{}, rigid.NoEntityId
	}

	return best, bestEntity
}

// raycastCollider casts the ray against all shapes of the collider.
func raycastCollider(ray gm.Ray, col *Collider, tr rigid.Transform) collision.HitResult {
	var best collision.HitResult

	for _, shape := range col.Shapes() {
		world := shape.toWorld(tr)

		var hit collision.HitResult
		switch world.Type {
		case ShapeSphere:
			hit = collision.RaycastSphere(ray, world.Sphere)
		default:
			hit = collision.RaycastAABB(ray, world.AABB)
		}

		if hit.Hit && (!best.Hit || hit.Distance < best.Distance) {
			best = hit
		}
	}

	return best
}
