package physics

import (
	"math"

	"github.com/oliverbestmann/rigid"
)

// ResolveGroundCollisions keeps awake dynamic bodies above the ground plane.
// A body below the plane is lifted onto it and its downward velocity is
// reflected with the restitution of the body. Small bounces are snapped to
// rest and horizontal movement is slowed down by friction.
func (pw *World) ResolveGroundCollisions(w *rigid.World) {
	if !pw.groundEnabled {
		return
	}

	bodies := rigid.GetComponentArray[RigidBody](w)
	transforms := rigid.GetComponentArray[rigid.Transform](w)
	colliders := rigid.GetComponentArray[Collider](w)

	for idx := range bodies.Size() {
		rb := bodies.Data(idx)
		if !rb.isAwakeDynamic() {
			continue
		}

		entity := bodies.GetEntity(idx)

		tr := transforms.Get(entity)
		if tr == nil {
			continue
		}

		col := colliders.Get(entity)

		bottom := tr.Translation.Y
		if col != nil {
			if col.IsTrigger {
				continue
			}

			bottom = col.WorldAABB(*tr).Min.Y
		}

		if bottom >= pw.groundHeight {
			continue
		}

		tr.Translation.Y += pw.groundHeight - bottom

		if rb.Velocity.Y < 0 {
			rb.Velocity.Y = -rb.Velocity.Y * restitutionOf(rb, col)

			if math.Abs(rb.Velocity.Y) < pw.config.GroundRestThreshold {
				rb.Velocity.Y = 0
			}
		}

		slowdown := math.Max(0, 1-frictionOf(rb, col)*pw.config.GroundFrictionFactor)
		rb.Velocity.X *= slowdown
		rb.Velocity.Z *= slowdown
	}
}
