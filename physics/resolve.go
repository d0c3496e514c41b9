package physics

import (
	"math"

	"github.com/oliverbestmann/rigid"
	"github.com/oliverbestmann/rigid/gm"
)

// ResolveCollisions separates every non trigger pair found by the last
// detection pass and applies a normal impulse with restitution followed by
// a friction impulse. Contacts are processed once, in detection order.
func (pw *World) ResolveCollisions(w *rigid.World) {
	colliders := rigid.GetComponentArray[Collider](w)
	bodies := rigid.GetComponentArray[RigidBody](w)
	transforms := rigid.GetComponentArray[rigid.Transform](w)

	for _, pair := range pw.pairs {
		colA, colB := colliders.Get(pair.EntityA), colliders.Get(pair.EntityB)
		if colA == nil || colB == nil || colA.IsTrigger || colB.IsTrigger {
			continue
		}

		trA, trB := transforms.Get(pair.EntityA), transforms.Get(pair.EntityB)
		if trA == nil || trB == nil {
			continue
		}

		rbA, rbB := bodies.Get(pair.EntityA), bodies.Get(pair.EntityB)

		// nothing to do if neither side is currently simulated
		if !rbA.isAwakeDynamic() && !rbB.isAwakeDynamic() {
			continue
		}

		invA, invB := invMassOf(rbA), invMassOf(rbB)
		invSum := invA + invB
		if invSum == 0 {
			continue
		}

		if rbA != nil && rbA.IsSleeping {
			rbA.Wake()
		}

		if rbB != nil && rbB.IsSleeping {
			rbB.Wake()
		}

		normal := pair.Normal

		// positional correction, split by inverse mass
		penetration := math.Min(pair.Penetration, pw.config.MaxPenetrationCorrection)
		trA.Translation = trA.Translation.Sub(normal.Mul(penetration * invA / invSum))
		trB.Translation = trB.Translation.Add(normal.Mul(penetration * invB / invSum))

		relVel := velocityOf(rbB).Sub(velocityOf(rbA))

		vn := relVel.Dot(normal)
		if vn >= 0 {
			// already separating
			continue
		}

		restitution := math.Min(restitutionOf(rbA, colA), restitutionOf(rbB, colB))

		j := -(1 + restitution) * vn / invSum
		applyImpulse(rbA, rbB, normal.Mul(j))

		// friction against the tangential part of the updated relative velocity
		relVel = velocityOf(rbB).Sub(velocityOf(rbA))
		tangent := relVel.Sub(normal.Mul(relVel.Dot(normal)))
		if tangent.LengthSqr() < 1e-12 {
			continue
		}

		tangent = tangent.Normalized()

		mu := math.Min(frictionOf(rbA, colA), frictionOf(rbB, colB))
		maxFriction := math.Abs(mu * j)

		jt := -relVel.Dot(tangent) / invSum
		jt = max(-maxFriction, min(maxFriction, jt))

		applyImpulse(rbA, rbB, tangent.Mul(jt))
	}
}

// applyImpulse pushes a away from and b along the impulse.
func applyImpulse(a, b *RigidBody, impulse gm.Vec3) {
	if invA := invMassOf(a); invA > 0 {
		a.Velocity = a.Velocity.Sub(impulse.Mul(invA))
	}

	if invB := invMassOf(b); invB > 0 {
		b.Velocity = b.Velocity.Add(impulse.Mul(invB))
	}
}

func invMassOf(rb *RigidBody) float64 {
	if rb == nil {
		return 0
	}

	return rb.InvMass()
}

func velocityOf(rb *RigidBody) gm.Vec3 {
	if rb == nil || rb.InvMass() == 0 {
		return gm.Vec3{}
	}

	return rb.Velocity
}
