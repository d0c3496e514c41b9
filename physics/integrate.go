package physics

import (
	"math"

	"github.com/oliverbestmann/rigid"
	"github.com/oliverbestmann/rigid/gm"
)

type ccdCandidate struct {
	Entity       rigid.EntityId
	Displacement gm.Vec3
}

// IntegrateForces advances velocity and then position of all awake dynamic
// bodies using semi-implicit euler integration. Accumulated forces are
// cleared afterwards.
func (pw *World) IntegrateForces(w *rigid.World, dt float64) {
	pw.ccdCandidates = pw.ccdCandidates[:0]

	bodies := rigid.GetComponentArray[RigidBody](w)
	transforms := rigid.GetComponentArray[rigid.Transform](w)
	colliders := rigid.GetComponentArray[Collider](w)

	for idx := range bodies.Size() {
		rb := bodies.Data(idx)

		if rb.IsStatic || rb.IsSleeping {
			rb.Acceleration = gm.Vec3{}
			continue
		}

		entity := bodies.GetEntity(idx)

		tr := transforms.Get(entity)
		if tr == nil {
			continue
		}

		if rb.UseGravity {
			rb.Velocity = rb.Velocity.Add(rb.GravityOverride.Mul(dt))
		}

		rb.Velocity = rb.Velocity.Add(rb.Acceleration.Mul(dt))
		rb.Acceleration = gm.Vec3{}

		rb.Velocity = rb.Velocity.Mul(dampingFactor(rb.LinearDamping, dt))
		rb.AngularVelocity = rb.AngularVelocity.Mul(dampingFactor(rb.AngularDamping, dt))

		rb.Velocity = clampLength(rb.Velocity, pw.config.MaxLinearVelocity)
		rb.AngularVelocity = clampLength(rb.AngularVelocity, pw.config.MaxAngularVelocity)

		displacement := rb.Velocity.Mul(dt)
		tr.Translation = tr.Translation.Add(displacement)

		// rotation is stored in degrees
		tr.Rotation = tr.Rotation.Add(rb.AngularVelocity.Mul(dt * 180 / math.Pi))

		if col := colliders.Get(entity); col != nil && col.EnableCCD && !displacement.IsZero() {
			pw.ccdCandidates = append(pw.ccdCandidates, ccdCandidate{
				Entity:       entity,
				Displacement: displacement,
			})
		}
	}
}

func dampingFactor(damping, dt float64) float64 {
	return math.Max(0, 1-damping*dt)
}

func clampLength(vec gm.Vec3, maxLength float64) gm.Vec3 {
	lengthSqr := vec.LengthSqr()
	if lengthSqr <= maxLength*maxLength {
		return vec
	}

	return vec.Mul(maxLength / math.Sqrt(lengthSqr))
}
