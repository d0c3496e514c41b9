package physics

import (
	"github.com/oliverbestmann/rigid"
	"github.com/oliverbestmann/rigid/gm"
)

// dynamicBody returns the rigid body of the entity if it can be moved by forces.
func dynamicBody(w *rigid.World, entity rigid.EntityId) *RigidBody {
	rb := rigid.GetComponent[RigidBody](w, entity)
	if rb == nil || rb.InvMass() == 0 {
		return nil
	}

	return rb
}

// AddForce applies a force for the next step. Forces on static bodies or
// entities without a RigidBody are ignored.
func (pw *World) AddForce(w *rigid.World, entity rigid.EntityId, force gm.Vec3) {
	rb := dynamicBody(w, entity)
	if rb == nil {
		return
	}

	rb.Acceleration = rb.Acceleration.Add(force.Mul(rb.InvMass()))
	rb.Wake()
}

// AddImpulse changes the velocity of a body immediately.
func (pw *World) AddImpulse(w *rigid.World, entity rigid.EntityId, impulse gm.Vec3) {
	rb := dynamicBody(w, entity)
	if rb == nil {
		return
	}

	rb.Velocity = rb.Velocity.Add(impulse.Mul(rb.InvMass()))
	rb.Wake()
}

// AddTorque changes the angular velocity of a body immediately. Bodies
// use a unit inertia scaled by their mass.
func (pw *World) AddTorque(w *rigid.World, entity rigid.EntityId, torque gm.Vec3) {
	rb := dynamicBody(w, entity)
	if rb == nil {
		return
	}

	rb.AngularVelocity = rb.AngularVelocity.Add(torque.Mul(rb.InvMass()))
	rb.Wake()
}

// SetVelocity sets the linear velocity of a body and wakes it up.
func (pw *World) SetVelocity(w *rigid.World, entity rigid.EntityId, velocity gm.Vec3) {
	rb := rigid.GetComponent[RigidBody](w, entity)
	if rb == nil || rb.IsStatic {
		return
	}

	rb.Velocity = velocity
	rb.Wake()
}
