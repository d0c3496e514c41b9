package physics

import (
	"github.com/oliverbestmann/rigid"
	"github.com/oliverbestmann/rigid/gm"
)

type constraintBody struct {
	Transform *rigid.Transform
	Body      *RigidBody
	InvMass   float64
}

func (b constraintBody) velocity() gm.Vec3 {
	return velocityOf(b.Body)
}

func (b constraintBody) angularVelocity() gm.Vec3 {
	if b.InvMass == 0 {
		return gm.Vec3{}
	}

	return b.Body.AngularVelocity
}

func (b constraintBody) addVelocity(delta gm.Vec3) {
	if b.InvMass > 0 {
		b.Body.Velocity = b.Body.Velocity.Add(delta)
	}
}

func (b constraintBody) addAngularVelocity(delta gm.Vec3) {
	if b.InvMass > 0 {
		b.Body.AngularVelocity = b.Body.AngularVelocity.Add(delta)
	}
}

func (b constraintBody) translate(delta gm.Vec3) {
	if b.InvMass > 0 {
		b.Transform.Translation = b.Transform.Translation.Add(delta)
	}
}

func (b constraintBody) rotate(degrees gm.Vec3) {
	if b.InvMass > 0 {
		b.Transform.Rotation = b.Transform.Rotation.Add(degrees)
	}
}

func lookupConstraintBody(w *rigid.World, entity rigid.EntityId) (constraintBody, bool) {
	tr := rigid.GetComponent[rigid.Transform](w, entity)
	if tr == nil {
		return constraintBody{}, false
	}

	rb := rigid.GetComponent[RigidBody](w, entity)
	return constraintBody{Transform: tr, Body: rb, InvMass: invMassOf(rb)}, true
}

// SolveConstraints runs ConstraintIterations passes of a sequential impulse
// solver over all enabled constraints. Positional errors are corrected with
// the Baumgarte bias each pass.
func (pw *World) SolveConstraints(w *rigid.World, dt float64) {
	if pw.constraints.Len() == 0 {
		return
	}

	iterations := pw.config.ConstraintIterations

	for range iterations {
		for _, constraint := range pw.constraints.All() {
			if constraint.Disabled {
				continue
			}

			pw.solveConstraint(w, constraint, dt, iterations)
		}
	}
}

func (pw *World) solveConstraint(w *rigid.World, c *Constraint, dt float64, iterations int) {
	a, okA := lookupConstraintBody(w, c.EntityA)
	b, okB := lookupConstraintBody(w, c.EntityB)
	if !okA || !okB {
		return
	}

	// constraints between two resting bodies stay asleep
	if !a.Body.isAwakeDynamic() && !b.Body.isAwakeDynamic() {
		return
	}

	invSum := a.InvMass + b.InvMass
	if invSum == 0 {
		return
	}

	if a.Body != nil && a.Body.IsSleeping {
		a.Body.Wake()
	}

	if b.Body != nil && b.Body.IsSleeping {
		b.Body.Wake()
	}

	switch c.Type {
	case ConstraintDistance:
		pw.solveDistance(c, a, b, c.Distance)

	case ConstraintPointToPoint:
		pw.solveDistance(c, a, b, 0)

	case ConstraintSpring:
		solveSpring(c, a, b, dt/float64(iterations))

	case ConstraintHinge:
		pw.solveDistance(c, a, b, 0)
		solveHingeRotation(c, a, b)
	}
}

// solveDistance corrects the distance between both anchors towards the target
// and removes relative velocity along the line between them.
func (pw *World) solveDistance(c *Constraint, a, b constraintBody, target float64) {
	invSum := a.InvMass + b.InvMass

	delta := b.Transform.TransformPoint(c.AnchorB).Sub(a.Transform.TransformPoint(c.AnchorA))

	distance := delta.Length()
	if distance < 1e-6 {
		return
	}

	normal := delta.Mul(1 / distance)

	// positive if stretched, both sides move towards each other
	correction := normal.Mul((distance - target) * pw.config.BaumgarteBias / invSum)
	a.translate(correction.Mul(a.InvMass))
	b.translate(correction.Mul(-b.InvMass))

	vn := b.velocity().Sub(a.velocity()).Dot(normal)
	impulse := normal.Mul(vn / invSum)

	a.addVelocity(impulse.Mul(a.InvMass))
	b.addVelocity(impulse.Mul(-b.InvMass))
}

// solveSpring applies a damped spring force for the given fraction of the step.
func solveSpring(c *Constraint, a, b constraintBody, dt float64) {
	delta := b.Transform.TransformPoint(c.AnchorB).Sub(a.Transform.TransformPoint(c.AnchorA))

	distance := delta.Length()
	if distance < 1e-6 {
		return
	}

	normal := delta.Mul(1 / distance)

	stretch := distance - c.Distance
	vn := b.velocity().Sub(a.velocity()).Dot(normal)

	// force acting on b along the normal, a receives the opposite
	force := -c.Stiffness*stretch - c.Damping*vn
	impulse := normal.Mul(force * dt)

	a.addVelocity(impulse.Mul(-a.InvMass))
	b.addVelocity(impulse.Mul(b.InvMass))
}

// solveHingeRotation restricts angular velocity to the hinge axis and
// enforces the rotation limits.
func solveHingeRotation(c *Constraint, a, b constraintBody) {
	axis := c.HingeAxis.Normalized()
	if axis.IsZero() {
		return
	}

	for _, body := range []constraintBody{a, b} {
		if body.InvMass > 0 {
			omega := body.Body.AngularVelocity
			body.Body.AngularVelocity = axis.Mul(omega.Dot(axis))
		}
	}

	if !c.LimitsEnabled {
		return
	}

	invSum := a.InvMass + b.InvMass

	// relative rotation of b around the axis
	angle := hingeAngle(c, a, b)

	correction := angle.Clamp(c.MinAngle, c.MaxAngle) - angle
	if correction == 0 {
		return
	}

	degrees := axis.Mul(correction.Degrees())
	a.rotate(degrees.Mul(-a.InvMass / invSum))
	b.rotate(degrees.Mul(b.InvMass / invSum))

	// stop relative rotation further into the limit
	relOmega := b.angularVelocity().Dot(axis) - a.angularVelocity().Dot(axis)
	if (correction > 0 && relOmega < 0) || (correction < 0 && relOmega > 0) {
		impulse := axis.Mul(relOmega / invSum)
		a.addAngularVelocity(impulse.Mul(a.InvMass))
		b.addAngularVelocity(impulse.Mul(-b.InvMass))
	}
}

// hingeAngle returns the rotation of b relative to a around the hinge axis.
func hingeAngle(c *Constraint, a, b constraintBody) gm.Rad {
	axis := c.HingeAxis.Normalized()
	relative := b.Transform.Rotation.Sub(a.Transform.Rotation)
	return gm.DegToRad(relative.Dot(axis))
}
