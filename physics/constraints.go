package physics

import (
	"fmt"

	"github.com/oliverbestmann/rigid"
	"github.com/oliverbestmann/rigid/gm"
	"github.com/oliverbestmann/rigid/internal/arena"
)

type ConstraintType uint8

const (
	// ConstraintDistance keeps the anchors at a fixed distance.
	ConstraintDistance ConstraintType = iota

	// ConstraintSpring pulls the anchors towards a rest length using a damped spring.
	ConstraintSpring

	// ConstraintHinge pins the anchors together and restricts relative
	// rotation to a single axis.
	ConstraintHinge

	// ConstraintPointToPoint pins the anchors together.
	ConstraintPointToPoint
)

func (t ConstraintType) String() string {
	switch t {
	case ConstraintDistance:
		return "Distance"
	case ConstraintSpring:
		return "Spring"
	case ConstraintHinge:
		return "Hinge"
	case ConstraintPointToPoint:
		return "PointToPoint"
	default:
		return fmt.Sprintf("ConstraintType(%d)", t)
	}
}

// ConstraintHandle identifies a constraint in a World. A handle becomes stale
// once its constraint is removed and never refers to a later constraint.
type ConstraintHandle arena.Handle

func (h ConstraintHandle) String() string {
	return fmt.Sprintf("Constraint(%d@%d)", h.Index, h.Generation)
}

// Constraint couples two entities.
type Constraint struct {
	Type ConstraintType

	EntityA, EntityB rigid.EntityId

	// AnchorA and AnchorB are attachment points in the local space of
	// their entity.
	AnchorA, AnchorB gm.Vec3

	// Distance is the target distance of a distance constraint and the
	// rest length of a spring.
	Distance float64

	Stiffness float64
	Damping   float64

	// HingeAxis is the world axis a hinge allows rotation around.
	HingeAxis gm.Vec3

	// Relative rotation limits of a hinge around its axis.
	LimitsEnabled bool
	MinAngle      gm.Rad
	MaxAngle      gm.Rad

	Disabled bool
}

func DistanceConstraint(a, b rigid.EntityId, distance float64) Constraint {
	return Constraint{
		Type:     ConstraintDistance,
		EntityA:  a,
		EntityB:  b,
		Distance: distance,
	}
}

func SpringConstraint(a, b rigid.EntityId, restLength, stiffness, damping float64) Constraint {
	return Constraint{
		Type:      ConstraintSpring,
		EntityA:   a,
		EntityB:   b,
		Distance:  restLength,
		Stiffness: stiffness,
		Damping:   damping,
	}
}

func HingeConstraint(a, b rigid.EntityId, anchorA, anchorB, axis gm.Vec3) Constraint {
	return Constraint{
		Type:      ConstraintHinge,
		EntityA:   a,
		EntityB:   b,
		AnchorA:   anchorA,
		AnchorB:   anchorB,
		HingeAxis: axis,
	}
}

func PointToPointConstraint(a, b rigid.EntityId, anchorA, anchorB gm.Vec3) Constraint {
	return Constraint{
		Type:    ConstraintPointToPoint,
		EntityA: a,
		EntityB: b,
		AnchorA: anchorA,
		AnchorB: anchorB,
	}
}

// WithLimits enables hinge limits for the relative rotation around the hinge axis.
func (c Constraint) WithLimits(minAngle, maxAngle gm.Rad) Constraint {
	c.LimitsEnabled = true
	c.MinAngle = minAngle
	c.MaxAngle = maxAngle
	return c
}

// AddConstraint adds a constraint and returns a handle to it.
func (pw *World) AddConstraint(constraint Constraint) ConstraintHandle {
	return ConstraintHandle(pw.constraints.Insert(constraint))
}

// RemoveConstraint removes the constraint. Returns false if the handle is stale.
func (pw *World) RemoveConstraint(handle ConstraintHandle) bool {
	return pw.constraints.Remove(arena.Handle(handle))
}

// Constraint returns a pointer to the constraint for modification, or nil
// if the handle is stale. The pointer is valid until the next constraint is added.
func (pw *World) Constraint(handle ConstraintHandle) *Constraint {
	return pw.constraints.Get(arena.Handle(handle))
}

func (pw *World) ConstraintCount() int {
	return pw.constraints.Len()
}

// ClearConstraints removes all constraints. All handles become stale.
func (pw *World) ClearConstraints() {
	pw.constraints.Clear()
}
