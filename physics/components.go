package physics

import (
	"math"

	"github.com/oliverbestmann/rigid"
	"github.com/oliverbestmann/rigid/gm"
)

// AllLayers is a collision mask that matches every layer.
const AllLayers = math.MaxUint32

// RigidBody holds the dynamic state of an entity. It is only ever mutated
// by the physics step and the force/impulse functions of World.
type RigidBody struct {
	Velocity gm.Vec3

	// AngularVelocity in radians per second around each world axis.
	AngularVelocity gm.Vec3

	// Acceleration accumulates forces for a single step and is cleared
	// after it was integrated. Use World.AddForce to apply a force.
	Acceleration gm.Vec3

	Mass           float64
	Restitution    float64
	Friction       float64
	LinearDamping  float64
	AngularDamping float64

	IsStatic bool

	UseGravity      bool
	GravityOverride gm.Vec3

	IsSleeping bool
	SleepTimer float64

	// Per body sleep thresholds, values of zero use the thresholds of the Config.
	SleepLinearThreshold  float64
	SleepAngularThreshold float64
}

// DefaultRigidBody returns a dynamic body of one unit mass affected by earth gravity.
func DefaultRigidBody() RigidBody {
	return RigidBody{
		Mass:            1.0,
		Restitution:     0.3,
		Friction:        0.5,
		LinearDamping:   0.01,
		AngularDamping:  0.05,
		UseGravity:      true,
		GravityOverride: gm.Vec3{Y: -9.81},
	}
}

// StaticRigidBody returns a body that never moves and has infinite mass.
func StaticRigidBody() RigidBody {
	rb := DefaultRigidBody()
	rb.IsStatic = true
	rb.UseGravity = false
	return rb
}

// InvMass returns the inverse mass. Static bodies and bodies without
// a meaningful mass have an inverse mass of zero.
func (rb *RigidBody) InvMass() float64 {
	if rb.IsStatic || rb.Mass <= 1e-6 {
		return 0
	}

	return 1 / rb.Mass
}

// Wake resets the sleep state of the body.
func (rb *RigidBody) Wake() {
	rb.IsSleeping = false
	rb.SleepTimer = 0
}

// isAwakeDynamic reports whether the body takes part in the simulation right now.
func (rb *RigidBody) isAwakeDynamic() bool {
	return rb != nil && !rb.IsSleeping && rb.InvMass() > 0
}

type ShapeType uint8

const (
	ShapeBox ShapeType = iota
	ShapeSphere
	ShapeCapsule
)

func (s ShapeType) String() string {
	switch s {
	case ShapeBox:
		return "Box"
	case ShapeSphere:
		return "Sphere"
	case ShapeCapsule:
		return "Capsule"
	default:
		return "Unknown"
	}
}

// Shape describes a collision primitive in the local space of its entity.
type Shape struct {
	Type ShapeType

	// Offset of the shape relative to the entity origin.
	Offset gm.Vec3

	// HalfExtents of a box.
	HalfExtents gm.Vec3

	// Radius of a sphere or capsule.
	Radius float64

	// HalfHeight of the cylindrical part of a capsule along its local Y axis.
	HalfHeight float64
}

func BoxShape(halfExtents gm.Vec3) Shape {
	return Shape{Type: ShapeBox, HalfExtents: halfExtents}
}

func SphereShape(radius float64) Shape {
	return Shape{Type: ShapeSphere, Radius: radius}
}

func CapsuleShape(radius, halfHeight float64) Shape {
	return Shape{Type: ShapeCapsule, Radius: radius, HalfHeight: halfHeight}
}

func (s Shape) WithOffset(offset gm.Vec3) Shape {
	s.Offset = offset
	return s
}

// PhysicsMaterial overrides the surface properties of the rigid body for
// contacts with this collider.
type PhysicsMaterial struct {
	Restitution float64
	Friction    float64
}

// Collider gives an entity a collision shape.
type Collider struct {
	Shape Shape

	// SubShapes turn the collider into a compound collider. If set, Shape is
	// not used for collision.
	SubShapes []Shape

	// Layer is the bitmask of layers this collider belongs to and Mask the
	// bitmask of layers it collides with. Both sides must agree for a
	// collision to happen. A zero Layer is treated as layer 1 and a zero
	// Mask as AllLayers.
	Layer uint32
	Mask  uint32

	// IsTrigger colliders report collisions but never exchange momentum.
	IsTrigger bool

	// EnableCCD sweeps this collider for continuous collision detection.
	EnableCCD bool

	Material *PhysicsMaterial
}

func NewCollider(shape Shape) Collider {
	return Collider{Shape: shape, Layer: 1, Mask: AllLayers}
}

func BoxCollider(halfExtents gm.Vec3) Collider {
	return NewCollider(BoxShape(halfExtents))
}

func SphereCollider(radius float64) Collider {
	return NewCollider(SphereShape(radius))
}

func CapsuleCollider(radius, halfHeight float64) Collider {
	return NewCollider(CapsuleShape(radius, halfHeight))
}

// CompoundCollider creates a collider made up of multiple shapes.
func CompoundCollider(shapes ...Shape) Collider {
	c := NewCollider(BoxShape(gm.Vec3{}))
	c.SubShapes = shapes
	return c
}

// Shapes returns the shapes that take part in collision.
func (c *Collider) Shapes() []Shape {
	if len(c.SubShapes) > 0 {
		return c.SubShapes
	}

	return []Shape{c.Shape}
}

func (c *Collider) IsCompound() bool {
	return len(c.SubShapes) > 0
}

// WorldAABB returns the world space bounding box of the collider: the union of
// all sub shapes for compound colliders, the box of the single shape otherwise.
func (c *Collider) WorldAABB(tr rigid.Transform) gm.AABB {
	if len(c.SubShapes) == 0 {
		return c.Shape.WorldAABB(tr)
	}

	aabb := c.SubShapes[0].WorldAABB(tr)
	for _, shape := range c.SubShapes[1:] {
		aabb = aabb.Union(shape.WorldAABB(tr))
	}

	return aabb
}

func (c *Collider) layers() (layer, mask uint32) {
	layer, mask = c.Layer, c.Mask

	if layer == 0 {
		layer = 1
	}

	if mask == 0 {
		mask = AllLayers
	}

	return layer, mask
}

// CanCollideWith checks the layer and mask of both colliders.
func (c *Collider) CanCollideWith(other *Collider) bool {
	layerA, maskA := c.layers()
	layerB, maskB := other.layers()
	return layerA&maskB != 0 && layerB&maskA != 0
}

// restitutionOf returns the restitution used for contacts of the given body and collider.
func restitutionOf(rb *RigidBody, col *Collider) float64 {
	switch {
	case col != nil && col.Material != nil:
		return col.Material.Restitution
	case rb != nil:
		return rb.Restitution
	default:
		return DefaultRigidBody().Restitution
	}
}

// frictionOf returns the friction coefficient used for contacts of the given body and collider.
func frictionOf(rb *RigidBody, col *Collider) float64 {
	switch {
	case col != nil && col.Material != nil:
		return col.Material.Friction
	case rb != nil:
		return rb.Friction
	default:
		return DefaultRigidBody().Friction
	}
}
