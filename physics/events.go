package physics

import (
	"cmp"
	"slices"

	"github.com/oliverbestmann/rigid"
	"github.com/oliverbestmann/rigid/gm"
)

// CollisionPair is a contact found during detection. The normal points from
// EntityA towards EntityB.
type CollisionPair struct {
	EntityA, EntityB rigid.EntityId
	Normal           gm.Vec3
	Penetration      float64
}

// CollisionEvent is dispatched on the event bus of the ecs world for every
// detected contact. The penetration is the normal scaled by the penetration depth.
type CollisionEvent struct {
	EntityA, EntityB rigid.EntityId

	NormalX, NormalY, NormalZ                float64
	PenetrationX, PenetrationY, PenetrationZ float64
}

func (ev CollisionEvent) Normal() gm.Vec3 {
	return gm.Vec3{X: ev.NormalX, Y: ev.NormalY, Z: ev.NormalZ}
}

func (ev CollisionEvent) Penetration() gm.Vec3 {
	return gm.Vec3{X: ev.PenetrationX, Y: ev.PenetrationY, Z: ev.PenetrationZ}
}

type CollisionEventKind uint8

const (
	// CollisionEnter is reported in the first step two colliders touch.
	CollisionEnter CollisionEventKind = iota

	// CollisionStay is reported in every following step they still touch.
	CollisionStay

	// CollisionExit is reported in the first step they no longer touch.
	CollisionExit
)

func (k CollisionEventKind) String() string {
	switch k {
	case CollisionEnter:
		return "Enter"
	case CollisionStay:
		return "Stay"
	case CollisionExit:
		return "Exit"
	default:
		return "Unknown"
	}
}

// CollisionEventData describes a change in the contact state of two colliders.
// Normal and Penetration are zero for exit events.
type CollisionEventData struct {
	Kind             CollisionEventKind
	EntityA, EntityB rigid.EntityId
	Normal           gm.Vec3
	Penetration      float64
	IsTrigger        bool
}

// CollisionCallback is invoked synchronously for each detected contact.
type CollisionCallback func(a, b rigid.EntityId, normal gm.Vec3)

// CollisionEventCallback is invoked synchronously on contact state changes.
type CollisionEventCallback func(data CollisionEventData)

type pairKey struct {
	A, B rigid.EntityId
}

func pairKeyOf(a, b rigid.EntityId) pairKey {
	if b < a {
		a, b = b, a
	}

	return pairKey{A: a, B: b}
}

func sortPairKeys(keys []pairKey) {
	slices.SortFunc(keys, func(lhs, rhs pairKey) int {
		return cmp.Or(cmp.Compare(lhs.A, rhs.A), cmp.Compare(lhs.B, rhs.B))
	})
}
