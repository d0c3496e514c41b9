package physics

import (
	"github.com/oliverbestmann/rigid"
	"github.com/oliverbestmann/rigid/gm"
)

// DetectCollisions finds all overlapping collider pairs. With few colliders
// every pair is tested, above the BroadPhaseThreshold candidate pairs come
// from the spatial hash. Pairs are reported in a deterministic order.
//
// For every contact the collision callback is invoked and a CollisionEvent
// is dispatched on the event bus of the ecs world. Enter, stay and exit
// events are reported to the collision event callback.
func (pw *World) DetectCollisions(w *rigid.World) {
	pw.pairs = pw.pairs[:0]

	pw.prevContacts, pw.contacts = pw.contacts, pw.prevContacts
	pw.contacts.Clear()

	entries := pw.collectColliders(w)

	if len(entries) <= pw.config.BroadPhaseThreshold {
		for i := range entries {
			for j := i + 1; j < len(entries); j++ {
				pw.testPair(w, &entries[i], &entries[j])
			}
		}
	} else {
		pw.spatialHash.Clear()

		for idx := range entries {
			pw.spatialHash.Insert(idx, entries[idx].AABB)
		}

		for _, pair := range pw.spatialHash.PotentialPairs() {
			pw.testPair(w, &entries[pair.A], &entries[pair.B])
		}
	}

	pw.emitExitEvents(w)
}

func (pw *World) testPair(w *rigid.World, a, b *colliderEntry) {
	if !a.Collider.CanCollideWith(b.Collider) {
		return
	}

	if !a.AABB.Overlaps(b.AABB) {
		return
	}

	contact, ok := testColliders(a.Collider, *a.Transform, a.AABB, b.Collider, *b.Transform, b.AABB)
	if !ok {
		return
	}

	pw.pairs = append(pw.pairs, CollisionPair{
		EntityA:     a.Entity,
		EntityB:     b.Entity,
		Normal:      contact.Normal,
		Penetration: contact.Penetration,
	})

	if pw.collisionCallback != nil {
		pw.collisionCallback(a.Entity, b.Entity, contact.Normal)
	}

	penetration := contact.Normal.Mul(contact.Penetration)

	rigid.Dispatch(w.Events(), CollisionEvent{
		EntityA:      a.Entity,
		EntityB:      b.Entity,
		NormalX:      contact.Normal.X,
		NormalY:      contact.Normal.Y,
		NormalZ:      contact.Normal.Z,
		PenetrationX: penetration.X,
		PenetrationY: penetration.Y,
		PenetrationZ: penetration.Z,
	})

	key := pairKeyOf(a.Entity, b.Entity)
	pw.contacts.Insert(key)

	if pw.eventCallback == nil {
		return
	}

	kind := CollisionEnter
	if pw.prevContacts.Has(key) {
		kind = CollisionStay
	}

	pw.eventCallback(CollisionEventData{
		Kind:        kind,
		EntityA:     a.Entity,
		EntityB:     b.Entity,
		Normal:      contact.Normal,
		Penetration: contact.Penetration,
		IsTrigger:   a.Collider.IsTrigger || b.Collider.IsTrigger,
	})
}

func (pw *World) emitExitEvents(w *rigid.World) {
	if pw.eventCallback == nil {
		return
	}

	// collect first, the callback is free to look at the world
	pw.exitedScratch = pw.exitedScratch[:0]
	for key := range pw.prevContacts.Difference(&pw.contacts) {
		pw.exitedScratch = append(pw.exitedScratch, key)
	}

	sortPairKeys(pw.exitedScratch)

	for _, key := range pw.exitedScratch {
		colA := rigid.GetComponent[Collider](w, key.A)
		colB := rigid.GetComponent[Collider](w, key.B)

		pw.eventCallback(CollisionEventData{
			Kind:      CollisionExit,
			EntityA:   key.A,
			EntityB:   key.B,
			Normal:    gm.Vec3{},
			IsTrigger: (colA != nil && colA.IsTrigger) || (colB != nil && colB.IsTrigger),
		})
	}
}
