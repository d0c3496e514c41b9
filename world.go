package rigid

import (
	"log/slog"
	"reflect"
	"slices"
)

// World holds all entities and their components, stored per type in dense
// component arrays. It also owns the event bus used to publish events to
// decoupled listeners.
//
// A World is not safe for concurrent use.
type World struct {
	_ noCopy

	entityIdSeq EntityId
	entities    []EntityId
	alive       map[EntityId]struct{}
	stores      map[reflect.Type]erasedComponentArray
	events      EventBus
}

// NewWorld creates a new empty world.
func NewWorld() *World {
	return &World{
		alive:  map[EntityId]struct{}{},
		stores: map[reflect.Type]erasedComponentArray{},
	}
}

// Spawn creates a new entity with the given components.
func (w *World) Spawn(components ...AnyComponent) EntityId {
	w.entityIdSeq += 1
	entityId := w.entityIdSeq

	w.entities = append(w.entities, entityId)
	w.alive[entityId] = struct{}{}

	for _, component := range components {
		component.insertInto(w, entityId)
	}

	return entityId
}

// Despawn removes the entity and all of its components.
func (w *World) Despawn(entityId EntityId) bool {
	if _, ok := w.alive[entityId]; !ok {
		return false
	}

	for _, store := range w.stores {
		store.remove(entityId)
	}

	delete(w.alive, entityId)

	idx := slices.Index(w.entities, entityId)
	w.entities = slices.Delete(w.entities, idx, idx+1)

	slog.Debug("Despawned entity", slog.Any("entityId", entityId))

	return true
}

func (w *World) IsAlive(entityId EntityId) bool {
	_, ok := w.alive[entityId]
	return ok
}

// Entities returns all living entities in spawn order.
// The returned slice must not be modified.
func (w *World) Entities() []EntityId {
	return w.entities
}

// Events returns the event bus of this world.
func (w *World) Events() *EventBus {
	return &w.events
}

// noCopy makes "go vet" complain when a World or EventBus is copied by value.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}
