package rigid

import (
	"fmt"
	"reflect"
)

// AnyComponent is a component value that can be inserted into an entity
// without the caller knowing its type. Use With to create one.
type AnyComponent interface {
	insertInto(w *World, entityId EntityId)
}

// With wraps a component value so it can be passed to World.Spawn.
func With[T any](value T) AnyComponent {
	return withComponent[T]{value: value}
}

type withComponent[T any] struct {
	value T
}

func (c withComponent[T]) insertInto(w *World, entityId EntityId) {
	InsertComponent(w, entityId, c.value)
}

// Bundle groups multiple components into one.
func Bundle(components ...AnyComponent) AnyComponent {
	return bundleComponent(components)
}

type bundleComponent []AnyComponent

func (b bundleComponent) insertInto(w *World, entityId EntityId) {
	for _, component := range b {
		component.insertInto(w, entityId)
	}
}

// GetComponentArray returns the dense component storage for type T.
// The array is created on first access.
func GetComponentArray[T any](w *World) *ComponentArray[T] {
	ty := reflect.TypeFor[T]()

	if erased, ok := w.stores[ty]; ok {
		return erased.(*ComponentArray[T])
	}

	array := newComponentArray[T]()
	w.stores[ty] = array
	return array
}

// GetComponent returns a pointer to the component of the entity, or nil if
// the entity does not have a component of type T.
func GetComponent[T any](w *World, entityId EntityId) *T {
	erased, ok := w.stores[reflect.TypeFor[T]()]
	if !ok {
		return nil
	}

	return erased.(*ComponentArray[T]).Get(entityId)
}

func HasComponent[T any](w *World, entityId EntityId) bool {
	return GetComponent[T](w, entityId) != nil
}

// InsertComponent adds or replaces the component of an entity.
// Inserting into an entity that was not spawned is a programming error and panics.
func InsertComponent[T any](w *World, entityId EntityId, value T) *T {
	if !w.IsAlive(entityId) {
		panic(fmt.Sprintf("entity %s does not exist", entityId))
	}

	return GetComponentArray[T](w).insert(entityId, value)
}

// RemoveComponent removes the component of type T from the entity.
func RemoveComponent[T any](w *World, entityId EntityId) bool {
	erased, ok := w.stores[reflect.TypeFor[T]()]
	if !ok {
		return false
	}

	return erased.remove(entityId)
}
