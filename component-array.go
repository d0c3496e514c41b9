package rigid

import (
	"fmt"
	"iter"
)

// ComponentArray stores all components of one type densely packed.
//
// Iteration order is stable as long as no component of this type is
// removed. Removing a component moves the last element into the freed
// position. Pointers returned by Get and Data stay valid until the next
// insert or remove on the same array.
type ComponentArray[T any] struct {
	data     []T
	entities []EntityId
	index    map[EntityId]int
}

func newComponentArray[T any]() *ComponentArray[T] {
	return &ComponentArray[T]{index: map[EntityId]int{}}
}

// Size returns the number of components in the array.
func (a *ComponentArray[T]) Size() int {
	return len(a.data)
}

// Data returns the component at the given dense index.
func (a *ComponentArray[T]) Data(idx int) *T {
	return &a.data[idx]
}

// GetEntity returns the entity owning the component at the given dense index.
func (a *ComponentArray[T]) GetEntity(idx int) EntityId {
	return a.entities[idx]
}

// Get returns the component of the entity, or nil.
func (a *ComponentArray[T]) Get(entityId EntityId) *T {
	idx, ok := a.index[entityId]
	if !ok {
		return nil
	}

	return &a.data[idx]
}

func (a *ComponentArray[T]) Has(entityId EntityId) bool {
	_, ok := a.index[entityId]
	return ok
}

// All iterates over all entities and their components in dense order.
func (a *ComponentArray[T]) All() iter.Seq2[EntityId, *T] {
	return func(yield func(EntityId, *T) bool) {
		for idx := range a.data {
			if !yield(a.entities[idx], &a.data[idx]) {
				return
			}
		}
	}
}

func (a *ComponentArray[T]) insert(entityId EntityId, value T) *T {
	if idx, ok := a.index[entityId]; ok {
		// replace the existing value
		a.data[idx] = value
		return &a.data[idx]
	}

	a.index[entityId] = len(a.data)
	a.data = append(a.data, value)
	a.entities = append(a.entities, entityId)

	return &a.data[len(a.data)-1]
}

func (a *ComponentArray[T]) remove(entityId EntityId) bool {
	idx, ok := a.index[entityId]
	if !ok {
		return false
	}

	last := len(a.data) - 1
	if idx != last {
		a.data[idx] = a.data[last]
		a.entities[idx] = a.entities[last]
		a.index[a.entities[idx]] = idx
	}

	var zero T
	a.data[last] = zero

	a.data = a.data[:last]
	a.entities = a.entities[:last]
	delete(a.index, entityId)

	return true
}

func (a *ComponentArray[T]) String() string {
	var zero T
	return fmt.Sprintf("ComponentArray[%T](size=%d)", zero, len(a.data))
}

// erasedComponentArray gives the World access to an array without knowing its type.
type erasedComponentArray interface {
	remove(entityId EntityId) bool
}
