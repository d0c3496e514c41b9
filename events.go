package rigid

import (
	"reflect"
	"slices"
)

// EventBus is a publish/subscribe dispatcher keyed by the event type.
//
// Any number of handlers can subscribe to an event type without the
// publisher knowing about them. Handlers run synchronously within Dispatch,
// in the order they subscribed.
type EventBus struct {
	_ noCopy

	handlers map[reflect.Type][]eventHandler
	idSeq    uint64
}

type eventHandler struct {
	id       uint64
	callback func(event any)
}

// Subscription identifies a handler registered with Subscribe.
type Subscription struct {
	eventType reflect.Type
	id        uint64
}

// Subscribe registers a handler for events of type E.
func Subscribe[E any](bus *EventBus, handler func(event E)) Subscription {
	ty := reflect.TypeFor[E]()

	if bus.handlers == nil {
		bus.handlers = map[reflect.Type][]eventHandler{}
	}

	bus.idSeq += 1

	// copy on write, a dispatch that is currently running keeps iterating
	// over the previous slice
	handlers := slices.Clone(bus.handlers[ty])
	handlers = append(handlers, eventHandler{
		id:       bus.idSeq,
		callback: func(event any) { handler(event.(E)) },
	})

	bus.handlers[ty] = handlers

	return Subscription{eventType: ty, id: bus.idSeq}
}

// Unsubscribe removes the handler. Returns false if it was already removed.
func (bus *EventBus) Unsubscribe(sub Subscription) bool {
	handlers := bus.handlers[sub.eventType]

	idx := slices.IndexFunc(handlers, func(h eventHandler) bool { return h.id == sub.id })
	if idx < 0 {
		return false
	}

	bus.handlers[sub.eventType] = slices.Delete(slices.Clone(handlers), idx, idx+1)
	return true
}

// Dispatch delivers the event to all handlers subscribed to type E and
// returns the number of handlers that were called.
func Dispatch[E any](bus *EventBus, event E) int {
	handlers := bus.handlers[reflect.TypeFor[E]()]

	for _, handler := range handlers {
		handler.callback(event)
	}

	return len(handlers)
}

// HasSubscribers reports whether at least one handler listens for type E.
func HasSubscribers[E any](bus *EventBus) bool {
	return len(bus.handlers[reflect.TypeFor[E]()]) > 0
}

// Clear removes all handlers.
func (bus *EventBus) Clear() {
	clear(bus.handlers)
}
