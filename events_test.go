package rigid

import (
	"testing"

	"github.com/stretchr/testify/require"
)

type MyEvent int

type OtherEvent string

func TestEventBus(t *testing.T) {
	var bus EventBus

	var received []MyEvent
	var receivedTwice []MyEvent

	Subscribe(&bus, func(ev MyEvent) { received = append(received, ev) })
	sub := Subscribe(&bus, func(ev MyEvent) { receivedTwice = append(receivedTwice, ev) })

	require.True(t, HasSubscribers[MyEvent](&bus))
	require.False(t, HasSubscribers[OtherEvent](&bus))

	require.Equal(t, 2, Dispatch(&bus, MyEvent(1)))
	require.Equal(t, 0, Dispatch(&bus, OtherEvent("ignored")))

	require.True(t, bus.Unsubscribe(sub))
	require.False(t, bus.Unsubscribe(sub))

	require.Equal(t, 1, Dispatch(&bus, MyEvent(2)))

	require.Equal(t, []MyEvent{1, 2}, received)
	require.Equal(t, []MyEvent{1}, receivedTwice)

	bus.Clear()
	require.Equal(t, 0, Dispatch(&bus, MyEvent(3)))
}

func TestEventBus_SubscribeWhileDispatching(t *testing.T) {
	var bus EventBus

	var calls int
	Subscribe(&bus, func(ev MyEvent) {
		calls += 1

		// the new handler must not run within the current dispatch
		Subscribe(&bus, func(ev MyEvent) { calls += 100 })
	})

	Dispatch(&bus, MyEvent(1))
	require.Equal(t, 1, calls)

	Dispatch(&bus, MyEvent(2))
	require.Equal(t, 102, calls)
}

func TestWorld_Events(t *testing.T) {
	w := NewWorld()

	var got OtherEvent
	Subscribe(w.Events(), func(ev OtherEvent) { got = ev })
	Dispatch(w.Events(), OtherEvent("hello"))

	require.Equal(t, OtherEvent("hello"), got)
}
