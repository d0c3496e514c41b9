// Package arena implements a slot arena addressed by generational handles.
//
// Removing a value frees its slot for reuse. Every reuse bumps the slot's
// generation, so a handle to a removed value never resolves to a value that
// was added later into the same slot.
package arena

// Handle identifies a value in an Arena. The zero Handle is never valid.
type Handle struct {
	Index      uint32
	Generation uint32
}

type slot[T any] struct {
	value      T
	generation uint32
	free       bool
}

type Arena[T any] struct {
	slots    []slot[T]
	freeList []uint32
	len      int
}

// Insert stores the value in a free slot, or a new one if none is available.
func (a *Arena[T]) Insert(value T) Handle {
	var index uint32

	if n := len(a.freeList); n > 0 {
		index = a.freeList[n-1]
		a.freeList = a.freeList[:n-1]
	} else {
		index = uint32(len(a.slots))
		a.slots = append(a.slots, slot[T]{free: true})
	}

	s := &a.slots[index]
	s.value = value
	s.free = false

	// generations start at one, that keeps the zero handle invalid
	s.generation += 1

	a.len += 1

	return Handle{Index: index, Generation: s.generation}
}

// Get returns a pointer to the value, or nil if the handle is stale.
// The pointer is valid until the next call to Insert.
func (a *Arena[T]) Get(h Handle) *T {
	if !a.Contains(h) {
		return nil
	}

	return &a.slots[h.Index].value
}

func (a *Arena[T]) Contains(h Handle) bool {
	if int(h.Index) >= len(a.slots) {
		return false
	}

	s := &a.slots[h.Index]
	return !s.free && s.generation == h.Generation
}

// Remove frees the slot of the given handle. Returns false for stale handles.
func (a *Arena[T]) Remove(h Handle) bool {
	if !a.Contains(h) {
		return false
	}

	s := &a.slots[h.Index]

	var zero T
	s.value = zero
	s.free = true

	a.freeList = append(a.freeList, h.Index)
	a.len -= 1

	return true
}

// Clear removes all values. Outstanding handles become stale.
func (a *Arena[T]) Clear() {
	for idx := range a.slots {
		s := &a.slots[idx]
		if s.free {
			continue
		}

		var zero T
		s.value = zero
		s.free = true

		a.freeList = append(a.freeList, uint32(idx))
	}

	a.len = 0
}

// Len returns the number of live values.
func (a *Arena[T]) Len() int {
	return a.len
}

// All iterates over the live values in slot order.
func (a *Arena[T]) All() func(yield func(Handle, *T) bool) {
	return func(yield func(Handle, *T) bool) {
		for idx := range a.slots {
			s := &a.slots[idx]
			if s.free {
				continue
			}

			h := Handle{Index: uint32(idx), Generation: s.generation}
			if !yield(h, &s.value) {
				return
			}
		}
	}
}
