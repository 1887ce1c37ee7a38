package freelist

import (
	"errors"
	"fmt"
	"math"
	"slices"
)

// Index addresses one slot of a list's arena. An index keeps denoting the same
// element until that element is erased, regardless of arena growth.
type Index uint32

// None is the "no slot" sentinel used by every link field.
const None Index = math.MaxUint32

// DefaultMaxSlots is the largest arena a list will grow to.
const DefaultMaxSlots = math.MaxInt32

// ErrCapacityExceeded is returned (or carried by a panic from the push and
// insert methods) when the arena cannot grow to hold another slot.
var ErrCapacityExceeded = errors.New("freelist: capacity exceeded")

// maxSlots bounds arena growth. Tests lower it to exercise exhaustion.
var maxSlots = DefaultMaxSlots

// slot is one arena entry. Live slots are threaded by next/prev, free slots by
// freeNext.
type slot[T any] struct {
	value    T
	next     Index
	prev     Index
	freeNext Index
	live     bool
}

// get returns the value stored in live slot i.
func (l *List[T]) get(i Index) *T {
	l.mustLive(i)
	return &l.slots[i].value
}

// mustLive panics if i is out of range or denotes a free slot.
func (l *List[T]) mustLive(i Index) {
	if !checked {
		return
	}
	if i == None {
		panic("freelist: dereference of end cursor")
	}
	if int(i) >= len(l.slots) {
		panic(fmt.Sprintf("freelist: slot %d out of range (%d slots)", i, len(l.slots)))
	}
	if !l.slots[i].live {
		panic(fmt.Sprintf("freelist: slot %d is free", i))
	}
}

// grow appends a fresh slot holding v and returns its index.
func (l *List[T]) grow(v T) Index {
	if len(l.slots) >= maxSlots {
		panic(fmt.Errorf("%w: %d slots", ErrCapacityExceeded, len(l.slots)))
	}
	i := Index(len(l.slots))
	l.slots = append(l.slots, slot[T]{value: v, next: None, prev: None, freeNext: None, live: true})
	return i
}

// Reserve pre-grows the arena's backing storage to hold at least n slots
// without touching the live chain. Indices stay valid; pointers obtained from
// Ptr or At do not survive a reallocation.
func (l *List[T]) Reserve(n int) error {
	if n > maxSlots {
		return fmt.Errorf("%w: reserve %d slots, limit %d", ErrCapacityExceeded, n, maxSlots)
	}
	if n <= cap(l.slots) {
		return nil
	}
	l.slots = slices.Grow(l.slots, n-len(l.slots))
	return nil
}

// ShrinkToFit releases backing storage beyond the arena length. Free slots
// stay in place: the free chain lives in the same storage and indices never
// get renumbered.
func (l *List[T]) ShrinkToFit() {
	if cap(l.slots) == len(l.slots) {
		return
	}
	if len(l.slots) == 0 {
		l.slots = nil
		return
	}
	l.slots = slices.Clone(l.slots)
}

// Cap returns the number of slots the backing storage holds without
// reallocating.
func (l *List[T]) Cap() int {
	return cap(l.slots)
}

// Slots returns the arena length: live plus free slots.
func (l *List[T]) Slots() int {
	return len(l.slots)
}
