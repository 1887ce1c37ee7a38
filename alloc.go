package freelist

// allocate stores v in a slot and returns its index with both links unset.
// A slot on the free chain is reused before the arena grows.
func (l *List[T]) allocate(v T) Index {
	if len(l.slots) == 0 {
		// Zero value or freshly cleared list.
		l.head, l.tail, l.freeHead = None, None, None
	}

	var i Index
	if l.freeHead != None {
		i = l.freeHead
		s := &l.slots[i]
		l.freeHead = s.freeNext
		*s = slot[T]{value: v, next: None, prev: None, freeNext: None, live: true}
	} else {
		i = l.grow(v)
	}

	l.count++
	return i
}

// release pushes slot i onto the free chain. The caller must already have
// unlinked i from the live chain.
func (l *List[T]) release(i Index) T {
	s := &l.slots[i]
	v := s.value

	// Drop the value so the arena does not keep it reachable.
	var zero T
	s.value = zero
	s.next, s.prev = None, None
	s.live = false
	s.freeNext = l.freeHead
	l.freeHead = i

	l.count--
	return v
}

// FreeSlots returns the length of the free chain.
func (l *List[T]) FreeSlots() int {
	if len(l.slots) == 0 {
		return 0
	}
	n := 0
	for i := l.freeHead; i != None; i = l.slots[i].freeNext {
		n++
	}
	return n
}
