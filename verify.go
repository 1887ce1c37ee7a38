package freelist

import "fmt"

// Verify walks both chains and reports the first broken invariant: the live
// chain must be a consistent doubly linked list of Len slots between head and
// tail, the free chain must hold every other slot, and no slot may be on both.
// It is O(n) and meant for tests and debugging.
func (l *List[T]) Verify() error {
	if len(l.slots) == 0 {
		if l.count != 0 {
			return fmt.Errorf("freelist: empty arena with count %d", l.count)
		}
		return nil
	}
	if (l.head == None) != (l.tail == None) || (l.head == None) != (l.count == 0) {
		return fmt.Errorf("freelist: head %d, tail %d, count %d disagree", l.head, l.tail, l.count)
	}

	seen := make([]bool, len(l.slots))

	n := 0
	prev := None
	for i := l.head; i != None; i = l.slots[i].next {
		if int(i) >= len(l.slots) {
			return fmt.Errorf("freelist: live link to slot %d out of range", i)
		}
		if seen[i] {
			return fmt.Errorf("freelist: live chain revisits slot %d", i)
		}
		seen[i] = true
		s := &l.slots[i]
		if !s.live {
			return fmt.Errorf("freelist: free slot %d on live chain", i)
		}
		if s.prev != prev {
			return fmt.Errorf("freelist: slot %d prev is %d, want %d", i, s.prev, prev)
		}
		prev = i
		n++
	}
	if prev != l.tail {
		return fmt.Errorf("freelist: live chain ends at %d, tail is %d", prev, l.tail)
	}
	if n != l.count {
		return fmt.Errorf("freelist: live chain has %d slots, count is %d", n, l.count)
	}

	free := 0
	for i := l.freeHead; i != None; i = l.slots[i].freeNext {
		if int(i) >= len(l.slots) {
			return fmt.Errorf("freelist: free link to slot %d out of range", i)
		}
		if seen[i] {
			return fmt.Errorf("freelist: slot %d on both chains or revisited", i)
		}
		seen[i] = true
		if l.slots[i].live {
			return fmt.Errorf("freelist: live slot %d on free chain", i)
		}
		free++
	}
	if n+free != len(l.slots) {
		return fmt.Errorf("freelist: %d live + %d free slots, arena has %d", n, free, len(l.slots))
	}
	return nil
}
