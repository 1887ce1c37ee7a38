package freelist

// Cursor denotes one element of a List, or the position past its last
// element (End). A cursor stays valid until its element is erased or the list
// is cleared; inserting or erasing other elements and growing the arena do
// not affect it.
//
// Cursors are comparable: two cursors are equal when they come from the same
// list and denote the same slot. Cursors of different lists are never equal,
// not even their End cursors.
type Cursor[T any] struct {
	list  *List[T]
	index Index
	gen   uint32
}

func (l *List[T]) cursor(i Index) Cursor[T] {
	return Cursor[T]{list: l, index: i, gen: l.gen}
}

// Begin returns a cursor to the first element, or End if the list is empty.
func (l *List[T]) Begin() Cursor[T] {
	if l.count == 0 {
		return l.End()
	}
	return l.cursor(l.head)
}

// Last returns a cursor to the last element, or End if the list is empty.
func (l *List[T]) Last() Cursor[T] {
	if l.count == 0 {
		return l.End()
	}
	return l.cursor(l.tail)
}

// End returns the past-the-end cursor.
func (l *List[T]) End() Cursor[T] {
	return l.cursor(None)
}

// CursorAt returns a cursor to live slot i.
func (l *List[T]) CursorAt(i Index) Cursor[T] {
	l.mustLive(i)
	return l.cursor(i)
}

// Index returns the slot index the cursor denotes, or None for End.
func (c Cursor[T]) Index() Index { return c.index }

// IsEnd reports whether c is the past-the-end cursor.
func (c Cursor[T]) IsEnd() bool { return c.index == None }

// Valid reports whether c can be dereferenced: it belongs to a list, was
// issued after the list's last Clear, and denotes a live slot.
func (c Cursor[T]) Valid() bool {
	l := c.list
	if l == nil || c.gen != l.gen || c.index == None {
		return false
	}
	return int(c.index) < len(l.slots) && l.slots[c.index].live
}

// Value returns the element c denotes.
func (c Cursor[T]) Value() T {
	return *c.Ptr()
}

// Ptr returns a pointer to the element c denotes. The pointer does not
// survive arena growth; the cursor does.
func (c Cursor[T]) Ptr() *T {
	c.check()
	return c.list.get(c.index)
}

// Set replaces the element c denotes.
func (c Cursor[T]) Set(v T) {
	*c.Ptr() = v
}

// Next returns a cursor to the following element, or End after the last one.
func (c Cursor[T]) Next() Cursor[T] {
	c.check()
	if checked && c.index == None {
		panic("freelist: Next of end cursor")
	}
	c.list.mustLive(c.index)
	c.index = c.list.slots[c.index].next
	return c
}

// Prev returns a cursor to the preceding element. Prev of End is the last
// element.
func (c Cursor[T]) Prev() Cursor[T] {
	c.check()
	l := c.list
	if c.index == None {
		if checked && l.count == 0 {
			panic("freelist: Prev of end cursor in empty list")
		}
		c.index = l.tail
		return c
	}
	l.mustLive(c.index)
	p := l.slots[c.index].prev
	if checked && p == None {
		panic("freelist: Prev of first element")
	}
	c.index = p
	return c
}

// check panics if c is the zero Cursor or predates a Clear of its list.
func (c Cursor[T]) check() {
	if !checked {
		return
	}
	if c.list == nil {
		panic("freelist: use of zero Cursor")
	}
	if c.gen != c.list.gen {
		panic("freelist: cursor invalidated by Clear")
	}
}

// mustOwn panics unless c is a valid cursor of l (End included).
func (l *List[T]) mustOwn(c Cursor[T]) {
	if !checked {
		return
	}
	if c.list != l {
		panic("freelist: cursor belongs to a different list")
	}
	c.check()
	if c.index != None {
		l.mustLive(c.index)
	}
}
