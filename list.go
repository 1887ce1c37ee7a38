package freelist

import (
	"iter"
	"slices"
)

// List is a doubly linked sequence whose elements live in a growable arena of
// slots addressed by Index. Erased slots are threaded onto a free chain and
// reused before the arena grows, so steady-state churn does not allocate.
//
// The zero value is an empty list ready to use. A List is not safe for
// concurrent use; concurrent readers are fine as long as nobody mutates it.
type List[T any] struct {
	slots    []slot[T]
	head     Index
	tail     Index
	freeHead Index
	count    int
	gen      uint32 // bumped by Clear and Swap to invalidate cursors
}

// Option configures a List created by New.
type Option func(*options)

type options struct {
	capacity int
}

// WithCapacity reserves room for n slots up front.
func WithCapacity(n int) Option {
	return func(o *options) {
		o.capacity = n
	}
}

// New creates an empty list.
func New[T any](opts ...Option) *List[T] {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	l := &List[T]{head: None, tail: None, freeHead: None}
	if o.capacity > 0 {
		l.slots = make([]slot[T], 0, min(o.capacity, maxSlots))
	}
	return l
}

// From creates a list holding values in order.
func From[T any](values ...T) *List[T] {
	l := New[T](WithCapacity(len(values)))
	for _, v := range values {
		l.PushBack(v)
	}
	return l
}

// Collect creates a list from the values yielded by seq.
func Collect[T any](seq iter.Seq[T]) *List[T] {
	l := New[T]()
	for v := range seq {
		l.PushBack(v)
	}
	return l
}

// Len returns the number of elements.
func (l *List[T]) Len() int { return l.count }

// Empty reports whether the list has no elements.
func (l *List[T]) Empty() bool { return l.count == 0 }

// PushFront inserts v at the front and returns a cursor to it.
func (l *List[T]) PushFront(v T) Cursor[T] {
	i := l.allocate(v)
	l.linkBefore(i, l.head)
	return l.cursor(i)
}

// PushBack inserts v at the back and returns a cursor to it.
func (l *List[T]) PushBack(v T) Cursor[T] {
	i := l.allocate(v)
	l.linkBefore(i, None)
	return l.cursor(i)
}

// Insert inserts v before pos and returns a cursor to it. If pos is End, v is
// appended.
func (l *List[T]) Insert(pos Cursor[T], v T) Cursor[T] {
	l.mustOwn(pos)
	i := l.allocate(v)
	l.linkBefore(i, pos.index)
	return l.cursor(i)
}

// InsertSeq inserts the values of seq before pos, keeping their order, and
// returns a cursor to the first inserted element. It returns pos if seq
// yields nothing.
func (l *List[T]) InsertSeq(pos Cursor[T], seq iter.Seq[T]) Cursor[T] {
	l.mustOwn(pos)
	first := None
	for v := range seq {
		i := l.allocate(v)
		l.linkBefore(i, pos.index)
		if first == None {
			first = i
		}
	}
	if first == None {
		return pos
	}
	return l.cursor(first)
}

// InsertSlice inserts values before pos. See InsertSeq.
func (l *List[T]) InsertSlice(pos Cursor[T], values []T) Cursor[T] {
	l.mustOwn(pos)
	if need := len(values) - l.FreeSlots(); need > 0 {
		if err := l.Reserve(len(l.slots) + need); err != nil {
			panic(err)
		}
	}
	return l.InsertSeq(pos, slices.Values(values))
}

// Erase removes the element at pos and returns a cursor to the element that
// followed it, or End.
func (l *List[T]) Erase(pos Cursor[T]) Cursor[T] {
	l.mustOwn(pos)
	if pos.index == None {
		panic("freelist: erase of end cursor")
	}
	next := l.slots[pos.index].next
	l.remove(pos.index)
	return l.cursor(next)
}

// EraseRange removes the elements in [first, last) and returns last.
func (l *List[T]) EraseRange(first, last Cursor[T]) Cursor[T] {
	l.mustOwn(first)
	l.mustOwn(last)
	for i := first.index; i != last.index; i = l.slots[i].next {
		if i == None {
			panic("freelist: range end precedes range start")
		}
	}
	for first != last {
		first = l.Erase(first)
	}
	return last
}

// PopFront removes and returns the first element. It reports false and leaves
// the list untouched when the list is empty.
func (l *List[T]) PopFront() (T, bool) {
	if l.count == 0 {
		var zero T
		return zero, false
	}
	return l.remove(l.head), true
}

// PopBack removes and returns the last element. It reports false and leaves
// the list untouched when the list is empty.
func (l *List[T]) PopBack() (T, bool) {
	if l.count == 0 {
		var zero T
		return zero, false
	}
	return l.remove(l.tail), true
}

// Front returns the first element. It panics if the list is empty.
func (l *List[T]) Front() T {
	if l.count == 0 {
		panic("freelist: Front of empty list")
	}
	return l.slots[l.head].value
}

// Back returns the last element. It panics if the list is empty.
func (l *List[T]) Back() T {
	if l.count == 0 {
		panic("freelist: Back of empty list")
	}
	return l.slots[l.tail].value
}

// At returns a pointer to the value in live slot i. The pointer is invalidated
// by arena growth; the index is not.
func (l *List[T]) At(i Index) *T {
	return l.get(i)
}

// Find returns a cursor to the first element equal to v, or End.
func Find[T comparable](l *List[T], v T) Cursor[T] {
	return l.FindFunc(func(x T) bool { return x == v })
}

// FindFunc returns a cursor to the first element satisfying match, or End.
func (l *List[T]) FindFunc(match func(T) bool) Cursor[T] {
	if l.count == 0 {
		return l.End()
	}
	for i := l.head; i != None; i = l.slots[i].next {
		if match(l.slots[i].value) {
			return l.cursor(i)
		}
	}
	return l.End()
}

// Clear removes every element and drops the arena. Every cursor issued before
// Clear is invalid afterwards.
func (l *List[T]) Clear() {
	l.slots = nil
	l.head, l.tail, l.freeHead = None, None, None
	l.count = 0
	l.gen++
}

// Swap exchanges the contents of l and other. Cursors into either list are
// invalidated.
func (l *List[T]) Swap(other *List[T]) {
	l.slots, other.slots = other.slots, l.slots
	l.head, other.head = other.head, l.head
	l.tail, other.tail = other.tail, l.tail
	l.freeHead, other.freeHead = other.freeHead, l.freeHead
	l.count, other.count = other.count, l.count
	l.gen++
	other.gen++
}

// Clone returns a copy of l with the same slot layout, so an Index valid in l
// denotes the equal element in the clone. Values are copied shallowly.
func (l *List[T]) Clone() *List[T] {
	c := &List[T]{
		slots:    slices.Clone(l.slots),
		head:     l.head,
		tail:     l.tail,
		freeHead: l.freeHead,
		count:    l.count,
	}
	if len(c.slots) == 0 {
		c.slots = nil
		c.head, c.tail, c.freeHead = None, None, None
	}
	return c
}

// All yields the index and value of every element from front to back. The
// element just yielded may be erased during iteration.
func (l *List[T]) All() iter.Seq2[Index, T] {
	return func(yield func(Index, T) bool) {
		if l.count == 0 {
			return
		}
		for i := l.head; i != None; {
			next := l.slots[i].next
			if !yield(i, l.slots[i].value) {
				return
			}
			i = next
		}
	}
}

// Backward yields the index and value of every element from back to front.
// The element just yielded may be erased during iteration.
func (l *List[T]) Backward() iter.Seq2[Index, T] {
	return func(yield func(Index, T) bool) {
		if l.count == 0 {
			return
		}
		for i := l.tail; i != None; {
			prev := l.slots[i].prev
			if !yield(i, l.slots[i].value) {
				return
			}
			i = prev
		}
	}
}

// Values yields every value from front to back.
func (l *List[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, v := range l.All() {
			if !yield(v) {
				return
			}
		}
	}
}

// Slice returns the values in traversal order.
func (l *List[T]) Slice() []T {
	out := make([]T, 0, l.count)
	for _, v := range l.All() {
		out = append(out, v)
	}
	return out
}

// linkBefore splices unlinked slot i in front of at. at == None appends.
func (l *List[T]) linkBefore(i, at Index) {
	s := &l.slots[i]
	if at == None {
		s.prev = l.tail
		s.next = None
		if l.tail != None {
			l.slots[l.tail].next = i
		} else {
			l.head = i
		}
		l.tail = i
		return
	}

	a := &l.slots[at]
	s.next = at
	s.prev = a.prev
	if a.prev != None {
		l.slots[a.prev].next = i
	} else {
		l.head = i
	}
	a.prev = i
}

// unlink detaches live slot i from its neighbours.
func (l *List[T]) unlink(i Index) {
	s := &l.slots[i]
	if s.prev != None {
		l.slots[s.prev].next = s.next
	} else {
		l.head = s.next
	}
	if s.next != None {
		l.slots[s.next].prev = s.prev
	} else {
		l.tail = s.prev
	}
}

// remove unlinks slot i, frees it and returns its value.
func (l *List[T]) remove(i Index) T {
	l.unlink(i)
	return l.release(i)
}
