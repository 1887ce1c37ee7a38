package freelist

import (
	"cmp"
	"slices"
)

// Sort orders the list by cmp, which follows the cmp.Compare convention.
//
// Sort relinks slots and never moves values: it is a stable, iterative
// bottom-up merge sort over the link fields using O(1) extra space. Every
// cursor keeps denoting the same value; only its position changes.
func (l *List[T]) Sort(cmp func(a, b T) int) {
	if cmp == nil {
		panic("freelist: nil comparator")
	}
	if l.count < 2 {
		return
	}
	l.sortLinks(l.head, l.tail, l.count, cmp)
}

// SortOrdered sorts l in ascending order. See List.Sort.
func SortOrdered[T cmp.Ordered](l *List[T]) {
	l.Sort(cmp.Compare[T])
}

// SortRange sorts the elements in [first, last) like Sort, reconnecting the
// sorted run to the untouched elements on both sides. first and last keep
// denoting their values, so after the call first may no longer be the start
// of the run; last, being outside the range, still bounds it.
func (l *List[T]) SortRange(first, last Cursor[T], cmp func(a, b T) int) {
	l.mustOwn(first)
	l.mustOwn(last)
	if cmp == nil {
		panic("freelist: nil comparator")
	}
	if first == last || first.index == None {
		return
	}

	start := first.index
	end, n := l.rangeEnd(start, last.index)
	if n < 2 {
		return
	}
	l.sortLinks(start, end, n, cmp)
}

// SortValues orders the list by cmp by moving values between slots while
// leaving the links alone: the values are copied out, stable-sorted, and
// written back in traversal order. It is usually faster than Sort on large
// lists but does not preserve identity: after SortValues a cursor denotes
// whichever value landed in its slot. It needs a buffer of Len values.
func (l *List[T]) SortValues(cmp func(a, b T) int) {
	if cmp == nil {
		panic("freelist: nil comparator")
	}
	if l.count < 2 {
		return
	}
	l.sortValues(l.head, None, cmp)
}

// SortValuesRange is SortValues restricted to [first, last). Cursors keep
// their slots, so first and last still bound the sorted run.
func (l *List[T]) SortValuesRange(first, last Cursor[T], cmp func(a, b T) int) {
	l.mustOwn(first)
	l.mustOwn(last)
	if cmp == nil {
		panic("freelist: nil comparator")
	}
	if first == last || first.index == None {
		return
	}
	l.sortValues(first.index, last.index, cmp)
}

// rangeEnd returns the last slot of [start, stop) and the run length. It
// panics if stop is not reachable from start.
func (l *List[T]) rangeEnd(start, stop Index) (Index, int) {
	end, n := start, 1
	for {
		next := l.slots[end].next
		if next == stop {
			return end, n
		}
		if next == None {
			panic("freelist: range end precedes range start")
		}
		end = next
		n++
	}
}

// sortLinks merge-sorts the n-element run start..end (inclusive) in place.
func (l *List[T]) sortLinks(start, end Index, n int, cmp func(a, b T) int) {
	before := l.slots[start].prev
	after := l.slots[end].next
	l.slots[end].next = None

	head, tail := start, end
	for width := 1; width < n; width *= 2 {
		rest := head
		head, tail = None, None
		for rest != None {
			left := rest
			right := l.split(left, width)
			if right == None {
				// Odd run out: carry it over unchanged.
				if tail == None {
					head = left
				} else {
					l.slots[tail].next = left
				}
				for tail = left; l.slots[tail].next != None; {
					tail = l.slots[tail].next
				}
				break
			}
			rest = l.split(right, width)

			mh, mt := l.merge(left, right, cmp)
			if tail == None {
				head = mh
			} else {
				l.slots[tail].next = mh
			}
			tail = mt
		}
	}

	// Merging only maintained next; rebuild prev in one pass.
	prev := before
	for i := head; i != None; i = l.slots[i].next {
		l.slots[i].prev = prev
		prev = i
	}

	if before != None {
		l.slots[before].next = head
	} else {
		l.head = head
	}
	l.slots[tail].next = after
	if after != None {
		l.slots[after].prev = tail
	} else {
		l.tail = tail
	}
}

// split cuts the next chain after at most n slots starting at i and returns
// the first slot of the remainder.
func (l *List[T]) split(i Index, n int) Index {
	for ; n > 1 && l.slots[i].next != None; n-- {
		i = l.slots[i].next
	}
	rest := l.slots[i].next
	l.slots[i].next = None
	return rest
}

// merge merges two sorted next chains, taking from a on ties.
func (l *List[T]) merge(a, b Index, cmp func(a, b T) int) (head, tail Index) {
	head, tail = None, None
	for a != None && b != None {
		var i Index
		if cmp(l.slots[b].value, l.slots[a].value) < 0 {
			i, b = b, l.slots[b].next
		} else {
			i, a = a, l.slots[a].next
		}
		if tail == None {
			head = i
		} else {
			l.slots[tail].next = i
		}
		tail = i
	}

	rest := a
	if rest == None {
		rest = b
	}
	if rest != None {
		if tail == None {
			head = rest
		} else {
			l.slots[tail].next = rest
		}
		for tail = rest; l.slots[tail].next != None; {
			tail = l.slots[tail].next
		}
	}
	return head, tail
}

// sortValues stable-sorts the values of [start, stop) and writes them back in
// traversal order.
func (l *List[T]) sortValues(start, stop Index, cmp func(a, b T) int) {
	buf := make([]T, 0, l.count)
	for i := start; i != stop; i = l.slots[i].next {
		if i == None {
			panic("freelist: range end precedes range start")
		}
		buf = append(buf, l.slots[i].value)
	}
	if len(buf) < 2 {
		return
	}

	slices.SortStableFunc(buf, cmp)

	i := start
	for _, v := range buf {
		l.slots[i].value = v
		i = l.slots[i].next
	}
}
