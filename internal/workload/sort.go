package workload

import (
	"cmp"
	"container/list"
	"fmt"
	"iter"
	"slices"

	"github.com/pavanmanishd/freelist"
)

func freelistSort(values []int) func() error {
	l := populate(values)
	l.Sort(cmp.Compare[int])
	return func() error { return verifyList(l, len(values)) }
}

func freelistSortValues(values []int) func() error {
	l := populate(values)
	l.SortValues(cmp.Compare[int])
	return func() error { return verifyList(l, len(values)) }
}

func populate(values []int) *freelist.List[int] {
	l := freelist.New[int](freelist.WithCapacity(len(values)))
	for _, v := range values {
		l.PushBack(v)
	}
	return l
}

func verifyList(l *freelist.List[int], n int) error {
	if err := l.Verify(); err != nil {
		return fmt.Errorf("%w: %w", ErrVerify, err)
	}
	if l.Len() != n {
		return fmt.Errorf("%w: %d elements, want %d", ErrVerify, l.Len(), n)
	}
	return verifySorted(l.Values())
}

// listSort sorts a container/list by collecting its elements, ordering them
// and moving each to the back in turn. Values never move, only links.
func listSort(values []int) func() error {
	l := list.New()
	for _, v := range values {
		l.PushBack(v)
	}

	elems := make([]*list.Element, 0, l.Len())
	for e := l.Front(); e != nil; e = e.Next() {
		elems = append(elems, e)
	}
	slices.SortStableFunc(elems, func(a, b *list.Element) int {
		return cmp.Compare(a.Value.(int), b.Value.(int))
	})
	for _, e := range elems {
		l.MoveToBack(e)
	}

	return func() error {
		if l.Len() != len(values) {
			return fmt.Errorf("%w: %d elements, want %d", ErrVerify, l.Len(), len(values))
		}
		return verifySorted(func(yield func(int) bool) {
			for e := l.Front(); e != nil; e = e.Next() {
				if !yield(e.Value.(int)) {
					return
				}
			}
		})
	}
}

func verifySorted(seq iter.Seq[int]) error {
	first, prev, pos := true, 0, 0
	for v := range seq {
		if !first && v < prev {
			return fmt.Errorf("%w: %d follows %d at position %d", ErrVerify, v, prev, pos)
		}
		first, prev = false, v
		pos++
	}
	return nil
}
