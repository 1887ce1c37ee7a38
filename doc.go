// Package freelist implements a doubly linked list stored in an arena of
// fixed-size slots with an internal free list.
//
// # Overview
//
// A List keeps every element in one contiguous slice of slots. Links between
// elements are slot indices rather than pointers, and erased slots are
// threaded onto a free chain that the next insertion reuses. This gives list
// semantics without a heap allocation per element:
//
//   - O(1) push, pop, insert and erase at a known position
//   - Bidirectional cursors that survive unrelated mutations and arena growth
//   - Cache-friendly traversal and a merge sort that only rewrites links
//   - Reduced garbage collection pressure under churn
//
// # Basic Usage
//
//	l := freelist.New[int](freelist.WithCapacity(1024))
//
//	l.PushBack(3)
//	l.PushBack(1)
//	c := l.PushFront(2)
//
//	// Insert before a cursor, erase through one
//	l.Insert(c, 7)
//	l.Erase(c)
//
//	for v := range l.Values() {
//		fmt.Println(v)
//	}
//
// # Cursors
//
// A Cursor is a (list, slot index) pair. It stays valid until its own element
// is erased or the list is cleared; other inserts and erases, arena growth
// and Sort leave it alone. Pointers returned by Cursor.Ptr and List.At point
// into the arena and are invalidated by growth; indices are not.
//
// # Sorting
//
// Two strategies with different guarantees are offered under different names:
//
//   - Sort relinks slots (bottom-up merge sort on the link fields). It is
//     stable, needs O(1) extra space and preserves identity: a cursor denotes
//     the same value before and after.
//   - SortValues copies the values out, sorts them and writes them back in
//     traversal order. It is stable and often faster, but a cursor ends up
//     denoting whatever value was written into its slot.
//
// Both accept a sub-range through SortRange and SortValuesRange.
//
// # Contract Violations
//
// Dereferencing End, using a cursor of another list, a cursor into a freed
// slot or a cursor issued before Clear panics with a "freelist: ..." message.
// Building with -tags freelist_unchecked removes these checks; misuse is then
// undefined.
//
// # Thread Safety
//
// A List is not safe for concurrent mutation. Concurrent readers are fine as
// long as no goroutine mutates the list at the same time.
//
// # Metrics and Monitoring
//
// The list reports arena statistics:
//
//	m := l.Metrics()
//	fmt.Printf("Utilization: %.2f%%\n", m.Utilization*100)
//	fmt.Printf("Free slots: %d of %d\n", m.FreeSlots, m.Slots)
package freelist
