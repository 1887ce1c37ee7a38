package freelist_test

import (
	"cmp"
	"container/list"
	"fmt"
	"math/rand/v2"
	"runtime"
	"slices"
	"testing"

	"github.com/eapache/queue"

	"github.com/pavanmanishd/freelist"
)

var benchSizes = []int{1 << 10, 1 << 14, 1 << 17}

func descending(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = n - i
	}
	return out
}

func shuffled(n int) []int {
	out := descending(n)
	rand.New(rand.NewPCG(1, uint64(n))).Shuffle(n, func(i, j int) {
		out[i], out[j] = out[j], out[i]
	})
	return out
}

// BenchmarkPushBack measures building a list element by element
func BenchmarkPushBack(b *testing.B) {
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("FreeList_%d", n), func(b *testing.B) {
			b.ReportAllocs()
			for b.Loop() {
				l := freelist.New[int]()
				for i := range n {
					l.PushBack(i)
				}
			}
		})

		b.Run(fmt.Sprintf("FreeListReserved_%d", n), func(b *testing.B) {
			b.ReportAllocs()
			for b.Loop() {
				l := freelist.New[int](freelist.WithCapacity(n))
				for i := range n {
					l.PushBack(i)
				}
			}
		})

		b.Run(fmt.Sprintf("ContainerList_%d", n), func(b *testing.B) {
			b.ReportAllocs()
			for b.Loop() {
				l := list.New()
				for i := range n {
					l.PushBack(i)
				}
			}
		})
	}
}

// BenchmarkChurn measures a sliding window: push at the back, pop at the
// front. The free list reaches a steady state with no allocation.
func BenchmarkChurn(b *testing.B) {
	const window = 1024

	b.Run("FreeList", func(b *testing.B) {
		l := freelist.New[int]()
		for i := range window {
			l.PushBack(i)
		}
		b.ReportAllocs()
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			l.PushBack(i)
			l.PopFront()
		}
	})

	b.Run("ContainerList", func(b *testing.B) {
		l := list.New()
		for i := range window {
			l.PushBack(i)
		}
		b.ReportAllocs()
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			l.PushBack(i)
			l.Remove(l.Front())
		}
	})

	b.Run("Queue", func(b *testing.B) {
		q := queue.New()
		for i := range window {
			q.Add(i)
		}
		b.ReportAllocs()
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			q.Add(i)
			q.Remove()
		}
	})
}

// BenchmarkMiddleInsertErase inserts and erases next to a fixed cursor
func BenchmarkMiddleInsertErase(b *testing.B) {
	const n = 4096

	b.Run("FreeList", func(b *testing.B) {
		l := freelist.New[int]()
		for i := range n {
			l.PushBack(i)
		}
		mid := l.Begin()
		for range n / 2 {
			mid = mid.Next()
		}
		b.ReportAllocs()
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			l.Erase(l.Insert(mid, i))
		}
	})

	b.Run("ContainerList", func(b *testing.B) {
		l := list.New()
		for i := range n {
			l.PushBack(i)
		}
		mid := l.Front()
		for range n / 2 {
			mid = mid.Next()
		}
		b.ReportAllocs()
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			l.Remove(l.InsertBefore(i, mid))
		}
	})
}

// BenchmarkSort compares both sort strategies with sorting container/list
func BenchmarkSort(b *testing.B) {
	inputs := []struct {
		name string
		gen  func(int) []int
	}{
		{"Descending", descending},
		{"Random", shuffled},
	}

	for _, in := range inputs {
		for _, n := range benchSizes {
			values := in.gen(n)

			b.Run(fmt.Sprintf("%s/Links_%d", in.name, n), func(b *testing.B) {
				for i := 0; i < b.N; i++ {
					b.StopTimer()
					l := freelist.From(values...)
					b.StartTimer()
					l.Sort(cmp.Compare[int])
				}
			})

			b.Run(fmt.Sprintf("%s/Values_%d", in.name, n), func(b *testing.B) {
				for i := 0; i < b.N; i++ {
					b.StopTimer()
					l := freelist.From(values...)
					b.StartTimer()
					l.SortValues(cmp.Compare[int])
				}
			})

			b.Run(fmt.Sprintf("%s/ContainerList_%d", in.name, n), func(b *testing.B) {
				for i := 0; i < b.N; i++ {
					b.StopTimer()
					l := list.New()
					for _, v := range values {
						l.PushBack(v)
					}
					b.StartTimer()
					sortContainerList(l)
				}
			})
		}
	}
}

func sortContainerList(l *list.List) {
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
}

// BenchmarkIterate measures a full traversal after the list has been sorted
// by links, which scatters neighbours across the arena.
func BenchmarkIterate(b *testing.B) {
	const n = 1 << 16

	b.Run("FreeListInOrder", func(b *testing.B) {
		l := freelist.From(slices.Sorted(slices.Values(shuffled(n)))...)
		benchIterate(b, l)
	})

	b.Run("FreeListScattered", func(b *testing.B) {
		l := freelist.From(shuffled(n)...)
		l.Sort(cmp.Compare[int])
		benchIterate(b, l)
	})

	b.Run("ContainerList", func(b *testing.B) {
		l := list.New()
		for i := range n {
			l.PushBack(i)
		}
		runtime.GC()
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			sum := 0
			for e := l.Front(); e != nil; e = e.Next() {
				sum += e.Value.(int)
			}
			sink = sum
		}
	})
}

var sink int

func benchIterate(b *testing.B, l *freelist.List[int]) {
	runtime.GC()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sum := 0
		for v := range l.Values() {
			sum += v
		}
		sink = sum
	}
}
