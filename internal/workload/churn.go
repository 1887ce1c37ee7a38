package workload

import (
	"fmt"

	"github.com/eapache/queue"

	"github.com/pavanmanishd/freelist"
)

// ChurnWindow is the number of elements kept alive by the churn workloads.
const ChurnWindow = 1024

// freelistChurn pushes every value to the back and pops from the front once
// the window is full, so after warm-up every push reuses a freed slot.
func freelistChurn(values []int) func() error {
	l := freelist.New[int](freelist.WithCapacity(ChurnWindow + 1))
	sum := 0
	for _, v := range values {
		l.PushBack(v)
		if l.Len() > ChurnWindow {
			x, _ := l.PopFront()
			sum += x
		}
	}

	return func() error {
		if err := l.Verify(); err != nil {
			return fmt.Errorf("%w: %w", ErrVerify, err)
		}
		if want := min(len(values), ChurnWindow); l.Len() != want {
			return fmt.Errorf("%w: %d elements, want %d", ErrVerify, l.Len(), want)
		}
		// Slots are recycled: the arena never outgrows the window.
		if l.Slots() > ChurnWindow+1 {
			return fmt.Errorf("%w: arena grew to %d slots", ErrVerify, l.Slots())
		}
		return verifyChurnSum(values, sum)
	}
}

func queueChurn(values []int) func() error {
	q := queue.New()
	sum := 0
	for _, v := range values {
		q.Add(v)
		if q.Length() > ChurnWindow {
			sum += q.Remove().(int)
		}
	}

	return func() error {
		if want := min(len(values), ChurnWindow); q.Length() != want {
			return fmt.Errorf("%w: %d elements, want %d", ErrVerify, q.Length(), want)
		}
		return verifyChurnSum(values, sum)
	}
}

// verifyChurnSum checks that exactly the oldest values were evicted.
func verifyChurnSum(values []int, sum int) error {
	evicted := max(len(values)-ChurnWindow, 0)
	want := 0
	for _, v := range values[:evicted] {
		want += v
	}
	if sum != want {
		return fmt.Errorf("%w: evicted sum %d, want %d", ErrVerify, sum, want)
	}
	return nil
}
