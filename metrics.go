package freelist

// Utilization returns the ratio of live slots to arena slots (0.0 to 1.0).
// Returns 0.0 if the arena has no slots.
func (l *List[T]) Utilization() float64 {
	if len(l.slots) == 0 {
		return 0
	}
	return float64(l.count) / float64(len(l.slots))
}

// Metrics returns a snapshot of arena statistics.
func (l *List[T]) Metrics() ListMetrics {
	return ListMetrics{
		Len:         l.count,
		Slots:       len(l.slots),
		FreeSlots:   l.FreeSlots(),
		Capacity:    cap(l.slots),
		Utilization: l.Utilization(),
	}
}

// ListMetrics contains statistical information about a list's arena.
type ListMetrics struct {
	Len         int     // Live elements
	Slots       int     // Arena length, live plus free
	FreeSlots   int     // Slots on the free chain
	Capacity    int     // Slots the backing storage holds without growing
	Utilization float64 // Ratio of live to arena slots (0.0-1.0)
}
