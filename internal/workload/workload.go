// Package workload holds the benchmark workloads run by freelistbench. Each
// workload drives a container only through its public API so that the
// counters measured around it reflect ordinary use.
package workload

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"slices"
	"strings"
)

var (
	// ErrUnknownWorkload is returned by Lookup for a name that is not registered.
	ErrUnknownWorkload = errors.New("workload: unknown workload")
	// ErrVerify is returned when a workload's result fails verification.
	ErrVerify = errors.New("workload: verification failed")
)

// Order is the order in which input values are generated.
type Order int

const (
	// Descending generates N-1 down to 0, the worst case for a naive insertion.
	Descending Order = iota
	// Ascending generates 0 up to N-1.
	Ascending
	// Random generates a seeded permutation of 0..N-1.
	Random
)

var orderNames = []string{"descending", "ascending", "random"}

func (o Order) String() string {
	if o < 0 || int(o) >= len(orderNames) {
		return fmt.Sprintf("Order(%d)", int(o))
	}
	return orderNames[o]
}

// ParseOrder returns the order with the given name.
func ParseOrder(s string) (Order, error) {
	i := slices.Index(orderNames, strings.ToLower(s))
	if i < 0 {
		return 0, fmt.Errorf("workload: unknown order %q (want one of %s)", s, strings.Join(orderNames, ", "))
	}
	return Order(i), nil
}

// DefaultN is the default input size: 400000 down to 0 in descending order.
const DefaultN = 400001

// Spec describes the input of a run.
type Spec struct {
	N     int
	Order Order
	Seed  uint64
}

// Validate reports whether s describes a valid input.
func (s Spec) Validate() error {
	if s.N < 0 {
		return fmt.Errorf("workload: negative size %d", s.N)
	}
	if s.Order < Descending || s.Order > Random {
		return fmt.Errorf("workload: invalid order %d", int(s.Order))
	}
	return nil
}

// Generate returns the input values described by s.
func Generate(s Spec) []int {
	v := make([]int, s.N)
	switch s.Order {
	case Ascending:
		for i := range v {
			v[i] = i
		}
	case Random:
		for i := range v {
			v[i] = i
		}
		r := rand.New(rand.NewPCG(s.Seed, s.Seed^0x9e3779b97f4a7c15))
		r.Shuffle(len(v), func(i, j int) { v[i], v[j] = v[j], v[i] })
	default:
		for i := range v {
			v[i] = s.N - 1 - i
		}
	}
	return v
}

// Workload is one named benchmark body.
type Workload struct {
	Name        string
	Description string
	// run performs the measured work and returns a check to run afterwards,
	// outside the measured region.
	run func(values []int) func() error
}

// Run performs the workload on values and returns its verification, to be
// called once measurement is over.
func (w Workload) Run(values []int) (verify func() error) {
	return w.run(values)
}

var registry = []Workload{
	{
		Name:        "freelist-sort",
		Description: "populate a freelist.List and Sort it by relinking slots",
		run:         freelistSort,
	},
	{
		Name:        "freelist-sort-values",
		Description: "populate a freelist.List and SortValues it through a buffer",
		run:         freelistSortValues,
	},
	{
		Name:        "list-sort",
		Description: "populate a container/list.List and sort it by relinking elements",
		run:         listSort,
	},
	{
		Name:        "freelist-churn",
		Description: "FIFO churn through a bounded freelist.List window",
		run:         freelistChurn,
	},
	{
		Name:        "queue-churn",
		Description: "FIFO churn through a bounded eapache/queue window",
		run:         queueChurn,
	},
}

// All returns every registered workload.
func All() []Workload {
	return slices.Clone(registry)
}

// Names returns the names of every registered workload.
func Names() []string {
	names := make([]string, len(registry))
	for i, w := range registry {
		names[i] = w.Name
	}
	return names
}

// Lookup returns the workload with the given name.
func Lookup(name string) (Workload, error) {
	for _, w := range registry {
		if w.Name == name {
			return w, nil
		}
	}
	return Workload{}, fmt.Errorf("%w: %q", ErrUnknownWorkload, name)
}
