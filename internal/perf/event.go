// Package perf reads hardware performance counters around a region of code.
//
// An EventSet opens one counter per requested Event as a single group, so all
// counters are enabled, disabled and read together. Measure wraps a function
// call in start/stop and always stops the counters, including when the
// function fails or panics.
//
// Counters are available on Linux through perf_event_open(2). Depending on
// /proc/sys/kernel/perf_event_paranoid, opening them may need privileges. On
// other platforms New returns ErrUnsupported.
package perf

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Event identifies one hardware counter.
type Event int

const (
	// L1ICacheMisses counts L1 instruction cache read misses.
	L1ICacheMisses Event = iota
	// L1DCacheAccesses counts L1 data cache reads.
	L1DCacheAccesses
	// LLCacheMisses counts last level cache read misses.
	LLCacheMisses
	// LLCacheAccesses counts last level cache reads.
	LLCacheAccesses
	// CPUCycles counts CPU cycles.
	CPUCycles
	// Instructions counts retired instructions.
	Instructions
	// BranchMisses counts mispredicted branches.
	BranchMisses

	numEvents
)

// DefaultEvents is the cache event set the benchmarks report by default.
var DefaultEvents = []Event{
	L1ICacheMisses,
	L1DCacheAccesses,
	LLCacheMisses,
	LLCacheAccesses,
}

var eventNames = [numEvents]string{
	L1ICacheMisses:   "L1-icache-load-misses",
	L1DCacheAccesses: "L1-dcache-loads",
	LLCacheMisses:    "LLC-load-misses",
	LLCacheAccesses:  "LLC-loads",
	CPUCycles:        "cycles",
	Instructions:     "instructions",
	BranchMisses:     "branch-misses",
}

func (e Event) String() string {
	if e < 0 || e >= numEvents {
		return fmt.Sprintf("Event(%d)", int(e))
	}
	return eventNames[e]
}

// Events returns every known event.
func Events() []Event {
	out := make([]Event, numEvents)
	for i := range out {
		out[i] = Event(i)
	}
	return out
}

// ParseEvent returns the event with the given name, compared case-insensitively.
func ParseEvent(name string) (Event, error) {
	for i, n := range eventNames {
		if strings.EqualFold(n, name) {
			return Event(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownEvent, name)
}

// ParseEvents parses a list of event names.
func ParseEvents(names []string) ([]Event, error) {
	out := make([]Event, 0, len(names))
	for _, n := range names {
		ev, err := ParseEvent(strings.TrimSpace(n))
		if err != nil {
			return nil, err
		}
		out = append(out, ev)
	}
	return out, nil
}

// Counter is one event's value.
type Counter struct {
	Event Event
	Value uint64
}

// Counters holds the values of an EventSet in the order its events were
// requested.
type Counters []Counter

// Get returns the value of ev.
func (c Counters) Get(ev Event) (uint64, bool) {
	for _, x := range c {
		if x.Event == ev {
			return x.Value, true
		}
	}
	return 0, false
}

// Map returns the counters keyed by event name.
func (c Counters) Map() map[string]uint64 {
	m := make(map[string]uint64, len(c))
	for _, x := range c {
		m[x.Event.String()] = x.Value
	}
	return m
}

// String formats the counters as space separated name=value pairs.
func (c Counters) String() string {
	var b strings.Builder
	for i, x := range c {
		if i > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "%s=%d", x.Event, x.Value)
	}
	return b.String()
}

// MarshalJSON encodes the counters as an object keyed by event name.
func (c Counters) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.Map())
}
