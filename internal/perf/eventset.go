package perf

import (
	"errors"
	"slices"
)

// backend is the counter subsystem. fds are opaque handles; the first handle
// of a set is the group leader and group operations are issued on it.
type backend interface {
	open(ev Event, leader int) (int, error)
	enable(leader int) error
	disable(leader int) error
	reset(leader int) error
	read(leader int, n int) ([]uint64, error)
	close(fd int) error
}

// sys is the platform backend.
var sys backend = platformBackend{}

// EventSet is a group of counters that start, stop and reset together.
// An EventSet is not safe for concurrent use.
type EventSet struct {
	b       backend
	events  []Event
	fds     []int
	running bool
	closed  bool
}

// New opens one counter per event. The counters start disabled.
func New(events ...Event) (*EventSet, error) {
	return newEventSet(sys, events)
}

func newEventSet(b backend, events []Event) (*EventSet, error) {
	if len(events) == 0 {
		return nil, ErrNoEvents
	}
	for i, ev := range events {
		if ev < 0 || ev >= numEvents {
			return nil, &EventError{Op: "add", Event: ev, Err: ErrUnknownEvent}
		}
		if slices.Contains(events[:i], ev) {
			return nil, &EventError{Op: "add", Event: ev, Err: ErrDuplicateEvent}
		}
	}

	s := &EventSet{b: b, events: slices.Clone(events), fds: make([]int, 0, len(events))}
	leader := -1
	for _, ev := range events {
		fd, err := b.open(ev, leader)
		if err != nil {
			_ = s.Close()
			if errors.Is(err, ErrUnsupported) {
				return nil, err
			}
			return nil, &EventError{Op: "add", Event: ev, Err: err}
		}
		if leader == -1 {
			leader = fd
		}
		s.fds = append(s.fds, fd)
	}
	return s, nil
}

// Events returns the events of the set in request order.
func (s *EventSet) Events() []Event {
	return slices.Clone(s.events)
}

// Running reports whether the counters are enabled.
func (s *EventSet) Running() bool { return s.running }

// Start enables the counters. Counts accumulate on top of previous runs until
// Reset.
func (s *EventSet) Start() error {
	if s.closed {
		return ErrClosed
	}
	if s.running {
		return ErrAlreadyStarted
	}
	if err := s.b.enable(s.fds[0]); err != nil {
		return &EventError{Op: "start", Err: err}
	}
	s.running = true
	return nil
}

// Reset zeroes the counters. It may be called while running.
func (s *EventSet) Reset() error {
	if s.closed {
		return ErrClosed
	}
	if err := s.b.reset(s.fds[0]); err != nil {
		return &EventError{Op: "reset", Err: err}
	}
	return nil
}

// Stop disables the counters and returns their values.
func (s *EventSet) Stop() (Counters, error) {
	if s.closed {
		return nil, ErrClosed
	}
	if !s.running {
		return nil, ErrNotStarted
	}
	if err := s.b.disable(s.fds[0]); err != nil {
		return nil, &EventError{Op: "stop", Err: err}
	}
	s.running = false

	values, err := s.b.read(s.fds[0], len(s.fds))
	if err != nil {
		return nil, &EventError{Op: "read", Err: err}
	}
	out := make(Counters, len(s.events))
	for i, ev := range s.events {
		out[i] = Counter{Event: ev, Value: values[i]}
	}
	return out, nil
}

// Close releases the counters. Closing twice is a no-op.
func (s *EventSet) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true
	s.running = false

	var errs []error
	// Members before the leader.
	for i := len(s.fds) - 1; i >= 0; i-- {
		if err := s.b.close(s.fds[i]); err != nil {
			errs = append(errs, err)
		}
	}
	s.fds = nil
	return errors.Join(errs...)
}

// Measure resets and starts s, runs fn and stops s, returning the counter
// values. The counters are stopped on every exit path; if fn panics the panic
// propagates after the counters are disabled. An error from fn is returned
// together with any error from stopping.
func Measure(s *EventSet, fn func() error) (Counters, error) {
	if err := s.Reset(); err != nil {
		return nil, err
	}
	if err := s.Start(); err != nil {
		return nil, err
	}

	stopped := false
	defer func() {
		if !stopped {
			_, _ = s.Stop()
		}
	}()

	runErr := fn()
	stopped = true
	counters, err := s.Stop()
	if runErr != nil {
		return counters, errors.Join(runErr, err)
	}
	return counters, err
}
