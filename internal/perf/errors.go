package perf

import (
	"errors"
	"fmt"
)

var (
	// ErrUnsupported is returned when the platform has no counter subsystem.
	ErrUnsupported = errors.New("perf: hardware counters not supported on this platform")
	// ErrUnknownEvent is returned for an event name or id that is not known.
	ErrUnknownEvent = errors.New("perf: unknown event")
	// ErrDuplicateEvent is returned when an event is requested twice.
	ErrDuplicateEvent = errors.New("perf: duplicate event")
	// ErrNoEvents is returned when an event set is created without events.
	ErrNoEvents = errors.New("perf: no events")
	// ErrAlreadyStarted is returned by Start on a running set.
	ErrAlreadyStarted = errors.New("perf: counters already started")
	// ErrNotStarted is returned by Stop on a set that is not running.
	ErrNotStarted = errors.New("perf: counters not started")
	// ErrClosed is returned by operations on a closed set.
	ErrClosed = errors.New("perf: event set closed")
)

// EventError reports a failed counter operation.
//
// The underlying cause (usually a syscall errno) can be accessed via errors.Unwrap.
type EventError struct {
	Op    string // "add", "start", "stop", "reset", "read"
	Event Event  // the event being added; zero for group operations
	Err   error
}

func (e *EventError) Error() string {
	if e.Op == "add" {
		return fmt.Sprintf("perf: failed to add event %s to event set: %v", e.Event, e.Err)
	}
	return fmt.Sprintf("perf: failed to %s counters: %v", e.Op, e.Err)
}

func (e *EventError) Unwrap() error { return e.Err }
