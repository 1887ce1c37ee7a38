//go:build linux

package perf

import (
	"encoding/binary"
	"fmt"
	"unsafe"

	"golang.org/x/sys/unix"
)

type platformBackend struct{}

// attr builds the perf_event_attr for ev. Only the group leader starts
// disabled; members follow the leader's state.
func attr(ev Event, leader bool) (*unix.PerfEventAttr, error) {
	a := &unix.PerfEventAttr{
		Size:        uint32(unsafe.Sizeof(unix.PerfEventAttr{})),
		Read_format: unix.PERF_FORMAT_GROUP,
		Bits:        unix.PerfBitExcludeKernel | unix.PerfBitExcludeHv,
	}
	if leader {
		a.Bits |= unix.PerfBitDisabled
	}

	switch ev {
	case L1ICacheMisses:
		a.Type = unix.PERF_TYPE_HW_CACHE
		a.Config = hwCache(unix.PERF_COUNT_HW_CACHE_L1I, unix.PERF_COUNT_HW_CACHE_RESULT_MISS)
	case L1DCacheAccesses:
		a.Type = unix.PERF_TYPE_HW_CACHE
		a.Config = hwCache(unix.PERF_COUNT_HW_CACHE_L1D, unix.PERF_COUNT_HW_CACHE_RESULT_ACCESS)
	case LLCacheMisses:
		a.Type = unix.PERF_TYPE_HW_CACHE
		a.Config = hwCache(unix.PERF_COUNT_HW_CACHE_LL, unix.PERF_COUNT_HW_CACHE_RESULT_MISS)
	case LLCacheAccesses:
		a.Type = unix.PERF_TYPE_HW_CACHE
		a.Config = hwCache(unix.PERF_COUNT_HW_CACHE_LL, unix.PERF_COUNT_HW_CACHE_RESULT_ACCESS)
	case CPUCycles:
		a.Type = unix.PERF_TYPE_HARDWARE
		a.Config = unix.PERF_COUNT_HW_CPU_CYCLES
	case Instructions:
		a.Type = unix.PERF_TYPE_HARDWARE
		a.Config = unix.PERF_COUNT_HW_INSTRUCTIONS
	case BranchMisses:
		a.Type = unix.PERF_TYPE_HARDWARE
		a.Config = unix.PERF_COUNT_HW_BRANCH_MISSES
	default:
		return nil, ErrUnknownEvent
	}
	return a, nil
}

// hwCache encodes a read operation on cache id with the given result, as
// described in perf_event_open(2).
func hwCache(id, result uint64) uint64 {
	return id | unix.PERF_COUNT_HW_CACHE_OP_READ<<8 | result<<16
}

func (platformBackend) open(ev Event, leader int) (int, error) {
	a, err := attr(ev, leader == -1)
	if err != nil {
		return -1, err
	}
	// Measure the calling process on any CPU.
	fd, err := unix.PerfEventOpen(a, 0, -1, leader, unix.PERF_FLAG_FD_CLOEXEC)
	if err != nil {
		return -1, fmt.Errorf("perf_event_open: %w", err)
	}
	return fd, nil
}

func (platformBackend) enable(leader int) error {
	return unix.IoctlSetInt(leader, unix.PERF_EVENT_IOC_ENABLE, unix.PERF_IOC_FLAG_GROUP)
}

func (platformBackend) disable(leader int) error {
	return unix.IoctlSetInt(leader, unix.PERF_EVENT_IOC_DISABLE, unix.PERF_IOC_FLAG_GROUP)
}

func (platformBackend) reset(leader int) error {
	return unix.IoctlSetInt(leader, unix.PERF_EVENT_IOC_RESET, unix.PERF_IOC_FLAG_GROUP)
}

// read decodes a PERF_FORMAT_GROUP record: u64 nr followed by nr values.
func (platformBackend) read(leader int, n int) ([]uint64, error) {
	buf := make([]byte, 8*(n+1))
	got, err := unix.Read(leader, buf)
	if err != nil {
		return nil, err
	}
	if got < 8 {
		return nil, fmt.Errorf("short read: %d bytes", got)
	}
	nr := int(binary.NativeEndian.Uint64(buf))
	if nr != n || got < 8*(nr+1) {
		return nil, fmt.Errorf("group read returned %d counters in %d bytes, want %d", nr, got, n)
	}
	values := make([]uint64, n)
	for i := range values {
		values[i] = binary.NativeEndian.Uint64(buf[8*(i+1):])
	}
	return values, nil
}

func (platformBackend) close(fd int) error {
	return unix.Close(fd)
}
