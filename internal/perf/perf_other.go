//go:build !linux

package perf

type platformBackend struct{}

func (platformBackend) open(Event, int) (int, error)    { return -1, ErrUnsupported }
func (platformBackend) enable(int) error                { return ErrUnsupported }
func (platformBackend) disable(int) error               { return ErrUnsupported }
func (platformBackend) reset(int) error                 { return ErrUnsupported }
func (platformBackend) read(int, int) ([]uint64, error) { return nil, ErrUnsupported }
func (platformBackend) close(int) error                 { return nil }
