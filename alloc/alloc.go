package alloc

import (
	"errors"
	"fmt"
)

var (
	// ErrAllocationFailed is returned when an allocator cannot satisfy a
	// request.
	ErrAllocationFailed = errors.New("alloc: allocation failed")
)

// Allocator provides byte buffers for owned storage.
//
// Implementations are supplied per-instance at construction time and must
// remain valid for the lifetime of every buffer they handed out.
// Reallocate preserves the leading min(len(buf), n) bytes; the contents of
// any additional bytes are unspecified.
type Allocator interface {
	// Allocate returns a buffer of exactly n bytes.
	Allocate(n int) ([]byte, error)

	// Reallocate resizes buf to exactly n bytes, moving it if necessary.
	// The input buffer must not be used after a successful call.
	Reallocate(buf []byte, n int) ([]byte, error)

	// Deallocate releases a buffer previously obtained from Allocate or
	// Reallocate.
	Deallocate(buf []byte) error
}

// Default is the process-wide heap allocator.
var Default Allocator = heapAllocator{}

type heapAllocator struct{}

func (heapAllocator) Allocate(n int) ([]byte, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: negative size %d", ErrAllocationFailed, n)
	}
	return make([]byte, n), nil
}

func (heapAllocator) Reallocate(buf []byte, n int) ([]byte, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: negative size %d", ErrAllocationFailed, n)
	}
	if n == len(buf) {
		return buf, nil
	}
	// Always move so that shrinking actually releases the old backing
	// array to the garbage collector.
	next := make([]byte, n)
	copy(next, buf)
	return next, nil
}

func (heapAllocator) Deallocate([]byte) error {
	// The garbage collector reclaims the backing array once the caller
	// drops its reference.
	return nil
}
