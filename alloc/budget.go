package alloc

import (
	"errors"
	"fmt"

	"golang.org/x/sync/semaphore"
)

// ErrBudgetExceeded is returned when an allocation would exceed the
// configured byte budget.
var ErrBudgetExceeded = errors.New("alloc: memory budget exceeded")

// Budget decorates another Allocator with a hard byte budget.
//
// Acquisition is non-blocking: an allocation that would exceed the budget
// fails immediately with ErrBudgetExceeded instead of waiting for other
// buffers to be released. Buffers are charged at their requested size and
// credited back on Deallocate or when Reallocate shrinks them.
type Budget struct {
	inner Allocator
	sem   *semaphore.Weighted
}

// NewBudget creates a budgeted allocator with the given limit in bytes.
// If inner is nil, Default is used.
func NewBudget(inner Allocator, limit int64) *Budget {
	if inner == nil {
		inner = Default
	}
	return &Budget{
		inner: inner,
		sem:   semaphore.NewWeighted(limit),
	}
}

// Allocate implements Allocator.
func (b *Budget) Allocate(n int) ([]byte, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: negative size %d", ErrAllocationFailed, n)
	}
	if !b.sem.TryAcquire(int64(n)) {
		return nil, fmt.Errorf("%w: %d bytes requested", ErrBudgetExceeded, n)
	}
	buf, err := b.inner.Allocate(n)
	if err != nil {
		b.sem.Release(int64(n))
		return nil, err
	}
	return buf, nil
}

// Reallocate implements Allocator.
func (b *Budget) Reallocate(buf []byte, n int) ([]byte, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: negative size %d", ErrAllocationFailed, n)
	}
	old := int64(len(buf))
	if int64(n) > old {
		if !b.sem.TryAcquire(int64(n) - old) {
			return nil, fmt.Errorf("%w: %d bytes requested", ErrBudgetExceeded, n)
		}
	}
	next, err := b.inner.Reallocate(buf, n)
	if err != nil {
		if int64(n) > old {
			b.sem.Release(int64(n) - old)
		}
		return nil, err
	}
	if int64(n) < old {
		b.sem.Release(old - int64(n))
	}
	return next, nil
}

// Deallocate implements Allocator.
func (b *Budget) Deallocate(buf []byte) error {
	if err := b.inner.Deallocate(buf); err != nil {
		return err
	}
	b.sem.Release(int64(len(buf)))
	return nil
}
