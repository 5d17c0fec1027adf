package bitvec

import (
	"errors"
	"fmt"

	"github.com/hupe1980/bitvec/alloc"
	"github.com/hupe1980/bitvec/bytevec"
)

var (
	// ErrInvalidArgument is returned for out-of-range policy parameters
	// and nil collaborators.
	ErrInvalidArgument = errors.New("bitvec: invalid argument")

	// ErrOutOfRange is returned for bit indexes outside [0, Size) and for
	// size-management operations on an empty bitset.
	ErrOutOfRange = errors.New("bitvec: out of range")

	// ErrInsufficientMemory is returned when the allocator fails during
	// growth.
	ErrInsufficientMemory = errors.New("bitvec: insufficient memory")

	// ErrBufferTooSmall is returned when a fixed buffer cannot hold the
	// requested number of bits.
	ErrBufferTooSmall = errors.New("bitvec: buffer too small")

	// ErrFixedBuffer is returned when growth is attempted on a
	// fixed-buffer bitset.
	ErrFixedBuffer = errors.New("bitvec: unsupported on fixed buffer")

	// ErrClosed is returned when a bitset is used after Close.
	ErrClosed = errors.New("bitvec: bitset is closed")
)

// translateError maps collaborator errors onto the package error space so
// callers only ever match bitvec sentinels with errors.Is. The original
// error stays reachable via errors.Unwrap.
func translateError(err error) error {
	if err == nil {
		return nil
	}
	switch {
	case errors.Is(err, bytevec.ErrFixedCapacity):
		return fmt.Errorf("%w: %w", ErrFixedBuffer, err)
	case errors.Is(err, bytevec.ErrOutOfRange):
		return fmt.Errorf("%w: %w", ErrOutOfRange, err)
	case errors.Is(err, bytevec.ErrInvalidPolicy):
		return fmt.Errorf("%w: %w", ErrInvalidArgument, err)
	case errors.Is(err, alloc.ErrBudgetExceeded), errors.Is(err, alloc.ErrAllocationFailed):
		return fmt.Errorf("%w: %w", ErrInsufficientMemory, err)
	}
	return err
}
