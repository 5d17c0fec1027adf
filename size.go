package bitvec

import (
	"errors"
	"fmt"

	"github.com/hupe1980/bitvec/bytevec"
)

// Push appends one bit with the given value and increments the size.
// When the new bit crosses a byte boundary, storage grows by one byte,
// amortized by the growth factor supplied at construction. On fixed
// bitsets, growth past the buffer capacity fails with ErrFixedBuffer and
// leaves the bitset unchanged.
func (b *Bitset) Push(value bool) error {
	if err := b.guard(); err != nil {
		return err
	}

	if bytesFor(b.size+1) > b.bits.Len() {
		prevCap := b.bits.Cap()
		if err := b.bits.Push(0); err != nil {
			return translateError(err)
		}
		if c := b.bits.Cap(); c != prevCap {
			b.logger.Debug("storage grown", "capacity_bytes", c, "size_bits", b.size+1)
		}
	}

	b.size++
	return b.Assign(b.size-1, value)
}

// Pop removes the last bit and decrements the size. It fails with
// ErrOutOfRange on an empty bitset. When the size drops below the shrink
// threshold, storage capacity is released; padding bits exposed by
// shrinking are unspecified.
func (b *Bitset) Pop() error {
	if err := b.guard(); err != nil {
		return err
	}
	if b.size == 0 {
		return fmt.Errorf("%w: pop on empty bitset", ErrOutOfRange)
	}

	b.size--
	if bytesFor(b.size) < b.bits.Len() {
		prevCap := b.bits.Cap()
		if err := b.bits.Pop(); err != nil {
			return translateError(err)
		}
		if c := b.bits.Cap(); c != prevCap {
			b.logger.Debug("storage shrunk", "capacity_bytes", c, "size_bits", b.size)
		}
	}
	return nil
}

// Clear drops all bits, setting the size to zero. Storage capacity is
// preserved for reuse.
func (b *Bitset) Clear() {
	if b.closed {
		return
	}
	b.size = 0
	b.bits.Truncate()
}

// Reserve ensures the storage capacity is at least count bits. On fixed
// bitsets a request beyond the buffer fails with ErrBufferTooSmall and
// leaves size and capacity unchanged.
func (b *Bitset) Reserve(count int) error {
	if err := b.guard(); err != nil {
		return err
	}
	if count < 0 {
		return fmt.Errorf("%w: negative bit count %d", ErrInvalidArgument, count)
	}

	prevCap := b.bits.Cap()
	if err := b.bits.Reserve(bytesFor(count)); err != nil {
		if errors.Is(err, bytevec.ErrFixedCapacity) {
			return fmt.Errorf("%w: reserving %d bits exceeds fixed capacity of %d bits",
				ErrBufferTooSmall, count, prevCap*8)
		}
		return translateError(err)
	}
	if c := b.bits.Cap(); c != prevCap {
		b.logger.Debug("storage grown", "capacity_bytes", c, "size_bits", b.size)
	}
	return nil
}

// ShrinkToFit reduces the storage capacity to exactly the occupied byte
// range. It is a no-op on fixed bitsets.
func (b *Bitset) ShrinkToFit() error {
	if err := b.guard(); err != nil {
		return err
	}
	prevCap := b.bits.Cap()
	if err := b.bits.ShrinkToFit(); err != nil {
		return translateError(err)
	}
	if c := b.bits.Cap(); c != prevCap {
		b.logger.Debug("storage shrunk", "capacity_bytes", c, "size_bits", b.size)
	}
	return nil
}
