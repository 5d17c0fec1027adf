package bitvec

import (
	"fmt"
	"math"

	"github.com/hupe1980/bitvec/alloc"
	"github.com/hupe1980/bitvec/bytevec"
)

const (
	// DefaultGrowthFactor is the growth factor used by New when none is
	// configured.
	DefaultGrowthFactor = bytevec.DefaultGrowthFactor

	// DefaultShrinkThreshold is the shrink threshold used by New when
	// none is configured.
	DefaultShrinkThreshold = bytevec.DefaultShrinkThreshold
)

// Bitset is a resizable sequence of individually addressable bits.
//
// It tracks a logical bit count (Size) distinct from the byte capacity of
// its storage and translates bit indexes into (byte index, bit offset)
// pairs. After every successful operation the storage holds exactly
// ceil(Size/8) occupied bytes. Bits stored past Size in the final byte
// ("padding bits") carry no meaning; see the package documentation.
//
// Bitsets are not safe for concurrent use.
type Bitset struct {
	size   int
	bits   *bytevec.Vector
	logger *Logger
	closed bool
}

// New creates an owned bitset holding count bits, allocator-backed with
// growth factor 2.0 and shrink threshold 0.5 unless configured otherwise.
// The initial bit values are unspecified; use ResetAll to zero them.
func New(count int, opts ...Option) (*Bitset, error) {
	if count < 0 {
		return nil, fmt.Errorf("%w: negative bit count %d", ErrInvalidArgument, count)
	}

	o := options{
		allocator:       alloc.Default,
		growthFactor:    DefaultGrowthFactor,
		shrinkThreshold: DefaultShrinkThreshold,
		logger:          NoopLogger(),
	}
	for _, fn := range opts {
		fn(&o)
	}

	if o.growthFactor < 1.0 || math.IsNaN(o.growthFactor) {
		return nil, fmt.Errorf("%w: growth factor %v", ErrInvalidArgument, o.growthFactor)
	}
	if o.shrinkThreshold < 0.0 || o.shrinkThreshold >= 1.0 || math.IsNaN(o.shrinkThreshold) {
		return nil, fmt.Errorf("%w: shrink threshold %v", ErrInvalidArgument, o.shrinkThreshold)
	}

	bits, err := bytevec.New(bytesFor(count),
		bytevec.WithAllocator(o.allocator),
		bytevec.WithGrowthFactor(o.growthFactor),
		bytevec.WithShrinkThreshold(o.shrinkThreshold),
	)
	if err != nil {
		return nil, translateError(err)
	}

	return &Bitset{
		size:   count,
		bits:   bits,
		logger: o.logger,
	}, nil
}

// NewFromBuffer creates a fixed bitset holding count bits in a
// caller-owned buffer. No allocator is used or stored: the bitset never
// reallocates, and operations that would require growth beyond the buffer
// fail instead. The buffer's lifetime must outlive the bitset.
// The initial bit values are whatever the buffer holds.
func NewFromBuffer(count int, buf []byte) (*Bitset, error) {
	if count < 0 {
		return nil, fmt.Errorf("%w: negative bit count %d", ErrInvalidArgument, count)
	}
	if len(buf)*8 < count {
		return nil, fmt.Errorf("%w: %d bits need %d bytes, buffer has %d",
			ErrBufferTooSmall, count, bytesFor(count), len(buf))
	}

	bits, err := bytevec.NewFromBuffer(buf, bytesFor(count))
	if err != nil {
		return nil, translateError(err)
	}

	return &Bitset{
		size:   count,
		bits:   bits,
		logger: NoopLogger(),
	}, nil
}

// Close releases owned storage back to the allocator. For fixed bitsets
// it releases nothing; the caller manages the buffer. Close is idempotent
// and any further operation on the bitset returns ErrClosed.
func (b *Bitset) Close() error {
	if b == nil || b.closed {
		return nil
	}
	b.closed = true
	b.size = 0
	return translateError(b.bits.Release())
}

// Clone returns an owned deep copy of the bitset. Cloning is the snapshot
// primitive for callers that need all-or-nothing semantics around a
// combinator call. Cloning a fixed bitset yields an owned one backed by
// the default allocator and policy.
func (b *Bitset) Clone() (*Bitset, error) {
	if b.closed {
		return nil, ErrClosed
	}
	bits, err := b.bits.Clone()
	if err != nil {
		return nil, translateError(err)
	}
	return &Bitset{
		size:   b.size,
		bits:   bits,
		logger: b.logger,
	}, nil
}

// guard rejects operations on a closed bitset.
func (b *Bitset) guard() error {
	if b.closed {
		return ErrClosed
	}
	return nil
}

// checkIndex validates a bit index against the logical size.
func (b *Bitset) checkIndex(index int) error {
	if b.closed {
		return ErrClosed
	}
	if index < 0 || index >= b.size {
		return fmt.Errorf("%w: bit index %d, size %d", ErrOutOfRange, index, b.size)
	}
	return nil
}

// bytesFor returns the number of bytes required to hold count bits.
func bytesFor(count int) int {
	return (count + 7) / 8
}
