package bytevec

import (
	"errors"
	"fmt"
	"math"

	"github.com/hupe1980/bitvec/alloc"
)

const (
	// DefaultGrowthFactor is the multiplicative over-allocation applied
	// when an owned vector must grow.
	DefaultGrowthFactor = 2.0

	// DefaultShrinkThreshold is the occupancy ratio below which an owned
	// vector proactively releases unused capacity.
	DefaultShrinkThreshold = 0.5
)

var (
	// ErrOutOfRange is returned for byte indexes outside the occupied
	// range and for Pop on an empty vector.
	ErrOutOfRange = errors.New("bytevec: out of range")

	// ErrFixedCapacity is returned when an operation would grow a fixed
	// vector beyond its buffer.
	ErrFixedCapacity = errors.New("bytevec: fixed capacity exceeded")

	// ErrInvalidPolicy is returned for a growth factor below 1.0 or a
	// shrink threshold outside [0.0, 1.0).
	ErrInvalidPolicy = errors.New("bytevec: invalid growth policy")
)

type options struct {
	allocator       alloc.Allocator
	growthFactor    float64
	shrinkThreshold float64
}

// Option configures owned vector construction.
type Option func(*options)

// WithAllocator configures the allocator backing the vector.
// If nil is passed, alloc.Default is used.
func WithAllocator(a alloc.Allocator) Option {
	return func(o *options) {
		if a == nil {
			a = alloc.Default
		}
		o.allocator = a
	}
}

// WithGrowthFactor configures multiplicative over-allocation for growth.
// Must be at least 1.0; exactly 1.0 disables over-allocation, so every
// growth step allocates exactly what is needed.
func WithGrowthFactor(f float64) Option {
	return func(o *options) {
		o.growthFactor = f
	}
}

// WithShrinkThreshold configures the occupancy ratio below which the
// vector releases unused capacity after Pop. Must be in [0.0, 1.0);
// 0.0 disables automatic shrinking.
func WithShrinkThreshold(t float64) Option {
	return func(o *options) {
		o.shrinkThreshold = t
	}
}

// Vector is a growable byte vector.
//
// The zero value is not usable; construct with New or NewFromBuffer.
// Vectors are not safe for concurrent use.
type Vector struct {
	data            []byte // len(data) is the capacity in bytes
	length          int    // occupied bytes
	fixed           bool
	allocator       alloc.Allocator
	growthFactor    float64
	shrinkThreshold float64
}

// New creates an owned vector with the given initial length. The initial
// byte values are unspecified.
func New(length int, opts ...Option) (*Vector, error) {
	if length < 0 {
		return nil, fmt.Errorf("%w: negative length %d", ErrOutOfRange, length)
	}

	o := options{
		allocator:       alloc.Default,
		growthFactor:    DefaultGrowthFactor,
		shrinkThreshold: DefaultShrinkThreshold,
	}
	for _, fn := range opts {
		fn(&o)
	}

	if o.growthFactor < 1.0 || math.IsNaN(o.growthFactor) {
		return nil, fmt.Errorf("%w: growth factor %v", ErrInvalidPolicy, o.growthFactor)
	}
	if o.shrinkThreshold < 0.0 || o.shrinkThreshold >= 1.0 || math.IsNaN(o.shrinkThreshold) {
		return nil, fmt.Errorf("%w: shrink threshold %v", ErrInvalidPolicy, o.shrinkThreshold)
	}

	data, err := o.allocator.Allocate(length)
	if err != nil {
		return nil, err
	}

	return &Vector{
		data:            data,
		length:          length,
		allocator:       o.allocator,
		growthFactor:    o.growthFactor,
		shrinkThreshold: o.shrinkThreshold,
	}, nil
}

// NewFromBuffer creates a fixed vector wrapping a caller-owned buffer.
// The buffer's length is the vector's capacity; it is never reallocated
// and never released. Its lifetime must outlive the vector.
func NewFromBuffer(buf []byte, length int) (*Vector, error) {
	if length < 0 || length > len(buf) {
		return nil, fmt.Errorf("%w: length %d, buffer %d bytes", ErrFixedCapacity, length, len(buf))
	}
	return &Vector{
		data:   buf,
		length: length,
		fixed:  true,
	}, nil
}

// Len returns the number of occupied bytes.
func (v *Vector) Len() int { return v.length }

// Cap returns the capacity in bytes.
func (v *Vector) Cap() int { return len(v.data) }

// Fixed reports whether the vector wraps a caller-owned buffer.
func (v *Vector) Fixed() bool { return v.fixed }

// Bytes returns a mutable view of the occupied range. The view is
// invalidated by any operation that changes the vector's capacity.
func (v *Vector) Bytes() []byte { return v.data[:v.length] }

// At returns the byte at index i.
func (v *Vector) At(i int) (byte, error) {
	if i < 0 || i >= v.length {
		return 0, fmt.Errorf("%w: byte index %d, length %d", ErrOutOfRange, i, v.length)
	}
	return v.data[i], nil
}

// SetAt stores b at index i.
func (v *Vector) SetAt(i int, b byte) error {
	if i < 0 || i >= v.length {
		return fmt.Errorf("%w: byte index %d, length %d", ErrOutOfRange, i, v.length)
	}
	v.data[i] = b
	return nil
}

// Push appends one byte, growing the capacity per the growth factor if
// required.
func (v *Vector) Push(b byte) error {
	if err := v.grow(v.length + 1); err != nil {
		return err
	}
	v.data[v.length] = b
	v.length++
	return nil
}

// Pop removes the last byte. The capacity shrinks per the shrink
// threshold.
func (v *Vector) Pop() error {
	if v.length == 0 {
		return fmt.Errorf("%w: pop on empty vector", ErrOutOfRange)
	}
	v.length--
	v.maybeShrink()
	return nil
}

// Reserve ensures the capacity is at least n bytes. Unlike Push, Reserve
// allocates exactly what is requested.
func (v *Vector) Reserve(n int) error {
	if n < 0 {
		return fmt.Errorf("%w: negative capacity %d", ErrOutOfRange, n)
	}
	if n <= len(v.data) {
		return nil
	}
	if v.fixed {
		return fmt.Errorf("%w: need %d bytes, have %d", ErrFixedCapacity, n, len(v.data))
	}
	data, err := v.allocator.Reallocate(v.data, n)
	if err != nil {
		return err
	}
	v.data = data
	return nil
}

// ShrinkToFit reduces the capacity to the occupied length. It is a no-op
// on fixed vectors.
func (v *Vector) ShrinkToFit() error {
	if v.fixed || v.length == len(v.data) {
		return nil
	}
	data, err := v.allocator.Reallocate(v.data, v.length)
	if err != nil {
		return err
	}
	v.data = data
	return nil
}

// Truncate drops all occupied bytes while preserving the capacity.
func (v *Vector) Truncate() { v.length = 0 }

// Clone returns an owned deep copy of the vector. Cloning a fixed vector
// yields an owned vector backed by the default allocator and policy.
func (v *Vector) Clone() (*Vector, error) {
	a := v.allocator
	gf, st := v.growthFactor, v.shrinkThreshold
	if v.fixed {
		a = alloc.Default
		gf, st = DefaultGrowthFactor, DefaultShrinkThreshold
	}
	data, err := a.Allocate(v.length)
	if err != nil {
		return nil, err
	}
	copy(data, v.data[:v.length])
	return &Vector{
		data:            data,
		length:          v.length,
		allocator:       a,
		growthFactor:    gf,
		shrinkThreshold: st,
	}, nil
}

// Release returns owned storage to the allocator. For fixed vectors it
// only detaches the buffer. The vector must not be used afterwards.
func (v *Vector) Release() error {
	data := v.data
	v.data = nil
	v.length = 0
	if v.fixed || v.allocator == nil {
		return nil
	}
	return v.allocator.Deallocate(data)
}

// grow ensures the capacity is at least minCap bytes, over-allocating per
// the growth factor. It is the single funnel point for capacity growth:
// fixed vectors are rejected here.
func (v *Vector) grow(minCap int) error {
	if minCap <= len(v.data) {
		return nil
	}
	if v.fixed {
		return fmt.Errorf("%w: need %d bytes, have %d", ErrFixedCapacity, minCap, len(v.data))
	}
	newCap := int(math.Ceil(float64(len(v.data)) * v.growthFactor))
	if newCap < minCap {
		newCap = minCap
	}
	data, err := v.allocator.Reallocate(v.data, newCap)
	if err != nil {
		return err
	}
	v.data = data
	return nil
}

// maybeShrink releases capacity once occupancy falls below the shrink
// threshold. Shrinking is advisory: a failed reallocation keeps the
// current capacity.
func (v *Vector) maybeShrink() {
	if v.fixed || v.shrinkThreshold <= 0 {
		return
	}
	if float64(v.length) >= float64(len(v.data))*v.shrinkThreshold {
		return
	}
	data, err := v.allocator.Reallocate(v.data, v.length)
	if err != nil {
		return
	}
	v.data = data
}
