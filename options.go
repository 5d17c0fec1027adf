package bitvec

import (
	"github.com/hupe1980/bitvec/alloc"
)

type options struct {
	allocator       alloc.Allocator
	growthFactor    float64
	shrinkThreshold float64
	logger          *Logger
}

// Option configures owned bitset construction. Fixed-buffer bitsets
// (NewFromBuffer) take no options: they store no allocator and no growth
// policy.
type Option func(*options)

// WithAllocator configures the allocator backing the bitset's storage.
// If nil is passed, alloc.Default is used.
func WithAllocator(a alloc.Allocator) Option {
	return func(o *options) {
		if a == nil {
			a = alloc.Default
		}
		o.allocator = a
	}
}

// WithGrowthFactor configures multiplicative over-allocation applied when
// storage must grow. Must be at least 1.0. Exactly 1.0 disables
// over-allocation, so every growth step allocates exactly what is needed.
func WithGrowthFactor(f float64) Option {
	return func(o *options) {
		o.growthFactor = f
	}
}

// WithShrinkThreshold configures the occupancy ratio below which storage
// proactively releases unused capacity. Must be in [0.0, 1.0); 0.0
// disables automatic shrinking.
func WithShrinkThreshold(t float64) Option {
	return func(o *options) {
		o.shrinkThreshold = t
	}
}

// WithLogger configures the logger used for storage growth and shrink
// events (Debug level). If nil is passed, logging is disabled.
func WithLogger(l *Logger) Option {
	return func(o *options) {
		if l == nil {
			l = NoopLogger()
		}
		o.logger = l
	}
}
