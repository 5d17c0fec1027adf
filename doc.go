// Package bitvec provides a dynamic bitset: a resizable sequence of
// individually addressable bits backed by a byte-granular growable buffer.
//
// # Quick Start
//
//	b, _ := bitvec.New(10)
//	_ = b.ResetAll()
//	_ = b.Set(3)
//	set, _ := b.Test(3) // true
//	_ = b.Push(true)    // size is now 11
//	defer b.Close()
//
// # Storage Modes
//
// A bitset is either owned or fixed. Owned bitsets are allocator-backed
// and grow without bound, amortized by a configurable growth factor and
// trimmed by a configurable shrink threshold:
//
//	b, _ := bitvec.New(1024,
//	    bitvec.WithGrowthFactor(1.5),
//	    bitvec.WithShrinkThreshold(0.25))
//
// Fixed bitsets wrap a caller-supplied buffer and never allocate; any
// operation that would require growth beyond the buffer fails instead of
// succeeding silently:
//
//	buf := make([]byte, 2)
//	b, _ := bitvec.NewFromBuffer(16, buf)
//	err := b.Push(true) // bitvec.ErrFixedBuffer
//
// # Padding Bits
//
// The final occupied byte may hold bits past the logical size. Their
// stored value carries no meaning: bulk operations (SetAll, ResetAll,
// Flip) touch them freely, and every aggregate query (Count, All, Any,
// None) masks them out. No operation ever relies on their value.
//
// # Concurrency
//
// Bitsets carry no internal synchronization. A bitset must not be mutated
// from more than one goroutine without external locking; concurrent
// readers are safe only while no writer is active.
package bitvec
