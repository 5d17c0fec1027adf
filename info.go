package bitvec

import (
	"iter"
	"math/bits"
	"strings"
)

// Size returns the logical size in bits.
func (b *Bitset) Size() int {
	return b.size
}

// Capacity returns the storage capacity in bits.
func (b *Bitset) Capacity() int {
	return b.bits.Cap() * 8
}

// SizeBytes returns the number of occupied storage bytes, ceil(Size/8).
func (b *Bitset) SizeBytes() int {
	return b.bits.Len()
}

// CapacityBytes returns the storage capacity in bytes.
func (b *Bitset) CapacityBytes() int {
	return b.bits.Cap()
}

// Count returns the population count of the bits in [0, Size). Padding
// bits in the final byte are masked out regardless of their stored value.
func (b *Bitset) Count() int {
	if b.closed {
		return 0
	}

	buf := b.bits.Bytes()
	full := b.size >> 3

	count := 0
	for _, v := range buf[:full] {
		count += bits.OnesCount8(v)
	}
	if rem := uint(b.size) & 7; rem != 0 {
		mask := byte(1<<rem) - 1
		count += bits.OnesCount8(buf[full] & mask)
	}
	return count
}

// All reports whether every bit in [0, Size) is set. It is vacuously true
// for an empty bitset.
func (b *Bitset) All() bool {
	return b.Count() == b.size
}

// Any reports whether at least one bit in [0, Size) is set.
func (b *Bitset) Any() bool {
	return b.Count() > 0
}

// None reports whether no bit in [0, Size) is set.
func (b *Bitset) None() bool {
	return b.Count() == 0
}

// Iterator returns an iterator over the indexes of the set bits in
// [0, Size), ascending. The bitset must not be mutated during iteration.
func (b *Bitset) Iterator() iter.Seq[int] {
	return func(yield func(int) bool) {
		if b.closed {
			return
		}
		buf := b.bits.Bytes()
		for bi, v := range buf {
			if v == 0 {
				continue
			}
			base := bi << 3
			for v != 0 {
				index := base + bits.TrailingZeros8(v)
				if index >= b.size {
					return
				}
				if !yield(index) {
					return
				}
				v &= v - 1
			}
		}
	}
}

// String returns the bits in [0, Size) as a "0101..." string, lowest
// index first. Intended for debugging.
func (b *Bitset) String() string {
	if b.closed {
		return ""
	}
	buf := b.bits.Bytes()

	var sb strings.Builder
	sb.Grow(b.size)
	for i := 0; i < b.size; i++ {
		if buf[i>>3]&(1<<(uint(i)&7)) != 0 {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}
	return sb.String()
}
