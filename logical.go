package bitvec

import (
	"fmt"
)

// ByteOp combines one byte of a destination bitset with the corresponding
// byte of a source bitset and returns the resulting destination byte.
// It is the strategy primitive behind Combine; And, Or and Xor are fixed
// instances of it.
type ByteOp func(dst, src byte) (byte, error)

// Combine applies op once per byte position shared by b and src, storing
// each result in b. It iterates over min(b.SizeBytes(), src.SizeBytes())
// bytes; if b has more bytes than src, the excess bytes are left
// untouched and their bit values are unspecified.
//
// Combine is not transactional: the first op error stops the iteration
// and is returned, leaving b modified up to and including the failing
// byte (the byte returned by a failing op is still stored). Callers that
// need atomicity should Clone beforehand.
func (b *Bitset) Combine(src *Bitset, op ByteOp) error {
	if err := b.guard(); err != nil {
		return err
	}
	if src == nil || op == nil {
		return fmt.Errorf("%w: nil source or operation", ErrInvalidArgument)
	}
	if err := src.guard(); err != nil {
		return err
	}

	dst := b.bits.Bytes()
	s := src.bits.Bytes()
	n := min(len(dst), len(s))

	for i := 0; i < n; i++ {
		out, err := op(dst[i], s[i])
		dst[i] = out
		if err != nil {
			return err
		}
	}
	return nil
}

// And performs a byte-wise logical AND with src, storing the result in b.
// The asymmetric-length behavior of Combine applies.
func (b *Bitset) And(src *Bitset) error {
	return b.Combine(src, func(dst, src byte) (byte, error) {
		return dst & src, nil
	})
}

// Or performs a byte-wise logical OR with src, storing the result in b.
// The asymmetric-length behavior of Combine applies.
func (b *Bitset) Or(src *Bitset) error {
	return b.Combine(src, func(dst, src byte) (byte, error) {
		return dst | src, nil
	})
}

// Xor performs a byte-wise logical XOR with src, storing the result in b.
// The asymmetric-length behavior of Combine applies.
func (b *Bitset) Xor(src *Bitset) error {
	return b.Combine(src, func(dst, src byte) (byte, error) {
		return dst ^ src, nil
	})
}

// Flip complements every occupied byte, padding bits included. Aggregate
// queries mask padding bits at query time, so flipped padding never leaks
// into Count, All, Any or None.
func (b *Bitset) Flip() error {
	if err := b.guard(); err != nil {
		return err
	}
	buf := b.bits.Bytes()
	for i := range buf {
		buf[i] = ^buf[i]
	}
	return nil
}
