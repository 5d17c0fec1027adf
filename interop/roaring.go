package interop

import (
	"fmt"

	"github.com/RoaringBitmap/roaring/v2"

	"github.com/hupe1980/bitvec"
)

// ToRoaring collects the set bits of b into a Roaring bitmap.
func ToRoaring(b *bitvec.Bitset) *roaring.Bitmap {
	rb := roaring.New()
	for index := range b.Iterator() {
		rb.Add(uint32(index)) //nolint:gosec // bit indexes are non-negative
	}
	return rb
}

// FromRoaring materializes rb into a dense, zeroed bitset of count bits.
// It fails with bitvec.ErrOutOfRange if the bitmap holds a value at or
// above count.
func FromRoaring(rb *roaring.Bitmap, count int) (*bitvec.Bitset, error) {
	b, err := bitvec.New(count)
	if err != nil {
		return nil, err
	}
	if err := b.ResetAll(); err != nil {
		return nil, err
	}

	it := rb.Iterator()
	for it.HasNext() {
		v := it.Next()
		if err := b.Set(int(v)); err != nil {
			return nil, fmt.Errorf("bitmap value %d does not fit %d bits: %w", v, count, err)
		}
	}
	return b, nil
}
