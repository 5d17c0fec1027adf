package bitvec

// Set sets the bit at index to 1.
func (b *Bitset) Set(index int) error {
	if err := b.checkIndex(index); err != nil {
		return err
	}
	b.bits.Bytes()[index>>3] |= 1 << (uint(index) & 7)
	return nil
}

// Reset sets the bit at index to 0.
func (b *Bitset) Reset(index int) error {
	if err := b.checkIndex(index); err != nil {
		return err
	}
	b.bits.Bytes()[index>>3] &^= 1 << (uint(index) & 7)
	return nil
}

// Assign sets the bit at index to the given value.
func (b *Bitset) Assign(index int, value bool) error {
	if value {
		return b.Set(index)
	}
	return b.Reset(index)
}

// Toggle complements the bit at index.
func (b *Bitset) Toggle(index int) error {
	if err := b.checkIndex(index); err != nil {
		return err
	}
	b.bits.Bytes()[index>>3] ^= 1 << (uint(index) & 7)
	return nil
}

// Test returns the value of the bit at index.
func (b *Bitset) Test(index int) (bool, error) {
	if err := b.checkIndex(index); err != nil {
		return false, err
	}
	cur, err := b.bits.At(index >> 3)
	if err != nil {
		return false, translateError(err)
	}
	return cur&(1<<(uint(index)&7)) != 0, nil
}

// TestMSB returns the value of the most significant bit. It fails with
// ErrOutOfRange on an empty bitset.
func (b *Bitset) TestMSB() (bool, error) {
	return b.Test(b.size - 1)
}

// TestLSB returns the value of the least significant bit. It fails with
// ErrOutOfRange on an empty bitset.
func (b *Bitset) TestLSB() (bool, error) {
	return b.Test(0)
}

// SetAll sets every bit to 1. This fills whole bytes, so padding bits in
// the final byte are set too; aggregate queries mask them out.
func (b *Bitset) SetAll() error {
	return b.fill(0xFF)
}

// ResetAll sets every bit to 0. This fills whole bytes, so padding bits
// in the final byte are cleared too.
func (b *Bitset) ResetAll() error {
	return b.fill(0x00)
}

func (b *Bitset) fill(value byte) error {
	if err := b.guard(); err != nil {
		return err
	}
	buf := b.bits.Bytes()
	for i := range buf {
		buf[i] = value
	}
	return nil
}
