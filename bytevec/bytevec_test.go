package bytevec

import (
	"bytes"
	"errors"
	"testing"
)

func TestVector(t *testing.T) {
	v, err := New(3)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	if v.Len() != 3 {
		t.Errorf("expected len 3, got %d", v.Len())
	}
	if v.Cap() < 3 {
		t.Errorf("expected cap >= 3, got %d", v.Cap())
	}

	if err := v.SetAt(0, 0xAB); err != nil {
		t.Fatalf("SetAt failed: %v", err)
	}
	got, err := v.At(0)
	if err != nil {
		t.Fatalf("At failed: %v", err)
	}
	if got != 0xAB {
		t.Errorf("expected 0xAB, got %#x", got)
	}

	if _, err := v.At(3); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("expected ErrOutOfRange, got %v", err)
	}
	if err := v.SetAt(-1, 0); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("expected ErrOutOfRange, got %v", err)
	}
}

func TestVector_NewValidation(t *testing.T) {
	if _, err := New(-1); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("expected ErrOutOfRange for negative length, got %v", err)
	}
	if _, err := New(1, WithGrowthFactor(0.9)); !errors.Is(err, ErrInvalidPolicy) {
		t.Errorf("expected ErrInvalidPolicy for growth factor, got %v", err)
	}
	if _, err := New(1, WithShrinkThreshold(1.0)); !errors.Is(err, ErrInvalidPolicy) {
		t.Errorf("expected ErrInvalidPolicy for shrink threshold, got %v", err)
	}
}

func TestVector_PushGrowth(t *testing.T) {
	v, err := New(0)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	for i := 0; i < 10; i++ {
		if err := v.Push(byte(i)); err != nil {
			t.Fatalf("Push %d failed: %v", i, err)
		}
	}

	if v.Len() != 10 {
		t.Errorf("expected len 10, got %d", v.Len())
	}
	if v.Cap() < 10 {
		t.Errorf("expected cap >= 10, got %d", v.Cap())
	}
	for i := 0; i < 10; i++ {
		got, err := v.At(i)
		if err != nil {
			t.Fatalf("At %d failed: %v", i, err)
		}
		if got != byte(i) {
			t.Errorf("byte %d: expected %d, got %d", i, i, got)
		}
	}
}

func TestVector_ExactGrowth(t *testing.T) {
	// Growth factor 1.0 allocates exactly what is needed.
	v, err := New(0, WithGrowthFactor(1.0), WithShrinkThreshold(0.0))
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	for i := 0; i < 5; i++ {
		if err := v.Push(0); err != nil {
			t.Fatalf("Push failed: %v", err)
		}
		if v.Cap() != i+1 {
			t.Errorf("after push %d: expected cap %d, got %d", i, i+1, v.Cap())
		}
	}
}

func TestVector_PopShrink(t *testing.T) {
	v, err := New(8)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	// Default threshold 0.5: dropping below half occupancy shrinks.
	for i := 0; i < 6; i++ {
		if err := v.Pop(); err != nil {
			t.Fatalf("Pop %d failed: %v", i, err)
		}
	}
	if v.Len() != 2 {
		t.Errorf("expected len 2, got %d", v.Len())
	}
	if v.Cap() >= 8 {
		t.Errorf("expected cap below 8 after shrink, got %d", v.Cap())
	}

	v2, err := New(8, WithShrinkThreshold(0.0))
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	for i := 0; i < 6; i++ {
		if err := v2.Pop(); err != nil {
			t.Fatalf("Pop %d failed: %v", i, err)
		}
	}
	if v2.Cap() != 8 {
		t.Errorf("threshold 0.0 must disable shrinking, got cap %d", v2.Cap())
	}
}

func TestVector_PopEmpty(t *testing.T) {
	v, err := New(0)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if err := v.Pop(); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("expected ErrOutOfRange, got %v", err)
	}
}

func TestVector_Fixed(t *testing.T) {
	buf := make([]byte, 2)
	v, err := NewFromBuffer(buf, 1)
	if err != nil {
		t.Fatalf("NewFromBuffer failed: %v", err)
	}

	if !v.Fixed() {
		t.Error("expected fixed vector")
	}
	if v.Cap() != 2 {
		t.Errorf("expected cap 2, got %d", v.Cap())
	}

	// One byte of headroom remains.
	if err := v.Push(0xCC); err != nil {
		t.Fatalf("Push failed: %v", err)
	}
	if buf[1] != 0xCC {
		t.Errorf("push must write through to the buffer, got %#x", buf[1])
	}

	if err := v.Push(0); !errors.Is(err, ErrFixedCapacity) {
		t.Errorf("expected ErrFixedCapacity, got %v", err)
	}
	if err := v.Reserve(3); !errors.Is(err, ErrFixedCapacity) {
		t.Errorf("expected ErrFixedCapacity, got %v", err)
	}
	if err := v.ShrinkToFit(); err != nil {
		t.Errorf("ShrinkToFit must be a no-op on fixed vectors, got %v", err)
	}
	if v.Cap() != 2 {
		t.Errorf("cap changed on fixed vector: %d", v.Cap())
	}

	if _, err := NewFromBuffer(buf, 3); !errors.Is(err, ErrFixedCapacity) {
		t.Errorf("expected ErrFixedCapacity for oversized length, got %v", err)
	}
}

func TestVector_Reserve(t *testing.T) {
	v, err := New(2)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	v.Bytes()[0] = 0x11
	v.Bytes()[1] = 0x22

	if err := v.Reserve(100); err != nil {
		t.Fatalf("Reserve failed: %v", err)
	}
	if v.Cap() != 100 {
		t.Errorf("expected cap 100, got %d", v.Cap())
	}
	if v.Len() != 2 {
		t.Errorf("reserve must not change length, got %d", v.Len())
	}
	if !bytes.Equal(v.Bytes(), []byte{0x11, 0x22}) {
		t.Errorf("reserve lost contents: %v", v.Bytes())
	}

	if err := v.Reserve(10); err != nil {
		t.Fatalf("Reserve failed: %v", err)
	}
	if v.Cap() != 100 {
		t.Errorf("smaller reserve must be a no-op, got %d", v.Cap())
	}
}

func TestVector_ShrinkToFit(t *testing.T) {
	v, err := New(4)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if err := v.Reserve(64); err != nil {
		t.Fatalf("Reserve failed: %v", err)
	}

	if err := v.ShrinkToFit(); err != nil {
		t.Fatalf("ShrinkToFit failed: %v", err)
	}
	if v.Cap() != 4 {
		t.Errorf("expected cap 4, got %d", v.Cap())
	}
}

func TestVector_Truncate(t *testing.T) {
	v, err := New(4)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	v.Truncate()
	if v.Len() != 0 {
		t.Errorf("expected len 0, got %d", v.Len())
	}
	if v.Cap() != 4 {
		t.Errorf("truncate must keep capacity, got %d", v.Cap())
	}
}

func TestVector_Clone(t *testing.T) {
	v, err := New(2)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	v.Bytes()[0] = 0xAA
	v.Bytes()[1] = 0xBB

	c, err := v.Clone()
	if err != nil {
		t.Fatalf("Clone failed: %v", err)
	}

	v.Bytes()[0] = 0x00
	if got, _ := c.At(0); got != 0xAA {
		t.Errorf("clone shares storage with original: %#x", got)
	}

	// A clone of a fixed vector is owned and can grow.
	f, err := NewFromBuffer(make([]byte, 1), 1)
	if err != nil {
		t.Fatalf("NewFromBuffer failed: %v", err)
	}
	fc, err := f.Clone()
	if err != nil {
		t.Fatalf("Clone failed: %v", err)
	}
	if fc.Fixed() {
		t.Error("clone of fixed vector must be owned")
	}
	if err := fc.Push(0); err != nil {
		t.Errorf("clone must be growable: %v", err)
	}
}

func TestVector_Release(t *testing.T) {
	v, err := New(4)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if err := v.Release(); err != nil {
		t.Fatalf("Release failed: %v", err)
	}
	if v.Len() != 0 || v.Cap() != 0 {
		t.Errorf("expected empty vector after release, got len=%d cap=%d", v.Len(), v.Cap())
	}
}
