package interop

import (
	"testing"

	"github.com/RoaringBitmap/roaring/v2"

	"github.com/hupe1980/bitvec"
)

// Comparative benchmarks: dense bitvec vs Roaring Bitmap.
// Run with: go test -bench=. -benchmem ./interop/

const benchBits = 10000

func denseBitset(b *testing.B, stride int) *bitvec.Bitset {
	b.Helper()

	bs, err := bitvec.New(benchBits)
	if err != nil {
		b.Fatal(err)
	}
	if err := bs.ResetAll(); err != nil {
		b.Fatal(err)
	}
	for i := 0; i < benchBits; i += stride {
		if err := bs.Set(i); err != nil {
			b.Fatal(err)
		}
	}
	return bs
}

func BenchmarkComparison_And_Bitvec(b *testing.B) {
	dst := denseBitset(b, 2)
	src := denseBitset(b, 3)
	defer dst.Close()
	defer src.Close()

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = dst.And(src)
	}
}

func BenchmarkComparison_And_Roaring(b *testing.B) {
	dst := roaring.New()
	src := roaring.New()
	for i := 0; i < benchBits; i += 2 {
		dst.Add(uint32(i))
	}
	for i := 0; i < benchBits; i += 3 {
		src.Add(uint32(i))
	}

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		dst.And(src)
	}
}

func BenchmarkComparison_Count_Bitvec(b *testing.B) {
	bs := denseBitset(b, 2)
	defer bs.Close()

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = bs.Count()
	}
}

func BenchmarkComparison_Count_Roaring(b *testing.B) {
	rb := roaring.New()
	for i := 0; i < benchBits; i += 2 {
		rb.Add(uint32(i))
	}

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = rb.GetCardinality()
	}
}

func BenchmarkToRoaring(b *testing.B) {
	bs := denseBitset(b, 7)
	defer bs.Close()

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = ToRoaring(bs)
	}
}
