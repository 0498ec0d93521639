package quad

import "testing"

var (
	BenchBoolResult     bool
	BenchClassResult    Class
	BenchFloat64Result  float64
	BenchFloat128Result Float128
	BenchUint64Result   uint64
)

var (
	benchOnePointFive = Float128{hi: 0x3FFF800000000000}
	benchThird        = Float128{hi: 0x3FFD555555555555, lo: 0x5555555555555555}
	benchSubnormal    = Float128{hi: 0x00000000DEADBEEF, lo: 0xCAFEBABECAFEBABE}
)

func BenchmarkFloat128Add(b *testing.B) {
	for i := 0; i < b.N; i++ {
		BenchFloat128Result = benchOnePointFive.Add(benchThird)
	}
}

func BenchmarkFloat128AddSubnormal(b *testing.B) {
	for i := 0; i < b.N; i++ {
		BenchFloat128Result = benchThird.Add(benchSubnormal)
	}
}

func BenchmarkFloat128Sub(b *testing.B) {
	for i := 0; i < b.N; i++ {
		BenchFloat128Result = benchOnePointFive.Sub(benchThird)
	}
}

func BenchmarkFloat128Mul(b *testing.B) {
	for i := 0; i < b.N; i++ {
		BenchFloat128Result = benchOnePointFive.Mul(benchThird)
	}
}

func BenchmarkFloat128Lt(b *testing.B) {
	for i := 0; i < b.N; i++ {
		BenchBoolResult = benchThird.Lt(benchOnePointFive)
	}
}

func BenchmarkFloat128Class(b *testing.B) {
	for i := 0; i < b.N; i++ {
		BenchClassResult = benchSubnormal.Class()
	}
}

func BenchmarkFloat128Float64(b *testing.B) {
	for i := 0; i < b.N; i++ {
		BenchFloat64Result = benchThird.Float64()
	}
}

func BenchmarkFromUint64(b *testing.B) {
	for i := 0; i < b.N; i++ {
		BenchFloat128Result = FromUint64(18927348917)
	}
}

func BenchmarkFloat128Uint64(b *testing.B) {
	for i := 0; i < b.N; i++ {
		BenchUint64Result = benchOnePointFive.Uint64()
	}
}
