// Package matrix_test provides benchmarks for the Square kernels,
// using deterministic random fill.
package matrix_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/squaremat/matrix"
)

// benchSizes are the matrix sizes to benchmark for polynomial kernels.
var benchSizes = []int{16, 64, 128}

// sinks to defeat dead-code elimination
var (
	sinkM *matrix.Square
	sinkF float64
)

func BenchmarkAdd(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			x := randSquare(b, n, 1337)
			y := randSquare(b, n, 4242)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				m, err := matrix.Add(x, y)
				if err != nil {
					b.Fatal(err)
				}
				sinkM = m
			}
		})
	}
}

func BenchmarkMul(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			x := randSquare(b, n, 11)
			y := randSquare(b, n, 22)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				m, err := matrix.Mul(x, y)
				if err != nil {
					b.Fatal(err)
				}
				sinkM = m
			}
		})
	}
}

func BenchmarkPow(b *testing.B) {
	b.ReportAllocs()
	for _, p := range []int{2, 16, 255} {
		b.Run(fmt.Sprintf("n=32/p=%d", p), func(b *testing.B) {
			x := randSquare(b, 32, 7)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				m, err := matrix.Pow(x, p)
				if err != nil {
					b.Fatal(err)
				}
				sinkM = m
			}
		})
	}
}

// BenchmarkDet stays on small sizes: cofactor expansion is O(n!).
func BenchmarkDet(b *testing.B) {
	b.ReportAllocs()
	for _, n := range []int{3, 6, 8} {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			x := randSquare(b, n, 99)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				d, err := matrix.Det(x)
				if err != nil {
					b.Fatal(err)
				}
				sinkF = d
			}
		})
	}
}
