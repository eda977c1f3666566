// SPDX-License-Identifier: MIT
// Package matrix_test provides benchmarks for core matrix operations,
// using deterministic random fill for Dense matrices.
package matrix_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/numlin/matrix"
)

// benchSizes are the matrix sizes to benchmark.
var benchSizes = []int{64, 128, 256}

// sinks to defeat dead-code elimination
var (
	sinkM *matrix.Dense[float64]
	sinkF float64
)

func BenchmarkAdd(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			x := RandIntDense(b, n, n, 1337)
			y := RandIntDense(b, n, n, 4242)
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
			x := RandIntDense(b, n, n, 1337)
			y := RandIntDense(b, n, n, 4242)
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

func BenchmarkTranspose(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			x := RandIntDense(b, n, n+1, 99)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				x.Transpose()
			}
			sinkM = x
		})
	}
}

func BenchmarkTrace(b *testing.B) {
	x := RandIntDense(b, 256, 256, 7)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		tr, err := matrix.Trace(x)
		if err != nil {
			b.Fatal(err)
		}
		sinkF = tr
	}
}
