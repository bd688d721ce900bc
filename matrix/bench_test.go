// Package matrix_test provides benchmarks for core matrix package operations,
// using deterministic random fill for Dense matrices.
package matrix_test

import (
	"fmt"
	"math/rand"
	"runtime"
	"testing"

	"github.com/katalvlaran/sparsechol/matrix"
)

// benchSizes are the matrix sizes to benchmark.
var benchSizes = []int{128, 256, 512}

// sinks to defeat dead-code elimination
var (
	sinkM *matrix.Dense[float64]
	sinkF float64
)

func mustDense(b *testing.B, r, c int) *matrix.Dense[float64] {
	b.Helper()
	m, err := matrix.NewDense[float64](r, c)
	if err != nil {
		b.Fatal(err)
	}

	return m
}

func fillDenseRand(b *testing.B, d *matrix.Dense[float64], seed int64) {
	b.Helper()
	rng := rand.New(rand.NewSource(seed))
	for i := 0; i < d.Rows(); i++ {
		for j := 0; j < d.Cols(); j++ {
			d.Set(i, j, rng.Float64()*2-1)
		}
	}
}

func BenchmarkSub(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			A := mustDense(b, n, n)
			B := mustDense(b, n, n)
			fillDenseRand(b, A, 11)
			fillDenseRand(b, B, 22)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				m, err := matrix.Diff(A, B)
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
			A := mustDense(b, n, n+8) // rectangular
			fillDenseRand(b, A, 7)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				m, err := matrix.Transpose(A)
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
	workers := []int{1, runtime.GOMAXPROCS(0)}
	for _, n := range []int{64, 96, 128} { // limits it so that CI doesn't burn
		for _, w := range workers {
			b.Run(fmt.Sprintf("n=%d/workers=%d", n, w), func(b *testing.B) {
				A := mustDense(b, n, n)
				B := mustDense(b, n, n)
				fillDenseRand(b, A, 101)
				fillDenseRand(b, B, 202)
				b.ResetTimer()
				for i := 0; i < b.N; i++ {
					C, err := matrix.Product(A, B, matrix.WithWorkers(w))
					if err != nil {
						b.Fatal(err)
					}
					sinkM = C
				}
			})
		}
	}
}

func BenchmarkCholesky(b *testing.B) {
	b.ReportAllocs()
	for _, n := range []int{64, 128, 256} {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			A := mustDense(b, n, n)
			fillDenseRand(b, A, 303)
			spd, err := matrix.Gram(A)
			if err != nil {
				b.Fatal(err)
			}
			for i := 0; i < n; i++ {
				spd.Set(i, i, spd.At(i, i)+float64(n)) // diagonal shift keeps it well-conditioned
			}
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				L, err := matrix.Cholesky(spd)
				if err != nil {
					b.Fatal(err)
				}
				sinkM = L
			}
		})
	}
}

func BenchmarkEuclideanNorm(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			A := mustDense(b, n, 1)
			B := mustDense(b, n, 1)
			fillDenseRand(b, A, 1)
			fillDenseRand(b, B, 2)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				v, err := matrix.EuclideanNorm(A, B)
				if err != nil {
					b.Fatal(err)
				}
				sinkF = v
			}
		})
	}
}
