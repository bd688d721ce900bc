// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic fixtures and utilities for kernels.
//   • Keep all data finite and well-formed.

package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/sparsechol/matrix"
)

// tol64 / tol32 are the element-wise tolerances used for float64 / float32 checks.
const (
	tol64 = 1e-9
	tol32 = 1e-4
)

// MustDense allocates an r×c zero *Dense or fails the test.
func MustDense[T matrix.Scalar](t testing.TB, r, c int) *matrix.Dense[T] {
	t.Helper()
	m, err := matrix.NewDense[T](r, c)
	require.NoError(t, err, "NewDense(%d,%d)", r, c)

	return m
}

// NewFilledDense builds an r×c *Dense from a row-major flat slice.
func NewFilledDense[T matrix.Scalar](t testing.TB, r, c int, vals []T) *matrix.Dense[T] {
	t.Helper()
	m, err := matrix.NewDenseFrom(r, c, vals)
	require.NoError(t, err, "NewDenseFrom(%d,%d)", r, c)

	return m
}

// FromRows builds a *Dense from a slice of rows (all rows must have equal length).
func FromRows[T matrix.Scalar](t testing.TB, rows [][]T) *matrix.Dense[T] {
	t.Helper()
	r := len(rows)
	c := 0
	if r > 0 {
		c = len(rows[0])
	}
	flat := make([]T, 0, r*c)
	for i, row := range rows {
		require.Len(t, row, c, "row %d length", i)
		flat = append(flat, row...)
	}

	return NewFilledDense(t, r, c, flat)
}

// Column builds an n×1 column vector from values.
func Column[T matrix.Scalar](t testing.TB, vals ...T) *matrix.Dense[T] {
	t.Helper()

	return NewFilledDense(t, len(vals), 1, vals)
}

// RandFilledDense returns an r×c matrix with deterministic values in [-1, 1).
func RandFilledDense(t testing.TB, r, c int, seed int64) *matrix.Dense[float64] {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	vals := make([]float64, r*c)
	for i := range vals {
		vals[i] = rng.Float64()*2 - 1
	}

	return NewFilledDense(t, r, c, vals)
}

// RandSPD returns a deterministic n×n symmetric positive-definite matrix A·Aᵀ + n·I.
func RandSPD(t testing.TB, n int, seed int64) *matrix.Dense[float64] {
	t.Helper()
	a := RandFilledDense(t, n, n, seed)
	g, err := matrix.Gram(a)
	require.NoError(t, err)
	I, err := matrix.NewIdentity[float64](n)
	require.NoError(t, err)
	for i := 0; i < n; i++ {
		I.Set(i, i, float64(n))
	}
	spd, err := matrix.Add(g, I)
	require.NoError(t, err)

	return spd
}

// CompareClose asserts identical shapes and |a-b| <= tol element-wise.
func CompareClose[T matrix.Scalar](t testing.TB, want, got *matrix.Dense[T], tol float64) {
	t.Helper()
	require.Equal(t, want.Rows(), got.Rows(), "rows")
	require.Equal(t, want.Cols(), got.Cols(), "cols")
	want.Do(func(i, j int, v T) bool {
		require.InDelta(t, float64(v), float64(got.At(i, j)), tol, "element [%d,%d]", i, j)
		return true
	})
}

// CompareExact asserts got equals the literal rows exactly.
func CompareExact[T matrix.Scalar](t testing.TB, want [][]T, got *matrix.Dense[T]) {
	t.Helper()
	CompareClose(t, FromRows(t, want), got, 0)
}

// MustMul multiplies or fails the test.
func MustMul[T matrix.Scalar](t testing.TB, a, b *matrix.Dense[T]) *matrix.Dense[T] {
	t.Helper()
	c, err := matrix.Mul(a, b)
	require.NoError(t, err)

	return c
}

// MustTranspose transposes or fails the test.
func MustTranspose[T matrix.Scalar](t testing.TB, m *matrix.Dense[T]) *matrix.Dense[T] {
	t.Helper()
	mt, err := matrix.Transpose(m)
	require.NoError(t, err)

	return mt
}
