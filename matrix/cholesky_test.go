// SPDX-License-Identifier: MIT
package matrix_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/sparsechol/matrix"
)

func TestCholesky_KnownFactors(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		b    [][]float64
		l    [][]float64
	}{
		{
			name: "2x2",
			b:    [][]float64{{4, 12}, {12, 37}},
			l:    [][]float64{{2, 0}, {6, 1}},
		},
		{
			name: "3x3",
			b:    [][]float64{{25, 15, -5}, {15, 18, 0}, {-5, 0, 11}},
			l:    [][]float64{{5, 0, 0}, {3, 3, 0}, {-1, 1, 3}},
		},
		{
			name: "diagonal",
			b:    [][]float64{{1, 0, 0}, {0, 4, 0}, {0, 0, 9}},
			l:    [][]float64{{1, 0, 0}, {0, 2, 0}, {0, 0, 3}},
		},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			l, err := matrix.Cholesky(FromRows(t, tc.b))
			require.NoError(t, err)
			CompareClose(t, FromRows(t, tc.l), l, 1e-6)
		})
	}
}

func TestCholesky_Float32(t *testing.T) {
	l, err := matrix.Cholesky(FromRows(t, [][]float32{{25, 15, -5}, {15, 18, 0}, {-5, 0, 11}}))
	require.NoError(t, err)
	CompareClose(t, FromRows(t, [][]float32{{5, 0, 0}, {3, 3, 0}, {-1, 1, 3}}), l, tol32)
}

func TestCholesky_NotPositiveDefinite(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		b    [][]float64
		row  int
	}{
		{"negative remainder", [][]float64{{1, 2, 3}, {2, -1, 4}, {3, 4, 1}}, 1},
		{"zero leading pivot", [][]float64{{0, 0}, {0, 1}}, 0},
		{"singular", [][]float64{{1, 1}, {1, 1}}, 1},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			_, err := matrix.Cholesky(FromRows(t, tc.b))
			require.ErrorIs(t, err, matrix.ErrNotPositiveDefinite)

			var pe *matrix.PivotError
			require.True(t, errors.As(err, &pe))
			assert.Equal(t, tc.row, pe.Row)
			assert.Equal(t, tc.row, pe.Col)
			assert.Equal(t, "Cholesky", pe.Op)
		})
	}
}

func TestCholesky_NonSquare(t *testing.T) {
	_, err := matrix.Cholesky(MustDense[float64](t, 2, 3))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = matrix.Cholesky[float64](nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestCholesky_ReconstructsInput(t *testing.T) {
	for _, n := range []int{1, 4, 12, 30} {
		n := n
		t.Run(fmt.Sprintf("n=%d", n), func(t *testing.T) {
			b := RandSPD(t, n, int64(n))
			l, err := matrix.Cholesky(b)
			require.NoError(t, err)

			// Upper triangle must stay exactly zero.
			l.Do(func(i, j int, v float64) bool {
				if j > i {
					require.Zero(t, v, "L[%d,%d]", i, j)
				}
				return true
			})

			CompareClose(t, b, MustMul(t, l, MustTranspose(t, l)), 1e-6)
		})
	}
}

// TestCholesky_AgreesWithGonum cross-checks the factor against gonum's LAPACK-backed Cholesky.
func TestCholesky_AgreesWithGonum(t *testing.T) {
	const n = 16
	b := RandSPD(t, n, 99)

	sym := mat.NewSymDense(n, nil)
	b.Do(func(i, j int, v float64) bool {
		if j >= i {
			sym.SetSym(i, j, v)
		}
		return true
	})
	var ch mat.Cholesky
	require.True(t, ch.Factorize(sym), "gonum must accept the SPD fixture")
	var ref mat.TriDense
	ch.LTo(&ref)

	l, err := matrix.Cholesky(b)
	require.NoError(t, err)
	l.Do(func(i, j int, v float64) bool {
		assert.InDelta(t, ref.At(i, j), v, 1e-9, "L[%d,%d]", i, j)
		return true
	})
}

func TestCholeskySolve(t *testing.T) {
	b := FromRows(t, [][]float64{{4, 12}, {12, 37}})
	l, err := matrix.Cholesky(b)
	require.NoError(t, err)

	rhs := Column(t, 16.0, 49.0) // B·[1,1]ᵀ
	x, err := matrix.CholeskySolve(l, rhs)
	require.NoError(t, err)
	CompareClose(t, Column(t, 1.0, 1.0), x, 1e-9)
}
