// SPDX-License-Identifier: MIT
package matrix_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/sparsechol/matrix"
)

// TestParallelKernels_MatchSequential checks that partitioning output rows
// never changes a single bit of the result.
func TestParallelKernels_MatchSequential(t *testing.T) {
	t.Parallel()

	a := RandFilledDense(t, 37, 23, 1)
	b := RandFilledDense(t, 23, 19, 2)
	c := RandFilledDense(t, 37, 23, 3)

	for _, workers := range []int{2, 3, 8, 64} {
		workers := workers
		t.Run(fmt.Sprintf("workers=%d", workers), func(t *testing.T) {
			opts := []matrix.Option{matrix.WithWorkers(workers), matrix.WithMinRowsPerWorker(1)}

			seq, err := matrix.Mul(a, b)
			require.NoError(t, err)
			par, err := matrix.Mul(a, b, opts...)
			require.NoError(t, err)
			assert.Equal(t, seq.Data(), par.Data(), "Mul")

			seq, err = matrix.Transpose(a)
			require.NoError(t, err)
			par, err = matrix.Transpose(a, opts...)
			require.NoError(t, err)
			assert.Equal(t, seq.Data(), par.Data(), "Transpose")

			seq, err = matrix.Sub(a, c)
			require.NoError(t, err)
			par, err = matrix.Sub(a, c, opts...)
			require.NoError(t, err)
			assert.Equal(t, seq.Data(), par.Data(), "Sub")

			seq, err = matrix.Gram(a)
			require.NoError(t, err)
			par, err = matrix.Gram(a, opts...)
			require.NoError(t, err)
			assert.Equal(t, seq.Data(), par.Data(), "Gram")
		})
	}
}

func TestOptions(t *testing.T) {
	assert.Equal(t, matrix.DefaultWorkers, matrix.NewOptions().Workers())
	assert.Equal(t, 4, matrix.NewOptions(matrix.WithWorkers(2), matrix.WithWorkers(4)).Workers())
	assert.GreaterOrEqual(t, matrix.NewOptions(matrix.WithAutoWorkers()).Workers(), 1)

	assert.PanicsWithValue(t, "matrix: WithWorkers: n must be >= 1", func() { matrix.WithWorkers(0) })
	assert.Panics(t, func() { matrix.WithMinRowsPerWorker(0) })
}
