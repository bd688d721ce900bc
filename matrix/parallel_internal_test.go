// SPDX-License-Identifier: MIT
package matrix

import (
	"fmt"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitRows(t *testing.T) {
	assert.Nil(t, splitRows(0, 4, 1))
	assert.Equal(t, []rowBlock{{0, 10}}, splitRows(10, 4, 16))
	assert.Equal(t, []rowBlock{{0, 4}, {4, 7}, {7, 10}}, splitRows(10, 3, 1))
	assert.Len(t, splitRows(40, 8, 16), 3)
}

func TestForEachRowBlock_VisitsEveryRowOnce(t *testing.T) {
	for _, workers := range []int{1, 2, 5, 16} {
		workers := workers
		t.Run(fmt.Sprintf("workers=%d", workers), func(t *testing.T) {
			const rows = 53
			var hits [rows]int32
			o := NewOptions(WithWorkers(workers), WithMinRowsPerWorker(1))

			err := forEachRowBlock(rows, o, func(lo, hi int) {
				for i := lo; i < hi; i++ {
					atomic.AddInt32(&hits[i], 1)
				}
			})
			require.NoError(t, err)
			for i, h := range hits {
				assert.EqualValues(t, 1, h, "row %d", i)
			}
		})
	}
}
