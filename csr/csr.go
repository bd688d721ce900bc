// SPDX-License-Identifier: MIT

package csr

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/sparsechol/matrix"
)

// MaxCells bounds rows, cols and rows*cols of any CSR, so that ToDense can
// always allocate the dense view (2 GiB at float64).
const MaxCells = 1 << 28

// shapeTooLarge reports whether a rows×cols matrix exceeds MaxCells.
func shapeTooLarge(rows, cols int) bool {
	return rows > MaxCells || cols > MaxCells || (cols != 0 && rows > MaxCells/cols)
}

// CSR is an immutable sparse matrix in compressed-row layout.
//   - values[k], colIndices[k] describe the k-th stored entry (0-based column).
//   - entries of row r occupy k in [rowPtr[r], rowPtr[r+1]).
//
// Invariants: rowPtr[0]==0, rowPtr non-decreasing, rowPtr[rows]==nnz,
// every colIndices[k] < cols.
type CSR[T matrix.Scalar] struct {
	rows, cols int
	values     []T
	colIndices []int
	rowPtr     []int
}

// Triplet is one 0-based coordinate entry (Row, Col, Value).
type Triplet[T matrix.Scalar] struct {
	Row, Col int
	Value    T
}

// FromTriplets builds a CSR from 0-based triplets in any order.
//
// Implementation:
//   - Stage 1: validate shape and every index.
//   - Stage 2: count entries per row; prefix-sum counts into rowPtr.
//   - Stage 3: scatter entries into their row slot in input order (stable).
//
// Behavior highlights:
//   - Input need not be sorted by row; within a row, input order is preserved.
//   - Duplicate (row, col) pairs are kept; the later one wins on lookup/ToDense.
//
// Errors:
//   - ErrInvalidShape (negative dimensions, or more than MaxCells cells).
//   - ErrIndexOutOfRange (index < 0 or >= bound), wrapped in *ParseError with Line = k+1.
//
// Complexity:
//   - Time O(nnz + rows), Space O(nnz + rows).
func FromTriplets[T matrix.Scalar](rows, cols int, ts []Triplet[T]) (*CSR[T], error) {
	if rows < 0 || cols < 0 {
		return nil, fmt.Errorf("FromTriplets: %dx%d: %w", rows, cols, ErrInvalidShape)
	}
	if shapeTooLarge(rows, cols) {
		return nil, fmt.Errorf("FromTriplets: %dx%d exceeds %d cells: %w", rows, cols, MaxCells, ErrInvalidShape)
	}
	for k, tr := range ts {
		if tr.Row < 0 || tr.Row >= rows || tr.Col < 0 || tr.Col >= cols {
			return nil, parseErrorf(k+1, ErrIndexOutOfRange, "entry (%d, %d) outside %dx%d", tr.Row, tr.Col, rows, cols)
		}
	}

	return build(rows, cols, ts), nil
}

// build runs count-then-scatter over already validated triplets.
func build[T matrix.Scalar](rows, cols int, ts []Triplet[T]) *CSR[T] {
	nnz := len(ts)
	rowPtr := make([]int, rows+1)
	for _, tr := range ts {
		rowPtr[tr.Row+1]++ // per-row counts, shifted by one
	}
	for r := 0; r < rows; r++ {
		rowPtr[r+1] += rowPtr[r] // prefix sum → row offsets
	}

	values := make([]T, nnz)
	colIndices := make([]int, nnz)
	next := make([]int, rows) // next free slot per row
	copy(next, rowPtr[:rows])
	var k int
	for _, tr := range ts {
		k = next[tr.Row]
		values[k] = tr.Value
		colIndices[k] = tr.Col
		next[tr.Row]++
	}

	return &CSR[T]{rows: rows, cols: cols, values: values, colIndices: colIndices, rowPtr: rowPtr}
}

// Rows returns the declared row count.
func (m *CSR[T]) Rows() int { return m.rows }

// Cols returns the declared column count.
func (m *CSR[T]) Cols() int { return m.cols }

// NNZ returns the number of stored entries.
func (m *CSR[T]) NNZ() int { return len(m.values) }

// Values returns a copy of the stored values in CSR order.
func (m *CSR[T]) Values() []T { return append([]T(nil), m.values...) }

// ColIndices returns a copy of the 0-based column indices in CSR order.
func (m *CSR[T]) ColIndices() []int { return append([]int(nil), m.colIndices...) }

// RowPtr returns a copy of the row offsets (length Rows()+1).
func (m *CSR[T]) RowPtr() []int { return append([]int(nil), m.rowPtr...) }

// checkIndex panics on an out-of-range (row, col), mirroring matrix.Dense.
func (m *CSR[T]) checkIndex(method string, row, col int) {
	if row < 0 || row >= m.rows || col < 0 || col >= m.cols {
		panic(fmt.Errorf("CSR.%s(%d,%d) on %dx%d: %w", method, row, col, m.rows, m.cols, ErrIndexOutOfRange))
	}
}

// At returns the value at (row, col), or zero when no entry is stored.
// With duplicates the last stored entry wins. Panics on an out-of-range index.
// Complexity: O(entries in row).
func (m *CSR[T]) At(row, col int) T {
	m.checkIndex("At", row, col)
	var v T
	for k := m.rowPtr[row]; k < m.rowPtr[row+1]; k++ {
		if m.colIndices[k] == col {
			v = m.values[k]
		}
	}

	return v
}

// Do visits stored entries in CSR order and calls f(row, col, v).
// Stops early when f returns false.
func (m *CSR[T]) Do(f func(row, col int, v T) bool) {
	for r := 0; r < m.rows; r++ {
		for k := m.rowPtr[r]; k < m.rowPtr[r+1]; k++ {
			if !f(r, m.colIndices[k], m.values[k]) {
				return
			}
		}
	}
}

// ToDense materializes the matrix: zero everywhere except stored entries.
// Pure and total; the CSR invariants guarantee every write is in range.
// Complexity: O(rows*cols + nnz).
func (m *CSR[T]) ToDense() *matrix.Dense[T] {
	d, err := matrix.NewDense[T](m.rows, m.cols)
	if err != nil {
		panic(err) // unreachable: shape validated at construction
	}
	m.Do(func(row, col int, v T) bool {
		d.Set(row, col, v)
		return true
	})

	return d
}

// MulVec returns y = M·x computed directly on the sparse storage.
//
// Errors:
//   - matrix.ErrDimensionMismatch when len(x) != Cols().
//
// Complexity: O(rows + nnz).
func (m *CSR[T]) MulVec(x []T) ([]T, error) {
	if len(x) != m.cols {
		return nil, fmt.Errorf("MulVec: len(x)=%d, cols=%d: %w", len(x), m.cols, matrix.ErrDimensionMismatch)
	}
	y := make([]T, m.rows)
	var sum T
	for r := 0; r < m.rows; r++ {
		sum = 0
		for k := m.rowPtr[r]; k < m.rowPtr[r+1]; k++ {
			sum += m.values[k] * x[m.colIndices[k]]
		}
		y[r] = sum
	}

	return y, nil
}

// String renders one "(row, col) value" line per stored entry, 0-based.
func (m *CSR[T]) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "CSR %dx%d nnz=%d\n", m.rows, m.cols, len(m.values))
	m.Do(func(row, col int, v T) bool {
		fmt.Fprintf(&b, "(%d, %d) %g\n", row, col, v)
		return true
	})

	return b.String()
}
