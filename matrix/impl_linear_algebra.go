// SPDX-License-Identifier: MIT
// Package matrix provides the dense linear-algebra kernels: element-wise addition
// and subtraction, matrix multiplication and transpose. All functions perform strict
// fail-fast validation, allocate a fresh result and never mutate their operands.
//
// Notes:
//   - Factorization and triangular solves live in cholesky.go and substitution.go.
//   - Row-independent kernels accept ...Option; WithWorkers(n) partitions output rows.

package matrix

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opAdd       = "Add"
	opSub       = "Sub"
	opMul       = "Mul"
	opTranspose = "Transpose"
	opCholesky  = "Cholesky"
	opForward   = "ForwardSubstitution"
	opBackward  = "BackwardSubstitution"
	opMaxNorm   = "MaxNorm"
	opEuclid    = "EuclideanNorm"
)

// addSub computes elementwise out = a + sign*b for sign ∈ {+1, -1}.
// Internal helper for Add/Sub to share validation, allocation and partitioning.
//
// Implementation:
//   - Stage 1: ValidateSameShape(a, b). Allocate result (rows, cols).
//   - Stage 2: flat loop per row block; blocks may run on separate goroutines.
//
// Complexity:
//   - Time O(r*c), Space O(r*c) for the new result.
func addSub[T Scalar](a, b *Dense[T], sign T, opTag string, opts []Option) (*Dense[T], error) {
	if err := ValidateSameShape(a, b); err != nil {
		return nil, matrixErrorf(opTag, err)
	}

	o := gatherOptions(opts...)
	rows, cols := a.r, a.c
	res := mustDense[T](rows, cols)
	err := forEachRowBlock(rows, o, func(lo, hi int) {
		for idx := lo * cols; idx < hi*cols; idx++ { // deterministic flat walk
			res.data[idx] = a.data[idx] + sign*b.data[idx]
		}
	})
	if err != nil {
		return nil, matrixErrorf(opTag, err)
	}

	return res, nil
}

// Add computes the element-wise sum C = A + B and returns a fresh Dense result.
//
// Errors:
//   - ErrNilMatrix (nil input), ErrDimensionMismatch (shape mismatch).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Add[T Scalar](a, b *Dense[T], opts ...Option) (*Dense[T], error) {
	return addSub(a, b, 1, opAdd, opts)
}

// Sub computes the element-wise difference C = A - B and returns a fresh Dense result.
//
// Errors:
//   - ErrNilMatrix (nil input), ErrDimensionMismatch (shape mismatch).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Sub[T Scalar](a, b *Dense[T], opts ...Option) (*Dense[T], error) {
	return addSub(a, b, -1, opSub, opts)
}

// Mul performs standard matrix multiplication C = A × B (no aliasing).
//
// Implementation:
//   - Stage 1: Validate A,B (not nil) and inner dimensions (A.Cols == B.Rows).
//   - Stage 2: naive i→j→k triple loop, one accumulator per output cell.
//     Row blocks of C may be computed on separate goroutines (WithWorkers).
//
// Inputs:
//   - A: left matrix with shape (m × k).
//   - B: right matrix with shape (k × n).
//
// Returns:
//   - *Dense: new C with shape (m × n).
//
// Errors:
//   - ErrNilMatrix (nil input), ErrDimensionMismatch (inner mismatch).
//
// Complexity:
//   - Time O(m*k*n), Space O(m*n).
//
// Notes:
//   - The accumulation order per cell is fixed (k ascending), so sequential and
//     partitioned runs produce identical bits.
func Mul[T Scalar](a, b *Dense[T], opts ...Option) (*Dense[T], error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	o := gatherOptions(opts...)
	aRows, aCols, bCols := a.r, a.c, b.c
	res := mustDense[T](aRows, bCols)
	err := forEachRowBlock(aRows, o, func(lo, hi int) {
		var (
			i, j, k    int
			rowA, rowR int
			sum        T
		)
		for i = lo; i < hi; i++ {
			rowA = i * aCols
			rowR = i * bCols
			for j = 0; j < bCols; j++ {
				sum = 0
				for k = 0; k < aCols; k++ {
					sum += a.data[rowA+k] * b.data[k*bCols+j]
				}
				res.data[rowR+j] = sum
			}
		}
	})
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	return res, nil
}

// Transpose returns a new matrix with rows and columns swapped (mᵀ).
// The original matrix is never mutated.
//
// Implementation:
//   - Stage 1: ValidateNotNil(m). Allocate Dense(cols, rows).
//   - Stage 2: data[i*cols + j] → res.data[j*rows + i], partitioned by source rows.
//
// Errors:
//   - ErrNilMatrix.
//
// Complexity:
//   - Time O(r*c), Space O(r*c) for the returned matrix.
func Transpose[T Scalar](m *Dense[T], opts ...Option) (*Dense[T], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	o := gatherOptions(opts...)
	rows, cols := m.r, m.c
	res := mustDense[T](cols, rows) // dims flipped
	// Each source row i fills column i of the result; blocks never overlap.
	err := forEachRowBlock(rows, o, func(lo, hi int) {
		var i, j, baseSrc int
		for i = lo; i < hi; i++ {
			baseSrc = i * cols
			for j = 0; j < cols; j++ {
				res.data[j*rows+i] = m.data[baseSrc+j]
			}
		}
	})
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	return res, nil
}
