// SPDX-License-Identifier: MIT

// Package matrix: triangular solvers.
//
// Both solvers take the system matrix and a right-hand side given as an n×1
// column *Dense, and return x as a fresh n×1 column. Entries of the matrix on the
// "wrong" side of the diagonal are ignored, so a full matrix can be passed and
// only its lower (forward) or upper (backward) triangle is used.

package matrix

// ForwardSubstitution solves L·x = rhs for lower-triangular L.
//
// Implementation:
//   - Stage 1: ValidateTriangularSystem(l, rhs).
//   - Stage 2: for i = 0..n-1: x[i] = (rhs[i] - Σ_{j<i} L[i,j]·x[j]) / L[i,i].
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch.
//   - *PivotError wrapping ErrSingular when L[i,i] == 0.
//
// Complexity:
//   - Time O(n^2), Space O(n).
func ForwardSubstitution[T Scalar](l, rhs *Dense[T]) (*Dense[T], error) {
	if err := ValidateTriangularSystem(l, rhs); err != nil {
		return nil, matrixErrorf(opForward, err)
	}

	n := l.r
	x := mustDense[T](n, 1)
	var (
		i, j, row int
		sum, piv  T
	)
	for i = 0; i < n; i++ {
		row = i * n
		sum = 0
		for j = 0; j < i; j++ {
			sum += l.data[row+j] * x.data[j]
		}
		piv = l.data[row+i]
		if piv == 0 {
			return nil, matrixErrorf(opForward, newPivotError(opForward, i, piv, ErrSingular))
		}
		x.data[i] = (rhs.data[i] - sum) / piv
	}

	return x, nil
}

// BackwardSubstitution solves U·x = rhs for upper-triangular U.
//
// Implementation:
//   - Stage 1: ValidateTriangularSystem(u, rhs).
//   - Stage 2: for i = n-1..0: x[i] = (rhs[i] - Σ_{j>i} U[i,j]·x[j]) / U[i,i].
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch.
//   - *PivotError wrapping ErrSingular when U[i,i] == 0.
//
// Complexity:
//   - Time O(n^2), Space O(n).
func BackwardSubstitution[T Scalar](u, rhs *Dense[T]) (*Dense[T], error) {
	if err := ValidateTriangularSystem(u, rhs); err != nil {
		return nil, matrixErrorf(opBackward, err)
	}

	n := u.r
	x := mustDense[T](n, 1)
	var (
		i, j, row int
		sum, piv  T
	)
	for i = n - 1; i >= 0; i-- {
		row = i * n
		sum = 0
		for j = i + 1; j < n; j++ {
			sum += u.data[row+j] * x.data[j]
		}
		piv = u.data[row+i]
		if piv == 0 {
			return nil, matrixErrorf(opBackward, newPivotError(opBackward, i, piv, ErrSingular))
		}
		x.data[i] = (rhs.data[i] - sum) / piv
	}

	return x, nil
}
