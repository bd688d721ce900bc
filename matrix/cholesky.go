// SPDX-License-Identifier: MIT

package matrix

// Cholesky computes the lower-triangular factor L of a symmetric positive-definite
// matrix B such that B = L·Lᵀ (Cholesky–Banachiewicz, row by row).
//
// Implementation:
//   - Stage 1: Validate b (not nil, square); allocate a zero n×n L.
//   - Stage 2: For i=0..n-1 and j=0..i:
//     sum = Σ_{k<j} L[i,k]·L[j,k]
//     i == j: v = B[i,i] - sum must be > 0, L[i,i] = √v
//     i != j: L[i,j] = (B[i,j] - sum) / L[j,j]
//
// Behavior highlights:
//   - Only the lower triangle of B is read; symmetry is assumed, not checked.
//   - The upper triangle of L stays at the zero default.
//   - Each row depends on every earlier row, so the kernel is strictly sequential.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (not square).
//   - *PivotError wrapping ErrNotPositiveDefinite at the first diagonal remainder
//     that is <= 0 (or NaN), carrying position (i, i).
//
// Complexity:
//   - Time O(n^3/3), Space O(n^2).
func Cholesky[T Scalar](b *Dense[T]) (*Dense[T], error) {
	if err := ValidateSquare(b); err != nil {
		return nil, matrixErrorf(opCholesky, err)
	}

	n := b.r
	l := mustDense[T](n, n)
	var (
		i, j, k      int
		rowI, rowJ   int
		sum, v, diag T
	)
	for i = 0; i < n; i++ {
		rowI = i * n
		for j = 0; j <= i; j++ {
			rowJ = j * n
			sum = 0
			for k = 0; k < j; k++ {
				sum += l.data[rowI+k] * l.data[rowJ+k]
			}
			if i == j {
				v = b.data[rowI+i] - sum
				if !isPositive(v) {
					return nil, matrixErrorf(opCholesky, newPivotError(opCholesky, i, v, ErrNotPositiveDefinite))
				}
				l.data[rowI+i] = sqrt(v)
				continue
			}
			diag = l.data[rowJ+j] // > 0 by the check on row j
			l.data[rowI+j] = (b.data[rowI+j] - sum) / diag
		}
	}

	return l, nil
}

// CholeskySolve solves (L·Lᵀ)·x = rhs given the factor L from Cholesky.
// Composition: ForwardSubstitution(L, rhs) → Transpose(L) → BackwardSubstitution(Lᵀ, y).
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch, *PivotError wrapping ErrSingular.
//
// Complexity:
//   - Time O(n^2), Space O(n^2) for Lᵀ.
func CholeskySolve[T Scalar](l, rhs *Dense[T]) (*Dense[T], error) {
	y, err := ForwardSubstitution(l, rhs)
	if err != nil {
		return nil, err
	}
	lt, err := Transpose(l)
	if err != nil {
		return nil, err
	}

	return BackwardSubstitution(lt, y)
}
