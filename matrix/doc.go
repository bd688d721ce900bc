// Package matrix provides a generic row-major dense matrix and the linear-algebra
// kernels needed to solve symmetric positive-definite systems.
//
// The package provides:
//
//   - Dense[T], a row-major container over any Scalar (float32 or float64).
//   - Transpose, Mul, Add, Sub and the Gram product m·mᵀ.
//   - Cholesky factorization B = L·Lᵀ with typed non-positive-definite failures.
//   - ForwardSubstitution / BackwardSubstitution for triangular systems.
//   - MaxNorm / EuclideanNorm distances used to report residuals.
//
// Every kernel validates its operands, allocates a fresh result and leaves its
// inputs untouched. Shape problems are returned as ErrDimensionMismatch; numeric
// breakdowns as *PivotError wrapping ErrNotPositiveDefinite or ErrSingular.
//
// Row-independent kernels (Transpose, Mul, Add, Sub) accept WithWorkers(n) to
// split output rows across goroutines. Results do not depend on the worker count.
//
//	b, _ := matrix.NewDenseFrom(2, 2, []float64{4, 12, 12, 37})
//	l, err := matrix.Cholesky(b) // [[2 0] [6 1]]
package matrix
