// Package sparsechol solves symmetric positive-definite systems built from a
// sparse input matrix: it reads A in coordinate form, forms B = A·Aᵀ, factors
// B by Cholesky, solves B·x = b by triangular substitution and reports the
// residual norms. Every kernel is generic over float32 and float64.
//
// Subpackages:
//
//	csr/            — Compressed Sparse Row storage, text parser, dense conversion
//	matrix/         — dense row-major matrices and the linear-algebra kernels
//	                  (transpose, product, Cholesky, substitution, norms)
//	solver/         — the staged pipeline with per-stage errors and timings
//	cmd/sparsechol/ — command-line front end
//
// Input format:
//
//	3 3 3      rows cols nnz
//	1 1 1.0    row col value (1-based, any order)
//	2 2 2.0
//	3 3 3.0
//
// Quick start:
//
//	a, err := csr.ParseString[float64](text)
//	if err != nil { ... }
//	res, err := solver.Solve(a, 1.0)
//	if err != nil { ... } // *solver.StageError, errors.Is(err, matrix.ErrNotPositiveDefinite)
//	fmt.Println(res.MaxNorm, res.EuclideanNorm)
//
// Kernels never mutate their inputs and always return fresh matrices. The
// row-independent kernels (transpose, product, element-wise add/sub) accept
// matrix.WithWorkers to spread output rows over goroutines; results are
// bit-identical to the sequential path.
//
//	go install github.com/katalvlaran/sparsechol/cmd/sparsechol@latest
package sparsechol
