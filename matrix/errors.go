// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors and the typed pivot error.
// All kernels MUST return these sentinels (possibly wrapped) and tests MUST check
// them via errors.Is. Kernels never panic on user data; panics are reserved for
// index contract breaches (At/Set) and invalid option values.

package matrix

import (
	"errors"
	"fmt"
)

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs. Kernels wrap with matrixErrorf(op, err) so the
// operation tag is visible while errors.Is still matches the sentinel.

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are negative
	// or that rows*cols does not fit in an int.
	ErrInvalidDimensions = errors.New("matrix: invalid dimensions")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	// It is used as the panic payload of At/Set: an out-of-range access is a
	// contract breach, not a recoverable error.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g., Sub of different shapes, Mul where a.Cols != b.Rows, or a non-square
	// input to a factorization.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNilMatrix indicates that a nil *Dense was passed to a kernel.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrNotPositiveDefinite is returned by Cholesky when a diagonal remainder is <= 0.
	ErrNotPositiveDefinite = errors.New("matrix: matrix is not positive definite")

	// ErrSingular is returned by the triangular solvers on a zero diagonal pivot.
	ErrSingular = errors.New("matrix: singular system")
)

// PivotError reports the failing diagonal position of a factorization or solve.
// It unwraps to ErrNotPositiveDefinite (Cholesky) or ErrSingular (substitution).
type PivotError struct {
	Op    string  // kernel tag, e.g. "Cholesky"
	Row   int     // zero-based row of the failing pivot
	Col   int     // zero-based column (== Row for diagonal pivots)
	Value float64 // offending pivot value, widened to float64
	Err   error   // sentinel cause
}

// Error implements error. The Op tag is added by the kernel's wrapper, not here.
func (e *PivotError) Error() string {
	return fmt.Sprintf("pivot (%d, %d) = %g: %v", e.Row, e.Col, e.Value, e.Err)
}

// Unwrap exposes the sentinel to errors.Is.
func (e *PivotError) Unwrap() error { return e.Err }

// newPivotError builds a diagonal PivotError for position (i, i).
func newPivotError[T Scalar](op string, i int, v T, cause error) error {
	return &PivotError{Op: op, Row: i, Col: i, Value: float64(v), Err: cause}
}

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil to avoid creating a non-nil wrapper around a nil cause.
// Complexity: O(1).
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
