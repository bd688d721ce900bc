// SPDX-License-Identifier: MIT
// Package matrix - public constructors and thin facades.
//
// Purpose:
//   - Provide intention-revealing entry points for common shapes (vectors, identity).
//   - Avoid logic duplication: each facade delegates to the canonical kernel.

package matrix

// NewVector returns an n×1 column vector with every entry equal to fill.
// Complexity: O(n).
func NewVector[T Scalar](n int, fill T) (*Dense[T], error) {
	v, err := NewDense[T](n, 1)
	if err != nil {
		return nil, err
	}
	for i := range v.data {
		v.data[i] = fill
	}

	return v, nil
}

// NewIdentity returns I_n (ones on the diagonal, zeros elsewhere).
// Complexity: O(n^2) zeroing + O(n) diagonal writes.
func NewIdentity[T Scalar](n int) (*Dense[T], error) {
	I, err := NewDense[T](n, n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		I.data[i*n+i] = 1
	}

	return I, nil
}

// ZerosLike returns a new zero matrix with the same shape as m.
func ZerosLike[T Scalar](m *Dense[T]) (*Dense[T], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, err
	}

	return NewDense[T](m.r, m.c)
}

// Product is an alias for Mul: matrix product a × b.
func Product[S Scalar](a, b *Dense[S], opts ...Option) (*Dense[S], error) {
	return Mul(a, b, opts...)
}

// Diff is an alias for Sub: element-wise a − b.
func Diff[S Scalar](a, b *Dense[S], opts ...Option) (*Dense[S], error) { return Sub(a, b, opts...) }

// Gram returns m·mᵀ, the normal-equations matrix of m.
// Composition: Transpose → Mul. The result is square (Rows(m)×Rows(m)) and symmetric.
// Complexity: O(r^2*c).
func Gram[S Scalar](m *Dense[S], opts ...Option) (*Dense[S], error) {
	mt, err := Transpose(m, opts...)
	if err != nil {
		return nil, matrixErrorf("Gram", err)
	}
	g, err := Mul(m, mt, opts...)
	if err != nil {
		return nil, matrixErrorf("Gram", err)
	}

	return g, nil
}
