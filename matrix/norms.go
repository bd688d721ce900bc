// SPDX-License-Identifier: MIT

package matrix

// MaxNorm returns the L∞ distance max_i |a_i - b_i| over all elements.
// Returns 0 for empty operands and NaN as soon as any difference is NaN.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (shapes differ).
//
// Complexity:
//   - Time O(r*c), Space O(1).
func MaxNorm[T Scalar](a, b *Dense[T]) (T, error) {
	if err := ValidateSameShape(a, b); err != nil {
		return 0, matrixErrorf(opMaxNorm, err)
	}

	var best, d T
	for idx := range a.data {
		d = abs(a.data[idx] - b.data[idx])
		if d != d {
			return d, nil // NaN is never smaller than the running max
		}
		if d > best {
			best = d
		}
	}

	return best, nil
}

// EuclideanNorm returns the L2 distance sqrt(Σ (a_i - b_i)^2) over all elements.
// Returns 0 for empty operands.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (shapes differ).
//
// Complexity:
//   - Time O(r*c), Space O(1).
func EuclideanNorm[T Scalar](a, b *Dense[T]) (T, error) {
	if err := ValidateSameShape(a, b); err != nil {
		return 0, matrixErrorf(opEuclid, err)
	}

	var sum, d T
	for idx := range a.data {
		d = a.data[idx] - b.data[idx]
		sum += d * d
	}

	return sqrt(sum), nil
}
