// SPDX-License-Identifier: MIT

// Package matrix: scalar constraint and the numeric helpers every kernel shares.
// Kernels are written once against Scalar and instantiated for float32 and float64;
// there is no per-precision code anywhere in the package.
package matrix

import (
	"math"

	"golang.org/x/exp/constraints"
)

// Scalar is the element type accepted by Dense and all kernels.
// Go arithmetic covers add/sub/mul/div, ordering and the zero value;
// sqrt and abs are provided by the helpers below.
type Scalar interface {
	constraints.Float
}

// sqrt returns √v computed in float64 and narrowed back to T.
// For float32 the narrowing is exact-rounded, matching math.Sqrt semantics.
// Complexity: O(1).
func sqrt[T Scalar](v T) T { return T(math.Sqrt(float64(v))) }

// abs returns |v| for any Scalar.
// Complexity: O(1).
func abs[T Scalar](v T) T { return T(math.Abs(float64(v))) }

// isPositive reports v > 0. NaN is not positive.
func isPositive[T Scalar](v T) bool { return v > 0 }
