// SPDX-License-Identifier: MIT

package solver

import (
	"fmt"
	"time"

	"k8s.io/klog/v2"

	"github.com/katalvlaran/sparsechol/csr"
	"github.com/katalvlaran/sparsechol/matrix"
)

// Stage names one step of the pipeline.
type Stage string

const (
	StageConvert  Stage = "convert"  // CSR → dense A
	StageNormal   Stage = "normal"   // B = A·Aᵀ
	StageFactor   Stage = "factor"   // L = cholesky(B)
	StageForward  Stage = "forward"  // L·y = b
	StageBackward Stage = "backward" // Lᵀ·x = y
	StageResidual Stage = "residual" // A·x - b and B·x - b norms
)

// Stages lists the pipeline stages in execution order.
func Stages() []Stage {
	return []Stage{StageConvert, StageNormal, StageFactor, StageForward, StageBackward, StageResidual}
}

// Result holds everything Solve computed.
type Result[T matrix.Scalar] struct {
	X        *matrix.Dense[T] // solution of (A·Aᵀ)·x = b, n×1
	L        *matrix.Dense[T] // Cholesky factor of A·Aᵀ
	Residual *matrix.Dense[T] // A·x - b, n×1

	MaxNorm       T // max |(A·x)_i - b_i|
	EuclideanNorm T // ‖A·x - b‖₂

	SystemMaxNorm       T // max |(B·x)_i - b_i| for B = A·Aᵀ
	SystemEuclideanNorm T // ‖B·x - b‖₂

	Timings map[Stage]time.Duration
}

// Solve runs the normal-equations pipeline on a:
//
//	A = dense(a); B = A·Aᵀ; L = cholesky(B); b = [rhs ... rhs]ᵀ
//	y = forward(L, b); x = backward(Lᵀ, y); r = A·x - b
//
// Behavior highlights:
//   - Stages run strictly in order; the first failure aborts, no partial Result.
//   - The residual A·x - b needs A to be square; a rectangular A therefore
//     fails at StageResidual with matrix.ErrDimensionMismatch.
//   - a is never modified.
//
// Errors (all as *StageError, matchable with errors.Is):
//   - ErrNilInput (a == nil).
//   - matrix.ErrNotPositiveDefinite from StageFactor (rank-deficient A).
//   - ErrFactorCheck when WithFactorCheck is set and the factor is off.
//   - matrix.ErrSingular from the substitution stages.
//   - matrix.ErrDimensionMismatch from StageResidual.
//
// Complexity:
//   - Time O(n^2·m + n^3) for A n×m, Space O(n^2 + n·m).
func Solve[T matrix.Scalar](a *csr.CSR[T], rhs T, opts ...Option) (*Result[T], error) {
	if a == nil {
		return nil, &StageError{Stage: StageConvert, Err: ErrNilInput}
	}
	o := gatherOptions(opts...)
	res := &Result[T]{Timings: make(map[Stage]time.Duration, 6)}
	kopts := o.kernelOptions()

	var (
		A, B, b, y, lt *matrix.Dense[T]
		err            error
	)
	steps := []struct {
		stage Stage
		run   func() error
	}{
		{StageConvert, func() error {
			A = a.ToDense()
			return nil
		}},
		{StageNormal, func() error {
			B, err = matrix.Gram(A, kopts...)
			return err
		}},
		{StageFactor, func() error {
			if res.L, err = matrix.Cholesky(B); err != nil {
				return err
			}
			if tol, on := o.FactorCheck(); on {
				return checkFactor(res.L, B, tol, kopts)
			}
			return nil
		}},
		{StageForward, func() error {
			if b, err = matrix.NewVector(A.Rows(), rhs); err != nil {
				return err
			}
			y, err = matrix.ForwardSubstitution(res.L, b)
			return err
		}},
		{StageBackward, func() error {
			if lt, err = matrix.Transpose(res.L, kopts...); err != nil {
				return err
			}
			res.X, err = matrix.BackwardSubstitution(lt, y)
			return err
		}},
		{StageResidual, func() error {
			return residuals(res, A, B, b, kopts)
		}},
	}

	klog.V(2).InfoS("Solving", "rows", a.Rows(), "cols", a.Cols(), "nnz", a.NNZ(), "workers", o.Workers())
	var start time.Time
	for _, s := range steps {
		start = time.Now()
		err = s.run()
		res.Timings[s.stage] = time.Since(start)
		if err != nil {
			klog.V(1).InfoS("Solve aborted", "stage", s.stage, "err", err)
			return nil, &StageError{Stage: s.stage, Err: err}
		}
		klog.V(2).InfoS("Stage done", "stage", s.stage, "elapsed", res.Timings[s.stage])
	}

	return res, nil
}

// checkFactor fails with ErrFactorCheck when max|L·Lᵀ - B| > tol.
func checkFactor[T matrix.Scalar](l, b *matrix.Dense[T], tol float64, kopts []matrix.Option) error {
	llt, err := matrix.Gram(l, kopts...)
	if err != nil {
		return err
	}
	d, err := matrix.MaxNorm(llt, b)
	if err != nil {
		return err
	}
	if !(float64(d) <= tol) {
		return fmt.Errorf("max|L·Lᵀ - B| = %g > %g: %w", float64(d), tol, ErrFactorCheck)
	}

	return nil
}

// residuals fills the A·x - b and B·x - b fields of res.
func residuals[T matrix.Scalar](res *Result[T], a, b, rhs *matrix.Dense[T], kopts []matrix.Option) error {
	ax, err := matrix.Mul(a, res.X, kopts...)
	if err != nil {
		return err
	}
	if res.Residual, err = matrix.Sub(ax, rhs, kopts...); err != nil {
		return err
	}
	if res.MaxNorm, err = matrix.MaxNorm(ax, rhs); err != nil {
		return err
	}
	if res.EuclideanNorm, err = matrix.EuclideanNorm(ax, rhs); err != nil {
		return err
	}

	bx, err := matrix.Mul(b, res.X, kopts...)
	if err != nil {
		return err
	}
	if res.SystemMaxNorm, err = matrix.MaxNorm(bx, rhs); err != nil {
		return err
	}
	res.SystemEuclideanNorm, err = matrix.EuclideanNorm(bx, rhs)

	return err
}
