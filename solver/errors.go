// SPDX-License-Identifier: MIT
// Package solver: sentinel errors and the stage-tagged pipeline error.

package solver

import (
	"errors"
	"fmt"
)

var (
	// ErrNilInput is returned when Solve receives a nil sparse matrix.
	ErrNilInput = errors.New("solver: nil input matrix")

	// ErrFactorCheck is returned when WithFactorCheck is set and max|L·Lᵀ - B|
	// exceeds the tolerance.
	ErrFactorCheck = errors.New("solver: factor check failed")
)

// StageError reports which pipeline stage aborted the solve.
// It unwraps to the kernel error (e.g. matrix.ErrNotPositiveDefinite).
type StageError struct {
	Stage Stage
	Err   error
}

// Error implements error.
func (e *StageError) Error() string {
	return fmt.Sprintf("solve: %s: %v", e.Stage, e.Err)
}

// Unwrap exposes the cause to errors.Is / errors.As.
func (e *StageError) Unwrap() error { return e.Err }
