// SPDX-License-Identifier: MIT
// Package csr: sentinel error set and the positional parse error.
// All builders return these sentinels (possibly inside *ParseError) and tests
// check them via errors.Is.

package csr

import (
	"errors"
	"fmt"
)

var (
	// ErrParse is returned when a header or entry line is malformed: wrong token
	// count, or a token that does not parse as an index or as the scalar type.
	ErrParse = errors.New("csr: parse error")

	// ErrNNZMismatch is returned when the number of entries differs from the
	// declared nnz. It wraps ErrParse.
	ErrNNZMismatch = fmt.Errorf("csr: entry count does not match declared nnz: %w", ErrParse)

	// ErrIndexOutOfRange is returned when a row or column index is outside the
	// declared bounds (1-based in text input, 0-based in FromTriplets).
	ErrIndexOutOfRange = errors.New("csr: index out of range")

	// ErrInvalidShape is returned when declared dimensions are negative or
	// exceed MaxCells.
	ErrInvalidShape = errors.New("csr: invalid shape")
)

// ParseError reports the 1-based input line at which parsing failed.
type ParseError struct {
	Line int   // 1-based line number in the input slice (0 when not line-specific)
	Err  error // underlying sentinel, possibly wrapped with detail
}

// Error implements error.
func (e *ParseError) Error() string {
	if e.Line <= 0 {
		return e.Err.Error()
	}

	return fmt.Sprintf("line %d: %v", e.Line, e.Err)
}

// Unwrap exposes the sentinel to errors.Is.
func (e *ParseError) Unwrap() error { return e.Err }

// parseErrorf builds a *ParseError at line with detail wrapped around sentinel.
func parseErrorf(line int, sentinel error, format string, args ...any) error {
	return &ParseError{Line: line, Err: wrapf(sentinel, format, args...)}
}

// wrapf prefixes sentinel with formatted detail, keeping it matchable.
func wrapf(sentinel error, format string, args ...any) error {
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), sentinel)
}
