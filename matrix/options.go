// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for the dense kernels. This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that enforces invariants.
//
// Design goals:
//   - Deterministic behavior: worker count never changes results, only wall time.
//   - Safe by construction: panic only on invalid parameters (programmer error).
//   - Options fields are unexported; public kernels consume ...Option.
package matrix

import "runtime"

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultWorkers is the number of goroutines used by the row-partitioned kernels.
	// 1 ⇒ sequential execution on the calling goroutine.
	DefaultWorkers = 1

	// DefaultMinRowsPerWorker is the smallest row block handed to one goroutine.
	// Smaller inputs are processed with fewer workers.
	DefaultMinRowsPerWorker = 16
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicWorkersInvalid = "matrix: WithWorkers: n must be >= 1"
	panicMinRowsInvalid = "matrix: WithMinRowsPerWorker: rows must be >= 1"
)

// ---------- Public option type (functional) ----------

// Option mutates internal options. Safe to apply repeatedly (idempotent).
// Constructors MUST panic only on nonsensical values (programmer error).
type Option func(*Options)

// Options is the resolved kernel configuration.
type Options struct {
	workers    int // goroutines for Transpose/Mul/Add/Sub
	minRowsPer int // lower bound on rows per goroutine
}

// Workers returns the effective worker count.
func (o Options) Workers() int { return o.workers }

// WithWorkers runs row-partitioned kernels on n goroutines.
// Panics when n < 1.
func WithWorkers(n int) Option {
	if n < 1 {
		panic(panicWorkersInvalid)
	}

	return func(o *Options) { o.workers = n }
}

// WithAutoWorkers sizes the worker pool to runtime.GOMAXPROCS(0).
func WithAutoWorkers() Option {
	return func(o *Options) { o.workers = runtime.GOMAXPROCS(0) }
}

// WithMinRowsPerWorker sets the smallest row block given to one goroutine.
// Mostly useful in tests to force partitioning of tiny matrices.
// Panics when rows < 1.
func WithMinRowsPerWorker(rows int) Option {
	if rows < 1 {
		panic(panicMinRowsInvalid)
	}

	return func(o *Options) { o.minRowsPer = rows }
}

// NewOptions resolves option setters against documented defaults.
// Complexity: O(k) for k=len(opts).
func NewOptions(opts ...Option) Options {
	return gatherOptions(opts...)
}

// gatherOptions applies user-provided setters on top of defaults
// (last-writer-wins) and finalizes derived invariants.
func gatherOptions(user ...Option) Options {
	o := Options{
		workers:    DefaultWorkers,
		minRowsPer: DefaultMinRowsPerWorker,
	}
	for _, set := range user {
		set(&o) // apply in order; last-writer-wins semantics
	}

	finalizeOptions(&o)

	return o
}

// finalizeOptions enforces derived invariants in exactly one place.
func finalizeOptions(o *Options) {
	if o.workers < 1 {
		o.workers = DefaultWorkers
	}
	if o.minRowsPer < 1 {
		o.minRowsPer = DefaultMinRowsPerWorker
	}
}
