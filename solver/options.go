// SPDX-License-Identifier: MIT

package solver

import (
	"math"

	"github.com/katalvlaran/sparsechol/matrix"
)

// DefaultWorkers runs every kernel on the calling goroutine.
const DefaultWorkers = 1

const (
	panicWorkersInvalid   = "solver: WithWorkers: n must be >= 1"
	panicToleranceInvalid = "solver: WithFactorCheck: tol must be a finite value >= 0"
)

// Option configures Solve.
type Option func(*Options)

// Options is the resolved Solve configuration.
type Options struct {
	workers     int
	checkFactor bool
	factorTol   float64
}

// Workers returns the worker count forwarded to the row-partitioned kernels.
func (o Options) Workers() int { return o.workers }

// FactorCheck reports whether the factor is verified and against which tolerance.
func (o Options) FactorCheck() (tol float64, enabled bool) { return o.factorTol, o.checkFactor }

// WithWorkers forwards n to Transpose/Mul/Sub (see matrix.WithWorkers).
// Panics when n < 1.
func WithWorkers(n int) Option {
	if n < 1 {
		panic(panicWorkersInvalid)
	}

	return func(o *Options) { o.workers = n }
}

// WithFactorCheck verifies max|L·Lᵀ - B| <= tol right after factoring.
// The check costs one extra transpose and product.
// Panics when tol is negative, NaN or infinite.
func WithFactorCheck(tol float64) Option {
	if tol < 0 || math.IsNaN(tol) || math.IsInf(tol, 0) {
		panic(panicToleranceInvalid)
	}

	return func(o *Options) {
		o.checkFactor = true
		o.factorTol = tol
	}
}

// NewOptions resolves setters against the defaults.
func NewOptions(opts ...Option) Options { return gatherOptions(opts...) }

func gatherOptions(user ...Option) Options {
	o := Options{workers: DefaultWorkers}
	for _, set := range user {
		set(&o)
	}

	return o
}

// kernelOptions maps the solve configuration onto matrix options.
func (o Options) kernelOptions() []matrix.Option {
	return []matrix.Option{matrix.WithWorkers(o.workers)}
}
