// SPDX-License-Identifier: MIT

// Package solver wires csr and matrix into the normal-equations pipeline:
// a sparse A is densified, B = A·Aᵀ is factored by Cholesky, B·x = b is solved
// by forward then backward substitution and the residual norms are reported.
//
// Every stage is timed and, on failure, reported as a *StageError naming the
// stage. Progress is logged through klog at verbosity 2 and aborts at
// verbosity 1; the package never logs at default verbosity.
package solver
