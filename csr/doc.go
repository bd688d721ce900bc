// SPDX-License-Identifier: MIT

// Package csr provides Compressed Sparse Row matrices over matrix.Scalar and
// their text format:
//
//	3 3 3
//	1 1 1.0
//	2 2 2.0
//	3 3 3.0
//
// The first non-blank line declares rows, cols and the number of entries; each
// following non-blank line is one 1-based (row, col, value) entry. Rows may be
// listed in any order. A CSR is built once (Parse, ParseString, FromTriplets)
// and is read-only afterwards; ToDense hands it to the dense kernels of package
// matrix.
package csr
