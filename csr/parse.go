// SPDX-License-Identifier: MIT

package csr

import (
	"reflect"
	"strconv"
	"strings"

	"github.com/katalvlaran/sparsechol/matrix"
)

// Parse builds a CSR from the text format:
//
//	<rows> <cols> <nnz>
//	<row> <col> <value>   (nnz lines, 1-based indices, any order)
//
// Behavior highlights:
//   - Tokens are split on any run of whitespace; blank lines are skipped.
//   - The first non-blank line is the header; it is never read as an entry.
//   - Values parse at the bit size of T, so float32 inputs round once.
//   - Entries may appear in any row order (count-then-scatter build).
//
// Errors (all as *ParseError carrying the 1-based line):
//   - ErrParse: missing header, wrong token count, non-numeric token, negative header
//     field, or a declared shape above MaxCells.
//   - ErrIndexOutOfRange: row ∉ [1,rows] or col ∉ [1,cols].
//   - ErrNNZMismatch: entry count differs from the declared nnz (Line = 0).
//
// Complexity:
//   - Time O(len(lines) + rows), Space O(nnz + rows).
func Parse[T matrix.Scalar](lines []string) (*CSR[T], error) {
	bits := reflect.TypeOf(T(0)).Bits()

	var (
		header        = -1
		rows, cols, n int
		err           error
	)
	for i, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		header = i
		if rows, cols, n, err = parseHeader(i+1, line); err != nil {
			return nil, err
		}
		break
	}
	if header < 0 {
		return nil, &ParseError{Err: errMissingHeader}
	}

	ts := make([]Triplet[T], 0, min(n, len(lines)-header-1))
	var tr Triplet[T]
	for i := header + 1; i < len(lines); i++ {
		if strings.TrimSpace(lines[i]) == "" {
			continue
		}
		if tr, err = parseEntry[T](i+1, lines[i], rows, cols, bits); err != nil {
			return nil, err
		}
		ts = append(ts, tr)
	}
	if len(ts) != n {
		return nil, &ParseError{Err: wrapf(ErrNNZMismatch, "declared %d, found %d", n, len(ts))}
	}

	return build(rows, cols, ts), nil
}

// ParseString is Parse over s split into lines.
func ParseString[T matrix.Scalar](s string) (*CSR[T], error) {
	return Parse[T](strings.Split(s, "\n"))
}

var errMissingHeader = wrapf(ErrParse, "missing header line")

// parseHeader reads "<rows> <cols> <nnz>", each a non-negative integer.
func parseHeader(line int, s string) (rows, cols, nnz int, err error) {
	f := strings.Fields(s)
	if len(f) != 3 {
		return 0, 0, 0, parseErrorf(line, ErrParse, "header: want 3 fields, got %d", len(f))
	}
	var v [3]int
	for k, tok := range f {
		if v[k], err = strconv.Atoi(tok); err != nil || v[k] < 0 {
			return 0, 0, 0, parseErrorf(line, ErrParse, "header: field %d %q is not a non-negative integer", k+1, tok)
		}
	}

	if shapeTooLarge(v[0], v[1]) {
		return 0, 0, 0, parseErrorf(line, ErrParse, "header: %dx%d exceeds %d cells", v[0], v[1], MaxCells)
	}

	return v[0], v[1], v[2], nil
}

// parseEntry reads "<row> <col> <value>" and converts indices to 0-based.
func parseEntry[T matrix.Scalar](line int, s string, rows, cols, bits int) (Triplet[T], error) {
	var tr Triplet[T]
	f := strings.Fields(s)
	if len(f) != 3 {
		return tr, parseErrorf(line, ErrParse, "entry: want 3 fields, got %d", len(f))
	}
	r, err := strconv.Atoi(f[0])
	if err != nil {
		return tr, parseErrorf(line, ErrParse, "entry: row %q", f[0])
	}
	c, err := strconv.Atoi(f[1])
	if err != nil {
		return tr, parseErrorf(line, ErrParse, "entry: col %q", f[1])
	}
	v, err := strconv.ParseFloat(f[2], bits)
	if err != nil {
		return tr, parseErrorf(line, ErrParse, "entry: value %q", f[2])
	}
	if r < 1 || r > rows || c < 1 || c > cols {
		return tr, parseErrorf(line, ErrIndexOutOfRange, "entry (%d, %d) outside %dx%d", r, c, rows, cols)
	}
	tr.Row, tr.Col, tr.Value = r-1, c-1, T(v)

	return tr, nil
}
