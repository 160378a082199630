// SPDX-License-Identifier: MIT
// Package matrix - constructors for Dense matrices.
//
// Purpose:
//   - Build matrices from an index function (Build), from a slice of rows
//     (FromRows), or as neutral elements (NewZeros, NewIdentity).
//
// Policy & Contracts:
//   - Zero-sized shapes are legal for Build/FromRows; a matrix with zero rows
//     is always 0×0.
//   - The numeric policy from Options is applied to every entry and carried
//     by the resulting Dense.
//
// Determinism:
//   - Entries are produced in fixed i→j order; fn is called exactly once per cell.

package matrix

import "fmt"

// KroneckerDelta returns 1 when i == j and 0 otherwise.
// It is the BuildFunc of the identity matrix.
func KroneckerDelta(i, j int) float64 {
	if i == j {
		return 1
	}

	return 0
}

// Build returns an m×n matrix whose entry (i, j) is fn(i, j).
//
// Implementation:
//   - Stage 1: validate m, n >= 0 and fn != nil; resolve options.
//   - Stage 2: allocate and fill row-major, checking each value against the numeric policy.
//
// Errors:
//   - ErrInvalidDimensions (negative size), ErrNilFunc, ErrNaNInf (policy on).
//
// Complexity:
//   - Time O(m*n) calls of fn, Space O(m*n).
func Build(m, n int, fn BuildFunc, opts ...Option) (*Dense, error) {
	if fn == nil {
		return nil, matrixErrorf(opBuild, ErrNilFunc)
	}
	res, err := newDenseZeroOK(m, n)
	if err != nil {
		return nil, matrixErrorf(opBuild, err)
	}
	o := gatherOptions(opts...)
	res.validateNaNInf = o.validateNaNInf

	var i, j, base int
	var v float64
	for i = 0; i < res.r; i++ {
		base = i * res.c
		for j = 0; j < res.c; j++ {
			v = fn(i, j)
			if o.validateNaNInf {
				if err = ValidateFinite(v); err != nil {
					return nil, matrixErrorf(opBuild, fmt.Errorf("entry (%d,%d): %w", i, j, err))
				}
			}
			res.data[base+j] = v
		}
	}

	return res, nil
}

// FromRows copies a slice of equal-length rows into a new Dense.
// A nil or empty slice yields a 0×0 matrix.
//
// Errors:
//   - ErrBadShape when rows differ in length, ErrNaNInf (policy on).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func FromRows(rows [][]float64, opts ...Option) (*Dense, error) {
	r := len(rows)
	c := 0
	if r > 0 {
		c = len(rows[0])
	}
	for i := 1; i < r; i++ {
		if len(rows[i]) != c {
			return nil, matrixErrorf(opFromRows,
				fmt.Errorf("row %d has length %d, want %d: %w", i, len(rows[i]), c, ErrBadShape))
		}
	}

	return Build(r, c, func(i, j int) float64 { return rows[i][j] }, opts...)
}

// NewZeros returns a new zero-initialized *Dense of size rows×cols.
// Thin alias of NewDense with an intention-revealing name.
func NewZeros(rows, cols int) (*Dense, error) { return NewDense(rows, cols) }

// NewIdentity returns I_n, i.e. Build(n, n, KroneckerDelta).
//
// Errors:
//   - ErrInvalidDimensions (wraps ErrInvalidArgument) when n <= 0.
//
// Complexity:
//   - Time O(n^2), Space O(n^2).
func NewIdentity(n int) (*Dense, error) {
	if n <= 0 {
		return nil, matrixErrorf(opIdentity, fmt.Errorf("n=%d: %w", n, ErrInvalidDimensions))
	}

	return Build(n, n, KroneckerDelta)
}
