// SPDX-License-Identifier: MIT
// Package matrix provides universal operations on any Matrix implementation:
// shape queries, row/column extraction, matrix and matrix-vector products,
// and transpose. All functions perform strict fail-fast validation and
// return clear errors on dimension mismatches.
//
// Notes:
//   - *Dense operands take a flat-slice fast path; any other Matrix goes
//     through At with a fixed i→j(→k) order. Both paths give identical results.
//   - Inputs are never mutated; every result is freshly allocated.

package matrix

import (
	"fmt"

	"github.com/katalvlaran/linalg/vector"
)

// Shape returns (rows, cols) of a. The column count is 0 for a matrix with no
// rows, and a nil Matrix is reported as 0×0.
// Complexity: O(1).
func Shape(a Matrix) (rows, cols int) {
	if ValidateNotNil(a) != nil {
		return 0, 0
	}
	rows = a.Rows()
	if rows == 0 {
		return 0, 0
	}

	return rows, a.Cols()
}

// IsSquare reports whether Shape(a) has equal row and column counts.
// The empty matrix is square.
func IsSquare(a Matrix) bool {
	r, c := Shape(a)

	return r == c
}

// Row returns a copy of row i of a.
//
// Errors:
//   - ErrNilMatrix, ErrOutOfRange when i is outside [0, Rows).
//
// Complexity:
//   - Time O(c), Space O(c).
func Row(a Matrix, i int) (vector.Vector, error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, matrixErrorf(opRow, err)
	}
	if err := ValidateIndex(i, a.Rows()); err != nil {
		return nil, matrixErrorf(opRow, err)
	}

	cols := a.Cols()
	out := make(vector.Vector, cols)
	if d, ok := a.(*Dense); ok {
		copy(out, d.data[i*cols:(i+1)*cols])
		return out, nil
	}

	var err error
	for j := 0; j < cols; j++ {
		if out[j], err = a.At(i, j); err != nil {
			return nil, matrixErrorf(opRow, err)
		}
	}

	return out, nil
}

// Column returns a copy of column j of a.
//
// Errors:
//   - ErrNilMatrix, ErrOutOfRange when j is outside [0, Cols).
//
// Complexity:
//   - Time O(r), Space O(r).
func Column(a Matrix, j int) (vector.Vector, error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, matrixErrorf(opColumn, err)
	}
	if err := ValidateIndex(j, a.Cols()); err != nil {
		return nil, matrixErrorf(opColumn, err)
	}

	rows := a.Rows()
	out := make(vector.Vector, rows)
	if d, ok := a.(*Dense); ok {
		for i := 0; i < rows; i++ {
			out[i] = d.data[i*d.c+j] // stride walk down the column
		}
		return out, nil
	}

	var err error
	for i := 0; i < rows; i++ {
		if out[i], err = a.At(i, j); err != nil {
			return nil, matrixErrorf(opColumn, err)
		}
	}

	return out, nil
}

// Mul performs standard matrix multiplication C = A × B with
// C[i][j] = Σ_k A[i][k]·B[k][j]. Rectangular operands are supported.
//
// Implementation:
//   - Stage 1: validate A,B (not nil) and inner dimensions (A.Cols == B.Rows).
//   - Stage 2: if A and B are *Dense, use i→k→j with row-major strides;
//     otherwise use i→j→k with a fixed order.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (inner mismatch).
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c).
//
// Every term A[i][k]·B[k][j] enters the sum, so non-finite entries admitted
// via WithNoValidateNaNInf propagate (0·Inf is NaN).
func Mul(a, b Matrix) (Matrix, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	aRows, aCols, bCols := a.Rows(), a.Cols(), b.Cols()
	res, err := newDenseZeroOK(aRows, bCols)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	var (
		i, j, k         int
		av, bv, current float64
	)
	// Fast-path for two Dense matrices
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			var rowOffsetA, rowOffsetB, rowOffsetR int
			for i = 0; i < aRows; i++ {
				rowOffsetA = i * aCols
				rowOffsetR = i * res.c
				for k = 0; k < aCols; k++ {
					av = da.data[rowOffsetA+k]
					rowOffsetB = k * bCols
					for j = 0; j < res.c; j++ {
						res.data[rowOffsetR+j] += av * db.data[rowOffsetB+j]
					}
				}
			}
			return res, nil
		}
	}

	// Fallback: generic interface triple-loop (i-j-k)
	for i = 0; i < aRows; i++ {
		for j = 0; j < res.c; j++ {
			current = ZeroSum
			for k = 0; k < aCols; k++ {
				if av, err = a.At(i, k); err != nil {
					return nil, matrixErrorf(opMul, err)
				}
				if bv, err = b.At(k, j); err != nil {
					return nil, matrixErrorf(opMul, err)
				}
				current += av * bv
			}
			res.data[i*res.c+j] = current
		}
	}

	return res, nil
}

// MatVec computes y = A·x for a column vector x.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch when len(x) != A.Cols().
//
// Complexity:
//   - Time O(r*c), Space O(r).
func MatVec(a Matrix, x vector.Vector) (vector.Vector, error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	if err := ValidateVecLen(x, a.Cols()); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}

	rows := a.Rows()
	y := make(vector.Vector, rows)
	for i := 0; i < rows; i++ {
		row, err := Row(a, i)
		if err != nil {
			return nil, matrixErrorf(opMatVec, err)
		}
		if y[i], err = vector.Dot(row, x); err != nil {
			return nil, matrixErrorf(opMatVec, err)
		}
	}

	return y, nil
}

// Transpose returns a new matrix with rows and columns swapped (Aᵀ).
// Complexity: O(r*c).
func Transpose(a Matrix) (Matrix, error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	rows, cols := a.Rows(), a.Cols()
	res, err := newDenseZeroOK(cols, rows)
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	if res.r == 0 {
		return res, nil
	}

	var i, j int
	var v float64
	if dm, ok := a.(*Dense); ok {
		for i = 0; i < rows; i++ {
			for j = 0; j < cols; j++ {
				res.data[j*rows+i] = dm.data[i*cols+j]
			}
		}
		return res, nil
	}
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if v, err = a.At(i, j); err != nil {
				return nil, matrixErrorf(opTranspose, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			res.data[j*rows+i] = v
		}
	}

	return res, nil
}

// ColumnMeans returns the component-wise mean of the rows of a, i.e.
// vector.Mean over Row(a, 0..r-1).
//
// Errors:
//   - ErrNilMatrix; vector.ErrEmptySet when a has no rows.
func ColumnMeans(a Matrix) (vector.Vector, error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, matrixErrorf(opColumnMeans, err)
	}

	rows := make([]vector.Vector, a.Rows())
	var err error
	for i := range rows {
		if rows[i], err = Row(a, i); err != nil {
			return nil, matrixErrorf(opColumnMeans, err)
		}
	}
	mean, err := vector.Mean(rows)
	if err != nil {
		return nil, matrixErrorf(opColumnMeans, err)
	}

	return mean, nil
}

// AllClose checks element-wise |a-b| ≤ atol + rtol*|b| for identical shapes.
// Returns (true,nil) if all elements satisfy the relation; (false,nil) otherwise.
//
// Policy:
//   - a and b must be non-nil and have identical shapes.
//   - rtol, atol are treated as |rtol|, |atol|; NaN/Inf tolerances are rejected.
//
// Complexity:
//   - Time O(r*c), Space O(1).
func AllClose(a, b Matrix, rtol, atol float64) (bool, error) {
	if err := ValidateFinite(rtol); err != nil {
		return false, matrixErrorf(opAllClose, err)
	}
	if err := ValidateFinite(atol); err != nil {
		return false, matrixErrorf(opAllClose, err)
	}
	if rtol < 0 {
		rtol = -rtol
	}
	if atol < 0 {
		atol = -atol
	}
	if err := ValidateNotNil(a); err != nil {
		return false, matrixErrorf(opAllClose, err)
	}
	if err := ValidateNotNil(b); err != nil {
		return false, matrixErrorf(opAllClose, err)
	}
	if err := ValidateSameShape(a, b); err != nil {
		return false, matrixErrorf(opAllClose, err)
	}

	r, c := a.Rows(), a.Cols()
	var av, bv, diff, absb float64
	var err error
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			if av, err = a.At(i, j); err != nil {
				return false, matrixErrorf(opAllClose, err)
			}
			if bv, err = b.At(i, j); err != nil {
				return false, matrixErrorf(opAllClose, err)
			}
			diff = av - bv
			if diff < 0 {
				diff = -diff
			}
			absb = bv
			if absb < 0 {
				absb = -absb
			}
			if diff > atol+rtol*absb {
				return false, nil // early-exit on first violation
			}
		}
	}

	return true, nil
}
