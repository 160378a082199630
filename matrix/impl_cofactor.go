// SPDX-License-Identifier: MIT
// Package matrix - minors, cofactors and the determinant by cofactor expansion.
//
// Contract:
//   - det(0×0) = 1 (empty product), det([[a]]) = a,
//     det(A) = Σ_j (-1)^j · A[0][j] · det(Minor(A, 0, j)) for n > 1.
//   - No pivoting and no conditioning safeguards; cost is O(n!) so the
//     routine is meant for small matrices.
//
// Determinism:
//   - Fixed j order along row 0; every term is evaluated, including those
//     with A[0][j] == 0, so NaN/Inf entries propagate into the result.

package matrix

import "fmt"

// asDense returns a as *Dense, copying through At when a is another Matrix.
// The returned matrix must be treated as read-only.
func asDense(a Matrix) (*Dense, error) {
	if d, ok := a.(*Dense); ok {
		return d, nil
	}
	res, err := newDenseZeroOK(a.Rows(), a.Cols())
	if err != nil {
		return nil, err
	}
	var i, j int
	for i = 0; i < res.r; i++ {
		for j = 0; j < res.c; j++ {
			if res.data[i*res.c+j], err = a.At(i, j); err != nil {
				return nil, err
			}
		}
	}

	return res, nil
}

// allBut returns [0, n) without skip, in ascending order.
func allBut(n, skip int) []int {
	idx := make([]int, 0, n-1)
	for k := 0; k < n; k++ {
		if k != skip {
			idx = append(idx, k)
		}
	}

	return idx
}

// minorOf removes row i and column j; indices are assumed valid.
func minorOf(d *Dense, i, j int) (*Dense, error) {
	return d.Induced(allBut(d.r, i), allBut(d.c, j))
}

// det computes the determinant of a square Dense recursively along row 0.
func det(d *Dense) (float64, error) {
	switch d.r {
	case 0:
		return 1, nil
	case 1:
		return d.data[0], nil
	}

	sum, sign := ZeroSum, 1.0
	for j := 0; j < d.c; j++ {
		sub, err := minorOf(d, 0, j)
		if err != nil {
			return 0, err
		}
		m, err := det(sub)
		if err != nil {
			return 0, err
		}
		sum += sign * d.data[j] * m
		sign = -sign
	}

	return sum, nil
}

// Minor returns a copy of a with row i and column j removed (an
// (r-1)×(c-1) matrix). Removing the only row of a 1×c matrix yields 0×0.
//
// Errors:
//   - ErrNilMatrix, ErrOutOfRange for i outside [0, Rows) or j outside [0, Cols).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Minor(a Matrix, i, j int) (*Dense, error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, matrixErrorf(opMinor, err)
	}
	if err := ValidateIndex(i, a.Rows()); err != nil {
		return nil, matrixErrorf(opMinor, fmt.Errorf("row: %w", err))
	}
	if err := ValidateIndex(j, a.Cols()); err != nil {
		return nil, matrixErrorf(opMinor, fmt.Errorf("col: %w", err))
	}
	d, err := asDense(a)
	if err != nil {
		return nil, matrixErrorf(opMinor, err)
	}
	res, err := minorOf(d, i, j)
	if err != nil {
		return nil, matrixErrorf(opMinor, err)
	}

	return res, nil
}

// Cofactor returns the weighted expansion term (-1)^j · A[i][j] · det(Minor(A, i, j)).
// Summing Cofactor(A, 0, j) over j yields Determinant(A).
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrOutOfRange.
//
// Complexity:
//   - Time O((n-1)!), dominated by the minor's determinant.
func Cofactor(a Matrix, i, j int) (float64, error) {
	if err := ValidateSquare(a); err != nil {
		return 0, matrixErrorf(opCofactor, err)
	}
	aij, err := a.At(i, j)
	if err != nil {
		return 0, matrixErrorf(opCofactor, err)
	}
	sub, err := Minor(a, i, j)
	if err != nil {
		return 0, matrixErrorf(opCofactor, err)
	}
	m, err := det(sub)
	if err != nil {
		return 0, matrixErrorf(opCofactor, err)
	}
	sign := 1.0
	if j%2 == 1 {
		sign = -1
	}

	return sign * aij * m, nil
}

// Determinant returns det(A) by recursive cofactor expansion along row 0.
//
// Errors:
//   - ErrNilMatrix; ErrNonSquare (wraps ErrInvalidArgument) for non-square input.
//
// Complexity:
//   - Time O(n!), Space O(n^2) per recursion level.
func Determinant(a Matrix) (float64, error) {
	if err := ValidateSquare(a); err != nil {
		return 0, matrixErrorf(opDeterminant, err)
	}
	d, err := asDense(a)
	if err != nil {
		return 0, matrixErrorf(opDeterminant, err)
	}
	v, err := det(d)
	if err != nil {
		return 0, matrixErrorf(opDeterminant, err)
	}

	return v, nil
}
