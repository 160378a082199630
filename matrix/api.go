// SPDX-License-Identifier: MIT
// Package matrix: public API facades.
//
// Purpose:
//   - Provide thin entry points for common tasks across the package.
//   - Avoid any logic duplication; each facade delegates to the canonical implementation.

package matrix

// IdentityLike returns I with dimension = Rows(m); requires a non-empty square m.
// Complexity: O(n^2).
func IdentityLike(m Matrix) (*Dense, error) {
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf("IdentityLike", err)
	}

	return NewIdentity(m.Rows())
}

// ZerosLike returns a new zero matrix with the same shape as m.
// Unlike NewZeros it accepts empty shapes.
func ZerosLike(m Matrix) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf("ZerosLike", err)
	}

	return newDenseZeroOK(Shape(m))
}

// CloneMatrix returns a structural clone of m (same type if m is *Dense).
// A nil m yields ErrNilMatrix.
func CloneMatrix(m Matrix) (Matrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf("CloneMatrix", err)
	}

	return m.Clone(), nil
}

// Product is an alias for Mul: matrix product a × b.
func Product(a, b Matrix) (Matrix, error) { return Mul(a, b) }

// T is an alias for Transpose: returns mᵀ.
func T(m Matrix) (Matrix, error) { return Transpose(m) }

// Det is an alias for Determinant.
func Det(m Matrix) (float64, error) { return Determinant(m) }
