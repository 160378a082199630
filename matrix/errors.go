// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the matrix
// package. All operations return these sentinels (wrapped with an operation
// tag) and tests check them via errors.Is. No function panics on
// user-triggered error conditions.

package matrix

import (
	"errors"
	"fmt"
)

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency. The three
// taxonomy roots are ErrDimensionMismatch, ErrInvalidArgument and
// ErrOutOfRange; refined sentinels wrap a root so errors.Is matches both.

var (
	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g. Mul where a.Cols != b.Rows, or MatVec with len(x) != Cols.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrInvalidArgument is the root for arguments a routine cannot accept
	// (non-positive identity size, non-square determinant input, ...).
	ErrInvalidArgument = errors.New("matrix: invalid argument")

	// ErrOutOfRange indicates that a row or column index is outside valid bounds.
	// Public indexers (At/Set/Row/Column/Minor) return this, never panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrNilMatrix indicates that a nil Matrix (argument) was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrNaNInf signals a NaN or ±Inf value where the numeric policy requires
	// finite values (Set, Build, FromRows).
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")
)

var (
	// ErrInvalidDimensions indicates requested dimensions are out of range
	// (negative sizes, or n <= 0 for NewIdentity/NewDense).
	ErrInvalidDimensions = fmt.Errorf("%w: dimensions out of range", ErrInvalidArgument)

	// ErrNonSquare signals that a square matrix was required but the input wasn't.
	ErrNonSquare = fmt.Errorf("%w: matrix is not square", ErrInvalidArgument)

	// ErrBadShape is returned by FromRows for ragged input (rows of unequal length).
	ErrBadShape = fmt.Errorf("%w: rows have unequal length", ErrInvalidArgument)

	// ErrNilFunc is returned by Build when no entry function is given.
	ErrNilFunc = fmt.Errorf("%w: nil build function", ErrInvalidArgument)
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil to avoid creating a non-nil wrapper around a nil cause.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
