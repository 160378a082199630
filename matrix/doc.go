// Package matrix offers dense float64 matrices and the classic algebra
// routines built on them.
//
// The matrix package provides:
//
//   - Dense, a row-major implementation of the Matrix interface with
//     bounds-checked At/Set and an optional finite-only numeric policy.
//   - Builders: Build (entries from an index function), FromRows,
//     NewIdentity, NewZeros, and KroneckerDelta as a ready-made BuildFunc.
//   - Accessors: Shape, IsSquare, Row, Column.
//   - Products: Mul (general r×n by n×c), MatVec, Transpose.
//   - Cofactor expansion: Minor, Cofactor, Determinant.
//   - Helpers: ColumnMeans, AllClose.
//
// Every operation allocates a fresh result and never mutates its inputs.
// Failures are reported with package sentinels (ErrDimensionMismatch,
// ErrInvalidArgument, ErrOutOfRange and their refinements) that callers
// match with errors.Is; no function panics on caller input.
//
// Determinant is computed by recursive cofactor expansion along row 0 and
// therefore costs O(n!) time. It is intended for small matrices; no
// pivoting or conditioning safeguards are applied.
package matrix
