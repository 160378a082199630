// SPDX-License-Identifier: MIT

// Package matrix: domain types shared by builders and kernels.
package matrix

// Matrix represents a two-dimensional array of float64 values.
// Operations in this package accept any implementation and fast-path *Dense.
type Matrix interface {
	// Rows returns the number of rows in the matrix.
	Rows() int

	// Cols returns the number of columns in the matrix.
	Cols() int

	// At retrieves the element at position (i, j).
	// Returns ErrOutOfRange if i<0, i>=Rows(), j<0 or j>=Cols().
	At(i, j int) (float64, error)

	// Set assigns the value v at position (i, j).
	// Returns ErrOutOfRange if indices are invalid.
	Set(i, j int, v float64) error

	// Clone returns a deep copy of the matrix.
	Clone() Matrix
}

// BuildFunc yields the entry at (i, j) for Build. It must be pure.
type BuildFunc func(i, j int) float64

// Operation name constants for unified error wrapping.
const (
	opBuild       = "Build"
	opFromRows    = "FromRows"
	opIdentity    = "NewIdentity"
	opRow         = "Row"
	opColumn      = "Column"
	opMul         = "Mul"
	opMatVec      = "MatVec"
	opTranspose   = "Transpose"
	opColumnMeans = "ColumnMeans"
	opAllClose    = "AllClose"
	opMinor       = "Minor"
	opCofactor    = "Cofactor"
	opDeterminant = "Determinant"
)

// ZeroSum is the initial value for dot-product style accumulations.
const ZeroSum = 0.0
