// Package linalg is a small, pure-Go toolkit of vector and matrix routines.
//
// Under the hood, everything is organized under two subpackages:
//
//	vector/  component-wise arithmetic, dot product, mean, distance, magnitude
//	matrix/  Dense matrices, builders, products, minors, cofactors & determinant
//
// All routines are pure: they never mutate their inputs and report invalid
// input through sentinel errors (matched with errors.Is) instead of panics.
//
// Quick example:
//
//	id, _ := matrix.NewIdentity(3)
//	a, _ := matrix.FromRows([][]float64{{1, 2, 3}, {4, 5, 6}, {7, 8, 10}})
//	p, _ := matrix.Mul(id, a) // == a
//	d, _ := matrix.Determinant(a)
//
//	go get github.com/katalvlaran/linalg
package linalg
