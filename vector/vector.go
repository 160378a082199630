// SPDX-License-Identifier: MIT
// Package vector: component-wise kernels and reductions.
//
// The arithmetic itself is delegated to gonum's floats package, which panics
// on mismatched lengths; every exported function validates its operands first
// and reports ErrDimensionMismatch instead.

package vector

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// Add returns the component-wise sum u + v.
// Errors: ErrDimensionMismatch when len(u) != len(v).
// Complexity: O(n).
func Add(u, v Vector) (Vector, error) {
	if err := ValidateSameLen(u, v); err != nil {
		return nil, vectorErrorf(opAdd, err)
	}

	return floats.AddTo(make(Vector, len(u)), u, v), nil
}

// Sub returns the component-wise difference u - v, i.e. Add(u, Scale(-1, v)).
// Errors: ErrDimensionMismatch when len(u) != len(v).
// Complexity: O(n).
func Sub(u, v Vector) (Vector, error) {
	if err := ValidateSameLen(u, v); err != nil {
		return nil, vectorErrorf(opSub, err)
	}

	return floats.SubTo(make(Vector, len(u)), u, v), nil
}

// Scale returns a*v. Scaling never fails.
// Complexity: O(n).
func Scale(a float64, v Vector) Vector {
	return floats.ScaleTo(make(Vector, len(v)), a, v)
}

// Hadamard returns the element-wise product u ⊙ v.
// Errors: ErrDimensionMismatch when len(u) != len(v).
// Complexity: O(n).
func Hadamard(u, v Vector) (Vector, error) {
	if err := ValidateSameLen(u, v); err != nil {
		return nil, vectorErrorf(opHadamard, err)
	}

	return floats.MulTo(make(Vector, len(u)), u, v), nil
}

// Dot returns Σ u[i]*v[i], the sum of Hadamard(u, v).
// Errors: ErrDimensionMismatch when len(u) != len(v).
// Complexity: O(n), no allocation.
func Dot(u, v Vector) (float64, error) {
	if err := ValidateSameLen(u, v); err != nil {
		return 0, vectorErrorf(opDot, err)
	}

	return floats.Dot(u, v), nil
}

// Sum returns Σ v[i]; the sum of an empty vector is 0.
func Sum(v Vector) float64 { return floats.Sum(v) }

// Mean returns the component-wise average of vs.
//
// Implementation:
//   - Stage 1: ValidateSet (non-empty, equal lengths).
//   - Stage 2: accumulate into a fresh buffer in input order, then scale by 1/len(vs).
//
// Errors: ErrEmptySet (wraps ErrInvalidArgument), ErrDimensionMismatch.
// Complexity: O(len(vs)*n).
func Mean(vs []Vector) (Vector, error) {
	if err := ValidateSet(vs); err != nil {
		return nil, vectorErrorf(opMean, err)
	}

	acc := make(Vector, len(vs[0]))
	for _, v := range vs {
		floats.Add(acc, v)
	}
	floats.Scale(1/float64(len(vs)), acc)

	return acc, nil
}

// SumOfSquares returns Dot(v, v).
func SumOfSquares(v Vector) float64 { return floats.Dot(v, v) }

// SquaredDistance returns the squared Euclidean distance SumOfSquares(Sub(u, v)).
// Errors: ErrDimensionMismatch when len(u) != len(v).
func SquaredDistance(u, v Vector) (float64, error) {
	diff, err := Sub(u, v)
	if err != nil {
		return 0, vectorErrorf(opSquaredDistance, err)
	}

	return SumOfSquares(diff), nil
}

// Distance returns the Euclidean distance sqrt(SquaredDistance(u, v)).
// Errors: ErrDimensionMismatch when len(u) != len(v).
func Distance(u, v Vector) (float64, error) {
	d2, err := SquaredDistance(u, v)
	if err != nil {
		return 0, vectorErrorf(opDistance, err)
	}

	return math.Sqrt(d2), nil
}

// Magnitude returns the Euclidean norm sqrt(Dot(v, v)); always >= 0.
func Magnitude(v Vector) float64 { return math.Sqrt(SumOfSquares(v)) }
