// SPDX-License-Identifier: MIT

package vector

// Vector is an ordered sequence of float64 components; len(v) is its dimension.
// A plain []float64 is assignable to Vector and back without conversion.
type Vector []float64

// Operation tags used when wrapping errors.
const (
	opAdd             = "Add"
	opSub             = "Sub"
	opHadamard        = "Hadamard"
	opDot             = "Dot"
	opMean            = "Mean"
	opSquaredDistance = "SquaredDistance"
	opDistance        = "Distance"
)

// Len returns the dimension of v.
func (v Vector) Len() int { return len(v) }

// Clone returns an independent copy of v. A nil input yields an empty,
// non-nil Vector.
func Clone(v Vector) Vector {
	out := make(Vector, len(v))
	copy(out, v)

	return out
}
