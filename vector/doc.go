// Package vector provides pure operations on dense float64 vectors.
//
// What & Why:
//
//	A Vector is an ordered sequence of float64 values whose length is its
//	dimension. Every function here is side-effect free: inputs are never
//	mutated and each result is a freshly allocated Vector, so callers can
//	chain operations without worrying about aliasing.
//
// Operations:
//
//   - Add, Sub, Scale, Hadamard: component-wise arithmetic.
//   - Dot, Sum, SumOfSquares: reductions.
//   - Mean: component-wise average of a non-empty set of vectors.
//   - SquaredDistance, Distance, Magnitude: Euclidean geometry.
//
// Errors:
//
//	Binary operations fail fast with ErrDimensionMismatch when operand
//	lengths differ; Mean fails with ErrEmptySet on an empty set. Both are
//	matched with errors.Is. No function panics on caller input.
//
// Complexity:
//
//	Every operation is O(n) in time; allocating operations are O(n) in space.
package vector
