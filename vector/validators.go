// SPDX-License-Identifier: MIT

package vector

import "fmt"

// ValidateSameLen ensures u and v have the same dimension.
// Returns ErrDimensionMismatch (annotated with both lengths) otherwise.
// Complexity: O(1).
func ValidateSameLen(u, v Vector) error {
	if len(u) != len(v) {
		return fmt.Errorf("ValidateSameLen(%d,%d): %w", len(u), len(v), ErrDimensionMismatch)
	}

	return nil
}

// ValidateSet ensures vs is non-empty and every member has the dimension of vs[0].
// Errors: ErrEmptySet, ErrDimensionMismatch (annotated with the offending index).
// Complexity: O(len(vs)).
func ValidateSet(vs []Vector) error {
	if len(vs) == 0 {
		return fmt.Errorf("ValidateSet: %w", ErrEmptySet)
	}
	n := len(vs[0])
	for k := 1; k < len(vs); k++ {
		if len(vs[k]) != n {
			return fmt.Errorf("ValidateSet: vector %d has length %d, want %d: %w",
				k, len(vs[k]), n, ErrDimensionMismatch)
		}
	}

	return nil
}
