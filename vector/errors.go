// SPDX-License-Identifier: MIT
// Package vector: sentinel error set.
// All operations return these sentinels (optionally wrapped with an operation
// tag); tests and callers match them with errors.Is.

package vector

import (
	"errors"
	"fmt"
)

var (
	// ErrDimensionMismatch indicates operands of different lengths,
	// e.g. Add/Dot on vectors of unequal dimension.
	ErrDimensionMismatch = errors.New("vector: dimension mismatch")

	// ErrInvalidArgument is the root for arguments that are structurally
	// valid Go values but meaningless for the operation.
	ErrInvalidArgument = errors.New("vector: invalid argument")

	// ErrEmptySet is returned by Mean when no vectors are supplied.
	ErrEmptySet = fmt.Errorf("%w: empty vector set", ErrInvalidArgument)
)

// vectorErrorf wraps err with an operation tag, preserving it for errors.Is.
// Call only with a non-nil err.
func vectorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
