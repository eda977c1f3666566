// SPDX-License-Identifier: MIT
// Package vector: sentinel error set.
// All exported operations return these sentinels (optionally wrapped with an
// operation tag via %w). Tests and callers MUST match them with errors.Is.

package vector

import "errors"

var (
	// ErrNegativeLength is returned by New when the requested length is < 0.
	ErrNegativeLength = errors.New("vector: negative length")

	// ErrOutOfRange indicates an index outside [0, Len()).
	ErrOutOfRange = errors.New("vector: index out of range")

	// ErrDimensionMismatch indicates operands of different lengths.
	ErrDimensionMismatch = errors.New("vector: dimension mismatch")

	// ErrNilVector indicates a nil *Vector receiver or argument.
	ErrNilVector = errors.New("vector: nil vector")
)
