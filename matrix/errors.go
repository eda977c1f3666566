// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the matrix
// package. All operations MUST return these sentinels and tests MUST check them
// via errors.Is. No operation panics on user-triggered error conditions.

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency. Operations
// wrap with fmt.Errorf("<Op>: %w", ErrX); accessors wrap with the offending
// coordinates ("Dense.At(i,j): %w"). Callers still match with errors.Is.
//
// ERROR PRIORITY (enforced in tests):
// nil -> dimensions/shape -> index -> element count.

var (
	// ErrInvalidDimensions indicates that requested dimensions are non-positive.
	// Public constructors and Reshape reject 0×N, N×0 and negative shapes.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrElemCount is returned by FromElems when len(elems) != rows*cols.
	ErrElemCount = errors.New("matrix: element count does not match shape")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	// Public indexers (At/Set/Row) MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g., Add/Sub different shapes, Mul where a.Cols != b.Rows, or a Reshape
	// that changes the total element count.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNonSquare signals that a square matrix was required but the input wasn't.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrNilMatrix indicates that a nil *Dense (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrInvalidTolerance is returned by AllClose for NaN or infinite tolerances.
	ErrInvalidTolerance = errors.New("matrix: tolerance must be finite")
)

// ErrIndexOutOfBounds names the same condition as ErrOutOfRange.
// Kept so errors.Is(err, ErrIndexOutOfBounds) reads naturally at call sites.
var ErrIndexOutOfBounds = ErrOutOfRange
