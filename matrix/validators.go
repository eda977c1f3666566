// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for common validation checks.
//  - Keep operations minimal by delegating nil/shape checks here.
//  - Return sentinel errors wrapped with the validator tag so call sites can
//    add their own operation tag uniformly.
//
// Determinism & Performance:
//  - All checks are pure, O(1) and allocate nothing on success.
//
// Note:
//  - Composite validators follow a fixed sequence (NotNil → Shape).
//  - Shape validators assume non-nil operands; callers run ValidateNotNil first.

package matrix

import (
	"fmt"

	"github.com/katalvlaran/numlin/number"
)

// Shaper is anything that reports a 2D shape in O(1).
type Shaper interface {
	Rows() int
	Cols() int
}

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the matrix reference is non-nil.
// Returns ErrNilMatrix if m == nil.
func ValidateNotNil[T number.Number](m *Dense[T]) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSameShape ensures a and b have equal dimensions.
// Assumes a and b are not nil (caller must ensure).
func ValidateSameShape(a, b Shaper) error {
	if a.Rows() != b.Rows() {
		return validatorErrorf("ValidateSameShape: Rows", ErrDimensionMismatch)
	}
	if a.Cols() != b.Cols() {
		return validatorErrorf("ValidateSameShape: Columns", ErrDimensionMismatch)
	}

	return nil
}

// ValidateMulCompatible ensures a.Cols() == b.Rows().
// Assumes a and b are not nil.
func ValidateMulCompatible(a, b Shaper) error {
	if a.Cols() != b.Rows() {
		return validatorErrorf("ValidateMulCompatible", ErrDimensionMismatch)
	}

	return nil
}

// ValidateSquare checks that m is square (Rows == Cols).
// Errors: ErrNonSquare.
func ValidateSquare(m Shaper) error {
	if m.Rows() != m.Cols() {
		return validatorErrorf("ValidateSquare", ErrNonSquare)
	}

	return nil
}

// ValidateColumn checks that m is an n×1 column vector.
// Errors: ErrDimensionMismatch.
func ValidateColumn(m Shaper, n int) error {
	if m.Rows() != n || m.Cols() != 1 {
		return validatorErrorf("ValidateColumn", ErrDimensionMismatch)
	}

	return nil
}

// ValidateBinary is the composite NotNil(a) → NotNil(b) gate shared by every
// two-operand operation.
func ValidateBinary[T number.Number](a, b *Dense[T]) error {
	if err := ValidateNotNil(a); err != nil {
		return err
	}

	return ValidateNotNil(b)
}
