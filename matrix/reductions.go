// SPDX-License-Identifier: MIT

package matrix

import (
	"math"

	"github.com/katalvlaran/numlin/number"
)

const (
	opRowSums  = "RowSums"
	opColSums  = "ColSums"
	opAllClose = "AllClose"
)

// RowSums returns s[i] = Σ_j m[i][j].
// Errors: ErrNilMatrix.
// Complexity: O(r·c).
func RowSums[T number.Number](m *Dense[T]) ([]T, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opRowSums, err)
	}
	data := m.storage.RawData()
	out := make([]T, m.r)
	for i := 0; i < m.r; i++ {
		base := i * m.c
		for j := 0; j < m.c; j++ {
			out[i] += data[base+j]
		}
	}

	return out, nil
}

// ColSums returns s[j] = Σ_i m[i][j], accumulated top to bottom.
// Errors: ErrNilMatrix.
// Complexity: O(r·c).
func ColSums[T number.Number](m *Dense[T]) ([]T, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opColSums, err)
	}
	data := m.storage.RawData()
	out := make([]T, m.c)
	for i := 0; i < m.r; i++ {
		base := i * m.c
		for j := 0; j < m.c; j++ {
			out[j] += data[base+j]
		}
	}

	return out, nil
}

// AllClose reports whether |a-b| <= atol + rtol·|b| holds for every element.
// MAIN DESCRIPTION:
//   - Approximate equality for floating-point results; Equal stays exact.
//
// Implementation:
//   - Stage 1: reject NaN/Inf tolerances; negative tolerances are abs-ed.
//   - Stage 2: nil and shape checks.
//   - Stage 3: flat scan with early exit on the first violation.
//
// Errors:
//   - ErrInvalidTolerance, ErrNilMatrix, ErrDimensionMismatch.
//
// Notes:
//   - A NaN element never compares close, not even to another NaN.
//
// Complexity:
//   - Time O(r·c), Space O(1).
func AllClose[T number.Float](a, b *Dense[T], rtol, atol float64) (bool, error) {
	if math.IsNaN(rtol) || math.IsNaN(atol) || math.IsInf(rtol, 0) || math.IsInf(atol, 0) {
		return false, matrixErrorf(opAllClose, ErrInvalidTolerance)
	}
	rtol, atol = math.Abs(rtol), math.Abs(atol)

	if err := ValidateBinary(a, b); err != nil {
		return false, matrixErrorf(opAllClose, err)
	}
	if err := ValidateSameShape(a, b); err != nil {
		return false, matrixErrorf(opAllClose, err)
	}

	ad, bd := a.storage.RawData(), b.storage.RawData()
	var diff, absb float64
	for idx := range ad {
		diff = math.Abs(float64(ad[idx]) - float64(bd[idx]))
		absb = math.Abs(float64(bd[idx]))
		if !(diff <= atol+rtol*absb) { // NaN fails here too
			return false, nil
		}
	}

	return true, nil
}
