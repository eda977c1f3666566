// SPDX-License-Identifier: MIT

// Package matrix provides universal operations on Dense matrices:
// element-wise addition, subtraction and Hadamard product, matrix
// multiplication, matrix-vector product, scalar scaling, negation and trace.
// All functions perform strict fail-fast validation, return clear errors on
// dimension mismatches and never mutate their operands.
package matrix

import (
	"fmt"

	"github.com/katalvlaran/numlin/number"
	"github.com/katalvlaran/numlin/vector"
)

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opNew       = "New"
	opFromElems = "FromElems"
	opIdentity  = "Identity"
	opAdd       = "Add"
	opSub       = "Sub"
	opHadamard  = "Hadamard"
	opMul       = "Mul"
	opMulVec    = "MulVec"
	opScale     = "Scale"
	opNeg       = "Neg"
	opTrace     = "Trace"
)

// matrixErrorf wraps an underlying error with the given tag.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// elementwise validates two same-shape operands and applies a vector kernel
// to their flat storages. The result inherits a's shape.
func elementwise[T number.Number](
	tag string,
	a, b *Dense[T],
	kernel func(x, y *vector.Vector[T]) (*vector.Vector[T], error),
) (*Dense[T], error) {
	// Stage 1: Validate inputs non-nil and shapes equal.
	if err := ValidateBinary(a, b); err != nil {
		return nil, matrixErrorf(tag, err)
	}
	if err := ValidateSameShape(a, b); err != nil {
		return nil, matrixErrorf(tag, err)
	}

	// Stage 2: Row-major storages line up 1:1, so the flat kernel applies.
	out, err := kernel(a.storage, b.storage)
	if err != nil {
		return nil, matrixErrorf(tag, err)
	}

	return &Dense[T]{r: a.r, c: a.c, storage: out}, nil
}

// Add returns a new matrix containing the element-wise sum of a and b.
// Errors: ErrNilMatrix, ErrDimensionMismatch (shapes differ).
// Complexity: O(r·c) time and memory.
func Add[T number.Number](a, b *Dense[T]) (*Dense[T], error) {
	return elementwise(opAdd, a, b, vector.Add[T])
}

// Sub returns a new matrix containing the element-wise difference a - b.
// Errors: ErrNilMatrix, ErrDimensionMismatch (shapes differ).
// Complexity: O(r·c) time and memory.
func Sub[T number.Number](a, b *Dense[T]) (*Dense[T], error) {
	return elementwise(opSub, a, b, vector.Sub[T])
}

// Hadamard returns the element-wise product a ⊙ b.
// Errors: ErrNilMatrix, ErrDimensionMismatch (shapes differ).
// Complexity: O(r·c) time and memory.
func Hadamard[T number.Number](a, b *Dense[T]) (*Dense[T], error) {
	return elementwise(opHadamard, a, b, vector.Mul[T])
}

// Mul performs standard matrix multiplication of a and b (a × b).
// MAIN DESCRIPTION:
//   - result[i][j] = Σ_k a[i][k] * b[k][j], accumulated in T (no widening).
//
// Implementation:
//   - Stage 1: nil-check and inner-dimension match (a.Cols == b.Rows).
//   - Stage 2: allocate a zero (a.Rows × b.Cols) result.
//   - Stage 3: i-k-j triple loop over flat buffers so the innermost loop
//     streams contiguous rows of b and of the result.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch.
//
// Determinism:
//   - For every (i,j) the products are summed in increasing k.
//
// Complexity:
//   - Time O(r·n·c), Space O(r·c).
//
// Notes:
//   - Zero entries of a are not skipped, so 0·Inf still yields NaN.
//
// AI-Hints:
//   - The loop nest is tile-friendly: blocking over k and j can be added
//     without changing the summation order per cell.
func Mul[T number.Number](a, b *Dense[T]) (*Dense[T], error) {
	// Stage 1: Validate inputs.
	if err := ValidateBinary(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	// Stage 2: Allocate result.
	aRows, aCols, bCols := a.r, a.c, b.c
	res, err := New(aRows, bCols, number.Zero[T]())
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	// Stage 3: row-major multiplication into res.
	// ad layout: i*aCols + k; bd layout: k*bCols + j; rd layout: i*bCols + j.
	ad, bd, rd := a.storage.RawData(), b.storage.RawData(), res.storage.RawData()
	var (
		i, j, k                            int
		rowOffsetA, rowOffsetB, rowOffsetR int
		av                                 T
	)
	for i = 0; i < aRows; i++ {
		rowOffsetA = i * aCols
		rowOffsetR = i * bCols
		for k = 0; k < aCols; k++ {
			av = ad[rowOffsetA+k]
			rowOffsetB = k * bCols
			for j = 0; j < bCols; j++ {
				rd[rowOffsetR+j] += av * bd[rowOffsetB+j]
			}
		}
	}

	return res, nil
}

// MulVec computes y = m·x for a vector x of length Cols().
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(r·c).
func MulVec[T number.Number](m *Dense[T], x *vector.Vector[T]) (*vector.Vector[T], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMulVec, err)
	}
	if x == nil || x.Len() != m.c {
		return nil, matrixErrorf(opMulVec, ErrDimensionMismatch)
	}
	out := make([]T, m.r)
	md, xd := m.storage.RawData(), x.RawData()
	for i := 0; i < m.r; i++ {
		base := i * m.c
		sum := number.Zero[T]()
		for k := 0; k < m.c; k++ {
			sum += md[base+k] * xd[k]
		}
		out[i] = sum
	}

	return vector.FromElems(out), nil
}

// Scale returns a new matrix where each element of m is multiplied by alpha
// (result[i][j] = alpha * m[i][j]).
// Errors: ErrNilMatrix.
// Complexity: O(r·c).
func Scale[T number.Number](m *Dense[T], alpha T) (*Dense[T], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opScale, err)
	}
	out, err := vector.Scale(m.storage, alpha)
	if err != nil {
		return nil, matrixErrorf(opScale, err)
	}

	return &Dense[T]{r: m.r, c: m.c, storage: out}, nil
}

// Neg returns a new matrix with every element negated. Requires a signed T.
// Errors: ErrNilMatrix.
// Complexity: O(r·c).
func Neg[T number.Signed](m *Dense[T]) (*Dense[T], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opNeg, err)
	}
	out, err := vector.Neg(m.storage)
	if err != nil {
		return nil, matrixErrorf(opNeg, err)
	}

	return &Dense[T]{r: m.r, c: m.c, storage: out}, nil
}

// Trace returns the sum of the main diagonal of a square matrix.
// Errors: ErrNilMatrix, ErrNonSquare.
// Complexity: O(n).
func Trace[T number.Number](m *Dense[T]) (T, error) {
	if err := ValidateNotNil(m); err != nil {
		return number.Zero[T](), matrixErrorf(opTrace, err)
	}
	if err := ValidateSquare(m); err != nil {
		return number.Zero[T](), matrixErrorf(opTrace, err)
	}
	data := m.storage.RawData()
	sum := number.Zero[T]()
	for i := 0; i < m.r; i++ {
		sum += data[i*m.c+i]
	}

	return sum, nil
}
