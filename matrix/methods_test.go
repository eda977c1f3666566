// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for Dense arithmetic.
package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/numlin/matrix"
	"github.com/katalvlaran/numlin/vector"
	"github.com/stretchr/testify/require"
)

// TestAddSubElementwise verifies (A+B)(i,j) == A(i,j)+B(i,j) and (A+B)-B == A.
func TestAddSubElementwise(t *testing.T) {
	a := RandIntDense(t, 3, 4, 1)
	b := RandIntDense(t, 3, 4, 2)

	sum, err := matrix.Add(a, b)
	require.NoError(t, err)
	for i := 0; i < 3; i++ {
		for j := 0; j < 4; j++ {
			require.Equal(t, MustAt(t, a, i, j)+MustAt(t, b, i, j), MustAt(t, sum, i, j))
		}
	}

	back, err := matrix.Sub(sum, b)
	require.NoError(t, err)
	require.True(t, matrix.Equal(a, back))
}

// TestMulSquare checks [[1,2],[3,4]]² == [[7,10],[15,22]].
func TestMulSquare(t *testing.T) {
	a := MustFromElems(t, 2, 2, []float64{1, 2, 3, 4})
	got, err := matrix.Mul(a, a)
	require.NoError(t, err)
	require.True(t, matrix.Equal(got, MustFromElems(t, 2, 2, []float64{7, 10, 15, 22})))

	// Same product over an integer instantiation.
	ai := MustFromElems(t, 2, 2, []int{1, 2, 3, 4})
	gi, err := matrix.Mul(ai, ai)
	require.NoError(t, err)
	CompareExact(t, [][]int{{7, 10}, {15, 22}}, gi)
}

// TestMulRectangular checks shape (r×n)·(n×c) = r×c.
func TestMulRectangular(t *testing.T) {
	a := MustFromElems(t, 2, 3, []float64{1, 2, 3, 4, 5, 6})
	b := MustFromElems(t, 3, 1, []float64{1, 0, -1})
	got, err := matrix.Mul(a, b)
	require.NoError(t, err)
	require.Equal(t, 2, got.Rows())
	require.Equal(t, 1, got.Cols())
	CompareExact(t, [][]float64{{-2}, {-2}}, got)
}

// TestMulIdentity checks I·M == M and M·I == M.
func TestMulIdentity(t *testing.T) {
	for n := 1; n <= 6; n++ {
		m := RandIntDense(t, n, n, int64(n))
		id := MustIdentity[float64](t, n)

		left, err := matrix.Mul(id, m)
		require.NoError(t, err)
		require.True(t, matrix.Equal(m, left))

		right, err := matrix.Mul(m, id)
		require.NoError(t, err)
		require.True(t, matrix.Equal(m, right))
	}
}

// TestMulPropagatesNaN ensures zeros in a are not skipped (0·Inf = NaN).
func TestMulPropagatesNaN(t *testing.T) {
	a := MustFromElems(t, 1, 1, []float64{0})
	b := MustFromElems(t, 1, 1, []float64{math.Inf(1)})
	got, err := matrix.Mul(a, b)
	require.NoError(t, err)
	require.True(t, math.IsNaN(MustAt(t, got, 0, 0)))
}

// TestShapeMismatch ensures mismatched operands return ErrDimensionMismatch.
func TestShapeMismatch(t *testing.T) {
	a := MustFromElems(t, 2, 2, []float64{1, 2, 3, 4})
	b := MustFromElems(t, 2, 3, []float64{1, 2, 3, 4, 5, 6})
	c := MustFromElems(t, 3, 2, []float64{1, 2, 3, 4, 5, 6})

	_, err := matrix.Add(a, b)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = matrix.Sub(a, b)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = matrix.Hadamard(a, b)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = matrix.Mul(a, c) // 2x2 · 3x2: inner 2 != 3
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	// Operands are unchanged after a failed op.
	require.Equal(t, 2, a.Cols())
	require.Equal(t, 3, b.Cols())
}

// TestNilOperands ensures nil matrices are rejected.
func TestNilOperands(t *testing.T) {
	a := MustFromElems(t, 1, 1, []float64{1})
	_, err := matrix.Add(a, nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
	_, err = matrix.Mul(nil, a)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
	_, err = matrix.Trace[float64](nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

// TestScaleDistributes checks (M*c)(i,j) == c*M(i,j).
func TestScaleDistributes(t *testing.T) {
	m := RandIntDense(t, 3, 3, 7)
	const c = 2.5
	got, err := matrix.Scale(m, c)
	require.NoError(t, err)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			require.Equal(t, c*MustAt(t, m, i, j), MustAt(t, got, i, j))
		}
	}
}

// TestNegInvolution checks -(-M) == M and that M is untouched.
func TestNegInvolution(t *testing.T) {
	m := RandIntDense(t, 2, 5, 11)
	n1, err := matrix.Neg(m)
	require.NoError(t, err)
	require.False(t, matrix.Equal(m, n1))
	n2, err := matrix.Neg(n1)
	require.NoError(t, err)
	require.True(t, matrix.Equal(m, n2))
}

// TestHadamard checks the element-wise product.
func TestHadamard(t *testing.T) {
	a := MustFromElems(t, 2, 2, []int{1, 2, 3, 4})
	got, err := matrix.Hadamard(a, a)
	require.NoError(t, err)
	CompareExact(t, [][]int{{1, 4}, {9, 16}}, got)
}

// TestTrace checks a known trace, trace(I_n) == n and the non-square error.
func TestTrace(t *testing.T) {
	tr, err := matrix.Trace(MustFromElems(t, 2, 2, []float64{1, 2, 3, 4}))
	require.NoError(t, err)
	require.Equal(t, 5.0, tr)

	for n := 1; n <= 5; n++ {
		tr, err = matrix.Trace(MustIdentity[float64](t, n))
		require.NoError(t, err)
		require.Equal(t, float64(n), tr)
	}

	_, err = matrix.Trace(MustFromElems(t, 1, 2, []float64{1, 2}))
	require.ErrorIs(t, err, matrix.ErrNonSquare)
}

// TestMulVec checks y = M·x and the length check.
func TestMulVec(t *testing.T) {
	m := MustFromElems(t, 2, 3, []float64{1, 2, 3, 4, 5, 6})
	y, err := matrix.MulVec(m, vector.FromElems([]float64{1, 1, 1}))
	require.NoError(t, err)
	require.Equal(t, []float64{6, 15}, y.Data())

	_, err = matrix.MulVec(m, vector.FromElems([]float64{1, 1}))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

// TestFloat32Matrix exercises the float32 vector kernels through Dense.
func TestFloat32Matrix(t *testing.T) {
	a := MustFromElems(t, 3, 3, []float32{1, 2, 3, 4, 5, 6, 7, 8, 9})
	sum, err := matrix.Add(a, a)
	require.NoError(t, err)
	CompareExact(t, [][]float32{{2, 4, 6}, {8, 10, 12}, {14, 16, 18}}, sum)

	back, err := matrix.Sub(sum, a)
	require.NoError(t, err)
	require.True(t, matrix.Equal(a, back))
}
