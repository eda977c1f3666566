// SPDX-License-Identifier: MIT

package solver_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/numlin/matrix"
	"github.com/katalvlaran/numlin/solver"
	"github.com/stretchr/testify/require"
)

// mustFromElems builds a *Dense or fails the test.
func mustFromElems[T float32 | float64](t *testing.T, r, c int, vals []T) *matrix.Dense[T] {
	t.Helper()
	m, err := matrix.FromElems(r, c, vals)
	require.NoError(t, err)

	return m
}

// mustAt reads m(i,j) or fails the test.
func mustAt[T float32 | float64](t *testing.T, m *matrix.Dense[T], i, j int) T {
	t.Helper()
	v, err := m.At(i, j)
	require.NoError(t, err)

	return v
}

// system2 is the classic 2×2 fixture: 16x+3y=11, 7x-11y=13.
func system2(t *testing.T) (a, b, x0 *matrix.Dense[float64]) {
	t.Helper()
	a = mustFromElems(t, 2, 2, []float64{16, 3, 7, -11})
	b = mustFromElems(t, 2, 1, []float64{11, 13})
	x0, err := matrix.New(2, 1, 1.0)
	require.NoError(t, err)

	return a, b, x0
}

// TestGaussSeidelConverges solves the 2x2 fixture to four decimals.
func TestGaussSeidelConverges(t *testing.T) {
	a, b, x0 := system2(t)

	x, err := solver.GaussSeidel(a, b, x0, 1000)
	require.NoError(t, err)
	require.InDelta(t, 0.8122, mustAt(t, x, 0, 0), 1e-4)
	require.InDelta(t, -0.6650, mustAt(t, x, 1, 0), 1e-4)

	// Cramer's rule: x = 160/197, y = -131/197.
	exact := mustFromElems(t, 2, 1, []float64{160.0 / 197, -131.0 / 197})
	near, err := matrix.AllClose(x, exact, 1e-12, 1e-12)
	require.NoError(t, err)
	require.True(t, near)

	res, err := solver.Residual(a, x, b)
	require.NoError(t, err)
	require.Less(t, res, 1e-9)

	// Inputs are untouched.
	require.Equal(t, 1.0, mustAt(t, x0, 0, 0))
	require.Equal(t, 16.0, mustAt(t, a, 0, 0))
}

// TestGaussSeidelSingleSweep pins the in-sweep update order by hand.
// Sweep 1 from x=(1,1):
//
//	x0 = (11 - 3·1)/16 = 0.5
//	x1 = (13 - 7·0.5)/(-11) = -9.5/11   (uses the fresh x0, not 1)
func TestGaussSeidelSingleSweep(t *testing.T) {
	a, b, x0 := system2(t)

	x, err := solver.GaussSeidel(a, b, x0, 1)
	require.NoError(t, err)
	require.Equal(t, 0.5, mustAt(t, x, 0, 0))
	require.Equal(t, (13-7*0.5)/-11.0, mustAt(t, x, 1, 0))

	// A Jacobi step would have used x0=1 instead: (13-7)/-11.
	require.NotEqual(t, (13-7*1.0)/-11.0, mustAt(t, x, 1, 0))
}

// TestGaussSeidelZeroIterations returns a copy of x0.
func TestGaussSeidelZeroIterations(t *testing.T) {
	a, b, x0 := system2(t)
	x, err := solver.GaussSeidel(a, b, x0, 0)
	require.NoError(t, err)
	require.True(t, matrix.Equal(x0, x))
	require.NotSame(t, x0, x)
}

// TestGaussSeidelValidation covers shape, iteration and pivot errors.
func TestGaussSeidelValidation(t *testing.T) {
	a, b, x0 := system2(t)

	_, err := solver.GaussSeidel(a, b, x0, -1)
	require.ErrorIs(t, err, solver.ErrInvalidIterations)

	wide := mustFromElems(t, 2, 3, []float64{1, 2, 3, 4, 5, 6})
	_, err = solver.GaussSeidel(wide, b, x0, 1)
	require.ErrorIs(t, err, matrix.ErrNonSquare)

	short := mustFromElems(t, 1, 1, []float64{1})
	_, err = solver.GaussSeidel(a, short, x0, 1)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	row := mustFromElems(t, 1, 2, []float64{1, 1})
	_, err = solver.GaussSeidel(a, b, row, 1)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = solver.GaussSeidel(a, nil, x0, 1)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)

	singular := mustFromElems(t, 2, 2, []float64{0, 1, 1, 1})
	_, err = solver.GaussSeidel(singular, b, x0, 1)
	require.ErrorIs(t, err, solver.ErrZeroPivot)
	require.Contains(t, err.Error(), "row 0")
}

// TestGaussSeidelWithoutPivotCheck lets IEEE semantics through.
func TestGaussSeidelWithoutPivotCheck(t *testing.T) {
	_, b, x0 := system2(t)
	singular := mustFromElems(t, 2, 2, []float64{0, 1, 1, 1})

	x, err := solver.GaussSeidel(singular, b, x0, 1, solver.WithoutPivotCheck())
	require.NoError(t, err)
	require.True(t, math.IsInf(mustAt(t, x, 0, 0), 1)) // (11-1)/0
}

// TestGaussSeidelTolerance stops well before the budget on a convergent system.
func TestGaussSeidelTolerance(t *testing.T) {
	a, b, x0 := system2(t)

	full, err := solver.GaussSeidel(a, b, x0, 1000)
	require.NoError(t, err)
	early, err := solver.GaussSeidel(a, b, x0, 1000, solver.WithTolerance(1e-12))
	require.NoError(t, err)
	require.InDelta(t, mustAt(t, full, 0, 0), mustAt(t, early, 0, 0), 1e-10)
	require.InDelta(t, mustAt(t, full, 1, 0), mustAt(t, early, 1, 0), 1e-10)
}

// TestGaussSeidelFloat32 runs the solver over a float32 instantiation.
func TestGaussSeidelFloat32(t *testing.T) {
	a := mustFromElems(t, 3, 3, []float32{4, 1, 0, 1, 4, 1, 0, 1, 4})
	b := mustFromElems(t, 3, 1, []float32{5, 6, 5})
	x0, err := matrix.New(3, 1, float32(0))
	require.NoError(t, err)

	x, err := solver.GaussSeidel(a, b, x0, 100)
	require.NoError(t, err)
	ones, err := matrix.New(3, 1, float32(1))
	require.NoError(t, err)
	near, err := matrix.AllClose(x, ones, 0, 1e-5)
	require.NoError(t, err)
	require.True(t, near)
}

// TestResidualShapes checks Residual validation.
func TestResidualShapes(t *testing.T) {
	a, b, _ := system2(t)
	_, err := solver.Residual(a, mustFromElems(t, 3, 1, []float64{1, 2, 3}), b)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}
