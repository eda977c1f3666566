// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic test fixtures and utilities for Dense tests.
//   • Keep all data finite and exactly representable so equality can be exact.

package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/numlin/matrix"
	"github.com/katalvlaran/numlin/number"
)

// MustFromElems BUILDS an r×c *Dense from a row-major slice or fails the test.
func MustFromElems[T number.Number](t testing.TB, r, c int, vals []T) *matrix.Dense[T] {
	t.Helper()
	m, err := matrix.FromElems(r, c, vals)
	if err != nil {
		t.Fatalf("FromElems(%d,%d): %v", r, c, err)
	}

	return m
}

// MustIdentity RETURNS I_n or fails the test.
func MustIdentity[T number.Number](t testing.TB, n int) *matrix.Dense[T] {
	t.Helper()
	m, err := matrix.Identity[T](n)
	if err != nil {
		t.Fatalf("Identity(%d): %v", n, err)
	}

	return m
}

// MustAt READS m(i,j) or fails the test.
func MustAt[T number.Number](t testing.TB, m *matrix.Dense[T], i, j int) T {
	t.Helper()
	v, err := m.At(i, j)
	if err != nil {
		t.Fatalf("At(%d,%d): %v", i, j, err)
	}

	return v
}

// RandIntDense FILLS an r×c float64 matrix with small integers in [-9, 9].
// Integer-valued floats keep sums and products exact, so identity and
// round-trip properties can be checked with exact equality.
func RandIntDense(t testing.TB, r, c int, seed int64) *matrix.Dense[float64] {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	vals := make([]float64, r*c)
	for i := range vals {
		vals[i] = float64(rng.Intn(19) - 9)
	}

	return MustFromElems(t, r, c, vals)
}

// CompareExact ASSERTS m equals want (row slices) element by element.
func CompareExact[T number.Number](t testing.TB, want [][]T, m *matrix.Dense[T]) {
	t.Helper()
	if len(want) != m.Rows() {
		t.Fatalf("CompareExact: Rows = %d; want %d", m.Rows(), len(want))
	}
	for i := range want {
		if len(want[i]) != m.Cols() {
			t.Fatalf("CompareExact: Cols[%d] = %d; want %d", i, m.Cols(), len(want[i]))
		}
		for j := range want[i] {
			if v := MustAt(t, m, i, j); v != want[i][j] {
				t.Fatalf("m[%d,%d]=%v; want %v", i, j, v, want[i][j])
			}
		}
	}
}
