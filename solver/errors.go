// SPDX-License-Identifier: MIT
// Package solver: sentinel error set. Match with errors.Is.

package solver

import "errors"

var (
	// ErrZeroPivot indicates a zero diagonal entry A[j][j]; Gauss-Seidel would divide by it.
	ErrZeroPivot = errors.New("solver: zero pivot on the diagonal")

	// ErrInvalidIterations indicates a negative iteration budget.
	ErrInvalidIterations = errors.New("solver: iterations must be >= 0")
)
