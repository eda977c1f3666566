// SPDX-License-Identifier: MIT

// Package solver provides iterative solvers for dense linear systems A·x = b.
//
// GaussSeidel runs a fixed budget of sweeps. Within a sweep, row j is updated
// in increasing order using the most recent values of x, including updates
// made earlier in the same sweep (which distinguishes it from Jacobi):
//
//	x[j] = (b[j] - Σ_{k≠j} A[j][k]·x[k]) / A[j][j]
//
// By default the diagonal is checked once before sweeping and a zero pivot is
// reported as ErrZeroPivot. WithoutPivotCheck restores plain IEEE-754
// behaviour (Inf/NaN propagate silently). WithTolerance enables an optional
// early stop; without it no convergence test is made.
//
// Residual measures ‖A·x − b‖∞ for a candidate solution.
package solver
