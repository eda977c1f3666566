// SPDX-License-Identifier: MIT

package solver

import (
	"fmt"
	"math"

	"github.com/katalvlaran/numlin/matrix"
	"github.com/katalvlaran/numlin/number"
	"github.com/katalvlaran/numlin/vector"
)

// Operation name constants for unified error wrapping.
const (
	opGaussSeidel = "GaussSeidel"
	opResidual    = "Residual"
)

// solverErrorf wraps an underlying error with the given tag.
func solverErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// validateSystem checks that a is n×n and that b and x0 are n×1 columns.
func validateSystem[T number.Float](tag string, a, b, x0 *matrix.Dense[T]) error {
	if err := matrix.ValidateBinary(a, b); err != nil {
		return solverErrorf(tag, err)
	}
	if err := matrix.ValidateNotNil(x0); err != nil {
		return solverErrorf(tag, err)
	}
	if err := matrix.ValidateSquare(a); err != nil {
		return solverErrorf(tag, err)
	}
	n := a.Rows()
	if err := matrix.ValidateColumn(b, n); err != nil {
		return solverErrorf(tag, err)
	}
	if err := matrix.ValidateColumn(x0, n); err != nil {
		return solverErrorf(tag, err)
	}

	return nil
}

// GaussSeidel solves a·x = b iteratively, starting from x0.
// MAIN DESCRIPTION:
//   - Runs `iterations` full Gauss-Seidel sweeps and returns the final x as a
//     new n×1 matrix. a, b and x0 are never mutated.
//
// Implementation:
//   - Stage 1: validate shapes (a n×n, b and x0 n×1) and iterations >= 0.
//   - Stage 2: when the pivot check is on, reject any a[j][j] == 0.
//   - Stage 3: for each sweep, for j = 0..n-1:
//     sum = b[j] - Σ_{k≠j} a[j][k]·x[k]; x[j] = sum / a[j][j].
//     x is updated in place, so rows after j already see the new x[j].
//   - Stage 4: with WithTolerance, stop after the first sweep whose largest
//     |Δx[j]| is <= eps.
//
// Inputs:
//   - a: n×n coefficient matrix.
//   - b: n×1 right-hand side.
//   - x0: n×1 initial guess.
//   - iterations: sweep budget; 0 returns a copy of x0.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrDimensionMismatch (matrix sentinels) from Stage 1.
//   - ErrInvalidIterations from Stage 1.
//   - ErrZeroPivot from Stage 2.
//
// Determinism:
//   - Fixed row order and fixed k order inside every row sum.
//
// Complexity:
//   - Time O(iterations·n²), Space O(n).
//
// Notes:
//   - No convergence is reported. Convergence is guaranteed for strictly
//     diagonally dominant or symmetric positive-definite a; otherwise the
//     iteration may diverge.
func GaussSeidel[T number.Float](a, b, x0 *matrix.Dense[T], iterations int, opts ...Option) (*matrix.Dense[T], error) {
	// Stage 1: validate inputs.
	if err := validateSystem(opGaussSeidel, a, b, x0); err != nil {
		return nil, err
	}
	if iterations < 0 {
		return nil, solverErrorf(opGaussSeidel, ErrInvalidIterations)
	}
	o := gatherOptions(opts...)
	n := a.Rows()

	// Flat working copies: ad is row-major n×n, bd and xd have length n.
	ad, bd, xd := a.Data(), b.Data(), x0.Data()

	// Stage 2: pivots are constant across sweeps, so check them once.
	if o.pivotCheck {
		for j := 0; j < n; j++ {
			if ad[j*n+j] == number.Zero[T]() {
				return nil, fmt.Errorf("%s: row %d: %w", opGaussSeidel, j, ErrZeroPivot)
			}
		}
	}

	// Stage 3: sweeps.
	tol, early := o.Tolerance()
	var (
		sweep, j, k int
		base        int
		sum, next   T
		maxDelta    float64
	)
	for sweep = 0; sweep < iterations; sweep++ {
		maxDelta = 0
		for j = 0; j < n; j++ {
			base = j * n
			sum = bd[j]
			for k = 0; k < n; k++ {
				if k != j {
					sum -= ad[base+k] * xd[k]
				}
			}
			next = sum / ad[base+j]
			if early {
				if d := math.Abs(float64(next - xd[j])); d > maxDelta || math.IsNaN(d) {
					maxDelta = d
				}
			}
			xd[j] = next // visible to rows j+1..n-1 in this sweep
		}
		// Stage 4: optional early stop.
		if early && maxDelta <= tol {
			break
		}
	}

	x, err := matrix.FromElems(n, 1, xd)
	if err != nil {
		return nil, solverErrorf(opGaussSeidel, err)
	}

	return x, nil
}

// Residual returns ‖a·x − b‖∞, the largest absolute row error of x.
// Errors: same shape errors as GaussSeidel.
// Complexity: O(n²).
func Residual[T number.Float](a, x, b *matrix.Dense[T]) (float64, error) {
	if err := validateSystem(opResidual, a, b, x); err != nil {
		return 0, err
	}
	ax, err := matrix.MulVec(a, x.Vector())
	if err != nil {
		return 0, solverErrorf(opResidual, err)
	}
	diff, err := vector.Sub(ax, b.Vector())
	if err != nil {
		return 0, solverErrorf(opResidual, err)
	}
	worst := 0.0
	for _, r := range diff.RawData() {
		if d := math.Abs(float64(r)); d > worst || math.IsNaN(d) {
			worst = d
		}
	}

	return worst, nil
}
