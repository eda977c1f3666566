// SPDX-License-Identifier: MIT
// Package: vector
//
// Purpose:
//   - Element-wise (Add, Sub, Mul, Div) and scalar (Scale, Neg) arithmetic.
//   - Every operation allocates exactly one result and never mutates operands.
//
// Determinism & Performance:
//   - Fixed 0..n-1 loop order.
//   - float32 operands dispatch to the 4-lane kernels in kernels_f32.go.

package vector

import (
	"github.com/katalvlaran/numlin/number"
)

// Operation name constants for unified error wrapping.
const (
	opAdd   = "Add"
	opSub   = "Sub"
	opMul   = "Mul"
	opDiv   = "Div"
	opScale = "Scale"
	opNeg   = "Neg"
	opDot   = "Dot"
)

// validateBinary checks presence and equal length of two operands.
func validateBinary[T number.Number](tag string, a, b *Vector[T]) error {
	if a == nil || b == nil {
		return opErrorf(tag, ErrNilVector)
	}
	if len(a.data) != len(b.data) {
		return opErrorf(tag, ErrDimensionMismatch)
	}

	return nil
}

// elementwise runs out[i] = op(a[i], b[i]), or the float32 kernel when available.
func elementwise[T number.Number](
	tag string,
	a, b *Vector[T],
	op func(x, y T) T,
	kernel func(dst, x, y []float32),
) (*Vector[T], error) {
	if err := validateBinary(tag, a, b); err != nil {
		return nil, err
	}
	out := make([]T, len(a.data))

	// float32 fast-path: dst/x/y alias the same backing arrays as out/a/b.
	if dst, ok := any(out).([]float32); ok && kernel != nil {
		kernel(dst, any(a.data).([]float32), any(b.data).([]float32))
		return wrap(out), nil
	}

	for i := range out {
		out[i] = op(a.data[i], b.data[i])
	}

	return wrap(out), nil
}

// Add returns a + b element-wise.
// Errors: ErrNilVector, ErrDimensionMismatch (lengths differ).
// Complexity: O(n).
func Add[T number.Number](a, b *Vector[T]) (*Vector[T], error) {
	return elementwise(opAdd, a, b, func(x, y T) T { return x + y }, addF32x4)
}

// Sub returns a - b element-wise.
// Errors: ErrNilVector, ErrDimensionMismatch (lengths differ).
// Complexity: O(n).
func Sub[T number.Number](a, b *Vector[T]) (*Vector[T], error) {
	return elementwise(opSub, a, b, func(x, y T) T { return x - y }, subF32x4)
}

// Mul returns the Hadamard product, out[i] = a[i] * b[i].
// Errors: ErrNilVector, ErrDimensionMismatch (lengths differ).
// Complexity: O(n).
func Mul[T number.Number](a, b *Vector[T]) (*Vector[T], error) {
	return elementwise(opMul, a, b, func(x, y T) T { return x * y }, mulF32x4)
}

// Div returns a / b element-wise. Division follows IEEE-754: x/0 yields ±Inf
// or NaN, never an error.
// Errors: ErrNilVector, ErrDimensionMismatch (lengths differ).
// Complexity: O(n).
func Div[T number.Float](a, b *Vector[T]) (*Vector[T], error) {
	return elementwise(opDiv, a, b, func(x, y T) T { return x / y }, divF32x4)
}

// Scale returns out[i] = c * v[i]. Always succeeds for a non-nil v.
// Errors: ErrNilVector.
// Complexity: O(n).
func Scale[T number.Number](v *Vector[T], c T) (*Vector[T], error) {
	if v == nil {
		return nil, opErrorf(opScale, ErrNilVector)
	}
	out := make([]T, len(v.data))
	if dst, ok := any(out).([]float32); ok {
		scaleF32x4(dst, any(v.data).([]float32), any(c).(float32))
		return wrap(out), nil
	}
	for i, x := range v.data {
		out[i] = c * x
	}

	return wrap(out), nil
}

// Neg returns out[i] = -v[i]. Requires a signed element type.
// Errors: ErrNilVector.
// Complexity: O(n).
func Neg[T number.Signed](v *Vector[T]) (*Vector[T], error) {
	if v == nil {
		return nil, opErrorf(opNeg, ErrNilVector)
	}
	out := make([]T, len(v.data))
	if dst, ok := any(out).([]float32); ok {
		negF32x4(dst, any(v.data).([]float32))
		return wrap(out), nil
	}
	for i, x := range v.data {
		out[i] = -x
	}

	return wrap(out), nil
}

// Dot returns Σ a[i]*b[i], accumulated in T in index order.
// Errors: ErrNilVector, ErrDimensionMismatch.
// Complexity: O(n).
func Dot[T number.Number](a, b *Vector[T]) (T, error) {
	if err := validateBinary(opDot, a, b); err != nil {
		return number.Zero[T](), err
	}
	sum := number.Zero[T]()
	for i := range a.data {
		sum += a.data[i] * b.data[i]
	}

	return sum, nil
}
