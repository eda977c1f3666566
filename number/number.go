// SPDX-License-Identifier: MIT

// Package number declares the element constraints shared by the vector,
// matrix and solver packages.
//
// Three capability levels are exposed:
//   - Number: every signed/unsigned integer and floating-point type. Supports
//     the ring operations (+, -, *) and value-copy semantics; enough for
//     Add/Sub/Mul/Scale/Trace.
//   - Signed: Number minus the unsigned integers. Required for negation.
//   - Float: float32 and float64. Required wherever division is performed
//     (element-wise Div, Gauss-Seidel).
//
// The constraints are static; nothing here exists at runtime besides the
// Zero/One identity helpers.
package number

import "golang.org/x/exp/constraints"

// Number is any primitive integer or floating-point type (including named
// types whose underlying type is one of them).
type Number interface {
	constraints.Integer | constraints.Float
}

// Signed is a Number that supports unary negation.
type Signed interface {
	constraints.Signed | constraints.Float
}

// Float is a Number with a true division.
type Float interface {
	constraints.Float
}

// Zero returns the additive identity of T.
func Zero[T Number]() T {
	var z T

	return z
}

// One returns the multiplicative identity of T.
func One[T Number]() T {
	return T(1)
}
