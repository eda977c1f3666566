// SPDX-License-Identifier: MIT

// Package vector provides Vector[T], a fixed-length dense sequence of numeric
// elements, together with element-wise and scalar arithmetic.
//
// The package provides:
//
//   - Construction: New (fill with a value) and FromElems (copy a slice).
//   - Safe accessors: At/Set return ErrOutOfRange instead of panicking.
//   - Pure arithmetic: Add, Sub, Mul (Hadamard), Div, Scale and Neg allocate a
//     fresh result and never mutate their operands.
//   - Exact equality (no epsilon) via Equal.
//
// Shape errors are returned as ErrDimensionMismatch; callers match them with
// errors.Is. For float32 vectors the element-wise kernels run in 4-lane
// chunks (see kernels_f32.go); results are bit-identical to the scalar loop.
//
// Vector is the storage layer of matrix.Dense. It is not safe for concurrent
// mutation; share it read-only or guard it externally.
package vector
