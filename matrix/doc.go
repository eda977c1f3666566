// SPDX-License-Identifier: MIT

// Package matrix provides Dense[T], a row-major matrix over any number.Number
// element type, built on top of vector.Vector[T] storage.
//
// The matrix package provides:
//
//   - Constructors: New (fill), FromElems (validated row-major slice), Identity.
//   - Safe accessors: At/Set/Row return ErrOutOfRange with the offending
//     coordinates instead of panicking.
//   - Pure arithmetic: Add, Sub, Hadamard, Mul (matrix product), Scale, Neg,
//     MulVec and Trace allocate their result and never touch the operands.
//   - Explicit mutators: Set, Transpose (in place, reallocates) and Reshape
//     (metadata only).
//   - Exact equality via Equal.
//
// Element (i, j) lives at flat offset i*Cols()+j. Shape errors surface as
// ErrDimensionMismatch, non-square inputs to Trace as ErrNonSquare.
//
// Dense is not safe for concurrent mutation. Share instances read-only after
// construction or guard them externally.
package matrix
