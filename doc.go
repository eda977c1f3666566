// Package numlin is a small dense linear-algebra toolkit: generic vectors
// and row-major matrices over any built-in numeric type, plus a Gauss-Seidel
// solver for square systems.
//
// 🚀 What is numlin?
//
//	A generic, fail-fast numeric library that brings together:
//		• number/ — element constraints (Number, Signed, Float) and identities
//		• vector/ — fixed-length Vector[T] with element-wise and scalar ops
//		• matrix/ — row-major Dense[T]: Add, Sub, Hadamard, Mul, MulVec,
//		  Scale, Neg, Trace, Transpose, Reshape, Equal, AllClose
//		• solver/ — GaussSeidel and Residual with functional options
//
// ✨ Guarantees
//
//   - No panics on user input: every precondition surfaces as a sentinel
//     error, matched with errors.Is.
//   - Operands are never mutated; only Set, Transpose and Reshape work in place.
//   - Deterministic summation order in every reduction.
//
// Quick start:
//
//	a, _ := matrix.FromElems(2, 2, []float64{16, 3, 7, -11})
//	b, _ := matrix.FromElems(2, 1, []float64{11, 13})
//	x0, _ := matrix.New(2, 1, 1.0)
//	x, err := solver.GaussSeidel(a, b, x0, 1000)
//
// The numlin command (cmd/numlin) wraps the solver for YAML-described systems.
package numlin
