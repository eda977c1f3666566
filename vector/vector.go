// SPDX-License-Identifier: MIT

// Package vector - storage & safe accessors.
//
// Purpose:
//   - Own a contiguous []T whose length is fixed at construction.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Keep value semantics: Clone and Data always deep-copy.
//
// Complexity quicksheet:
//   - New/FromElems: O(n); At/Set/Len: O(1); Clone/Data: O(n); Equal: O(n).

package vector

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/numlin/number"
)

// ---------- error context tags ----------

const (
	ctxAt  = "At"  // method tag used in error wrappers
	ctxSet = "Set" // method tag used in error wrappers
)

// ---------- Formatting literals ----------

const (
	_fmtOpen  = "["
	_fmtClose = "]"
	_fmtSep   = " "
)

// vectorErrorf wraps an error with a uniform Vector context and the offending index.
func vectorErrorf(method string, idx int, err error) error {
	return fmt.Errorf("Vector.%s(%d): %w", method, idx, err)
}

// opErrorf wraps an underlying error with an operation tag.
func opErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Vector is a dense, fixed-length sequence of numeric elements.
//   - data holds the elements; len(data) never changes after construction.
type Vector[T number.Number] struct {
	data []T // contiguous storage, exclusively owned
}

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = (*Vector[float64])(nil)

// New allocates a Vector of the given length with every element set to fill.
//
// Errors:
//   - ErrNegativeLength when length < 0. A zero length is legal.
//
// Complexity:
//   - Time O(n), Space O(n).
func New[T number.Number](length int, fill T) (*Vector[T], error) {
	if length < 0 {
		return nil, opErrorf("New", ErrNegativeLength)
	}
	buf := make([]T, length)
	// make() already zero-fills; skip the loop for the common zero case.
	if fill != number.Zero[T]() {
		for i := range buf {
			buf[i] = fill
		}
	}

	return &Vector[T]{data: buf}, nil
}

// FromElems copies elems, in order, into a new Vector.
// The caller keeps ownership of elems; later writes to it are not observed.
// Complexity: O(n).
func FromElems[T number.Number](elems []T) *Vector[T] {
	buf := make([]T, len(elems))
	copy(buf, elems)

	return &Vector[T]{data: buf}
}

// wrap adopts buf without copying. Internal: buf must not be shared.
func wrap[T number.Number](buf []T) *Vector[T] {
	return &Vector[T]{data: buf}
}

// Len returns the number of elements. A nil Vector has length 0.
// Complexity: O(1).
func (v *Vector[T]) Len() int {
	if v == nil {
		return 0
	}

	return len(v.data)
}

// At returns the element at index i.
//
// Errors:
//   - ErrNilVector on a nil receiver.
//   - ErrOutOfRange when i < 0 or i >= Len(), wrapped as "Vector.At(i): ...".
//
// Complexity:
//   - Time O(1), Space O(1).
func (v *Vector[T]) At(i int) (T, error) {
	if v == nil {
		return number.Zero[T](), vectorErrorf(ctxAt, i, ErrNilVector)
	}
	if i < 0 || i >= len(v.data) {
		return number.Zero[T](), vectorErrorf(ctxAt, i, ErrOutOfRange)
	}

	return v.data[i], nil
}

// Set stores x at index i (in place).
//
// Errors:
//   - ErrNilVector on a nil receiver.
//   - ErrOutOfRange when i < 0 or i >= Len(), wrapped as "Vector.Set(i): ...".
//
// Complexity:
//   - Time O(1), Space O(1).
func (v *Vector[T]) Set(i int, x T) error {
	if v == nil {
		return vectorErrorf(ctxSet, i, ErrNilVector)
	}
	if i < 0 || i >= len(v.data) {
		return vectorErrorf(ctxSet, i, ErrOutOfRange)
	}
	v.data[i] = x

	return nil
}

// Clone returns a deep copy. Mutating the copy never affects v.
// A nil receiver clones to nil.
// Complexity: O(n).
func (v *Vector[T]) Clone() *Vector[T] {
	if v == nil {
		return nil
	}

	return FromElems(v.data)
}

// Data returns a copy of the elements in index order (empty for nil).
// Complexity: O(n).
func (v *Vector[T]) Data() []T {
	if v == nil {
		return []T{}
	}
	out := make([]T, len(v.data))
	copy(out, v.data)

	return out
}

// RawData returns the backing slice without copying. v must be non-nil.
// It exists for kernels layered on top of Vector (matrix.Dense row-major
// loops). Writes through the slice are visible in v; the slice must not be
// appended to or retained past the owner's lifetime. Prefer Data elsewhere.
func (v *Vector[T]) RawData() []T { return v.data }

// Window returns a read-only copy of elements [lo, hi). v must be non-nil.
//
// Errors:
//   - ErrOutOfRange when the window is not within [0, Len()].
//
// Complexity:
//   - Time O(hi-lo), Space O(hi-lo).
func (v *Vector[T]) Window(lo, hi int) ([]T, error) {
	if lo < 0 || hi > len(v.data) || lo > hi {
		return nil, fmt.Errorf("Vector.Window(%d,%d): %w", lo, hi, ErrOutOfRange)
	}
	out := make([]T, hi-lo)
	copy(out, v.data[lo:hi])

	return out, nil
}

// String renders the vector as "[a b c]", or "<nil>".
func (v *Vector[T]) String() string {
	if v == nil {
		return "<nil>"
	}
	var b strings.Builder
	b.WriteString(_fmtOpen)
	for i, x := range v.data {
		if i > 0 {
			b.WriteString(_fmtSep)
		}
		fmt.Fprintf(&b, "%v", x)
	}
	b.WriteString(_fmtClose)

	return b.String()
}

// Equal reports whether a and b have the same length and identical elements.
// Comparison is exact (no tolerance); NaN never equals NaN.
// Two nil vectors are equal; a nil and a non-nil vector are not.
// Complexity: O(n), early exit on the first difference.
func Equal[T number.Number](a, b *Vector[T]) bool {
	if a == nil || b == nil {
		return a == b
	}
	if len(a.data) != len(b.data) {
		return false
	}
	// float32 fast-path: 4-lane compare.
	if af, ok := any(a.data).([]float32); ok {
		return eqF32x4(af, any(b.data).([]float32))
	}
	for i := range a.data {
		if a.data[i] != b.data[i] {
			return false
		}
	}

	return true
}
