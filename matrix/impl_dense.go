// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a row-major buffer with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: At/Set/Row return errors instead of panicking.
//   - Keep mutation explicit: Set, Transpose and Reshape are the only in-place operations.
//
// Complexity quicksheet:
//   - New/FromElems/Identity: O(r*c); At/Set: O(1); Row: O(c); Clone/Data: O(r*c);
//     Transpose: O(r*c) with one reallocation; Reshape: O(1).

package matrix

import (
	"fmt"
	"math"
	"strings"

	"github.com/katalvlaran/numlin/number"
	"github.com/katalvlaran/numlin/vector"
)

// ---------- error context tags ----------

const (
	ctxAt      = "At"      // method tag used in error wrappers
	ctxSet     = "Set"     // method tag used in error wrappers
	ctxRow     = "Row"     // method tag used in error wrappers
	ctxReshape = "Reshape" // method tag used in error wrappers
)

// ---------- Formatting literals ----------

const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
// MAIN DESCRIPTION:
//   - Attach method context and coordinates to a sentinel error for diagnostics.
//
// Implementation:
//   - Stage 1: format "Dense.<method>(row,col): %w".
//   - Stage 2: return wrapped error.
//
// Notes:
//   - Keep tags in constants for grep-ability and consistency.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a concrete row-major matrix.
//   - r,c hold dimensions (rows, cols), both > 0.
//   - storage is a Vector of length r*c in row-major order (offset = i*c + j).
type Dense[T number.Number] struct {
	r, c    int               // row and column counts
	storage *vector.Vector[T] // contiguous row-major storage (Len == r*c)
}

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = (*Dense[float64])(nil)

// validateDims is the single shape gate for every public constructor and
// Reshape. rows*cols must be representable as an int.
func validateDims(rows, cols int) error {
	if rows <= 0 || cols <= 0 {
		return ErrInvalidDimensions
	}
	if rows > math.MaxInt/cols {
		return ErrInvalidDimensions
	}

	return nil
}

// New creates a rows×cols matrix with every element set to fill.
// MAIN DESCRIPTION:
//   - Public constructor with strict shape validation.
//
// Implementation:
//   - Stage 1: validate rows>0 && cols>0 and no rows*cols overflow; else ErrInvalidDimensions.
//   - Stage 2: allocate a Vector of rows*cols copies of fill.
//
// Errors:
//   - ErrInvalidDimensions (shape contract violation).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func New[T number.Number](rows, cols int, fill T) (*Dense[T], error) {
	if err := validateDims(rows, cols); err != nil {
		return nil, matrixErrorf(opNew, err)
	}
	storage, err := vector.New(rows*cols, fill)
	if err != nil {
		return nil, matrixErrorf(opNew, err)
	}

	return &Dense[T]{r: rows, c: cols, storage: storage}, nil
}

// FromElems builds a rows×cols matrix from a row-major slice.
// MAIN DESCRIPTION:
//   - Copy elems into fresh storage after validating the element count.
//
// Implementation:
//   - Stage 1: validate rows>0 && cols>0.
//   - Stage 2: require len(elems) == rows*cols (never truncate or pad).
//   - Stage 3: copy via vector.FromElems.
//
// Errors:
//   - ErrInvalidDimensions, ErrElemCount.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
//
// AI-Hints:
//   - The caller keeps ownership of elems; later writes are not observed.
func FromElems[T number.Number](rows, cols int, elems []T) (*Dense[T], error) {
	if err := validateDims(rows, cols); err != nil {
		return nil, matrixErrorf(opFromElems, err)
	}
	if len(elems) != rows*cols {
		return nil, fmt.Errorf("%s: want %d elements, got %d: %w",
			opFromElems, rows*cols, len(elems), ErrElemCount)
	}

	return &Dense[T]{r: rows, c: cols, storage: vector.FromElems(elems)}, nil
}

// Identity returns the n×n matrix with One on the main diagonal and Zero elsewhere.
// Errors: ErrInvalidDimensions when n <= 0.
// Complexity: O(n²).
func Identity[T number.Number](n int) (*Dense[T], error) {
	m, err := New(n, n, number.Zero[T]())
	if err != nil {
		return nil, matrixErrorf(opIdentity, err)
	}
	data := m.storage.RawData()
	one := number.One[T]()
	for i := 0; i < n; i++ {
		data[i*n+i] = one // diagonal offset i*(n+1)
	}

	return m, nil
}

// Rows returns the row count. No side effects.
// Complexity: O(1).
func (m *Dense[T]) Rows() int { return m.r }

// Cols returns the column count. No side effects.
// Complexity: O(1).
func (m *Dense[T]) Cols() int { return m.c }

// Shape packs Rows() and Cols() into a single call for convenience.
// Complexity: O(1).
func (m *Dense[T]) Shape() (rows, cols int) { return m.r, m.c }

// indexOf computes the row-major offset or returns ErrOutOfRange.
// Public methods wrap the sentinel with their own tag and coordinates.
func (m *Dense[T]) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.r {
		return 0, ErrOutOfRange
	}
	if col < 0 || col >= m.c {
		return 0, ErrOutOfRange
	}

	// Row-major offset: i*c + j.
	return row*m.c + col, nil
}

// At returns the value at (row, col).
// MAIN DESCRIPTION:
//   - Safe element read at coordinates.
//
// Errors:
//   - ErrOutOfRange wrapped as "Dense.At(row,col): ..." when out of bounds.
//
// Complexity:
//   - Time O(1), Space O(1).
func (m *Dense[T]) At(row, col int) (T, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		return number.Zero[T](), denseErrorf(ctxAt, row, col, err)
	}

	return m.storage.RawData()[off], nil
}

// Set stores v at (row, col) in place.
// MAIN DESCRIPTION:
//   - Safe element write.
//
// Errors:
//   - ErrOutOfRange wrapped as "Dense.Set(row,col): ..." when out of bounds.
//
// Complexity:
//   - Time O(1), Space O(1).
func (m *Dense[T]) Set(row, col int, v T) error {
	off, err := m.indexOf(row, col)
	if err != nil {
		return denseErrorf(ctxSet, row, col, err)
	}
	m.storage.RawData()[off] = v

	return nil
}

// Row returns a copy of row i (length Cols()).
// Errors: ErrOutOfRange when i is not in [0, Rows()).
// Complexity: O(c).
func (m *Dense[T]) Row(i int) ([]T, error) {
	if i < 0 || i >= m.r {
		return nil, denseErrorf(ctxRow, i, 0, ErrOutOfRange)
	}
	base := i * m.c // row i occupies [i*c, i*c+c)
	row, err := m.storage.Window(base, base+m.c)
	if err != nil {
		return nil, denseErrorf(ctxRow, i, 0, ErrOutOfRange)
	}

	return row, nil
}

// Data returns a copy of the flat row-major buffer.
// Complexity: O(r*c).
func (m *Dense[T]) Data() []T { return m.storage.Data() }

// Vector returns a deep copy of the storage as a vector.Vector.
// Complexity: O(r*c).
func (m *Dense[T]) Vector() *vector.Vector[T] { return m.storage.Clone() }

// Clone returns a deep copy (new buffer, same shape).
// Complexity: O(r*c).
func (m *Dense[T]) Clone() *Dense[T] {
	return &Dense[T]{r: m.r, c: m.c, storage: m.storage.Clone()}
}

// Transpose swaps rows and columns in place.
// MAIN DESCRIPTION:
//   - Logical in-place transpose: a new backing buffer receives
//     new[j][i] = old[i][j], then r and c are swapped.
//
// Implementation:
//   - Stage 1: allocate a buffer of r*c elements.
//   - Stage 2: scatter old(i,j) at offset j*r + i (the new row length is r).
//   - Stage 3: swap dimensions and adopt the buffer.
//
// Determinism:
//   - Fixed i→j loop order.
//
// Complexity:
//   - Time O(r*c), Space O(r*c) (one reallocation).
//
// Notes:
//   - Transposing twice restores the original matrix exactly.
func (m *Dense[T]) Transpose() {
	src := m.storage.RawData()
	dst := make([]T, len(src))
	var baseSrc int
	for i := 0; i < m.r; i++ {
		baseSrc = i * m.c
		for j := 0; j < m.c; j++ {
			dst[j*m.r+i] = src[baseSrc+j]
		}
	}
	m.r, m.c = m.c, m.r
	m.storage = vector.FromElems(dst)
}

// T returns a transposed copy, leaving m untouched.
// Complexity: O(r*c).
func (m *Dense[T]) T() *Dense[T] {
	cp := m.Clone()
	cp.Transpose()

	return cp
}

// Reshape reinterprets the buffer as rows×cols without moving elements.
// MAIN DESCRIPTION:
//   - Metadata-only change; element order in the flat buffer is unchanged.
//
// Errors:
//   - ErrInvalidDimensions when rows <= 0 or cols <= 0.
//   - ErrDimensionMismatch when rows*cols != Rows()*Cols().
//
// Complexity:
//   - Time O(1), Space O(1).
func (m *Dense[T]) Reshape(rows, cols int) error {
	if err := validateDims(rows, cols); err != nil {
		return denseErrorf(ctxReshape, rows, cols, err)
	}
	if rows*cols != m.r*m.c {
		return denseErrorf(ctxReshape, rows, cols, ErrDimensionMismatch)
	}
	m.r, m.c = rows, cols

	return nil
}

// String provides a readable row-wise dump for diagnostics, one row per line.
func (m *Dense[T]) String() string {
	var b strings.Builder
	data := m.storage.RawData()
	for i := 0; i < m.r; i++ {
		base := i * m.c
		b.WriteString(_fmtRowOpen) // open row
		for j := 0; j < m.c; j++ {
			fmt.Fprintf(&b, "%v", data[base+j])
			if j < m.c-1 {
				b.WriteString(_fmtSep) // separate values with comma + space
			}
		}
		b.WriteString(_fmtRowClose) // close row
	}

	return b.String()
}

// Equal reports whether a and b have identical shape and exactly equal elements.
// Two nil matrices are equal; a nil and a non-nil matrix are not.
// Complexity: O(r*c).
func Equal[T number.Number](a, b *Dense[T]) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.r != b.r || a.c != b.c {
		return false
	}

	return vector.Equal(a.storage, b.storage)
}
