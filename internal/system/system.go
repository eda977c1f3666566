// SPDX-License-Identifier: MIT

// Package system reads linear systems a·x = b from YAML documents:
//
//	a:
//	  - [16, 3]
//	  - [7, -11]
//	b: [11, 13]
//	x0: [1, 1]       # optional, zeros when omitted
//	iterations: 1000 # optional
package system

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/numlin/matrix"
)

// ErrInvalidSystem is returned for structurally malformed system documents.
var ErrInvalidSystem = errors.New("system: invalid system")

// System is the decoded document.
type System struct {
	A          [][]float64 `yaml:"a"`
	B          []float64   `yaml:"b"`
	X0         []float64   `yaml:"x0,omitempty"`
	Iterations *int        `yaml:"iterations,omitempty"`
}

// Decode reads one YAML document from r. Unknown keys are rejected.
func Decode(r io.Reader) (*System, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	var s System
	if err := dec.Decode(&s); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("empty document: %w", ErrInvalidSystem)
		}

		return nil, fmt.Errorf("decode system: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}

	return &s, nil
}

// Load opens and decodes the system file at path.
func Load(path string) (*System, error) {
	f, err := os.Open(path) //nolint:gosec // path comes from the command line
	if err != nil {
		return nil, fmt.Errorf("open system file: %w", err)
	}
	defer f.Close()

	s, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return s, nil
}

// Size returns n, the number of unknowns.
func (s *System) Size() int { return len(s.A) }

// Validate checks that a is a non-empty square matrix and that b, x0 and
// iterations agree with it.
func (s *System) Validate() error {
	n := len(s.A)
	if n == 0 {
		return fmt.Errorf("a: no rows: %w", ErrInvalidSystem)
	}
	for i, row := range s.A {
		if len(row) != n {
			return fmt.Errorf("a: row %d has %d entries, want %d: %w", i, len(row), n, ErrInvalidSystem)
		}
	}
	if len(s.B) != n {
		return fmt.Errorf("b: %d entries, want %d: %w", len(s.B), n, ErrInvalidSystem)
	}
	if s.X0 != nil && len(s.X0) != n {
		return fmt.Errorf("x0: %d entries, want %d: %w", len(s.X0), n, ErrInvalidSystem)
	}
	if s.Iterations != nil && *s.Iterations < 0 {
		return fmt.Errorf("iterations: %d: %w", *s.Iterations, ErrInvalidSystem)
	}

	return nil
}

// Matrices converts the system into a (n×n), b (n×1) and x0 (n×1).
// A missing x0 becomes the zero column.
func (s *System) Matrices() (a, b, x0 *matrix.Dense[float64], err error) {
	if err = s.Validate(); err != nil {
		return nil, nil, nil, err
	}
	n := s.Size()

	flat := make([]float64, 0, n*n)
	for _, row := range s.A {
		flat = append(flat, row...)
	}
	if a, err = matrix.FromElems(n, n, flat); err != nil {
		return nil, nil, nil, err
	}
	if b, err = matrix.FromElems(n, 1, s.B); err != nil {
		return nil, nil, nil, err
	}
	guess := s.X0
	if guess == nil {
		guess = make([]float64, n)
	}
	if x0, err = matrix.FromElems(n, 1, guess); err != nil {
		return nil, nil, nil, err
	}

	return a, b, x0, nil
}
