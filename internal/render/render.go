// SPDX-License-Identifier: MIT

// Package render prints matrices and solver results as go-pretty tables or
// as plain text.
package render

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/katalvlaran/numlin/internal/config"
	"github.com/katalvlaran/numlin/matrix"
)

// ErrUnknownFormat is returned for formats other than table and plain.
var ErrUnknownFormat = errors.New("render: unknown format")

// Options controls number formatting and layout.
type Options struct {
	Format    string // config.FormatTable | config.FormatPlain
	Precision int    // digits after the decimal point; -1 = shortest exact
}

func (o Options) num(v float64) string {
	if o.Precision < 0 {
		return strconv.FormatFloat(v, 'g', -1, 64)
	}

	return strconv.FormatFloat(v, 'f', o.Precision, 64)
}

func (o Options) check() error {
	switch o.Format {
	case config.FormatTable, config.FormatPlain:
		return nil
	default:
		return fmt.Errorf("%q: %w", o.Format, ErrUnknownFormat)
	}
}

func newTable(w io.Writer) table.Writer {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)

	return t
}

// Matrix prints m as a grid. Table output carries row and column indices;
// plain output is one space-separated line per row.
func Matrix(w io.Writer, m *matrix.Dense[float64], o Options) error {
	if err := o.check(); err != nil {
		return err
	}
	if m == nil {
		return matrix.ErrNilMatrix
	}
	rows, cols := m.Shape()

	if o.Format == config.FormatPlain {
		for i := 0; i < rows; i++ {
			row, err := m.Row(i)
			if err != nil {
				return err
			}
			cells := make([]string, cols)
			for j, v := range row {
				cells[j] = o.num(v)
			}
			if _, err = fmt.Fprintln(w, strings.Join(cells, " ")); err != nil {
				return err
			}
		}

		return nil
	}

	t := newTable(w)
	header := make(table.Row, cols+1)
	header[0] = ""
	for j := 0; j < cols; j++ {
		header[j+1] = j
	}
	t.AppendHeader(header)
	for i := 0; i < rows; i++ {
		row, err := m.Row(i)
		if err != nil {
			return err
		}
		r := make(table.Row, cols+1)
		r[0] = i
		for j, v := range row {
			r[j+1] = o.num(v)
		}
		t.AppendRow(r)
	}
	t.Render()

	return nil
}

// Elements prints every element of m in row-major order, one per line in
// plain mode or one per table row with its coordinates.
func Elements(w io.Writer, m *matrix.Dense[float64], o Options) error {
	if err := o.check(); err != nil {
		return err
	}
	if m == nil {
		return matrix.ErrNilMatrix
	}
	rows, cols := m.Shape()

	var t table.Writer
	if o.Format == config.FormatTable {
		t = newTable(w)
		t.AppendHeader(table.Row{"Row", "Col", "Value"})
	}
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			v, err := m.At(i, j)
			if err != nil {
				return err
			}
			if t != nil {
				t.AppendRow(table.Row{i, j, o.num(v)})
				continue
			}
			if _, err = fmt.Fprintln(w, o.num(v)); err != nil {
				return err
			}
		}
	}
	if t != nil {
		t.Render()
	}

	return nil
}

// Solution prints the column x and its residual ‖a·x − b‖∞.
func Solution(w io.Writer, x *matrix.Dense[float64], residual float64, o Options) error {
	if err := o.check(); err != nil {
		return err
	}
	if x == nil {
		return matrix.ErrNilMatrix
	}
	if err := matrix.ValidateColumn(x, x.Rows()); err != nil {
		return err
	}
	data := x.Data()

	if o.Format == config.FormatPlain {
		for i, v := range data {
			if _, err := fmt.Fprintf(w, "x[%d] = %s\n", i, o.num(v)); err != nil {
				return err
			}
		}
		_, err := fmt.Fprintf(w, "residual = %s\n", o.num(residual))

		return err
	}

	t := newTable(w)
	t.AppendHeader(table.Row{"i", "x"})
	for i, v := range data {
		t.AppendRow(table.Row{i, o.num(v)})
	}
	t.AppendFooter(table.Row{"residual", o.num(residual)})
	t.Render()

	return nil
}
