// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package value

import (
	"strings"

	"github.com/epwr/lazy-linear-algebra/config"
)

// Matrix is a rectangular grid of scalars.
type Matrix struct {
	rows, cols int
	cells      [][]Scalar
}

// NewMatrix returns the matrix with the given rows. Every row must have
// the same, non-zero, length.
func NewMatrix(rows [][]Scalar) *Matrix {
	if len(rows) == 0 || len(rows[0]) == 0 {
		panic(Errorf("empty matrix"))
	}
	cols := len(rows[0])
	for i, row := range rows {
		if len(row) != cols {
			panic(Errorf("inconsistent matrix row length: row %d has %d values, want %d", i+1, len(row), cols))
		}
	}
	return &Matrix{
		rows:  len(rows),
		cols:  cols,
		cells: rows,
	}
}

// newMatrix returns an r×c matrix with each cell set by fn.
func newMatrix(r, c int, fn func(i, j int) Scalar) *Matrix {
	cells := make([][]Scalar, r)
	for i := range cells {
		cells[i] = make([]Scalar, c)
		for j := range cells[i] {
			cells[i][j] = fn(i, j)
		}
	}
	return &Matrix{rows: r, cols: c, cells: cells}
}

func (m *Matrix) Kind() string { return "Matrix" }

// Rows returns the number of rows.
func (m *Matrix) Rows() int { return m.rows }

// Cols returns the number of columns.
func (m *Matrix) Cols() int { return m.cols }

// At returns the cell at row i, column j, counting from zero.
func (m *Matrix) At(i, j int) Scalar { return m.cells[i][j] }

func (m *Matrix) equal(n *Matrix) bool {
	if m.rows != n.rows || m.cols != n.cols {
		return false
	}
	for i := range m.cells {
		for j := range m.cells[i] {
			if !Equal(m.cells[i][j], n.cells[i][j]) {
				return false
			}
		}
	}
	return true
}

func (m *Matrix) sameShape(n *Matrix) {
	if m.rows != n.rows || m.cols != n.cols {
		panic(Errorf("matrix dimensions do not match: %dx%d and %dx%d", m.rows, m.cols, n.rows, n.cols))
	}
}

func (m *Matrix) transpose() *Matrix {
	return newMatrix(m.cols, m.rows, func(i, j int) Scalar {
		return m.cells[j][i]
	})
}

func (m *Matrix) add(n *Matrix) *Matrix {
	m.sameShape(n)
	return newMatrix(m.rows, m.cols, func(i, j int) Scalar {
		return addScalars(m.cells[i][j], n.cells[i][j])
	})
}

// mul is the matrix product: each cell is the dot product of a row of m
// and a column of n.
func (m *Matrix) mul(n *Matrix) *Matrix {
	if m.cols != n.rows {
		panic(Errorf("matrix dimensions do not match for multiplication: %dx%d and %dx%d", m.rows, m.cols, n.rows, n.cols))
	}
	t := n.transpose()
	return newMatrix(m.rows, n.cols, func(i, j int) Scalar {
		var sum Scalar = zeroTerm
		for k, x := range m.cells[i] {
			sum = addScalars(sum, mulScalars(x, t.cells[j][k]))
		}
		return sum
	})
}

// scale multiplies every cell by s. The scalar is the left operand.
func (m *Matrix) scale(s Scalar) *Matrix {
	return newMatrix(m.rows, m.cols, func(i, j int) Scalar {
		return mulScalars(s, m.cells[i][j])
	})
}

// tensor returns the block matrix whose (i, j) block is m[i][j] * n.
func (m *Matrix) tensor(n *Matrix) *Matrix {
	return newMatrix(m.rows*n.rows, m.cols*n.cols, func(i, j int) Scalar {
		return mulScalars(m.cells[i/n.rows][j/n.cols], n.cells[i%n.rows][j%n.cols])
	})
}

// Sprint prints each row between bars, with the cells right-aligned
// to the width of the widest.
func (m *Matrix) Sprint(conf *config.Config) string {
	strs := make([][]string, m.rows)
	width := 1
	for i, row := range m.cells {
		strs[i] = make([]string, m.cols)
		for j, x := range row {
			s := x.Sprint(conf)
			if len(s) > width {
				width = len(s)
			}
			strs[i][j] = s
		}
	}
	var b strings.Builder
	for i, row := range strs {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString("|")
		for _, s := range row {
			b.WriteString("  ")
			b.WriteString(strings.Repeat(" ", width-len(s)))
			b.WriteString(s)
		}
		b.WriteString("  |")
	}
	return b.String()
}

func (m *Matrix) String() string { return m.Sprint(debugConf) }
