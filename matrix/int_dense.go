// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"
	"strings"
)

// intDenseErrorf mirrors denseErrorf for IntDense.
func intDenseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("IntDense.%s(%d,%d): %w", method, row, col, err)
}

// IntDense is a row-major int matrix with the same layout contract as Dense.
// It carries discrete data: particle state indices, backpointers, step choices.
type IntDense struct {
	r, c int
	data []int
}

var _ fmt.Stringer = (*IntDense)(nil)

// NewIntDense creates an r×c zero matrix.
// Returns ErrInvalidDimensions when rows<=0 or cols<=0.
func NewIntDense(rows, cols int) (*IntDense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}

	return &IntDense{r: rows, c: cols, data: make([]int, rows*cols)}, nil
}

// NewIntDenseFrom copies a flat row-major buffer into a new rows×cols matrix.
func NewIntDenseFrom(rows, cols int, data []int) (*IntDense, error) {
	m, err := NewIntDense(rows, cols)
	if err != nil {
		return nil, err
	}
	if len(data) != rows*cols {
		return nil, fmt.Errorf("NewIntDenseFrom: len %d != %d*%d: %w", len(data), rows, cols, ErrDimensionMismatch)
	}
	copy(m.data, data)

	return m, nil
}

// NewIntDenseFromRows builds a matrix from a slice of equally long rows.
func NewIntDenseFromRows(rows [][]int) (*IntDense, error) {
	if len(rows) == 0 {
		return nil, ErrInvalidDimensions
	}
	m, err := NewIntDense(len(rows), len(rows[0]))
	if err != nil {
		return nil, err
	}
	for i := range rows {
		if len(rows[i]) != m.c {
			return nil, fmt.Errorf("NewIntDenseFromRows: row %d has %d cols, want %d: %w",
				i, len(rows[i]), m.c, ErrDimensionMismatch)
		}
		copy(m.data[i*m.c:(i+1)*m.c], rows[i])
	}

	return m, nil
}

// Rows returns the row count.
func (m *IntDense) Rows() int { return m.r }

// Cols returns the column count.
func (m *IntDense) Cols() int { return m.c }

// Shape returns (Rows(), Cols()).
func (m *IntDense) Shape() (rows, cols int) { return m.r, m.c }

// Data returns the backing row-major buffer (aliases the matrix).
func (m *IntDense) Data() []int { return m.data }

// At returns the value at (row, col) or ErrOutOfRange.
func (m *IntDense) At(row, col int) (int, error) {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return 0, intDenseErrorf(ctxAt, row, col, ErrOutOfRange)
	}

	return m.data[Index(row, col, m.c)], nil
}

// Set stores v at (row, col) or returns ErrOutOfRange.
func (m *IntDense) Set(row, col, v int) error {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return intDenseErrorf(ctxSet, row, col, ErrOutOfRange)
	}
	m.data[Index(row, col, m.c)] = v

	return nil
}

// Row returns a copy of row i.
func (m *IntDense) Row(i int) ([]int, error) {
	if i < 0 || i >= m.r {
		return nil, intDenseErrorf(ctxRow, i, 0, ErrOutOfRange)
	}
	out := make([]int, m.c)
	copy(out, m.data[i*m.c:(i+1)*m.c])

	return out, nil
}

// Clone returns a deep copy.
func (m *IntDense) Clone() *IntDense {
	cp := make([]int, len(m.data))
	copy(cp, m.data)

	return &IntDense{r: m.r, c: m.c, data: cp}
}

// String renders rows as lines of comma-separated values.
func (m *IntDense) String() string {
	var b strings.Builder
	var i, j, base int
	for i = 0; i < m.r; i++ {
		b.WriteString(_fmtRowOpen)
		base = i * m.c
		for j = 0; j < m.c; j++ {
			b.WriteString(fmt.Sprintf("%d", m.data[base+j]))
			if j+1 < m.c {
				b.WriteString(_fmtSep)
			}
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}
