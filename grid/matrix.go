package grid

import "fmt"

// Matrix is an immutable rows×cols table of codes.
// Cells are stored row-major; the zero value is not usable, build one with NewMatrix.
type Matrix struct {
	rows, cols int
	cells      []Code
}

// NewMatrix constructs a Matrix from a non-empty, rectangular table.
// It deep-copies the input so later changes to values do not leak in.
// Returns ErrInvalidShape if values has no rows, the first row is empty,
// or any row length differs from the first.
// Complexity: O(rows×cols) time and memory.
func NewMatrix(values [][]Code) (*Matrix, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, fmt.Errorf("%w: need at least one row and one column", ErrInvalidShape)
	}
	h, w := len(values), len(values[0])
	for y, row := range values {
		if len(row) != w {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrInvalidShape, y, len(row), w)
		}
	}
	cells := make([]Code, 0, h*w)
	for _, row := range values {
		cells = append(cells, row...)
	}

	return &Matrix{rows: h, cols: w, cells: cells}, nil
}

// MustMatrix is like NewMatrix but panics on error.
// Intended for tests and package-level fixtures.
func MustMatrix(values [][]Code) *Matrix {
	m, err := NewMatrix(values)
	if err != nil {
		panic(err)
	}

	return m
}

// Rows returns the number of rows.
func (m *Matrix) Rows() int { return m.rows }

// Cols returns the number of columns.
func (m *Matrix) Cols() int { return m.cols }

// InBounds reports whether p lies within the matrix.
// Complexity: O(1).
func (m *Matrix) InBounds(p Position) bool {
	return p.Row >= 0 && p.Row < m.rows && p.Col >= 0 && p.Col < m.cols
}

// ValueAt returns the code stored at p, or ErrOutOfBounds.
// Complexity: O(1).
func (m *Matrix) ValueAt(p Position) (Code, error) {
	if !m.InBounds(p) {
		return "", fmt.Errorf("%w: %v in %dx%d matrix", ErrOutOfBounds, p, m.rows, m.cols)
	}

	return m.cells[m.index(p)], nil
}

// Values reads the matrix along path and returns the visited codes in order.
// Returns ErrOutOfBounds for the first position outside the matrix.
// Complexity: O(len(path)).
func (m *Matrix) Values(path []Position) ([]Code, error) {
	out := make([]Code, len(path))
	for i, p := range path {
		c, err := m.ValueAt(p)
		if err != nil {
			return nil, err
		}
		out[i] = c
	}

	return out, nil
}

// Cells returns a deep copy of the table.
// Complexity: O(rows×cols).
func (m *Matrix) Cells() [][]Code {
	out := make([][]Code, m.rows)
	for y := 0; y < m.rows; y++ {
		out[y] = make([]Code, m.cols)
		copy(out[y], m.cells[y*m.cols:(y+1)*m.cols])
	}

	return out
}

// index maps p to its row-major offset: Row*cols + Col.
func (m *Matrix) index(p Position) int {
	return p.Row*m.cols + p.Col
}
