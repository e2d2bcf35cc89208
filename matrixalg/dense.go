package matrixalg

import (
	"errors"
	"fmt"
)

// ErrInvalidDimensions indicates requested matrix dimensions are non-positive.
var ErrInvalidDimensions = errors.New("matrixalg: dimensions must be > 0")

// ErrIndexOutOfBounds indicates a row or column index is outside range.
var ErrIndexOutOfBounds = errors.New("matrixalg: index out of bounds")

func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a row-major matrix of float64 values, copied verbatim from
// the teacher's flat-backing-slice layout for cache-friendly access.
type Dense struct {
	r, c int
	data []float64
}

// NewDense returns an r×c Dense matrix initialized to zeros.
func NewDense(rows, cols int) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}
	return &Dense{r: rows, c: cols, data: make([]float64, rows*cols)}, nil
}

// Rows returns the row count.
func (m *Dense) Rows() int { return m.r }

// Cols returns the column count.
func (m *Dense) Cols() int { return m.c }

func (m *Dense) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return 0, denseErrorf("At", row, col, ErrIndexOutOfBounds)
	}
	return row*m.c + col, nil
}

// At retrieves the element at (row, col).
func (m *Dense) At(row, col int) (float64, error) {
	idx, err := m.indexOf(row, col)
	if err != nil {
		return 0, err
	}
	return m.data[idx], nil
}

// Set assigns v at (row, col).
func (m *Dense) Set(row, col int, v float64) error {
	idx, err := m.indexOf(row, col)
	if err != nil {
		return err
	}
	m.data[idx] = v
	return nil
}

// RowSums returns the sum of each row.
func (m *Dense) RowSums() []float64 {
	out := make([]float64, m.r)
	for i := 0; i < m.r; i++ {
		var s float64
		for j := 0; j < m.c; j++ {
			s += m.data[i*m.c+j]
		}
		out[i] = s
	}
	return out
}

// ColSums returns the sum of each column.
func (m *Dense) ColSums() []float64 {
	out := make([]float64, m.c)
	for i := 0; i < m.r; i++ {
		for j := 0; j < m.c; j++ {
			out[j] += m.data[i*m.c+j]
		}
	}
	return out
}

// Clone returns a deep copy.
func (m *Dense) Clone() *Dense {
	cp := make([]float64, len(m.data))
	copy(cp, m.data)
	return &Dense{r: m.r, c: m.c, data: cp}
}
