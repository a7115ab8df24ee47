package matrix

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

var (
	ErrShape    = errors.New("non-positive matrix shape")
	ErrLength   = errors.New("buffer length does not match shape")
	ErrOverflow = errors.New("matrix size overflows int")
)

// Matrix is a row/col accessor over a flat row-major buffer.
// Element (i, j) lives at offset i*cols+j of the buffer.
type Matrix struct {
	rows, cols int
	dense      *mat.Dense
}

// Size returns rows*cols, or ErrOverflow if the product does not fit in an int.
func Size(rows, cols int) (int, error) {
	if rows <= 0 || cols <= 0 {
		return 0, fmt.Errorf("%w: %dx%d", ErrShape, rows, cols)
	}
	if rows > math.MaxInt/cols {
		return 0, fmt.Errorf("%w: %dx%d", ErrOverflow, rows, cols)
	}
	return rows * cols, nil
}

// New wraps data without copying it.
func New(rows, cols int, data []float64) (*Matrix, error) {
	size, err := Size(rows, cols)
	if err != nil {
		return nil, err
	}
	if len(data) != size {
		return nil, fmt.Errorf("%w: got %d, want %dx%d=%d", ErrLength, len(data), rows, cols, size)
	}
	return &Matrix{rows: rows, cols: cols, dense: mat.NewDense(rows, cols, data)}, nil
}

// Zeros allocates a rows x cols matrix filled with zeros.
func Zeros(rows, cols int) (*Matrix, error) {
	if _, err := Size(rows, cols); err != nil {
		return nil, err
	}
	return &Matrix{rows: rows, cols: cols, dense: mat.NewDense(rows, cols, nil)}, nil
}

func (m *Matrix) Dims() (rows, cols int) {
	return m.rows, m.cols
}

func (m *Matrix) Rows() int {
	return m.rows
}

func (m *Matrix) Cols() int {
	return m.cols
}

// Offset maps (i, j) to its position in the flat buffer.
func (m *Matrix) Offset(i, j int) int {
	return i*m.cols + j
}

func (m *Matrix) At(i, j int) float64 {
	return m.dense.At(i, j)
}

func (m *Matrix) Set(i, j int, v float64) {
	m.dense.Set(i, j, v)
}

// Row returns row i as a slice sharing the backing buffer.
func (m *Matrix) Row(i int) []float64 {
	return m.dense.RawRowView(i)
}

// FlatAt reads the element at a flat offset in [0, rows*cols).
func (m *Matrix) FlatAt(offset int) float64 {
	return m.dense.At(offset/m.cols, offset%m.cols)
}

// Flat returns the backing row-major buffer.
func (m *Matrix) Flat() []float64 {
	return m.dense.RawMatrix().Data
}

// Dense exposes the gonum matrix for callers that want mat.Matrix semantics.
func (m *Matrix) Dense() *mat.Dense {
	return m.dense
}

// Clone returns a deep copy with its own buffer.
func (m *Matrix) Clone() *Matrix {
	return &Matrix{rows: m.rows, cols: m.cols, dense: mat.DenseCopyOf(m.dense)}
}
