package matrix

import (
	"fmt"

	"github.com/katalvlaran/numkit/tuple"
)

// Dense is a row-major matrix of float64 values.
// r is rows, c is columns, and data holds r*c elements in row-major order.
// A Dense is never resized after construction; only Set mutates it.
type Dense struct {
	r, c int       // number of rows and columns
	data []float64 // flat backing storage, length == r*c
}

// NewDense creates an r×c Dense matrix initialized to zeros.
// Complexity: O(r*c) time and memory.
func NewDense(rows, cols int) *Dense {
	return &Dense{r: rows, c: cols, data: make([]float64, rows*cols)}
}

// FromRows creates a Dense from nested row data.
// Stage 1 (Validate): the outer slice must be non-empty and every row must
// have the width of the first one.
// Stage 2 (Prepare): allocate flat backing storage.
// Stage 3 (Finalize): copy rows in order and return, or report
// ErrEmptyRows / ErrJaggedRows — the only recoverable failures in the package.
// Complexity: O(r*c) time and memory.
func FromRows(rows [][]float64) (*Dense, error) {
	// Validate presence of at least one row.
	if len(rows) == 0 {
		return nil, ErrEmptyRows
	}
	// Validate rectangularity against the first row's width.
	width := len(rows[0])
	for _, row := range rows {
		if len(row) != width {
			return nil, ErrJaggedRows
		}
	}

	// Copy row data into flat row-major storage.
	m := NewDense(len(rows), width)
	for i, row := range rows {
		copy(m.data[i*width:(i+1)*width], row)
	}

	return m, nil
}

// Rows returns the number of rows in the matrix.
// Complexity: O(1).
func (m *Dense) Rows() int {
	return m.r // return stored row count
}

// Cols returns the number of columns in the matrix.
// Complexity: O(1).
func (m *Dense) Cols() int {
	return m.c // return stored column count
}

// indexOf computes the flat index for (row, col), panicking with
// ErrOutOfRange on invalid indices.
// The row upper bound is inclusive: row == Rows() passes this check, and the
// subsequent storage access fails out of bounds instead. Callers must stay
// within 0 ≤ row < Rows() regardless.
// Complexity: O(1).
func (m *Dense) indexOf(row, col int) int {
	// Validate row index (inclusive upper bound, see above).
	if row < 0 || row > m.r {
		panic(ErrOutOfRange)
	}
	// Validate column index.
	if col < 0 || col >= m.c {
		panic(ErrOutOfRange)
	}

	// Compute flat offset.
	return row*m.c + col
}

// At retrieves the element at (row, col).
// Access outside the valid range is a caller bug and panics.
// Complexity: O(1).
func (m *Dense) At(row, col int) float64 {
	return m.data[m.indexOf(row, col)]
}

// Set assigns value v at (row, col).
// Access outside the valid range is a caller bug and panics.
// Complexity: O(1).
func (m *Dense) Set(row, col int, v float64) {
	m.data[m.indexOf(row, col)] = v
}

// Row returns row i as a tuple, ready for tuple.Dot.
// The tuple copies the row, so it always reflects the grid at call time
// and never aliases the backing storage.
// Complexity: O(c).
func (m *Dense) Row(i int) tuple.Tuple[float64] {
	return tuple.New(m.data[i*m.c : (i+1)*m.c]...)
}

// Col returns column j as a tuple, gathering the j-th element of every row
// in row order.
// Complexity: O(r).
func (m *Dense) Col(j int) tuple.Tuple[float64] {
	var out tuple.Tuple[float64]
	for i := 0; i < m.r; i++ {
		out.Append(m.data[i*m.c+j])
	}

	return out
}

// RowSlices splits the flat storage into Rows() contiguous chunks of
// length Cols(). The view is recomputed on every call — never cached — so
// it always reflects the current grid contents.
// Complexity: O(r*c).
func (m *Dense) RowSlices() [][]float64 {
	out := make([][]float64, m.r)
	for i := 0; i < m.r; i++ {
		row := make([]float64, m.c)
		copy(row, m.data[i*m.c:(i+1)*m.c])
		out[i] = row
	}

	return out
}

// ColSlices gathers, for each column index, the i-th element of every row
// in row order. Recomputed on every call, never cached.
// Complexity: O(r*c).
func (m *Dense) ColSlices() [][]float64 {
	out := make([][]float64, m.c)
	for j := 0; j < m.c; j++ {
		col := make([]float64, m.r)
		for i := 0; i < m.r; i++ {
			col[i] = m.data[i*m.c+j]
		}
		out[j] = col
	}

	return out
}

// Clone returns a deep copy of the Dense matrix.
// Complexity: O(r*c) time and memory for copy.
func (m *Dense) Clone() *Dense {
	// Allocate new slice for data copy
	copyData := make([]float64, len(m.data))
	// Copy all elements into new slice
	copy(copyData, m.data)

	return &Dense{r: m.r, c: m.c, data: copyData}
}

// String implements fmt.Stringer: one "[ v0 v1 … vn ]" line per row,
// newline-terminated.
// Complexity: O(r*c) for string construction.
func (m *Dense) String() string {
	var s string
	var i, j int
	for i = 0; i < m.r; i++ { // iterate over rows
		s += "["                  // open row
		for j = 0; j < m.c; j++ { // iterate over columns
			// compute flat index directly for performance
			s += fmt.Sprintf(" %g", m.data[i*m.c+j])
		}
		s += " ]\n" // close row
	}

	return s
}
