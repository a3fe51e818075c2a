package matrix

import (
	"math"

	"github.com/katalvlaran/numkit/tuple"
)

// addSub computes out = a + sign*b for sign ∈ {+1, -1} into a fresh Dense
// sized to the right operand. Internal helper sharing validation and the
// flat-loop kernel between Add and Sub.
// Complexity: O(r*c) time and space.
func addSub(a, b *Dense, sign float64) *Dense {
	// Validate identical shapes before touching any cell.
	if a.r != b.r || a.c != b.c {
		panic(ErrUnbalanced)
	}

	// Single flat pass over the row-major storage.
	out := NewDense(b.r, b.c)
	for i := range out.data {
		out.data[i] = a.data[i] + sign*b.data[i]
	}

	return out
}

// Add returns the element-wise sum a[i][j] + b[i][j] as a fresh Dense.
// Operands must have identical dimensions; a mismatch is a caller bug and
// panics with ErrUnbalanced. Operands are not mutated.
// Complexity: O(r*c).
func Add(a, b *Dense) *Dense {
	return addSub(a, b, 1)
}

// Sub returns the element-wise difference a[i][j] - b[i][j] as a fresh Dense.
// Operands must have identical dimensions; a mismatch is a caller bug and
// panics with ErrUnbalanced. Operands are not mutated.
// Complexity: O(r*c).
func Sub(a, b *Dense) *Dense {
	return addSub(a, b, -1)
}

// Mul returns the matrix product of a and b: cell (i, j) is the dot product
// of a's row i and b's column j, computed via tuple.Dot. The result is
// allocated with a's row count and b's column count.
//
// The iteration runs the outer loop over b's row count and the inner loop
// over a's column count, with no shared-dimension check. Equal-size square
// operands are filled exactly; any other pairing fails fast with an
// unbalanced-dot or out-of-range panic from the row/column extraction or
// the result write.
// Complexity: O(n³) for n×n operands.
func Mul(a, b *Dense) *Dense {
	out := NewDense(a.r, b.c)
	for i := 0; i < b.r; i++ { // outer bound: right operand's row count
		for j := 0; j < a.c; j++ { // inner bound: left operand's column count
			out.Set(i, j, tuple.Dot(a.Row(i), b.Col(j)))
		}
	}

	return out
}

// Scale returns k·m[i][j] for every cell as a fresh Dense with m's
// dimensions. The operand is not mutated.
// Complexity: O(r*c).
func Scale(k float64, m *Dense) *Dense {
	out := NewDense(m.r, m.c)
	for i, v := range m.data {
		out.data[i] = v * k
	}

	return out
}

// Equal reports whether a and b have identical shapes and every pair of
// cells differs by at most eps in absolute value. A shape mismatch is an
// inequality, not an error.
// Complexity: O(r*c) time, O(1) space.
func Equal(a, b *Dense, eps float64) bool {
	if a.r != b.r || a.c != b.c {
		return false
	}
	for i := range a.data {
		if math.Abs(a.data[i]-b.data[i]) > eps {
			return false
		}
	}

	return true
}
