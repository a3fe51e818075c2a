package matrix_test

import (
	"fmt"

	"github.com/katalvlaran/numkit/matrix"
)

// ExampleMul demonstrates a 2×2 matrix product and the row rendering.
func ExampleMul() {
	a, _ := matrix.FromRows([][]float64{
		{1, 2},
		{3, 4},
	})
	b, _ := matrix.FromRows([][]float64{
		{5, 6},
		{7, 8},
	})

	fmt.Print(matrix.Mul(a, b))
	// Output:
	// [ 19 22 ]
	// [ 43 50 ]
}

// ExampleFromRows demonstrates graceful failure on jagged input.
func ExampleFromRows() {
	_, err := matrix.FromRows([][]float64{
		{1, 2},
		{3},
	})

	fmt.Println(err)
	// Output:
	// matrix: rows must have equal length
}

// ExampleScale demonstrates scalar multiplication.
func ExampleScale() {
	m, _ := matrix.FromRows([][]float64{
		{1, -2},
		{0.5, 4},
	})

	fmt.Print(matrix.Scale(2, m))
	// Output:
	// [ 2 -4 ]
	// [ 1 8 ]
}
