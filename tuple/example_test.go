package tuple_test

import (
	"fmt"

	"github.com/katalvlaran/numkit/tuple"
)

// ExampleDot demonstrates the dot product of two balanced tuples.
func ExampleDot() {
	a := tuple.New(1, 2, 3)
	b := tuple.New(4, 5, 6)

	fmt.Println(tuple.Dot(a, b))
	// Output:
	// 32
}

// ExampleAdd demonstrates element-wise addition and the tuple rendering.
func ExampleAdd() {
	a := tuple.New(1.0, 2.0, 3.0)
	b := tuple.New(0.5, 0.5, 0.5)

	fmt.Println(tuple.Add(a, b))
	// Output:
	// ( 1.5, 2.5, 3.5 )
}

// ExampleScale demonstrates scalar-left multiplication.
func ExampleScale() {
	t := tuple.New(1, -2, 4)

	fmt.Println(tuple.Scale(3, t))
	// Output:
	// ( 3, -6, 12 )
}
