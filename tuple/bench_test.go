package tuple_test

import (
	"testing"

	"github.com/katalvlaran/numkit/tuple"
)

// makeTuple builds a length-n float64 tuple with predictable contents.
func makeTuple(n int) tuple.Tuple[float64] {
	var t tuple.Tuple[float64]
	for i := 0; i < n; i++ {
		t.Append(float64(i)) // fill with increasing values
	}

	return t
}

// BenchmarkDot_1K measures the dot product over 1024-element tuples.
func BenchmarkDot_1K(b *testing.B) {
	x := makeTuple(1024)
	y := makeTuple(1024)

	b.ResetTimer() // ignore setup time
	for i := 0; i < b.N; i++ {
		_ = tuple.Dot(x, y)
	}
}

// BenchmarkAdd_1K measures element-wise addition over 1024-element tuples.
func BenchmarkAdd_1K(b *testing.B) {
	x := makeTuple(1024)
	y := makeTuple(1024)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = tuple.Add(x, y)
	}
}
