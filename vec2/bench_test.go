package vec2_test

import (
	"testing"

	"github.com/katalvlaran/numkit/vec2"
)

// BenchmarkDirection measures the quadrant-adjusted direction computation.
func BenchmarkDirection(b *testing.B) {
	v := vec2.New(-1.25, 3.5)

	for i := 0; i < b.N; i++ {
		_, _ = v.Direction()
	}
}

// BenchmarkMagnitude measures the Euclidean norm computation.
func BenchmarkMagnitude(b *testing.B) {
	v := vec2.New(3, 4)

	for i := 0; i < b.N; i++ {
		_ = v.Magnitude()
	}
}
