package tuple

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/exp/constraints"
)

// ErrUnbalanced indicates a binary operation over tuples of different lengths.
// Dot, Add and Sub panic with this sentinel: a length mismatch is a caller
// bug, not a recoverable runtime condition.
var ErrUnbalanced = errors.New("tuple: unbalanced tuples")

// Number constrains tuple elements to the built-in numeric types:
// anything supporting +, -, * and a zero value.
type Number interface {
	constraints.Integer | constraints.Float
}

// Tuple is an ordered, fixed-arity sequence of numeric values.
// The zero value is an empty tuple, ready for Append.
type Tuple[T Number] struct {
	values []T
}

// New builds a Tuple from the given values.
// The input is copied, so later changes to the caller's slice do not leak in.
// Complexity: O(n).
func New[T Number](values ...T) Tuple[T] {
	vs := make([]T, len(values))
	copy(vs, values)

	return Tuple[T]{values: vs}
}

// Len returns the number of elements.
// Complexity: O(1).
func (t Tuple[T]) Len() int {
	return len(t.values)
}

// At returns the element at index i.
// An index outside [0, Len()) is a caller bug and panics.
// Complexity: O(1).
func (t Tuple[T]) At(i int) T {
	return t.values[i]
}

// Set assigns v at index i.
// An index outside [0, Len()) is a caller bug and panics.
// Complexity: O(1).
func (t *Tuple[T]) Set(i int, v T) {
	t.values[i] = v
}

// Append grows the tuple by one element.
// Complexity: amortized O(1).
func (t *Tuple[T]) Append(v T) {
	t.values = append(t.values, v)
}

// Values returns a copy of the underlying elements, preserving order.
// The copy keeps the tuple itself immutable from the outside.
// Complexity: O(n).
func (t Tuple[T]) Values() []T {
	out := make([]T, len(t.values))
	copy(out, t.values)

	return out
}

// Dot returns the dot product Σ a[i]·b[i], accumulated from T's zero value.
// Panics with ErrUnbalanced when the operands differ in length.
// Complexity: O(n).
func Dot[T Number](a, b Tuple[T]) T {
	// Validate balance before touching any element.
	if a.Len() != b.Len() {
		panic(ErrUnbalanced)
	}

	var sum T // additive identity accumulator
	for i := 0; i < a.Len(); i++ {
		sum += a.values[i] * b.values[i]
	}

	return sum
}

// Add returns the element-wise sum a[i] + b[i] as a fresh Tuple,
// built by repeated Append in input order. Operands are not mutated.
// Panics with ErrUnbalanced when the operands differ in length.
// Complexity: O(n).
func Add[T Number](a, b Tuple[T]) Tuple[T] {
	if a.Len() != b.Len() {
		panic(ErrUnbalanced)
	}

	var out Tuple[T]
	for i := 0; i < a.Len(); i++ {
		out.Append(a.values[i] + b.values[i])
	}

	return out
}

// Sub returns the element-wise difference a[i] - b[i] as a fresh Tuple,
// built by repeated Append in input order. Operands are not mutated.
// Panics with ErrUnbalanced when the operands differ in length.
// Complexity: O(n).
func Sub[T Number](a, b Tuple[T]) Tuple[T] {
	if a.Len() != b.Len() {
		panic(ErrUnbalanced)
	}

	var out Tuple[T]
	for i := 0; i < a.Len(); i++ {
		out.Append(a.values[i] - b.values[i])
	}

	return out
}

// Scale returns k·t[i] for every element, as a fresh Tuple.
// No length constraint applies; the operand is not mutated.
// Complexity: O(n).
func Scale[T Number](k T, t Tuple[T]) Tuple[T] {
	var out Tuple[T]
	for _, v := range t.values {
		out.Append(k * v)
	}

	return out
}

// String implements fmt.Stringer as "( v0, v1, …, vn )".
// Complexity: O(n) for string construction.
func (t Tuple[T]) String() string {
	parts := make([]string, len(t.values))
	for i, v := range t.values {
		parts[i] = fmt.Sprintf("%v", v)
	}

	return "( " + strings.Join(parts, ", ") + " )"
}
