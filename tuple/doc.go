// Package tuple provides a generic, fixed-arity sequence of numeric values
// with vector-style arithmetic.
//
// 🚀 What is a Tuple?
//
//	An ordered list of numbers of one element type T — ints, uints or
//	floats — supporting indexed access, incremental growth via Append,
//	and four operators:
//		• Dot(a, b)   — Σ a[i]·b[i], the scalar dot product
//		• Add(a, b)   — element-wise sum
//		• Sub(a, b)   — element-wise difference
//		• Scale(k, t) — scalar multiple
//
// Balance rule:
//
//	Dot, Add and Sub require both operands to have equal length
//	("balanced" tuples). An unbalanced pair is a caller bug, detectable
//	before the call, so these operators panic with ErrUnbalanced rather
//	than returning an error. Validate lengths first when in doubt.
//
// Operators never mutate their operands; Add, Sub and Scale build a fresh
// Tuple, so values used in expressions stay stable.
//
// Rendering: String() yields "( v0, v1, …, vn )".
package tuple
