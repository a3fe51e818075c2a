// Package matrix provides a dense, row-major matrix of float64 values with
// element access, derived row/column views, and the classic linear operators.
//
// 🚀 What is a Dense matrix?
//
//	A rowCount×columnCount grid stored as one flat slice in row-major
//	order, plus:
//		• Add(a, b) / Sub(a, b) — element-wise, identical shapes required
//		• Mul(a, b)             — row·column dot products via tuple.Dot
//		• Scale(k, m)           — scalar multiple
//		• RowSlices/ColSlices   — on-demand views, never cached
//
// Error policy:
//
//	Shape mismatches in Add/Sub and out-of-range element access are caller
//	bugs — they panic (ErrUnbalanced, ErrOutOfRange) rather than return an
//	error. The single recoverable failure is FromRows on empty or jagged
//	input, which returns ErrEmptyRows or ErrJaggedRows; construction is the
//	one place malformed external data is expected.
//
// Rendering: String() yields one "[ v0 v1 … vn ]" line per row,
// newline-terminated.
package matrix
