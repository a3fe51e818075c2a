package matrix

import "errors"

// Sentinel errors for matrix construction and operators.
// Construction sentinels are returned and matched via errors.Is; the other
// two are panic values, reserved for programmer errors per package policy.
var (
	// ErrEmptyRows indicates FromRows received no rows at all.
	ErrEmptyRows = errors.New("matrix: rows must be non-empty")
	// ErrJaggedRows indicates FromRows received rows of differing widths.
	ErrJaggedRows = errors.New("matrix: rows must have equal length")
	// ErrUnbalanced indicates Add/Sub operands with different dimensions.
	ErrUnbalanced = errors.New("matrix: unbalanced matrices")
	// ErrOutOfRange indicates element access outside the valid index range.
	ErrOutOfRange = errors.New("matrix: index out of range")
)
