// Package vec2 provides a 2D geometric vector with derived polar
// attributes: Euclidean magnitude, a quadrant classification, and a
// quadrant-adjusted direction angle.
//
// 🚀 What is in vec2?
//
//	Three small value types:
//		• Vector   — x, y plus a Notation controlling only its rendering
//		• Angle    — one angular value held in degrees AND radians
//		• Quadrant — origin/first/second/third/fourth classification
//
// Quadrant rules (in order; first match wins):
//
//	(0,0)       → Origin
//	x≥1 ∧ y≥1   → First
//	x≤1 ∧ y≥1   → Second
//	x≤1 ∧ y≤1   → Third
//	otherwise   → Fourth
//
// The regions overlap on the x=1 and y=1 boundaries and small-magnitude
// points fall through to Third — e.g. (0.5, 0.5) classifies as Third, not
// First. Classification is ordered, and callers must not assume the usual
// sign-based quadrants.
//
// Direction is undefined at x = 0 (the underlying slope y/x has no value)
// and is reported with an ok=false second return, not an error.
//
// All operators return new vectors; nothing in the package mutates state.
package vec2
