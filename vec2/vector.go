package vec2

import (
	"fmt"
	"math"
)

// Vector is an immutable 2D vector. Magnitude, quadrant and direction are
// always recomputed from x and y on access — never stored — so derived
// attributes cannot drift from the coordinates.
type Vector struct {
	x, y     float64
	notation Notation
}

// New builds a Vector with the default Component notation.
func New(x, y float64) Vector {
	return Vector{x: x, y: y, notation: Component}
}

// NewWithNotation builds a Vector with an explicit rendering notation.
func NewWithNotation(x, y float64, n Notation) Vector {
	return Vector{x: x, y: y, notation: n}
}

// X returns the x coordinate.
func (v Vector) X() float64 {
	return v.x
}

// Y returns the y coordinate.
func (v Vector) Y() float64 {
	return v.y
}

// Notation returns the rendering notation.
func (v Vector) Notation() Notation {
	return v.notation
}

// Magnitude returns the Euclidean norm √(x² + y²).
// Complexity: O(1).
func (v Vector) Magnitude() float64 {
	return math.Sqrt(v.x*v.x + v.y*v.y)
}

// Quadrant classifies the vector's endpoint; see Classify for the ordered
// boundary rules.
func (v Vector) Quadrant() Quadrant {
	return Classify(v.x, v.y)
}

// Direction returns the vector's angle measured from the positive x-axis,
// adjusted by quadrant, with ok=false when x == 0 (the slope y/x is
// undefined there — a legitimately absent quantity, not an error).
//
// The base angle is atan(y/x); the quadrant then shifts it in degrees:
// First keeps it, Second and Third add 180°, Fourth adds 360°. The Origin
// case shares the +360° branch but is unreachable here: x ≠ 0 rules the
// origin out before classification.
// Complexity: O(1).
func (v Vector) Direction() (Angle, bool) {
	// Undefined slope: report absence rather than fail.
	if v.x == 0 {
		return Angle{}, false
	}

	base := FromRadians(math.Atan(v.y / v.x))
	var deg float64
	switch v.Quadrant() {
	case First:
		deg = base.Degrees()
	case Second, Third:
		deg = base.Degrees() + 180
	default: // Fourth, and the unreachable Origin
		deg = base.Degrees() + 360
	}

	return FromDegrees(deg), true
}

// Add returns the component-wise sum a + b as a fresh Vector.
// The result carries the default notation; notation never propagates.
func Add(a, b Vector) Vector {
	return New(a.x+b.x, a.y+b.y)
}

// Sub returns the component-wise difference a - b as a fresh Vector.
// The result carries the default notation; notation never propagates.
func Sub(a, b Vector) Vector {
	return New(a.x-b.x, a.y-b.y)
}

// Scale returns k·v as a fresh Vector with the default notation.
func Scale(k float64, v Vector) Vector {
	return New(k*v.x, k*v.y)
}

// String implements fmt.Stringer per the vector's Notation. Every form ends
// with a trailing "magnitude: <value>" line.
// Complexity: O(1).
func (v Vector) String() string {
	mag := fmt.Sprintf("magnitude: %g", v.Magnitude())
	switch v.notation {
	case Column:
		return fmt.Sprintf("[ %g ]\n[ %g ]\n%s", v.x, v.y, mag)
	case Unit:
		return fmt.Sprintf("%g i + %g j\n%s", v.x, v.y, mag)
	default: // Component
		return fmt.Sprintf("(x: %g, y: %g)\n%s", v.x, v.y, mag)
	}
}
