package vec2

import "math"

// Quadrant classifies a 2D point against the (0,0) and (1,1) thresholds.
type Quadrant int

const (
	// Origin is the exact point (0, 0).
	Origin Quadrant = iota
	// First covers x ≥ 1 and y ≥ 1.
	First
	// Second covers x ≤ 1 and y ≥ 1, when First did not match.
	Second
	// Third covers x ≤ 1 and y ≤ 1, when neither First nor Second matched.
	Third
	// Fourth covers everything else.
	Fourth
)

// String implements fmt.Stringer with the lowercase quadrant name.
func (q Quadrant) String() string {
	switch q {
	case Origin:
		return "origin"
	case First:
		return "first"
	case Second:
		return "second"
	case Third:
		return "third"
	case Fourth:
		return "fourth"
	default:
		return "unknown"
	}
}

// Classify returns the Quadrant of (x, y).
// The rules are applied in declaration order and the first match wins; the
// regions deliberately overlap on the x=1 and y=1 boundaries, so evaluation
// order is part of the contract. Recomputed from scratch on every call.
// Complexity: O(1).
func Classify(x, y float64) Quadrant {
	switch {
	case x == 0 && y == 0:
		return Origin
	case x >= 1 && y >= 1:
		return First
	case x <= 1 && y >= 1:
		return Second
	case x <= 1 && y <= 1:
		return Third
	default:
		return Fourth
	}
}

// Angle is one angular value held simultaneously in degrees and radians.
// Both fields are derived from whichever unit was supplied at construction
// and never drift apart. Immutable after construction.
type Angle struct {
	degrees float64
	radians float64
}

// FromDegrees builds an Angle from degrees, deriving radians = d·π/180.
func FromDegrees(d float64) Angle {
	return Angle{degrees: d, radians: d * math.Pi / 180}
}

// FromRadians builds an Angle from radians, deriving degrees = r·180/π.
func FromRadians(r float64) Angle {
	return Angle{degrees: r * 180 / math.Pi, radians: r}
}

// Degrees returns the angle in degrees.
func (a Angle) Degrees() float64 {
	return a.degrees
}

// Radians returns the angle in radians.
func (a Angle) Radians() float64 {
	return a.radians
}

// Notation selects a Vector's textual rendering; it never affects algebra.
type Notation int

const (
	// Component renders "(x: x, y: y)". The default.
	Component Notation = iota
	// Column renders two bracketed lines, "[ x ]" then "[ y ]".
	Column
	// Unit renders the "x i + y j" form.
	Unit
)
