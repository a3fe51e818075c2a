// Package numkit is a small toolbox of numeric value types — generic
// tuples, dense matrices, and 2D geometric vectors with polar attributes.
//
// 🚀 What is numkit?
//
//	A tiny, dependency-light library of algebraic building blocks:
//		• Tuples: fixed-arity numeric sequences with dot product & arithmetic
//		• Matrices: dense row-major float64 grids with +, −, ×, scaling
//		• Vectors: 2D vectors with magnitude, direction & quadrant
//
// ✨ Why choose numkit?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Value semantics – operators never mutate their operands
//   - Pure Go – no cgo, no BLAS, no hidden machinery
//   - Predictable – exact, documented string renderings for every type
//
// Under the hood, everything is organized under three subpackages:
//
//	tuple/  — generic fixed-length numeric sequences & their operators
//	matrix/ — dense row-major matrices, element access & linear operators
//	vec2/   — 2D vectors, angles (degrees⇄radians) & quadrant classification
//
// Quick ASCII example:
//
//	    [ 1 2 ]   [ 5 6 ]   [ 19 22 ]
//	    [ 3 4 ] × [ 7 8 ] = [ 43 50 ]
//
//	every cell is a tuple dot product of a row and a column.
//
//	go get github.com/katalvlaran/numkit
package numkit
