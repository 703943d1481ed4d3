// Package rpn implements a floating-point calculator by way of Reverse Polish
// notation.
//
// An expression passes through three stages, each usable on its own:
// Tokenize splits the text into tokens, ToPostfix reorders them into postfix
// with the shunting-yard algorithm, and Evaluate reduces the postfix sequence
// on a value stack. EvalString composes all three.
//
// The grammar is numbers, the binary operators + - * / ^, unary minus,
// parentheses, the constant pi (also written π), and the functions sin, cos,
// tan, arcsin, arccos, arctan, and ln. Angles are in radians. "-" is unary at
// the start of an expression or after an operator or open parenthesis, and
// unary minus binds tighter than any binary operator, so "-2^2" is 4.
// Operators of equal precedence group to the left, including ^: "2^3^2" is
// 64 unless the RightAssocPow option is given.
//
// Division by zero, out-of-domain function arguments, and the like produce
// infinities and NaNs as usual for float64. Malformed input produces an error
// implementing InputError.
package rpn

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces to the global syntax tracer.
func tracer() tracing.Trace {
	return gtrace.SyntaxTracer
}
