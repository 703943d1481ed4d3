package rpn

import (
	"errors"
	"math"
	"strconv"
)

// builtin is a named function or constant. Exactly one of fn and val is
// meaningful: constants have a nil fn.
type builtin struct {
	fn  func(float64) float64
	val float64
}

// builtins maps the names of functions and constants to their meanings.
// Angles are in radians.
var builtins = map[string]builtin{
	"sin":    {fn: math.Sin},
	"cos":    {fn: math.Cos},
	"tan":    {fn: math.Tan},
	"arcsin": {fn: math.Asin},
	"arccos": {fn: math.Acos},
	"arctan": {fn: math.Atan},
	"ln":     {fn: math.Log},

	"pi": {val: math.Pi},
	"π":  {val: math.Pi},
}

// lookfunc gets the function with the given name.
func lookfunc(name string) (func(float64) float64, bool) {
	b, ok := builtins[name]
	return b.fn, ok && b.fn != nil
}

// lookconst gets the value of the constant with the given name.
func lookconst(name string) (float64, bool) {
	b, ok := builtins[name]
	return b.val, ok && b.fn == nil
}

// Funcs returns the names of the functions recognized in expressions, in
// sorted order.
func Funcs() []string {
	return names(true)
}

// Consts returns the names of the constants recognized in expressions, in
// sorted order.
func Consts() []string {
	return names(false)
}

// names lists the names of either the functions or the constants.
func names(fn bool) []string {
	r := make([]string, 0, len(builtins))
	for k, b := range builtins {
		if (b.fn != nil) == fn {
			r = append(r, k)
		}
	}
	sortstrs(r)
	return r
}

// sortstrs sorts a string slice without using package sort because that has
// reflection and allocation problems.
func sortstrs(names []string) {
	for i := 1; i < len(names); i++ {
		for j := i; j > 0 && names[j] < names[j-1]; j-- {
			names[j], names[j-1] = names[j-1], names[j]
		}
	}
}

// call applies the named function to x. The name must be a function.
func call(name string, x float64) float64 {
	f, _ := lookfunc(name)
	return f(x)
}

// operand gets the value of a number or constant token.
func operand(t Token) (float64, error) {
	if v, ok := lookconst(t.Text); ok {
		return v, nil
	}
	if !isNumber(t.Text) {
		return 0, &TokenError{Col: t.Col, Text: t.Text, Kind: "number"}
	}
	// ParseFloat accepts both ".5" and "5.".
	v, err := strconv.ParseFloat(t.Text, 64)
	switch {
	case err == nil: // do nothing
	case errors.Is(err, strconv.ErrRange):
		// Too many digits. v is already +Inf.
	default:
		return 0, &TokenError{Col: t.Col, Text: t.Text, Kind: "number"}
	}
	return v, nil
}
