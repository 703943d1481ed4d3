package rpn

import (
	"io"
	"math"
	"strings"

	"github.com/emirpasic/gods/stacks/arraystack"
)

// valstack is a stack of intermediate results.
type valstack struct {
	s *arraystack.Stack
}

func (v valstack) push(x float64) {
	v.s.Push(x)
}

// pop removes the top n values and returns them in the order they were
// pushed. If there are fewer than n values, the result is an OperandError
// for the operator t.
func (v valstack) pop(t Token, n int) ([]float64, error) {
	if v.s.Size() < n {
		return nil, &OperandError{Col: t.Col, Op: t.String(), Want: n, Have: v.s.Size()}
	}
	r := make([]float64, n)
	for i := n - 1; i >= 0; i-- {
		x, _ := v.s.Pop()
		r[i] = x.(float64)
	}
	return r, nil
}

// Evaluate reduces a postfix token sequence, as produced by ToPostfix, to its
// value. Operators which lack operands, or operands left without operators,
// result in an *OperandError. An empty sequence results in an
// *EmptyExpressionError. Parentheses and unclassified tokens result in a
// *TokenError.
//
// Arithmetic follows float64 rules: dividing by zero gives an infinity, and
// arguments outside a function's domain give NaN.
func Evaluate(postfix []Token) (float64, error) {
	if len(postfix) == 0 {
		return 0, &EmptyExpressionError{Col: 1}
	}
	vals := valstack{arraystack.New()}
	for _, t := range postfix {
		switch t.Kind {
		case KindNum:
			x, err := operand(t)
			if err != nil {
				return 0, err
			}
			vals.push(x)
		case KindNeg:
			v, err := vals.pop(t, 1)
			if err != nil {
				return 0, err
			}
			vals.push(-v[0])
		case KindOp:
			v, err := vals.pop(t, 2)
			if err != nil {
				return 0, err
			}
			l, r := v[0], v[1]
			switch t.Text {
			case "+":
				vals.push(l + r)
			case "-":
				vals.push(l - r)
			case "*":
				vals.push(l * r)
			case "/":
				vals.push(l / r)
			case "^":
				vals.push(math.Pow(l, r))
			default:
				return 0, &TokenError{Col: t.Col, Text: t.Text, Kind: "operator"}
			}
		case KindFunc:
			if !IsFunction(t.Text) {
				return 0, &TokenError{Col: t.Col, Text: t.Text, Kind: "operator"}
			}
			v, err := vals.pop(t, 1)
			if err != nil {
				return 0, err
			}
			vals.push(call(t.Text, v[0]))
		default:
			return 0, &TokenError{Col: t.Col, Text: t.Text}
		}
	}
	if n := vals.s.Size(); n != 1 {
		return 0, &OperandError{Col: postfix[len(postfix)-1].Col, Want: 1, Have: n}
	}
	r, _ := vals.s.Pop()
	return r.(float64), nil
}

// EvalString tokenizes, converts, and evaluates an expression.
func EvalString(src string, opts ...Option) (float64, error) {
	toks, err := Tokenize(src, opts...)
	if err != nil {
		return 0, err
	}
	if len(toks) == 0 {
		return 0, &EmptyExpressionError{Col: column(src, len(src))}
	}
	postfix, err := ToPostfix(toks, opts...)
	if err != nil {
		return 0, err
	}
	return Evaluate(postfix)
}

// Eval reads an entire expression from src and evaluates it.
func Eval(src io.Reader, opts ...Option) (float64, error) {
	var b strings.Builder
	if _, err := io.Copy(&b, src); err != nil {
		return 0, err
	}
	return EvalString(b.String(), opts...)
}
