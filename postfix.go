package rpn

import (
	"github.com/emirpasic/gods/stacks/arraystack"
)

// ToPostfix reorders a token sequence from infix to postfix using the
// shunting-yard algorithm. Parentheses are removed, and every operator and
// function follows its operands.
//
// Binary operators of equal precedence, including ^ unless RightAssocPow is
// given, group left to right. Unary minus and functions bind tighter than any
// binary operator.
//
// Operands and binary operators must alternate. A binary operator, or the end
// of the input, where an operand should begin results in an *OperandError for
// the operator left without its operand. A number, function, or open
// parenthesis where a binary operator should be results in a *TokenError.
// Empty parentheses result in an *EmptyExpressionError. A parenthesis without
// a partner results in a *BracketError. A token that is not a number,
// operator, function, or parenthesis results in a *TokenError.
func ToPostfix(toks []Token, opts ...Option) ([]Token, error) {
	cfg := configure(opts)
	ops := arraystack.New()
	out := make([]Token, 0, len(toks))
	// want is true where the next token must begin an operand.
	want := true
	depth := 0
	var prev *Token
	for i, t := range toks {
		switch t.Kind {
		case KindNum:
			if !want {
				return nil, &TokenError{Col: t.Col, Text: t.Text, Kind: "operator"}
			}
			out = append(out, t)
			want = false
		case KindNeg, KindFunc, KindOpen:
			if !want {
				return nil, &TokenError{Col: t.Col, Text: t.Text, Kind: "operator"}
			}
			if t.Kind == KindOpen {
				depth++
				ops.Push(t)
				break
			}
			if _, err := Prec(t); err != nil {
				return nil, err
			}
			// Prefix operators have no left operand to compete for, so they
			// never displace the stack.
			ops.Push(t)
		case KindOp:
			if want {
				return nil, missing(prev, t)
			}
			p, err := Prec(t)
			if err != nil {
				return nil, err
			}
			for {
				v, ok := ops.Peek()
				if !ok {
					break
				}
				top := v.(Token)
				if top.Kind == KindOpen {
					break
				}
				q, err := Prec(top)
				if err != nil {
					return nil, err
				}
				if q < p || q == p && cfg.rpow && t.Text == "^" {
					break
				}
				ops.Pop()
				out = append(out, top)
			}
			ops.Push(t)
			want = true
		case KindClose:
			if depth == 0 {
				return nil, &BracketError{Col: t.Col, Right: t.Text}
			}
			if want {
				return nil, missing(prev, t)
			}
			depth--
			for {
				v, ok := ops.Pop()
				if !ok {
					return nil, &BracketError{Col: t.Col, Right: t.Text}
				}
				top := v.(Token)
				if top.Kind == KindOpen {
					break
				}
				out = append(out, top)
			}
		default:
			return nil, &TokenError{Col: t.Col, Text: t.Text}
		}
		prev = &toks[i]
	}
	if want && prev != nil && prev.Kind != KindOpen {
		return nil, missing(prev, Token{})
	}
	for !ops.Empty() {
		v, _ := ops.Pop()
		top := v.(Token)
		if top.Kind == KindOpen {
			return nil, &BracketError{Col: top.Col, Left: top.Text}
		}
		out = append(out, top)
	}
	tracer().Debugf("postfix: %v", out)
	return out, nil
}

// missing creates the error for a binary operator or close parenthesis t
// appearing where an operand should begin, just after prev. A zero t means
// the input ended there. The error blames the operator that lacks its right
// operand, or t itself if there is no such operator.
func missing(prev *Token, t Token) error {
	switch {
	case prev == nil:
		return &OperandError{Col: t.Col, Op: t.String(), Want: 2}
	case prev.Kind == KindOp:
		return &OperandError{Col: prev.Col, Op: prev.String(), Want: 2, Have: 1}
	case prev.prefix():
		return &OperandError{Col: prev.Col, Op: prev.String(), Want: 1}
	case t.Kind == KindClose:
		// Nothing between the parentheses.
		return &EmptyExpressionError{Col: prev.Col}
	default:
		return &OperandError{Col: t.Col, Op: t.String(), Want: 2}
	}
}
