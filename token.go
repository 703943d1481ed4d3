package rpn

import "strconv"

// Token is a lexical unit of an expression.
type Token struct {
	// Text is the token as it appeared in the source.
	Text string
	// Kind is the classification of the token.
	Kind Kind
	// Col is the 1-based rune column at which the token starts.
	Col int
}

// String returns the token's text, except that unary minus is written as @ to
// distinguish it from subtraction.
func (t Token) String() string {
	if t.Kind == KindNeg {
		return "@"
	}
	return t.Text
}

// IsOperand returns whether the token is a number or constant.
func (t Token) IsOperand() bool {
	return t.Kind == KindNum
}

// IsOperator returns whether the token is a binary operator or unary minus.
func (t Token) IsOperator() bool {
	return t.Kind == KindOp || t.Kind == KindNeg
}

// IsFunction returns whether the token names a function.
func (t Token) IsFunction() bool {
	return t.Kind == KindFunc
}

// Kind is the classification of a token.
type Kind int8

const (
	// KindNone is an unclassified token.
	KindNone Kind = iota
	// KindNum is a number or named constant.
	KindNum
	// KindOp is a binary operator.
	KindOp
	// KindNeg is unary minus.
	KindNeg
	// KindFunc is a function name.
	KindFunc
	// KindOpen is an open parenthesis.
	KindOpen
	// KindClose is a close parenthesis.
	KindClose
)

//go:generate go mod edit -require=golang.org/x/tools@v0.1.0
//go:generate go mod download
//go:generate go run golang.org/x/tools/cmd/stringer -type=Kind -trimprefix=Kind
//go:generate go mod tidy

// Operators contains the binary operators.
const Operators = "+-*/^"

// IsOperator returns whether text is exactly one binary operator.
func IsOperator(text string) bool {
	switch text {
	case "+", "-", "*", "/", "^":
		return true
	}
	return false
}

// IsFunction returns whether text is exactly the name of a function.
func IsFunction(text string) bool {
	_, ok := lookfunc(text)
	return ok
}

// IsOperand returns whether text is a number or the name of a constant. Both
// leading and trailing decimal points are allowed, so ".5", "5.", and "5" are
// all operands.
func IsOperand(text string) bool {
	if _, ok := lookconst(text); ok {
		return true
	}
	return isNumber(text)
}

// isNumber checks text against digits [ '.' digits ] | digits '.' | '.' digits.
func isNumber(text string) bool {
	var dig, dot bool
	for i := 0; i < len(text); i++ {
		switch c := text[i]; {
		case '0' <= c && c <= '9':
			dig = true
		case c == '.':
			if dot {
				return false
			}
			dot = true
		default:
			return false
		}
	}
	return dig
}

// Classify determines the kind of a token from its text. A "-" is always
// classified as KindOp, since its arity depends on the preceding token.
func Classify(text string) Kind {
	switch {
	case IsOperand(text):
		return KindNum
	case IsOperator(text):
		return KindOp
	case IsFunction(text):
		return KindFunc
	case text == "(":
		return KindOpen
	case text == ")":
		return KindClose
	default:
		return KindNone
	}
}

// Precedences of operators. Higher binds tighter.
const (
	precAdd  = 1
	precMul  = 2
	precPow  = 3
	precNeg  = 4
	precFunc = 5
)

// Prec returns the precedence of an operator or function token. Higher
// precedence binds more tightly. Any other token results in a *TokenError.
func Prec(t Token) (int, error) {
	switch t.Kind {
	case KindOp:
		switch t.Text {
		case "+", "-":
			return precAdd, nil
		case "*", "/":
			return precMul, nil
		case "^":
			return precPow, nil
		}
	case KindNeg:
		return precNeg, nil
	case KindFunc:
		if IsFunction(t.Text) {
			return precFunc, nil
		}
	}
	return 0, &TokenError{Col: t.Col, Text: t.Text, Kind: "operator"}
}

// prefix returns whether t is an operator which has no left operand.
func (t Token) prefix() bool {
	return t.Kind == KindNeg || t.Kind == KindFunc
}

func (t Token) debug() string {
	return t.Kind.String() + ":" + t.String() + "@" + strconv.Itoa(t.Col)
}
