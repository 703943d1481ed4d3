package rpn

import "strconv"

// TokenError indicates an unrecognized token: a character outside the
// grammar, a malformed number, or a token of the wrong kind for the stage
// handling it. It implements InputError.
type TokenError struct {
	// Col is the position of the token.
	Col int
	// Text is the token that was not understood.
	Text string
	// Kind is the type of token that was expected, if any. This may be
	// "number", "operator", or the empty string.
	Kind string
}

func (err *TokenError) Error() string {
	if err.Kind == "" {
		return errpos(err.Col, "invalid token "+strconv.Quote(err.Text))
	}
	return errpos(err.Col, "invalid "+err.Kind+" token "+strconv.Quote(err.Text))
}

func (err *TokenError) Pos() int {
	return err.Col
}

// BracketError is an error indicating unbalanced parentheses in the input.
// It implements InputError.
type BracketError struct {
	// Col is the position of the unmatched parenthesis.
	Col int
	// Left is the opening parenthesis, if it is the unmatched one.
	Left string
	// Right is the closing parenthesis, if it is the unmatched one.
	Right string
}

func (err *BracketError) Error() string {
	if err.Left == "" {
		return errpos(err.Col, "close bracket "+err.Right+" with no open bracket")
	}
	return errpos(err.Col, "open bracket "+err.Left+" with no close bracket")
}

func (err *BracketError) Pos() int {
	return err.Col
}

// OperandError indicates an operator or function without enough operands, or
// operands left over at the end of an expression. It implements InputError.
type OperandError struct {
	// Col is the position of the operator, or of the last token of the
	// expression if operands were left over.
	Col int
	// Op is the operator or function that was missing operands. If Op is
	// empty, then the expression ended with more than one value.
	Op string
	// Want is the number of operands needed, and Have is the number that
	// were available.
	Want, Have int
}

func (err *OperandError) Error() string {
	if err.Op == "" {
		return errpos(err.Col, strconv.Itoa(err.Have)+" values left at end (missing operator?)")
	}
	return errpos(err.Col, strconv.Quote(err.Op)+" needs "+strconv.Itoa(err.Want)+" operands, have "+strconv.Itoa(err.Have))
}

func (err *OperandError) Pos() int {
	return err.Col
}

// EmptyExpressionError is an error indicating an expression, or a pair of
// parentheses, with no tokens.
type EmptyExpressionError struct {
	// Col is the position of the end of the input, or of the open
	// parenthesis of an empty pair.
	Col int
}

func (err *EmptyExpressionError) Error() string {
	return errpos(err.Col, "no expression")
}

func (err *EmptyExpressionError) Pos() int {
	return err.Col
}

// errpos is a shortcut to create an error message with a position.
func errpos(pos int, msg string) string {
	return strconv.Itoa(pos) + ": " + msg
}

// InputError is an error with position information. Every error resulting from
// invalid input implements InputError.
type InputError interface {
	error
	// Pos returns the position of the error as the number of runes up to and
	// including the start of the token that caused the error.
	Pos() int
}

var (
	_ InputError = (*TokenError)(nil)
	_ InputError = (*BracketError)(nil)
	_ InputError = (*OperandError)(nil)
	_ InputError = (*EmptyExpressionError)(nil)
)
