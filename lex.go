package rpn

import (
	"strings"
	"unicode/utf8"

	lex "github.com/timtadh/lexmachine"
	"github.com/timtadh/lexmachine/machines"
)

// lexer is the compiled tokenizer. It is never modified after initialization,
// so scanners may be created from it concurrently.
var lexer = newLexer()

func newLexer() *lex.Lexer {
	l := lex.NewLexer()
	l.Add([]byte(`[0-9]+(\.[0-9]*)?`), token(KindNum))
	l.Add([]byte(`\.[0-9]+`), token(KindNum))
	for _, name := range Consts() {
		l.Add([]byte(name), token(KindNum))
	}
	for _, name := range Funcs() {
		l.Add([]byte(name), token(KindFunc))
	}
	for _, op := range strings.Split(Operators, "") {
		l.Add(literal(op), token(KindOp))
	}
	l.Add(literal("("), token(KindOpen))
	l.Add(literal(")"), token(KindClose))
	l.Add([]byte("( |\t|\n|\r)+"), skip)
	if err := l.Compile(); err != nil {
		panic("rpn: compiling lexer: " + err.Error())
	}
	return l
}

// literal escapes every byte of an ASCII string so that it matches only
// itself.
func literal(s string) []byte {
	return []byte(`\` + strings.Join(strings.Split(s, ""), `\`))
}

func token(kind Kind) lex.Action {
	return func(s *lex.Scanner, m *machines.Match) (interface{}, error) {
		return s.Token(int(kind), string(m.Bytes), m), nil
	}
}

func skip(*lex.Scanner, *machines.Match) (interface{}, error) {
	return nil, nil
}

// Tokenize splits an expression into tokens. Whitespace separates tokens but
// is otherwise ignored. A "-" at the start of the expression or following an
// operator or open parenthesis is unary minus, with kind KindNeg; any other
// "-" is subtraction.
//
// A character outside the grammar, two numbers with nothing between them, or
// a number rejected by StrictNumbers results in a *TokenError.
func Tokenize(src string, opts ...Option) ([]Token, error) {
	cfg := configure(opts)
	scan, err := lexer.Scanner([]byte(src))
	if err != nil {
		return nil, err
	}
	var toks []Token
	end := -1 // byte offset after the previous token
	for tok, err, eof := scan.Next(); !eof; tok, err, eof = scan.Next() {
		if err != nil {
			if ui, ok := err.(*machines.UnconsumedInput); ok {
				r, _ := utf8.DecodeRuneInString(src[ui.StartTC:])
				return nil, &TokenError{Col: column(src, ui.StartTC), Text: string(r)}
			}
			return nil, err
		}
		lt := tok.(*lex.Token)
		t := Token{
			Text: string(lt.Lexeme),
			Kind: Kind(lt.Type),
			Col:  column(src, lt.TC),
		}
		switch t.Kind {
		case KindNum:
			if cfg.strict && isNumber(t.Text) && (t.Text[0] == '.' || t.Text[len(t.Text)-1] == '.') {
				return nil, &TokenError{Col: t.Col, Text: t.Text, Kind: "number"}
			}
			if len(toks) > 0 && toks[len(toks)-1].Kind == KindNum && end == lt.TC {
				// E.g. 1.2.3 or 2pi.
				p := toks[len(toks)-1]
				return nil, &TokenError{Col: p.Col, Text: p.Text + t.Text, Kind: "number"}
			}
		case KindOp:
			if t.Text == "-" && unaryAfter(toks) {
				t.Kind = KindNeg
			}
		}
		toks = append(toks, t)
		end = lt.TC + len(lt.Lexeme)
	}
	tracer().Debugf("tokens of %q: %v", src, toks)
	return toks, nil
}

// unaryAfter returns whether a "-" following toks is unary.
func unaryAfter(toks []Token) bool {
	if len(toks) == 0 {
		return true
	}
	p := toks[len(toks)-1]
	return p.IsOperator() || p.Kind == KindOpen
}

// column converts a byte offset in src to a 1-based rune column.
func column(src string, off int) int {
	return utf8.RuneCountInString(src[:off]) + 1
}
