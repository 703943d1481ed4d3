//go:build go1.18
// +build go1.18

package rpn_test

import (
	"errors"
	"testing"

	"github.com/zephyrtronium/rpn"
)

func FuzzEval(f *testing.F) {
	f.Add("1+1")
	f.Add("-(2^-3)*sin(π)")
	f.Add(")(")
	f.Add("1.2.3")
	f.Fuzz(func(t *testing.T, s string) {
		_, err := rpn.EvalString(s)
		if err == nil {
			return
		}
		var ie rpn.InputError
		if !errors.As(err, &ie) {
			t.Errorf("evaluating %q: error %#v is not InputError", s, err)
		}
	})
}

func FuzzToPostfix(f *testing.F) {
	f.Add("4-2*5+10")
	f.Add("--3")
	f.Add("arcsin(ln 2)")
	f.Add("1 2 +")
	f.Add("(1+)")
	f.Fuzz(func(t *testing.T, s string) {
		toks, err := rpn.Tokenize(s)
		if err != nil {
			return
		}
		postfix, err := rpn.ToPostfix(toks)
		if err != nil {
			return
		}
		for _, tok := range postfix {
			if tok.Kind == rpn.KindOpen || tok.Kind == rpn.KindClose {
				t.Errorf("converting %q: parenthesis in postfix %v", s, postfix)
			}
		}
		if len(postfix) == 0 {
			return
		}
		// Anything the converter accepts has exactly the operands each
		// operator needs.
		if _, err := rpn.Evaluate(postfix); err != nil {
			t.Errorf("evaluating %q as %v: %v", s, postfix, err)
		}
	})
}
