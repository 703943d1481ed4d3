package rpn

import (
	"math"
	"reflect"
	"testing"
)

func TestFuncs(t *testing.T) {
	want := []string{"arccos", "arcsin", "arctan", "cos", "ln", "sin", "tan"}
	if got := Funcs(); !reflect.DeepEqual(got, want) {
		t.Errorf("want %q, got %q", want, got)
	}
	for _, name := range want {
		if !IsFunction(name) {
			t.Errorf("%q is not a function", name)
		}
	}
}

func TestConsts(t *testing.T) {
	want := []string{"pi", "π"}
	if got := Consts(); !reflect.DeepEqual(got, want) {
		t.Errorf("want %q, got %q", want, got)
	}
}

func TestBuiltinKinds(t *testing.T) {
	for _, name := range Funcs() {
		if IsOperand(name) {
			t.Errorf("function %q is an operand", name)
		}
		if _, ok := lookconst(name); ok {
			t.Errorf("function %q has a constant value", name)
		}
	}
	for _, name := range Consts() {
		if IsFunction(name) {
			t.Errorf("constant %q is a function", name)
		}
		if _, ok := lookfunc(name); ok {
			t.Errorf("constant %q has a function", name)
		}
	}
	if n := len(Funcs()) + len(Consts()); n != len(builtins) {
		t.Errorf("%d names listed for %d builtins", n, len(builtins))
	}
}

func TestCall(t *testing.T) {
	cases := []struct {
		name string
		x, r float64
	}{
		{"sin", math.Pi / 2, 1},
		{"cos", 0, 1},
		{"tan", 0, 0},
		{"arcsin", 1, math.Pi / 2},
		{"arccos", 1, 0},
		{"arctan", 0, 0},
		{"ln", math.E, 1},
	}
	for _, c := range cases {
		if r := call(c.name, c.x); math.Abs(r-c.r) > 1e-15 {
			t.Errorf("%s(%g): want %g, got %g", c.name, c.x, c.r, r)
		}
	}
}

func TestOperand(t *testing.T) {
	cases := []struct {
		text string
		r    float64
	}{
		{"0", 0},
		{"1.5", 1.5},
		{".5", 0.5},
		{"5.", 5},
		{"pi", math.Pi},
		{"π", math.Pi},
	}
	for _, c := range cases {
		r, err := operand(Token{Text: c.text, Kind: KindNum})
		if err != nil {
			t.Errorf("operand %q: %v", c.text, err)
			continue
		}
		if r != c.r {
			t.Errorf("operand %q: want %g, got %g", c.text, c.r, r)
		}
	}
	for _, text := range []string{"", ".", "1e3", "0x10", "inf", "1.2.3"} {
		if r, err := operand(Token{Text: text, Kind: KindNum}); err == nil {
			t.Errorf("operand %q: no error; got %g", text, r)
		}
	}
}
