package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/zephyrtronium/rpn"
)

func main() {
	log.SetFlags(0)
	var (
		inname, verb     string
		nl, echo         bool
		strict, rightpow bool
	)
	flag.StringVar(&inname, "in", "", "input file (default stdin if no args given)")
	flag.StringVar(&verb, "fmt", "%g", "result formatting string")
	flag.BoolVar(&nl, "n", false, "evaluate separate input lines as separate expressions")
	flag.BoolVar(&echo, "echo", false, "print postfix forms")
	flag.BoolVar(&strict, "strict", false, "reject numbers with a leading or trailing decimal point")
	flag.BoolVar(&rightpow, "rightpow", false, "make ^ right-associative")
	flag.Parse()

	var opts []rpn.Option
	if strict {
		opts = append(opts, rpn.StrictNumbers())
	}
	if rightpow {
		opts = append(opts, rpn.RightAssocPow())
	}

	var srcs []string
	f, err := infile(inname, flag.NArg() == 0)
	if err != nil {
		log.Fatal(err)
	}
	if f != nil {
		s, err := readExprs(f, nl)
		if err != nil {
			log.Fatal(err)
		}
		srcs = append(srcs, s...)
	}
	srcs = append(srcs, flag.Args()...)

	verb += "\n"
	status := 0
	for _, src := range srcs {
		if err := run(src, verb, echo, opts); err != nil {
			fmt.Println(err)
			status = 1
		}
	}
	os.Exit(status)
}

// run evaluates and prints one expression.
func run(src, verb string, echo bool, opts []rpn.Option) error {
	toks, err := rpn.Tokenize(src, opts...)
	if err != nil {
		return err
	}
	postfix, err := rpn.ToPostfix(toks, opts...)
	if err != nil {
		return err
	}
	if echo {
		fmt.Printf("%v : ", postfix)
	}
	r, err := rpn.Evaluate(postfix)
	if err != nil {
		return err
	}
	fmt.Printf(verb, r)
	return nil
}

// readExprs reads the whole input as one expression, or as one expression per
// non-blank line if lines is true.
func readExprs(f io.Reader, lines bool) ([]string, error) {
	if !lines {
		b, err := io.ReadAll(f)
		if err != nil {
			return nil, err
		}
		return []string{string(b)}, nil
	}
	var r []string
	scan := bufio.NewScanner(f)
	for scan.Scan() {
		if s := strings.TrimSpace(scan.Text()); s != "" {
			r = append(r, s)
		}
	}
	return r, scan.Err()
}

func infile(inname string, std bool) (io.Reader, error) {
	var f *os.File
	switch {
	case inname != "" && inname != "-":
		in, err := os.Open(inname)
		if err != nil {
			return nil, err
		}
		f = in
	case inname == "-", std:
		f = os.Stdin
	}
	if f == nil {
		return nil, nil
	}
	return bufio.NewReader(f), nil
}
