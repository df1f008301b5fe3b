package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/kr/pretty"
)

var (
	smallStep = flag.Bool("small-step", false, "evaluate with the small-step relation (the default)")
	bigStep   = flag.Bool("big-step", false, "evaluate with the big-step relation")
	trace     = flag.Bool("trace", false, "print every intermediate reduction step")
	dumpAST   = flag.Bool("ast", false, "dump the parse tree instead of evaluating")
	check     = flag.Bool("typecheck", false, "typecheck the program before evaluating")
)

func usage() {
	fmt.Fprint(os.Stderr, "usage: simpl [ -small-step | -big-step ] [ -trace ] [ -ast ] [ -typecheck ] [file]\n\n")
	fmt.Fprint(os.Stderr, "simpl evaluates an expression read from file or stdin.\n\n")
	flag.PrintDefaults()
	os.Exit(2)
}

func errExit(err error) {
	fmt.Fprintln(os.Stderr, err)
	os.Exit(1)
}

func main() {
	flag.Usage = usage
	flag.Parse()
	if *smallStep && *bigStep {
		usage()
	}

	src, err := readSource(flag.Args())
	if err != nil {
		errExit(err)
	}
	expr, err := parse(strings.NewReader(src))
	if err != nil {
		errExit(err)
	}

	if *dumpAST {
		pretty.Println(expr)
		return
	}
	if *check {
		if err := typecheck(expr); err != nil {
			errExit(err)
		}
	}

	switch {
	case *trace:
		steps, err := stepTrace(expr)
		for _, line := range formatTrace(steps) {
			fmt.Println(line)
		}
		if err != nil {
			errExit(err)
		}
	case *bigStep:
		v, err := evalBigStep(expr)
		if err != nil {
			errExit(err)
		}
		fmt.Println(formatExpr(v))
	default:
		v, err := evalSmallStep(expr)
		if err != nil {
			errExit(err)
		}
		fmt.Println(formatExpr(v))
	}
}

func readSource(args []string) (string, error) {
	if len(args) > 1 {
		usage()
	}
	if len(args) == 1 {
		b, err := os.ReadFile(args[0])
		return string(b), err
	}
	b, err := io.ReadAll(os.Stdin)
	return string(b), err
}
