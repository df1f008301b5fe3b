package main

import "strings"

// The two interpretation pipelines: parse, then evaluate. They are required
// to produce the same value for every program on which both terminate.
//
// Neither pipeline runs the static typechecker. An ill-typed program fails
// at evaluation time, and only if the offending subexpression is actually
// reached; see typecheck for the ahead-of-time alternative.

func interpretSmallStep(src string) (Expr, error) {
	expr, err := parse(strings.NewReader(src))
	if err != nil {
		return nil, err
	}
	return evalSmallStep(expr)
}

func interpretBigStep(src string) (Expr, error) {
	expr, err := parse(strings.NewReader(src))
	if err != nil {
		return nil, err
	}
	return evalBigStep(expr)
}
