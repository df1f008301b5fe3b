package main

import "fmt"

// evalBigStep computes the final value of an expression by structural
// recursion. It shares applyBop and substitute with the small-step relation
// but is otherwise an independent implementation: the two must agree on
// every program on which both terminate.
func evalBigStep(expr Expr) (Expr, error) {
	switch e := expr.(type) {
	case *IntExpr, *BoolExpr:
		return expr, nil
	case *VarExpr:
		return nil, fmt.Errorf("unbound variable: %s", e.Name)
	case *BinExpr:
		left, err := evalBigStep(e.Left)
		if err != nil {
			return nil, err
		}
		right, err := evalBigStep(e.Right)
		if err != nil {
			return nil, err
		}
		return applyBop(e.Op, left, right)
	case *LetExpr:
		val, err := evalBigStep(e.Val)
		if err != nil {
			return nil, err
		}
		return evalBigStep(substitute(e.Body, val, e.Var))
	case *IfExpr:
		cond, err := evalBigStep(e.Cond)
		if err != nil {
			return nil, err
		}
		b, ok := cond.(*BoolExpr)
		if !ok {
			return nil, fmt.Errorf("if condition must be a boolean, found %s", formatExpr(cond))
		}
		if b.Value {
			return evalBigStep(e.Then)
		}
		return evalBigStep(e.Else)
	default:
		panic(fmt.Sprintf("unhandled case in evalBigStep: %T", expr))
	}
}
