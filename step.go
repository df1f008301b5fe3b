package main

import "fmt"

// step.go is the small-step relation: one atomic rewrite of a non-value
// expression, applied repeatedly by evalSmallStep until a value remains.

// step performs a single reduction. It is defined only for non-values;
// callers must check isValue first, and handing it a value is an internal
// contract violation, not a user error.
func step(expr Expr) (Expr, error) {
	switch e := expr.(type) {
	case *IntExpr, *BoolExpr:
		fatalf("step called on value %s", formatExpr(expr))
		panic("unreachable")
	case *VarExpr:
		// Every bound variable was eliminated by an earlier let
		// substitution, so a surviving one was never bound.
		return nil, fmt.Errorf("unbound variable: %s", e.Name)
	case *BinExpr:
		switch {
		case isValue(e.Left) && isValue(e.Right):
			return applyBop(e.Op, e.Left, e.Right)
		case isValue(e.Left):
			right, err := step(e.Right)
			if err != nil {
				return nil, err
			}
			return &BinExpr{Op: e.Op, Left: e.Left, Right: right}, nil
		default:
			left, err := step(e.Left)
			if err != nil {
				return nil, err
			}
			return &BinExpr{Op: e.Op, Left: left, Right: e.Right}, nil
		}
	case *LetExpr:
		if isValue(e.Val) {
			// The substitution is the step: the let node disappears.
			return substitute(e.Body, e.Val, e.Var), nil
		}
		val, err := step(e.Val)
		if err != nil {
			return nil, err
		}
		return &LetExpr{Var: e.Var, Val: val, Body: e.Body}, nil
	case *IfExpr:
		switch cond := e.Cond.(type) {
		case *BoolExpr:
			if cond.Value {
				return e.Then, nil
			}
			return e.Else, nil
		case *IntExpr:
			return nil, fmt.Errorf("if condition must be a boolean, found %s", formatExpr(e.Cond))
		default:
			next, err := step(e.Cond)
			if err != nil {
				return nil, err
			}
			return &IfExpr{Cond: next, Then: e.Then, Else: e.Else}, nil
		}
	default:
		panic(fmt.Sprintf("unhandled case in step: %T", expr))
	}
}

// applyBop applies a primitive operator to two values. All three operators
// take integer operands only.
func applyBop(op Bop, left, right Expr) (Expr, error) {
	l, lok := left.(*IntExpr)
	r, rok := right.(*IntExpr)
	if !lok || !rok {
		return nil, fmt.Errorf("operands to %s must be integers, found %s and %s",
			op, formatExpr(left), formatExpr(right))
	}
	switch op {
	case Add:
		return &IntExpr{Value: l.Value + r.Value}, nil
	case Mult:
		return &IntExpr{Value: l.Value * r.Value}, nil
	case Leq:
		return &BoolExpr{Value: l.Value <= r.Value}, nil
	default:
		fatalf("unhandled binop: %s", op)
		panic("unreachable")
	}
}

// evalSmallStep reduces an expression to a value one step at a time.
// The loop is unbounded; the language has no construct that recurses,
// so every well-formed program terminates.
func evalSmallStep(e Expr) (Expr, error) {
	for !isValue(e) {
		next, err := step(e)
		if err != nil {
			return nil, err
		}
		e = next
	}
	return e, nil
}

// stepTrace returns the full reduction sequence starting at e, including e
// itself and, on success, the final value. If a step fails, the trace up to
// the failing expression is returned along with the error.
func stepTrace(e Expr) ([]Expr, error) {
	steps := []Expr{e}
	for !isValue(e) {
		next, err := step(e)
		if err != nil {
			return steps, err
		}
		e = next
		steps = append(steps, e)
	}
	return steps, nil
}

func fatalf(s string, args ...interface{}) {
	msg := fmt.Sprintf(s, args...)
	panic("fatal interpreter error: " + msg)
}
