package main

import "fmt"

// substitute returns target with every free occurrence of name replaced by
// replacement. The input trees are never modified.
//
// A let that rebinds name shadows it: the bound expression is still
// substituted into, the body is left untouched.
//
// Substitution is not capture-avoiding. If replacement has a free variable
// that collides with a binder inside target, that occurrence is captured.
// Programs whose lets bind distinct names from their substituted values are
// unaffected; the limitation is kept rather than papered over with renaming.
func substitute(target, replacement Expr, name string) Expr {
	switch e := target.(type) {
	case *IntExpr, *BoolExpr:
		return target
	case *VarExpr:
		if e.Name == name {
			return replacement
		}
		return target
	case *BinExpr:
		return &BinExpr{
			Op:    e.Op,
			Left:  substitute(e.Left, replacement, name),
			Right: substitute(e.Right, replacement, name),
		}
	case *LetExpr:
		val := substitute(e.Val, replacement, name)
		if e.Var == name {
			return &LetExpr{Var: e.Var, Val: val, Body: e.Body}
		}
		return &LetExpr{
			Var:  e.Var,
			Val:  val,
			Body: substitute(e.Body, replacement, name),
		}
	case *IfExpr:
		return &IfExpr{
			Cond: substitute(e.Cond, replacement, name),
			Then: substitute(e.Then, replacement, name),
			Else: substitute(e.Else, replacement, name),
		}
	default:
		panic(fmt.Sprintf("unhandled case in substitute: %T", target))
	}
}
