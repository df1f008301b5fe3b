package main

import (
	"fmt"
	"strings"

	"github.com/samber/lo"
)

// types.go is the optional static typechecker. It is deliberately not part
// of either interpretation pipeline: evaluation must not assume it has run.
// It exists because it can reject programs evaluation never will, such as an
// if whose branches disagree in type while only the well-typed branch is
// ever taken.

type Type interface{}

type IntT struct{}
type BoolT struct{}

// AnyT stands in for the type of an expression that failed to typecheck,
// so that checking can continue and report further errors.
type AnyT struct{}

func typecheck(e Expr) error {
	_, err := typecheck2(e)
	return err
}

func typecheck2(e Expr) (Type, error) {
	top := newscope(nil)
	return typecheckExpr(top, e)
}

func typecheckExpr(s *scope, expr Expr) (Type, error) {
	switch e := expr.(type) {
	case *VarExpr:
		t, ok := s.lookup(e.Name)
		if !ok {
			return AnyT{}, fmt.Errorf("%v not in scope", e.Name)
		}
		return t, nil
	case *IntExpr:
		return IntT{}, nil
	case *BoolExpr:
		return BoolT{}, nil
	case *BinExpr:
		t1, err1 := typecheckExpr(s, e.Left)
		t2, err2 := typecheckExpr(s, e.Right)
		if err1 != nil || err2 != nil {
			return AnyT{}, multiError(err1, err2)
		}
		var err error
		if !(t1 == IntT{} && t2 == IntT{}) {
			err = fmt.Errorf("operands to %s must be IntT, found %T and %T", e.Op, t1, t2)
		}
		switch e.Op {
		case Add, Mult:
			return IntT{}, err
		case Leq:
			return BoolT{}, err
		default:
			panic(fmt.Sprintf("unhandled binop: %s", e.Op))
		}
	case *IfExpr:
		t1, err1 := typecheckExpr(s, e.Cond)
		t2, err2 := typecheckExpr(s, e.Then)
		t3, err3 := typecheckExpr(s, e.Else)
		if err1 == nil && (t1 != BoolT{}) {
			err1 = fmt.Errorf("if condition must be BoolT, found %T", t1)
		}
		if err2 == nil && err3 == nil {
			if sameType(t2, t3) {
				return t2, err1
			}
			err := fmt.Errorf("both branches of an if must have the same type, found %T and %T", t2, t3)
			return AnyT{}, multiError(err1, err)
		}
		if sameType(t2, t3) {
			return t2, multiError(err1, err2, err3)
		}
		return AnyT{}, multiError(err1, err2, err3)
	case *LetExpr:
		inner := s.push()
		t1, err1 := typecheckExpr(s, e.Val)
		inner.vars[e.Var] = t1
		t2, err2 := typecheckExpr(inner, e.Body)
		return t2, multiError(err1, err2)
	default:
		panic(fmt.Sprintf("unhandled case in typecheckExpr: %T", expr))
	}
}

func sameType(t1, t2 Type) bool {
	return t1 == t2
}

type scope struct {
	parent *scope
	vars   map[string]Type
}

func newscope(parent *scope) *scope {
	return &scope{parent: parent, vars: make(map[string]Type)}
}

func (s *scope) push() *scope {
	return newscope(s)
}

func (s *scope) lookup(name string) (Type, bool) {
	for ; s != nil; s = s.parent {
		if t, ok := s.vars[name]; ok {
			return t, true
		}
	}
	return nil, false
}

// multiError aggregates multiple errors.
// It strips out nils (and may modify the input list).
func multiError(errors ...error) error {
	j := 0
	for i := range errors {
		if errors[i] != nil {
			if i != j {
				errors[j] = errors[i]
			}
			j++
		}
	}
	switch j {
	case 0:
		return nil
	case 1:
		return errors[0]
	default:
		return ErrorList(errors[:j])
	}
}

// ErrorList is an error made of other errors.
type ErrorList []error

func (l ErrorList) Error() string {
	msgs := lo.Map(l, func(err error, _ int) string {
		return err.Error()
	})
	return strings.Join(msgs, "\n")
}
