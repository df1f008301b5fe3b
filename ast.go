package main

import "fmt"

// The expression language is a closed sum: every consumer does an exhaustive
// type switch over these variants, so adding a new shape forces every
// consumer to be updated.

type Expr interface{}

type IntExpr struct {
	Value int64
}

type BoolExpr struct {
	Value bool
}

type VarExpr struct {
	Name string
}

type BinExpr struct {
	Op    Bop
	Left  Expr
	Right Expr
}

type LetExpr struct {
	Var  string
	Val  Expr
	Body Expr
}

type IfExpr struct {
	Cond Expr
	Then Expr
	Else Expr
}

// Bop enumerates the primitive binary operators. There are no others.
type Bop int

const (
	Add Bop = iota
	Mult
	Leq
)

func (op Bop) String() string {
	switch op {
	case Add:
		return "+"
	case Mult:
		return "*"
	case Leq:
		return "<="
	}
	return fmt.Sprintf("Bop(%d)", int(op))
}

// isValue reports whether e needs no further evaluation.
// Only integer and boolean literals are values.
func isValue(e Expr) bool {
	switch e.(type) {
	case *IntExpr, *BoolExpr:
		return true
	}
	return false
}
