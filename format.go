package main

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/samber/lo"
)

// format.go converts an AST back to source code, for error messages and
// reduction traces.

type formatter struct {
	buf bytes.Buffer
}

func formatExpr(expr Expr) string {
	var f formatter
	f.visitExpr(expr, 0)
	return f.buf.String()
}

// formatTrace renders every expression in a reduction sequence.
func formatTrace(trace []Expr) []string {
	return lo.Map(trace, func(e Expr, _ int) string {
		return formatExpr(e)
	})
}

var binOpPrec = map[Bop]int{
	Leq:  1,
	Add:  2,
	Mult: 3,
}

func (f *formatter) visitExpr(e Expr, prec int) {
	switch e := e.(type) {
	case *VarExpr:
		f.write(e.Name)
	case *IntExpr:
		f.write(strconv.FormatInt(e.Value, 10))
	case *BoolExpr:
		if e.Value {
			f.write("true")
		} else {
			f.write("false")
		}
	case *BinExpr:
		op := binOpPrec[e.Op]
		if op < prec {
			f.write("(")
		}
		f.visitExpr(e.Left, op)
		f.write(" " + e.Op.String() + " ")
		// operators are left-associative, so a nested op of the same
		// precedence on the right needs parentheses
		f.visitExpr(e.Right, op+1)
		if op < prec {
			f.write(")")
		}
	case *LetExpr:
		if prec > 0 {
			f.write("(")
		}
		f.write("let " + e.Var + " = ")
		f.visitExpr(e.Val, 0)
		f.write(" in ")
		f.visitExpr(e.Body, 0)
		if prec > 0 {
			f.write(")")
		}
	case *IfExpr:
		if prec > 0 {
			f.write("(")
		}
		f.write("if ")
		f.visitExpr(e.Cond, 0)
		f.write(" then ")
		f.visitExpr(e.Then, 0)
		f.write(" else ")
		f.visitExpr(e.Else, 0)
		if prec > 0 {
			f.write(")")
		}
	default:
		panic(fmt.Sprintf("unhandled case in formatter.visitExpr: %T", e))
	}
}

func (f *formatter) write(s string) {
	f.buf.WriteString(s)
}
