package main

import (
	"fmt"
	"io"
	"strconv"
)

// parse.go is the frontend: a recursive-descent parser over the lexer's
// token stream. Precedence, loosest first: <=, +, *. The binding forms
// (let, if) extend as far right as possible.

type parser struct {
	lex lexer
	tok int
	lit string
}

// parse reads a single expression from r, which must be followed by EOF.
func parse(r io.Reader) (Expr, error) {
	p := new(parser)
	p.lex.Init(r)
	p.next()
	expr, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if p.lex.err != nil {
		return nil, fmt.Errorf("syntax error: %v", p.lex.err)
	}
	if p.tok != tEOF {
		return nil, p.syntaxError("expected end of input")
	}
	return expr, nil
}

func (p *parser) next() {
	p.tok, p.lit = p.lex.Lex()
}

func (p *parser) syntaxError(msg string) error {
	if p.tok == tEOF {
		return fmt.Errorf("syntax error: %s, found end of input", msg)
	}
	return fmt.Errorf("syntax error: %s, found %q", msg, p.lit)
}

func (p *parser) expect(tok int, what string) error {
	if p.tok != tok {
		return p.syntaxError("expected " + what)
	}
	p.next()
	return nil
}

// expr := "let" ident "=" expr "in" expr
//       | "if" expr "then" expr "else" expr
//       | comparison
func (p *parser) parseExpr() (Expr, error) {
	switch p.tok {
	case kLet:
		return p.parseLet()
	case kIf:
		return p.parseIf()
	}
	return p.parseComparison()
}

func (p *parser) parseLet() (Expr, error) {
	p.next() // let
	if p.tok != tIdent {
		return nil, p.syntaxError("expected identifier after let")
	}
	name := p.lit
	p.next()
	if err := p.expect('=', `"="`); err != nil {
		return nil, err
	}
	val, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if err := p.expect(kIn, `"in"`); err != nil {
		return nil, err
	}
	body, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	return &LetExpr{Var: name, Val: val, Body: body}, nil
}

func (p *parser) parseIf() (Expr, error) {
	p.next() // if
	cond, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if err := p.expect(kThen, `"then"`); err != nil {
		return nil, err
	}
	then, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if err := p.expect(kElse, `"else"`); err != nil {
		return nil, err
	}
	els, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	return &IfExpr{Cond: cond, Then: then, Else: els}, nil
}

// comparison := sum ( "<=" sum )*
func (p *parser) parseComparison() (Expr, error) {
	left, err := p.parseSum()
	if err != nil {
		return nil, err
	}
	for p.tok == tLeq {
		p.next()
		right, err := p.parseSum()
		if err != nil {
			return nil, err
		}
		left = &BinExpr{Op: Leq, Left: left, Right: right}
	}
	return left, nil
}

// sum := term ( "+" term )*
func (p *parser) parseSum() (Expr, error) {
	left, err := p.parseTerm()
	if err != nil {
		return nil, err
	}
	for p.tok == '+' {
		p.next()
		right, err := p.parseTerm()
		if err != nil {
			return nil, err
		}
		left = &BinExpr{Op: Add, Left: left, Right: right}
	}
	return left, nil
}

// term := atom ( "*" atom )*
func (p *parser) parseTerm() (Expr, error) {
	left, err := p.parseAtom()
	if err != nil {
		return nil, err
	}
	for p.tok == '*' {
		p.next()
		right, err := p.parseAtom()
		if err != nil {
			return nil, err
		}
		left = &BinExpr{Op: Mult, Left: left, Right: right}
	}
	return left, nil
}

func (p *parser) parseAtom() (Expr, error) {
	switch p.tok {
	case tNumber:
		n, err := strconv.ParseInt(p.lit, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("syntax error: integer literal %s out of range", p.lit)
		}
		p.next()
		return &IntExpr{Value: n}, nil
	case kTrue:
		p.next()
		return &BoolExpr{Value: true}, nil
	case kFalse:
		p.next()
		return &BoolExpr{Value: false}, nil
	case tIdent:
		name := p.lit
		p.next()
		return &VarExpr{Name: name}, nil
	case '(':
		p.next()
		expr, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if err := p.expect(')', `")"`); err != nil {
			return nil, err
		}
		return expr, nil
	case kLet:
		return p.parseLet()
	case kIf:
		return p.parseIf()
	default:
		return nil, p.syntaxError("expected expression")
	}
}
