package main

import (
	"errors"
	"io"
	"text/scanner"
)

const scannerMode = scanner.ScanIdents | scanner.ScanInts | scanner.SkipComments

// Token kinds produced by the lexer. Single-character tokens ('+', '*',
// parens) are returned as their rune value, so the named kinds are negative.
const (
	tEOF = -(iota + 1)
	tNumber
	tIdent
	tLeq
	kLet
	kIn
	kIf
	kThen
	kElse
	kTrue
	kFalse
)

type lexer struct {
	scanner scanner.Scanner
	err     error
}

func (l *lexer) Init(r io.Reader) {
	l.scanner.Error = func(s *scanner.Scanner, msg string) {
		l.Error(msg)
	}
	l.scanner.Mode = scannerMode
	l.scanner.Init(r)
}

func (l *lexer) Error(e string) {
	if l.err == nil {
		l.err = errors.New(e)
	}
}

// Lex returns the next token kind and its literal text.
func (l *lexer) Lex() (int, string) {
	r := l.scanner.Scan()
	switch r {
	case scanner.EOF:
		return tEOF, ""
	case scanner.Ident:
		switch token := l.scanner.TokenText(); token {
		case "let":
			return kLet, token
		case "in":
			return kIn, token
		case "if":
			return kIf, token
		case "then":
			return kThen, token
		case "else":
			return kElse, token
		case "true":
			return kTrue, token
		case "false":
			return kFalse, token
		default:
			return tIdent, token
		}
	case scanner.Int:
		return tNumber, l.scanner.TokenText()
	case '<':
		if l.scanner.Peek() == '=' {
			l.scanner.Next()
			return tLeq, "<="
		}
		return int(r), l.scanner.TokenText()
	default:
		return int(r), l.scanner.TokenText()
	}
}
