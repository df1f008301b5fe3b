package main

import (
	"regexp"
	"strings"
	"testing"
)

var typecheckTests = []struct {
	input string
	typ   Type
}{
	{"true", BoolT{}},
	{"false", BoolT{}},
	{"1", IntT{}},
	{"2 + 2", IntT{}},
	{"2 <= 1", BoolT{}},
	{"2 * 3 + 4", IntT{}},
	{"let a = 42 in a", IntT{}},
	{"let a = 42 in a <= 42", BoolT{}},
	{"let a = 1 in let b = 2 in a + b", IntT{}},
	{"let a = 1 in let a = true in a", BoolT{}},
	{"if true then 1 else 0", IntT{}},
	{"if 1 <= 2 then 2 <= 3 else false", BoolT{}},
}

var typecheckErrorTests = []struct {
	input string
	typ   Type
	error string
}{
	{"x", AnyT{}, "x not in scope"},
	{"true + false", IntT{}, "operands to [+] must be IntT, found .*"},
	{"true <= false", BoolT{}, "operands to <= must be IntT, found .*"},
	{"if 1 then 42 else 0", IntT{}, "condition must be BoolT"},
	{"if true then 42 else false", AnyT{}, "both branches of an if must have the same type, found"},
	{"let a = true in a + 1", IntT{}, "operands to [+] must be IntT"},
}

func TestTypecheck(t *testing.T) {
	for _, tt := range typecheckTests {
		expr, err := parse(strings.NewReader(tt.input))
		if err != nil {
			t.Errorf("parse(%q) failed: %v", tt.input, err)
			continue
		}
		typ, err := typecheck2(expr)
		if !sameType(typ, tt.typ) {
			t.Errorf("typecheck(%q) = %#v, want %#v", tt.input, typ, tt.typ)
		}
		if err != nil {
			t.Errorf("typecheck(%q): unexpected error: %v", tt.input, err)
		}
	}
	for _, tt := range typecheckErrorTests {
		expr, err := parse(strings.NewReader(tt.input))
		if err != nil {
			t.Errorf("parse(%q) failed: %v", tt.input, err)
			continue
		}
		typ, err := typecheck2(expr)
		if !sameType(typ, tt.typ) {
			t.Errorf("typecheck(%q) = %#v, want %#v", tt.input, typ, tt.typ)
		}
		if err == nil {
			t.Errorf("typecheck(%q): expected an error but found none", tt.input)
		} else {
			matched, matchErr := regexp.MatchString(tt.error, err.Error())
			if matchErr != nil {
				t.Errorf("invalid tt.error (%q): %v", tt.error, matchErr)
			} else if !matched {
				t.Errorf("typecheck(%q): unexpected error: %v", tt.input, err)
				t.Errorf("typecheck(%q): expected error matching %q", tt.input, tt.error)
			}
		}
	}
}

// the typechecker rejects a branch mismatch that evaluation, which only ever
// takes one branch, cannot detect; neither interpretation pipeline runs it
func TestTypecheckNotWiredIntoPipelines(t *testing.T) {
	const input = "if true then 1 else true + 1"
	expr, err := parse(strings.NewReader(input))
	if err != nil {
		t.Fatalf("parse(%q) failed: %v", input, err)
	}
	if err := typecheck(expr); err == nil {
		t.Errorf("typecheck(%q): expected an error but found none", input)
	}
	for _, in := range []struct {
		name string
		run  func(string) (Expr, error)
	}{
		{"small-step", interpretSmallStep},
		{"big-step", interpretBigStep},
	} {
		v, err := in.run(input)
		if err != nil {
			t.Errorf("%s(%q): unexpected error: %v", in.name, input, err)
			continue
		}
		if got := formatExpr(v); got != "1" {
			t.Errorf("%s(%q) = %s, want 1", in.name, input, got)
		}
	}
}
