package main

import (
	"os"
	"regexp"
	"testing"

	"gopkg.in/yaml.v3"
)

type fixtureCase struct {
	Name   string `yaml:"name"`
	Source string `yaml:"source"`
	Want   string `yaml:"want"`
	Error  string `yaml:"error"`
}

type fixtureFile struct {
	Cases []fixtureCase `yaml:"cases"`
}

func loadFixtures(t *testing.T, path string) []fixtureCase {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading fixtures: %v", err)
	}
	var f fixtureFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		t.Fatalf("decoding fixtures: %v", err)
	}
	if len(f.Cases) == 0 {
		t.Fatalf("no cases in %s", path)
	}
	return f.Cases
}

func TestFixtures(t *testing.T) {
	interpreters := []struct {
		name string
		run  func(string) (Expr, error)
	}{
		{"small-step", interpretSmallStep},
		{"big-step", interpretBigStep},
	}
	for _, tc := range loadFixtures(t, "testdata/programs.yaml") {
		tc := tc
		for _, in := range interpreters {
			in := in
			t.Run(tc.Name+"/"+in.name, func(t *testing.T) {
				v, err := in.run(tc.Source)
				if tc.Error != "" {
					if err == nil {
						t.Fatalf("interpret(%q) = %s, expected error matching %q", tc.Source, formatExpr(v), tc.Error)
					}
					if matched, _ := regexp.MatchString(tc.Error, err.Error()); !matched {
						t.Errorf("interpret(%q): error %q does not match %q", tc.Source, err, tc.Error)
					}
					return
				}
				if err != nil {
					t.Fatalf("interpret(%q) failed: %v", tc.Source, err)
				}
				if got := formatExpr(v); got != tc.Want {
					t.Errorf("interpret(%q) = %s, want %s", tc.Source, got, tc.Want)
				}
			})
		}
	}
}

func TestFixturesAgree(t *testing.T) {
	for _, tc := range loadFixtures(t, "testdata/programs.yaml") {
		sv, serr := interpretSmallStep(tc.Source)
		bv, berr := interpretBigStep(tc.Source)
		if (serr == nil) != (berr == nil) {
			t.Errorf("%s: strategies disagree on failure: small-step err=%v, big-step err=%v", tc.Name, serr, berr)
			continue
		}
		if serr == nil && !sameExpr(sv, bv) {
			t.Errorf("%s: small-step = %s, big-step = %s", tc.Name, formatExpr(sv), formatExpr(bv))
		}
	}
}
