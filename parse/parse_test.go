// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package parse

import (
	"bytes"
	"strings"
	"testing"

	"github.com/epwr/lazy-linear-algebra/config"
	"github.com/epwr/lazy-linear-algebra/scan"
	"github.com/epwr/lazy-linear-algebra/value"
)

func newParser(conf *config.Config, input string) *Parser {
	scanner := scan.New(conf, "test", scan.NewReaderSource(strings.NewReader(input)))
	return NewParser(conf, scanner)
}

func parseProgram(t *testing.T, input string) *value.Program {
	t.Helper()
	prog, err := newParser(&config.Config{}, input).Program()
	if err != nil {
		t.Fatalf("%q: %v", input, err)
	}
	return prog
}

func TestPrecedence(t *testing.T) {
	var tests = []struct {
		input string
		tree  string
	}{
		{"2 + 3 * 4", "(<term 2> + (<term 3> * <term 4>))"},
		{"2 * 3 + 4", "((<term 2> * <term 3>) + <term 4>)"},
		{"a / b * c + d", "((<var a> / (<var b> * <var c>)) + <var d>)"},
		{"a / b / c", "(<var a> / (<var b> / <var c>))"},
		{"a * b * c", "(<var a> * (<var b> * <var c>))"},
		{"a *! b * c", "((<var a> *! <var b>) * <var c>)"},
		{"a && b + c", "(<var a> && (<var b> + <var c>))"},
		{"a + b && c", "((<var a> + <var b>) && <var c>)"},
		{"a * b + c * d", "((<var a> * <var b>) + (<var c> * <var d>))"},
		// Subtraction is addition of the negated right-hand side.
		{"a - b", "(<var a> + (- <var b>))"},
		{"a - b + c", "(<var a> + (- (<var b> + <var c>)))"},
		{"a - b * c", "(<var a> + (- (<var b> * <var c>)))"},
		{"a - b || c", "(<var a> + (- (<var b> || <var c>)))"},
		{"-2 * 3", "((- <term 2>) * <term 3>)"},
		{"~m * n", "((~ <var m>) * <var n>)"},
		{"x = 1 + 2", "(x = (<term 1> + <term 2>))"},
		{"`x + `i", "(<term x> + <term i>)"},
		{"f(1, a + b) * 2", "(<call f(<term 1>, (<var a> + <var b>))> * <term 2>)"},
		{"(a, b)", "<tuple <var a>, <var b>>"},
		{"(a) * b", "(<var a> * <var b>)"},
		{"(a + b) * c", "(<tuple (<var a> + <var b>)> * <var c>)"},
		{"[1, 2\n3, 4] * m", "(<matrix <term 1> <term 2>; <term 3> <term 4>> * <var m>)"},
		{"if a then 1 else 2 end", "<:if <var a>; <term 1>; :else <term 2>; :end>"},
		{"if !a then 1 end", "<:if (! <var a>); <term 1>; :end>"},
		{"lambda (a, b) { a; return b }", "<lambda (a, b) {<var a>; :ret <var b>}>"},
		{"lambda () {\n  x = 1\n  x\n}", "<lambda () {(x = <term 1>); <var x>}>"},
		{"true || false", "(<boolean true> || <boolean false>)"},
		{"set + Term Term 10 add", "<set + Term Term 10 add>"},
	}
	for _, test := range tests {
		prog := parseProgram(t, test.input)
		if len(prog.Statements) != 1 {
			t.Errorf("%q: got %d statements; want 1", test.input, len(prog.Statements))
			continue
		}
		if got := Tree(prog.Statements[0]); got != test.tree {
			t.Errorf("%q:\ngot  %s\nwant %s", test.input, got, test.tree)
		}
	}
}

func TestProgString(t *testing.T) {
	var tests = []struct {
		input string
		prog  string
	}{
		{"2 + 3 * 4", "2 + (3 * 4)"},
		{"2 * 3 + 4", "(2 * 3) + 4"},
		{"a - b", "a + (-b)"},
		{"a + -b", "a + (-b)"},
		{"a + (-b)", "a + (-b)"},
		{"x = `x * `i", "x = `x * `i"},
		{"f = lambda (a) { return a * 2 }", "f = lambda (a) { return a * 2 }"},
		{"if a then b end", "if a then b end"},
		{"[1, 2\n3, 4]", "[1, 2\n3, 4]"},
	}
	for _, test := range tests {
		prog := parseProgram(t, test.input)
		if got := prog.ProgString(); got != test.prog {
			t.Errorf("%q: got %q; want %q", test.input, got, test.prog)
		}
	}
}

func TestStatements(t *testing.T) {
	prog := parseProgram(t, "x = 1\n# comment\n\ny = x * 2\ny\n")
	if len(prog.Statements) != 3 {
		t.Fatalf("got %d statements; want 3", len(prog.Statements))
	}
	pos := prog.Statements[1].Position()
	if pos != (value.Pos{Line: 4, Col: 1}) {
		t.Errorf("second statement at %s; want 4:1", pos)
	}
	// An operator on the next line starts a new statement.
	prog = parseProgram(t, "a\n-b")
	if len(prog.Statements) != 2 {
		t.Fatalf("got %d statements; want 2", len(prog.Statements))
	}
}

func TestErrors(t *testing.T) {
	var tests = []struct {
		input string
		errs  []string
	}{
		{"1 +", []string{"test:1:4: unexpected EOF"}},
		{"()", []string{"test:1:1: empty parentheses"}},
		{"3 = 4", []string{"test:1:3: cannot assign to 3"}},
		{"1 ** 2", []string{`test:1:3: unknown binary operator "**"`}},
		{"?1", []string{`test:1:1: unknown unary operator "?"`}},
		{"[1, 2\n3]", []string{"test:1:1: inconsistent matrix row length: row 2 has 1 values, want 2"}},
		{"[1,\n2]", []string{"test:1:3: expected matrix value, got newline"}},
		// The rows after a bad one are skipped, not parsed as statements.
		{"[1, 2\n3\n4, 5]\nx = 1\n3 = 4", []string{
			"test:1:1: inconsistent matrix row length: row 2 has 1 values, want 2",
			"test:5:3: cannot assign to 3",
		}},
		{"[1 2\n3, 4]", []string{`test:1:4: expected comma in matrix, got Digit: "2"`}},
		{"if a then b", []string{`test:1:12: expected "end", got EOF`}},
		{"if a b end", []string{`test:1:6: expected "then", got Identifier: "b"`}},
		{"lambda (a + b) { a }", []string{"test:1:1: lambda parameter must be an identifier, got a + b"}},
		{"lambda (a) a", []string{`test:1:12: expected "{", got Identifier: "a"`}},
		// Every bad statement is reported.
		{"()\nx = 1\n3 = 4", []string{"test:1:1: empty parentheses", "test:3:3: cannot assign to 3"}},
	}
	for _, test := range tests {
		prog, err := newParser(&config.Config{}, test.input).Program()
		if err == nil {
			t.Errorf("%q: expected error, got %s", test.input, prog.ProgString())
			continue
		}
		if prog != nil {
			t.Errorf("%q: program returned with errors", test.input)
		}
		list, ok := err.(ErrorList)
		if !ok {
			t.Errorf("%q: error is %T, not ErrorList", test.input, err)
			continue
		}
		if len(list) != len(test.errs) {
			t.Errorf("%q: got %d errors %q; want %d", test.input, len(list), err, len(test.errs))
			continue
		}
		for i, e := range list {
			if e.Error() != test.errs[i] {
				t.Errorf("%q: error %d is %q; want %q", test.input, i, e, test.errs[i])
			}
		}
	}
}

func TestStatementRecovers(t *testing.T) {
	p := newParser(&config.Config{}, "1 + )\n2")
	if _, err := p.Statement(); err == nil {
		t.Fatal("expected error")
	}
	stmt, err := p.Statement()
	if err != nil {
		t.Fatal(err)
	}
	if got := stmt.ProgString(); got != "2" {
		t.Errorf("after error got %q; want 2", got)
	}
	if !p.AtEOF() {
		t.Error("not at EOF")
	}
}

func TestDebugParse(t *testing.T) {
	var out bytes.Buffer
	conf := &config.Config{}
	conf.SetOutput(&out)
	conf.SetDebug("parse", true)
	if _, err := newParser(conf, "1 + 2").Program(); err != nil {
		t.Fatal(err)
	}
	if want := "(<term 1> + <term 2>)\n"; out.String() != want {
		t.Errorf("got %q; want %q", out.String(), want)
	}
}
