// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package value

import (
	"strings"
	"testing"

	"github.com/epwr/lazy-linear-algebra/config"
)

var (
	x = Variable("x")
	y = Variable("y")
	i = ImaginaryUnit()
)

// raised calls fn and returns the Error it panics with, if any.
func raised(fn func()) (err error) {
	defer func() {
		if e := recover(); e != nil {
			ve, ok := e.(Error)
			if !ok {
				panic(e)
			}
			err = ve
		}
	}()
	fn()
	return nil
}

func matrix(rows ...[]Scalar) *Matrix {
	return NewMatrix(rows)
}

func row(values ...Scalar) []Scalar {
	return values
}

func n(f float64) Term {
	return Number(f)
}

func TestArithmetic(t *testing.T) {
	var tests = []struct {
		u    Value
		op   string
		v    Value
		want string
	}{
		{n(2), "+", n(3), "5"},
		{n(2), "-", n(3), "-1"},
		{n(2), "*", n(3), "6"},
		{n(7), "/", n(2), "3.5"},
		{i, "*", i, "-1"},
		{i, "+", i, "2i"},
		{n(1), "/", i, "-i"},
		{n(2), "/", Binary(n(2), "*", i), "-i"},
		{x, "+", n(2), "2 + x"},
		{x, "-", n(2), "-2 + x"},
		{x, "+", y, "x + y"},
		{y, "+", x, "x + y"},
		{x, "*", y, "x*y"},
		{y, "*", x, "x*y"},
		{x, "*", x, "x^2"},
		{x, "/", x, "1"},
		{n(1), "/", x, "x^-1"},
		{x, "-", x, "0"},
		{x, "*", i, "ix"},
		{Binary(x, "+", n(1)), "*", Binary(x, "+", n(1)), "1 + 2x + x^2"},
		{Binary(x, "+", n(1)), "*", Binary(x, "-", n(1)), "-1 + x^2"},
		{Binary(Binary(x, "*", x), "+", x), "/", x, "1 + x"},
		{n(1), "/", Binary(x, "+", n(1)), "1 / (1 + x)"},
		{Boolean(true), "&&", Boolean(false), "false"},
		{Boolean(true), "||", Boolean(false), "true"},
	}
	for _, test := range tests {
		got := Binary(test.u, test.op, test.v)
		if got.String() != test.want {
			t.Errorf("%s %s %s = %s; want %s", test.u, test.op, test.v, got, test.want)
		}
	}
}

func TestAddProperties(t *testing.T) {
	values := []Scalar{
		n(0), n(3), i, x, Binary(x, "+", i).(Scalar), Binary(n(2), "/", Binary(x, "+", y)).(Scalar),
	}
	for _, a := range values {
		if got := addScalars(a, zeroTerm); !Equal(got, a) {
			t.Errorf("%s + 0 = %s", a, got)
		}
		if got := addScalars(a, negScalar(a)); got.String() != "0" && !strings.HasPrefix(got.String(), "0 /") {
			t.Errorf("%s - %s = %s", a, a, got)
		}
		for _, b := range values {
			ab, ba := addScalars(a, b), addScalars(b, a)
			if _, ok := ab.(Fraction); ok {
				continue // Fractions are not put in canonical form.
			}
			if !Equal(ab, ba) {
				t.Errorf("%s + %s = %s but %s + %s = %s", a, b, ab, b, a, ba)
			}
		}
	}
}

func TestEqual(t *testing.T) {
	if !Equal(TermList{}, zeroTerm) || !Equal(zeroTerm, TermList{}) {
		t.Error("empty TermList is not zero")
	}
	if !Equal(NewTermList(x), x) {
		t.Error("one-term TermList is not its term")
	}
	if !Equal(NewTermList(n(1), x), NewTermList(x, n(1))) {
		t.Error("TermList depends on order of construction")
	}
	if Equal(x, y) || Equal(x, n(1)) || Equal(n(1), i) {
		t.Error("distinct terms are equal")
	}
	if !Equal(NewTerm(0, true, LitVar{"x", oneTerm}), n(0)) {
		t.Error("zero terms differ")
	}
	if !Equal(NewTerm(1, false, LitVar{"x", oneTerm}, LitVar{"x", n(-1)}), n(1)) {
		t.Error("x^1 * x^-1 is not 1")
	}
	if Equal(Boolean(true), n(1)) {
		t.Error("Boolean equals Term")
	}
}

func TestTermOrder(t *testing.T) {
	l := NewTermList(i, x, n(2), Binary(x, "*", x).(Term), y, n(0))
	if got, want := l.String(), "2 + i + x + x^2 + y"; got != want {
		t.Errorf("got %s; want %s", got, want)
	}
	if len(l.Terms) != 5 {
		t.Errorf("zero term kept: %d terms", len(l.Terms))
	}
}

func TestFraction(t *testing.T) {
	sum := Binary(x, "+", n(1)).(Poly)
	f := Fraction{Num: n(1), Den: sum}
	g := Fraction{Num: n(2), Den: sum}
	h := Fraction{Num: n(1), Den: Binary(x, "+", y).(Poly)}
	var tests = []struct {
		u    Value
		op   string
		v    Value
		want string
	}{
		{f, "+", f, "2 / (1 + x)"},
		{f, "+", n(1), "(2 + x) / (1 + x)"},
		{n(1), "+", f, "(2 + x) / (1 + x)"},
		{f, "*", n(2), "2 / (1 + x)"},
		{f, "*", g, "2 / (1 + 2x + x^2)"},
		{f, "-", f, "0 / (1 + x)"},
		{f, "/", f, "1"},
		{g, "/", f, "2"},
		{h, "/", f, "(1 + x) / (x + y)"},
		{f, "/", n(2), "1 / (2 + 2x)"},
		{n(2), "/", f, "(2 + 2x) / 1"},
	}
	for _, test := range tests {
		got := Binary(test.u, test.op, test.v)
		if got.String() != test.want {
			t.Errorf("%s %s %s = %s; want %s", test.u, test.op, test.v, got, test.want)
		}
	}
}

func TestMatrix(t *testing.T) {
	m := matrix(row(n(1), n(2)), row(n(3), n(4)))
	var tests = []struct {
		v    Value
		want string
	}{
		{m, "|  1  2  |\n|  3  4  |"},
		{Unary("~", m), "|  1  3  |\n|  2  4  |"},
		{Unary("-", m), "|  -1  -2  |\n|  -3  -4  |"},
		{Binary(m, "+", m), "|  2  4  |\n|  6  8  |"},
		{Binary(m, "-", m), "|  0  0  |\n|  0  0  |"},
		{Binary(m, "*", m), "|   7  10  |\n|  15  22  |"},
		{Binary(x, "*", m), "|   x  2x  |\n|  3x  4x  |"},
		{Binary(m, "*", i), "|   i  2i  |\n|  3i  4i  |"},
		{Binary(matrix(row(n(1), n(2))), "*!", matrix(row(n(1)), row(x))), "|   1   2  |\n|   x  2x  |"},
	}
	for _, test := range tests {
		if got := test.v.String(); got != test.want {
			t.Errorf("got\n%s\nwant\n%s", got, test.want)
		}
	}
	k := Binary(m, "*!", m).(*Matrix)
	if k.Rows() != 4 || k.Cols() != 4 {
		t.Fatalf("tensor is %dx%d; want 4x4", k.Rows(), k.Cols())
	}
	// Block (1, 0) is m[1][0] * m = 3m.
	if !Equal(k.At(3, 1), n(12)) || !Equal(k.At(2, 0), n(3)) {
		t.Errorf("bad tensor product:\n%s", k)
	}
	// Transposing twice gives back the matrix.
	if !Equal(Unary("~", Unary("~", k)), k) {
		t.Error("double transpose differs")
	}
}

func TestErrors(t *testing.T) {
	m := matrix(row(n(1), n(2)))
	var tests = []struct {
		fn   func()
		want string
	}{
		{func() { Binary(n(1), "/", n(0)) }, "division by zero"},
		{func() { Binary(x, "/", Binary(x, "-", x)) }, "division by zero"},
		{func() { Binary(Binary(x, "+", n(1)), "/", NewTermList()) }, "division by zero"},
		{func() { Binary(m, "+", matrix(row(n(1)))) }, "matrix dimensions do not match: 1x2 and 1x1"},
		{func() { Binary(m, "*", m) }, "matrix dimensions do not match for multiplication: 1x2 and 1x2"},
		{func() { Binary(m, "/", m) }, `operator "/" not implemented for left: Matrix, right: Matrix`},
		{func() { Binary(Boolean(true), "+", n(1)) }, `operator "+" not implemented for left: Boolean, right: Term`},
		{func() { Binary(n(1), "&&", Boolean(true)) }, `operator "&&" not implemented for left: Term, right: Boolean`},
		{func() { Binary(m, "*!", n(1)) }, `operator "*!" not implemented for left: Matrix, right: Term`},
		{func() { Binary(m, "<*>", m) }, `binary "<*>" not implemented`},
		{func() { Binary(m, "%", m) }, `binary "%" not implemented`},
		{func() { Unary("~", n(1)) }, `unary "~" not implemented for Term`},
		{func() { Unary("!", n(1)) }, `unary "!" not implemented for Term`},
		{func() { Unary("-", Boolean(true)) }, `unary "-" not implemented for Boolean`},
		{func() { NewMatrix(nil) }, "empty matrix"},
		{func() { matrix(row(n(1), n(2)), row(n(3))) }, "inconsistent matrix row length: row 2 has 1 values, want 2"},
	}
	for _, test := range tests {
		err := raised(test.fn)
		if err == nil {
			t.Errorf("no error; want %q", test.want)
			continue
		}
		if err.Error() != test.want {
			t.Errorf("got %q; want %q", err, test.want)
		}
	}
}

func TestSprint(t *testing.T) {
	conf := &config.Config{}
	conf.SetFormat("%.2f")
	var tests = []struct {
		v    Value
		want string
	}{
		{n(1.5), "1.50"},
		{Binary(n(0.5), "*", x), "0.50x"},
		{n(-1), "-1.00"},
		{Binary(n(-1), "*", x), "-x"},
		{Binary(n(-0.0), "*", n(1)), "0"},
		{NewTerm(2, false, LitVar{"x", Binary(y, "+", n(1)).(Poly)}), "2.00x^(1.00 + y)"},
		{NewTerm(1, false, LitVar{"x", i}), "x^(i)"},
		{Tuple{n(1), Boolean(false)}, "(1.00, false)"},
		{Unit{}, ""},
		{NewClosure([]string{"a", "b"}, nil, &Program{}), "lambda(a, b)"},
	}
	for _, test := range tests {
		if got := test.v.Sprint(conf); got != test.want {
			t.Errorf("got %q; want %q", got, test.want)
		}
	}
}

func TestEnv(t *testing.T) {
	env := Env{"b": n(1), "a": n(2)}
	c := env.Copy()
	c["c"] = n(3)
	if _, ok := env["c"]; ok {
		t.Error("copy shares storage")
	}
	if got := strings.Join(c.Names(), " "); got != "a b c" {
		t.Errorf("names %q", got)
	}
	closure := NewClosure(nil, env, &Program{})
	env["a"] = n(5)
	if !Equal(closure.Env["a"], n(2)) {
		t.Error("closure sees later assignment")
	}
}
