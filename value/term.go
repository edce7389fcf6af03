// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package value

import (
	"cmp"
	"slices"
	"strings"

	"github.com/epwr/lazy-linear-algebra/config"
)

// Scalar is a value that may appear as a cell of a Matrix:
// a Term, a TermList or a Fraction.
type Scalar interface {
	Value
	scalar()
}

// Poly is a Term or a TermList: a sum of terms.
// Exponents, numerators and denominators are Polys.
type Poly interface {
	Scalar
	// terms returns the non-zero terms of the sum, in order.
	terms() []Term
}

// LitVar is a literal variable raised to an exponent, as in x^2.
type LitVar struct {
	Name string
	Exp  Poly
}

// Term is a single real or imaginary magnitude multiplied by zero or more
// literal variables. Vars is sorted by name and holds each name at most once.
// A Term with zero magnitude is zero whatever its other fields say.
type Term struct {
	Magnitude float64
	Imaginary bool
	Vars      []LitVar
}

var (
	zeroTerm = Term{}
	oneTerm  = Term{Magnitude: 1}
)

// NewTerm returns a term with its literal variables in canonical order.
// Repeated names are merged by adding their exponents, and a variable
// whose exponent sums to zero is dropped.
func NewTerm(magnitude float64, imaginary bool, vars ...LitVar) Term {
	return Term{
		Magnitude: magnitude,
		Imaginary: imaginary,
		Vars:      normalizeVars(vars),
	}
}

// Number returns the real term with magnitude f.
func Number(f float64) Term {
	return Term{Magnitude: f}
}

// ImaginaryUnit returns i.
func ImaginaryUnit() Term {
	return Term{Magnitude: 1, Imaginary: true}
}

// Variable returns the literal variable name with exponent 1.
func Variable(name string) Term {
	return Term{Magnitude: 1, Vars: []LitVar{{Name: name, Exp: oneTerm}}}
}

func (t Term) Kind() string { return "Term" }

func (Term) scalar() {}

// IsZero reports whether t is the additive identity.
func (t Term) IsZero() bool {
	return t.Magnitude == 0
}

func (t Term) terms() []Term {
	if t.IsZero() {
		return nil
	}
	return []Term{t}
}

func (t Term) equal(u Term) bool {
	if t.IsZero() || u.IsZero() {
		return t.IsZero() && u.IsZero()
	}
	return t.Magnitude == u.Magnitude && t.Imaginary == u.Imaginary && varsEqual(t.Vars, u.Vars)
}

// sameSignature reports whether t and u can be added into a single term.
func sameSignature(t, u Term) bool {
	return t.Imaginary == u.Imaginary && varsEqual(t.Vars, u.Vars)
}

func varsEqual(a, b []LitVar) bool {
	return slices.EqualFunc(a, b, func(x, y LitVar) bool {
		return x.Name == y.Name && Equal(x.Exp, y.Exp)
	})
}

func normalizeVars(vars []LitVar) []LitVar {
	if len(vars) == 0 {
		return nil
	}
	sorted := slices.Clone(vars)
	slices.SortStableFunc(sorted, func(a, b LitVar) int {
		return strings.Compare(a.Name, b.Name)
	})
	merged := make([]LitVar, 0, len(sorted))
	for _, v := range sorted {
		if n := len(merged); n > 0 && merged[n-1].Name == v.Name {
			merged[n-1].Exp = addPoly(merged[n-1].Exp, v.Exp)
			continue
		}
		merged = append(merged, v)
	}
	out := merged[:0]
	for _, v := range merged {
		if len(v.Exp.terms()) > 0 {
			out = append(out, v)
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

// The total order on terms: literal variables first, then real before
// imaginary, then magnitude.

func compareTerm(a, b Term) int {
	if c := compareVars(a.Vars, b.Vars); c != 0 {
		return c
	}
	if a.Imaginary != b.Imaginary {
		if a.Imaginary {
			return 1
		}
		return -1
	}
	return cmp.Compare(a.Magnitude, b.Magnitude)
}

func compareVars(a, b []LitVar) int {
	return slices.CompareFunc(a, b, func(x, y LitVar) int {
		if c := strings.Compare(x.Name, y.Name); c != 0 {
			return c
		}
		return comparePoly(x.Exp, y.Exp)
	})
}

func comparePoly(a, b Poly) int {
	return slices.CompareFunc(a.terms(), b.terms(), compareTerm)
}

// Arithmetic.

func addTerms(t, u Term) Poly {
	if sameSignature(t, u) {
		return Term{
			Magnitude: t.Magnitude + u.Magnitude,
			Imaginary: t.Imaginary,
			Vars:      t.Vars,
		}
	}
	return NewTermList(t, u)
}

// mulTerms multiplies magnitudes, adds the exponents of shared variables
// and applies i*i = -1.
func mulTerms(t, u Term) Term {
	vars := make([]LitVar, 0, len(t.Vars)+len(u.Vars))
	vars = append(vars, t.Vars...)
	vars = append(vars, u.Vars...)
	mag := t.Magnitude * u.Magnitude
	imaginary := t.Imaginary != u.Imaginary
	if t.Imaginary && u.Imaginary {
		mag = -mag
	}
	return NewTerm(mag, imaginary, vars...)
}

func negTerm(t Term) Term {
	return Term{
		Magnitude: -t.Magnitude,
		Imaginary: t.Imaginary,
		Vars:      t.Vars,
	}
}

// invertTerm returns 1/t. Since 1/i = -i, an imaginary term keeps its
// imaginary flag and has its reciprocal magnitude negated.
func invertTerm(t Term) Term {
	if t.IsZero() {
		panic(Errorf("division by zero"))
	}
	vars := make([]LitVar, len(t.Vars))
	for i, v := range t.Vars {
		vars[i] = LitVar{Name: v.Name, Exp: negPoly(v.Exp)}
	}
	mag := 1 / t.Magnitude
	if t.Imaginary {
		mag = -mag
	}
	return Term{
		Magnitude: mag,
		Imaginary: t.Imaginary,
		Vars:      vars,
	}
}

// divTerms returns t/u, dividing the magnitudes directly.
func divTerms(t, u Term) Term {
	q := mulTerms(t, invertTerm(u))
	q.Magnitude = t.Magnitude / u.Magnitude
	if u.Imaginary && !t.Imaginary {
		q.Magnitude = -q.Magnitude
	}
	return q
}

func (t Term) Sprint(conf *config.Config) string {
	if t.IsZero() {
		return "0"
	}
	if !t.Imaginary && len(t.Vars) == 0 {
		return formatMagnitude(conf, t.Magnitude)
	}
	var b strings.Builder
	switch t.Magnitude {
	case 1:
	case -1:
		b.WriteByte('-')
	default:
		b.WriteString(formatMagnitude(conf, t.Magnitude))
	}
	if t.Imaginary {
		b.WriteByte('i')
	}
	for i, v := range t.Vars {
		if i > 0 {
			b.WriteByte('*')
		}
		b.WriteString(v.Name)
		if Equal(v.Exp, oneTerm) {
			continue
		}
		b.WriteByte('^')
		if e, ok := v.Exp.(Term); ok && !e.Imaginary && len(e.Vars) == 0 {
			b.WriteString(e.Sprint(conf))
			continue
		}
		b.WriteString("(" + v.Exp.Sprint(conf) + ")")
	}
	return b.String()
}

func (t Term) String() string { return t.Sprint(debugConf) }
