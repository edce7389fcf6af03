// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package value

import (
	"slices"
	"strings"

	"github.com/epwr/lazy-linear-algebra/config"
)

// TermList is a sum of terms that could not be merged into one, because
// they differ in their literal variables or in being real or imaginary.
// Zero terms are dropped and the rest kept in term order.
type TermList struct {
	Terms []Term
}

// NewTermList returns the canonical list of the non-zero terms.
// It does not merge like terms.
func NewTermList(terms ...Term) TermList {
	list := make([]Term, 0, len(terms))
	for _, t := range terms {
		if !t.IsZero() {
			list = append(list, t)
		}
	}
	slices.SortStableFunc(list, compareTerm)
	return TermList{Terms: list}
}

func (l TermList) Kind() string { return "TermList" }

func (TermList) scalar() {}

func (l TermList) terms() []Term {
	return l.Terms
}

func (l TermList) equal(m TermList) bool {
	return slices.EqualFunc(l.Terms, m.Terms, Term.equal)
}

func (l TermList) equalTerm(t Term) bool {
	switch len(l.Terms) {
	case 0:
		return t.IsZero()
	case 1:
		return l.Terms[0].equal(t)
	}
	return false
}

// addTermToList adds t into the first term of l with the same signature,
// or appends it if there is none.
func addTermToList(t Term, l TermList) TermList {
	terms := make([]Term, 0, len(l.Terms)+1)
	added := false
	for _, u := range l.Terms {
		if !added && sameSignature(t, u) {
			terms = append(terms, Term{
				Magnitude: u.Magnitude + t.Magnitude,
				Imaginary: t.Imaginary,
				Vars:      t.Vars,
			})
			added = true
			continue
		}
		terms = append(terms, u)
	}
	if !added {
		terms = append(terms, t)
	}
	return NewTermList(terms...)
}

// addLists folds the terms of l into m one at a time.
func addLists(l, m TermList) TermList {
	for _, t := range l.Terms {
		m = addTermToList(t, m)
	}
	return m
}

func negList(l TermList) TermList {
	terms := make([]Term, len(l.Terms))
	for i, t := range l.Terms {
		terms[i] = negTerm(t)
	}
	return NewTermList(terms...)
}

// mulTermList distributes t over l and collapses like terms.
func mulTermList(t Term, l TermList) Poly {
	terms := make([]Term, len(l.Terms))
	for i, u := range l.Terms {
		terms[i] = mulTerms(u, t)
	}
	return combineLikeTerms(terms)
}

func mulLists(l, m TermList) Poly {
	terms := make([]Term, 0, len(l.Terms)*len(m.Terms))
	for _, t := range l.Terms {
		for _, u := range m.Terms {
			terms = append(terms, mulTerms(t, u))
		}
	}
	return combineLikeTerms(terms)
}

// combineLikeTerms groups terms by signature, sums each group and then
// sums the groups, starting from zero.
func combineLikeTerms(terms []Term) Poly {
	var groups [][]Term
outer:
	for _, t := range terms {
		for i, g := range groups {
			if sameSignature(g[0], t) {
				groups[i] = append(g, t)
				continue outer
			}
		}
		groups = append(groups, []Term{t})
	}
	var sum Poly = zeroTerm
	for _, g := range groups {
		var group Poly = zeroTerm
		for _, t := range g {
			group = addPoly(t, group)
		}
		sum = addPoly(sum, group)
	}
	return sum
}

func (l TermList) Sprint(conf *config.Config) string {
	if len(l.Terms) == 0 {
		return "0"
	}
	var b strings.Builder
	for i, t := range l.Terms {
		switch {
		case i == 0:
			b.WriteString(t.Sprint(conf))
		case t.Magnitude < 0:
			b.WriteString(" - ")
			b.WriteString(negTerm(t).Sprint(conf))
		default:
			b.WriteString(" + ")
			b.WriteString(t.Sprint(conf))
		}
	}
	return b.String()
}

func (l TermList) String() string { return l.Sprint(debugConf) }

// Sums of terms.

func addPoly(a, b Poly) Poly {
	switch a := a.(type) {
	case Term:
		switch b := b.(type) {
		case Term:
			return addTerms(a, b)
		case TermList:
			return addTermToList(a, b)
		}
	case TermList:
		switch b := b.(type) {
		case Term:
			return addTermToList(b, a)
		case TermList:
			return addLists(a, b)
		}
	}
	panic("addPoly: unknown operands")
}

func mulPoly(a, b Poly) Poly {
	switch a := a.(type) {
	case Term:
		switch b := b.(type) {
		case Term:
			return mulTerms(a, b)
		case TermList:
			return mulTermList(a, b)
		}
	case TermList:
		switch b := b.(type) {
		case Term:
			return mulTermList(b, a)
		case TermList:
			return mulLists(a, b)
		}
	}
	panic("mulPoly: unknown operands")
}

func negPoly(p Poly) Poly {
	switch p := p.(type) {
	case Term:
		return negTerm(p)
	case TermList:
		return negList(p)
	}
	panic("negPoly: unknown operand")
}

// divPoly divides a term by term when b is a single term, and otherwise
// leaves the quotient as a Fraction.
func divPoly(a, b Poly) Scalar {
	t, ok := asTerm(b)
	if !ok {
		return Fraction{Num: a, Den: b}
	}
	if t.IsZero() {
		panic(Errorf("division by zero"))
	}
	switch a := a.(type) {
	case Term:
		return divTerms(a, t)
	case TermList:
		terms := make([]Term, len(a.Terms))
		for i, u := range a.Terms {
			terms[i] = divTerms(u, t)
		}
		return combineLikeTerms(terms)
	}
	panic("divPoly: unknown operand")
}

// asTerm reports whether p holds at most one term, and returns it.
func asTerm(p Poly) (Term, bool) {
	switch p := p.(type) {
	case Term:
		return p, true
	case TermList:
		switch len(p.Terms) {
		case 0:
			return zeroTerm, true
		case 1:
			return p.Terms[0], true
		}
	}
	return Term{}, false
}
