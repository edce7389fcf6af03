// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package value

import "github.com/epwr/lazy-linear-algebra/config"

// Fraction is a quotient of sums that could not be reduced.
// Only a few cancellations are performed, and the denominator
// is not checked for zero.
type Fraction struct {
	Num Poly
	Den Poly
}

func (f Fraction) Kind() string { return "Fraction" }

func (Fraction) scalar() {}

func (f Fraction) invert() Fraction {
	return Fraction{Num: f.Den, Den: f.Num}
}

func addFractions(f, g Fraction) Fraction {
	if Equal(f.Den, g.Den) {
		return Fraction{Num: addPoly(f.Num, g.Num), Den: f.Den}
	}
	return Fraction{
		Num: addPoly(mulPoly(f.Num, g.Den), mulPoly(g.Num, f.Den)),
		Den: mulPoly(f.Den, g.Den),
	}
}

// addFractionPoly returns f + p over f's denominator.
func addFractionPoly(f Fraction, p Poly) Fraction {
	return Fraction{Num: addPoly(f.Num, mulPoly(p, f.Den)), Den: f.Den}
}

func mulFractions(f, g Fraction) Fraction {
	return Fraction{Num: mulPoly(f.Num, g.Num), Den: mulPoly(f.Den, g.Den)}
}

func mulFractionPoly(f Fraction, p Poly) Fraction {
	return Fraction{Num: mulPoly(f.Num, p), Den: f.Den}
}

// divFractions cancels a shared numerator or denominator when it can,
// and otherwise multiplies by the reciprocal of g.
func divFractions(f, g Fraction) Scalar {
	switch {
	case Equal(f, g):
		return oneTerm
	case Equal(f.Num, g.Num):
		return divPoly(g.Den, f.Den)
	case Equal(f.Den, g.Den):
		return divPoly(f.Num, g.Num)
	}
	return mulFractions(f, g.invert())
}

func divFractionPoly(f Fraction, p Poly) Fraction {
	return Fraction{Num: f.Num, Den: mulPoly(f.Den, p)}
}

func divPolyFraction(p Poly, f Fraction) Fraction {
	return Fraction{Num: mulPoly(p, f.Den), Den: f.Num}
}

func negFraction(f Fraction) Fraction {
	return Fraction{Num: negPoly(f.Num), Den: f.Den}
}

func (f Fraction) Sprint(conf *config.Config) string {
	return sprintPart(conf, f.Num) + " / " + sprintPart(conf, f.Den)
}

// sprintPart parenthesizes a sum of more than one term.
func sprintPart(conf *config.Config, p Poly) string {
	if len(p.terms()) > 1 {
		return "(" + p.Sprint(conf) + ")"
	}
	return p.Sprint(conf)
}

func (f Fraction) String() string { return f.Sprint(debugConf) }
