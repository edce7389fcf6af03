// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package value

// Binary operators.

// To avoid initialization cycles when we refer to the ops from inside
// themselves, we use an init function to initialize the ops.

type binaryFn func(u, v Value) Value

var binaryOps map[string]binaryFn

// Binary applies the binary operator op to u and v.
func Binary(u Value, op string, v Value) Value {
	fn := binaryOps[op]
	if fn == nil {
		panic(Errorf("binary %q not implemented", op))
	}
	return fn(u, v)
}

// IsBinaryOp reports whether op has an implementation.
func IsBinaryOp(op string) bool {
	return binaryOps[op] != nil
}

func unsupported(op string, u, v Value) Error {
	return Errorf("operator %q not implemented for left: %s, right: %s", op, u.Kind(), v.Kind())
}

func add(u, v Value) Value {
	switch u := u.(type) {
	case Scalar:
		if v, ok := v.(Scalar); ok {
			return addScalars(u, v)
		}
	case *Matrix:
		if v, ok := v.(*Matrix); ok {
			return u.add(v)
		}
	}
	panic(unsupported("+", u, v))
}

func sub(u, v Value) Value {
	switch u.(type) {
	case Scalar:
		if v, ok := v.(Scalar); ok {
			return add(u, negScalar(v))
		}
	case *Matrix:
		if v, ok := v.(*Matrix); ok {
			return add(u, v.scale(Number(-1)))
		}
	}
	panic(unsupported("-", u, v))
}

func mul(u, v Value) Value {
	switch u := u.(type) {
	case Scalar:
		switch v := v.(type) {
		case Scalar:
			return mulScalars(u, v)
		case *Matrix:
			return v.scale(u)
		}
	case *Matrix:
		switch v := v.(type) {
		case Scalar:
			return u.scale(v)
		case *Matrix:
			return u.mul(v)
		}
	}
	panic(unsupported("*", u, v))
}

func div(u, v Value) Value {
	if u, ok := u.(Scalar); ok {
		if v, ok := v.(Scalar); ok {
			return divScalars(u, v)
		}
	}
	panic(unsupported("/", u, v))
}

func tensor(u, v Value) Value {
	if u, ok := u.(*Matrix); ok {
		if v, ok := v.(*Matrix); ok {
			return u.tensor(v)
		}
	}
	panic(unsupported("*!", u, v))
}

func boolOp(op string, fn func(a, b Boolean) Boolean) binaryFn {
	return func(u, v Value) Value {
		if a, ok := u.(Boolean); ok {
			if b, ok := v.(Boolean); ok {
				return fn(a, b)
			}
		}
		panic(unsupported(op, u, v))
	}
}

func notImplemented(op string) binaryFn {
	return func(u, v Value) Value {
		panic(Errorf("binary %q not implemented", op))
	}
}

func init() {
	binaryOps = map[string]binaryFn{
		"+":   add,
		"-":   sub,
		"*":   mul,
		"/":   div,
		"*!":  tensor,
		"&&":  boolOp("&&", func(a, b Boolean) Boolean { return a && b }),
		"||":  boolOp("||", func(a, b Boolean) Boolean { return a || b }),
		">*<": notImplemented(">*<"),
		"<*>": notImplemented("<*>"),
		"*.":  notImplemented("*."),
		"*+":  notImplemented("*+"),
	}
}

// Scalar arithmetic. A Fraction meeting a Term or TermList is handled
// by the fraction rules; two sums by the term rules.

func addScalars(a, b Scalar) Scalar {
	switch a := a.(type) {
	case Poly:
		switch b := b.(type) {
		case Poly:
			return addPoly(a, b)
		case Fraction:
			return addFractionPoly(b, a)
		}
	case Fraction:
		switch b := b.(type) {
		case Poly:
			return addFractionPoly(a, b)
		case Fraction:
			return addFractions(a, b)
		}
	}
	panic("addScalars: unknown operands")
}

func mulScalars(a, b Scalar) Scalar {
	switch a := a.(type) {
	case Poly:
		switch b := b.(type) {
		case Poly:
			return mulPoly(a, b)
		case Fraction:
			return mulFractionPoly(b, a)
		}
	case Fraction:
		switch b := b.(type) {
		case Poly:
			return mulFractionPoly(a, b)
		case Fraction:
			return mulFractions(a, b)
		}
	}
	panic("mulScalars: unknown operands")
}

func divScalars(a, b Scalar) Scalar {
	switch a := a.(type) {
	case Poly:
		switch b := b.(type) {
		case Poly:
			return divPoly(a, b)
		case Fraction:
			return divPolyFraction(a, b)
		}
	case Fraction:
		switch b := b.(type) {
		case Poly:
			return divFractionPoly(a, b)
		case Fraction:
			return divFractions(a, b)
		}
	}
	panic("divScalars: unknown operands")
}

func negScalar(a Scalar) Scalar {
	switch a := a.(type) {
	case Poly:
		return negPoly(a)
	case Fraction:
		return negFraction(a)
	}
	panic("negScalar: unknown operand")
}
