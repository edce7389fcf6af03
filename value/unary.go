// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package value

// Unary operators.

type unaryFn func(v Value) Value

var unaryOps map[string]unaryFn

// Unary applies the unary operator op to v.
func Unary(op string, v Value) Value {
	fn := unaryOps[op]
	if fn == nil {
		panic(Errorf("unary %q not implemented", op))
	}
	return fn(v)
}

// IsUnaryOp reports whether op has an implementation.
func IsUnaryOp(op string) bool {
	return unaryOps[op] != nil
}

func unaryUnsupported(op string, v Value) Error {
	return Errorf("unary %q not implemented for %s", op, v.Kind())
}

func neg(v Value) Value {
	switch v := v.(type) {
	case Scalar:
		return negScalar(v)
	case *Matrix:
		return v.scale(Number(-1))
	}
	panic(unaryUnsupported("-", v))
}

func transpose(v Value) Value {
	if m, ok := v.(*Matrix); ok {
		return m.transpose()
	}
	panic(unaryUnsupported("~", v))
}

func not(v Value) Value {
	if b, ok := v.(Boolean); ok {
		return !b
	}
	panic(unaryUnsupported("!", v))
}

func init() {
	unaryOps = map[string]unaryFn{
		"-": neg,
		"~": transpose,
		"!": not,
	}
}
