// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package value holds the syntax tree of a LAL program, the run-time values
// it evaluates to, and the symbolic algebra over those values.
package value // import "github.com/epwr/lazy-linear-algebra/value"

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/epwr/lazy-linear-algebra/config"
)

// Value is the interface implemented by every run-time value.
type Value interface {
	// Kind names the variant, for error messages.
	Kind() string

	// Sprint renders the value for a human reader.
	Sprint(conf *config.Config) string

	String() string
}

// debugConf is used by the String methods.
var debugConf = &config.Config{}

// Error is the type of errors raised by the algebra.
type Error string

func (err Error) Error() string {
	return string(err)
}

// Errorf returns an Error with the formatted message. Callers raise it
// with panic; the evaluator recovers it and attaches the position.
func Errorf(format string, args ...interface{}) Error {
	return Error(fmt.Sprintf(format, args...))
}

// Env is the binding of names to values in force during evaluation.
type Env map[string]Value

// Copy returns an independent copy of the environment. Closures capture
// a copy, never the live map.
func (e Env) Copy() Env {
	if e == nil {
		return Env{}
	}
	return maps.Clone(e)
}

// Names returns the bound names in sorted order.
func (e Env) Names() []string {
	var names []string
	for name := range e {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Boolean is true or false.
type Boolean bool

func (b Boolean) Kind() string { return "Boolean" }

func (b Boolean) Sprint(*config.Config) string {
	if b {
		return "true"
	}
	return "false"
}

func (b Boolean) String() string { return b.Sprint(debugConf) }

// Unit is the result of a statement, such as an assignment, that has no value.
type Unit struct{}

func (Unit) Kind() string                 { return "Unit" }
func (Unit) Sprint(*config.Config) string { return "" }
func (Unit) String() string               { return "" }

// Tuple is an evaluated parenthesized list of two or more values.
type Tuple []Value

func (t Tuple) Kind() string { return "Tuple" }

func (t Tuple) Sprint(conf *config.Config) string {
	var b strings.Builder
	b.WriteByte('(')
	for i, v := range t {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(v.Sprint(conf))
	}
	b.WriteByte(')')
	return b.String()
}

func (t Tuple) String() string { return t.Sprint(debugConf) }

// Closure is the value of a lambda expression: its parameter names,
// the environment as it was when the lambda was evaluated, and its body.
type Closure struct {
	Args []string
	Env  Env
	Body *Program
}

// NewClosure returns a closure capturing a copy of env.
func NewClosure(args []string, env Env, body *Program) *Closure {
	return &Closure{
		Args: args,
		Env:  env.Copy(),
		Body: body,
	}
}

func (c *Closure) Kind() string { return "Closure" }

func (c *Closure) Sprint(*config.Config) string {
	return "lambda(" + strings.Join(c.Args, ", ") + ")"
}

func (c *Closure) String() string { return c.Sprint(debugConf) }

// Equal reports whether two values are the same. A TermList with no terms
// equals a zero Term and a TermList with one term equals that Term.
// Closures are equal only to themselves.
func Equal(a, b Value) bool {
	switch a := a.(type) {
	case Term:
		switch b := b.(type) {
		case Term:
			return a.equal(b)
		case TermList:
			return b.equalTerm(a)
		}
	case TermList:
		switch b := b.(type) {
		case Term:
			return a.equalTerm(b)
		case TermList:
			return a.equal(b)
		}
	case Fraction:
		if b, ok := b.(Fraction); ok {
			return Equal(a.Num, b.Num) && Equal(a.Den, b.Den)
		}
	case *Matrix:
		if b, ok := b.(*Matrix); ok {
			return a.equal(b)
		}
	case Boolean:
		if b, ok := b.(Boolean); ok {
			return a == b
		}
	case Tuple:
		if b, ok := b.(Tuple); ok {
			return slices.EqualFunc(a, b, Equal)
		}
	case Unit:
		_, ok := b.(Unit)
		return ok
	case *Closure:
		if b, ok := b.(*Closure); ok {
			return a == b
		}
	}
	return false
}
