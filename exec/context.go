// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package exec evaluates LAL programs.
package exec // import "github.com/epwr/lazy-linear-algebra/exec"

import (
	"slices"

	"github.com/epwr/lazy-linear-algebra/config"
	"github.com/epwr/lazy-linear-algebra/value"
)

// Context holds execution context: the configuration, the call stack
// and the position of the node being evaluated.
type Context struct {
	config *config.Config

	// Stack holds one frame per closure call in progress, outermost first.
	Stack []Frame

	pos value.Pos
}

// NewContext returns a new execution context.
func NewContext(conf *config.Config) *Context {
	return &Context{
		config: conf,
	}
}

func (c *Context) Config() *config.Config {
	return c.config
}

// returned is the panic value of a return statement. It is recovered
// by the innermost closure call, or by Run at top level.
type returned struct {
	value value.Value
}

// Run evaluates the program in env, which it updates, and returns the
// value of the last statement executed along with env. The error, if
// any, is an *Error.
func (c *Context) Run(prog *value.Program, env value.Env) (result value.Value, out value.Env, err error) {
	if env == nil {
		env = value.Env{}
	}
	out = env
	defer c.catch(&result, &err)
	return c.program(prog, env), env, nil
}

// EvalStatement evaluates a single statement, as typed at the REPL.
// The statement runs on a copy of env; only if it succeeds is the copy
// returned. On error the original env is returned untouched.
func (c *Context) EvalStatement(stmt value.Expr, env value.Env) (value.Value, value.Env, error) {
	prog := &value.Program{Pos: stmt.Position(), Statements: []value.Expr{stmt}}
	v, next, err := c.Run(prog, env.Copy())
	if err != nil {
		return nil, env, err
	}
	return v, next, nil
}

// catch turns a panic raised during evaluation into a return value:
// a top-level return gives the result, a value.Error the error.
// Anything else is a bug and keeps panicking.
func (c *Context) catch(result *value.Value, errp *error) {
	e := recover()
	if e == nil {
		return
	}
	defer func() { c.Stack = c.Stack[:0] }()
	switch e := e.(type) {
	case returned:
		*result = e.value
	case value.Error:
		if c.config.Debug("panic") {
			panic(e)
		}
		*errp = &Error{
			Pos:   c.pos,
			Msg:   string(e),
			Stack: slices.Clone(c.Stack),
		}
	default:
		panic(e)
	}
}
