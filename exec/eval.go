// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package exec

import (
	"fmt"

	"github.com/epwr/lazy-linear-algebra/value"
)

// program evaluates the statements in order and returns the value of
// the last, or Unit if there are none.
func (c *Context) program(prog *value.Program, env value.Env) value.Value {
	var result value.Value = value.Unit{}
	for _, stmt := range prog.Statements {
		result = c.eval(stmt, env)
	}
	return result
}

func (c *Context) eval(e value.Expr, env value.Env) value.Value {
	c.pos = e.Position()
	switch e := e.(type) {
	case *value.Literal:
		return e.Value
	case *value.Reference:
		v, ok := env[e.Name]
		if !ok {
			panic(value.Errorf("%s is not defined", e.Name))
		}
		return v
	case *value.Assignment:
		env[e.Left.Name] = c.eval(e.Right, env)
		return value.Unit{}
	case *value.Operation:
		left := c.eval(e.Left, env)
		right := c.eval(e.Right, env)
		c.pos = e.Op.Pos
		return value.Binary(left, e.Op.Value, right)
	case *value.UnaryOperation:
		right := c.eval(e.Right, env)
		c.pos = e.Op.Pos
		return value.Unary(e.Op.Value, right)
	case *value.TupleExpr:
		values := make(value.Tuple, len(e.Values))
		for i, x := range e.Values {
			values[i] = c.eval(x, env)
		}
		if len(values) == 1 {
			return values[0]
		}
		return values
	case *value.MatrixExpr:
		return c.matrix(e, env)
	case *value.IfThenElse:
		cond := c.eval(e.Cond, env)
		b, ok := cond.(value.Boolean)
		if !ok {
			c.pos = e.Pos
			panic(value.Errorf("if condition is %s, not Boolean", cond.Kind()))
		}
		switch {
		case bool(b):
			return c.eval(e.Then, env)
		case e.Else != nil:
			return c.eval(e.Else, env)
		}
		return value.Unit{}
	case *value.Lambda:
		return value.NewClosure(e.ArgNames(), env, e.Body)
	case *value.Call:
		return c.call(e, env)
	case *value.Return:
		panic(returned{c.eval(e.Value, env)})
	case *value.SetOperatorInfo:
		panic(value.Errorf("set: operator declarations are not supported"))
	case *value.Program:
		return c.program(e, env)
	case *value.Operator:
		panic(fmt.Sprintf("exec: operator %q evaluated outside an operation at %s", e.Value, e.Pos))
	}
	panic(fmt.Sprintf("exec: unexpected node %T", e))
}

func (c *Context) matrix(e *value.MatrixExpr, env value.Env) value.Value {
	rows := make([][]value.Scalar, len(e.Rows))
	for i, row := range e.Rows {
		rows[i] = make([]value.Scalar, len(row))
		for j, x := range row {
			v := c.eval(x, env)
			s, ok := v.(value.Scalar)
			if !ok {
				panic(value.Errorf("matrix value must be a scalar, got %s", v.Kind()))
			}
			rows[i][j] = s
		}
	}
	c.pos = e.Pos
	return value.NewMatrix(rows)
}

// call evaluates the arguments in the caller's environment and runs the
// closure's body in a copy of the environment it captured, extended
// with the arguments.
func (c *Context) call(x *value.Call, env value.Env) value.Value {
	v, ok := env[x.Name]
	if !ok {
		panic(value.Errorf("%s is not defined", x.Name))
	}
	fn, ok := v.(*value.Closure)
	if !ok {
		panic(value.Errorf("cannot call %s: %s is not a Closure", x.Name, v.Kind()))
	}
	if len(x.Args) != len(fn.Args) {
		panic(value.Errorf("wrong number of arguments calling %s: got %d, want %d", x.Name, len(x.Args), len(fn.Args)))
	}
	args := make([]value.Value, len(x.Args))
	for i, a := range x.Args {
		args[i] = c.eval(a, env)
	}
	c.pos = x.Pos
	if uint(len(c.Stack)) >= c.config.MaxStack() {
		panic(value.Errorf("stack overflow calling %s", x.Name))
	}
	local := fn.Env.Copy()
	for i, name := range fn.Args {
		local[name] = args[i]
	}
	c.Stack = append(c.Stack, Frame{Pos: x.Pos, Name: x.Name, Args: args})
	result := c.body(fn.Body, local)
	c.Stack = c.Stack[:len(c.Stack)-1]
	return result
}

// body runs a closure body. A return statement inside it stops the body
// and supplies the result.
func (c *Context) body(prog *value.Program, env value.Env) (result value.Value) {
	defer func() {
		if e := recover(); e != nil {
			r, ok := e.(returned)
			if !ok {
				panic(e)
			}
			result = r.value
		}
	}()
	return c.program(prog, env)
}
