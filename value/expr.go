// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package value

import (
	"fmt"
	"strings"
)

// Pos is a 1-based line and column in the source.
type Pos struct {
	Line int
	Col  int
}

// Position returns p; embedding Pos gives every node its position.
func (p Pos) Position() Pos { return p }

func (p Pos) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Col)
}

// Expr is the interface for a parsed expression.
// The set of implementations is closed: the nodes in this file.
type Expr interface {
	Position() Pos

	// ProgString returns the unambiguous representation of the
	// expression to be used in program source.
	ProgString() string
}

// Program is a sequence of statements, run in order.
type Program struct {
	Pos
	Statements []Expr
}

func (p *Program) ProgString() string {
	var b strings.Builder
	for i, s := range p.Statements {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(s.ProgString())
	}
	return b.String()
}

// Assignment binds Left to the value of Right.
type Assignment struct {
	Pos
	Left  *Reference
	Right Expr
}

func (a *Assignment) ProgString() string {
	return fmt.Sprintf("%s = %s", a.Left.Name, a.Right.ProgString())
}

// Operation is a binary operation. The parser may replace Left while
// it rotates for precedence; the node is not modified after parsing.
type Operation struct {
	Pos
	Left  Expr
	Op    *Operator
	Right Expr
}

func (o *Operation) ProgString() string {
	return fmt.Sprintf("%s %s %s", operand(o.Left), o.Op.Value, operand(o.Right))
}

// UnaryOperation is a prefix operator applied to Right.
type UnaryOperation struct {
	Pos
	Op    *Operator
	Right Expr
}

func (u *UnaryOperation) ProgString() string {
	return u.Op.Value + operand(u.Right)
}

// operand parenthesizes compound operands.
func operand(e Expr) string {
	switch e.(type) {
	case *Operation, *Assignment, *UnaryOperation:
		return "(" + e.ProgString() + ")"
	}
	return e.ProgString()
}

// Operator is an operator symbol. It is consumed by its enclosing
// Operation or UnaryOperation and is never evaluated on its own.
type Operator struct {
	Pos
	Value string
}

func (o *Operator) ProgString() string { return o.Value }

// Reference names a variable.
type Reference struct {
	Pos
	Name string
}

func (r *Reference) ProgString() string { return r.Name }

// TupleExpr is a parenthesized, comma-separated list of expressions.
// With one element it is simply a parenthesized expression.
type TupleExpr struct {
	Pos
	Values []Expr
}

func (t *TupleExpr) ProgString() string {
	return "(" + joinProg(t.Values, ", ") + ")"
}

// MatrixExpr is a matrix literal.
type MatrixExpr struct {
	Pos
	Rows [][]Expr
}

func (m *MatrixExpr) ProgString() string {
	rows := make([]string, len(m.Rows))
	for i, row := range m.Rows {
		rows[i] = joinProg(row, ", ")
	}
	return "[" + strings.Join(rows, "\n") + "]"
}

// IfThenElse evaluates Then or Else according to the Boolean Cond.
// Else may be nil.
type IfThenElse struct {
	Pos
	Cond Expr
	Then Expr
	Else Expr
}

func (e *IfThenElse) ProgString() string {
	s := fmt.Sprintf("if %s then %s", e.Cond.ProgString(), e.Then.ProgString())
	if e.Else != nil {
		s += " else " + e.Else.ProgString()
	}
	return s + " end"
}

// Lambda is a function literal. It evaluates to a Closure.
type Lambda struct {
	Pos
	Args []*Reference
	Body *Program
}

// ArgNames returns the names of the parameters.
func (l *Lambda) ArgNames() []string {
	names := make([]string, len(l.Args))
	for i, a := range l.Args {
		names[i] = a.Name
	}
	return names
}

func (l *Lambda) ProgString() string {
	body := make([]string, len(l.Body.Statements))
	for i, s := range l.Body.Statements {
		body[i] = s.ProgString()
	}
	return fmt.Sprintf("lambda (%s) { %s }", strings.Join(l.ArgNames(), ", "), strings.Join(body, "; "))
}

// Call invokes the closure bound to Name.
type Call struct {
	Pos
	Name string
	Args []Expr
}

func (c *Call) ProgString() string {
	return c.Name + "(" + joinProg(c.Args, ", ") + ")"
}

// Return ends the enclosing closure body, or the program, with Value.
type Return struct {
	Pos
	Value Expr
}

func (r *Return) ProgString() string {
	return "return " + r.Value.ProgString()
}

// SetOperatorInfo is an operator declaration:
//
//	set op left right priority function
//
// It is parsed but has no defined behavior.
type SetOperatorInfo struct {
	Pos
	Operator string
	Left     string
	Right    string
	Priority string
	Function string
}

func (s *SetOperatorInfo) ProgString() string {
	return strings.Join([]string{"set", s.Operator, s.Left, s.Right, s.Priority, s.Function}, " ")
}

// Literal is a value written directly in the source: a number, true or
// false, `i or a literal variable such as `x.
type Literal struct {
	Pos
	Value Value
}

func (l *Literal) ProgString() string {
	if t, ok := l.Value.(Term); ok && (t.Imaginary || len(t.Vars) > 0) {
		return "`" + t.String()
	}
	return l.Value.String()
}

func joinProg(list []Expr, sep string) string {
	strs := make([]string, len(list))
	for i, e := range list {
		strs[i] = e.ProgString()
	}
	return strings.Join(strs, sep)
}
