// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package parse

import (
	"fmt"
	"strings"

	"github.com/epwr/lazy-linear-algebra/value"
)

// Tree formats an expression in an unambiguous form for debugging.
// It generates the output for the "parse" debug setting.
func Tree(e value.Expr) string {
	switch e := e.(type) {
	case nil:
		return "<nil>"
	case *value.Literal:
		return fmt.Sprintf("<%s %s>", strings.ToLower(e.Value.Kind()), e.Value)
	case *value.Reference:
		return fmt.Sprintf("<var %s>", e.Name)
	case *value.Operator:
		return fmt.Sprintf("<op %s>", e.Value)
	case *value.UnaryOperation:
		return fmt.Sprintf("(%s %s)", e.Op.Value, Tree(e.Right))
	case *value.Operation:
		return fmt.Sprintf("(%s %s %s)", Tree(e.Left), e.Op.Value, Tree(e.Right))
	case *value.Assignment:
		return fmt.Sprintf("(%s = %s)", e.Left.Name, Tree(e.Right))
	case *value.TupleExpr:
		return "<tuple " + treeList(e.Values, ", ") + ">"
	case *value.MatrixExpr:
		rows := make([]string, len(e.Rows))
		for i, row := range e.Rows {
			rows[i] = treeList(row, " ")
		}
		return "<matrix " + strings.Join(rows, "; ") + ">"
	case *value.IfThenElse:
		s := fmt.Sprintf("<:if %s; %s; ", Tree(e.Cond), Tree(e.Then))
		if e.Else != nil {
			s += fmt.Sprintf(":else %s; ", Tree(e.Else))
		}
		return s + ":end>"
	case *value.Lambda:
		return fmt.Sprintf("<lambda (%s) %s>", strings.Join(e.ArgNames(), ", "), Tree(e.Body))
	case *value.Call:
		return fmt.Sprintf("<call %s(%s)>", e.Name, treeList(e.Args, ", "))
	case *value.Return:
		return fmt.Sprintf(":ret %s", Tree(e.Value))
	case *value.SetOperatorInfo:
		return "<" + e.ProgString() + ">"
	case *value.Program:
		return "{" + treeList(e.Statements, "; ") + "}"
	default:
		return fmt.Sprintf("%T", e)
	}
}

func treeList(list []value.Expr, sep string) string {
	s := make([]string, len(list))
	for i, e := range list {
		s[i] = Tree(e)
	}
	return strings.Join(s, sep)
}
