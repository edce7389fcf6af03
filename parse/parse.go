// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package parse builds the syntax tree of a LAL program from the tokens
// delivered by the scanner. Operator precedence is resolved as the tree
// is built, by rotating an operation into the left operand of the
// operation to its right when it binds tighter.
package parse // import "github.com/epwr/lazy-linear-algebra/parse"

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/epwr/lazy-linear-algebra/config"
	"github.com/epwr/lazy-linear-algebra/scan"
	"github.com/epwr/lazy-linear-algebra/value"
)

// Error is a syntax error in one statement.
type Error struct {
	File string
	Pos  value.Pos
	Msg  string
}

func (e *Error) Error() string {
	if e.File == "" {
		return fmt.Sprintf("%s: %s", e.Pos, e.Msg)
	}
	return fmt.Sprintf("%s:%s: %s", e.File, e.Pos, e.Msg)
}

// ErrorList is the set of syntax errors found in a program.
type ErrorList []*Error

func (l ErrorList) Error() string {
	msgs := make([]string, len(l))
	for i, e := range l {
		msgs[i] = e.Error()
	}
	return strings.Join(msgs, "\n")
}

// Parser stores the state for the LAL parser.
type Parser struct {
	scanner  *scan.Scanner
	config   *config.Config
	consumed int // tokens read so far; used to guarantee progress after an error
}

// NewParser returns a new parser that will read from the scanner.
func NewParser(conf *config.Config, scanner *scan.Scanner) *Parser {
	return &Parser{
		scanner: scanner,
		config:  conf,
	}
}

// Program parses the whole input. Every statement is parsed, and every
// syntax error reported, but if there was any error no program is
// returned and the error is an ErrorList.
func (p *Parser) Program() (*value.Program, error) {
	prog := &value.Program{Pos: value.Pos{Line: 1, Col: 1}}
	var errs ErrorList
	for !p.AtEOF() {
		stmt, err := p.Statement()
		if err != nil {
			errs = append(errs, err.(*Error))
			continue
		}
		prog.Statements = append(prog.Statements, stmt)
	}
	if len(errs) > 0 {
		return nil, errs
	}
	return prog, nil
}

// AtEOF reports whether only blanks and comments remain.
// For interactive input it waits for the next line.
func (p *Parser) AtEOF() bool {
	return p.scanner.Peek().Type == scan.EOF
}

// Statement parses the next statement. The error, if any, is a *Error,
// and the rest of the line holding it is skipped.
func (p *Parser) Statement() (stmt value.Expr, err error) {
	start := p.consumed
	defer func() {
		if e := recover(); e != nil {
			perr, ok := e.(*Error)
			if !ok || p.config.Debug("panic") {
				panic(e)
			}
			p.resync(start)
			stmt, err = nil, perr
		}
	}()
	stmt = p.statement(false)
	if p.config.Debug("parse") {
		fmt.Fprintln(p.config.Output(), Tree(stmt))
	}
	return stmt, nil
}

// resync skips the rest of the line holding the error, consuming at
// least one token since start.
func (p *Parser) resync(start int) {
	if p.consumed == start {
		p.scanner.Next()
	}
	for !p.scanner.AtEndOfLine() {
		p.scanner.Next()
	}
}

// Discard drops the rest of the current line of interactive input.
func (p *Parser) Discard() {
	p.scanner.Discard()
}

func (p *Parser) next() scan.Token {
	tok := p.scanner.Next()
	p.consumed++
	if tok.Type == scan.Error {
		p.errorf(tok, "%s", tok.Text)
	}
	return tok
}

func (p *Parser) peek() scan.Token {
	tok := p.scanner.Peek()
	if tok.Type == scan.Error {
		p.next()
	}
	return tok
}

func pos(tok scan.Token) value.Pos {
	return value.Pos{Line: tok.Line, Col: tok.Col}
}

func (p *Parser) errorf(tok scan.Token, format string, args ...interface{}) {
	panic(&Error{
		File: p.scanner.Name(),
		Pos:  pos(tok),
		Msg:  fmt.Sprintf(format, args...),
	})
}

func isPunct(tok scan.Token, text string) bool {
	return tok.Type == scan.Punctuation && tok.Text == text
}

func isKeyword(tok scan.Token, text string) bool {
	return tok.Type == scan.Keyword && tok.Text == text
}

// need consumes the next token, which must be the punctuation or keyword text.
func (p *Parser) need(typ scan.Type, text string) scan.Token {
	tok := p.next()
	if tok.Type != typ || tok.Text != text {
		p.errorf(tok, "expected %q, got %s", text, tok)
	}
	return tok
}

// isOperation reports whether a binary operator follows on the same line.
// The literal-variable marker is not a binary operator.
func (p *Parser) isOperation() bool {
	if p.scanner.AtEndOfLine() {
		return false
	}
	tok := p.peek()
	return tok.Type == scan.Operator && tok.Text != "`"
}

// isCall reports whether an opening parenthesis follows on the same line.
func (p *Parser) isCall() bool {
	return !p.scanner.AtEndOfLine() && isPunct(p.peek(), "(")
}

// statement:
//
//	'if' ifThenElse
//	'lambda' lambda
//	'return' statement
//	'set' setOperatorInfo
//	'(' tuple
//	'[' matrix
//	operand binop statement
//	identifier '(' args ')'
//	unop statement
//	operand
//
// With noBinary set, a following binary operator is left for the caller,
// so -2 * 3 is (-2) * 3.
func (p *Parser) statement(noBinary bool) value.Expr {
	tok := p.next()
	switch {
	case tok.Type == scan.EOF:
		p.errorf(tok, "unexpected EOF")
	case isKeyword(tok, "if"):
		return p.ifThenElse(tok)
	case isKeyword(tok, "lambda"):
		return p.lambda(tok)
	case isKeyword(tok, "return"):
		return &value.Return{Pos: pos(tok), Value: p.statement(false)}
	case isKeyword(tok, "set"):
		return p.setOperatorInfo(tok)
	case isPunct(tok, "("):
		return p.more(p.tuple(tok), noBinary)
	case isPunct(tok, "["):
		return p.more(p.matrix(tok), noBinary)
	}
	// A leaf followed by an operator. Operators themselves are prefixes.
	if tok.Type != scan.Operator && !noBinary && p.isOperation() {
		return p.operation(p.operand(tok))
	}
	if tok.Type == scan.Identifier && p.isCall() {
		return p.more(p.call(tok), noBinary)
	}
	if tok.Type == scan.Operator {
		return p.more(p.unary(tok), noBinary)
	}
	return p.operand(tok)
}

// more continues with a binary operation if one follows x on the same line.
func (p *Parser) more(x value.Expr, noBinary bool) value.Expr {
	if !noBinary && p.isOperation() {
		return p.operation(x)
	}
	return x
}

// operand parses a single-token leaf.
func (p *Parser) operand(tok scan.Token) value.Expr {
	switch tok.Type {
	case scan.Digit:
		f, err := strconv.ParseFloat(tok.Text, 64)
		if err != nil {
			p.errorf(tok, "bad number %q", tok.Text)
		}
		return &value.Literal{Pos: pos(tok), Value: value.Number(f)}
	case scan.Identifier:
		return &value.Reference{Pos: pos(tok), Name: tok.Text}
	case scan.Keyword:
		switch tok.Text {
		case "true":
			return &value.Literal{Pos: pos(tok), Value: value.Boolean(true)}
		case "false":
			return &value.Literal{Pos: pos(tok), Value: value.Boolean(false)}
		}
		p.errorf(tok, "unexpected keyword %q", tok.Text)
	case scan.String:
		p.errorf(tok, "strings are not supported")
	case scan.EOF:
		p.errorf(tok, "unexpected EOF")
	}
	p.errorf(tok, "unexpected %s", tok)
	panic("not reached")
}

// unary parses a prefix operator applied to the next operand, or a
// literal such as `i or `x.
func (p *Parser) unary(tok scan.Token) value.Expr {
	if tok.Text == "`" {
		id := p.next()
		if id.Type != scan.Identifier {
			p.errorf(id, "expected identifier after `, got %s", id)
		}
		if id.Text == "i" {
			return &value.Literal{Pos: pos(tok), Value: value.ImaginaryUnit()}
		}
		return &value.Literal{Pos: pos(tok), Value: value.Variable(id.Text)}
	}
	if !value.IsUnaryOp(tok.Text) {
		p.errorf(tok, "unknown unary operator %q", tok.Text)
	}
	return &value.UnaryOperation{
		Pos:   pos(tok),
		Op:    &value.Operator{Pos: pos(tok), Value: tok.Text},
		Right: p.statement(true),
	}
}

// operation parses the operator and right-hand side of a binary
// operation whose left operand has been parsed.
//
//	left '=' statement
//	left '-' statement      becomes left + (-(statement))
//	left binop statement
func (p *Parser) operation(left value.Expr) value.Expr {
	tok := p.next()
	if tok.Text == "=" {
		ref, ok := left.(*value.Reference)
		if !ok {
			p.errorf(tok, "cannot assign to %s", left.ProgString())
		}
		return &value.Assignment{Pos: left.Position(), Left: ref, Right: p.statement(false)}
	}
	if _, ok := priority[tok.Text]; !ok {
		p.errorf(tok, "unknown binary operator %q", tok.Text)
	}
	op := &value.Operator{Pos: pos(tok), Value: tok.Text}
	right := p.statement(false)
	if op.Value == "-" {
		op = &value.Operator{Pos: op.Pos, Value: "+"}
		right = &value.UnaryOperation{
			Pos:   right.Position(),
			Op:    &value.Operator{Pos: op.Pos, Value: "-"},
			Right: right,
		}
	}
	return rotate(left, op, right)
}

// rotate returns left op right. The right operand was parsed first, so
// if it is an operation that binds less tightly than op, op takes over
// its left operand instead: 2 * 3 + 4 is (2 * 3) + 4. Only one level is
// rotated, and operators of equal priority group to the right.
func rotate(left value.Expr, op *value.Operator, right value.Expr) value.Expr {
	if r, ok := right.(*value.Operation); ok && priority[op.Value] > priority[r.Op.Value] {
		r.Left = &value.Operation{Pos: left.Position(), Left: left, Op: op, Right: r.Left}
		r.Pos = left.Position()
		return r
	}
	return &value.Operation{Pos: left.Position(), Left: left, Op: op, Right: right}
}

// call parses the arguments of a call to the closure named by tok.
func (p *Parser) call(tok scan.Token) value.Expr {
	return &value.Call{
		Pos:  pos(tok),
		Name: tok.Text,
		Args: p.splitter("(", ")", ","),
	}
}

// tuple parses the rest of a parenthesized list; the '(' has been read.
// A single element other than an operation is returned as is.
func (p *Parser) tuple(tok scan.Token) value.Expr {
	values := p.splitter("", ")", ",")
	if len(values) == 0 {
		p.errorf(tok, "empty parentheses")
	}
	if len(values) == 1 {
		if _, ok := values[0].(*value.Operation); !ok {
			return values[0]
		}
	}
	return &value.TupleExpr{Pos: pos(tok), Values: values}
}

// matrix parses the rows of a matrix literal; the '[' has been read.
// Values in a row are separated by commas; rows end at a newline or at
// the closing ']'.
func (p *Parser) matrix(tok scan.Token) value.Expr {
	var rows [][]value.Expr
	for {
		row := []value.Expr{p.statement(false)}
		for !p.scanner.AtEndOfLine() && !isPunct(p.peek(), "]") {
			comma := p.next()
			if !isPunct(comma, ",") {
				p.skipMatrix()
				p.errorf(comma, "expected comma in matrix, got %s", comma)
			}
			if p.scanner.AtEndOfLine() {
				p.skipMatrix()
				p.errorf(comma, "expected matrix value, got newline")
			}
			row = append(row, p.statement(false))
		}
		if len(rows) > 0 && len(row) != len(rows[0]) {
			p.skipMatrix()
			p.errorf(tok, "inconsistent matrix row length: row %d has %d values, want %d", len(rows)+1, len(row), len(rows[0]))
		}
		rows = append(rows, row)
		if isPunct(p.peek(), "]") {
			p.next()
			break
		}
	}
	return &value.MatrixExpr{Pos: pos(tok), Rows: rows}
}

// skipMatrix discards the rest of a bad matrix literal through its
// closing ']', so that its remaining rows are not parsed as statements.
func (p *Parser) skipMatrix() {
	for depth := 1; depth > 0; {
		tok := p.scanner.Next()
		p.consumed++
		switch {
		case tok.Type == scan.EOF || tok.Type == scan.Error:
			return
		case isPunct(tok, "["):
			depth++
		case isPunct(tok, "]"):
			depth--
		}
	}
}

// ifThenElse:
//
//	'if' statement 'then' statement ['else' statement] 'end'
func (p *Parser) ifThenElse(tok scan.Token) value.Expr {
	x := &value.IfThenElse{Pos: pos(tok)}
	x.Cond = p.statement(false)
	p.need(scan.Keyword, "then")
	x.Then = p.statement(false)
	if isKeyword(p.peek(), "else") {
		p.next()
		x.Else = p.statement(false)
	}
	p.need(scan.Keyword, "end")
	return x
}

// lambda:
//
//	'lambda' '(' [identifier {',' identifier}] ')' '{' {statement [';']} '}'
func (p *Parser) lambda(tok scan.Token) value.Expr {
	x := &value.Lambda{Pos: pos(tok)}
	for _, arg := range p.splitter("(", ")", ",") {
		ref, ok := arg.(*value.Reference)
		if !ok {
			p.errorf(tok, "lambda parameter must be an identifier, got %s", arg.ProgString())
		}
		x.Args = append(x.Args, ref)
	}
	body := p.peek()
	x.Body = &value.Program{Pos: pos(body), Statements: p.splitter("{", "}", "")}
	return x
}

// setOperatorInfo:
//
//	'set' operator leftType rightType priority function
func (p *Parser) setOperatorInfo(tok scan.Token) value.Expr {
	var words [5]string
	for i := range words {
		t := p.next()
		if t.Type == scan.EOF {
			p.errorf(t, "unexpected EOF in set")
		}
		words[i] = t.Text
	}
	return &value.SetOperatorInfo{
		Pos:      pos(tok),
		Operator: words[0],
		Left:     words[1],
		Right:    words[2],
		Priority: words[3],
		Function: words[4],
	}
}

// splitter parses a list of statements delimited by start and stop and
// separated by sep. An empty start means the opening token has already
// been read; an empty sep means statements simply follow one another,
// optionally separated by semicolons.
func (p *Parser) splitter(start, stop, sep string) []value.Expr {
	if start != "" {
		p.need(scan.Punctuation, start)
	}
	if isPunct(p.peek(), stop) {
		p.next()
		return nil
	}
	var list []value.Expr
	for {
		x := p.statement(false)
		if p.isOperation() {
			x = p.operation(x)
		}
		list = append(list, x)
		tok := p.peek()
		switch {
		case isPunct(tok, stop):
			p.next()
			return list
		case tok.Type == scan.EOF:
			p.errorf(tok, "expected %q, got EOF", stop)
		case sep != "":
			p.need(scan.Punctuation, sep)
		case isPunct(tok, ";"):
			p.next()
			if isPunct(p.peek(), stop) {
				p.next()
				return list
			}
		}
	}
}
