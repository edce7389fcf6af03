// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scan // import "github.com/epwr/lazy-linear-algebra/scan"

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/epwr/lazy-linear-algebra/config"
)

// Token represents a token or text string returned from the scanner.
type Token struct {
	Type Type   // The type of this item.
	Text string // The text of this item.
	Line int    // The line number on which this token starts.
	Col  int    // The column at which this token starts.
}

// Type identifies the type of lex items.
type Type int

const (
	EOF         Type = iota // zero value
	Error                   // error occurred; value is text of error
	Digit                   // number such as 3 or 2.5
	Identifier              // alphanumeric identifier
	Keyword                 // if, then, else, end, true, false, lambda, return, set
	Operator                // maximal run of operator characters
	Punctuation             // single character such as ( or ,
	String                  // quoted string, quotes removed
)

var typeNames = [...]string{
	EOF:         "EOF",
	Error:       "Error",
	Digit:       "Digit",
	Identifier:  "Identifier",
	Keyword:     "Keyword",
	Operator:    "Operator",
	Punctuation: "Punctuation",
	String:      "String",
}

func (t Type) String() string {
	if t < 0 || int(t) >= len(typeNames) {
		return fmt.Sprintf("Type(%d)", int(t))
	}
	return typeNames[t]
}

func (i Token) String() string {
	switch {
	case i.Type == EOF:
		return "EOF"
	case i.Type == Error:
		return "error: " + i.Text
	case len(i.Text) > 10:
		return fmt.Sprintf("%s: %.10q...", i.Type, i.Text)
	}
	return fmt.Sprintf("%s: %q", i.Type, i.Text)
}

const (
	commentStart = '#'
	operators    = "=~+-*/><?|&`!"
	punctuation  = "()[]{}.,;"
)

var keywords = map[string]bool{
	"if":     true,
	"then":   true,
	"else":   true,
	"end":    true,
	"true":   true,
	"false":  true,
	"lambda": true,
	"return": true,
	"set":    true,
}

// IsKeyword reports whether word is reserved.
func IsKeyword(word string) bool {
	return keywords[word]
}

// stateFn represents the state of the scanner as a function that returns the next state.
type stateFn func(*Scanner) stateFn

// Scanner holds the state of the scanner.
type Scanner struct {
	config  *config.Config
	src     Source
	name    string          // the name of the input; used only for error reports
	text    strings.Builder // text of the token being scanned
	line    int             // line of the start of this token
	col     int             // column of the start of this token
	newline bool            // a newline was skipped before this token
	token   Token

	peeked  bool
	peekTok Token
	peekNL  bool
}

// New creates and returns a new scanner reading from src.
func New(conf *config.Config, name string, src Source) *Scanner {
	return &Scanner{
		config: conf,
		src:    src,
		name:   name,
	}
}

// Name returns the name of the input.
func (l *Scanner) Name() string {
	return l.name
}

// Next returns the next token, consuming it.
func (l *Scanner) Next() Token {
	if l.peeked {
		l.peeked = false
		return l.peekTok
	}
	tok, _ := l.scan()
	return tok
}

// Peek returns the next token without consuming it.
func (l *Scanner) Peek() Token {
	if !l.peeked {
		l.peekTok, l.peekNL = l.scan()
		l.peeked = true
	}
	return l.peekTok
}

// AtEndOfLine reports whether the next significant character is a newline,
// a comment or the end of input. Blanks before it are skipped, but no
// token is consumed.
func (l *Scanner) AtEndOfLine() bool {
	if l.peeked {
		return l.peekTok.Type == EOF || l.peekNL
	}
	for {
		r, ok := l.src.Peek()
		if !ok {
			return true
		}
		switch {
		case r == '\n' || r == commentStart:
			return true
		case isSpace(r):
			l.src.Next()
		default:
			return false
		}
	}
}

// Discard drops any lookahead and, for interactive input, the rest of the
// current line. It is used to resynchronize after an error.
func (l *Scanner) Discard() {
	l.peeked = false
	if d, ok := l.src.(interface{ Discard() }); ok {
		d.Discard()
	}
}

// scan runs the state machine for one token.
func (l *Scanner) scan() (Token, bool) {
	l.newline = false
	l.token = Token{Type: EOF, Text: "EOF", Line: l.src.Line(), Col: l.src.Col()}
	for state := stateFn(lexAny); state != nil; {
		state = state(l)
	}
	return l.token, l.newline
}

// next consumes and returns the next character, or eof.
func (l *Scanner) next() rune {
	r, err := l.src.Next()
	if err != nil {
		return eof
	}
	return r
}

// peek returns but does not consume the next character.
func (l *Scanner) peek() rune {
	r, ok := l.src.Peek()
	if !ok {
		return eof
	}
	return r
}

const eof = -1

// start marks the beginning of a token at the current position.
func (l *Scanner) start() {
	l.text.Reset()
	l.line = l.src.Line()
	l.col = l.src.Col()
}

// take consumes the next character into the token text.
func (l *Scanner) take() rune {
	r := l.next()
	if r != eof {
		l.text.WriteRune(r)
	}
	return r
}

// takeWhile consumes a run of characters satisfying fn.
func (l *Scanner) takeWhile(fn func(rune) bool) {
	for r := l.peek(); r != eof && fn(r); r = l.peek() {
		l.take()
	}
}

// emit records the token for the client.
func (l *Scanner) emit(t Type) stateFn {
	l.token = Token{Type: t, Text: l.text.String(), Line: l.line, Col: l.col}
	if l.config != nil && l.config.Debug("tokens") {
		fmt.Fprintf(l.config.Output(), "%s:%d:%d: emit %s\n", l.name, l.line, l.col, l.token)
	}
	return nil
}

// errorf records an error token and stops the scan.
func (l *Scanner) errorf(format string, args ...interface{}) stateFn {
	l.token = Token{Type: Error, Text: fmt.Sprintf(format, args...), Line: l.line, Col: l.col}
	return nil
}

// state functions

// lexAny scans non-space items.
func lexAny(l *Scanner) stateFn {
	l.start()
	switch r := l.peek(); {
	case r == eof:
		l.token = Token{Type: EOF, Text: "EOF", Line: l.line, Col: l.col}
		return nil
	case isSpace(r) || r == '\n':
		return lexSpace
	case r == commentStart:
		return lexComment
	case r == '\'' || r == '"':
		return lexQuote
	case isDigit(r):
		return lexNumber
	case isOperator(r):
		return lexOperator
	case isPunctuation(r):
		l.take()
		return l.emit(Punctuation)
	case isIdentifierStart(r):
		return lexIdentifier
	default:
		l.next()
		return l.errorf("unrecognized character: %#U", r)
	}
}

// lexSpace skips a run of blanks and newlines.
func lexSpace(l *Scanner) stateFn {
	for r := l.peek(); isSpace(r) || r == '\n'; r = l.peek() {
		if r == '\n' {
			l.newline = true
		}
		l.next()
	}
	return lexAny
}

// lexComment discards through the end of the line.
func lexComment(l *Scanner) stateFn {
	for {
		r := l.next()
		if r == eof {
			return lexAny
		}
		if r == '\n' {
			l.newline = true
			return lexAny
		}
	}
}

// lexQuote scans a quoted string. The next character is the quote.
// Strings may span lines; only the end of input terminates them early.
func lexQuote(l *Scanner) stateFn {
	quote := l.next()
	for {
		r := l.next()
		switch r {
		case eof:
			return l.errorf("unterminated string")
		case quote:
			return l.emit(String)
		}
		l.text.WriteRune(r)
	}
}

// lexNumber scans [0-9]+(\.[0-9]*)?. A trailing point, as in 1., is
// part of the number.
func lexNumber(l *Scanner) stateFn {
	l.takeWhile(isDigit)
	if l.peek() == '.' {
		l.take()
		l.takeWhile(isDigit)
	}
	return l.emit(Digit)
}

// lexOperator scans a maximal run of operator characters, so compound
// operators such as *! and >*< come out as single tokens. The
// literal-variable marker ` always stands alone.
func lexOperator(l *Scanner) stateFn {
	if l.take() == '`' {
		return l.emit(Operator)
	}
	l.takeWhile(func(r rune) bool {
		return isOperator(r) && r != '`'
	})
	return l.emit(Operator)
}

// lexIdentifier scans an alphanumeric word and classifies it.
func lexIdentifier(l *Scanner) stateFn {
	l.takeWhile(isAlphaNumeric)
	if keywords[l.text.String()] {
		return l.emit(Keyword)
	}
	return l.emit(Identifier)
}

// isSpace reports whether r is a blank other than newline.
func isSpace(r rune) bool {
	return r == ' ' || r == '\t' || r == '\r'
}

func isDigit(r rune) bool {
	return '0' <= r && r <= '9'
}

func isOperator(r rune) bool {
	return r != eof && strings.ContainsRune(operators, r)
}

func isPunctuation(r rune) bool {
	return r != eof && strings.ContainsRune(punctuation, r)
}

func isIdentifierStart(r rune) bool {
	return r == '_' || unicode.IsLetter(r)
}

// isAlphaNumeric reports whether r is an alphabetic, digit, or underscore.
func isAlphaNumeric(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}
