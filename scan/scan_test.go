// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scan

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/epwr/lazy-linear-algebra/config"
)

func tokens(input string) []Token {
	l := New(&config.Config{}, "test", NewReaderSource(strings.NewReader(input)))
	var toks []Token
	for {
		tok := l.Next()
		toks = append(toks, tok)
		if tok.Type == EOF || tok.Type == Error {
			return toks
		}
	}
}

func TestScan(t *testing.T) {
	var tests = []struct {
		input string
		want  []Token
	}{
		{"", []Token{{EOF, "EOF", 1, 1}}},
		{"x = 3.25", []Token{
			{Identifier, "x", 1, 1},
			{Operator, "=", 1, 3},
			{Digit, "3.25", 1, 5},
			{EOF, "EOF", 1, 9},
		}},
		{"a *! b >*< c", []Token{
			{Identifier, "a", 1, 1},
			{Operator, "*!", 1, 3},
			{Identifier, "b", 1, 6},
			{Operator, ">*<", 1, 8},
			{Identifier, "c", 1, 12},
			{EOF, "EOF", 1, 13},
		}},
		// The backquote is never part of a longer operator.
		{"2*`i", []Token{
			{Digit, "2", 1, 1},
			{Operator, "*", 1, 2},
			{Operator, "`", 1, 3},
			{Identifier, "i", 1, 4},
			{EOF, "EOF", 1, 5},
		}},
		{"if a then [1, 2] end # comment\nf(x_1)", []Token{
			{Keyword, "if", 1, 1},
			{Identifier, "a", 1, 4},
			{Keyword, "then", 1, 6},
			{Punctuation, "[", 1, 11},
			{Digit, "1", 1, 12},
			{Punctuation, ",", 1, 13},
			{Digit, "2", 1, 15},
			{Punctuation, "]", 1, 16},
			{Keyword, "end", 1, 18},
			{Identifier, "f", 2, 1},
			{Punctuation, "(", 2, 2},
			{Identifier, "x_1", 2, 3},
			{Punctuation, ")", 2, 6},
			{EOF, "EOF", 2, 7},
		}},
		{"'two\nlines'", []Token{
			{String, "two\nlines", 1, 1},
			{EOF, "EOF", 2, 7},
		}},
		{"lambda (a) { return a; }", []Token{
			{Keyword, "lambda", 1, 1},
			{Punctuation, "(", 1, 8},
			{Identifier, "a", 1, 9},
			{Punctuation, ")", 1, 10},
			{Punctuation, "{", 1, 12},
			{Keyword, "return", 1, 14},
			{Identifier, "a", 1, 21},
			{Punctuation, ";", 1, 22},
			{Punctuation, "}", 1, 24},
			{EOF, "EOF", 1, 25},
		}},
		{"3. + 1.5", []Token{
			{Digit, "3.", 1, 1},
			{Operator, "+", 1, 4},
			{Digit, "1.5", 1, 6},
			{EOF, "EOF", 1, 9},
		}},
		{"x\r\ny", []Token{
			{Identifier, "x", 1, 1},
			{Identifier, "y", 2, 1},
			{EOF, "EOF", 2, 2},
		}},
	}
	for _, test := range tests {
		got := tokens(test.input)
		if len(got) != len(test.want) {
			t.Errorf("%q: got %d tokens %v; want %d %v", test.input, len(got), got, len(test.want), test.want)
			continue
		}
		for i, tok := range got {
			if tok != test.want[i] {
				t.Errorf("%q: token %d is %+v; want %+v", test.input, i, tok, test.want[i])
			}
		}
	}
}

func TestScanErrors(t *testing.T) {
	var tests = []struct {
		input string
		err   string
	}{
		{"1 $", "unrecognized character: U+0024 '$'"},
		{"'open", "unterminated string"},
	}
	for _, test := range tests {
		toks := tokens(test.input)
		last := toks[len(toks)-1]
		if last.Type != Error {
			t.Errorf("%q: expected error, got %v", test.input, toks)
			continue
		}
		if last.Text != test.err {
			t.Errorf("%q: error %q; want %q", test.input, last.Text, test.err)
		}
	}
}

func TestAtEndOfLine(t *testing.T) {
	l := New(&config.Config{}, "test", NewReaderSource(strings.NewReader("a  # note\nb c")))
	if l.AtEndOfLine() {
		t.Fatal("at end of line before a")
	}
	l.Next()
	if !l.AtEndOfLine() {
		t.Fatal("not at end of line before comment")
	}
	if tok := l.Peek(); tok.Text != "b" {
		t.Fatalf("peek: got %v; want b", tok)
	}
	// The peeked token is on a new line.
	if !l.AtEndOfLine() {
		t.Fatal("not at end of line after peeking past newline")
	}
	l.Next()
	if l.AtEndOfLine() {
		t.Fatal("at end of line before c")
	}
	l.Next()
	if !l.AtEndOfLine() {
		t.Fatal("not at end of line at EOF")
	}
}

func TestDebugTokens(t *testing.T) {
	var out bytes.Buffer
	conf := &config.Config{}
	conf.SetOutput(&out)
	conf.SetDebug("tokens", true)
	l := New(conf, "in", NewReaderSource(strings.NewReader("x")))
	l.Next()
	if want := "in:1:1: emit Identifier: \"x\"\n"; out.String() != want {
		t.Errorf("got %q; want %q", out.String(), want)
	}
}

// script is a LineReader that delivers its lines and then io.EOF.
type script []string

func (s *script) Prompt(string) (string, error) {
	if len(*s) == 0 {
		return "", io.EOF
	}
	line := (*s)[0]
	*s = (*s)[1:]
	return line, nil
}

func TestInteractiveSource(t *testing.T) {
	lines := script{"a b", "c"}
	l := New(&config.Config{}, "", NewInteractiveSource(&lines, "> "))
	if tok := l.Next(); tok.Text != "a" {
		t.Fatalf("got %v; want a", tok)
	}
	// Discarding drops the rest of the line.
	l.Discard()
	tok := l.Next()
	if tok.Text != "c" || tok.Line != 2 || tok.Col != 1 {
		t.Fatalf("after discard got %+v; want c at 2:1", tok)
	}
	if tok := l.Next(); tok.Type != EOF {
		t.Fatalf("got %v; want EOF", tok)
	}
}

func TestLineReader(t *testing.T) {
	lr := NewLineReader(strings.NewReader("one\ntwo\n"))
	for _, want := range []string{"one", "two"} {
		line, err := lr.Prompt("> ")
		if err != nil || line != want {
			t.Fatalf("got %q, %v; want %q", line, err, want)
		}
	}
	if _, err := lr.Prompt("> "); err != io.EOF {
		t.Fatalf("got %v; want io.EOF", err)
	}
}
