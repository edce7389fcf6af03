// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scan

import (
	"bufio"
	"errors"
	"io"
	"strings"

	"github.com/peterh/liner"
)

// ErrEndOfInput is returned by Source.Next when the input is exhausted.
var ErrEndOfInput = errors.New("end of input")

// A Source delivers the characters of a program one at a time with one
// character of lookahead. Line and Col give the 1-based position of the
// character Next would return; reading a newline advances the line and
// resets the column to 1.
type Source interface {
	Peek() (rune, bool)
	Next() (rune, error)
	AtEnd() bool
	Line() int
	Col() int
}

// A LineReader supplies one line of interactive input per call, without
// the trailing newline. *liner.State is the production implementation.
type LineReader interface {
	Prompt(prompt string) (string, error)
}

// position tracks line and column as characters are consumed.
type position struct {
	line int
	col  int
}

func (p *position) advance(r rune) {
	if r == '\n' {
		p.line++
		p.col = 1
		return
	}
	p.col++
}

func (p *position) Line() int { return p.line }
func (p *position) Col() int  { return p.col }

// readerSource is the file-backed Source.
type readerSource struct {
	position
	r       io.RuneReader
	peeked  rune
	hasPeek bool
	done    bool
}

// NewReaderSource returns a Source reading from r.
// Carriage returns are dropped so the scanner only ever sees '\n'.
func NewReaderSource(r io.Reader) Source {
	rr, ok := r.(io.RuneReader)
	if !ok {
		rr = bufio.NewReader(r)
	}
	return &readerSource{
		position: position{line: 1, col: 1},
		r:        rr,
	}
}

func (s *readerSource) fill() {
	if s.hasPeek || s.done {
		return
	}
	for {
		r, _, err := s.r.ReadRune()
		if err != nil {
			s.done = true
			return
		}
		if r == '\r' {
			continue
		}
		s.peeked, s.hasPeek = r, true
		return
	}
}

func (s *readerSource) Peek() (rune, bool) {
	s.fill()
	return s.peeked, s.hasPeek
}

func (s *readerSource) Next() (rune, error) {
	s.fill()
	if !s.hasPeek {
		return 0, ErrEndOfInput
	}
	r := s.peeked
	s.hasPeek = false
	s.advance(r)
	return r, nil
}

func (s *readerSource) AtEnd() bool {
	_, ok := s.Peek()
	return !ok
}

// interactiveSource is the line-buffered Source used by the REPL.
// It asks its LineReader for a new line only when the current one is used up.
type interactiveSource struct {
	position
	lr     LineReader
	prompt string
	buf    []rune
	done   bool
}

// NewInteractiveSource returns a Source that prompts lr for input a line at a time.
func NewInteractiveSource(lr LineReader, prompt string) Source {
	return &interactiveSource{
		position: position{line: 1, col: 1},
		lr:       lr,
		prompt:   prompt,
	}
}

func (s *interactiveSource) fill() {
	for len(s.buf) == 0 && !s.done {
		text, err := s.lr.Prompt(s.prompt)
		switch {
		case err == nil:
		case errors.Is(err, liner.ErrPromptAborted):
			// ^C abandons the line being typed.
			text = ""
		default:
			s.done = true
			return
		}
		if h, ok := s.lr.(interface{ AppendHistory(string) }); ok && strings.TrimSpace(text) != "" {
			h.AppendHistory(text)
		}
		s.buf = []rune(strings.ReplaceAll(text, "\r", "") + "\n")
	}
}

func (s *interactiveSource) Peek() (rune, bool) {
	s.fill()
	if len(s.buf) == 0 {
		return 0, false
	}
	return s.buf[0], true
}

func (s *interactiveSource) Next() (rune, error) {
	s.fill()
	if len(s.buf) == 0 {
		return 0, ErrEndOfInput
	}
	r := s.buf[0]
	s.buf = s.buf[1:]
	s.advance(r)
	return r, nil
}

func (s *interactiveSource) AtEnd() bool {
	_, ok := s.Peek()
	return !ok
}

// Discard drops whatever remains of the current input line.
func (s *interactiveSource) Discard() {
	if len(s.buf) > 0 {
		s.buf = s.buf[:0]
		s.position.line++
		s.position.col = 1
	}
}

// lineReader is a LineReader over plain input, used when standard input
// is not a terminal. It prints no prompt.
type lineReader struct {
	scanner *bufio.Scanner
}

// NewLineReader returns a LineReader that reads lines from r.
func NewLineReader(r io.Reader) LineReader {
	return &lineReader{scanner: bufio.NewScanner(r)}
}

func (l *lineReader) Prompt(string) (string, error) {
	if l.scanner.Scan() {
		return l.scanner.Text(), nil
	}
	if err := l.scanner.Err(); err != nil {
		return "", err
	}
	return "", io.EOF
}
