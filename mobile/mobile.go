// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// The mobile package provides a very narrow interface to the interpreter,
// suitable for wrapping in a UI for mobile applications.
// It is designed to work well with the gomobile tool by exposing
// only primitive types. It's also handy for testing.
package mobile

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/epwr/lazy-linear-algebra/config"
	"github.com/epwr/lazy-linear-algebra/demo"
	"github.com/epwr/lazy-linear-algebra/exec"
	"github.com/epwr/lazy-linear-algebra/parse"
	"github.com/epwr/lazy-linear-algebra/run"
	"github.com/epwr/lazy-linear-algebra/scan"
	"github.com/epwr/lazy-linear-algebra/value"
)

// Session holds the bindings made by the statements evaluated so far.
type Session struct {
	conf config.Config
	env  value.Env
}

// NewSession returns a session with an empty environment.
func NewSession() *Session {
	s := new(Session)
	s.Reset()
	return s
}

// Eval evaluates the input string and returns its output.
// If execution caused errors, they will be returned concatenated
// together in the error value returned. Statements that succeed
// keep their effect on the session even if others fail.
func (s *Session) Eval(expr string) (result string, errors error) {
	if !strings.HasSuffix(expr, "\n") {
		expr += "\n"
	}
	stdout := new(bytes.Buffer)
	stderr := new(bytes.Buffer)
	s.conf.SetOutput(stdout)
	s.conf.SetErrOutput(stderr)

	scanner := scan.New(&s.conf, "", scan.NewReaderSource(strings.NewReader(expr)))
	parser := parse.NewParser(&s.conf, scanner)
	s.env, _ = run.Run(parser, exec.NewContext(&s.conf), s.env, false)

	var err error
	if stderr.Len() > 0 {
		err = fmt.Errorf("%s", stderr)
	}
	return stdout.String(), err
}

// Names returns the bound names, space separated and in sorted order.
func (s *Session) Names() string {
	return strings.Join(s.env.Names(), " ")
}

// Reset clears all state to the initial value.
func (s *Session) Reset() {
	s.conf = config.Config{}
	s.env = value.Env{}
}

// Demo represents a running step-by-step demonstration.
type Demo struct {
	session *Session
	steps   []string
}

// NewDemo returns a new Demo that steps through the input text in a
// fresh session. A statement spanning lines, such as a matrix, is one step.
func NewDemo(input string) *Demo {
	return &Demo{
		session: NewSession(),
		steps:   demo.Steps(input),
	}
}

// Next returns the result (and error) produced by the next step of
// input. It returns ("", io.EOF) at EOF.
func (d *Demo) Next() (result string, err error) {
	if len(d.steps) == 0 {
		return "", io.EOF
	}
	step := d.steps[0]
	d.steps = d.steps[1:]
	return d.session.Eval(step)
}
