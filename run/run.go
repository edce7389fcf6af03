// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package run provides the execution control for the interpreter.
// It is factored out of main so it can be used for tests.
package run // import "github.com/epwr/lazy-linear-algebra/run"

import (
	"fmt"
	"io"
	"time"

	"github.com/epwr/lazy-linear-algebra/config"
	"github.com/epwr/lazy-linear-algebra/exec"
	"github.com/epwr/lazy-linear-algebra/parse"
	"github.com/epwr/lazy-linear-algebra/scan"
	"github.com/epwr/lazy-linear-algebra/value"
)

// File parses the whole program read from r and, if it has no syntax
// errors, runs it in a fresh environment. The value of the program is
// printed unless it is Unit. All errors are reported to the configured
// error output; the returned environment is nil if there were any.
func File(conf *config.Config, name string, r io.Reader) (value.Env, bool) {
	scanner := scan.New(conf, name, scan.NewReaderSource(r))
	parser := parse.NewParser(conf, scanner)
	prog, err := parser.Program()
	if err != nil {
		fmt.Fprintln(conf.ErrOutput(), err)
		return nil, false
	}
	context := exec.NewContext(conf)
	v, env, err := context.Run(prog, value.Env{})
	if err != nil {
		fmt.Fprintf(conf.ErrOutput(), "%s:%s\n", name, err)
		return nil, false
	}
	printValue(conf, v)
	return env, true
}

// Run parses and evaluates statements one at a time until EOF, printing
// each value that is not Unit. An erroneous statement is reported and
// leaves env as it was; the loop continues with the next statement.
// Run returns the final environment and whether every statement succeeded.
func Run(p *parse.Parser, context *exec.Context, env value.Env, interactive bool) (value.Env, bool) {
	conf := context.Config()
	success := true
	if env == nil {
		env = value.Env{}
	}
	for !p.AtEOF() {
		stmt, err := p.Statement()
		if err != nil {
			fmt.Fprintln(conf.ErrOutput(), err)
			if interactive {
				p.Discard()
			}
			success = false
			continue
		}
		start := time.Now()
		v, next, err := context.EvalStatement(stmt, env)
		if interactive && conf.Debug("cpu") {
			printCPUTime(conf, time.Since(start))
		}
		if err != nil {
			fmt.Fprintln(conf.ErrOutput(), err)
			success = false
			continue
		}
		env = next
		printValue(conf, v)
	}
	return env, success
}

// REPL runs the interactive loop, reading lines from lr, until EOF.
// The environment env, which may be nil, holds the bindings to start with.
func REPL(conf *config.Config, lr scan.LineReader, env value.Env) value.Env {
	src := scan.NewInteractiveSource(lr, conf.Prompt())
	scanner := scan.New(conf, "", src)
	parser := parse.NewParser(conf, scanner)
	lastUser, lastSys = cpuTime()
	env, _ = Run(parser, exec.NewContext(conf), env, true)
	return env
}

// printValue prints v, followed by a newline, unless it is Unit.
func printValue(conf *config.Config, v value.Value) {
	if _, ok := v.(value.Unit); ok || v == nil {
		return
	}
	fmt.Fprintln(conf.Output(), v.Sprint(conf))
}
