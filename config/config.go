// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config holds the run-time configuration of the interpreter.
// A Config is built once from the command line and handed, by pointer,
// to the scanner, parser, evaluator and run loops.
package config // import "github.com/epwr/lazy-linear-algebra/config"

import (
	"io"
	"os"
)

// DefaultMaxStack is the default limit on the depth of closure calls.
const DefaultMaxStack = 10000

type Config struct {
	prompt      string
	format      string
	verbose     bool
	interactive bool
	debug       map[string]bool
	output      io.Writer
	errOutput   io.Writer
	maxStack    uint
}

// DebugFlags lists the names accepted by SetDebug.
var DebugFlags = []string{
	"cpu",
	"panic",
	"parse",
	"tokens",
}

// Format returns the fmt verb used to print magnitudes.
func (c *Config) Format() string {
	if c.format == "" {
		return "%v"
	}
	return c.format
}

func (c *Config) SetFormat(s string) {
	c.format = s
}

func (c *Config) Debug(s string) bool {
	return c.debug[s]
}

func (c *Config) SetDebug(s string, state bool) {
	if c.debug == nil {
		c.debug = make(map[string]bool)
	}
	c.debug[s] = state
}

// Verbose reports whether -v was given. It implies debug "parse".
func (c *Config) Verbose() bool {
	return c.verbose
}

func (c *Config) SetVerbose(v bool) {
	c.verbose = v
	c.SetDebug("parse", v)
}

func (c *Config) Interactive() bool {
	return c.interactive
}

func (c *Config) SetInteractive(i bool) {
	c.interactive = i
}

func (c *Config) Prompt() string {
	return c.prompt
}

func (c *Config) SetPrompt(prompt string) {
	c.prompt = prompt
}

// Output returns the writer results are printed to.
func (c *Config) Output() io.Writer {
	if c.output == nil {
		return os.Stdout
	}
	return c.output
}

func (c *Config) SetOutput(w io.Writer) {
	c.output = w
}

// ErrOutput returns the writer diagnostics are printed to.
func (c *Config) ErrOutput() io.Writer {
	if c.errOutput == nil {
		return os.Stderr
	}
	return c.errOutput
}

func (c *Config) SetErrOutput(w io.Writer) {
	c.errOutput = w
}

// MaxStack returns the maximum depth of nested closure calls.
func (c *Config) MaxStack() uint {
	if c.maxStack == 0 {
		return DefaultMaxStack
	}
	return c.maxStack
}

func (c *Config) SetMaxStack(n uint) {
	c.maxStack = n
}
