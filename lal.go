// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/peterh/liner"

	"github.com/epwr/lazy-linear-algebra/config"
	"github.com/epwr/lazy-linear-algebra/demo"
	"github.com/epwr/lazy-linear-algebra/run"
	"github.com/epwr/lazy-linear-algebra/scan"
	"github.com/epwr/lazy-linear-algebra/value"
)

const historyFile = ".lal_history"

// isTTY reports whether the file descriptor is a terminal.
// It is set by the system-specific files that can tell.
var isTTY = func(fd uintptr) bool { return false }

func main() {
	log.SetFlags(0)
	log.SetPrefix("lal: ")
	os.Exit(lal(os.Args[1:], os.Stdout, os.Stderr))
}

// lal runs the command with the given arguments and returns the exit status.
func lal(args []string, stdout, stderr io.Writer) int {
	log.SetOutput(stderr)
	fs := flag.NewFlagSet("lal", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var (
		verbose     = fs.Bool("v", false, "verbose: print the parse tree of each statement")
		interactive = fs.Bool("i", false, "interactive: run the REPL, after running file if one is given")
		format      = fs.String("format", "%v", "fmt verb for printing magnitudes")
		prompt      = fs.String("prompt", ">> ", "interactive prompt")
		runDemo     = fs.Bool("demo", false, "run the demo; press return to step through it")
	)
	fs.Usage = func() {
		fmt.Fprintf(stderr, "usage: lal [-h|--help] [-v] [-i] [-demo] [input_file]\n")
		fmt.Fprintf(stderr, "Flags:\n")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}

	var conf config.Config
	conf.SetOutput(stdout)
	conf.SetErrOutput(stderr)
	conf.SetFormat(*format)
	conf.SetPrompt(*prompt)
	conf.SetVerbose(*verbose)
	conf.SetInteractive(*interactive)

	if *runDemo {
		showDemo(&conf, os.Stdin)
		return 0
	}

	var name string
	switch fs.NArg() {
	case 0:
		if !conf.Interactive() {
			log.Print("no input file; use -h for help")
			return 2
		}
	case 1:
		name = fs.Arg(0)
	default:
		fs.Usage()
		return 2
	}

	var env value.Env
	ok := true
	if name != "" {
		fd, err := os.Open(name)
		if err != nil {
			log.Print(err)
			return 2
		}
		env, ok = run.File(&conf, name, fd)
		fd.Close()
	}
	if !conf.Interactive() {
		if !ok {
			return 1
		}
		return 0
	}
	if name != "" && !ok {
		fmt.Fprintln(stdout, "interactive mode running with an empty environment")
	}
	repl(&conf, env)
	return 0
}

// repl runs the interactive loop. On a terminal it edits lines with
// liner and keeps a history file in the home directory.
func repl(conf *config.Config, env value.Env) {
	if !isTTY(os.Stdin.Fd()) {
		conf.SetPrompt("")
		run.REPL(conf, scan.NewLineReader(os.Stdin), env)
		return
	}
	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	home, _ := os.UserHomeDir()
	histPath := filepath.Join(home, historyFile)
	if f, err := os.Open(histPath); err == nil {
		_, _ = ln.ReadHistory(f)
		_ = f.Close()
	}
	defer func() {
		if f, err := os.Create(histPath); err == nil {
			_, _ = ln.WriteHistory(f)
			_ = f.Close()
		}
	}()

	run.REPL(conf, ln, env)
	fmt.Fprintln(conf.Output())
}

// showDemo feeds the demo script, a line at a time as the user presses
// return, to an interactive session.
func showDemo(conf *config.Config, user io.Reader) {
	pr, pw := io.Pipe()
	go func() {
		if err := demo.Run(user, pw, conf.Output()); err != nil {
			log.Print(err)
		}
		pw.Close()
	}()
	conf.SetPrompt("")
	run.REPL(conf, scan.NewLineReader(pr), nil)
}
