// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package demo implements the I/O for running the -demo flag.
// The script for the demo is in demo.lal in this directory.
// Its content is embedded in this source file.
package demo

import (
	"bufio"
	"io"
	"strings"

	_ "embed"
)

//go:embed demo.lal
var demoText []byte

// Text returns the input text for the standard demo.
func Text() string {
	return string(demoText)
}

// Steps splits text into the steps of a demo. A step is one line of
// text, extended by the lines after it for as long as a bracket, brace
// or parenthesis opened in it is still open. A multi-line matrix or
// lambda is therefore a single step. Every step ends in a newline.
func Steps(text string) []string {
	var steps []string
	var step strings.Builder
	depth := 0
	for _, line := range strings.SplitAfter(text, "\n") {
		if line == "" {
			continue
		}
		step.WriteString(line)
		depth += nesting(line)
		if depth > 0 {
			continue
		}
		s := step.String()
		if !strings.HasSuffix(s, "\n") {
			s += "\n"
		}
		steps = append(steps, s)
		step.Reset()
		depth = 0
	}
	if step.Len() > 0 {
		// Unbalanced at EOF; deliver what there is and let the parser complain.
		steps = append(steps, strings.TrimSuffix(step.String(), "\n")+"\n")
	}
	return steps
}

// nesting returns the change in bracket depth across line, ignoring
// comments and quoted strings.
func nesting(line string) int {
	depth := 0
	var quote rune
	for _, r := range line {
		switch {
		case quote != 0:
			if r == quote {
				quote = 0
			}
		case r == '\'' || r == '"':
			quote = r
		case r == '#':
			return depth
		case strings.ContainsRune("([{", r):
			depth++
		case strings.ContainsRune(")]}", r):
			depth--
		}
	}
	return depth
}

// Run runs the demo. The arguments are the user's input, a Writer used
// to deliver text to the interpreter, and a Writer for the output, which
// the interpreter is assumed to share. The first step, the instructions,
// is shown before any input is read. After that, a blank line from the
// user echoes and delivers the next step of the script. A line with text
// is delivered in its place and the script does not advance; "quit"
// ends the demo. A nil userInput ignores the user and runs the script.
func Run(userInput io.Reader, toLAL io.Writer, output io.Writer) error {
	steps := Steps(Text())
	if len(steps) == 0 {
		return nil
	}
	io.WriteString(output, steps[0])
	steps = steps[1:]
	var scan *bufio.Scanner
	if userInput != nil {
		scan = bufio.NewScanner(userInput)
	}
	for len(steps) > 0 {
		if scan != nil {
			if !scan.Scan() {
				return scan.Err()
			}
			line := strings.TrimSpace(scan.Text())
			if line == "quit" {
				return nil
			}
			if line != "" {
				if _, err := io.WriteString(toLAL, line+"\n"); err != nil {
					return err
				}
				continue
			}
		}
		step := steps[0]
		steps = steps[1:]
		io.WriteString(output, step)
		if _, err := io.WriteString(toLAL, step); err != nil {
			return err
		}
	}
	return nil
}
