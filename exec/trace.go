// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package exec

import (
	"fmt"
	"strings"

	"github.com/epwr/lazy-linear-algebra/value"
)

// Frame records one closure call: where it was made, the name called
// and the evaluated arguments.
type Frame struct {
	Pos  value.Pos
	Name string
	Args []value.Value
}

func (f Frame) String() string {
	args := make([]string, len(f.Args))
	for i, a := range f.Args {
		args[i] = short(a.String())
	}
	return fmt.Sprintf("%s(%s) at %s", f.Name, strings.Join(args, ", "), f.Pos)
}

// short returns its argument, truncating if it's too long.
// Multi-line values such as matrices are joined onto one line.
func short(s string) string {
	s = strings.ReplaceAll(s, "\n", " ")
	if len(s) > 50 {
		s = s[:50] + "..."
	}
	return s
}

// Error is a run-time error. It records the position of the node being
// evaluated and the closure calls in progress when it happened.
type Error struct {
	Pos   value.Pos
	Msg   string
	Stack []Frame
}

// maxTrace is the number of innermost frames printed.
const maxTrace = 25

// Error prints the message and then the stack, innermost call last.
func (e *Error) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s: %s", e.Pos, e.Msg)
	stack := e.Stack
	if n := len(stack); n > maxTrace {
		fmt.Fprintf(&b, "\n\t•> stack truncated: %d calls total; showing innermost", n)
		stack = stack[n-maxTrace:]
	}
	for _, f := range stack {
		fmt.Fprintf(&b, "\n\t•> %s", f)
	}
	return b.String()
}
