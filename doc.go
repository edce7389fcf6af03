// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Lal is an interpreter for LAL, a small language for lazy linear algebra.
Its values are symbolic: terms such as 3, 2i or 4x^2, sums of terms that
cannot be merged, fractions of sums, and matrices of any of these.

Usage:

	lal [-h|--help] [-v] [-i] [-demo] [input_file]

With a file, lal parses the whole file and, if it has no syntax errors,
runs it and prints its value. With -i it then starts an interactive
session seeded with the file's variables; without a file, -i starts an
empty session. The -v flag prints the parse tree of every statement.
The -format flag sets the fmt verb used for magnitudes, default %v, and
-prompt sets the interactive prompt. The -demo flag steps through a
short tour of the language.

Statements are separated by newlines. Comments run from # to the end of
the line.

	x = 3                 # assignment
	y = x * 2             # 6
	`x * `x               # the literal variable x, squared: x^2
	2 + 3 * `i            # 2 + 3i
	`i * `i               # -1
	1 / (`x + 1)          # 1 / (1 + x)

Binary operators, loosest first:

	=                     assignment
	&& ||                 and, or
	+ -                   addition, subtraction
	*                     multiplication
	/                     division
	*!                    tensor product
	>*< <*> *. *+         reserved: inner, outer, dot and cross products

Operators of the same priority group to the right, so 8 / 4 / 2 is 4.
A binary - negates everything to its right: 1 - 2 + 3 is 1 - (2 + 3).
Unary operators are - (negation), ! (not) and ~ (matrix transpose).

Matrices are written in brackets, with commas between values and rows
ending at a newline:

	m = [1, 2
	     3, 4]
	~m * m

Functions are lambdas. A lambda captures a copy of the variables bound
when it is created; later assignments are not seen by it.

	double = lambda (a) { return a * 2 }
	double(x)
	if true && !false then 1 else 0 end
*/
package main
