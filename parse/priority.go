// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package parse

// priority gives the binding strength of each binary operator;
// higher binds tighter. Assignment is handled separately and binds
// loosest of all.
var priority = map[string]int{
	">*<": 30, // inner product
	"<*>": 30, // outer product
	"*.":  30, // dot product
	"*+":  30, // cross product
	"*!":  30, // tensor product
	"/":   21,
	"*":   20,
	"+":   10,
	"-":   10,
	"&&":  5,
	"||":  5,
}

// Priority returns the priority of the binary operator op,
// and whether op is known.
func Priority(op string) (int, bool) {
	p, ok := priority[op]
	return p, ok
}
