// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package run

import (
	"fmt"
	"time"

	"github.com/epwr/lazy-linear-algebra/config"
)

// cpuTime reports the user and system time consumed by the process so
// far. It is zero where the platform offers no way to measure it.
var cpuTime = func() (user, sys time.Duration) { return 0, 0 }

var lastUser, lastSys time.Duration

// printCPUTime prints the real time of the last statement and the CPU
// time used since the previous report, for the "cpu" debug setting.
func printCPUTime(conf *config.Config, real time.Duration) {
	user, sys := cpuTime()
	du, ds := user-lastUser, sys-lastSys
	lastUser, lastSys = user, sys
	if user == 0 && sys == 0 {
		fmt.Fprintf(conf.Output(), "(%s)\n", round(real))
		return
	}
	fmt.Fprintf(conf.Output(), "(%s; %s user, %s sys)\n", round(real), round(du), round(ds))
}

// round trims d to a readable precision.
func round(d time.Duration) time.Duration {
	switch {
	case d > time.Second:
		return d.Round(time.Millisecond)
	case d > time.Millisecond:
		return d.Round(time.Microsecond)
	}
	return d
}
