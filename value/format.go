// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package value

import (
	"fmt"

	"github.com/epwr/lazy-linear-algebra/config"
)

// formatMagnitude prints f using the configured format.
func formatMagnitude(conf *config.Config, f float64) string {
	if f == 0 {
		f = 0 // no negative zero
	}
	return fmt.Sprintf(conf.Format(), f)
}
