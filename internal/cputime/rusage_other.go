//go:build !unix

package cputime

import "time"

var epoch = time.Now()

// now falls back to wall-clock time where getrusage is unavailable.
func now() time.Duration {
	return time.Since(epoch)
}
