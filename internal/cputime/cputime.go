// Package cputime measures processor time consumed by the current process
// and formats the timing report written by ppmtrans.
package cputime

import (
	"fmt"
	"io"
	"time"
)

// Timer measures user plus system CPU time between Start and Stop.
// The zero value is ready to use.
type Timer struct {
	start   time.Duration
	running bool
}

// Start records the current process CPU time.
func (t *Timer) Start() {
	t.start = now()
	t.running = true
}

// Stop returns the CPU time elapsed since Start, or 0 if the timer was
// never started.
func (t *Timer) Stop() time.Duration {
	if !t.running {
		return 0
	}
	t.running = false
	d := now() - t.start
	if d < 0 {
		return 0
	}

	return d
}

// Report writes a timing summary for one transformation of a
// width×height image read from name ("stdin" when empty).
// lineSize is the cache line size of the host in bytes.
func Report(w io.Writer, name string, width, height, lineSize int, d time.Duration) error {
	if name == "" {
		name = "stdin"
	}
	cells := int64(width) * int64(height)
	perPixel := 0.0
	if cells > 0 {
		perPixel = float64(d.Nanoseconds()) / float64(cells)
	}
	_, err := fmt.Fprintf(w,
		"For file %q:\n"+
			"  width: %d, height: %d, cells: %d\n"+
			"  cache line: %d bytes\n"+
			"  recorded time: %d ns\n"+
			"  time per pixel: %.3f ns\n",
		name, width, height, cells, lineSize, d.Nanoseconds(), perPixel)

	return err
}
