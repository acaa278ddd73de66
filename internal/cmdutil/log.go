// internal/cmdutil/log.go
package cmdutil

import (
	"fmt"
	"io"
)

// Warnf writes a "WARN: " line to dst unless quiet is set.
func Warnf(dst io.Writer, quiet bool, format string, a ...any) {
	if quiet {
		return
	}
	_, _ = fmt.Fprintf(dst, "WARN: "+format+"\n", a...)
}

// Warner counts the warnings it is given, printed or not.
// It is not safe for concurrent use.
type Warner struct {
	Dst   io.Writer
	Quiet bool
	n     int
}

// Warnf records one warning and prints it unless w.Quiet.
func (w *Warner) Warnf(format string, a ...any) {
	w.n++
	Warnf(w.Dst, w.Quiet, format, a...)
}

// Count returns the number of warnings recorded so far.
func (w *Warner) Count() int { return w.n }

// Summary prints "<n> <noun> skipped" once if any warning was recorded.
func (w *Warner) Summary(noun string) {
	if w.n == 0 {
		return
	}
	Warnf(w.Dst, w.Quiet, "%d %s skipped", w.n, noun)
}
