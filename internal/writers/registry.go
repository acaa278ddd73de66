// internal/writers/registry.go
package writers

import (
	"fmt"
	"io"
	"sort"

	"strobemers/internal/output"
)

// Factory starts a writer goroutine. Values sent on the returned channel are
// written to out; the error channel yields exactly one value after the
// input channel is closed.
type Factory[T any] func(out io.Writer, header bool, bufSize int) (chan<- T, <-chan error)

// Writer registries (format → factory), filled in init() of the writer files.
var (
	StrobemerWriters = map[string]Factory[output.Hit]{}
	HashWriters      = map[string]Factory[output.PosHash]{}
)

// Register helpers (idempotent last-wins)
func RegisterStrobemer(format string, f Factory[output.Hit]) { StrobemerWriters[format] = f }
func RegisterHash(format string, f Factory[output.PosHash])  { HashWriters[format] = f }

// StartStrobemerWriter starts the writer registered for format.
func StartStrobemerWriter(out io.Writer, format string, header bool, bufSize int) (chan<- output.Hit, <-chan error) {
	return start(StrobemerWriters, "strobemer", out, format, header, bufSize)
}

// StartHashWriter starts the substring-hash writer registered for format.
func StartHashWriter(out io.Writer, format string, header bool, bufSize int) (chan<- output.PosHash, <-chan error) {
	return start(HashWriters, "hash", out, format, header, bufSize)
}

// Formats lists the formats registered in r, sorted.
func Formats[T any](r map[string]Factory[T]) []string {
	out := make([]string, 0, len(r))
	for f := range r {
		out = append(out, f)
	}
	sort.Strings(out)
	return out
}

func start[T any](r map[string]Factory[T], kind string, out io.Writer, format string, header bool, bufSize int) (chan<- T, <-chan error) {
	if f, ok := r[format]; ok {
		return f(out, header, bufSize)
	}
	// Unknown format: drain the input and report once it is closed.
	in := make(chan T, max(bufSize, 1))
	errCh := make(chan error, 1)
	go func() {
		for range in {
		}
		errCh <- fmt.Errorf("unknown %s format %q (no writer registered)", kind, format)
	}()
	return in, errCh
}
