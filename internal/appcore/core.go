// internal/appcore/core.go
package appcore

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"

	"strobemers/internal/cmdutil"
	"strobemers/internal/pipeline"
	"strobemers/internal/writers"
)

// Options are the run-loop settings shared by every subcommand.
type Options struct {
	SeqFiles        []string
	Threads         int
	Ordered         bool
	Quiet           bool
	NoMatchExitCode int
}

// Batch is the outcome of one FASTA record: the items to write, or the
// reason the record was skipped.
type Batch[T any] struct {
	RecordID   string
	SourceFile string
	Items      []T
	Skip       error
}

// WorkFunc turns one record into a Batch. It runs concurrently.
type WorkFunc[T any] func(pipeline.Job) (Batch[T], error)

// StartFunc starts a writer goroutine over out.
type StartFunc[T any] func(out io.Writer, bufSize int) (chan<- T, <-chan error)

// Run streams every record of o.SeqFiles through work and writes the items
// with the writer from start. It returns the process exit code:
// 0 ok, o.NoMatchExitCode when nothing was written, 3 on I/O or runtime
// errors, 130 on cancellation. Broken pipes are not errors.
func Run[T any](
	parent context.Context,
	stdout, stderr io.Writer,
	o Options,
	work WorkFunc[T],
	start StartFunc[T],
) int {
	outw := bufio.NewWriter(stdout)

	thr := o.Threads
	if thr < 1 {
		thr = 1
	}
	inCh, writeErr := start(outw, thr*4)

	ctx, cancel := context.WithCancel(parent)
	defer cancel()

	warn := &cmdutil.Warner{Dst: stderr, Quiet: o.Quiet}
	total := 0
	perr := pipeline.ForEachRecord(ctx,
		pipeline.Config{Threads: thr, Ordered: o.Ordered},
		o.SeqFiles,
		work,
		func(b Batch[T]) error {
			if b.Skip != nil {
				warn.Warnf("%s: skipping record %q: %v", b.SourceFile, b.RecordID, b.Skip)
				return nil
			}
			for _, x := range b.Items {
				select {
				case inCh <- x:
				case <-ctx.Done():
					return ctx.Err()
				}
			}
			total += len(b.Items)
			return nil
		},
	)

	close(inCh)
	warn.Summary("record(s)")

	if werr := <-writeErr; writers.IsBrokenPipe(werr) {
		return 0
	} else if werr != nil {
		fmt.Fprintln(stderr, werr)
		return 3
	}
	if e := outw.Flush(); writers.IsBrokenPipe(e) {
		return 0
	} else if e != nil {
		fmt.Fprintln(stderr, e)
		return 3
	}

	if perr != nil {
		if errors.Is(perr, context.Canceled) {
			return 130
		}
		fmt.Fprintln(stderr, perr)
		return 3
	}
	if total == 0 {
		return o.NoMatchExitCode
	}
	return 0
}
