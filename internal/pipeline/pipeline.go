// internal/pipeline/pipeline.go
package pipeline

import (
	"context"
	"sync"

	"strobemers/core/fasta"
)

// Config controls the record pipeline.
type Config struct {
	Threads int  // number of worker goroutines (>=1)
	Ordered bool // deliver results in input order (file order, then record order)
}

// Job is one FASTA record queued for a worker.
type Job struct {
	Record     fasta.Record
	SourceFile string
	Ordinal    int // 0-based position across all input files
}

type result[T any] struct {
	ord int
	val T
}

// ForEachRecord reads every record of seqFiles, runs work on each in a pool
// of cfg.Threads goroutines, and calls visit with each result. The first
// error from reading, work or visit stops the run and is returned; context
// cancellation returns ctx.Err().
func ForEachRecord[T any](
	parent context.Context,
	cfg Config,
	seqFiles []string,
	work func(Job) (T, error),
	visit func(T) error,
) error {
	if cfg.Threads < 1 {
		cfg.Threads = 1
	}
	ctx, cancel := context.WithCancel(parent)
	defer cancel()

	var (
		once     sync.Once
		firstErr error
	)
	fail := func(err error) {
		once.Do(func() {
			firstErr = err
			cancel()
		})
	}

	jobs := make(chan Job, cfg.Threads*2)
	results := make(chan result[T], cfg.Threads*2)

	// Workers
	var wg sync.WaitGroup
	wg.Add(cfg.Threads)
	for w := 0; w < cfg.Threads; w++ {
		go func() {
			defer wg.Done()
			for j := range jobs {
				if ctx.Err() != nil {
					continue
				}
				v, err := work(j)
				if err != nil {
					fail(err)
					continue
				}
				select {
				case results <- result[T]{ord: j.Ordinal, val: v}:
				case <-ctx.Done():
				}
			}
		}()
	}

	// Collector
	var cwg sync.WaitGroup
	cwg.Add(1)
	go func() {
		defer cwg.Done()
		var (
			next    int
			pending = map[int]T{}
			failed  bool
		)
		deliver := func(v T) {
			if failed {
				return
			}
			if err := visit(v); err != nil {
				failed = true
				fail(err)
			}
		}
		for r := range results {
			if !cfg.Ordered {
				deliver(r.val)
				continue
			}
			pending[r.ord] = r.val
			for {
				v, ok := pending[next]
				if !ok {
					break
				}
				delete(pending, next)
				next++
				deliver(v)
			}
		}
	}()

	// Feed work
	ord := 0
	for _, fa := range seqFiles {
		err := fasta.ScanPath(ctx, fa, func(rec fasta.Record) error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case jobs <- Job{Record: rec, SourceFile: fa, Ordinal: ord}:
				ord++
				return nil
			}
		})
		if err != nil {
			fail(err)
			break
		}
	}

	close(jobs)
	wg.Wait()
	close(results)
	cwg.Wait()

	if err := parent.Err(); err != nil {
		return err
	}
	return firstErr
}
