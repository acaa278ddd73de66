// Package pipeline streams FASTA records from one or more files through a
// pool of workers and hands each worker's result to a single visit callback.
//
// Work functions run concurrently and must not share mutable state; visit
// runs on one goroutine only, so it may write to unsynchronized sinks.
package pipeline
