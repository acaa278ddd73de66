// Package writers turns strobemer hits and substring hashes into serialized
// outputs.
//
// Writers run in their own goroutine and own all presentation knowledge
// (TSV, JSON, JSONL). The pipeline stays orchestration-only. JSON and JSONL
// go through pkg/api (v1) for a stable wire format.
package writers
