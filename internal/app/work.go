// internal/app/work.go
package app

import (
	"errors"
	"fmt"

	"strobemers/core/khash"
	"strobemers/core/strobe"
	"strobemers/internal/appcore"
	"strobemers/internal/cli"
	"strobemers/internal/output"
	"strobemers/internal/pipeline"
	"strobemers/internal/runutil"
)

type (
	hit     = output.Hit
	posHash = output.PosHash
)

// skippable reports construction errors that apply to one record only.
func skippable(err error) bool {
	return errors.Is(err, strobe.ErrSequenceTooShort) ||
		errors.Is(err, strobe.ErrInvalidSequence) ||
		errors.Is(err, khash.ErrInvalidBase)
}

func strobeWork(o *cli.Options, pol strobe.Policy, h khash.Hasher) appcore.WorkFunc[hit] {
	p := o.Params()
	prime, shrink := o.Prime, !o.NoShrink
	unique, dedupeCap, keepSeq := o.Unique, o.DedupeCap, o.Pretty
	return func(j pipeline.Job) (appcore.Batch[hit], error) {
		b := appcore.Batch[hit]{RecordID: j.Record.ID, SourceFile: j.SourceFile}
		it, err := strobe.New(pol, j.Record.Seq, p, h)
		if err != nil {
			if skippable(err) {
				b.Skip = err
				return b, nil
			}
			return b, fmt.Errorf("%s: record %q: %w", j.SourceFile, j.Record.ID, err)
		}
		if err := it.SetPrime(prime); err != nil {
			return b, err
		}
		it.SetWindowShrink(shrink)
		var seen *runutil.LRUSet[uint64]
		if unique {
			seen = runutil.NewLRUSet[uint64](dedupeCap)
		}
		var seq []byte
		if keepSeq {
			seq = j.Record.Seq
		}
		for _, sm := range strobe.Drain(it) {
			if seen != nil && seen.Add(sm.Hash) {
				continue
			}
			b.Items = append(b.Items, hit{
				RecordID:   j.Record.ID,
				SourceFile: j.SourceFile,
				Policy:     pol,
				Order:      p.Order,
				K:          p.StrobeLength,
				Seq:        seq,
				Strobemer:  sm,
			})
		}
		return b, nil
	}
}

func hashWork(o *cli.Options, h khash.Hasher) appcore.WorkFunc[posHash] {
	k, name := o.StrobeLength, o.Hash
	return func(j pipeline.Job) (appcore.Batch[posHash], error) {
		b := appcore.Batch[posHash]{RecordID: j.Record.ID, SourceFile: j.SourceFile}
		hashes, err := h.HashAll(j.Record.Seq, k)
		if err != nil {
			if skippable(err) {
				b.Skip = err
				return b, nil
			}
			return b, fmt.Errorf("%s: record %q: %w", j.SourceFile, j.Record.ID, err)
		}
		b.Items = make([]posHash, len(hashes))
		for i, v := range hashes {
			b.Items[i] = posHash{RecordID: j.Record.ID, SourceFile: j.SourceFile, Hasher: name, K: k, Pos: i, Hash: v}
		}
		return b, nil
	}
}
