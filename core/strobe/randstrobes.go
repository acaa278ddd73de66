// core/strobe/randstrobes.go
package strobe

import "strobemers/core/khash"

// RandStrobes emits strobemers whose follow-up strobes minimize
// (previous + candidate) & prime. The score depends on the previous strobe,
// so every window is scanned per anchor; nothing beyond the hashes is
// precomputed.
type RandStrobes struct {
	state
}

// NewRandStrobes builds a RandStrobes engine using the default ntHash hasher.
func NewRandStrobes(seq []byte, order, k, wMin, wMax int) (*RandStrobes, error) {
	return NewRandStrobesWithHasher(seq, order, k, wMin, wMax, khash.Default)
}

// NewRandStrobesWithHasher builds a RandStrobes engine hashing substrings with h.
func NewRandStrobesWithHasher(seq []byte, order, k, wMin, wMax int, h khash.Hasher) (*RandStrobes, error) {
	return newRandStrobes(seq, Params{Order: order, StrobeLength: k, WMin: wMin, WMax: wMax}, h)
}

func newRandStrobes(seq []byte, p Params, h khash.Hasher) (*RandStrobes, error) {
	s, err := newState(seq, p, h)
	if err != nil {
		return nil, err
	}
	return &RandStrobes{state: s}, nil
}

// Next returns the next fingerprint, or ok == false once exhausted.
func (r *RandStrobes) Next() (hash uint64, ok bool) {
	if r.order == 2 {
		return r.next2()
	}
	return r.next3()
}

func (r *RandStrobes) next2() (uint64, bool) {
	if r.idx > r.endIdx {
		return 0, false
	}
	wStart := r.idx + r.wMin
	wEnd := r.idx + r.wMax
	if wEnd > r.endHash {
		if !r.shrink {
			return 0, false
		}
		wEnd = r.endHash
	}
	if wStart > wEnd {
		return 0, false
	}

	r.h1 = r.hashes[r.idx]
	r.idx2 = r.chooseMasked(r.h1, wStart, wEnd)
	r.h2 = r.h1/2 + r.hashes[r.idx2]/3
	r.idx++
	return r.h2, true
}

func (r *RandStrobes) next3() (uint64, bool) {
	if r.idx > r.endIdx {
		return 0, false
	}
	w1Start := r.idx + r.wMin
	w1End := r.idx + r.wMax
	w2Start := r.idx + r.wMax + r.wMin
	w2End := r.idx + 2*r.wMax
	if w2Start > r.endHash {
		return 0, false
	}
	if w2End > r.endHash {
		if !r.shrink {
			return 0, false
		}
		w2End = r.endHash
	}

	r.h1 = r.hashes[r.idx]
	r.idx2 = r.chooseMasked(r.h1, w1Start, w1End)
	r.h2 = r.h1/3 + r.hashes[r.idx2]/4

	r.idx3 = r.chooseMasked(r.h2, w2Start, w2End)
	r.h3 = r.h2 + r.hashes[r.idx3]/5
	r.idx++
	return r.h3, true
}
