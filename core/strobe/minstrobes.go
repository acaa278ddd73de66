// core/strobe/minstrobes.go
package strobe

import (
	"strobemers/core/khash"
	"strobemers/core/winmin"
)

// MinStrobes emits strobemers whose follow-up strobes are the true minimum
// hash of their window. Window minima are precomputed once per sequence.
type MinStrobes struct {
	state
	minLoc []int
	minVal []uint64
}

// NewMinStrobes builds a MinStrobes engine using the default ntHash hasher.
func NewMinStrobes(seq []byte, order, k, wMin, wMax int) (*MinStrobes, error) {
	return NewMinStrobesWithHasher(seq, order, k, wMin, wMax, khash.Default)
}

// NewMinStrobesWithHasher builds a MinStrobes engine hashing substrings with h.
func NewMinStrobesWithHasher(seq []byte, order, k, wMin, wMax int, h khash.Hasher) (*MinStrobes, error) {
	return newMinStrobes(seq, Params{Order: order, StrobeLength: k, WMin: wMin, WMax: wMax}, h)
}

func newMinStrobes(seq []byte, p Params, h khash.Hasher) (*MinStrobes, error) {
	s, err := newState(seq, p, h)
	if err != nil {
		return nil, err
	}
	m := &MinStrobes{state: s}
	m.minLoc, m.minVal = winmin.SlidingMin(s.hashes, s.wMax-s.wMin+1)
	return m, nil
}

// Next returns the next fingerprint, or ok == false once exhausted.
func (m *MinStrobes) Next() (hash uint64, ok bool) {
	if m.order == 2 {
		return m.next2()
	}
	return m.next3()
}

func (m *MinStrobes) next2() (uint64, bool) {
	if m.idx > m.endIdx {
		return 0, false
	}
	wStart := m.idx + m.wMin
	wEnd := m.idx + m.wMax
	if wEnd > m.endHash {
		if !m.shrink {
			return 0, false
		}
		wEnd = m.endHash
	}
	if wStart > wEnd {
		return 0, false
	}

	m.h1 = m.hashes[m.idx]
	if wEnd == m.idx+m.wMax {
		m.idx2 = m.minLoc[wEnd]
		m.h2 = m.h1/2 + m.minVal[wEnd]/3
	} else {
		// clipped window: the precomputed width no longer applies
		pos, val := m.chooseMin(wStart, wEnd)
		m.idx2 = pos
		m.h2 = m.h1/2 + val/3
	}
	m.idx++
	return m.h2, true
}

func (m *MinStrobes) next3() (uint64, bool) {
	if m.idx > m.endIdx {
		return 0, false
	}
	w1End := m.idx + m.wMax
	w2Start := m.idx + m.wMax + m.wMin
	w2End := m.idx + 2*m.wMax
	if w2Start > m.endHash {
		return 0, false
	}
	if w2End > m.endHash {
		if !m.shrink {
			return 0, false
		}
		w2End = m.endHash
	}

	// w1End < w2Start <= endHash, so the first window is always full.
	m.h1 = m.hashes[m.idx]
	m.idx2 = m.minLoc[w1End]
	m.h2 = m.h1/3 + m.minVal[w1End]/4

	if w2End == m.idx+2*m.wMax {
		m.idx3 = m.minLoc[w2End]
		m.h3 = m.h2 + m.minVal[w2End]/5
	} else {
		// A clipped second window is chosen by masked combination with h2,
		// not by raw minimum. Existing fingerprints depend on this.
		m.idx3 = m.chooseMasked(m.h2, w2Start, w2End)
		m.h3 = m.h2 + m.hashes[m.idx3]/5
	}
	m.idx++
	return m.h3, true
}
