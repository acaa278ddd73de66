// core/strobe/state.go
package strobe

import (
	"fmt"
	"math"

	"strobemers/core/khash"
)

// state is the cursor and precomputed data shared by both engines.
// hashes is never written after construction.
type state struct {
	params Params
	order  int
	wMin   int
	wMax   int

	hashes  []uint64
	idx     int // next anchor
	endIdx  int // last anchor with room for every strobe
	endHash int // last hash index

	idx2, idx3 int
	h1, h2, h3 uint64

	prime  uint64
	shrink bool
}

func newState(seq []byte, p Params, h khash.Hasher) (state, error) {
	if err := p.Validate(len(seq)); err != nil {
		return state{}, err
	}
	if h == nil {
		h = khash.Default
	}
	k := p.StrobeLength
	hashes, err := h.HashAll(seq, k)
	if err != nil {
		return state{}, &HashError{Err: err}
	}
	if want := len(seq) - k + 1; len(hashes) != want {
		return state{}, fmt.Errorf("%w: got %d, want %d", ErrIncompleteHashValues, len(hashes), want)
	}

	s := state{
		params:  p,
		order:   p.Order,
		wMin:    p.WMin,
		wMax:    p.WMax,
		hashes:  hashes,
		endHash: len(seq) - k,
		endIdx:  len(seq) - k - (p.Order-1)*k,
		prime:   DefaultPrime,
		shrink:  true,
	}
	// A window reaching past the last hash is always clipped, so any
	// w_max beyond it behaves like endHash+1; capping keeps idx+w_max in range.
	if s.wMax > s.endHash+1 {
		s.wMax = s.endHash + 1
	}
	return s, nil
}

// Params returns the parameters the engine was built with.
func (s *state) Params() Params { return s.params }

// Order returns the number of strobes per fingerprint.
func (s *state) Order() int { return s.order }

// SetPrime sets the selection mask to next_power_of_two(q) - 1.
func (s *state) SetPrime(q uint64) error {
	if q < MinPrime {
		return ErrPrimeNumberTooSmall
	}
	s.prime = roundMask(q)
	return nil
}

// Prime returns the current selection mask.
func (s *state) Prime() uint64 { return s.prime }

// SetWindowShrink chooses whether windows running past the sequence end are
// truncated (true) or end the iteration (false).
func (s *state) SetWindowShrink(on bool) { s.shrink = on }

// WindowShrink reports the boundary policy.
func (s *state) WindowShrink() bool { return s.shrink }

// Index returns the anchor of the last emitted fingerprint.
func (s *state) Index() (int, bool) {
	if s.idx == 0 {
		return 0, false
	}
	return s.idx - 1, true
}

// Indexes returns [anchor, second, third] of the last emitted fingerprint.
// The third entry is meaningless for order 2; all are 0 before the first step.
func (s *state) Indexes() [3]int {
	i1, _ := s.Index()
	return [3]int{i1, s.idx2, s.idx3}
}

// chooseMasked returns the position in [lo, hi] minimizing
// (base + hashes[p]) & prime, earliest on ties. Addition wraps.
func (s *state) chooseMasked(base uint64, lo, hi int) int {
	best, bestVal := lo, uint64(math.MaxUint64)
	for p := lo; p <= hi; p++ {
		if v := (base + s.hashes[p]) & s.prime; v < bestVal {
			best, bestVal = p, v
		}
	}
	return best
}

// chooseMin returns the position and value of the smallest hash in [lo, hi],
// earliest on ties.
func (s *state) chooseMin(lo, hi int) (int, uint64) {
	best, bestVal := lo, uint64(math.MaxUint64)
	for p := lo; p <= hi; p++ {
		if v := s.hashes[p]; v < bestVal {
			best, bestVal = p, v
		}
	}
	return best, bestVal
}
