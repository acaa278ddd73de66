// core/strobe/params.go
package strobe

import (
	"math"
	"math/bits"
)

// DefaultPrime is the default selection mask, 2^20 - 1.
const DefaultPrime uint64 = 1<<20 - 1

// MinPrime is the smallest value SetPrime accepts.
const MinPrime uint64 = 256

// Params are the immutable strobemer parameters.
type Params struct {
	Order        int // 2 or 3 strobes per fingerprint
	StrobeLength int // k, in [1, 64]
	WMin         int // inclusive offset bounds of the next strobe
	WMax         int
}

// Validate checks p against a sequence of length seqLen, in the order
// sequence, order, strobe length, window offsets, length.
func (p Params) Validate(seqLen int) error {
	if seqLen == 0 {
		return ErrInvalidSequence
	}
	if p.Order != 2 && p.Order != 3 {
		return ErrOrderNotSupported
	}
	if p.StrobeLength < 1 || p.StrobeLength > 64 {
		return ErrStrobeLengthTooSmall
	}
	if p.WMin < 1 || p.WMax < 1 || p.WMin > p.WMax {
		return ErrInvalidWindowOffsets
	}
	if seqLen < p.MinLength() {
		return ErrSequenceTooShort
	}
	return nil
}

// MinLength is the shortest sequence that yields a fingerprint at anchor 0:
// every strobe fits, and the last window starts before the last substring.
// Order and window offsets must already be valid.
func (p Params) MinLength() int {
	k := p.StrobeLength
	if p.Order == 2 {
		return max(2*k, satAdd(k, p.WMin))
	}
	return max(3*k, satAdd(satAdd(k, p.WMax), p.WMin))
}

func satAdd(a, b int) int {
	if a > math.MaxInt-b {
		return math.MaxInt
	}
	return a + b
}

// roundMask returns next_power_of_two(q) - 1. Values above 2^63 saturate to
// the all-ones mask.
func roundMask(q uint64) uint64 {
	if q <= 1 {
		return 0
	}
	return 1<<bits.Len64(q-1) - 1
}
