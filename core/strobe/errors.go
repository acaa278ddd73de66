// core/strobe/errors.go
package strobe

import (
	"errors"

	"strobemers/core/khash"
)

// Construction and reconfiguration errors. Iteration never fails; running out
// of windows is reported by Next returning ok == false.
var (
	ErrOrderNotSupported    = errors.New("strobemer order not supported (must be 2 or 3)")
	ErrInvalidSequence      = errors.New("invalid sequence (empty)")
	ErrSequenceTooShort     = khash.ErrSequenceTooShort
	ErrStrobeLengthTooSmall = khash.ErrStrobeLength
	ErrInvalidWindowOffsets = errors.New("window offsets must be > 0 and w_min <= w_max")
	ErrIncompleteHashValues = errors.New("incomplete pre-computed hash values")
	ErrPrimeNumberTooSmall  = errors.New("prime number too small (must be >= 256)")
)

// HashError wraps a failure reported by a khash.Hasher.
type HashError struct {
	Err error
}

func (e *HashError) Error() string { return "strobe: hashing substrings: " + e.Err.Error() }

func (e *HashError) Unwrap() error { return e.Err }
