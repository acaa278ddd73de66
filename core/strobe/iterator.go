// core/strobe/iterator.go
package strobe

import (
	"fmt"

	"strobemers/core/khash"
)

// Iterator is the pull interface shared by MinStrobes and RandStrobes.
// An Iterator is not safe for concurrent use.
type Iterator interface {
	Next() (hash uint64, ok bool)
	Index() (int, bool)
	Indexes() [3]int
	Order() int
	Params() Params
	SetPrime(q uint64) error
	Prime() uint64
	SetWindowShrink(on bool)
	WindowShrink() bool
}

var (
	_ Iterator = (*MinStrobes)(nil)
	_ Iterator = (*RandStrobes)(nil)
)

// Policy selects how follow-up strobes are chosen.
type Policy uint8

const (
	PolicyMin  Policy = iota + 1 // windowed minimum (MinStrobes)
	PolicyRand                   // masked combination (RandStrobes)
)

func (p Policy) String() string {
	switch p {
	case PolicyMin:
		return "min"
	case PolicyRand:
		return "rand"
	}
	return fmt.Sprintf("Policy(%d)", uint8(p))
}

// ParsePolicy maps "min"/"minstrobes" and "rand"/"randstrobes" to a Policy.
func ParsePolicy(s string) (Policy, error) {
	switch s {
	case "min", "minstrobes":
		return PolicyMin, nil
	case "rand", "randstrobes":
		return PolicyRand, nil
	}
	return 0, fmt.Errorf("unknown selection policy %q (want min or rand)", s)
}

// New builds the engine for policy. A nil hasher selects khash.Default.
func New(policy Policy, seq []byte, p Params, h khash.Hasher) (Iterator, error) {
	switch policy {
	case PolicyMin:
		m, err := newMinStrobes(seq, p, h)
		if err != nil {
			return nil, err
		}
		return m, nil
	case PolicyRand:
		r, err := newRandStrobes(seq, p, h)
		if err != nil {
			return nil, err
		}
		return r, nil
	}
	return nil, fmt.Errorf("unknown selection policy %v", policy)
}

// Strobemer is one emitted fingerprint with its strobe start positions.
// Index[2] is 0 for order 2.
type Strobemer struct {
	Hash  uint64
	Index [3]int
}

// Collect returns every remaining fingerprint of it.
func Collect(it Iterator) []uint64 {
	var out []uint64
	for {
		h, ok := it.Next()
		if !ok {
			return out
		}
		out = append(out, h)
	}
}

// Drain returns every remaining fingerprint of it with its positions.
func Drain(it Iterator) []Strobemer {
	var out []Strobemer
	for {
		h, ok := it.Next()
		if !ok {
			return out
		}
		out = append(out, Strobemer{Hash: h, Index: it.Indexes()})
	}
}
