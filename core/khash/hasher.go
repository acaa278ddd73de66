// Package khash hashes every fixed-length substring of a sequence.
//
// A Hasher must be deterministic and safe for concurrent use: engines built on
// different sequences may share one Hasher across goroutines.
package khash

import (
	"errors"
	"fmt"
	"sort"
)

// MaxStrobeLength is the longest substring a Hasher is asked to hash.
const MaxStrobeLength = 64

var (
	ErrStrobeLength     = errors.New("strobe length (k) must be >= 1 and <= 64")
	ErrSequenceTooShort = errors.New("sequence too short for given parameters")
	ErrInvalidBase      = errors.New("invalid nucleotide")
)

// Hasher returns one hash per substring start, len(seq)-k+1 values in order.
type Hasher interface {
	HashAll(seq []byte, k int) ([]uint64, error)
}

// HasherFunc adapts a plain function to Hasher.
type HasherFunc func(seq []byte, k int) ([]uint64, error)

func (f HasherFunc) HashAll(seq []byte, k int) ([]uint64, error) { return f(seq, k) }

// CheckArgs applies the shared Hasher preconditions.
func CheckArgs(seq []byte, k int) error {
	if k < 1 || k > MaxStrobeLength {
		return ErrStrobeLength
	}
	if len(seq) < k {
		return ErrSequenceTooShort
	}
	return nil
}

// Default is the hasher used when none is given.
var Default Hasher = NtHash{}

var registry = map[string]func() Hasher{
	"nthash":  func() Hasher { return NtHash{} },
	"bytesum": func() Hasher { return ByteSum{} },
	"xor":     func() Hasher { return Xor{} },
	"buzhash": func() Hasher { return Buzhash{} },
	"blake3":  func() Hasher { return &Blake3{} },
}

// ByName returns a fresh hasher registered under name.
func ByName(name string) (Hasher, error) {
	mk, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("unknown hasher %q (have %v)", name, Names())
	}
	return mk(), nil
}

// Names lists the registered hasher names, sorted.
func Names() []string {
	out := make([]string, 0, len(registry))
	for n := range registry {
		out = append(out, n)
	}
	sort.Strings(out)
	return out
}
