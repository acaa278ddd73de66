// core/khash/nthash.go
package khash

import (
	"fmt"

	"strobemers/core/nt"
)

// ntHash2 seeds indexed by 2-bit code (A, C, G, T).
var ntSeed = [4]uint64{
	0x3c8bfbb395c60474,
	0x3193c18562a02b4c,
	0x20323ed082572324,
	0x295549f54be24456,
}

// NtHash is the canonical ntHash2 rolling hash: forward plus reverse-complement
// strand hash, each built from 33/31-bit split rotations.
type NtHash struct{}

// srol rotates the low 33 bits and the high 31 bits left by one, independently.
func srol(x uint64) uint64 {
	m := ((x & 0x8000000000000000) >> 30) | ((x & 0x100000000) >> 32)
	return ((x << 1) & 0xFFFFFFFDFFFFFFFF) | m
}

// sror is the inverse of srol.
func sror(x uint64) uint64 {
	m := ((x & 0x200000000) << 30) | ((x & 1) << 32)
	return ((x >> 1) & 0xFFFFFFFEFFFFFFFF) | m
}

func srolN(x uint64, d int) uint64 {
	for i := 0; i < d; i++ {
		x = srol(x)
	}
	return x
}

func (NtHash) HashAll(seq []byte, k int) ([]uint64, error) {
	if err := CheckArgs(seq, k); err != nil {
		return nil, err
	}
	codes := make([]byte, len(seq))
	for i, b := range seq {
		c := nt.Code(b)
		if c == nt.Invalid {
			return nil, fmt.Errorf("nthash: %w %q at position %d", ErrInvalidBase, b, i)
		}
		codes[i] = c
	}

	// seeds rotated by k, for the base leaving each strand
	var outFwd, outRev [4]uint64
	for c := 0; c < 4; c++ {
		outFwd[c] = srolN(ntSeed[c], k)
		outRev[c] = srolN(ntSeed[3-c], k)
	}

	var fwd, rev uint64
	for j := 0; j < k; j++ {
		fwd = srol(fwd) ^ ntSeed[codes[j]]
	}
	for j := k - 1; j >= 0; j-- {
		rev = srol(rev) ^ ntSeed[3-codes[j]]
	}

	out := make([]uint64, 0, len(seq)-k+1)
	out = append(out, fwd+rev)
	for i := 0; i+k < len(codes); i++ {
		o, in := codes[i], codes[i+k]
		fwd = srol(fwd) ^ outFwd[o] ^ ntSeed[in]
		rev = sror(rev ^ outRev[in] ^ ntSeed[3-o])
		out = append(out, fwd+rev)
	}
	return out, nil
}
