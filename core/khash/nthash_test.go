package khash

import (
	"errors"
	"math/rand"
	"testing"

	"strobemers/core/nt"
)

// Snapshot of the canonical ntHash2 values the regression fingerprints are built on.
func TestNtHash_Snapshot(t *testing.T) {
	want := []uint64{
		6969467027062526874, 11592575556893758453, 7034906798954869344, 7034906798954869344,
		9072596039140857732, 6071550271797759418, 6838402997676373013, 9986023376164551317,
		15905205682249610055, 15905205682249610055, 9986023376164551317, 2213372594554680508,
		11880316248964488322, 11880316248964488322,
	}
	got, err := NtHash{}.HashAll([]byte("ACGATCTGGTACCTAG"), 3)
	if err != nil {
		t.Fatalf("HashAll: %v", err)
	}
	if len(got) != len(want) {
		t.Fatalf("len = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("hash[%d] = %d, want %d", i, got[i], want[i])
		}
	}
}

func TestNtHash_SingleBase(t *testing.T) {
	got, err := NtHash{}.HashAll([]byte("ACG"), 1)
	if err != nil {
		t.Fatalf("HashAll: %v", err)
	}
	want := []uint64{7341225459233343690, 5892397531374505584, 5892397531374505584}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("hash[%d] = %d, want %d", i, got[i], want[i])
		}
	}
}

// A k-mer and its reverse complement share one canonical hash.
func TestNtHash_Canonical(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	seq := make([]byte, 300)
	for i := range seq {
		seq[i] = "ACGT"[rng.Intn(4)]
	}
	for _, k := range []int{1, 5, 31, 32, 33, 63, 64} {
		fwd, err := NtHash{}.HashAll(seq, k)
		if err != nil {
			t.Fatalf("k=%d: %v", k, err)
		}
		rev, err := NtHash{}.HashAll(nt.RevComp(seq), k)
		if err != nil {
			t.Fatalf("k=%d rc: %v", k, err)
		}
		n := len(fwd)
		for i := 0; i < n; i++ {
			if fwd[i] != rev[n-1-i] {
				t.Fatalf("k=%d pos %d: fwd %d != rc %d", k, i, fwd[i], rev[n-1-i])
			}
		}
	}
}

func TestNtHash_RollMatchesFresh(t *testing.T) {
	seq := []byte("ttgacgTACGGAuacgatcagcatcagcatgcGGGACTTA")
	const k = 7
	all, err := NtHash{}.HashAll(seq, k)
	if err != nil {
		t.Fatalf("HashAll: %v", err)
	}
	for i := range all {
		one, err := NtHash{}.HashAll(seq[i:i+k], k)
		if err != nil {
			t.Fatalf("window %d: %v", i, err)
		}
		if len(one) != 1 || one[0] != all[i] {
			t.Fatalf("window %d: rolled %d, fresh %v", i, all[i], one)
		}
	}
}

func TestNtHash_Errors(t *testing.T) {
	if _, err := (NtHash{}).HashAll([]byte("ACGNACG"), 3); !errors.Is(err, ErrInvalidBase) {
		t.Errorf("N base: err = %v, want ErrInvalidBase", err)
	}
	if _, err := (NtHash{}).HashAll([]byte("AC"), 3); !errors.Is(err, ErrSequenceTooShort) {
		t.Errorf("short: err = %v, want ErrSequenceTooShort", err)
	}
	for _, k := range []int{0, -1, 65} {
		if _, err := (NtHash{}).HashAll([]byte("ACGT"), k); !errors.Is(err, ErrStrobeLength) {
			t.Errorf("k=%d: err = %v, want ErrStrobeLength", k, err)
		}
	}
}
