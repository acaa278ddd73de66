package khash

import (
	"github.com/chmduquesne/rollinghash/buzhash64"
)

// Buzhash hashes substrings with a rolling buzhash64. Unlike NtHash it accepts
// any byte and is not strand-aware.
type Buzhash struct{}

func (Buzhash) HashAll(seq []byte, k int) ([]uint64, error) {
	if err := CheckArgs(seq, k); err != nil {
		return nil, err
	}
	h := buzhash64.New()
	h.Reset()
	if _, err := h.Write(seq[:k]); err != nil {
		return nil, err
	}
	out := make([]uint64, 0, len(seq)-k+1)
	out = append(out, h.Sum64())
	for i := k; i < len(seq); i++ {
		h.Roll(seq[i])
		out = append(out, h.Sum64())
	}
	return out, nil
}
