package khash

import (
	"encoding/binary"
	"errors"

	"lukechampine.com/blake3"
)

// Blake3KeySize is the only accepted key length for keyed hashing.
const Blake3KeySize = 32

// Blake3 hashes every substring independently with (optionally keyed) BLAKE3
// truncated to 64 bits. It costs O(n*k) but gives hashes that cannot be
// predicted without the key.
type Blake3 struct {
	key []byte
}

// NewBlake3 returns a keyed hasher. A nil key selects unkeyed BLAKE3.
func NewBlake3(key []byte) (*Blake3, error) {
	if key != nil && len(key) != Blake3KeySize {
		return nil, errors.New("blake3: key must be 32 bytes")
	}
	return &Blake3{key: append([]byte(nil), key...)}, nil
}

func (b *Blake3) HashAll(seq []byte, k int) ([]uint64, error) {
	if err := CheckArgs(seq, k); err != nil {
		return nil, err
	}
	var key []byte
	if len(b.key) > 0 {
		key = b.key
	}
	// blake3.Hasher is stateful: one per call.
	h := blake3.New(8, key)
	var sum [8]byte
	out := make([]uint64, 0, len(seq)-k+1)
	for i := 0; i+k <= len(seq); i++ {
		h.Reset()
		_, _ = h.Write(seq[i : i+k])
		out = append(out, binary.LittleEndian.Uint64(h.Sum(sum[:0])))
	}
	return out, nil
}
