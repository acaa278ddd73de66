package khash

// ByteSum hashes a substring as the sum of its byte values. It is only useful
// for tests and demonstrations.
type ByteSum struct{}

func (ByteSum) HashAll(seq []byte, k int) ([]uint64, error) {
	if err := CheckArgs(seq, k); err != nil {
		return nil, err
	}
	out := make([]uint64, 0, len(seq)-k+1)
	var sum uint64
	for i := 0; i < k; i++ {
		sum += uint64(seq[i])
	}
	out = append(out, sum)
	for i := k; i < len(seq); i++ {
		sum += uint64(seq[i])
		sum -= uint64(seq[i-k])
		out = append(out, sum)
	}
	return out, nil
}

// Xor hashes a substring as the XOR of its byte values.
type Xor struct{}

func (Xor) HashAll(seq []byte, k int) ([]uint64, error) {
	if err := CheckArgs(seq, k); err != nil {
		return nil, err
	}
	out := make([]uint64, 0, len(seq)-k+1)
	var h uint64
	for i := 0; i < k; i++ {
		h ^= uint64(seq[i])
	}
	out = append(out, h)
	for i := k; i < len(seq); i++ {
		h ^= uint64(seq[i]) ^ uint64(seq[i-k])
		out = append(out, h)
	}
	return out, nil
}
