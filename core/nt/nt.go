// core/nt/nt.go
package nt

// Unknown is returned by Complement for bytes outside A/C/G/T/U.
const Unknown = 'N'

// Invalid is the 2-bit code for bytes outside A/C/G/T/U.
const Invalid = 4

var (
	complement [256]byte
	nt4        [256]byte
)

func init() {
	for i := range complement {
		complement[i] = Unknown
		nt4[i] = Invalid
	}
	set := func(c, comp, code byte) {
		complement[c] = comp
		nt4[c] = code
	}
	set('A', 'T', 0)
	set('C', 'G', 1)
	set('G', 'C', 2)
	set('T', 'A', 3)
	set('a', 'T', 0)
	set('c', 'G', 1)
	set('g', 'C', 2)
	set('t', 'A', 3)
	// RNA: U pairs like T.
	set('U', 'A', 3)
	set('u', 'A', 3)
}

// Complement returns the upper-case DNA complement of b, or 'N'.
func Complement(b byte) byte { return complement[b] }

// Code returns the 2-bit encoding of b (A=0 C=1 G=2 T/U=3), or Invalid.
func Code(b byte) byte { return nt4[b] }

// IsBase reports whether b is one of A/C/G/T/U in either case.
func IsBase(b byte) bool { return nt4[b] != Invalid }

// RevComp returns the reverse complement of seq. Unrecognised bytes become 'N'.
func RevComp(seq []byte) []byte {
	n := len(seq)
	if n == 0 {
		return nil
	}
	out := make([]byte, n)
	for i := 0; i < n; i++ {
		out[i] = complement[seq[n-1-i]]
	}
	return out
}
