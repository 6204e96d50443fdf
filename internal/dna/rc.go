// internal/dna/rc.go
package dna

var complement [256]byte

func init() {
	for i := range complement {
		complement[i] = byte(i)
	}
	complement['A'] = 'T'
	complement['T'] = 'A'
	complement['C'] = 'G'
	complement['G'] = 'C'
}

// RevComp returns the reverse complement of seq. Only A, C, G and T are
// complemented; every other byte (N, IUPAC codes, lower case) is kept as is.
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

// Upper returns an upper-cased copy of seq.
func Upper(seq []byte) []byte {
	out := make([]byte, len(seq))
	for i, b := range seq {
		if 'a' <= b && b <= 'z' {
			b -= 'a' - 'A'
		}
		out[i] = b
	}
	return out
}
