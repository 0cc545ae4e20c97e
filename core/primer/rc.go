// core/primer/rc.go
package primer

var complement [256]byte

func init() {
	for a, b := range map[byte]byte{
		'A': 'T', 'C': 'G', 'G': 'C', 'T': 'A',
		'R': 'Y', 'Y': 'R', 'S': 'S', 'W': 'W',
		'K': 'M', 'M': 'K', 'B': 'V', 'V': 'B',
		'D': 'H', 'H': 'D', 'N': 'N',
	} {
		complement[a] = b
	}
}

// RevComp returns the reverse complement of an IUPAC sequence. Unrecognized
// symbols complement to 'N'.
func RevComp(seq []byte) []byte {
	out := make([]byte, len(seq))
	for i, j := 0, len(seq)-1; j >= 0; i, j = i+1, j-1 {
		c := complement[seq[j]]
		if c == 0 {
			c = 'N'
		}
		out[i] = c
	}
	return out
}

// RevCompString is the string convenience wrapper around RevComp.
func RevCompString(seq string) string { return string(RevComp([]byte(seq))) }
