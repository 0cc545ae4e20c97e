// core/primer/iupac.go
package primer

/* ------------------------- IUPAC compatibility table ------------------------ */

// baseBits encodes each IUPAC symbol as a bitset over the canonical bases:
// bit0=A bit1=C bit2=G bit3=T. A zero entry marks an unrecognized symbol.
var baseBits [256]byte

func init() {
	for c, bits := range map[byte]byte{
		'A': 1, 'C': 2, 'G': 4, 'T': 8,
		'R': 1 | 4, // A/G
		'Y': 2 | 8, // C/T
		'S': 2 | 4, // C/G
		'W': 1 | 8, // A/T
		'K': 4 | 8, // G/T
		'M': 1 | 2, // A/C
		'B': 2 | 4 | 8,
		'D': 1 | 4 | 8,
		'H': 1 | 2 | 8,
		'V': 1 | 2 | 4,
		'N': 1 | 2 | 4 | 8,
	} {
		baseBits[c] = bits
	}
}

// BaseMatch reports whether primer symbol p can pair with template base t.
// This is the single source of truth for degenerate matching: an exact or
// in-set pairing costs nothing, every other pairing is one mismatch. The
// template side must already be canonical A/C/G/T (template.New enforces it),
// so anything else on that side is a hard mismatch.
func BaseMatch(t, p byte) bool {
	if t != 'A' && t != 'C' && t != 'G' && t != 'T' {
		return false
	}
	return baseBits[p]&baseBits[t] != 0
}

// ValidSymbol reports whether c is a recognized IUPAC code.
func ValidSymbol(c byte) bool { return baseBits[c] != 0 }

// Degenerate reports whether c names more than one base.
func Degenerate(c byte) bool {
	b := baseBits[c]
	return b != 0 && b&(b-1) != 0
}
