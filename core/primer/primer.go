// core/primer/primer.go
package primer

import (
	"strings"
	"unicode"

	"ampsim/core/simerr"
)

// Primer is a single oligo, 5'→3', possibly containing IUPAC degenerate
// symbols.
type Primer struct {
	ID  string
	Seq string
}

func (p Primer) Len() int { return len(p.Seq) }

// Pair groups the role-tagged sequences of one assay. Probe is optional.
// Per-pair product bounds override the request-level bounds when non-zero.
type Pair struct {
	ID         string
	Forward    string
	Reverse    string
	Probe      string
	MinProduct int
	MaxProduct int
}

// Normalize strips whitespace and quotes and uppercases the sequence.
func Normalize(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if unicode.IsSpace(r) || r == '\'' || r == '"' {
			continue
		}
		b.WriteRune(unicode.ToUpper(r))
	}
	return b.String()
}

// Validate normalizes raw and rejects anything outside the IUPAC alphabet.
func Validate(id, raw string) (Primer, error) {
	s := Normalize(raw)
	if s == "" {
		return Primer{}, simerr.Validationf("primer", id, "empty sequence")
	}
	for i := 0; i < len(s); i++ {
		if !ValidSymbol(s[i]) {
			return Primer{}, simerr.Validationf("primer", id,
				"invalid base %q at position %d; allowed: A C G T R Y S W K M B D H V N", s[i], i+1)
		}
	}
	return Primer{ID: id, Seq: s}, nil
}
