// core/amplicon/assemble.go
package amplicon

import (
	"fmt"

	"ampsim/core/primer"
)

// Candidate is a putative amplification product: one sense-strand site paired
// with one downstream antisense-strand site. Length runs from the forward
// site's 5' end to the reverse site's 5' end along the sense direction,
// around the origin when WrapsOrigin is set.
type Candidate struct {
	PairID      string
	Type        string // "forward" | "revcomp": which primer took the sense strand
	Forward     primer.Site
	Reverse     primer.Site
	Length      int
	WrapsOrigin bool
	Score       float64
	Rank        int
}

// Rejected is a candidate excluded from the ranked set, with the reason
// stated rather than silently dropped.
type Rejected struct {
	Candidate
	Reason string
}

// Assemble pairs every sense site with every antisense site and applies
// orientation and size gating only. Pairs violating orientation on a linear
// template are discarded outright; pairs outside [minSize, maxSize] are
// returned as rejected. Scoring and ranking are the caller's job, which keeps
// this O(len(fwd) x len(rev)) step independent of scoring policy. A zero
// bound means unbounded on that side.
func Assemble(pairID, typ string, fwd, rev []primer.Site, tplLen int, circular bool, minSize, maxSize int) (kept []Candidate, rejected []Rejected) {
	for _, f := range fwd {
		if f.Strand != primer.Sense {
			continue
		}
		for _, r := range rev {
			if r.Strand != primer.Antisense {
				continue
			}
			// Reverse-site end in unwrapped coordinates.
			re := r.End
			if r.Wrapped {
				re += tplLen
			}

			var length int
			wraps := false
			switch {
			case r.Start > f.Start:
				length = re - f.Start
			case circular:
				length = re - f.Start + tplLen
			default:
				continue // reverse site upstream on a linear template
			}
			if f.Start+length > tplLen {
				wraps = true
			}

			c := Candidate{
				PairID:      pairID,
				Type:        typ,
				Forward:     f,
				Reverse:     r,
				Length:      length,
				WrapsOrigin: wraps,
			}
			if (minSize > 0 && length < minSize) || (maxSize > 0 && length > maxSize) {
				rejected = append(rejected, Rejected{
					Candidate: c,
					Reason:    fmt.Sprintf("length %d outside size bounds [%d, %d]", length, minSize, maxSize),
				})
				continue
			}
			kept = append(kept, c)
		}
	}
	return kept, rejected
}
