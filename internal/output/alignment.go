// internal/output/alignment.go
package output

import (
	"fmt"
	"strings"

	"ampsim/core/amplicon"
	"ampsim/core/primer"
	"ampsim/core/template"
)

const (
	exactGlyph    = "|"
	mismatchGlyph = "."
)

// RenderSite draws a three-line ASCII block showing primerSeq annealed to its
// binding site. The template line is the strand the primer actually pairs
// with, read 5'→3' alongside the primer.
func RenderSite(tpl *template.Template, s primer.Site, primerSeq string) string {
	n := len(primerSeq)
	site := tpl.Slice(s.Start, n)
	if s.Strand == primer.Antisense {
		site = primer.RevComp(site)
	}
	var bars strings.Builder
	for j := 0; j < n && j < len(site); j++ {
		if primer.BaseMatch(site[j], primerSeq[j]) {
			bars.WriteString(exactGlyph)
		} else {
			bars.WriteString(mismatchGlyph)
		}
	}
	// Both lines read 5'→3' in the primer's orientation; the site line is
	// the strand slice the primer matches against.
	return fmt.Sprintf("  %-12s 5'-%s-3'\n  %-12s    %s\n  %-12s 5'-%s-3'  [%d..%d %s]\n",
		s.PrimerID, primerSeq, "", bars.String(), "site", string(site), s.Start, s.End, s.Strand.Symbol())
}

// RenderCandidate draws both sites of a candidate product.
func RenderCandidate(tpl *template.Template, c amplicon.Candidate, seqOf func(primerID string) string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s %s product, length %d", c.PairID, c.Type, c.Length)
	if c.WrapsOrigin {
		b.WriteString(", wraps origin")
	}
	fmt.Fprintf(&b, ", score %.4f\n", c.Score)
	b.WriteString(RenderSite(tpl, c.Forward, seqOf(c.Forward.PrimerID)))
	b.WriteString(RenderSite(tpl, c.Reverse, seqOf(c.Reverse.PrimerID)))
	return b.String()
}
