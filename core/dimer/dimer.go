// core/dimer/dimer.go
package dimer

import (
	"ampsim/core/primer"
	"ampsim/core/template"
)

// Result describes one primer-vs-primer interaction. OverlapLength is the
// number of annealed bases; ThreePrime reports whether a 3' terminus is
// engaged (extension risk). Self-checks have PrimerA == PrimerB.
type Result struct {
	PrimerA       string
	PrimerB       string
	OverlapLength int
	Mismatches    int
	ThreePrime    bool
	Score         float64
	Problematic   bool
}

// Options control the dimer check.
type Options struct {
	MaxMismatches int
	// MinOverlapFrac is the fraction of the shorter primer that must anneal
	// for the interaction to be flagged. <=0 selects DefaultMinOverlapFrac.
	MinOverlapFrac float64
}

const (
	DefaultMinOverlapFrac = 0.5
	minRun                = 3 // shorter 3' runs do not prime
)

// Check tests whether a can prime on b. It reuses the binding-site matcher
// with b's reverse complement standing in as a linear template, then falls
// back to the longest 3'-vs-3' complementary run for partial overlaps the
// full-length scan cannot see.
func Check(a, b primer.Primer, opt Options) Result {
	res := Result{PrimerA: a.ID, PrimerB: b.ID}

	if a.Len() <= b.Len() {
		if tpl, err := template.New(b.ID+":rc", primer.RevCompString(b.Seq), false); err == nil {
			// rc(b) is canonical; a degenerate b falls through to the run scan.
			sites, err := primer.FindSites(tpl, a, primer.Options{MaxMismatches: opt.MaxMismatches})
			if err == nil && len(sites) > 0 {
				best := sites[0]
				for _, s := range sites[1:] {
					if s.Mismatches < best.Mismatches {
						best = s
					}
				}
				res.OverlapLength = a.Len()
				res.Mismatches = best.Mismatches
				res.ThreePrime = true // full-length anneal engages a's 3' end
			}
		}
	}

	if res.OverlapLength == 0 {
		if run := terminalRun(a.Seq, b.Seq); run >= minRun {
			res.OverlapLength = run
			res.ThreePrime = true
		}
	}

	frac := opt.MinOverlapFrac
	if frac <= 0 {
		frac = DefaultMinOverlapFrac
	}
	shorter := a.Len()
	if b.Len() < shorter {
		shorter = b.Len()
	}
	if res.OverlapLength > 0 {
		res.Score = float64(res.OverlapLength*res.OverlapLength) * 0.8 / float64(1+res.Mismatches)
		res.Problematic = res.ThreePrime &&
			res.Mismatches <= opt.MaxMismatches &&
			float64(res.OverlapLength) >= frac*float64(shorter)
	}
	return res
}

// Self checks a primer against itself (hairpin-like self-priming).
func Self(a primer.Primer, opt Options) Result { return Check(a, a, opt) }

// terminalRun counts consecutive pairable bases walking in from both 3'
// termini, the antiparallel alignment primer-dimers actually form.
func terminalRun(a, b string) int {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	run := 0
	for i := 0; i < n; i++ {
		if !pairable(a[len(a)-1-i], b[len(b)-1-i]) {
			break
		}
		run++
	}
	return run
}

// pairable reports whether primer symbol x can anneal opposite symbol y.
// Degenerate codes on the x side match through the shared IUPAC table; a
// degenerate y has no single complement and never pairs.
func pairable(x, y byte) bool {
	switch y {
	case 'A':
		return primer.BaseMatch('T', x)
	case 'C':
		return primer.BaseMatch('G', x)
	case 'G':
		return primer.BaseMatch('C', x)
	case 'T':
		return primer.BaseMatch('A', x)
	default:
		return false
	}
}
