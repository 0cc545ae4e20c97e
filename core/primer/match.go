// core/primer/match.go
package primer

import (
	"sort"

	"ampsim/core/simerr"
	"ampsim/core/template"
)

/* --------------------------------- types --------------------------------- */

// Strand identifies which template strand a primer binds.
type Strand int

const (
	Sense Strand = iota
	Antisense
)

func (s Strand) String() string {
	if s == Antisense {
		return "antisense"
	}
	return "sense"
}

// Symbol is the one-character strand glyph used in text output.
func (s Strand) Symbol() string {
	if s == Antisense {
		return "-"
	}
	return "+"
}

// Site is one location where a primer binds a template within the mismatch
// budget. Start/End are sense-strand coordinates, End exclusive; on circular
// templates a match spanning the origin has Wrapped set and End wrapped
// modulo the template length. MismatchIdx offsets count from the primer
// 5' end. ThreePrimeExact records whether the 3' anchor run is mismatch-free
// regardless of whether exactness was required. Score is filled by the
// likelihood scorer, not by the matcher.
type Site struct {
	TemplateID      string
	PrimerID        string
	Start           int
	End             int
	Strand          Strand
	Mismatches      int
	MismatchIdx     []int
	ThreePrimeExact bool
	Wrapped         bool
	Score           float64
}

// Options control a binding-site scan.
type Options struct {
	MaxMismatches          int
	RequireThreePrimeExact bool
	ThreePrimeRun          int // 3' anchor length; <=0 selects DefaultThreePrimeRun
}

// DefaultThreePrimeRun is the 3' anchor length used when none is configured.
const DefaultThreePrimeRun = 3

/* ------------------------------- FindSites -------------------------------- */

// FindSites scans both strands of t for every position where p binds within
// opt.MaxMismatches, comparing base-by-base through BaseMatch and
// short-circuiting an offset as soon as the budget is exceeded. Circular
// templates are additionally scanned across the origin. Results are ordered
// by (Start, Strand) and do not depend on scan internals.
//
// A primer longer than a linear template cannot bind and is a caller error;
// on a circular template the same situation is a successful empty result.
func FindSites(t *template.Template, p Primer, opt Options) ([]Site, error) {
	pl := p.Len()
	if pl == 0 {
		return nil, simerr.Validationf("primer", p.ID, "empty sequence")
	}
	L := t.Len()
	if pl > L {
		if !t.Circular() {
			return nil, simerr.Validationf("primer", p.ID,
				"length %d exceeds linear template %q length %d", pl, t.ID(), L)
		}
		return nil, nil
	}

	run := opt.ThreePrimeRun
	if run <= 0 {
		run = DefaultThreePrimeRun
	}
	if run > pl {
		run = pl
	}

	sites := scanView(t.Seq(), t, p, opt, run, Sense)
	sites = append(sites, scanView(t.RC(), t, p, opt, run, Antisense)...)

	sort.Slice(sites, func(i, j int) bool {
		if sites[i].Start != sites[j].Start {
			return sites[i].Start < sites[j].Start
		}
		return sites[i].Strand < sites[j].Strand
	})
	return sites, nil
}

// scanView matches p against one strand view and translates hits back to
// sense coordinates. For circular templates the view is extended by pl-1
// leading bases so wrap-around offsets are scanned with plain indexing.
func scanView(view []byte, t *template.Template, p Primer, opt Options, run int, strand Strand) []Site {
	pl := p.Len()
	L := t.Len()

	buf := view
	lastPos := L - pl
	if t.Circular() {
		ext := make([]byte, 0, L+pl-1)
		ext = append(ext, view...)
		ext = append(ext, view[:pl-1]...)
		buf = ext
		lastPos = L - 1
	}

	cutoff := pl - run // mismatches at j >= cutoff break the 3' anchor

	var out []Site
offsets:
	for pos := 0; pos <= lastPos; pos++ {
		mm := 0
		var idx []int
		anchored := true
		for j := 0; j < pl; j++ {
			if BaseMatch(buf[pos+j], p.Seq[j]) {
				continue
			}
			if j >= cutoff {
				if opt.RequireThreePrimeExact {
					continue offsets
				}
				anchored = false
			}
			mm++
			if mm > opt.MaxMismatches {
				continue offsets
			}
			idx = append(idx, j)
		}

		start := pos
		if strand == Antisense {
			start = L - (pos + pl)
			if start < 0 {
				start += L
			}
		}
		wrapped := start+pl > L
		end := start + pl
		if wrapped {
			end -= L
		}
		out = append(out, Site{
			TemplateID:      t.ID(),
			PrimerID:        p.ID,
			Start:           start,
			End:             end,
			Strand:          strand,
			Mismatches:      mm,
			MismatchIdx:     idx,
			ThreePrimeExact: anchored,
			Wrapped:         wrapped,
		})
	}
	return out
}
