// core/amplicon/rank.go
package amplicon

import "sort"

// Ranked is the ordered outcome of a simulation: one primary product, a
// configured number of alternates, and everything else with an explicit
// rejection reason. Nothing is silently dropped.
type Ranked struct {
	Primary    *Candidate
	Alternates []Candidate
	Rejected   []Rejected
}

// ReasonBelowRank marks candidates that survived all gating but fell past
// the alternates cutoff.
const ReasonBelowRank = "below rank threshold"

// Less is the total ordering used everywhere candidates are sorted: score
// descending, then closeness to the optimal product size, then forward start,
// then reverse end, then orientation. The chain is explicit so the ordering
// never depends on insertion or map iteration order.
func Less(a, b Candidate, optimal int) bool {
	if a.Score != b.Score {
		return a.Score > b.Score
	}
	if optimal > 0 {
		da, db := absDiff(a.Length, optimal), absDiff(b.Length, optimal)
		if da != db {
			return da < db
		}
	}
	if a.Forward.Start != b.Forward.Start {
		return a.Forward.Start < b.Forward.Start
	}
	if a.Reverse.End != b.Reverse.End {
		return a.Reverse.End < b.Reverse.End
	}
	return a.Type < b.Type
}

func absDiff(a, b int) int {
	if a > b {
		return a - b
	}
	return b - a
}

type coordKey struct {
	fwdStart int
	revEnd   int
	wraps    bool
}

// Rank deduplicates candidates found via both strand-scan passes, orders the
// rest with Less, and splits them into primary, alternates, and overflow.
// Size-rejected candidates from assembly come along in rejected and are
// sorted with the same ordering.
func Rank(cands []Candidate, rejected []Rejected, alternates, optimal int) Ranked {
	sort.SliceStable(cands, func(i, j int) bool { return Less(cands[i], cands[j], optimal) })

	seen := make(map[coordKey]struct{}, len(cands))
	uniq := cands[:0]
	for _, c := range cands {
		k := coordKey{fwdStart: c.Forward.Start, revEnd: c.Reverse.End, wraps: c.WrapsOrigin}
		if _, dup := seen[k]; dup {
			continue
		}
		seen[k] = struct{}{}
		uniq = append(uniq, c)
	}
	for i := range uniq {
		uniq[i].Rank = i + 1
	}

	out := Ranked{Rejected: rejected}
	if len(uniq) == 0 {
		sortRejected(out.Rejected, optimal)
		return out
	}
	out.Primary = &uniq[0]
	rest := uniq[1:]
	if alternates < 0 {
		alternates = 0
	}
	if len(rest) > alternates {
		for _, c := range rest[alternates:] {
			out.Rejected = append(out.Rejected, Rejected{Candidate: c, Reason: ReasonBelowRank})
		}
		rest = rest[:alternates]
	}
	out.Alternates = append([]Candidate(nil), rest...)
	sortRejected(out.Rejected, optimal)
	return out
}

func sortRejected(rs []Rejected, optimal int) {
	sort.SliceStable(rs, func(i, j int) bool { return Less(rs[i].Candidate, rs[j].Candidate, optimal) })
}
