// core/amplicon/score.go
package amplicon

import "ampsim/core/primer"

// ScoreConfig is the tunable surface of the likelihood model. The shape of
// the function is fixed; only the coefficients move.
type ScoreConfig struct {
	// MismatchPenalty is the base cost of one mismatch at the primer 5' end.
	MismatchPenalty float64
	// ThreePrimeWeight scales how much harsher a mismatch gets as it
	// approaches the 3' end. The terminal base costs
	// MismatchPenalty*(1+ThreePrimeWeight).
	ThreePrimeWeight float64
	// OptimalLength breaks score ties by closeness to this product size.
	// Zero disables the closeness term.
	OptimalLength int
}

// DefaultScoreConfig returns the stock coefficients.
func DefaultScoreConfig() ScoreConfig {
	return ScoreConfig{MismatchPenalty: 0.12, ThreePrimeWeight: 2.0}
}

func (c ScoreConfig) penalty() float64 {
	if c.MismatchPenalty > 0 {
		return c.MismatchPenalty
	}
	return 0.12
}

func (c ScoreConfig) weight() float64 {
	if c.ThreePrimeWeight > 0 {
		return c.ThreePrimeWeight
	}
	return 2.0
}

// SiteScore maps a binding site to [0,1]. A clean site scores 1.0. Each
// mismatch subtracts MismatchPenalty times a position factor that grows
// linearly from the 5' end to 1+ThreePrimeWeight at the terminal base, so a
// 3'-proximal mismatch always scores strictly below a 5'-proximal one at
// equal mismatch counts.
func SiteScore(s primer.Site, primerLen int, cfg ScoreConfig) float64 {
	if s.Mismatches == 0 {
		return 1.0
	}
	p, w := cfg.penalty(), cfg.weight()
	n := float64(primerLen)
	score := 1.0
	for _, j := range s.MismatchIdx {
		score -= p * (1.0 + w*float64(j+1)/n)
	}
	if score < 0 {
		return 0
	}
	return score
}

// ScoreCandidate fills Score with the combined amplicon score: the minimum
// of the two site scores, since the weaker site limits amplification.
func ScoreCandidate(c *Candidate, cfg ScoreConfig) {
	f := c.Forward.Score
	r := c.Reverse.Score
	if r < f {
		c.Score = r
	} else {
		c.Score = f
	}
}
