// pkg/api/simulation_v1.go
package api

// Stable v1 JSON schema for simulation results. Keep fields, names, and
// types stable; add new fields only with ",omitempty".

// SiteV1 is one primer binding site in sense-strand coordinates.
type SiteV1 struct {
	TemplateID      string  `json:"template_id"`
	PrimerID        string  `json:"primer_id"`
	Start           int     `json:"start"`
	End             int     `json:"end"`
	Strand          string  `json:"strand"` // "sense" | "antisense"
	Mismatches      int     `json:"mismatches"`
	MismatchIdx     []int   `json:"mismatch_idx,omitempty"` // from primer 5' end
	ThreePrimeExact bool    `json:"three_prime_exact"`
	WrapsOrigin     bool    `json:"wraps_origin,omitempty"`
	Score           float64 `json:"score"`
}

// AmpliconV1 is one candidate product.
type AmpliconV1 struct {
	PairID      string  `json:"pair_id"`
	Type        string  `json:"type"` // "forward" | "revcomp"
	Forward     SiteV1  `json:"forward"`
	Reverse     SiteV1  `json:"reverse"`
	Length      int     `json:"length"`
	WrapsOrigin bool    `json:"wraps_origin,omitempty"`
	Score       float64 `json:"score"`
	Rank        int     `json:"rank,omitempty"`
}

// RejectedV1 carries an excluded candidate with its stated reason.
type RejectedV1 struct {
	AmpliconV1
	Reason string `json:"reason"`
}

// AmpliconsV1 groups the ranked product set.
type AmpliconsV1 struct {
	Primary    *AmpliconV1  `json:"primary"`
	Alternates []AmpliconV1 `json:"alternates"`
	Rejected   []RejectedV1 `json:"rejected,omitempty"`
}

// DimerV1 is one primer-vs-primer interaction.
type DimerV1 struct {
	PrimerA       string  `json:"primer_a"`
	PrimerB       string  `json:"primer_b"`
	OverlapLength int     `json:"overlap_length"`
	Mismatches    int     `json:"mismatches,omitempty"`
	ThreePrime    bool    `json:"three_prime,omitempty"`
	Score         float64 `json:"score"`
	Problematic   bool    `json:"is_problematic"`
}

// ProbeV1 reports the probe search on the primary amplicon. Evaluated is
// false when no primary product existed to search.
type ProbeV1 struct {
	PairID     string `json:"pair_id"`
	Name       string `json:"name"`
	Evaluated  bool   `json:"evaluated"`
	Found      bool   `json:"found"`
	Strand     string `json:"strand,omitempty"`
	Pos        int    `json:"pos,omitempty"`
	Mismatches int    `json:"mismatches,omitempty"`
	Site       string `json:"site,omitempty"`
}

// ReportV1 is the per-pair scan summary.
type ReportV1 struct {
	PairID       string   `json:"pair_id"`
	ForwardSites []SiteV1 `json:"forward_sites"`
	ReverseSites []SiteV1 `json:"reverse_sites"`
}

// ResultV1 is the full simulation payload.
type ResultV1 struct {
	TemplateID       string      `json:"template_id"`
	PrimersChecked   []string    `json:"primers_checked"`
	Reports          []ReportV1  `json:"reports,omitempty"`
	Amplicons        AmpliconsV1 `json:"amplicons"`
	ExtensionSeconds float64     `json:"extension_seconds,omitempty"`
	Probe            *ProbeV1    `json:"probe,omitempty"`
	Dimers           []DimerV1   `json:"dimers,omitempty"`
	Warnings         []string    `json:"warnings"`
}
