// core/sim/sim.go
package sim

import (
	"time"

	"ampsim/core/amplicon"
	"ampsim/core/dimer"
	"ampsim/core/primer"
	"ampsim/core/template"
)

// Config holds the per-request simulation parameters.
type Config struct {
	MaxMismatches          int
	RequireThreePrimeExact bool
	ThreePrimeRun          int
	MinProduct             int // 0 = unbounded
	MaxProduct             int // 0 = unbounded
	Alternates             int // how many non-primary candidates to report
	Threads                int // worker goroutines; 0 = GOMAXPROCS
	Budget                 time.Duration
	SecondsPerKb           float64
	CheckDimers            bool
	Score                  amplicon.ScoreConfig
	Dimer                  dimer.Options
}

// Request is one fully materialized simulation call. Template and Pairs are
// never mutated; the core performs no I/O.
type Request struct {
	Template *template.Template
	Pairs    []primer.Pair
	Config   Config
}

// Report carries everything found for one primer pair.
type Report struct {
	PairID       string
	ForwardSites []primer.Site
	ReverseSites []primer.Site
	Warnings     []string
}

// ProbeAnnotation locates a probe on the primary amplicon. Evaluated is
// false when a probe was requested but no primary product exists to search;
// the check is reported as not evaluated rather than silently skipped.
type ProbeAnnotation struct {
	PairID     string
	Name       string
	Evaluated  bool
	Found      bool
	Strand     primer.Strand
	Pos        int
	Mismatches int
	Site       string
}

// Result is the complete, deterministic payload of one simulation.
type Result struct {
	TemplateID       string
	Reports          []Report
	Amplicons        amplicon.Ranked
	ExtensionSeconds float64 // for the primary product; 0 when none
	Probe            *ProbeAnnotation
	Dimers           []dimer.Result
	Warnings         []string
}
