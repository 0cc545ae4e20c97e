// core/sim/run.go
package sim

import (
	"context"
	"fmt"
	"runtime"
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/multierr"

	"ampsim/core/amplicon"
	"ampsim/core/dimer"
	"ampsim/core/extend"
	"ampsim/core/primer"
	"ampsim/core/simerr"
	"ampsim/core/template"
)

// pairOutcome is the per-pair scan result. Outcomes are written into an
// index-addressed slice so parallel execution can never change the
// observable ordering.
type pairOutcome struct {
	report   Report
	forward  primer.Primer
	reverse  primer.Primer
	kept     []amplicon.Candidate
	rejected []amplicon.Rejected
	dimers   []dimer.Result
	err      error
}

// Run executes one simulation request. All validation happens before any
// scanning, so an error is never accompanied by partial work. Binding-site
// search fans out across worker goroutines (one primer pair per job); the
// merge re-establishes canonical ordering. A configured time budget is
// checked between pair scans and surfaces as a TimeoutError carrying
// progress counts.
func Run(ctx context.Context, req Request) (*Result, error) {
	pairs, err := validate(req)
	if err != nil {
		return nil, err
	}
	cfg := req.Config
	tpl := req.Template

	threads := cfg.Threads
	if threads <= 0 {
		threads = runtime.GOMAXPROCS(0)
	}
	if threads > len(pairs) {
		threads = len(pairs)
	}

	outcomes := make([]pairOutcome, len(pairs))
	jobs := make(chan int)
	start := time.Now()
	var timedOut atomic.Bool
	var done atomic.Int64

	var wg sync.WaitGroup
	wg.Add(threads)
	for w := 0; w < threads; w++ {
		go func() {
			defer wg.Done()
			// Keep draining jobs after cancellation/timeout so the feeder
			// never blocks on a dead pool.
			for i := range jobs {
				if ctx.Err() != nil || timedOut.Load() {
					continue
				}
				if cfg.Budget > 0 && time.Since(start) > cfg.Budget {
					timedOut.Store(true)
					continue
				}
				outcomes[i] = scanPair(tpl, pairs[i], cfg)
				done.Add(1)
			}
		}()
	}

feed:
	for i := range pairs {
		select {
		case <-ctx.Done():
			break feed
		case jobs <- i:
		}
	}
	close(jobs)
	wg.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if timedOut.Load() {
		return nil, &simerr.TimeoutError{
			Budget:     cfg.Budget,
			Elapsed:    time.Since(start),
			PairsDone:  int(done.Load()),
			PairsTotal: len(pairs),
		}
	}
	for i := range outcomes {
		if outcomes[i].err != nil {
			return nil, outcomes[i].err
		}
	}

	return merge(tpl, pairs, outcomes, cfg), nil
}

/* ------------------------------- validation ------------------------------- */

// validatedPair keeps the normalized primers alongside the raw pair.
type validatedPair struct {
	primer.Pair
	forward primer.Primer
	reverse primer.Primer
	probe   *primer.Primer
}

func validate(req Request) ([]validatedPair, error) {
	var errs error
	cfg := req.Config

	if cfg.MaxMismatches < 0 {
		errs = multierr.Append(errs, simerr.Configf("max-mismatches", "must be >= 0, got %d", cfg.MaxMismatches))
	}
	if cfg.MinProduct < 0 || cfg.MaxProduct < 0 {
		errs = multierr.Append(errs, simerr.Validationf("request", "", "size bounds must not be negative (min=%d max=%d)", cfg.MinProduct, cfg.MaxProduct))
	}
	if cfg.MinProduct > 0 && cfg.MaxProduct > 0 && cfg.MinProduct > cfg.MaxProduct {
		errs = multierr.Append(errs, simerr.Configf("product-size", "min %d exceeds max %d", cfg.MinProduct, cfg.MaxProduct))
	}
	if cfg.Alternates < 0 {
		errs = multierr.Append(errs, simerr.Configf("alternatives", "must be >= 0, got %d", cfg.Alternates))
	}
	if req.Template == nil {
		errs = multierr.Append(errs, simerr.Validationf("request", "", "missing template"))
		return nil, errs
	}
	if len(req.Pairs) == 0 {
		errs = multierr.Append(errs, simerr.Validationf("request", "", "no primer pairs"))
	}

	out := make([]validatedPair, 0, len(req.Pairs))
	for _, p := range req.Pairs {
		vp := validatedPair{Pair: p}
		var perr error
		vp.forward, perr = primer.Validate(p.ID+".F", p.Forward)
		if perr != nil {
			errs = multierr.Append(errs, perr)
		}
		vp.reverse, perr = primer.Validate(p.ID+".R", p.Reverse)
		if perr != nil {
			errs = multierr.Append(errs, perr)
		}
		if p.Probe != "" {
			pb, perr := primer.Validate(p.ID+".P", p.Probe)
			if perr != nil {
				errs = multierr.Append(errs, perr)
			} else {
				vp.probe = &pb
			}
		}
		// Fail fast before any scan begins: a primer longer than a linear
		// template can never bind; a circular one could still wrap.
		if !req.Template.Circular() {
			for _, pr := range []primer.Primer{vp.forward, vp.reverse} {
				if pr.Len() > req.Template.Len() {
					errs = multierr.Append(errs, simerr.Validationf("primer", pr.ID,
						"length %d exceeds linear template %q length %d", pr.Len(), req.Template.ID(), req.Template.Len()))
				}
			}
		}
		out = append(out, vp)
	}
	if errs != nil {
		return nil, errs
	}
	return out, nil
}

/* -------------------------------- scanning -------------------------------- */

func scanPair(tpl *template.Template, vp validatedPair, cfg Config) pairOutcome {
	o := pairOutcome{forward: vp.forward, reverse: vp.reverse}
	o.report.PairID = vp.ID

	opt := primer.Options{
		MaxMismatches:          cfg.MaxMismatches,
		RequireThreePrimeExact: cfg.RequireThreePrimeExact,
		ThreePrimeRun:          cfg.ThreePrimeRun,
	}
	fwdSites, err := primer.FindSites(tpl, vp.forward, opt)
	if err != nil {
		o.err = err
		return o
	}
	revSites, err := primer.FindSites(tpl, vp.reverse, opt)
	if err != nil {
		o.err = err
		return o
	}
	for i := range fwdSites {
		fwdSites[i].Score = amplicon.SiteScore(fwdSites[i], vp.forward.Len(), cfg.Score)
	}
	for i := range revSites {
		revSites[i].Score = amplicon.SiteScore(revSites[i], vp.reverse.Len(), cfg.Score)
	}
	o.report.ForwardSites = fwdSites
	o.report.ReverseSites = revSites

	if len(fwdSites) == 0 {
		o.report.Warnings = append(o.report.Warnings,
			fmt.Sprintf("no binding sites found for primer %s within %d mismatches", vp.forward.ID, cfg.MaxMismatches))
	}
	if len(revSites) == 0 {
		o.report.Warnings = append(o.report.Warnings,
			fmt.Sprintf("no binding sites found for primer %s within %d mismatches", vp.reverse.ID, cfg.MaxMismatches))
	}

	minL, maxL := vp.MinProduct, vp.MaxProduct
	if minL == 0 {
		minL = cfg.MinProduct
	}
	if maxL == 0 {
		maxL = cfg.MaxProduct
	}

	fSense, fAnti := splitByStrand(fwdSites)
	rSense, rAnti := splitByStrand(revSites)

	// Both orientations: the forward primer on the sense strand with the
	// reverse primer opposing, and the symmetric arrangement.
	kept, rej := amplicon.Assemble(vp.ID, "forward", fSense, rAnti, tpl.Len(), tpl.Circular(), minL, maxL)
	k2, r2 := amplicon.Assemble(vp.ID, "revcomp", rSense, fAnti, tpl.Len(), tpl.Circular(), minL, maxL)
	kept = append(kept, k2...)
	rej = append(rej, r2...)
	for i := range kept {
		amplicon.ScoreCandidate(&kept[i], cfg.Score)
	}
	for i := range rej {
		amplicon.ScoreCandidate(&rej[i].Candidate, cfg.Score)
	}
	o.kept, o.rejected = kept, rej

	if len(kept) == 0 && len(fwdSites) > 0 && len(revSites) > 0 {
		o.report.Warnings = append(o.report.Warnings,
			fmt.Sprintf("no amplicon within size bounds for pair %s", vp.ID))
	}

	if cfg.CheckDimers {
		o.dimers = append(o.dimers, dimer.Check(vp.forward, vp.reverse, cfg.Dimer))
		o.dimers = append(o.dimers, dimer.Self(vp.forward, cfg.Dimer))
		o.dimers = append(o.dimers, dimer.Self(vp.reverse, cfg.Dimer))
	}
	return o
}

func splitByStrand(sites []primer.Site) (sense, anti []primer.Site) {
	for _, s := range sites {
		if s.Strand == primer.Sense {
			sense = append(sense, s)
		} else {
			anti = append(anti, s)
		}
	}
	return sense, anti
}

/* --------------------------------- merge ---------------------------------- */

func merge(tpl *template.Template, pairs []validatedPair, outcomes []pairOutcome, cfg Config) *Result {
	res := &Result{TemplateID: tpl.ID()}

	var all []amplicon.Candidate
	var rejected []amplicon.Rejected
	seenSelf := make(map[string]struct{})
	for i := range outcomes {
		o := &outcomes[i]
		res.Reports = append(res.Reports, o.report)
		res.Warnings = append(res.Warnings, o.report.Warnings...)
		all = append(all, o.kept...)
		rejected = append(rejected, o.rejected...)
		for _, d := range o.dimers {
			if d.PrimerA == d.PrimerB {
				// One self-check per unique sequence across the whole set.
				seq := outcomes[i].forward.Seq
				if d.PrimerA == outcomes[i].reverse.ID {
					seq = outcomes[i].reverse.Seq
				}
				if _, dup := seenSelf[seq]; dup {
					continue
				}
				seenSelf[seq] = struct{}{}
			}
			res.Dimers = append(res.Dimers, d)
		}
	}

	res.Amplicons = amplicon.Rank(all, rejected, cfg.Alternates, cfg.Score.OptimalLength)

	if p := res.Amplicons.Primary; p != nil {
		res.ExtensionSeconds = extend.Seconds(p.Length, cfg.SecondsPerKb)
		res.Probe = annotateProbe(tpl, pairs, p, cfg)
	} else {
		if len(res.Warnings) == 0 {
			res.Warnings = append(res.Warnings, "no amplicon candidates within size bounds")
		}
		// A requested probe check without a product is reported, not skipped.
		for _, vp := range pairs {
			if vp.probe != nil {
				res.Probe = &ProbeAnnotation{PairID: vp.ID, Name: vp.probe.ID}
				break
			}
		}
	}
	return res
}

// annotateProbe searches the primary amplicon for the owning pair's probe on
// both strands, best hit first (fewest mismatches, then leftmost).
func annotateProbe(tpl *template.Template, pairs []validatedPair, p *amplicon.Candidate, cfg Config) *ProbeAnnotation {
	var probe *primer.Primer
	for _, vp := range pairs {
		if vp.ID == p.PairID && vp.probe != nil {
			probe = vp.probe
			break
		}
	}
	if probe == nil {
		return nil
	}
	ann := &ProbeAnnotation{PairID: p.PairID, Name: probe.ID, Evaluated: true}

	ampSeq := tpl.Slice(p.Forward.Start, p.Length)
	ampTpl, err := template.New(p.PairID+":amplicon", string(ampSeq), false)
	if err != nil {
		return ann
	}
	sites, err := primer.FindSites(ampTpl, *probe, primer.Options{MaxMismatches: cfg.MaxMismatches})
	if err != nil || len(sites) == 0 {
		return ann
	}
	best := sites[0]
	for _, s := range sites[1:] {
		if s.Mismatches < best.Mismatches {
			best = s
		}
	}
	ann.Found = true
	ann.Strand = best.Strand
	ann.Pos = best.Start
	ann.Mismatches = best.Mismatches
	ann.Site = string(ampSeq[best.Start:best.End])
	return ann
}
