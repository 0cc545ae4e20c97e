// internal/app/app.go
package app

import (
	"context"
	"fmt"
	"io"

	"ampsim/core/dimer"
	"ampsim/core/primer"
	"ampsim/core/sim"
	"ampsim/core/simerr"
	"ampsim/core/template"
	"ampsim/internal/config"
	"ampsim/internal/fasta"
	"ampsim/internal/logging"
	"ampsim/internal/output"
)

// Options are the resolved CLI inputs that are not part of config.Config.
type Options struct {
	TemplateFile  string
	Circular      bool
	PrimerFile    string
	Fwd           string
	Rev           string
	Probe         string
	Output        string // "text" | "json"
	ShowAlignment bool
	Header        bool
	Quiet         bool
}

// Exit codes: 0 success (including "no product found"), 2 validation/config,
// 3 I/O or internal, 4 timeout.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return 0
	case simerr.IsValidation(err) || simerr.IsConfig(err):
		return 2
	case simerr.IsTimeout(err):
		return 4
	default:
		return 3
	}
}

func warnf(dst io.Writer, quiet bool, format string, a ...any) {
	if quiet {
		return
	}
	_, _ = fmt.Fprintf(dst, "WARN: "+format+"\n", a...)
}

func loadPairs(opts Options) ([]primer.Pair, error) {
	if opts.PrimerFile != "" {
		return primer.LoadTSV(opts.PrimerFile)
	}
	if opts.Fwd == "" || opts.Rev == "" {
		return nil, simerr.Validationf("request", "", "either --primers or both --forward and --reverse are required")
	}
	return []primer.Pair{{ID: "manual", Forward: opts.Fwd, Reverse: opts.Rev, Probe: opts.Probe}}, nil
}

func loadTemplate(opts Options) (*template.Template, error) {
	if opts.TemplateFile == "" {
		return nil, simerr.Validationf("request", "", "a template FASTA file (or '-') is required")
	}
	recs, err := fasta.ReadFile(opts.TemplateFile)
	if err != nil {
		return nil, err
	}
	if len(recs) > 1 {
		logging.L().Warn("template file has multiple records; using the first", "file", opts.TemplateFile, "records", len(recs))
	}
	return template.New(recs[0].ID, recs[0].Seq, opts.Circular)
}

// RunSimulate executes one simulation request end to end.
func RunSimulate(ctx context.Context, cfg config.Config, opts Options, stdout, stderr io.Writer) error {
	pairs, err := loadPairs(opts)
	if err != nil {
		return err
	}
	tpl, err := loadTemplate(opts)
	if err != nil {
		return err
	}

	res, err := sim.Run(ctx, sim.Request{Template: tpl, Pairs: pairs, Config: cfg.SimConfig()})
	if err != nil {
		return err
	}
	for _, w := range res.Warnings {
		warnf(stderr, opts.Quiet, "%s", w)
	}

	switch opts.Output {
	case "json":
		return output.WriteJSON(stdout, res)
	case "", "text":
		if err := output.WriteText(stdout, res, opts.Header); err != nil {
			return err
		}
		if opts.ShowAlignment {
			seqOf := primerSeqIndex(pairs)
			if p := res.Amplicons.Primary; p != nil {
				if _, err := fmt.Fprint(stdout, output.RenderCandidate(tpl, *p, seqOf)); err != nil {
					return err
				}
			}
			for _, a := range res.Amplicons.Alternates {
				if _, err := fmt.Fprint(stdout, output.RenderCandidate(tpl, a, seqOf)); err != nil {
					return err
				}
			}
		}
		return nil
	default:
		return simerr.Configf("output", "unknown format %q (text|json)", opts.Output)
	}
}

// RunDimers checks every pair for cross- and self-priming without touching a
// template.
func RunDimers(ctx context.Context, cfg config.Config, opts Options, stdout, stderr io.Writer) error {
	pairs, err := loadPairs(opts)
	if err != nil {
		return err
	}
	dopt := dimer.Options{MaxMismatches: cfg.Dimer.MaxMismatches, MinOverlapFrac: cfg.Dimer.MinOverlapFrac}

	var results []dimer.Result
	seenSelf := make(map[string]struct{})
	for _, p := range pairs {
		if err := ctx.Err(); err != nil {
			return err
		}
		fw, err := primer.Validate(p.ID+".F", p.Forward)
		if err != nil {
			return err
		}
		rv, err := primer.Validate(p.ID+".R", p.Reverse)
		if err != nil {
			return err
		}
		results = append(results, dimer.Check(fw, rv, dopt))
		for _, pr := range []primer.Primer{fw, rv} {
			if _, dup := seenSelf[pr.Seq]; dup {
				continue
			}
			seenSelf[pr.Seq] = struct{}{}
			results = append(results, dimer.Self(pr, dopt))
		}
	}
	for _, d := range results {
		if d.Problematic {
			warnf(stderr, opts.Quiet, "problematic interaction %s x %s (overlap %d)", d.PrimerA, d.PrimerB, d.OverlapLength)
		}
	}

	if opts.Output == "json" {
		return output.WriteDimersJSON(stdout, results)
	}
	return output.WriteDimersText(stdout, results, opts.Header)
}

func primerSeqIndex(pairs []primer.Pair) func(string) string {
	m := make(map[string]string, len(pairs)*2)
	for _, p := range pairs {
		m[p.ID+".F"] = primer.Normalize(p.Forward)
		m[p.ID+".R"] = primer.Normalize(p.Reverse)
	}
	return func(id string) string { return m[id] }
}
