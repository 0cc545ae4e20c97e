// internal/output/api_conv.go
package output

import (
	"ampsim/core/amplicon"
	"ampsim/core/dimer"
	"ampsim/core/primer"
	"ampsim/core/sim"
	"ampsim/pkg/api"
)

// ToResultV1 maps the core result onto the stable wire schema. External
// consumers must never depend on core-internal shapes.
func ToResultV1(res *sim.Result) api.ResultV1 {
	out := api.ResultV1{
		TemplateID:       res.TemplateID,
		ExtensionSeconds: res.ExtensionSeconds,
		Warnings:         append([]string(nil), res.Warnings...),
	}
	if out.Warnings == nil {
		out.Warnings = []string{}
	}
	for _, r := range res.Reports {
		out.PrimersChecked = append(out.PrimersChecked, r.PairID)
		out.Reports = append(out.Reports, api.ReportV1{
			PairID:       r.PairID,
			ForwardSites: sitesV1(r.ForwardSites),
			ReverseSites: sitesV1(r.ReverseSites),
		})
	}
	if p := res.Amplicons.Primary; p != nil {
		v := ampliconV1(*p)
		out.Amplicons.Primary = &v
	}
	out.Amplicons.Alternates = []api.AmpliconV1{}
	for _, a := range res.Amplicons.Alternates {
		out.Amplicons.Alternates = append(out.Amplicons.Alternates, ampliconV1(a))
	}
	for _, r := range res.Amplicons.Rejected {
		out.Amplicons.Rejected = append(out.Amplicons.Rejected, api.RejectedV1{
			AmpliconV1: ampliconV1(r.Candidate),
			Reason:     r.Reason,
		})
	}
	for _, d := range res.Dimers {
		out.Dimers = append(out.Dimers, dimerV1(d))
	}
	if res.Probe != nil {
		p := probeV1(*res.Probe)
		out.Probe = &p
	}
	return out
}

func sitesV1(sites []primer.Site) []api.SiteV1 {
	out := make([]api.SiteV1, 0, len(sites))
	for _, s := range sites {
		out = append(out, siteV1(s))
	}
	return out
}

func siteV1(s primer.Site) api.SiteV1 {
	return api.SiteV1{
		TemplateID:      s.TemplateID,
		PrimerID:        s.PrimerID,
		Start:           s.Start,
		End:             s.End,
		Strand:          s.Strand.String(),
		Mismatches:      s.Mismatches,
		MismatchIdx:     s.MismatchIdx,
		ThreePrimeExact: s.ThreePrimeExact,
		WrapsOrigin:     s.Wrapped,
		Score:           s.Score,
	}
}

func ampliconV1(c amplicon.Candidate) api.AmpliconV1 {
	return api.AmpliconV1{
		PairID:      c.PairID,
		Type:        c.Type,
		Forward:     siteV1(c.Forward),
		Reverse:     siteV1(c.Reverse),
		Length:      c.Length,
		WrapsOrigin: c.WrapsOrigin,
		Score:       c.Score,
		Rank:        c.Rank,
	}
}

func dimerV1(d dimer.Result) api.DimerV1 {
	return api.DimerV1{
		PrimerA:       d.PrimerA,
		PrimerB:       d.PrimerB,
		OverlapLength: d.OverlapLength,
		Mismatches:    d.Mismatches,
		ThreePrime:    d.ThreePrime,
		Score:         d.Score,
		Problematic:   d.Problematic,
	}
}

func probeV1(p sim.ProbeAnnotation) api.ProbeV1 {
	v := api.ProbeV1{
		PairID:     p.PairID,
		Name:       p.Name,
		Evaluated:  p.Evaluated,
		Found:      p.Found,
		Pos:        p.Pos,
		Mismatches: p.Mismatches,
		Site:       p.Site,
	}
	if p.Found {
		v.Strand = p.Strand.Symbol()
	}
	return v
}
