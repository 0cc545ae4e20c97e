// internal/output/output_test.go
package output

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"ampsim/core/amplicon"
	"ampsim/core/dimer"
	"ampsim/core/primer"
	"ampsim/core/sim"
	"ampsim/pkg/api"
)

func sampleResult() *sim.Result {
	fwd := primer.Site{TemplateID: "tpl", PrimerID: "p1.F", Start: 0, End: 8, Strand: primer.Sense, Score: 1.0}
	rev := primer.Site{TemplateID: "tpl", PrimerID: "p1.R", Start: 20, End: 28, Strand: primer.Antisense, Score: 0.9}
	prim := amplicon.Candidate{
		PairID: "p1", Type: "forward",
		Forward: fwd, Reverse: rev,
		Length: 28, Score: 0.9, Rank: 1,
	}
	return &sim.Result{
		TemplateID: "tpl",
		Reports: []sim.Report{{
			PairID:       "p1",
			ForwardSites: []primer.Site{fwd},
			ReverseSites: []primer.Site{rev},
		}},
		Amplicons: amplicon.Ranked{
			Primary: &prim,
			Rejected: []amplicon.Rejected{{
				Candidate: amplicon.Candidate{PairID: "p1", Type: "forward", Length: 900, Score: 0.5},
				Reason:    "length 900 outside size bounds [0, 500]",
			}},
		},
		ExtensionSeconds: 0.84,
	}
}

func TestWriteText(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteText(&buf, sampleResult(), true); err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want header + 2 rows:\n%s", len(lines), buf.String())
	}
	if !strings.HasPrefix(lines[0], "template\tpair\t") {
		t.Errorf("header: %q", lines[0])
	}
	if !strings.Contains(lines[1], "\tprimary\t") || !strings.Contains(lines[1], "\t28\t") {
		t.Errorf("primary row: %q", lines[1])
	}
	if !strings.Contains(lines[2], "rejected: length 900 outside size bounds") {
		t.Errorf("rejected row: %q", lines[2])
	}

	buf.Reset()
	if err := WriteText(&buf, sampleResult(), false); err != nil {
		t.Fatal(err)
	}
	if strings.HasPrefix(buf.String(), "template\t") {
		t.Error("header suppressed output still has header")
	}
}

func TestWriteJSONRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteJSON(&buf, sampleResult()); err != nil {
		t.Fatal(err)
	}
	var got api.ResultV1
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("invalid JSON: %v\n%s", err, buf.String())
	}
	if got.TemplateID != "tpl" {
		t.Errorf("template_id: %q", got.TemplateID)
	}
	if len(got.PrimersChecked) != 1 || got.PrimersChecked[0] != "p1" {
		t.Errorf("primers_checked: %v", got.PrimersChecked)
	}
	if got.Amplicons.Primary == nil || got.Amplicons.Primary.Length != 28 {
		t.Errorf("primary: %+v", got.Amplicons.Primary)
	}
	if got.Amplicons.Primary.Forward.Strand != "sense" || got.Amplicons.Primary.Reverse.Strand != "antisense" {
		t.Errorf("strands: %+v", got.Amplicons.Primary)
	}
	if len(got.Amplicons.Rejected) != 1 || got.Amplicons.Rejected[0].Reason == "" {
		t.Errorf("rejected: %+v", got.Amplicons.Rejected)
	}
}

func TestWriteJSONEmptyCollections(t *testing.T) {
	// Empty result: null primary, empty (not null) alternates and warnings.
	var buf bytes.Buffer
	if err := WriteJSON(&buf, &sim.Result{TemplateID: "tpl"}); err != nil {
		t.Fatal(err)
	}
	s := buf.String()
	if !strings.Contains(s, `"primary": null`) {
		t.Errorf("primary must serialize as null:\n%s", s)
	}
	if !strings.Contains(s, `"alternates": []`) {
		t.Errorf("alternates must serialize as an empty list:\n%s", s)
	}
	if !strings.Contains(s, `"warnings": []`) {
		t.Errorf("warnings must serialize as an empty list:\n%s", s)
	}
}

func TestProbeConversion(t *testing.T) {
	res := sampleResult()
	res.Probe = &sim.ProbeAnnotation{
		PairID: "p1", Name: "p1.P", Evaluated: true, Found: true,
		Strand: primer.Sense, Pos: 8, Mismatches: 0, Site: "GTGTGTGT",
	}
	v1 := ToResultV1(res)
	if v1.Probe == nil || !v1.Probe.Found || v1.Probe.Strand != "+" || v1.Probe.Pos != 8 {
		t.Fatalf("probe: %+v", v1.Probe)
	}

	res.Probe = &sim.ProbeAnnotation{PairID: "p1", Name: "p1.P"}
	v1 = ToResultV1(res)
	if v1.Probe == nil || v1.Probe.Evaluated || v1.Probe.Strand != "" {
		t.Fatalf("unevaluated probe: %+v", v1.Probe)
	}
}

func TestWriteDimersText(t *testing.T) {
	dimers := []dimer.Result{
		{PrimerA: "p1.F", PrimerB: "p1.R", OverlapLength: 8, ThreePrime: true, Score: 51.2, Problematic: true},
		{PrimerA: "p1.F", PrimerB: "p1.F"},
	}
	var buf bytes.Buffer
	if err := WriteDimersText(&buf, dimers, true); err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want 3:\n%s", len(lines), buf.String())
	}
	if !strings.Contains(lines[1], "p1.F\tp1.R\t8\t") || !strings.Contains(lines[1], "true") {
		t.Errorf("row: %q", lines[1])
	}
}

func TestWriteDimersJSON(t *testing.T) {
	var buf bytes.Buffer
	err := WriteDimersJSON(&buf, []dimer.Result{
		{PrimerA: "a", PrimerB: "b", OverlapLength: 8, Score: 51.2, Problematic: true},
	})
	if err != nil {
		t.Fatal(err)
	}
	var got []api.DimerV1
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 || got[0].PrimerA != "a" || !got[0].Problematic {
		t.Fatalf("payload: %+v", got)
	}
}
