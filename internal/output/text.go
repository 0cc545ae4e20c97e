// internal/output/text.go
package output

import (
	"fmt"
	"io"

	"ampsim/core/amplicon"
	"ampsim/core/dimer"
	"ampsim/core/sim"
)

// WriteText prints one TSV row per candidate product, primary first.
func WriteText(w io.Writer, res *sim.Result, header bool) error {
	if header {
		if _, err := fmt.Fprintln(w, "template\tpair\ttype\tstatus\tstart\tend\tlength\twraps\tfwd_mm\trev_mm\tscore"); err != nil {
			return err
		}
	}
	row := func(c amplicon.Candidate, status string) error {
		_, err := fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%d\t%d\t%d\t%v\t%d\t%d\t%.4f\n",
			res.TemplateID, c.PairID, c.Type, status,
			c.Forward.Start, c.Reverse.End, c.Length, c.WrapsOrigin,
			c.Forward.Mismatches, c.Reverse.Mismatches, c.Score)
		return err
	}
	if p := res.Amplicons.Primary; p != nil {
		if err := row(*p, "primary"); err != nil {
			return err
		}
	}
	for _, a := range res.Amplicons.Alternates {
		if err := row(a, "alternate"); err != nil {
			return err
		}
	}
	for _, r := range res.Amplicons.Rejected {
		if err := row(r.Candidate, "rejected: "+r.Reason); err != nil {
			return err
		}
	}
	return nil
}

// WriteDimersText prints one TSV row per primer interaction.
func WriteDimersText(w io.Writer, dimers []dimer.Result, header bool) error {
	if header {
		if _, err := fmt.Fprintln(w, "primer_a\tprimer_b\toverlap\tmismatches\tthree_prime\tscore\tproblematic"); err != nil {
			return err
		}
	}
	for _, d := range dimers {
		if _, err := fmt.Fprintf(w, "%s\t%s\t%d\t%d\t%v\t%.2f\t%v\n",
			d.PrimerA, d.PrimerB, d.OverlapLength, d.Mismatches, d.ThreePrime, d.Score, d.Problematic); err != nil {
			return err
		}
	}
	return nil
}
