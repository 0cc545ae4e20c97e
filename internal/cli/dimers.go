// internal/cli/dimers.go
package cli

import (
	"io"

	"github.com/spf13/cobra"

	"ampsim/internal/app"
)

func newDimersCmd(sh *shell, stdout, stderr io.Writer) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dimers",
		Short: "check primers for cross- and self-priming interactions",
		Long:  "dimers evaluates every loaded primer pair for 3'-end complementarity without\nneeding a template. Problematic interactions are flagged on stderr.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := sh.load(args)
			if err != nil {
				return err
			}
			return app.RunDimers(cmd.Context(), cfg, sh.opts, stdout, stderr)
		},
	}

	fl := cmd.Flags()
	fl.Int("dimer-max-mismatches", 1, "tolerated mismatches inside a dimer duplex")
	fl.Float64("min-overlap-frac", 0.5, "minimum duplex length as a fraction of the shorter primer")
	_ = sh.v.BindPFlag("dimer.max-mismatches", fl.Lookup("dimer-max-mismatches"))
	_ = sh.v.BindPFlag("dimer.min-overlap-frac", fl.Lookup("min-overlap-frac"))
	return cmd
}
