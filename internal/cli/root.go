// Package cli is the cobra command tree. Flags are bound through Viper so a
// settings file, environment, and command line share one merge order.
package cli

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"ampsim/internal/app"
	"ampsim/internal/config"
	"ampsim/internal/logging"
	"ampsim/internal/version"
)

type shell struct {
	v        *viper.Viper
	stderr   io.Writer
	opts     app.Options
	settings string
	noHeader bool
	debug    bool
}

// NewRoot builds the command tree. The root command runs a simulation.
func NewRoot(stdout, stderr io.Writer) *cobra.Command {
	sh := &shell{v: viper.New(), stderr: stderr}

	root := &cobra.Command{
		Use:     "ampsim [flags] template.fa",
		Short:   "in-silico primer binding and amplification simulator",
		Long:    "ampsim finds primer binding sites on a (possibly circular) template within a\nmismatch budget, pairs them into candidate amplicons, and ranks products by a\ndeterministic likelihood score.",
		Version: version.Version,
		Args:    cobra.MaximumNArgs(1),

		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := sh.load(args)
			if err != nil {
				return err
			}
			return app.RunSimulate(cmd.Context(), cfg, sh.opts, stdout, stderr)
		},
	}
	root.SetOut(stdout)
	root.SetErr(stderr)

	pf := root.PersistentFlags()
	pf.StringVarP(&sh.opts.PrimerFile, "primers", "p", "", "TSV primer file: id fwd rev [probe] [min] [max]")
	pf.StringVarP(&sh.opts.Fwd, "forward", "f", "", "forward primer (5'->3')")
	pf.StringVarP(&sh.opts.Rev, "reverse", "r", "", "reverse primer (5'->3')")
	pf.StringVar(&sh.opts.Probe, "probe", "", "optional probe to locate on the primary product")
	pf.StringVarP(&sh.opts.Output, "output", "o", "text", "output format: text | json")
	pf.BoolVarP(&sh.opts.Quiet, "quiet", "q", false, "suppress warnings")
	pf.BoolVar(&sh.noHeader, "no-header", false, "suppress the header line in text output")
	pf.BoolVar(&sh.debug, "debug", false, "debug logging")
	pf.StringVar(&sh.settings, "settings", "", "YAML settings file")

	fl := root.Flags()
	fl.BoolVar(&sh.opts.Circular, "circular", false, "treat the template as circular")
	fl.BoolVar(&sh.opts.ShowAlignment, "show-alignment", false, "render ASCII alignments for ranked products")
	fl.Int("max-mismatches", 2, "max mismatches per primer")
	fl.Bool("require-3p-exact", true, "disallow mismatches in the 3' anchor")
	fl.Int("3p-window", 3, "3' anchor length (bases)")
	fl.Int("min-product", 0, "minimum product length (0 = unbounded)")
	fl.Int("max-product", 0, "maximum product length (0 = unbounded)")
	fl.Int("alternatives", 3, "alternate products to report after the primary")
	fl.Int("threads", 0, "worker threads (0 = all CPUs)")
	fl.Duration("timeout", 0, "scan time budget (0 = none)")
	fl.Float64("seconds-per-kb", 30, "polymerase extension rate for time estimates")
	fl.Bool("check-dimers", true, "run primer-dimer checks alongside the simulation")
	for _, name := range []string{
		"max-mismatches", "require-3p-exact", "3p-window", "min-product", "max-product",
		"alternatives", "threads", "timeout", "seconds-per-kb", "check-dimers",
	} {
		_ = sh.v.BindPFlag(name, fl.Lookup(name))
	}

	root.AddCommand(newDimersCmd(sh, stdout, stderr))
	root.AddCommand(newConfigCmd(sh, stdout))
	root.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "print the version",
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := fmt.Fprintf(stdout, "ampsim version %s\n", version.Version)
			return err
		},
	})
	return root
}

// load finalizes options and merged settings once flags are parsed.
func (sh *shell) load(args []string) (config.Config, error) {
	logging.Setup(sh.stderr, sh.debug, sh.opts.Quiet)
	sh.opts.Header = !sh.noHeader
	if len(args) == 1 {
		sh.opts.TemplateFile = args[0]
	}
	return config.Load(sh.v, sh.settings)
}

// Execute runs the CLI and maps errors onto process exit codes.
func Execute(argv []string, stdout, stderr io.Writer) int {
	return ExecuteContext(context.Background(), argv, stdout, stderr)
}

// ExecuteContext is Execute with caller-supplied cancellation.
func ExecuteContext(ctx context.Context, argv []string, stdout, stderr io.Writer) int {
	root := NewRoot(stdout, stderr)
	root.SetArgs(argv)
	if err := root.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(stderr, "ampsim:", err)
		code := app.ExitCode(err)
		if code == 3 && isUsageError(err) {
			code = 2
		}
		return code
	}
	return 0
}

func isUsageError(err error) bool {
	// cobra reports unknown flags/commands as plain errors; treat them as
	// usage problems rather than I/O failures.
	s := err.Error()
	for _, frag := range []string{"unknown flag", "unknown command", "unknown shorthand", "invalid argument", "accepts at most"} {
		if strings.Contains(s, frag) {
			return true
		}
	}
	return false
}
