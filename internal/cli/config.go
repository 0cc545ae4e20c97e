// internal/cli/config.go
package cli

import (
	"io"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func newConfigCmd(sh *shell, stdout io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "print the effective settings as YAML",
		Long:  "config merges built-in defaults, the --settings file, and command-line flags,\nthen prints the result. The output is itself a valid --settings file.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := sh.load(args); err != nil {
				return err
			}
			enc := yaml.NewEncoder(stdout)
			enc.SetIndent(2)
			if err := enc.Encode(sh.v.AllSettings()); err != nil {
				return err
			}
			return enc.Close()
		},
	}
}
