package cmd

import (
	"github.com/Brian-Campuzano/fprime/internal/settings"
	"github.com/Brian-Campuzano/fprime/internal/translate"
	"github.com/spf13/cobra"
)

var emitCmd = &cobra.Command{
	Use:   "emit <settings.ini> [toolchain-file]",
	Short: "Emit resolved settings as a CMake-consumable list",
	Long: `Resolves the settings file twice — once for ordinary builds and once for
the unit-test variant — verifies that the generator-critical settings agree
between the two, and writes them to stdout as NAME=VALUE; records. Paths are
remapped back to the form the settings path was given in, so generated build
files stay portable across checkouts.

Settings missing from either variant are reported on stderr and skipped; the
generator simply does not receive them. A setting that differs between
variants aborts the run.`,
	Args: cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		eng := &translate.Engine{
			Resolver: settings.IniResolver{},
			Out:      cmd.OutOrStdout(),
			Diag:     cmd.ErrOrStderr(),
		}
		return eng.Run(args[0], toolchainFromArgs(args))
	},
}

func init() {
	rootCmd.AddCommand(emitCmd)
}
