package cmd

import (
	"fmt"

	"github.com/Brian-Campuzano/fprime/internal/settings"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// resolvedInfo is the YAML document the info command prints.
type resolvedInfo struct {
	Settings  string            `yaml:"settings"`
	Toolchain string            `yaml:"toolchain"`
	Build     settings.Settings `yaml:"build"`
	UnitTest  settings.Settings `yaml:"unit-test"`
}

var infoCmd = &cobra.Command{
	Use:   "info <settings.ini> [toolchain-file]",
	Short: "Show fully resolved settings for both build variants",
	Long: `Resolves the settings file for the ordinary build and the unit-test
variant and prints both mappings as YAML. Useful for debugging layered
settings files: the output shows exactly what each variant resolves to,
after section overrides, defaults, and path canonicalization.`,
	Args: cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		resolver := settings.IniResolver{}
		toolchain := toolchainFromArgs(args)

		build, err := resolver.Resolve(args[0], toolchain, false)
		if err != nil {
			return fmt.Errorf("resolving settings: %w", err)
		}
		unit, err := resolver.Resolve(args[0], toolchain, true)
		if err != nil {
			return fmt.Errorf("resolving unit-test settings: %w", err)
		}

		data, err := yaml.Marshal(resolvedInfo{
			Settings:  args[0],
			Toolchain: toolchain,
			Build:     build,
			UnitTest:  unit,
		})
		if err != nil {
			return fmt.Errorf("rendering settings: %w", err)
		}
		fmt.Fprint(cmd.OutOrStdout(), string(data))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(infoCmd)
}
