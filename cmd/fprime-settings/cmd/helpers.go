package cmd

import "github.com/Brian-Campuzano/fprime/internal/settings"

// toolchainFromArgs derives the toolchain identifier from the optional
// second positional argument (a toolchain file path).
func toolchainFromArgs(args []string) string {
	if len(args) > 1 {
		return settings.ToolchainID(args[1])
	}
	return settings.ToolchainID("")
}
