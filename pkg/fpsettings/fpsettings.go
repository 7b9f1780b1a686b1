// Package fpsettings provides the public Go library API for the fprime
// settings bridge, for embedding the resolver and translator in other
// build tooling.
//
// # Basic Usage
//
//	// Resolve one variant of a settings file.
//	resolved, err := fpsettings.Resolve("proj/settings.ini", "native", false)
//
//	// Emit the CMake list protocol for a settings file.
//	err := fpsettings.Translate(os.Stdout, os.Stderr, fpsettings.Options{
//	    SettingsPath:  "proj/settings.ini",
//	    ToolchainFile: "aarch64-linux.cmake",
//	})
package fpsettings

import (
	"io"

	"github.com/Brian-Campuzano/fprime/internal/settings"
	"github.com/Brian-Campuzano/fprime/internal/translate"
)

// Options configures a Translate run.
type Options struct {
	// SettingsPath is the settings.ini path as the user supplied it.
	// Emitted paths are remapped back to this form.
	SettingsPath string

	// ToolchainFile is the optional toolchain file path; its base name
	// (extension stripped) selects per-toolchain setting sections. Empty
	// means the built-in native toolchain.
	ToolchainFile string

	// Resolver overrides the settings resolver. Nil means the standard
	// settings.ini resolver.
	Resolver Resolver
}

// Resolve loads one variant of a settings file into a flat mapping.
func Resolve(path, toolchain string, unitTest bool) (Settings, error) {
	return settings.Load(path, toolchain, unitTest)
}

// Translate resolves both variants of the settings file and writes the
// NAME=VALUE; list protocol to w. Warnings about settings missing from a
// variant go to diag; any other failure is returned.
func Translate(w, diag io.Writer, opts Options) error {
	resolver := opts.Resolver
	if resolver == nil {
		resolver = settings.IniResolver{}
	}
	eng := &translate.Engine{Resolver: resolver, Out: w, Diag: diag}
	return eng.Run(opts.SettingsPath, settings.ToolchainID(opts.ToolchainFile))
}
