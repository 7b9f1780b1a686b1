package settings

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/ini.v1"
)

// Section names. Toolchain-specific overrides live in child sections, e.g.
// [fprime.aarch64-linux] or [unittest.aarch64-linux].
const (
	sectionBase        = "fprime"
	sectionUnitTest    = "unittest"
	sectionEnvironment = "environment"
)

// DefaultToolchain is the toolchain identifier used when no toolchain file
// is supplied.
const DefaultToolchain = "native"

// DefaultInstallDir is the install destination relative to the settings
// file when install_destination is not set.
const DefaultInstallDir = "build-artifacts"

// ToolchainID derives a toolchain identifier from a toolchain file path:
// the base name with its extension stripped. An empty path yields
// DefaultToolchain.
func ToolchainID(toolchainFile string) string {
	if toolchainFile == "" {
		return DefaultToolchain
	}
	base := filepath.Base(toolchainFile)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// Load resolves one variant of a settings file into a flat mapping.
//
// Sections are merged key-wise in precedence order: [fprime], then
// [fprime.<toolchain>], and for the unit-test variant [unittest] and
// [unittest.<toolchain>] on top. Path-valued settings are resolved
// relative to the settings file's directory and canonicalized.
func Load(path, toolchain string, unitTest bool) (Settings, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolving settings path %s: %w", path, err)
	}

	file, err := ini.LoadSources(ini.LoadOptions{
		AllowPythonMultilineValues: true,
	}, abs)
	if err != nil {
		return nil, fmt.Errorf("reading settings %s: %w", path, err)
	}

	raw := make(map[string]string)
	for _, name := range sectionOrder(toolchain, unitTest) {
		sec, err := file.GetSection(name)
		if err != nil {
			continue // all sections are optional
		}
		for _, key := range sec.Keys() {
			raw[key.Name()] = key.String()
		}
	}

	resolved := fromRaw(raw, filepath.Dir(abs), abs)

	if env, err := file.GetSection(sectionEnvironment); err == nil {
		for _, key := range env.Keys() {
			resolved[sectionEnvironment+"."+key.Name()] = Scalar(key.String())
		}
	}

	return resolved, nil
}

// sectionOrder lists the sections contributing to a variant, lowest
// precedence first.
func sectionOrder(toolchain string, unitTest bool) []string {
	names := []string{sectionBase}
	if toolchain != "" {
		names = append(names, sectionBase+"."+toolchain)
	}
	if unitTest {
		names = append(names, sectionUnitTest)
		if toolchain != "" {
			names = append(names, sectionUnitTest+"."+toolchain)
		}
	}
	return names
}

// fromRaw types the merged key set and fills in defaults. dir is the
// settings file's directory; settingsFile its absolute path.
func fromRaw(raw map[string]string, dir, settingsFile string) Settings {
	out := make(Settings, len(raw)+4)

	for name, val := range raw {
		switch name {
		case KeyFrameworkPath, KeyProjectRoot, KeyInstallDestination, KeyEnvironmentFile:
			out[name] = Scalar(canonicalize(dir, val))
		case KeyLibraryLocations:
			out[name] = PathList(splitPathList(dir, val))
		case KeyDefaultCmakeOptions:
			out[name] = Text(val)
		default:
			out[name] = Scalar(val)
		}
	}

	if _, ok := out[KeyFrameworkPath]; !ok {
		out[KeyFrameworkPath] = Scalar(canonicalize(dir, "."))
	}
	if _, ok := out[KeyProjectRoot]; !ok {
		out[KeyProjectRoot] = out[KeyFrameworkPath]
	}
	if _, ok := out[KeyInstallDestination]; !ok {
		out[KeyInstallDestination] = Scalar(filepath.Join(dir, DefaultInstallDir))
	}
	if _, ok := out[KeyEnvironmentFile]; !ok {
		out[KeyEnvironmentFile] = Scalar(settingsFile)
	}

	return out
}

// splitPathList splits an os.PathListSeparator-separated value and
// canonicalizes each element. Empty elements are dropped.
func splitPathList(dir, val string) []string {
	var paths []string
	for _, part := range strings.Split(val, string(os.PathListSeparator)) {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		paths = append(paths, canonicalize(dir, part))
	}
	return paths
}

// canonicalize makes p absolute relative to dir, cleans it, and follows
// symlinks when the path exists. The translator's remapping rule undoes
// this canonicalization for paths under the user's invocation prefix.
func canonicalize(dir, p string) string {
	p = strings.TrimSpace(p)
	if p == "" {
		return p
	}
	if !filepath.IsAbs(p) {
		p = filepath.Join(dir, p)
	}
	p = filepath.Clean(p)
	if resolved, err := filepath.EvalSymlinks(p); err == nil {
		return resolved
	}
	return p
}
