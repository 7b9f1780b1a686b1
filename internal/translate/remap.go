// Package translate drives the settings resolver for both build variants,
// checks the generator-critical fields for variant independence, and emits
// the result as the NAME=VALUE; list protocol the CMake side consumes.
package translate

import (
	"path/filepath"
	"strings"
)

// Remapping rewrites the resolver's canonicalized path prefix back to the
// prefix the caller actually typed. Resolved settings embed absolute,
// symlink-resolved paths; emitting those verbatim would leak
// machine-specific prefixes into generated build files.
type Remapping struct {
	From string // resolved prefix
	To   string // prefix as given on the command line
}

// DeriveRemapping computes the remapping from the settings path as given
// and its fully-resolved form: the longest common suffix of the two is
// stripped, and the leftover resolved prefix maps to the leftover given
// prefix.
func DeriveRemapping(given, resolved string) Remapping {
	n := commonSuffixLen(given, resolved)
	return Remapping{
		From: resolved[:len(resolved)-n],
		To:   given[:len(given)-n],
	}
}

// Apply rewrites every occurrence of the resolved prefix in s. An empty
// From prefix is a no-op: replacing the empty string would splice To
// between every character.
func (r Remapping) Apply(s string) string {
	if r.From == "" || r.From == r.To {
		return s
	}
	return strings.ReplaceAll(s, r.From, r.To)
}

func commonSuffixLen(a, b string) int {
	n := 0
	for n < len(a) && n < len(b) && a[len(a)-1-n] == b[len(b)-1-n] {
		n++
	}
	return n
}

// resolveSettingsPath returns the canonical absolute form of the settings
// path, mirroring the canonicalization the resolver applies to path
// values. Falls back to the cleaned absolute path when the file cannot be
// resolved.
func resolveSettingsPath(path string) string {
	abs, err := filepath.Abs(path)
	if err != nil {
		return path
	}
	abs = filepath.Clean(abs)
	if resolved, err := filepath.EvalSymlinks(abs); err == nil {
		return resolved
	}
	return abs
}
