// Package settings resolves fprime settings.ini files into flat,
// variant-specific mappings. A settings file is layered: a base [fprime]
// section, optional per-toolchain overrides, and a [unittest] section that
// only applies when resolving the unit-test variant. Resolution flattens
// the layers into a single read-only Settings mapping.
package settings

import "strings"

// Keys recognized by the loader. Anything else found in the file is carried
// through as an opaque scalar.
const (
	KeyFrameworkPath       = "framework_path"
	KeyProjectRoot         = "project_root"
	KeyLibraryLocations    = "library_locations"
	KeyDefaultCmakeOptions = "default_cmake_options"
	KeyInstallDestination  = "install_destination"
	KeyDefaultToolchain    = "default_toolchain"
	KeyDefaultUTToolchain  = "default_ut_toolchain"
	KeyEnvironmentFile     = "environment_file"
)

// Kind discriminates the three value shapes a setting can take.
type Kind int

const (
	// KindScalar is a single path or string.
	KindScalar Kind = iota
	// KindPathList is an ordered sequence of paths.
	KindPathList
	// KindText is free-form, possibly multi-line text.
	KindText
)

// Value is one resolved setting value.
type Value struct {
	Kind Kind
	Str  string   // KindScalar, KindText
	List []string // KindPathList
}

// Scalar wraps a single path or string.
func Scalar(s string) Value {
	return Value{Kind: KindScalar, Str: s}
}

// PathList wraps an ordered sequence of paths.
func PathList(paths []string) Value {
	return Value{Kind: KindPathList, List: paths}
}

// Text wraps free-form multi-line text.
func Text(s string) Value {
	return Value{Kind: KindText, Str: s}
}

// Equal reports whether two values have the same kind and contents.
func (v Value) Equal(o Value) bool {
	if v.Kind != o.Kind || v.Str != o.Str || len(v.List) != len(o.List) {
		return false
	}
	for i := range v.List {
		if v.List[i] != o.List[i] {
			return false
		}
	}
	return true
}

// String returns a display form of the value.
func (v Value) String() string {
	if v.Kind == KindPathList {
		return strings.Join(v.List, ":")
	}
	return v.Str
}

// MarshalYAML renders path lists as YAML sequences and everything else as a
// plain string, so `fprime-settings info` output stays readable.
func (v Value) MarshalYAML() (interface{}, error) {
	if v.Kind == KindPathList {
		return v.List, nil
	}
	return v.Str, nil
}

// Settings is one variant's resolved mapping. It is created by a single
// Resolve call and read-only afterwards.
type Settings map[string]Value

// Lookup returns the value for name and whether it is present.
func (s Settings) Lookup(name string) (Value, bool) {
	v, ok := s[name]
	return v, ok
}
