package translate

import (
	"fmt"
	"io"

	"github.com/google/go-cmp/cmp"

	"github.com/Brian-Campuzano/fprime/internal/settings"
)

// ruleKind selects how a generator-critical field is rendered on the wire.
type ruleKind int

const (
	// ruleScalar emits one remapped NAME=value record.
	ruleScalar ruleKind = iota
	// rulePathList joins remapped elements with the list separator.
	rulePathList
	// ruleOptionLines re-emits each embedded KEY=VALUE line as its own
	// standalone record.
	ruleOptionLines
)

// field binds a settings key to its emitted name and formatting rule.
type field struct {
	key  string // settings file key
	name string // emitted setting name; unused for option passthrough
	rule ruleKind
}

// generatorFields is the fixed set of settings the build generator needs,
// in emission order. These must not vary between the build and unit-test
// variants.
var generatorFields = []field{
	{key: settings.KeyFrameworkPath, name: "FPRIME_FRAMEWORK_PATH", rule: ruleScalar},
	{key: settings.KeyProjectRoot, name: "FPRIME_PROJECT_ROOT", rule: ruleScalar},
	{key: settings.KeyLibraryLocations, name: "FPRIME_LIBRARY_LOCATIONS", rule: rulePathList},
	{key: settings.KeyDefaultCmakeOptions, rule: ruleOptionLines},
	{key: settings.KeyInstallDestination, name: "CMAKE_INSTALL_PREFIX", rule: ruleScalar},
}

// settingsFileName is the trailing record carrying the settings path as
// the caller gave it.
const settingsFileName = "FPRIME_SETTINGS_FILE"

// reservedNames are the setting names the translator itself emits. A
// default option line may not redefine one of these; silent shadowing
// would bypass the cross-variant consistency check.
var reservedNames = map[string]bool{
	"FPRIME_FRAMEWORK_PATH":    true,
	"FPRIME_PROJECT_ROOT":      true,
	"FPRIME_LIBRARY_LOCATIONS": true,
	"CMAKE_INSTALL_PREFIX":     true,
	settingsFileName:           true,
}

// Engine drives one resolve-check-emit pass. Out receives the wire
// protocol; Diag receives warnings about missing fields.
type Engine struct {
	Resolver settings.Resolver
	Out      io.Writer
	Diag     io.Writer
}

// Run resolves both variants of the settings file, emits every
// generator-critical field present in both, and terminates the stream
// with the settings-file record.
//
// A field missing from either variant produces one warning on Diag and is
// skipped. A field that differs between variants is fatal: the generator
// cannot branch its static configuration on variant. Output is streamed,
// so records emitted before a mid-stream failure may have been written.
func (e *Engine) Run(settingsPath, toolchain string) error {
	build, err := e.Resolver.Resolve(settingsPath, toolchain, false)
	if err != nil {
		return fmt.Errorf("resolving settings: %w", err)
	}
	unit, err := e.Resolver.Resolve(settingsPath, toolchain, true)
	if err != nil {
		return fmt.Errorf("resolving unit-test settings: %w", err)
	}

	em := &emitter{
		w:     e.Out,
		remap: DeriveRemapping(settingsPath, resolveSettingsPath(settingsPath)),
	}

	for _, f := range generatorFields {
		value, ok := build.Lookup(f.key)
		unitValue, unitOK := unit.Lookup(f.key)
		if !ok || !unitOK {
			fmt.Fprintf(e.Diag, "[WARNING] Failed to load settings.ini field %s. Update fprime-util.\n", f.key)
			continue
		}
		if !value.Equal(unitValue) {
			return fmt.Errorf("field %s differs between build and unit-test variants; the build generator requires variant-independent settings (-build +unit-test):\n%s",
				f.key, cmp.Diff(value, unitValue))
		}

		if err := e.emitField(em, f, value); err != nil {
			return err
		}
	}

	return em.trailer(settingsFileName, settingsPath)
}

// emitField renders one field through its formatting rule.
func (e *Engine) emitField(em *emitter, f field, value settings.Value) error {
	switch f.rule {
	case ruleScalar:
		return em.scalar(f.name, value.Str)
	case rulePathList:
		return em.pathList(f.name, value.List)
	case ruleOptionLines:
		for _, opt := range splitOptionLines(value.Str) {
			if reservedNames[opt.Name] {
				return fmt.Errorf("default option %s collides with a generated setting name", opt.Name)
			}
			if err := em.scalar(opt.Name, opt.Value); err != nil {
				return err
			}
		}
		return nil
	}
	return fmt.Errorf("unhandled formatting rule %d for field %s", f.rule, f.key)
}
