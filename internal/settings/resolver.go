package settings

// Resolver resolves a settings file into one variant's flat mapping.
// The translator depends only on this interface so it can be tested
// against fixed mappings.
type Resolver interface {
	// Resolve loads the settings file for the given toolchain identifier,
	// applying unit-test overrides when unitTest is true.
	Resolve(path, toolchain string, unitTest bool) (Settings, error)
}

// IniResolver resolves fprime settings.ini files from disk.
type IniResolver struct{}

func (IniResolver) Resolve(path, toolchain string, unitTest bool) (Settings, error) {
	return Load(path, toolchain, unitTest)
}
