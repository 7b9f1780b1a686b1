package fpsettings

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeSettings(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "settings.ini")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestResolve(t *testing.T) {
	path := writeSettings(t, "[fprime]\ndefault_cmake_options: OPT=ON\n")

	resolved, err := Resolve(path, "native", false)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if v, ok := resolved.Lookup("default_cmake_options"); !ok || v.Str != "OPT=ON" {
		t.Errorf("default_cmake_options = %v (present=%v)", v, ok)
	}
}

func TestTranslate(t *testing.T) {
	path := writeSettings(t, "[fprime]\ndefault_cmake_options: OPT=ON\n")

	var out, diag bytes.Buffer
	err := Translate(&out, &diag, Options{SettingsPath: path})
	if err != nil {
		t.Fatalf("Translate: %v", err)
	}

	for _, name := range []string{"FPRIME_FRAMEWORK_PATH", "OPT=ON", "FPRIME_SETTINGS_FILE"} {
		if !strings.Contains(out.String(), name) {
			t.Errorf("output missing %s: %q", name, out.String())
		}
	}
	if !strings.HasSuffix(out.String(), path) {
		t.Errorf("output does not end with the settings path: %q", out.String())
	}
}

type fixedResolver struct{ s Settings }

func (f fixedResolver) Resolve(path, toolchain string, unitTest bool) (Settings, error) {
	return f.s, nil
}

func TestTranslateCustomResolver(t *testing.T) {
	s := Settings{
		"framework_path":      Value{Kind: KindScalar, Str: "/fw"},
		"project_root":        Value{Kind: KindScalar, Str: "/proj"},
		"install_destination": Value{Kind: KindScalar, Str: "/inst"},
	}

	var out, diag bytes.Buffer
	err := Translate(&out, &diag, Options{
		SettingsPath: "/tmp/none/settings.ini",
		Resolver:     fixedResolver{s: s},
	})
	if err != nil {
		t.Fatalf("Translate: %v", err)
	}
	if !strings.Contains(out.String(), "FPRIME_PROJECT_ROOT=/proj;") {
		t.Errorf("custom resolver output wrong: %q", out.String())
	}
	if !strings.Contains(diag.String(), "library_locations") {
		t.Errorf("missing-field warning not forwarded: %q", diag.String())
	}
}
