package settings

import (
	"strings"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestValueEqual(t *testing.T) {
	tests := []struct {
		name string
		a, b Value
		want bool
	}{
		{"equal scalars", Scalar("/a"), Scalar("/a"), true},
		{"different scalars", Scalar("/a"), Scalar("/b"), false},
		{"scalar vs text", Scalar("x"), Text("x"), false},
		{"equal lists", PathList([]string{"/a", "/b"}), PathList([]string{"/a", "/b"}), true},
		{"different lists", PathList([]string{"/a"}), PathList([]string{"/b"}), false},
		{"different lengths", PathList([]string{"/a"}), PathList([]string{"/a", "/b"}), false},
		{"empty lists", PathList(nil), PathList(nil), true},
	}

	for _, tt := range tests {
		if got := tt.a.Equal(tt.b); got != tt.want {
			t.Errorf("%s: Equal = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestValueString(t *testing.T) {
	if got := Scalar("/a/b").String(); got != "/a/b" {
		t.Errorf("scalar String = %q", got)
	}
	if got := PathList([]string{"/a", "/b"}).String(); got != "/a:/b" {
		t.Errorf("list String = %q", got)
	}
}

func TestValueMarshalYAML(t *testing.T) {
	s := Settings{
		KeyFrameworkPath:    Scalar("/fw"),
		KeyLibraryLocations: PathList([]string{"/lib1", "/lib2"}),
	}

	data, err := yaml.Marshal(s)
	if err != nil {
		t.Fatalf("yaml.Marshal: %v", err)
	}
	out := string(data)
	if !strings.Contains(out, "framework_path: /fw") {
		t.Errorf("scalar not rendered as string:\n%s", out)
	}
	if !strings.Contains(out, "- /lib1") || !strings.Contains(out, "- /lib2") {
		t.Errorf("list not rendered as sequence:\n%s", out)
	}
}
