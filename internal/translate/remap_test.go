package translate

import "testing"

func TestDeriveRemapping(t *testing.T) {
	tests := []struct {
		name     string
		given    string
		resolved string
		from     string
		to       string
	}{
		{
			name:     "relative invocation",
			given:    "proj/settings.ini",
			resolved: "/home/u/proj/settings.ini",
			from:     "/home/u/",
			to:       "",
		},
		{
			name:     "identical paths",
			given:    "/opt/proj/settings.ini",
			resolved: "/opt/proj/settings.ini",
			from:     "",
			to:       "",
		},
		{
			name:     "symlinked parent",
			given:    "/data/proj/settings.ini",
			resolved: "/mnt/disk0/proj/settings.ini",
			from:     "/mnt/disk0/",
			to:       "/data/",
		},
		{
			name:     "no common suffix",
			given:    "settings.toml",
			resolved: "/home/u/other.ini",
			from:     "/home/u/other.ini",
			to:       "settings.toml",
		},
	}

	for _, tt := range tests {
		got := DeriveRemapping(tt.given, tt.resolved)
		if got.From != tt.from || got.To != tt.to {
			t.Errorf("%s: DeriveRemapping(%q, %q) = {%q -> %q}, want {%q -> %q}",
				tt.name, tt.given, tt.resolved, got.From, got.To, tt.from, tt.to)
		}
	}
}

func TestRemappingApply(t *testing.T) {
	r := Remapping{From: "/home/u/", To: ""}

	if got := r.Apply("/home/u/proj/lib1"); got != "proj/lib1" {
		t.Errorf("Apply = %q, want proj/lib1", got)
	}
	if got := r.Apply("/elsewhere/lib"); got != "/elsewhere/lib" {
		t.Errorf("Apply = %q, want unchanged", got)
	}
}

func TestRemappingApplyIdempotent(t *testing.T) {
	r := Remapping{From: "/home/u/", To: ""}

	once := r.Apply("/home/u/proj/lib1")
	twice := r.Apply(once)
	if once != twice {
		t.Errorf("re-applying the rule changed the value: %q then %q", once, twice)
	}
}

func TestRemappingEmptyFromIsNoOp(t *testing.T) {
	r := Remapping{From: "", To: ""}

	if got := r.Apply("/home/u/proj"); got != "/home/u/proj" {
		t.Errorf("empty rule changed value to %q", got)
	}
}
