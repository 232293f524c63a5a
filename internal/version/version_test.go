package version

import (
	"testing"

	"github.com/fatih/color"
)

func withPlainColor(t *testing.T) {
	t.Helper()
	orig := color.NoColor
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = orig })
}

func withVersion(t *testing.T, v, commit, date string) {
	t.Helper()
	ov, oc, od := Version, GitCommit, BuildDate
	Version, GitCommit, BuildDate = v, commit, date
	t.Cleanup(func() { Version, GitCommit, BuildDate = ov, oc, od })
}

func TestVersion_DefaultValues(t *testing.T) {
	if Version == "" {
		t.Error("Version should have a default value")
	}
}

func TestColored(t *testing.T) {
	withPlainColor(t)
	tests := []struct {
		in   string
		want string
	}{
		{"1.2.3", "1.2.3"},
		{"0.3.0-dev", "0.3.0-dev"},
		{"1.0.0+build.7", "1.0.0+build.7"},
		{"nightly", "nightly"},
	}
	for _, tt := range tests {
		withVersion(t, tt.in, "", "")
		if got := Colored(); got != tt.want {
			t.Errorf("Colored(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestColoredAddsEscapes(t *testing.T) {
	orig := color.NoColor
	color.NoColor = false
	t.Cleanup(func() { color.NoColor = orig })
	withVersion(t, "1.2.3", "", "")

	got := Colored()
	if got == "1.2.3" {
		t.Fatalf("expected ANSI sequences, got plain %q", got)
	}
}

func TestLine(t *testing.T) {
	withPlainColor(t)
	withVersion(t, "1.2.3", "abc123", "2024-01-15T10:30:00Z")
	if got, want := Line(), "gasfmt 1.2.3 (abc123) built 2024-01-15T10:30:00Z"; got != want {
		t.Fatalf("Line() = %q, want %q", got, want)
	}

	withVersion(t, "1.2.3", "", "")
	if got, want := Line(), "gasfmt 1.2.3"; got != want {
		t.Fatalf("Line() = %q, want %q", got, want)
	}
}
