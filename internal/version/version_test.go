package version

import (
	"runtime"
	"strings"
	"testing"
)

func TestString(t *testing.T) {
	oldVersion, oldCommit, oldDate := Version, Commit, Date
	t.Cleanup(func() { Version, Commit, Date = oldVersion, oldCommit, oldDate })

	Version, Commit, Date = "1.2.0", unknown, unknown
	if got := String(); !strings.HasPrefix(got, "tincture version 1.2.0 (") || strings.Contains(got, "commit") {
		t.Errorf("String() = %q", got)
	}

	Commit, Date = "0123456789abcdef", "2025-01-02T03:04:05Z"
	got := String()
	if !strings.Contains(got, "commit: 01234567,") {
		t.Errorf("String() = %q, want short commit", got)
	}
	if !strings.Contains(got, "built: 2025-01-02T03:04:05Z") {
		t.Errorf("String() = %q, want build date", got)
	}
	if !strings.Contains(got, runtime.Version()) {
		t.Errorf("String() = %q, want Go version", got)
	}

	if Short() != "1.2.0" {
		t.Errorf("Short() = %q, want 1.2.0", Short())
	}
}

func TestShortCommit(t *testing.T) {
	tests := map[string]string{
		"":                 "",
		"abc":              "abc",
		"01234567":         "01234567",
		"0123456789abcdef": "01234567",
	}
	for in, want := range tests {
		if got := shortCommit(in); got != want {
			t.Errorf("shortCommit(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestGetInfo(t *testing.T) {
	info := GetInfo()
	if info.Platform != runtime.GOOS+"/"+runtime.GOARCH {
		t.Errorf("Platform = %q", info.Platform)
	}
	if info.Version != Version {
		t.Errorf("Version = %q, want %q", info.Version, Version)
	}
}
