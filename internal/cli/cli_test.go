package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jmylchreest/tincture/internal/config"
	"github.com/jmylchreest/tincture/internal/hue"
)

// runCLI executes a fresh command tree with swatches disabled and no .env
// file, returning what it wrote to stdout and stderr.
func runCLI(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	for _, key := range []string{
		config.EnvBlackPoint,
		config.EnvWhitePoint,
		config.EnvGreyThreshold,
		config.EnvPrimaryVariance,
		config.EnvHueCatalog,
	} {
		t.Setenv(key, "")
	}

	var stdout, stderr bytes.Buffer
	cmd := NewRootCmd()
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(append([]string{
		"--preview", "never",
		"--env-file", filepath.Join(t.TempDir(), "absent.env"),
	}, args...))

	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestInspectCommand(t *testing.T) {
	stdout, _, err := runCLI(t, "inspect", "ff8000", "#808080")
	if err != nil {
		t.Fatalf("inspect failed: %v", err)
	}

	for _, want := range []string{"COLOUR", "LUMINANCE", "#ff8000", "rgb(255, 128, 0)", "orange", "#808080"} {
		if !strings.Contains(stdout, want) {
			t.Errorf("output missing %q:\n%s", want, stdout)
		}
	}

	lines := strings.Split(strings.TrimSpace(stdout), "\n")
	if len(lines) != 4 {
		t.Fatalf("expected header, separator and 2 rows, got %d lines", len(lines))
	}
	if !strings.HasSuffix(lines[3], "-") {
		t.Errorf("grey should have no nearest hue: %q", lines[3])
	}
	if fields := strings.Fields(lines[2]); fields[1] != "~darkorange" {
		t.Errorf("ff8000 should be marked as approximately darkorange: %q", lines[2])
	}
	if fields := strings.Fields(lines[3]); fields[1] != "gray" {
		t.Errorf("808080 is exactly gray: %q", lines[3])
	}
}

func TestInspectCommandJSON(t *testing.T) {
	stdout, _, err := runCLI(t, "inspect", "--format", "json", "80ff0000", "teal")
	if err != nil {
		t.Fatalf("inspect failed: %v", err)
	}

	var results []inspectJSON
	if err := json.Unmarshal([]byte(stdout), &results); err != nil {
		t.Fatalf("invalid JSON: %v\n%s", err, stdout)
	}
	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(results))
	}

	red := results[0]
	if red.Input != "80ff0000" || red.Hex != "#ff0000" || red.ARGB != "#80ff0000" {
		t.Errorf("unexpected red result: %+v", red)
	}
	if math.Abs(red.Alpha-128.0/255) > 1e-9 {
		t.Errorf("Alpha = %v, want 128/255", red.Alpha)
	}
	if red.Hue != hue.Red || red.CMYK.M != 1 || red.CMYK.K != 0 {
		t.Errorf("unexpected red result: %+v", red)
	}

	// SVG teal is #008080, which sits at 180° on the wheel.
	if results[1].Hex != "#008080" || results[1].Hue != hue.Cyan {
		t.Errorf("unexpected teal result: %+v", results[1])
	}
	if red.Name != "red" || results[1].Name != "teal" {
		t.Errorf("Name = %q, %q; want red, teal", red.Name, results[1].Name)
	}
}

func TestInspectCommandErrors(t *testing.T) {
	if _, _, err := runCLI(t, "inspect", "not-a-colour"); err == nil || !strings.Contains(err.Error(), "invalid colour") {
		t.Errorf("expected invalid colour error, got %v", err)
	}
	if _, _, err := runCLI(t, "inspect", "--format", "xml", "fff000"); err == nil || !strings.Contains(err.Error(), "unsupported format") {
		t.Errorf("expected unsupported format error, got %v", err)
	}
	if _, _, err := runCLI(t, "inspect"); err == nil {
		t.Error("expected error without arguments")
	}
}

func TestClassifyCommandJSON(t *testing.T) {
	stdout, _, err := runCLI(t, "classify", "-f", "json", "0a0a0a", "ffffff", "ff8000", "fafafa")
	if err != nil {
		t.Fatalf("classify failed: %v", err)
	}

	var rows []classifyJSON
	if err := json.Unmarshal([]byte(stdout), &rows); err != nil {
		t.Fatalf("invalid JSON: %v\n%s", err, stdout)
	}
	if len(rows) != 4 {
		t.Fatalf("expected 4 rows, got %d", len(rows))
	}

	if !rows[0].Black || !rows[0].Grey || rows[0].White {
		t.Errorf("0a0a0a misclassified: %+v", rows[0])
	}
	if !rows[1].White || rows[1].Black {
		t.Errorf("ffffff misclassified: %+v", rows[1])
	}
	if !rows[2].Primary || rows[2].NearestHue != hue.Orange || rows[2].Grey {
		t.Errorf("ff8000 misclassified: %+v", rows[2])
	}
	if rows[3].White {
		t.Errorf("fafafa should not be white at the default white point: %+v", rows[3])
	}
}

func TestClassifyCommandOverrides(t *testing.T) {
	stdout, _, err := runCLI(t, "classify", "--white-point", "0.95", "--variance", "0.2", "fafafa", "00ff80")
	if err != nil {
		t.Fatalf("classify failed: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(stdout), "\n")
	if len(lines) != 4 {
		t.Fatalf("expected 4 lines, got %d:\n%s", len(lines), stdout)
	}
	if fields := strings.Fields(lines[2]); fields[0] != "#fafafa" || fields[2] != "yes" {
		t.Errorf("fafafa should be white with --white-point 0.95: %q", lines[2])
	}
	if fields := strings.Fields(lines[3]); fields[0] != "#00ff80" || fields[4] != "yes" {
		t.Errorf("00ff80 should be primary with --variance 0.2: %q", lines[3])
	}
}

func TestClassifyCommandRejectsZeroVariance(t *testing.T) {
	if _, _, err := runCLI(t, "classify", "--variance", "0", "000000"); err == nil || !strings.Contains(err.Error(), "--variance") {
		t.Errorf("expected --variance error, got %v", err)
	}
	if _, _, err := runCLI(t, "classify", "--black-point", "nan", "000000"); err == nil {
		t.Error("expected error for a NaN black point")
	}
}

func TestClassifyCommandUsesEnvironment(t *testing.T) {
	dir := t.TempDir()
	envFile := filepath.Join(dir, "tincture.env")
	if err := os.WriteFile(envFile, []byte(config.EnvWhitePoint+"=0.95\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	stdout, _, err := runCLI(t, "--env-file", envFile, "classify", "-f", "json", "fafafa")
	if err != nil {
		t.Fatalf("classify failed: %v", err)
	}
	var rows []classifyJSON
	if err := json.Unmarshal([]byte(stdout), &rows); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if len(rows) != 1 || !rows[0].White {
		t.Errorf("fafafa should be white with a 0.95 white point from the .env file: %+v", rows)
	}

	if _, _, err := runCLI(t, "classify", "--black-point", "dark", "000000"); err == nil {
		t.Error("expected error for non-numeric --black-point")
	}
}

func TestAdjustCommands(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{name: "darken", args: []string{"darken", "--step", "0.5", "ffffff"}, want: "#ffffff -> #808080\n"},
		{name: "darken clips to black", args: []string{"darken", "--step", "2", "3a7bd5"}, want: "#3a7bd5 -> #000000\n"},
		{name: "lighten", args: []string{"lighten", "--step", "0.2", "000000"}, want: "#000000 -> #333333\n"},
		{name: "alpha is kept", args: []string{"darken", "--step", "0.5", "80ffffff"}, want: "#80ffffff -> #80808080\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stdout, _, err := runCLI(t, tt.args...)
			if err != nil {
				t.Fatalf("%s failed: %v", tt.name, err)
			}
			if stdout != tt.want {
				t.Errorf("output = %q, want %q", stdout, tt.want)
			}
		})
	}
}

func TestHueListCommand(t *testing.T) {
	stdout, _, err := runCLI(t, "hue", "list")
	if err != nil {
		t.Fatalf("hue list failed: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(stdout), "\n")
	if len(lines) != 14 {
		t.Errorf("expected 12 hues plus header, got %d lines", len(lines))
	}
	if !strings.HasPrefix(lines[2], "red") || !strings.HasPrefix(lines[13], "pink") {
		t.Errorf("hues not in wheel order:\n%s", stdout)
	}

	stdout, _, err = runCLI(t, "hue", "list", "--primary", "--format", "json")
	if err != nil {
		t.Fatalf("hue list --primary failed: %v", err)
	}
	var rows []hueJSON
	if err := json.Unmarshal([]byte(stdout), &rows); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if len(rows) != 7 {
		t.Errorf("expected 7 primary hues, got %d", len(rows))
	}
	for _, r := range rows {
		if !r.Primary {
			t.Errorf("non-primary hue listed: %+v", r)
		}
	}
	if rows[0].Name != hue.Red || rows[0].Hex != "#ff0000" {
		t.Errorf("first primary = %+v, want red", rows[0])
	}
}

func TestHueFindAndGetCommands(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{name: "find degrees", args: []string{"hue", "find", "130"}, want: hue.Green},
		{name: "find wraps", args: []string{"hue", "find", "355deg"}, want: hue.Red},
		{name: "find turns", args: []string{"hue", "find", "0.74t"}, want: hue.Indigo},
		{name: "find primary", args: []string{"hue", "find", "--primary", "265"}, want: hue.Blue},
		{name: "get", args: []string{"hue", "get", "azure"}, want: hue.Azure},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stdout, _, err := runCLI(t, append(tt.args, "--format", "json")...)
			if err != nil {
				t.Fatalf("command failed: %v", err)
			}
			var rows []hueJSON
			if err := json.Unmarshal([]byte(stdout), &rows); err != nil {
				t.Fatalf("invalid JSON: %v", err)
			}
			if len(rows) != 1 || rows[0].Name != tt.want {
				t.Errorf("got %+v, want %s", rows, tt.want)
			}
		})
	}

	if _, _, err := runCLI(t, "hue", "get", "mauve"); !errors.Is(err, hue.ErrUnknownHue) {
		t.Errorf("expected ErrUnknownHue, got %v", err)
	}
	if _, _, err := runCLI(t, "hue", "find", "north"); err == nil {
		t.Error("expected error for invalid hue")
	}
}

func TestHueRegisterCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hues.yaml")

	_, stderr, err := runCLI(t, "--catalog", path, "hue", "register", "custom", "135")
	if err != nil {
		t.Fatalf("hue register failed: %v", err)
	}
	if !strings.Contains(stderr, "Registered custom at 135°") {
		t.Errorf("unexpected stderr: %q", stderr)
	}

	c, err := hue.LoadCatalog(path)
	if err != nil {
		t.Fatalf("catalog not written: %v", err)
	}
	if len(c.Hues) != 1 || c.Hues[0] != (hue.CatalogEntry{Name: "custom", Degrees: 135}) {
		t.Errorf("catalog = %+v", c.Hues)
	}

	// The custom hue is nearest to 130°, but green is still the nearest primary.
	stdout, _, err := runCLI(t, "--catalog", path, "hue", "find", "-f", "json", "130")
	if err != nil {
		t.Fatalf("hue find failed: %v", err)
	}
	if !strings.Contains(stdout, `"name": "custom"`) {
		t.Errorf("expected custom hue, got %s", stdout)
	}
	stdout, _, err = runCLI(t, "--catalog", path, "hue", "find", "--primary", "-f", "json", "130")
	if err != nil {
		t.Fatalf("hue find failed: %v", err)
	}
	if !strings.Contains(stdout, `"name": "green"`) {
		t.Errorf("expected green, got %s", stdout)
	}

	// Registering again appends to the existing file; --quiet silences the notice.
	_, stderr, err = runCLI(t, "-q", "--catalog", path, "hue", "register", "--primary", "vermilion", "15deg")
	if err != nil {
		t.Fatalf("second register failed: %v", err)
	}
	if stderr != "" {
		t.Errorf("--quiet should suppress output, got %q", stderr)
	}
	c, err = hue.LoadCatalog(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(c.Hues) != 2 || c.Hues[1].Name != "vermilion" || !c.Hues[1].Primary {
		t.Errorf("catalog = %+v", c.Hues)
	}
}

func TestHueRegisterCompressedCatalog(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hues.json.xz")
	if _, _, err := runCLI(t, "--catalog", path, "hue", "register", "sea", "0.45t"); err != nil {
		t.Fatalf("hue register failed: %v", err)
	}

	stdout, _, err := runCLI(t, "--catalog", path, "hue", "get", "sea", "-f", "json")
	if err != nil {
		t.Fatalf("hue get failed: %v", err)
	}
	if !strings.Contains(stdout, `"degrees": 162`) {
		t.Errorf("unexpected output: %s", stdout)
	}
}

func TestHueRegisterNonFiniteKeepsCatalog(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hues.json")
	if _, _, err := runCLI(t, "--catalog", path, "hue", "register", "sea", "165"); err != nil {
		t.Fatalf("hue register failed: %v", err)
	}
	before, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}

	for _, h := range []string{"nan", "inf", "-Infdeg", "nant"} {
		if _, _, err := runCLI(t, "--catalog", path, "hue", "register", "bad", h); err == nil {
			t.Errorf("hue register bad %s should fail", h)
		}
	}

	after, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(before, after) {
		t.Errorf("catalog changed after rejected registrations:\n%s", after)
	}
	c, err := hue.LoadCatalog(path)
	if err != nil {
		t.Fatalf("catalog no longer loads: %v", err)
	}
	if len(c.Hues) != 1 || c.Hues[0].Name != "sea" {
		t.Errorf("catalog = %+v", c.Hues)
	}
}

func TestHueRegisterRequiresCatalog(t *testing.T) {
	if _, _, err := runCLI(t, "hue", "register", "custom", "135"); err == nil || !strings.Contains(err.Error(), "no catalog file") {
		t.Errorf("expected missing catalog error, got %v", err)
	}
}

func TestMissingCatalogFailsSetup(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.yaml")
	if _, _, err := runCLI(t, "--catalog", path, "hue", "list"); err == nil || !strings.Contains(err.Error(), "failed to load hue catalog") {
		t.Errorf("expected catalog load error, got %v", err)
	}
}

func TestVerboseLogging(t *testing.T) {
	_, stderr, err := runCLI(t, "-v", "hue", "find", "200")
	if err != nil {
		t.Fatalf("hue find failed: %v", err)
	}
	if !strings.Contains(stderr, "configuration resolved") || !strings.Contains(stderr, "nearest hue") {
		t.Errorf("expected debug logs, got %q", stderr)
	}

	_, stderr, err = runCLI(t, "-v", "-q", "hue", "find", "200")
	if err != nil {
		t.Fatalf("hue find failed: %v", err)
	}
	if stderr != "" {
		t.Errorf("--quiet should win over --verbose, got %q", stderr)
	}
}

func TestVersionCommand(t *testing.T) {
	stdout, _, err := runCLI(t, "version")
	if err != nil {
		t.Fatalf("version failed: %v", err)
	}
	if !strings.HasPrefix(stdout, "tincture version ") {
		t.Errorf("unexpected output: %q", stdout)
	}
}

func TestParseHue(t *testing.T) {
	tests := []struct {
		in      string
		want    float64
		wantErr bool
	}{
		{in: "135", want: 0.375},
		{in: "135deg", want: 0.375},
		{in: "135°", want: 0.375},
		{in: " 90 ", want: 0.25},
		{in: "-90", want: 0.75},
		{in: "450", want: 0.25},
		{in: "0.375t", want: 0.375},
		{in: "0.375TURN", want: 0.375},
		{in: "1.25t", want: 0.25},
		{in: "t", wantErr: true},
		{in: "north", wantErr: true},
		{in: "", wantErr: true},
		{in: "nan", wantErr: true},
		{in: "inf", wantErr: true},
		{in: "inft", wantErr: true},
		{in: "-Infdeg", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := parseHue(tt.in)
			if tt.wantErr {
				if err == nil {
					t.Errorf("parseHue(%q) = %v, want error", tt.in, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("parseHue(%q) error: %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("parseHue(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestPreviewMode(t *testing.T) {
	var p previewMode
	if err := p.Set("ALWAYS"); err != nil || p != previewAlways {
		t.Errorf("Set(ALWAYS) = %v, mode %q", err, p)
	}
	if err := p.Set("sometimes"); err == nil {
		t.Error("Set(sometimes) should fail")
	}
	if p.Type() != "mode" {
		t.Errorf("Type() = %q", p.Type())
	}

	cmd := NewRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	if previewAuto.enabled(cmd) {
		t.Error("auto mode should be disabled when output is not a terminal")
	}
	if !previewAlways.enabled(cmd) || previewNever.enabled(cmd) {
		t.Error("always/never modes ignore the terminal")
	}
}

func TestPreviewAlwaysAddsSwatches(t *testing.T) {
	var stdout bytes.Buffer
	cmd := NewRootCmd()
	cmd.SetOut(&stdout)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"--preview", "always", "--env-file", filepath.Join(t.TempDir(), "absent.env"), "darken", "ff0000"})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("darken failed: %v", err)
	}
	if !strings.Contains(stdout.String(), "\033[48;2;255;0;0m") {
		t.Errorf("expected swatch escape in %q", stdout.String())
	}
}

func TestUnitValue(t *testing.T) {
	var v float64
	u := newUnitValue(&v, 0.25)
	if v != 0.25 || u.String() != "0.25" {
		t.Errorf("default = %v (%s), want 0.25", v, u.String())
	}
	if err := u.Set("1.5"); err != nil || v != 1 {
		t.Errorf("Set(1.5) = %v, value %v; want clipped to 1", err, v)
	}
	if err := u.Set("-3"); err != nil || v != 0 {
		t.Errorf("Set(-3) = %v, value %v; want clipped to 0", err, v)
	}
	if err := u.Set("lots"); err == nil {
		t.Error("Set(lots) should fail")
	}
	for _, s := range []string{"nan", "Inf", "-inf"} {
		if err := u.Set(s); err == nil {
			t.Errorf("Set(%s) should fail", s)
		}
	}
	if v != 0 {
		t.Errorf("rejected values changed the target to %v", v)
	}
}
