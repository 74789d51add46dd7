package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	cfgpkg "github.com/crgrady/tablescope/internal/config"
)

func writeFixture(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "people.csv")
	content := "name,age,score\nAlice,25,1\nBob,30,2\nCarol,NA,3\nDave,28,4\nEve,31,100\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	return path
}

func runCommand(t *testing.T, args ...string) string {
	t.Helper()
	cfg = &cfgpkg.Global{MaxRows: 1000, PlotKind: "hist"}
	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetErr(&buf)
	rootCmd.SetArgs(args)
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("execute %v: %v", args, err)
	}
	return buf.String()
}

func TestDescribeCommand(t *testing.T) {
	out := runCommand(t, "describe", writeFixture(t))
	for _, want := range []string{"Samples:              5", "Features:             3", "Numeric features:     2"} {
		if !strings.Contains(out, want) {
			t.Errorf("describe output missing %q:\n%s", want, out)
		}
	}
}

func TestNullsCommand(t *testing.T) {
	out := runCommand(t, "nulls", writeFixture(t))
	if !strings.Contains(out, "age") || !strings.Contains(out, "Numerical") {
		t.Errorf("nulls output missing age row:\n%s", out)
	}
}

func TestOutliersCommand(t *testing.T) {
	out := runCommand(t, "outliers", writeFixture(t))
	if !strings.Contains(out, "score") {
		t.Errorf("outliers output missing score row:\n%s", out)
	}
}

func TestPlotCommand(t *testing.T) {
	outPath := filepath.Join(t.TempDir(), "grid.png")
	out := runCommand(t, "plot", writeFixture(t), "--target", "score", "--kind", "box", "--out", outPath)
	if !strings.Contains(out, "✓ Wrote") {
		t.Errorf("plot output missing confirmation:\n%s", out)
	}
	if _, err := os.Stat(outPath); err != nil {
		t.Errorf("missing plot file: %v", err)
	}
}

func TestParseDelimiter(t *testing.T) {
	tests := []struct {
		in   string
		want rune
		ok   bool
	}{
		{"", 0, true},
		{",", ',', true},
		{"comma", ',', true},
		{";", ';', true},
		{"tab", '\t', true},
		{"|", 0, false},
	}
	for _, tt := range tests {
		got, err := parseDelimiter(tt.in)
		if (err == nil) != tt.ok {
			t.Errorf("parseDelimiter(%q) err = %v, ok = %v", tt.in, err, tt.ok)
			continue
		}
		if err == nil && got != tt.want {
			t.Errorf("parseDelimiter(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
