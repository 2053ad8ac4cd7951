package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/eringen/blogconf"
)

func TestRunShowDefaultsToLatestYAML(t *testing.T) {
	var out, errOut bytes.Buffer
	if code := run([]string{"show"}, &out, &errOut); code != 0 {
		t.Fatalf("exit code = %d, stderr: %s", code, errOut.String())
	}
	if !strings.Contains(out.String(), "theme_path: theme") {
		t.Errorf("expected latest revision yaml, got:\n%s", out.String())
	}
}

func TestRunShowRevisionJSON(t *testing.T) {
	var out, errOut bytes.Buffer
	if code := run([]string{"show", "json", "r1"}, &out, &errOut); code != 0 {
		t.Fatalf("exit code = %d, stderr: %s", code, errOut.String())
	}
	cfg, err := blogconf.Unmarshal(out.Bytes(), blogconf.FormatJSON)
	if err != nil {
		t.Fatalf("output is not a json record: %v", err)
	}
	if cfg.ThemePath != blogconf.MustPreset(blogconf.Revision1).ThemePath {
		t.Errorf("ThemePath = %q", cfg.ThemePath)
	}
}

func TestRunShowUnknownRevision(t *testing.T) {
	var out, errOut bytes.Buffer
	if code := run([]string{"show", "r9"}, &out, &errOut); code != 1 {
		t.Fatalf("exit code = %d, want 1", code)
	}
	if !strings.Contains(errOut.String(), "unknown revision") {
		t.Errorf("stderr = %q", errOut.String())
	}
}

func TestRunInitThenCheck(t *testing.T) {
	path := filepath.Join(t.TempDir(), "site.yaml")

	var out, errOut bytes.Buffer
	if code := run([]string{"init", path, "r1"}, &out, &errOut); code != 0 {
		t.Fatalf("init exit code = %d, stderr: %s", code, errOut.String())
	}

	out.Reset()
	if code := run([]string{"check", path}, &out, &errOut); code != 0 {
		t.Fatalf("check exit code = %d, output: %s", code, out.String())
	}
	if !strings.Contains(out.String(), "warning: theme_path") {
		t.Errorf("expected a theme_path warning, got:\n%s", out.String())
	}
	if !strings.Contains(out.String(), ": ok") {
		t.Errorf("expected ok, got:\n%s", out.String())
	}

	if code := run([]string{"init", path}, &out, &errOut); code != 1 {
		t.Errorf("init over an existing file should fail")
	}
}

func TestRunCheckReportsErrors(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	cfg := blogconf.MustPreset(blogconf.Latest)
	cfg.PaginationSize = 0
	cfg.Timezone = "Nowhere/Special"
	if err := blogconf.Save(path, cfg); err != nil {
		t.Fatalf("Save: %v", err)
	}

	var out, errOut bytes.Buffer
	if code := run([]string{"check", path}, &out, &errOut); code != 1 {
		t.Fatalf("exit code = %d, want 1", code)
	}
	got := out.String()
	if !strings.Contains(got, "error: pagination_size") || !strings.Contains(got, "error: timezone") {
		t.Errorf("unexpected output:\n%s", got)
	}
	if strings.Index(got, "pagination_size") > strings.Index(got, "timezone") {
		t.Errorf("errors should be sorted by field:\n%s", got)
	}
}

func TestLoadSource(t *testing.T) {
	cfg, err := loadSource("r2")
	if err != nil {
		t.Fatalf("loadSource(r2): %v", err)
	}
	if cfg.SiteURL != "http://localhost:8000" {
		t.Errorf("SiteURL = %q", cfg.SiteURL)
	}

	path := filepath.Join(t.TempDir(), "site.json")
	if err := os.WriteFile(path, []byte(`{"author": "Jane"}`), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err = loadSource(path)
	if err != nil {
		t.Fatalf("loadSource(file): %v", err)
	}
	if cfg.Author != "Jane" {
		t.Errorf("Author = %q", cfg.Author)
	}

	if _, err := loadSource("nope"); err == nil {
		t.Error("expected error for unknown source")
	}
}

func TestRunUnknownCommand(t *testing.T) {
	var out, errOut bytes.Buffer
	if code := run([]string{"frobnicate"}, &out, &errOut); code != 1 {
		t.Fatalf("exit code = %d, want 1", code)
	}
	if !strings.Contains(errOut.String(), "Unknown command") {
		t.Errorf("stderr = %q", errOut.String())
	}
}
